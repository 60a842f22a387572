package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNotes() []Note {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Note{
		{ID: "1", Title: "Groceries", Body: "milk, eggs", CreatedAt: base, UpdatedAt: base.Add(3 * time.Hour)},
		{ID: "2", Title: "apple pie recipe", Body: "flour, butter", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
		{ID: "3", Title: "Apple store visit", Body: "pick up laptop", CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Title: "Workout", Body: "legs day", CreatedAt: base.Add(30 * time.Minute)},
	}
}

func ids(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestView_EmptySearchKeepsAll(t *testing.T) {
	v := NewView()
	got := v.Apply(sampleNotes())
	assert.Len(t, got, 4)
}

func TestView_SearchMatchesTitleAndBodyCaseInsensitive(t *testing.T) {
	v := NewView()

	v.Search = "APPLE"
	assert.ElementsMatch(t, []string{"2", "3"}, ids(v.Apply(sampleNotes())))

	// Body matches count too.
	v.Search = "milk"
	assert.Equal(t, []string{"1"}, ids(v.Apply(sampleNotes())))
}

func TestView_SearchWithoutMatchesIsEmpty(t *testing.T) {
	v := NewView()
	v.Search = "zzz-not-there"
	assert.Empty(t, v.Apply(sampleNotes()))
}

func TestView_DefaultSortNewestFirst(t *testing.T) {
	v := NewView()
	got := v.Apply(sampleNotes())
	// Note 1 was updated last; note 4 has no UpdatedAt and falls back to its
	// creation time, which makes it the oldest.
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(got))
}

func TestView_TitleSortFoldsCase(t *testing.T) {
	v := View{Key: SortByTitle, Desc: false}
	got := v.Apply(sampleNotes())
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(got))
}

func TestView_TitleAscendingReversesDescending(t *testing.T) {
	asc := View{Key: SortByTitle, Desc: false}
	desc := View{Key: SortByTitle, Desc: true}

	notes := []Note{
		{ID: "a", Title: "banana"},
		{ID: "b", Title: "Cherry"},
		{ID: "c", Title: "apricot"},
	}

	up := ids(asc.Apply(notes))
	down := ids(desc.Apply(notes))

	require.Len(t, down, len(up))
	for i := range up {
		assert.Equal(t, up[i], down[len(down)-1-i])
	}
}

func TestView_ToggleSort(t *testing.T) {
	v := NewView()
	require.Equal(t, SortByUpdated, v.Key)
	require.True(t, v.Desc)

	// Same key flips direction.
	v.ToggleSort(SortByUpdated)
	assert.False(t, v.Desc)

	// New key resets to descending.
	v.ToggleSort(SortByTitle)
	assert.Equal(t, SortByTitle, v.Key)
	assert.True(t, v.Desc)
}

func TestView_ApplyDoesNotMutateInput(t *testing.T) {
	input := sampleNotes()
	original := ids(input)

	v := View{Key: SortByTitle, Desc: false}
	_ = v.Apply(input)

	assert.Equal(t, original, ids(input))
}
