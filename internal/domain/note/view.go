package note

import (
	"sort"
	"strings"
	"time"
)

type SortKey string

const (
	SortByUpdated SortKey = "updated"
	SortByTitle   SortKey = "title"
)

// View is the derived projection of a note collection for display: a
// case-insensitive substring filter over title and body, plus a sort by
// last-modified time or folded title. It never mutates the input collection.
type View struct {
	Search string
	Key    SortKey
	Desc   bool
}

func NewView() View {
	return View{Key: SortByUpdated, Desc: true}
}

// ToggleSort flips the direction when the key is already active and resets
// to descending when a new key is chosen.
func (v *View) ToggleSort(key SortKey) {
	if v.Key == key {
		v.Desc = !v.Desc
		return
	}
	v.Key = key
	v.Desc = true
}

// Apply recomputes the projection and returns a new slice.
func (v View) Apply(notes []Note) []Note {
	out := make([]Note, 0, len(notes))

	search := strings.ToLower(v.Search)
	for _, n := range notes {
		if search == "" ||
			strings.Contains(strings.ToLower(n.Title), search) ||
			strings.Contains(strings.ToLower(n.Body), search) {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if v.Desc {
			return v.less(out[j], out[i])
		}
		return v.less(out[i], out[j])
	})

	return out
}

func (v View) less(a, b Note) bool {
	if v.Key == SortByTitle {
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	}
	return modified(a).Before(modified(b))
}

// modified falls back to the creation time for notes that were never
// re-saved after the UpdatedAt field was introduced.
func modified(n Note) time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}
