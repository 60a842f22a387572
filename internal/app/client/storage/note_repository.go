package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

type NoteRepository struct {
	kv  KV
	log *slog.Logger
}

func NewNoteRepository(kv KV, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		kv:  kv,
		log: log.With("component", "note_repository"),
	}
}

func notesKey(username string) string {
	return notesKeyPrefix + username
}

// Notes loads the user's whole collection. Missing, unreadable or corrupt
// state degrades to an empty collection, never an error.
func (r *NoteRepository) Notes(ctx context.Context, username string) ([]note.Note, error) {
	raw, ok, err := r.kv.Get(ctx, notesKey(username))
	if err != nil {
		r.log.Warn("failed to read notes, treating as empty",
			"username", username, "error", err)
		return []note.Note{}, nil
	}
	if !ok {
		return []note.Note{}, nil
	}

	var notes []note.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		r.log.Warn("corrupt notes blob, treating as empty",
			"username", username, "error", err)
		return []note.Note{}, nil
	}

	return notes, nil
}

func (r *NoteRepository) SaveNotes(ctx context.Context, username string, notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	return r.kv.Set(ctx, notesKey(username), string(raw))
}
