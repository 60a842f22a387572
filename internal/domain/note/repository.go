package note

import "context"

// Repository persists one whole collection per user. There is no per-record
// storage: every mutation reads the collection, changes it and writes it
// back, so concurrent saves for the same user are last-write-wins.
type Repository interface {
	Notes(ctx context.Context, username string) ([]Note, error)
	SaveNotes(ctx context.Context, username string, notes []Note) error
}
