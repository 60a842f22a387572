package note

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, username string) ([]Note, error)
	Save(ctx context.Context, username string, n Note) (Note, error)
	Remove(ctx context.Context, username, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
		now:  time.Now,
	}
}

// List returns the user's collection in stored order.
func (s *Service) List(ctx context.Context, username string) ([]Note, error) {
	notes, err := s.repo.Notes(ctx, username)
	if err != nil {
		s.log.Error("failed to load notes", "username", username, "error", err)
		return nil, fmt.Errorf("load notes: %w", err)
	}
	return notes, nil
}

// Save upserts a note. Without an id a new one is assigned and the note is
// appended; with a known id the stored note is replaced in place, keeping its
// original CreatedAt; with an unknown id the note is appended as a new entry.
// UpdatedAt is always stamped, and the whole collection is written back.
func (s *Service) Save(ctx context.Context, username string, n Note) (Note, error) {
	if strings.TrimSpace(n.Title) == "" {
		return Note{}, ErrEmptyTitle
	}

	notes, err := s.repo.Notes(ctx, username)
	if err != nil {
		return Note{}, fmt.Errorf("load notes: %w", err)
	}

	now := s.now()
	n.UpdatedAt = now

	existing := -1
	if n.ID != "" {
		for i := range notes {
			if notes[i].ID == n.ID {
				existing = i
				break
			}
		}
	} else {
		n.ID = newID(notes, now)
	}

	if existing >= 0 {
		n.CreatedAt = notes[existing].CreatedAt
		notes[existing] = n
	} else {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		notes = append(notes, n)
	}

	if err := s.repo.SaveNotes(ctx, username, notes); err != nil {
		s.log.Error("failed to save notes", "username", username, "error", err)
		return Note{}, fmt.Errorf("save notes: %w", err)
	}

	s.log.Debug("note saved", "username", username, "note_id", n.ID)
	return n, nil
}

// Remove drops the note with the given id. A missing id is a no-op, not an
// error.
func (s *Service) Remove(ctx context.Context, username, id string) error {
	notes, err := s.repo.Notes(ctx, username)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	filtered := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}

	if err := s.repo.SaveNotes(ctx, username, filtered); err != nil {
		s.log.Error("failed to save notes", "username", username, "error", err)
		return fmt.Errorf("save notes: %w", err)
	}

	return nil
}

// newID derives an id from the creation timestamp in milliseconds and bumps
// it until it is unique within the collection, so two saves landing in the
// same millisecond still get distinct ids.
func newID(notes []Note, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !idTaken(notes, id) {
			return id
		}
		ms++
	}
}

func idTaken(notes []Note, id string) bool {
	for i := range notes {
		if notes[i].ID == id {
			return true
		}
	}
	return false
}
