package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

// CreateRequest carries the fields accepted on task creation. Description and
// Status are optional; a nil pointer means the field was not provided.
type CreateRequest struct {
	Title       string
	Description *string
	Status      *string
}

// UpdateRequest carries a partial update. Nil pointers mean "leave as is";
// a present but empty description clears it.
type UpdateRequest struct {
	Title       *string
	Description *string
	Status      *string
}

type Servicer interface {
	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id int) (*Task, error)
	Create(ctx context.Context, req CreateRequest) (*Task, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Task, error)
	Toggle(ctx context.Context, id int) (*Task, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "task_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list tasks", "error", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Task, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get task", "task_id", id, "error", err)
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	status := StatusPending
	if req.Status != nil {
		status = Status(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	t := &Task{
		Title:       title,
		Description: normalizeDescription(req.Description),
		Status:      status,
	}

	if _, err := s.repo.Create(ctx, t); err != nil {
		s.log.Error("failed to create task", "title", title, "error", err)
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.Info("task created", "task_id", t.ID)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Task, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task for update: %w", err)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		t.Title = title
	}

	if req.Description != nil {
		t.Description = normalizeDescription(req.Description)
	}

	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		t.Status = status
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.log.Error("failed to update task", "task_id", id, "error", err)
		return nil, fmt.Errorf("update task: %w", err)
	}

	return t, nil
}

func (s *Service) Toggle(ctx context.Context, id int) (*Task, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task for toggle: %w", err)
	}

	t.Status = t.Status.Toggled()

	if err := s.repo.Update(ctx, t); err != nil {
		s.log.Error("failed to toggle task", "task_id", id, "error", err)
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete task", "task_id", id, "error", err)
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.Info("task deleted", "task_id", id)
	return nil
}

// normalizeDescription trims the description and collapses a provided empty
// string to nil, so it is stored as NULL rather than "".
func normalizeDescription(d *string) *string {
	if d == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*d)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
