package task

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/httperr"
	"notekeeper/internal/domain/task"
)

type Handler struct {
	service    task.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service task.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.toggleOp(), h.toggle)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	tasks, err := h.service.List(ctx)
	if err != nil {
		return nil, httperr.Internal(err.Error())
	}

	return &listOutput{Body: tasks}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*taskOutput, error) {
	t, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return nil, httperr.NotFound("Task not found")
		}
		return nil, httperr.Internal(err.Error())
	}

	return &taskOutput{Body: *t}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*taskOutput, error) {
	t, err := h.service.Create(ctx, task.CreateRequest{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Status:      input.Body.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, task.ErrEmptyTitle):
			return nil, httperr.BadRequest("Title is required")
		case errors.Is(err, task.ErrInvalidStatus):
			return nil, httperr.BadRequest("Status must be pending or completed")
		default:
			return nil, httperr.Internal(err.Error())
		}
	}

	return &taskOutput{Body: *t}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*taskOutput, error) {
	t, err := h.service.Update(ctx, input.ID, task.UpdateRequest{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Status:      input.Body.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, task.ErrNotFound):
			return nil, httperr.NotFound("Task not found")
		case errors.Is(err, task.ErrEmptyTitle):
			return nil, httperr.BadRequest("Title cannot be empty")
		case errors.Is(err, task.ErrInvalidStatus):
			return nil, httperr.BadRequest("Status must be pending or completed")
		default:
			return nil, httperr.Internal(err.Error())
		}
	}

	return &taskOutput{Body: *t}, nil
}

func (h *Handler) toggle(ctx context.Context, input *findInput) (*taskOutput, error) {
	t, err := h.service.Toggle(ctx, input.ID)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return nil, httperr.NotFound("Task not found")
		}
		return nil, httperr.Internal(err.Error())
	}

	return &taskOutput{Body: *t}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return nil, httperr.NotFound("Task not found")
		}
		return nil, httperr.Internal(err.Error())
	}

	return &deleteOutput{}, nil
}
