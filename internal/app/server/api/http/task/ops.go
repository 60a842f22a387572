package task

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-list",
		Method:      http.MethodGet,
		Path:        "/api/tasks",
		Summary:     "List all tasks",
		Description: "Returns every task, newest first.",
		Tags:        []string{"tasks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-find",
		Method:      http.MethodGet,
		Path:        "/api/tasks/{id}",
		Summary:     "Get a single task",
		Tags:        []string{"tasks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "tasks-create",
		Method:        http.MethodPost,
		Path:          "/api/tasks",
		Summary:       "Create a task",
		Description:   "Creates a task. Status defaults to pending.",
		Tags:          []string{"tasks"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-update",
		Method:      http.MethodPut,
		Path:        "/api/tasks/{id}",
		Summary:     "Update a task",
		Description: "Applies any subset of title, description and status.",
		Tags:        []string{"tasks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) toggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-toggle",
		Method:      http.MethodPatch,
		Path:        "/api/tasks/{id}/toggle",
		Summary:     "Toggle task status",
		Description: "Flips the status between pending and completed.",
		Tags:        []string{"tasks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "tasks-delete",
		Method:        http.MethodDelete,
		Path:          "/api/tasks/{id}",
		Summary:       "Delete a task",
		Tags:          []string{"tasks"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
