package task

import "notekeeper/internal/domain/task"

type listOutput struct {
	Body []task.Task
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"Task ID"`
}

type taskOutput struct {
	Body task.Task
}

type createInput struct {
	Body createRequest
}

// All body fields are optional at the schema level: validation (and the
// exact error texts) belongs to the task service, not the JSON schema.
type createRequest struct {
	Title       string  `json:"title,omitempty" example:"Buy milk" doc:"Task title, required and non-empty after trimming"`
	Description *string `json:"description,omitempty" doc:"Optional free-form description"`
	Status      *string `json:"status,omitempty" doc:"pending or completed, defaults to pending"`
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"Task ID"`
	Body updateRequest
}

// Absent fields are left untouched; a present empty description clears it.
type updateRequest struct {
	Title       *string `json:"title,omitempty" doc:"New title, non-empty after trimming"`
	Description *string `json:"description,omitempty" doc:"New description, empty clears it"`
	Status      *string `json:"status,omitempty" doc:"pending or completed"`
}

type deleteInput struct {
	ID int `path:"id" example:"1" doc:"Task ID"`
}

type deleteOutput struct{}
