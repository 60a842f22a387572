package task

import "errors"

var (
	ErrNotFound      = errors.New("task not found")
	ErrEmptyTitle    = errors.New("title is empty")
	ErrInvalidStatus = errors.New("status must be pending or completed")
)
