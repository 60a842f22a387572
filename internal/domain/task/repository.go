package task

import "context"

type Repository interface {
	// List returns all tasks ordered by creation time, newest first.
	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id int) (*Task, error)
	// Create inserts the task and fills its ID and timestamps.
	Create(ctx context.Context, t *Task) (int, error)
	// Update writes title, description and status and refreshes UpdatedAt.
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id int) error
}
