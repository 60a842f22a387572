package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/task"
)

type TaskRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTaskRepository(pool *pgxpool.Pool, log *slog.Logger) *TaskRepository {
	return &TaskRepository{
		pool: pool,
		log:  log.With("component", "task_repository"),
	}
}

func (r *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	// id breaks ties between rows created within the same timestamp tick.
	const query = `
		SELECT id, title, description, status, created_at, updated_at
		FROM tasks
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list tasks", "error", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) Get(ctx context.Context, id int) (*task.Task, error) {
	const query = `
		SELECT id, title, description, status, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	var t task.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Title, &t.Description,
		&t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrNotFound
		}
		r.log.Error("failed to get task", "task_id", id, "error", err)
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (int, error) {
	const query = `
		INSERT INTO tasks (title, description, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, t.Title, t.Description, t.Status).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create task", "title", t.Title, "error", err)
		return 0, fmt.Errorf("create task: %w", err)
	}

	return t.ID, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	const query = `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query, t.Title, t.Description, t.Status, t.ID).
		Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrNotFound
		}
		r.log.Error("failed to update task", "task_id", t.ID, "error", err)
		return fmt.Errorf("update task: %w", err)
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete task", "task_id", id, "error", err)
		return fmt.Errorf("delete task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}
