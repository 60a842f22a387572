package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/app/client/storage"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/user"
)

// ErrNotAuthenticated возвращается, когда нет активной сессии
var ErrNotAuthenticated = fmt.Errorf("вход не выполнен. Выполните: notekeeper auth login")

type App struct {
	config *config.Config
	log    *slog.Logger
	kv     *storage.SQLiteKV

	Users user.Servicer
	Notes note.Servicer
	Tasks *TaskClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	// Инициализируем локальное хранилище (SQLite)
	kv, err := storage.NewSQLiteKV(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации локального хранилища: %w", err)
	}

	userRepo := storage.NewUserRepository(kv, log)
	noteRepo := storage.NewNoteRepository(kv, log)

	app := &App{
		config: cfg,
		log:    log,
		kv:     kv,
		Users:  user.NewService(userRepo, log),
		Notes:  note.NewService(noteRepo, log),
		Tasks:  NewTaskClient(cfg, log),
	}

	return app, nil
}

// CurrentUser возвращает имя пользователя активной сессии
func (a *App) CurrentUser(ctx context.Context) (string, error) {
	username, ok, err := a.Users.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения сессии: %w", err)
	}
	if !ok {
		return "", ErrNotAuthenticated
	}
	return username, nil
}

// CheckConnection проверяет соединение с сервером задач
func (a *App) CheckConnection(ctx context.Context) error {
	return a.Tasks.Health(ctx)
}

func (a *App) Close() error {
	return a.kv.Close()
}
