//GET    /health                # Проверка сервера (публичный)
//GET    /api/tasks             # Список задач
//POST   /api/tasks             # Создать задачу
//GET    /api/tasks/{id}        # Получить задачу
//PUT    /api/tasks/{id}        # Обновить задачу
//PATCH  /api/tasks/{id}/toggle # Переключить статус
//DELETE /api/tasks/{id}        # Удалить задачу

package api

import (
	healthAPI "notekeeper/internal/app/server/api/http/health"
	"notekeeper/internal/app/server/api/http/middleware"
	"notekeeper/internal/app/server/api/http/middleware/logger"
	taskAPI "notekeeper/internal/app/server/api/http/task"
	"notekeeper/internal/domain/task"
	"notekeeper/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Task   *taskAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Notekeeper Tasks API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Task.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	taskRepo := postgres.NewTaskRepository(storage.Pool(), log)
	taskService := task.NewService(taskRepo, log)
	middlewares.Add(loggerMW.Middleware())
	taskHandler := taskAPI.NewHandler(taskService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Task:   taskHandler,
	}
}
