package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/task"
)

// TaskClient ходит в REST API сервера задач
type TaskClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

// TaskRequest описывает тело создания/обновления задачи. Отсутствующие поля
// не отправляются и остаются без изменений на сервере.
type TaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func NewTaskClient(cfg *config.Config, log *slog.Logger) *TaskClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &TaskClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Notekeeper-Client/1.0",
	}
}

// Health проверяет доступность сервера
func (c *TaskClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

// List возвращает все задачи, новые первыми
func (c *TaskClient) List(ctx context.Context) ([]task.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/tasks", nil)
	if err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := c.parseResponse(resp, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Get возвращает задачу по ID
func (c *TaskClient) Get(ctx context.Context, id int) (*task.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var t task.Task
	if err := c.parseResponse(resp, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Create создает задачу на сервере
func (c *TaskClient) Create(ctx context.Context, req TaskRequest) (*task.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/tasks", req)
	if err != nil {
		return nil, err
	}

	var t task.Task
	if err := c.parseResponse(resp, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Update обновляет поля задачи
func (c *TaskClient) Update(ctx context.Context, id int, req TaskRequest) (*task.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), req)
	if err != nil {
		return nil, err
	}

	var t task.Task
	if err := c.parseResponse(resp, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Toggle переключает статус задачи
func (c *TaskClient) Toggle(ctx context.Context, id int) (*task.Task, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/toggle", id), nil)
	if err != nil {
		return nil, err
	}

	var t task.Task
	if err := c.parseResponse(resp, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Delete удаляет задачу
func (c *TaskClient) Delete(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}

func (c *TaskClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (c *TaskClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	c.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("ошибка сервера: %s", errResp.Error)
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
