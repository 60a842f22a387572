package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Task), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Task), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, t *Task) (int, error) {
	args := m.Called(ctx, t)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, t *Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestService_Create_DefaultsToPending(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tk *Task) bool {
		return tk.Title == "Buy milk" && tk.Status == StatusPending
	})).Run(func(args mock.Arguments) {
		tk := args.Get(1).(*Task)
		tk.ID = 1
		tk.CreatedAt = time.Now()
		tk.UpdatedAt = tk.CreatedAt
	}).Return(1, nil)

	created, err := service.Create(context.Background(), CreateRequest{Title: "Buy milk"})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, StatusPending, created.Status)
	assert.Nil(t, created.Description)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_TrimsTitleAndDescription(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tk *Task) bool {
		return tk.Title == "Walk dog" && tk.Description != nil && *tk.Description == "in the park"
	})).Return(2, nil)

	_, err := service.Create(context.Background(), CreateRequest{
		Title:       "  Walk dog  ",
		Description: strPtr("  in the park  "),
	})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_WhitespaceTitleRejected(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Create(context.Background(), CreateRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_ExplicitStatus(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tk *Task) bool {
		return tk.Status == StatusCompleted
	})).Return(3, nil)

	_, err := service.Create(context.Background(), CreateRequest{
		Title:  "Done already",
		Status: strPtr("completed"),
	})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_InvalidStatusRejected(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Create(context.Background(), CreateRequest{
		Title:  "Bad status",
		Status: strPtr("done"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Update_PartialFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := &Task{
		ID:          5,
		Title:       "Old title",
		Description: strPtr("old description"),
		Status:      StatusPending,
	}

	mockRepo.On("Get", mock.Anything, 5).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(tk *Task) bool {
		// Title changed, description untouched.
		return tk.Title == "New title" && tk.Description != nil &&
			*tk.Description == "old description" && tk.Status == StatusPending
	})).Return(nil)

	updated, err := service.Update(context.Background(), 5, UpdateRequest{Title: strPtr("New title")})
	assert.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_EmptyDescriptionClears(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := &Task{ID: 6, Title: "Keep", Description: strPtr("something"), Status: StatusPending}

	mockRepo.On("Get", mock.Anything, 6).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(tk *Task) bool {
		return tk.Description == nil
	})).Return(nil)

	updated, err := service.Update(context.Background(), 6, UpdateRequest{Description: strPtr("")})
	assert.NoError(t, err)
	assert.Nil(t, updated.Description)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_EmptyTitleRejected(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := &Task{ID: 7, Title: "Keep", Status: StatusPending}
	mockRepo.On("Get", mock.Anything, 7).Return(existing, nil)

	_, err := service.Update(context.Background(), 7, UpdateRequest{Title: strPtr("   ")})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Update_InvalidStatusRejected(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := &Task{ID: 8, Title: "Keep", Status: StatusPending}
	mockRepo.On("Get", mock.Anything, 8).Return(existing, nil)

	_, err := service.Update(context.Background(), 8, UpdateRequest{Status: strPtr("cancelled")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 99).Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), 99, UpdateRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Toggle_RoundTrip(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	state := &Task{ID: 9, Title: "Flip me", Status: StatusPending}
	mockRepo.On("Get", mock.Anything, 9).Return(state, nil)
	mockRepo.On("Update", mock.Anything, state).Return(nil)

	toggled, err := service.Toggle(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, toggled.Status)

	toggled, err = service.Toggle(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, toggled.Status)
}

func TestService_Toggle_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 42).Return(nil, ErrNotFound)

	_, err := service.Toggle(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, 10).Return(nil)

	err := service.Delete(context.Background(), 10)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, 11).Return(ErrNotFound)

	err := service.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return(nil, errors.New("database error"))

	_, err := service.List(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
