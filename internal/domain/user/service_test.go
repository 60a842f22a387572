package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Users(ctx context.Context) (map[string]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]User), args.Error(1)
}

func (m *MockRepository) SaveUsers(ctx context.Context, users map[string]User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockRepository) CurrentUser(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) SetCurrentUser(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockRepository) ClearCurrentUser(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Users", mock.Anything).Return(map[string]User{}, nil)
	mockRepo.On("SaveUsers", mock.Anything, mock.MatchedBy(func(users map[string]User) bool {
		u, ok := users["alice"]
		if !ok {
			return false
		}
		// The stored hash must verify against the original password.
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
	})).Return(nil)

	err := service.Register(context.Background(), "alice", "secret123")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Users", mock.Anything).Return(map[string]User{
		"alice": {Username: "alice"},
	}, nil)

	err := service.Register(context.Background(), "alice", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	mockRepo.AssertNotCalled(t, "SaveUsers")
}

func TestService_Register_CaseSensitiveUsernames(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Users", mock.Anything).Return(map[string]User{
		"alice": {Username: "alice"},
	}, nil)
	mockRepo.On("SaveUsers", mock.Anything, mock.Anything).Return(nil)

	// "Alice" is a different user than "alice".
	err := service.Register(context.Background(), "Alice", "secret123")
	assert.NoError(t, err)
}

func TestService_Register_EmptyInput(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	assert.ErrorIs(t, service.Register(context.Background(), "   ", "secret123"), ErrInvalidInput)
	assert.ErrorIs(t, service.Register(context.Background(), "alice", ""), ErrInvalidInput)
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo.On("Users", mock.Anything).Return(map[string]User{
		"alice": {Username: "alice", PasswordHash: string(hash)},
	}, nil)
	mockRepo.On("SetCurrentUser", mock.Anything, "alice").Return(nil)

	err = service.Authenticate(context.Background(), "alice", "secret123")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo.On("Users", mock.Anything).Return(map[string]User{
		"alice": {Username: "alice", PasswordHash: string(hash)},
	}, nil)

	unknownUser := service.Authenticate(context.Background(), "nobody", "secret123")
	wrongPassword := service.Authenticate(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.Equal(t, unknownUser, wrongPassword)

	mockRepo.AssertNotCalled(t, "SetCurrentUser")
}

func TestService_Current(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("CurrentUser", mock.Anything).Return("alice", nil)

	username, ok, err := service.Current(context.Background())
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestService_Current_NoSession(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("CurrentUser", mock.Anything).Return("", nil)

	_, ok, err := service.Current(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Logout(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("ClearCurrentUser", mock.Anything).Return(nil)

	assert.NoError(t, service.Logout(context.Background()))
	mockRepo.AssertExpectations(t)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Users", mock.Anything).Return(nil, errors.New("storage error"))

	err := service.Register(context.Background(), "alice", "secret123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "storage error")
}
