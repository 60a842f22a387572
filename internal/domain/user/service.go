package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
	Current(ctx context.Context) (string, bool, error)
	Logout(ctx context.Context) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "user_service"),
	}
}

// Register adds a new user record and persists the full user map. Usernames
// collide on a case-sensitive exact match.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	users, err := s.repo.Users(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	if _, exists := users[username]; exists {
		return ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	users[username] = User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.SaveUsers(ctx, users); err != nil {
		s.log.Error("failed to save users", "error", err)
		return fmt.Errorf("save users: %w", err)
	}

	s.log.Info("user registered", "username", username)
	return nil
}

// Authenticate checks the credentials and opens a session on success. Every
// failure mode collapses into ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	users, err := s.repo.Users(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	u, ok := users[username]
	if !ok {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.repo.SetCurrentUser(ctx, username); err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	s.log.Info("user authenticated", "username", username)
	return nil
}

// Current returns the active session pointer, if any.
func (s *Service) Current(ctx context.Context) (string, bool, error) {
	username, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return "", false, fmt.Errorf("load session: %w", err)
	}
	return username, username != "", nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.repo.ClearCurrentUser(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
