package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/user"
)

// Conceptual schema of the kv store: the user map and the session pointer
// live under fixed keys, each user's notes under a per-user key.
const (
	usersKey       = "users"
	currentUserKey = "current_user"
	notesKeyPrefix = "notes_"
)

type UserRepository struct {
	kv  KV
	log *slog.Logger
}

func NewUserRepository(kv KV, log *slog.Logger) *UserRepository {
	return &UserRepository{
		kv:  kv,
		log: log.With("component", "user_repository"),
	}
}

// Users loads the full user map. Unreadable or corrupt state degrades to an
// empty map: local-first fail-soft, the caller sees "no data".
func (r *UserRepository) Users(ctx context.Context) (map[string]user.User, error) {
	users := make(map[string]user.User)

	raw, ok, err := r.kv.Get(ctx, usersKey)
	if err != nil {
		r.log.Warn("failed to read users, treating as empty", "error", err)
		return users, nil
	}
	if !ok {
		return users, nil
	}

	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		r.log.Warn("corrupt users blob, treating as empty", "error", err)
		return make(map[string]user.User), nil
	}

	return users, nil
}

func (r *UserRepository) SaveUsers(ctx context.Context, users map[string]user.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	return r.kv.Set(ctx, usersKey, string(raw))
}

func (r *UserRepository) CurrentUser(ctx context.Context) (string, error) {
	username, ok, err := r.kv.Get(ctx, currentUserKey)
	if err != nil {
		r.log.Warn("failed to read session, treating as absent", "error", err)
		return "", nil
	}
	if !ok {
		return "", nil
	}
	return username, nil
}

func (r *UserRepository) SetCurrentUser(ctx context.Context, username string) error {
	return r.kv.Set(ctx, currentUserKey, username)
}

func (r *UserRepository) ClearCurrentUser(ctx context.Context) error {
	return r.kv.Remove(ctx, currentUserKey)
}
