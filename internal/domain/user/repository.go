package user

import "context"

// Repository persists the full username → record map as one blob plus the
// single current-session pointer.
type Repository interface {
	Users(ctx context.Context) (map[string]User, error)
	SaveUsers(ctx context.Context, users map[string]User) error

	// CurrentUser returns "" when no session is active.
	CurrentUser(ctx context.Context) (string, error)
	SetCurrentUser(ctx context.Context, username string) error
	ClearCurrentUser(ctx context.Context) error
}
