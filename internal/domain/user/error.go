package user

import "errors"

var (
	ErrDuplicateUser = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)
