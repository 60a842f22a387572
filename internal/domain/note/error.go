package note

import "errors"

var ErrEmptyTitle = errors.New("note title is empty")
