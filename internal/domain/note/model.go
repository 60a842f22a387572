package note

import "time"

// Note is a single record in a user's collection. ID is unique within the
// collection and immutable once assigned; CreatedAt never changes after the
// first save, UpdatedAt is refreshed on every save.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
