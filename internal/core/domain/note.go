package domain

import "time"

// Note is the free-text annotation attached to a member, overwritten
// wholesale on every save. UpdatedAt is nil until the first save stamps it.
type Note struct {
	Body      string     `json:"body"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
