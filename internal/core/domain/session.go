package domain

import (
	"errors"
	"time"
)

// RoleAdmin is the role claim for the administrator; user-class roles use
// the UserClass string values.
const RoleAdmin = "admin"

// AdminUsername is the fixed id of the singleton administrator account.
const AdminUsername = "admin"

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUnauthorized = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrPasswordTooShort = errors.New("password too short")
var ErrPasswordMismatch = errors.New("password confirmation does not match")

// MinPasswordLength applies to admin password changes.
const MinPasswordLength = 4

// LastLogin records the most recent successful login per user id; overwritten
// on every login, no history.
type LastLogin struct {
	UserID string    `json:"user_id"`
	At     time.Time `json:"at"`
	IP     string    `json:"ip"`
}
