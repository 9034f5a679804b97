package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidLogin = errors.New("name and team are required")

// User models a portal agent. Identity is established solely by the
// (name, team) pair presented at login; there is no credential on record.
// The pair is intentionally not unique at storage level; login performs a
// find-or-create and relies on the first match.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
