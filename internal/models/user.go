package models

import (
	"time"

	"github.com/google/uuid"
)

// User captures application-facing fields for an authenticated identity.
type User struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	FullName     string        `json:"full_name"`
	Role         Role          `json:"role"`
	PasswordHash string        `json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	ModifiedAt   time.Time     `json:"modified_at"`
	CreatedBy    uuid.NullUUID `json:"created_by"`
	ModifiedBy   uuid.NullUUID `json:"modified_by"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
