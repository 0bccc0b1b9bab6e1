package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit holds the bookkeeping columns every entity table carries.
type Audit struct {
	CreatedAt  time.Time     `json:"created_at"`
	ModifiedAt time.Time     `json:"modified_at"`
	CreatedBy  uuid.NullUUID `json:"created_by"`
	ModifiedBy uuid.NullUUID `json:"modified_by"`
}

// ActorID converts an optional acting user into a nullable column value.
func ActorID(user *User) uuid.NullUUID {
	if user == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: user.ID, Valid: true}
}
