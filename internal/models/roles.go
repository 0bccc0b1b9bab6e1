package models

import "encoding/json"

// Role is the authorization level stored on a user record.
type Role int

const (
	RoleUser  Role = 0
	RoleAdmin Role = 1
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether r grants administrator access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// MarshalJSON keeps the numeric wire format.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}
