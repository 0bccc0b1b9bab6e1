package dto

import (
	"strings"

	"github.com/damayanti/damayanti-be/internal/models"
)

type CreateUserRequest struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	FullName string       `json:"full_name"`
	Role     *models.Role `json:"role,omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
}

func (r CreateUserRequest) Validate() error {
	var c checker
	c.email(r.Email)
	c.password(r.Password)
	c.length("full_name", r.FullName, 2, 255)
	if r.Role != nil && !r.Role.Valid() {
		c.add("role must be one of [0, 1]")
	}
	return c.err()
}

// RoleOrDefault returns the requested role, falling back to an ordinary user.
func (r CreateUserRequest) RoleOrDefault() models.Role {
	if r.Role == nil {
		return models.RoleUser
	}
	return *r.Role
}

type UpdateUserRequest struct {
	Email    *string      `json:"email,omitempty"`
	Password *string      `json:"password,omitempty"`
	FullName *string      `json:"full_name,omitempty"`
	Role     *models.Role `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
	}
	trimPtr(r.FullName)
}

func (r UpdateUserRequest) Validate() error {
	var c checker
	c.atLeastOne(r.Email != nil, r.Password != nil, r.FullName != nil, r.Role != nil)
	if r.Email != nil {
		c.email(*r.Email)
	}
	if r.Password != nil {
		c.password(*r.Password)
	}
	if r.FullName != nil {
		c.length("full_name", *r.FullName, 2, 255)
	}
	if r.Role != nil && !r.Role.Valid() {
		c.add("role must be one of [0, 1]")
	}
	return c.err()
}
