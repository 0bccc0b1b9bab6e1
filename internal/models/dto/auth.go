package dto

import "strings"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Normalize trims the email and lower-cases it.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r LoginRequest) Validate() error {
	var c checker
	if r.Email == "" || r.Password == "" {
		c.add("email and password are required")
	}
	return c.err()
}
