package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateContainerRequest struct {
	Code      string    `json:"code"`
	Location  string    `json:"location"`
	StudentID uuid.UUID `json:"student_id"`
}

func (r *CreateContainerRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Location = strings.TrimSpace(r.Location)
}

func (r CreateContainerRequest) Validate() error {
	var c checker
	c.length("code", r.Code, 1, 50)
	c.length("location", r.Location, 1, 100)
	c.id("student_id", r.StudentID)
	return c.err()
}

type UpdateContainerRequest struct {
	Code      *string    `json:"code,omitempty"`
	Location  *string    `json:"location,omitempty"`
	StudentID *uuid.UUID `json:"student_id,omitempty"`
}

func (r *UpdateContainerRequest) Normalize() {
	trimPtr(r.Code)
	trimPtr(r.Location)
}

func (r UpdateContainerRequest) Validate() error {
	var c checker
	c.atLeastOne(r.Code != nil, r.Location != nil, r.StudentID != nil)
	if r.Code != nil {
		c.length("code", *r.Code, 1, 50)
	}
	if r.Location != nil {
		c.length("location", *r.Location, 1, 100)
	}
	if r.StudentID != nil {
		c.id("student_id", *r.StudentID)
	}
	return c.err()
}
