package dto

import "strings"

type CreateStudentRequest struct {
	FullName string `json:"full_name"`
}

func (r *CreateStudentRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
}

func (r CreateStudentRequest) Validate() error {
	var c checker
	c.length("full_name", r.FullName, 2, 255)
	return c.err()
}

type UpdateStudentRequest struct {
	FullName *string `json:"full_name,omitempty"`
}

func (r *UpdateStudentRequest) Normalize() {
	trimPtr(r.FullName)
}

func (r UpdateStudentRequest) Validate() error {
	var c checker
	c.atLeastOne(r.FullName != nil)
	if r.FullName != nil {
		c.length("full_name", *r.FullName, 2, 255)
	}
	return c.err()
}
