package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateSheepRequest struct {
	Name string `json:"name"`
	Age  *int   `json:"age,omitempty"`
}

func (r *CreateSheepRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateSheepRequest) Validate() error {
	var c checker
	c.length("name", r.Name, 1, 255)
	if r.Age != nil && *r.Age < 0 {
		c.add("age must be greater than or equal to 0")
	}
	return c.err()
}

// AgeOrDefault returns the requested age or zero.
func (r CreateSheepRequest) AgeOrDefault() int {
	if r.Age == nil {
		return 0
	}
	return *r.Age
}

type UpdateSheepRequest struct {
	Name *string `json:"name,omitempty"`
	Age  *int    `json:"age,omitempty"`
}

func (r *UpdateSheepRequest) Normalize() {
	trimPtr(r.Name)
}

func (r UpdateSheepRequest) Validate() error {
	var c checker
	c.atLeastOne(r.Name != nil, r.Age != nil)
	if r.Name != nil {
		c.length("name", *r.Name, 1, 255)
	}
	if r.Age != nil && *r.Age < 0 {
		c.add("age must be greater than or equal to 0")
	}
	return c.err()
}

type CreateSheepReportRequest struct {
	SheepID     uuid.UUID  `json:"sheep_id"`
	FeedingTime *time.Time `json:"feeding_time"`
	Status      string     `json:"status"`
}

func (r *CreateSheepReportRequest) Normalize() {
	r.Status = strings.TrimSpace(r.Status)
}

func (r CreateSheepReportRequest) Validate() error {
	var c checker
	c.id("sheep_id", r.SheepID)
	if r.FeedingTime == nil || r.FeedingTime.IsZero() {
		c.add("feeding_time is required")
	}
	c.length("status", r.Status, 1, 50)
	return c.err()
}

type UpdateSheepReportRequest struct {
	SheepID     *uuid.UUID `json:"sheep_id,omitempty"`
	FeedingTime *time.Time `json:"feeding_time,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

func (r *UpdateSheepReportRequest) Normalize() {
	trimPtr(r.Status)
}

func (r UpdateSheepReportRequest) Validate() error {
	var c checker
	c.atLeastOne(r.SheepID != nil, r.FeedingTime != nil, r.Status != nil)
	if r.SheepID != nil {
		c.id("sheep_id", *r.SheepID)
	}
	if r.FeedingTime != nil && r.FeedingTime.IsZero() {
		c.add("feeding_time must be a valid ISO 8601 date")
	}
	if r.Status != nil {
		c.length("status", *r.Status, 1, 50)
	}
	return c.err()
}
