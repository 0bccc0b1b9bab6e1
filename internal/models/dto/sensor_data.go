package dto

import "github.com/google/uuid"

type CreateSensorReadingRequest struct {
	ContainerID uuid.UUID `json:"container_id"`
	StudentID   uuid.UUID `json:"student_id"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Gas         *float64  `json:"gas"`
	PH          *float64  `json:"ph"`
	Status      *string   `json:"status,omitempty"`
}

func (r *CreateSensorReadingRequest) Normalize() {
	trimPtr(r.Status)
}

func (r CreateSensorReadingRequest) Validate() error {
	var c checker
	c.id("container_id", r.ContainerID)
	c.id("student_id", r.StudentID)
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"temperature", r.Temperature},
		{"humidity", r.Humidity},
		{"gas", r.Gas},
		{"ph", r.PH},
	} {
		if f.value == nil {
			c.add(f.name + " is required")
		}
	}
	if r.Status != nil {
		c.length("status", *r.Status, 0, 50)
	}
	return c.err()
}

type UpdateSensorReadingRequest struct {
	ContainerID *uuid.UUID `json:"container_id,omitempty"`
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	Temperature *float64   `json:"temperature,omitempty"`
	Humidity    *float64   `json:"humidity,omitempty"`
	Gas         *float64   `json:"gas,omitempty"`
	PH          *float64   `json:"ph,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

func (r *UpdateSensorReadingRequest) Normalize() {
	trimPtr(r.Status)
}

func (r UpdateSensorReadingRequest) Validate() error {
	var c checker
	c.atLeastOne(r.ContainerID != nil, r.StudentID != nil, r.Temperature != nil, r.Humidity != nil,
		r.Gas != nil, r.PH != nil, r.Status != nil)
	if r.ContainerID != nil {
		c.id("container_id", *r.ContainerID)
	}
	if r.StudentID != nil {
		c.id("student_id", *r.StudentID)
	}
	if r.Status != nil {
		c.length("status", *r.Status, 0, 50)
	}
	return c.err()
}
