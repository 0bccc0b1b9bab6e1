package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	StudentID    uuid.UUID  `json:"student_id"`
	ContainerID  uuid.UUID  `json:"container_id"`
	SensorDataID *uuid.UUID `json:"sensor_data_id,omitempty"`
	Notes        string     `json:"notes"`
}

func (r CreateReportRequest) Validate() error {
	var c checker
	c.id("student_id", r.StudentID)
	c.id("container_id", r.ContainerID)
	if r.SensorDataID != nil {
		c.id("sensor_data_id", *r.SensorDataID)
	}
	return c.err()
}

type UpdateReportRequest struct {
	StudentID    *uuid.UUID `json:"student_id,omitempty"`
	ContainerID  *uuid.UUID `json:"container_id,omitempty"`
	SensorDataID *uuid.UUID `json:"sensor_data_id,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

func (r UpdateReportRequest) Validate() error {
	var c checker
	c.atLeastOne(r.StudentID != nil, r.ContainerID != nil, r.SensorDataID != nil, r.Notes != nil)
	if r.StudentID != nil {
		c.id("student_id", *r.StudentID)
	}
	if r.ContainerID != nil {
		c.id("container_id", *r.ContainerID)
	}
	if r.SensorDataID != nil {
		c.id("sensor_data_id", *r.SensorDataID)
	}
	return c.err()
}
