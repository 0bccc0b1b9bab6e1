package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is a learner who owns containers and reports.
type Student struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Audit
}

// Container is a monitored storage unit identified by a unique code.
type Container struct {
	ID        uuid.UUID     `json:"id"`
	Code      string        `json:"code"`
	Location  string        `json:"location"`
	StudentID uuid.NullUUID `json:"student_id"`
	Audit
}

// SensorReading is a single measurement posted for a container.
type SensorReading struct {
	ID            uuid.UUID     `json:"id"`
	ContainerID   uuid.UUID     `json:"container_id"`
	ContainerCode *string       `json:"container_code,omitempty"`
	StudentID     uuid.NullUUID `json:"student_id"`
	Temperature   float64       `json:"temperature"`
	Humidity      float64       `json:"humidity"`
	Gas           float64       `json:"gas"`
	PH            float64       `json:"ph"`
	Status        *string       `json:"status,omitempty"`
	Audit
}

// Report links a student's notes to a container and, optionally, a reading.
type Report struct {
	ID            uuid.UUID      `json:"id"`
	StudentID     uuid.UUID      `json:"student_id"`
	ContainerID   uuid.UUID      `json:"container_id"`
	SensorDataID  uuid.NullUUID  `json:"sensor_data_id"`
	Notes         string         `json:"notes"`
	ContainerCode *string        `json:"container_code,omitempty"`
	StudentName   *string        `json:"student_name,omitempty"`
	Reading       *ReadingValues `json:"reading,omitempty"`
	Audit
}

// ReadingValues is the subset of a sensor reading embedded in a report.
type ReadingValues struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Gas         float64 `json:"gas"`
	PH          float64 `json:"ph"`
	Status      *string `json:"status,omitempty"`
}

// Sheep is a tracked animal.
type Sheep struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Age  int       `json:"age"`
	Audit
}

// SheepReport records a feeding event for a sheep.
type SheepReport struct {
	ID          uuid.UUID `json:"id"`
	SheepID     uuid.UUID `json:"sheep_id"`
	FeedingTime time.Time `json:"feeding_time"`
	Status      string    `json:"status"`
	SheepName   *string   `json:"sheep_name,omitempty"`
	SheepAge    *int      `json:"sheep_age,omitempty"`
	Audit
}
