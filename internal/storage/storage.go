package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrInvalidReference indicates a foreign key points at a missing row.
var ErrInvalidReference = errors.New("referenced resource not found")

// ErrMissingField indicates a NOT NULL column received no value.
var ErrMissingField = errors.New("required field is missing")

// ErrInvalidValue indicates a CHECK constraint rejected a value.
var ErrInvalidValue = errors.New("invalid field value")

// Page is a LIMIT/OFFSET window.
type Page struct {
	Limit  int
	Offset int
}

// UserUpdate lists the columns a partial user update may change. Nil fields are left untouched.
type UserUpdate struct {
	Email        *string
	FullName     *string
	PasswordHash *string
	Role         *models.Role
}

// UserStore captures persistence operations needed by the auth core and the user handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate, modifiedBy uuid.UUID) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context, page Page) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
}

type StudentUpdate struct {
	FullName *string
}

type StudentStore interface {
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	FindStudent(ctx context.Context, id uuid.UUID) (models.Student, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, update StudentUpdate, modifiedBy uuid.NullUUID) (models.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
	ListStudents(ctx context.Context, nameFilter string, page Page) ([]models.Student, error)
	CountStudents(ctx context.Context, nameFilter string) (int, error)
}

type ContainerUpdate struct {
	Code      *string
	Location  *string
	StudentID *uuid.UUID
}

type ContainerStore interface {
	CreateContainer(ctx context.Context, container models.Container) (models.Container, error)
	FindContainer(ctx context.Context, id uuid.UUID) (models.Container, error)
	UpdateContainer(ctx context.Context, id uuid.UUID, update ContainerUpdate, modifiedBy uuid.NullUUID) (models.Container, error)
	DeleteContainer(ctx context.Context, id uuid.UUID) error
	ListContainers(ctx context.Context, studentID uuid.NullUUID, page Page) ([]models.Container, error)
	CountContainers(ctx context.Context, studentID uuid.NullUUID) (int, error)
}

// SensorFilter narrows sensor reading listings. Zero values mean "no filter".
type SensorFilter struct {
	ContainerID uuid.NullUUID
	From        *time.Time
	To          *time.Time
}

type SensorReadingUpdate struct {
	ContainerID *uuid.UUID
	StudentID   *uuid.UUID
	Temperature *float64
	Humidity    *float64
	Gas         *float64
	PH          *float64
	Status      *string
}

type SensorStore interface {
	CreateReading(ctx context.Context, reading models.SensorReading) (models.SensorReading, error)
	FindReading(ctx context.Context, id uuid.UUID) (models.SensorReading, error)
	LatestReading(ctx context.Context, containerID uuid.UUID) (models.SensorReading, error)
	UpdateReading(ctx context.Context, id uuid.UUID, update SensorReadingUpdate, modifiedBy uuid.NullUUID) (models.SensorReading, error)
	DeleteReading(ctx context.Context, id uuid.UUID) error
	ListReadings(ctx context.Context, filter SensorFilter, page Page) ([]models.SensorReading, error)
	CountReadings(ctx context.Context, filter SensorFilter) (int, error)
}

type ReportFilter struct {
	StudentID   uuid.NullUUID
	ContainerID uuid.NullUUID
}

type ReportUpdate struct {
	StudentID    *uuid.UUID
	ContainerID  *uuid.UUID
	SensorDataID *uuid.UUID
	Notes        *string
}

type ReportStore interface {
	CreateReport(ctx context.Context, report models.Report) (models.Report, error)
	FindReport(ctx context.Context, id uuid.UUID) (models.Report, error)
	UpdateReport(ctx context.Context, id uuid.UUID, update ReportUpdate, modifiedBy uuid.NullUUID) (models.Report, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
	ListReports(ctx context.Context, filter ReportFilter, page Page) ([]models.Report, error)
	CountReports(ctx context.Context, filter ReportFilter) (int, error)
}

type SheepUpdate struct {
	Name *string
	Age  *int
}

type SheepStore interface {
	CreateSheep(ctx context.Context, sheep models.Sheep) (models.Sheep, error)
	FindSheep(ctx context.Context, id uuid.UUID) (models.Sheep, error)
	UpdateSheep(ctx context.Context, id uuid.UUID, update SheepUpdate, modifiedBy uuid.NullUUID) (models.Sheep, error)
	DeleteSheep(ctx context.Context, id uuid.UUID) error
	ListSheep(ctx context.Context, nameFilter string, page Page) ([]models.Sheep, error)
	CountSheep(ctx context.Context, nameFilter string) (int, error)
}

type SheepReportFilter struct {
	SheepID uuid.NullUUID
	Status  string
	From    *time.Time
	To      *time.Time
}

type SheepReportUpdate struct {
	SheepID     *uuid.UUID
	FeedingTime *time.Time
	Status      *string
}

type SheepReportStore interface {
	CreateSheepReport(ctx context.Context, report models.SheepReport) (models.SheepReport, error)
	FindSheepReport(ctx context.Context, id uuid.UUID) (models.SheepReport, error)
	UpdateSheepReport(ctx context.Context, id uuid.UUID, update SheepReportUpdate, modifiedBy uuid.NullUUID) (models.SheepReport, error)
	DeleteSheepReport(ctx context.Context, id uuid.UUID) error
	ListSheepReports(ctx context.Context, filter SheepReportFilter, page Page) ([]models.SheepReport, error)
	CountSheepReports(ctx context.Context, filter SheepReportFilter) (int, error)
	RecentSheepReports(ctx context.Context, status string, limit int) ([]models.SheepReport, error)
}

// Pinger reports database liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the full persistence surface the HTTP server is built on.
type Store interface {
	Pinger
	UserStore
	StudentStore
	ContainerStore
	SensorStore
	ReportStore
	SheepStore
	SheepReportStore
}
