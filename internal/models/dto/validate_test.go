package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damayanti/damayanti-be/internal/models"
)

func problems(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "want *ValidationError, got %T", err)
	return verr.Problems
}

func TestCreateUserRequest(t *testing.T) {
	req := CreateUserRequest{Email: "  A@X.com ", Password: "secret1", FullName: " Ada "}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Equal(t, "a@x.com", req.Email)
	assert.Equal(t, "Ada", req.FullName)
	assert.Equal(t, models.RoleUser, req.RoleOrDefault())

	bad := models.Role(3)
	got := problems(t, CreateUserRequest{Email: "nope", Password: "123", FullName: "A", Role: &bad}.Validate())
	assert.Equal(t, []string{
		"email must be a valid email",
		"password must be at least 6 characters",
		"full_name must be at least 2 characters",
		"role must be one of [0, 1]",
	}, got)

	long := strings.Repeat("x", 73)
	assert.Contains(t, problems(t, CreateUserRequest{Email: "a@x.com", Password: long, FullName: "Ada"}.Validate()),
		"password must be at most 72 bytes")
}

func TestUpdateRequestsNeedAField(t *testing.T) {
	for _, v := range []interface{ Validate() error }{
		UpdateUserRequest{}, UpdateStudentRequest{}, UpdateContainerRequest{}, UpdateSensorReadingRequest{},
		UpdateReportRequest{}, UpdateSheepRequest{}, UpdateSheepReportRequest{},
	} {
		assert.Equal(t, []string{"at least one field must be provided"}, problems(t, v.Validate()))
	}
}

func TestCreateContainerRequest(t *testing.T) {
	req := CreateContainerRequest{Code: strings.Repeat("c", 51), Location: " "}
	req.Normalize()
	assert.Equal(t, []string{
		"code must be at most 50 characters",
		"location is required",
		"student_id must be a valid UUID",
	}, problems(t, req.Validate()))
}

func TestCreateSensorReadingRequest(t *testing.T) {
	zero := 0.0
	req := CreateSensorReadingRequest{ContainerID: uuid.New(), StudentID: uuid.New(),
		Temperature: &zero, Humidity: &zero, Gas: &zero, PH: &zero}
	assert.NoError(t, req.Validate())

	req.PH = nil
	assert.Equal(t, []string{"ph is required"}, problems(t, req.Validate()))
}

func TestCreateReportRequestAllowsEmptyNotes(t *testing.T) {
	assert.NoError(t, CreateReportRequest{StudentID: uuid.New(), ContainerID: uuid.New()}.Validate())
}

func TestSheepReportRequest(t *testing.T) {
	now := time.Now()
	req := CreateSheepReportRequest{SheepID: uuid.New(), FeedingTime: &now, Status: " fed "}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Equal(t, "fed", req.Status)

	assert.Equal(t, []string{"sheep_id must be a valid UUID", "feeding_time is required", "status is required"},
		problems(t, CreateSheepReportRequest{}.Validate()))
}

func TestLoginRequest(t *testing.T) {
	req := LoginRequest{Email: " A@x.COM "}
	req.Normalize()
	assert.Equal(t, "a@x.com", req.Email)
	assert.Equal(t, []string{"email and password are required"}, problems(t, req.Validate()))
	assert.NoError(t, LoginRequest{Email: "a@x.com", Password: "secret1"}.Validate())
}
