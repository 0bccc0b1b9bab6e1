//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("damayanti_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := Open(ctx, dsn, Options{MaxOpenConns: 4, MaxIdleConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// a second run must be a no-op
	require.NoError(t, store.migrate(ctx))
	return store
}

func TestStoreAgainstPostgres(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	admin, err := store.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "hash", FullName: "Admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, admin.CreatedBy.UUID)

	_, err = store.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "hash", FullName: "Again"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	actor := models.ActorID(&admin)
	student, err := store.CreateStudent(ctx, models.Student{ID: uuid.New(), FullName: "Ada Lovelace",
		Audit: models.Audit{CreatedBy: actor, ModifiedBy: actor}})
	require.NoError(t, err)

	container, err := store.CreateContainer(ctx, models.Container{ID: uuid.New(), Code: "C-1", Location: "Shed",
		StudentID: uuid.NullUUID{UUID: student.ID, Valid: true}})
	require.NoError(t, err)

	_, err = store.CreateContainer(ctx, models.Container{ID: uuid.New(), Code: "C-1", Location: "Barn"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	status := "ok"
	reading, err := store.CreateReading(ctx, models.SensorReading{ID: uuid.New(), ContainerID: container.ID,
		StudentID: uuid.NullUUID{UUID: student.ID, Valid: true}, Temperature: 21.456, Humidity: 40, Gas: 1.5, PH: 6.8, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 21.46, reading.Temperature)
	require.NotNil(t, reading.ContainerCode)
	assert.Equal(t, "C-1", *reading.ContainerCode)

	latest, err := store.LatestReading(ctx, container.ID)
	require.NoError(t, err)
	assert.Equal(t, reading.ID, latest.ID)

	report, err := store.CreateReport(ctx, models.Report{ID: uuid.New(), StudentID: student.ID, ContainerID: container.ID,
		SensorDataID: uuid.NullUUID{UUID: reading.ID, Valid: true}, Notes: "all good"})
	require.NoError(t, err)
	require.NotNil(t, report.Reading)
	assert.Equal(t, 6.8, report.Reading.PH)
	assert.Equal(t, "Ada Lovelace", *report.StudentName)

	_, err = store.CreateReport(ctx, models.Report{ID: uuid.New(), StudentID: uuid.New(), ContainerID: container.ID})
	assert.ErrorIs(t, err, storage.ErrInvalidReference)

	notes := "updated"
	updated, err := store.UpdateReport(ctx, report.ID, storage.ReportUpdate{Notes: &notes}, actor)
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Notes)
	assert.Equal(t, admin.ID, updated.ModifiedBy.UUID)

	sheep, err := store.CreateSheep(ctx, models.Sheep{ID: uuid.New(), Name: "Dolly", Age: 2})
	require.NoError(t, err)
	_, err = store.CreateSheep(ctx, models.Sheep{ID: uuid.New(), Name: "Bad", Age: -1})
	assert.ErrorIs(t, err, storage.ErrInvalidValue)

	fed := time.Now().UTC().Truncate(time.Second)
	feeding, err := store.CreateSheepReport(ctx, models.SheepReport{ID: uuid.New(), SheepID: sheep.ID, FeedingTime: fed, Status: "fed"})
	require.NoError(t, err)
	assert.Equal(t, "Dolly", *feeding.SheepName)

	recent, err := store.RecentSheepReports(ctx, "fed", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, fed.Equal(recent[0].FeedingTime))

	list, err := store.ListStudents(ctx, "love", storage.Page{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, store.DeleteSheep(ctx, sheep.ID))
	_, err = store.FindSheepReport(ctx, feeding.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.DeleteUser(ctx, admin.ID))
	reloaded, err := store.FindStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.CreatedBy.Valid)
	assert.NoError(t, store.Ping(ctx))
}
