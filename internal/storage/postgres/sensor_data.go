package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

var _ storage.SensorStore = (*Store)(nil)

const readingSelect = `
	SELECT sd.id, sd.container_id, c.code, sd.student_id, sd.temperature, sd.humidity, sd.gas, sd.ph, sd.status,
		sd.created_at, sd.modified_at, sd.created_by, sd.modified_by
	FROM sd
	LEFT JOIN containers c ON sd.container_id = c.id`

const readingFrom = `
	SELECT sd.id, sd.container_id, c.code, sd.student_id, sd.temperature, sd.humidity, sd.gas, sd.ph, sd.status,
		sd.created_at, sd.modified_at, sd.created_by, sd.modified_by
	FROM sensor_data sd
	LEFT JOIN containers c ON sd.container_id = c.id`

func (s *Store) CreateReading(ctx context.Context, r models.SensorReading) (models.SensorReading, error) {
	const query = `
		WITH sd AS (
			INSERT INTO sensor_data (id, container_id, student_id, temperature, humidity, gas, ph, status, created_by, modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)` + readingSelect
	created, err := scanReading(s.db.QueryRowContext(ctx, query,
		r.ID, r.ContainerID, r.StudentID, r.Temperature, r.Humidity, r.Gas, r.PH, r.Status, r.CreatedBy, r.ModifiedBy))
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("create sensor reading: %w", translate(err))
	}
	return created, nil
}

func (s *Store) FindReading(ctx context.Context, id uuid.UUID) (models.SensorReading, error) {
	reading, err := scanReading(s.db.QueryRowContext(ctx, readingFrom+` WHERE sd.id = $1`, id))
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("find sensor reading: %w", translate(err))
	}
	return reading, nil
}

// LatestReading returns the most recent reading posted for a container.
func (s *Store) LatestReading(ctx context.Context, containerID uuid.UUID) (models.SensorReading, error) {
	reading, err := scanReading(s.db.QueryRowContext(ctx,
		readingFrom+` WHERE sd.container_id = $1 ORDER BY sd.created_at DESC LIMIT 1`, containerID))
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("latest sensor reading: %w", translate(err))
	}
	return reading, nil
}

func (s *Store) UpdateReading(ctx context.Context, id uuid.UUID, update storage.SensorReadingUpdate, modifiedBy uuid.NullUUID) (models.SensorReading, error) {
	var a assignments
	if update.ContainerID != nil {
		a.set("container_id", *update.ContainerID)
	}
	if update.StudentID != nil {
		a.set("student_id", *update.StudentID)
	}
	if update.Temperature != nil {
		a.set("temperature", *update.Temperature)
	}
	if update.Humidity != nil {
		a.set("humidity", *update.Humidity)
	}
	if update.Gas != nil {
		a.set("gas", *update.Gas)
	}
	if update.PH != nil {
		a.set("ph", *update.PH)
	}
	if update.Status != nil {
		a.set("status", *update.Status)
	}
	stmt, args := a.update("sensor_data", id, modifiedBy, "*")
	reading, err := scanReading(s.db.QueryRowContext(ctx, `WITH sd AS (`+stmt+`)`+readingSelect, args...))
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("update sensor reading: %w", translate(err))
	}
	return reading, nil
}

func (s *Store) DeleteReading(ctx context.Context, id uuid.UUID) error {
	if err := deleted(s.db.ExecContext(ctx, `DELETE FROM sensor_data WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete sensor reading: %w", err)
	}
	return nil
}

func (s *Store) ListReadings(ctx context.Context, filter storage.SensorFilter, page storage.Page) ([]models.SensorReading, error) {
	c := readingConditions(filter)
	tail, args := c.paged(page)
	rows, err := s.db.QueryContext(ctx, readingFrom+c.where()+` ORDER BY sd.created_at DESC`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list sensor readings: %w", err)
	}
	defer rows.Close()

	readings := make([]models.SensorReading, 0)
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sensor reading: %w", err)
		}
		readings = append(readings, reading)
	}
	return readings, rows.Err()
}

func (s *Store) CountReadings(ctx context.Context, filter storage.SensorFilter) (int, error) {
	c := readingConditions(filter)
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sensor_data sd`+c.where(), c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count sensor readings: %w", err)
	}
	return total, nil
}

func readingConditions(f storage.SensorFilter) *conditions {
	c := &conditions{}
	if f.ContainerID.Valid {
		c.add("sd.container_id = $%d", f.ContainerID.UUID)
	}
	if f.From != nil {
		c.add("sd.created_at >= $%d", *f.From)
	}
	if f.To != nil {
		c.add("sd.created_at <= $%d", *f.To)
	}
	return c
}

func scanReading(row rowScanner) (models.SensorReading, error) {
	var r models.SensorReading
	err := row.Scan(&r.ID, &r.ContainerID, &r.ContainerCode, &r.StudentID,
		&r.Temperature, &r.Humidity, &r.Gas, &r.PH, &r.Status,
		&r.CreatedAt, &r.ModifiedAt, &r.CreatedBy, &r.ModifiedBy)
	return r, err
}
