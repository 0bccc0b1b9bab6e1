package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

var _ storage.ReportStore = (*Store)(nil)

const reportColumns = `
	SELECT r.id, r.student_id, r.container_id, r.sensor_data_id, r.notes, c.code, s.full_name,
		d.temperature, d.humidity, d.gas, d.ph, d.status,
		r.created_at, r.modified_at, r.created_by, r.modified_by`

const reportJoins = `
	LEFT JOIN containers c ON r.container_id = c.id
	LEFT JOIN sensor_data d ON r.sensor_data_id = d.id
	LEFT JOIN students s ON r.student_id = s.id`

func (s *Store) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	const query = `
		WITH r AS (
			INSERT INTO reports (id, student_id, container_id, sensor_data_id, notes, created_by, modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)` + reportColumns + ` FROM r` + reportJoins
	created, err := scanReport(s.db.QueryRowContext(ctx, query,
		report.ID, report.StudentID, report.ContainerID, report.SensorDataID, report.Notes, report.CreatedBy, report.ModifiedBy))
	if err != nil {
		return models.Report{}, fmt.Errorf("create report: %w", translate(err))
	}
	return created, nil
}

func (s *Store) FindReport(ctx context.Context, id uuid.UUID) (models.Report, error) {
	report, err := scanReport(s.db.QueryRowContext(ctx, reportColumns+` FROM reports r`+reportJoins+` WHERE r.id = $1`, id))
	if err != nil {
		return models.Report{}, fmt.Errorf("find report: %w", translate(err))
	}
	return report, nil
}

func (s *Store) UpdateReport(ctx context.Context, id uuid.UUID, update storage.ReportUpdate, modifiedBy uuid.NullUUID) (models.Report, error) {
	var a assignments
	if update.StudentID != nil {
		a.set("student_id", *update.StudentID)
	}
	if update.ContainerID != nil {
		a.set("container_id", *update.ContainerID)
	}
	if update.SensorDataID != nil {
		a.set("sensor_data_id", *update.SensorDataID)
	}
	if update.Notes != nil {
		a.set("notes", *update.Notes)
	}
	stmt, args := a.update("reports", id, modifiedBy, "*")
	report, err := scanReport(s.db.QueryRowContext(ctx, `WITH r AS (`+stmt+`)`+reportColumns+` FROM r`+reportJoins, args...))
	if err != nil {
		return models.Report{}, fmt.Errorf("update report: %w", translate(err))
	}
	return report, nil
}

func (s *Store) DeleteReport(ctx context.Context, id uuid.UUID) error {
	if err := deleted(s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

func (s *Store) ListReports(ctx context.Context, filter storage.ReportFilter, page storage.Page) ([]models.Report, error) {
	c := reportConditions(filter)
	tail, args := c.paged(page)
	rows, err := s.db.QueryContext(ctx,
		reportColumns+` FROM reports r`+reportJoins+c.where()+` ORDER BY r.created_at DESC`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (s *Store) CountReports(ctx context.Context, filter storage.ReportFilter) (int, error) {
	c := reportConditions(filter)
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports r`+c.where(), c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return total, nil
}

func reportConditions(f storage.ReportFilter) *conditions {
	c := &conditions{}
	if f.StudentID.Valid {
		c.add("r.student_id = $%d", f.StudentID.UUID)
	}
	if f.ContainerID.Valid {
		c.add("r.container_id = $%d", f.ContainerID.UUID)
	}
	return c
}

func scanReport(row rowScanner) (models.Report, error) {
	var (
		r                       models.Report
		temp, humidity, gas, ph sql.NullFloat64
		readingStatus           *string
	)
	err := row.Scan(&r.ID, &r.StudentID, &r.ContainerID, &r.SensorDataID, &r.Notes, &r.ContainerCode, &r.StudentName,
		&temp, &humidity, &gas, &ph, &readingStatus,
		&r.CreatedAt, &r.ModifiedAt, &r.CreatedBy, &r.ModifiedBy)
	if err != nil {
		return models.Report{}, err
	}
	if temp.Valid {
		r.Reading = &models.ReadingValues{
			Temperature: temp.Float64,
			Humidity:    humidity.Float64,
			Gas:         gas.Float64,
			PH:          ph.Float64,
			Status:      readingStatus,
		}
	}
	return r, nil
}
