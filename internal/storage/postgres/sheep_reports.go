package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

var _ storage.SheepReportStore = (*Store)(nil)

const sheepReportColumns = `
	SELECT sr.id, sr.sheep_id, sr.feeding_time, sr.status, s.name, s.age,
		sr.created_at, sr.modified_at, sr.created_by, sr.modified_by`

func (s *Store) CreateSheepReport(ctx context.Context, report models.SheepReport) (models.SheepReport, error) {
	const query = `
		WITH sr AS (
			INSERT INTO sheep_reports (id, sheep_id, feeding_time, status, created_by, modified_by)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)` + sheepReportColumns + `
		FROM sr
		LEFT JOIN sheeps s ON sr.sheep_id = s.id`
	created, err := scanSheepReport(s.db.QueryRowContext(ctx, query,
		report.ID, report.SheepID, report.FeedingTime, report.Status, report.CreatedBy, report.ModifiedBy))
	if err != nil {
		return models.SheepReport{}, fmt.Errorf("create sheep report: %w", translate(err))
	}
	return created, nil
}

func (s *Store) FindSheepReport(ctx context.Context, id uuid.UUID) (models.SheepReport, error) {
	query := sheepReportColumns + `
		FROM sheep_reports sr
		LEFT JOIN sheeps s ON sr.sheep_id = s.id
		WHERE sr.id = $1`
	report, err := scanSheepReport(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return models.SheepReport{}, fmt.Errorf("find sheep report: %w", translate(err))
	}
	return report, nil
}

func (s *Store) UpdateSheepReport(ctx context.Context, id uuid.UUID, update storage.SheepReportUpdate, modifiedBy uuid.NullUUID) (models.SheepReport, error) {
	var a assignments
	if update.SheepID != nil {
		a.set("sheep_id", *update.SheepID)
	}
	if update.FeedingTime != nil {
		a.set("feeding_time", *update.FeedingTime)
	}
	if update.Status != nil {
		a.set("status", *update.Status)
	}
	stmt, args := a.update("sheep_reports", id, modifiedBy, "*")
	query := `WITH sr AS (` + stmt + `)` + sheepReportColumns + `
		FROM sr
		LEFT JOIN sheeps s ON sr.sheep_id = s.id`
	report, err := scanSheepReport(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.SheepReport{}, fmt.Errorf("update sheep report: %w", translate(err))
	}
	return report, nil
}

func (s *Store) DeleteSheepReport(ctx context.Context, id uuid.UUID) error {
	if err := deleted(s.db.ExecContext(ctx, `DELETE FROM sheep_reports WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete sheep report: %w", err)
	}
	return nil
}

// ListSheepReports orders by feeding time, most recent first.
func (s *Store) ListSheepReports(ctx context.Context, filter storage.SheepReportFilter, page storage.Page) ([]models.SheepReport, error) {
	c := sheepReportConditions(filter)
	tail, args := c.paged(page)
	query := sheepReportColumns + `
		FROM sheep_reports sr
		LEFT JOIN sheeps s ON sr.sheep_id = s.id` + c.where() + ` ORDER BY sr.feeding_time DESC` + tail
	return s.querySheepReports(ctx, query, args...)
}

func (s *Store) CountSheepReports(ctx context.Context, filter storage.SheepReportFilter) (int, error) {
	c := sheepReportConditions(filter)
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sheep_reports sr`+c.where(), c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count sheep reports: %w", err)
	}
	return total, nil
}

// RecentSheepReports returns the latest feedings recorded with the given status.
func (s *Store) RecentSheepReports(ctx context.Context, status string, limit int) ([]models.SheepReport, error) {
	query := sheepReportColumns + `
		FROM sheep_reports sr
		LEFT JOIN sheeps s ON sr.sheep_id = s.id
		WHERE sr.status = $1
		ORDER BY sr.feeding_time DESC
		LIMIT $2`
	return s.querySheepReports(ctx, query, status, limit)
}

func (s *Store) querySheepReports(ctx context.Context, query string, args ...any) ([]models.SheepReport, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sheep reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.SheepReport, 0)
	for rows.Next() {
		report, err := scanSheepReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sheep report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func sheepReportConditions(f storage.SheepReportFilter) *conditions {
	c := &conditions{}
	if f.SheepID.Valid {
		c.add("sr.sheep_id = $%d", f.SheepID.UUID)
	}
	if f.Status != "" {
		c.add("sr.status = $%d", f.Status)
	}
	if f.From != nil {
		c.add("sr.feeding_time >= $%d", *f.From)
	}
	if f.To != nil {
		c.add("sr.feeding_time <= $%d", *f.To)
	}
	return c
}

func scanSheepReport(row rowScanner) (models.SheepReport, error) {
	var r models.SheepReport
	err := row.Scan(&r.ID, &r.SheepID, &r.FeedingTime, &r.Status, &r.SheepName, &r.SheepAge,
		&r.CreatedAt, &r.ModifiedAt, &r.CreatedBy, &r.ModifiedBy)
	return r, err
}
