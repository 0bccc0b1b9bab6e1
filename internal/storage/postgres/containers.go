package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

var _ storage.ContainerStore = (*Store)(nil)

const containerColumns = `id, code, location, student_id, created_at, modified_at, created_by, modified_by`

// CreateContainer inserts a container; a reused code yields storage.ErrAlreadyExists.
func (s *Store) CreateContainer(ctx context.Context, container models.Container) (models.Container, error) {
	const query = `
		INSERT INTO containers (id, code, location, student_id, created_by, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + containerColumns
	created, err := scanContainer(s.db.QueryRowContext(ctx, query,
		container.ID, container.Code, container.Location, container.StudentID, container.CreatedBy, container.ModifiedBy))
	if err != nil {
		return models.Container{}, fmt.Errorf("create container: %w", translate(err))
	}
	return created, nil
}

func (s *Store) FindContainer(ctx context.Context, id uuid.UUID) (models.Container, error) {
	container, err := scanContainer(s.db.QueryRowContext(ctx, `SELECT `+containerColumns+` FROM containers WHERE id = $1`, id))
	if err != nil {
		return models.Container{}, fmt.Errorf("find container: %w", translate(err))
	}
	return container, nil
}

func (s *Store) UpdateContainer(ctx context.Context, id uuid.UUID, update storage.ContainerUpdate, modifiedBy uuid.NullUUID) (models.Container, error) {
	var a assignments
	if update.Code != nil {
		a.set("code", *update.Code)
	}
	if update.Location != nil {
		a.set("location", *update.Location)
	}
	if update.StudentID != nil {
		a.set("student_id", *update.StudentID)
	}
	query, args := a.update("containers", id, modifiedBy, containerColumns)
	container, err := scanContainer(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Container{}, fmt.Errorf("update container: %w", translate(err))
	}
	return container, nil
}

func (s *Store) DeleteContainer(ctx context.Context, id uuid.UUID) error {
	if err := deleted(s.db.ExecContext(ctx, `DELETE FROM containers WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete container: %w", err)
	}
	return nil
}

func (s *Store) ListContainers(ctx context.Context, studentID uuid.NullUUID, page storage.Page) ([]models.Container, error) {
	c := containerConditions(studentID)
	tail, args := c.paged(page)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+containerColumns+` FROM containers`+c.where()+` ORDER BY created_at DESC`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()

	containers := make([]models.Container, 0)
	for rows.Next() {
		container, err := scanContainer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		containers = append(containers, container)
	}
	return containers, rows.Err()
}

func (s *Store) CountContainers(ctx context.Context, studentID uuid.NullUUID) (int, error) {
	c := containerConditions(studentID)
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM containers`+c.where(), c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count containers: %w", err)
	}
	return total, nil
}

func containerConditions(studentID uuid.NullUUID) *conditions {
	c := &conditions{}
	if studentID.Valid {
		c.add("student_id = $%d", studentID.UUID)
	}
	return c
}

func scanContainer(row rowScanner) (models.Container, error) {
	var ct models.Container
	err := row.Scan(&ct.ID, &ct.Code, &ct.Location, &ct.StudentID,
		&ct.CreatedAt, &ct.ModifiedAt, &ct.CreatedBy, &ct.ModifiedBy)
	return ct, err
}
