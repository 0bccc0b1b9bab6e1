package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

var _ storage.SheepStore = (*Store)(nil)

const sheepColumns = `id, name, age, created_at, modified_at, created_by, modified_by`

func (s *Store) CreateSheep(ctx context.Context, sheep models.Sheep) (models.Sheep, error) {
	const query = `
		INSERT INTO sheeps (id, name, age, created_by, modified_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + sheepColumns
	created, err := scanSheep(s.db.QueryRowContext(ctx, query,
		sheep.ID, sheep.Name, sheep.Age, sheep.CreatedBy, sheep.ModifiedBy))
	if err != nil {
		return models.Sheep{}, fmt.Errorf("create sheep: %w", translate(err))
	}
	return created, nil
}

func (s *Store) FindSheep(ctx context.Context, id uuid.UUID) (models.Sheep, error) {
	sheep, err := scanSheep(s.db.QueryRowContext(ctx, `SELECT `+sheepColumns+` FROM sheeps WHERE id = $1`, id))
	if err != nil {
		return models.Sheep{}, fmt.Errorf("find sheep: %w", translate(err))
	}
	return sheep, nil
}

func (s *Store) UpdateSheep(ctx context.Context, id uuid.UUID, update storage.SheepUpdate, modifiedBy uuid.NullUUID) (models.Sheep, error) {
	var a assignments
	if update.Name != nil {
		a.set("name", *update.Name)
	}
	if update.Age != nil {
		a.set("age", *update.Age)
	}
	query, args := a.update("sheeps", id, modifiedBy, sheepColumns)
	sheep, err := scanSheep(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Sheep{}, fmt.Errorf("update sheep: %w", translate(err))
	}
	return sheep, nil
}

func (s *Store) DeleteSheep(ctx context.Context, id uuid.UUID) error {
	if err := deleted(s.db.ExecContext(ctx, `DELETE FROM sheeps WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete sheep: %w", err)
	}
	return nil
}

func (s *Store) ListSheep(ctx context.Context, nameFilter string, page storage.Page) ([]models.Sheep, error) {
	c := sheepConditions(nameFilter)
	tail, args := c.paged(page)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sheepColumns+` FROM sheeps`+c.where()+` ORDER BY created_at DESC`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list sheep: %w", err)
	}
	defer rows.Close()

	flock := make([]models.Sheep, 0)
	for rows.Next() {
		sheep, err := scanSheep(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sheep: %w", err)
		}
		flock = append(flock, sheep)
	}
	return flock, rows.Err()
}

func (s *Store) CountSheep(ctx context.Context, nameFilter string) (int, error) {
	c := sheepConditions(nameFilter)
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sheeps`+c.where(), c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count sheep: %w", err)
	}
	return total, nil
}

func sheepConditions(nameFilter string) *conditions {
	c := &conditions{}
	if nameFilter != "" {
		c.add("name ILIKE $%d", "%"+nameFilter+"%")
	}
	return c
}

func scanSheep(row rowScanner) (models.Sheep, error) {
	var sh models.Sheep
	err := row.Scan(&sh.ID, &sh.Name, &sh.Age, &sh.CreatedAt, &sh.ModifiedAt, &sh.CreatedBy, &sh.ModifiedBy)
	return sh, err
}
