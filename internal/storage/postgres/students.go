package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

var _ storage.StudentStore = (*Store)(nil)

const studentColumns = `id, full_name, created_at, modified_at, created_by, modified_by`

func (s *Store) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	const query = `
		INSERT INTO students (id, full_name, created_by, modified_by)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + studentColumns
	created, err := scanStudent(s.db.QueryRowContext(ctx, query,
		student.ID, student.FullName, student.CreatedBy, student.ModifiedBy))
	if err != nil {
		return models.Student{}, fmt.Errorf("create student: %w", translate(err))
	}
	return created, nil
}

func (s *Store) FindStudent(ctx context.Context, id uuid.UUID) (models.Student, error) {
	student, err := scanStudent(s.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		return models.Student{}, fmt.Errorf("find student: %w", translate(err))
	}
	return student, nil
}

func (s *Store) UpdateStudent(ctx context.Context, id uuid.UUID, update storage.StudentUpdate, modifiedBy uuid.NullUUID) (models.Student, error) {
	var a assignments
	if update.FullName != nil {
		a.set("full_name", *update.FullName)
	}
	query, args := a.update("students", id, modifiedBy, studentColumns)
	student, err := scanStudent(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Student{}, fmt.Errorf("update student: %w", translate(err))
	}
	return student, nil
}

func (s *Store) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	if err := deleted(s.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// ListStudents returns students newest first, optionally matching nameFilter as a substring.
func (s *Store) ListStudents(ctx context.Context, nameFilter string, page storage.Page) ([]models.Student, error) {
	c := studentConditions(nameFilter)
	tail, args := c.paged(page)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+studentColumns+` FROM students`+c.where()+` ORDER BY created_at DESC`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func (s *Store) CountStudents(ctx context.Context, nameFilter string) (int, error) {
	c := studentConditions(nameFilter)
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`+c.where(), c.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return total, nil
}

func studentConditions(nameFilter string) *conditions {
	c := &conditions{}
	if nameFilter != "" {
		c.add("full_name ILIKE $%d", "%"+nameFilter+"%")
	}
	return c
}

func scanStudent(row rowScanner) (models.Student, error) {
	var st models.Student
	err := row.Scan(&st.ID, &st.FullName, &st.CreatedAt, &st.ModifiedAt, &st.CreatedBy, &st.ModifiedBy)
	return st, err
}
