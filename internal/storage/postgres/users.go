package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const userColumns = `id, email, password_hash, full_name, role, created_at, modified_at, created_by, modified_by`

// CreateUser inserts a new user row. Audit authors default to the new record itself.
// A duplicate email surfaces as storage.ErrAlreadyExists via the unique index.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	self := uuid.NullUUID{UUID: user.ID, Valid: true}
	if !user.CreatedBy.Valid {
		user.CreatedBy = self
	}
	if !user.ModifiedBy.Valid {
		user.ModifiedBy = user.CreatedBy
	}

	const query = `
		INSERT INTO users (id, email, password_hash, full_name, role, created_by, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
	row := s.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role, user.CreatedBy, user.ModifiedBy)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", translate(err))
	}
	return created, nil
}

// FindUserByID fetches a user by identifier.
func (s *Store) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return models.User{}, fmt.Errorf("find user by id: %w", translate(err))
	}
	return user, nil
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return models.User{}, fmt.Errorf("find user by email: %w", translate(err))
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of update and stamps the modifying user.
func (s *Store) UpdateUser(ctx context.Context, id uuid.UUID, update storage.UserUpdate, modifiedBy uuid.UUID) (models.User, error) {
	var a assignments
	if update.Email != nil {
		a.set("email", *update.Email)
	}
	if update.FullName != nil {
		a.set("full_name", *update.FullName)
	}
	if update.PasswordHash != nil {
		a.set("password_hash", *update.PasswordHash)
	}
	if update.Role != nil {
		a.set("role", *update.Role)
	}
	query, args := a.update("users", id, uuid.NullUUID{UUID: modifiedBy, Valid: modifiedBy != uuid.Nil}, userColumns)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, fmt.Errorf("update user: %w", translate(err))
	}
	return user, nil
}

// DeleteUser removes the user row permanently.
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := deleted(s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ListUsers returns a page of users, newest first.
func (s *Store) ListUsers(ctx context.Context, page storage.Page) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CountUsers returns the total number of users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Role,
		&user.CreatedAt, &user.ModifiedAt, &user.CreatedBy, &user.ModifiedBy)
	return user, err
}
