package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
}

// Store provides Postgres-backed persistence for every entity of the API.
type Store struct {
	db *sql.DB
}

// Open connects to the database, verifies the connection and bootstraps the schema.
func Open(ctx context.Context, databaseURL string, opts Options) (*Store, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := New(db)
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing handle without touching the schema.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases database resources.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `SELECT 1`); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		role SMALLINT NOT NULL DEFAULT 0 CHECK (role IN (0, 1)),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		modified_by UUID REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY,
		full_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		modified_by UUID REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS containers (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		location TEXT NOT NULL DEFAULT '',
		student_id UUID REFERENCES students(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		modified_by UUID REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS sensor_data (
		id UUID PRIMARY KEY,
		container_id UUID NOT NULL REFERENCES containers(id) ON DELETE CASCADE,
		student_id UUID REFERENCES students(id) ON DELETE SET NULL,
		temperature NUMERIC(8,2) NOT NULL,
		humidity NUMERIC(8,2) NOT NULL,
		gas NUMERIC(8,2) NOT NULL,
		ph NUMERIC(8,2) NOT NULL,
		status TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		modified_by UUID REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE INDEX IF NOT EXISTS sensor_data_container_created_idx ON sensor_data (container_id, created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		container_id UUID NOT NULL REFERENCES containers(id) ON DELETE CASCADE,
		sensor_data_id UUID REFERENCES sensor_data(id) ON DELETE SET NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		modified_by UUID REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS sheeps (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL DEFAULT 0 CHECK (age >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		modified_by UUID REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS sheep_reports (
		id UUID PRIMARY KEY,
		sheep_id UUID NOT NULL REFERENCES sheeps(id) ON DELETE CASCADE,
		feeding_time TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by UUID REFERENCES users(id) ON DELETE SET NULL,
		modified_by UUID REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE INDEX IF NOT EXISTS sheep_reports_feeding_time_idx ON sheep_reports (feeding_time DESC);`,
}

// DB exposes the pool for connection statistics.
func (s *Store) DB() *sql.DB {
	return s.db
}
