package postgres

import (
	"context"
	"database/sql"
)

// DB is the narrow slice of *sql.DB the write path needs. Keeping it an
// interface lets repository tests run against a fake instead of a live
// Postgres.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqlDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}
