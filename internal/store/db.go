// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// Querier is the subset of *sql.DB and *sql.Tx used by repositories.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps a connection pool with its dialect-specific query builder and
// error classifier.
type DB struct {
	*sql.DB
	dialect    Dialect
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	logger     *logger.Logger
}

// ParseDialect derives the dialect and driver DSN from a configured DSN.
// "postgres://" and "postgresql://" select PostgreSQL; "sqlite://" and
// "file:" select SQLite.
func ParseDialect(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn, nil
	default:
		return "", "", ErrUnsupportedDSN
	}
}

// Open connects to the database described by dsn and verifies the
// connection.
func Open(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	dialect, driverDSN, err := ParseDialect(dsn)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("unsupported database DSN")
		return nil, err
	}

	driver := "pgx"
	if dialect == DialectSQLite {
		driver = "sqlite3"
		driverDSN = withSQLiteDefaults(driverDSN)
	}

	conn, err := sql.Open(driver, driverDSN)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if dialect == DialectSQLite {
		// one writer; sqlite serializes writes anyway
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(20)
		conn.SetMaxIdleConns(5)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "store.Open").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "store.Open").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return NewDB(conn, dialect, log), nil
}

// NewDB wraps an already opened connection pool.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}
	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.classifier = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.classifier = NewPostgresErrorClassifier()
	}
	return db
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

type txKey struct{}

// WithinTx implements [Transactor]. Nested calls reuse the outer
// transaction.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.FromContext(ctx).Err(rbErr).Str("func", "*DB.WithinTx").Msg("rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, db.classifier.Classify(err))
	}
	return nil
}

// querier returns the transaction bound to ctx, if any, or the pool.
func (db *DB) querier(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

func withSQLiteDefaults(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.Contains(dsn, "_foreign_keys") {
		dsn += sep + "_foreign_keys=on"
		sep = "&"
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		dsn += sep + "_busy_timeout=5000"
	}
	return dsn
}
