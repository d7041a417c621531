// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the identity store and applies
// it with goose. Each supported dialect has its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnknownDialect is returned for dialects without a migration directory.
var ErrUnknownDialect = errors.New("unknown migration dialect")

// Migrate applies all pending migrations for dialect ("postgres" or
// "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: nil database")
	}

	var gooseDialect, dir string
	switch dialect {
	case "postgres":
		gooseDialect, dir = "pgx", "postgres"
	case "sqlite3":
		gooseDialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
