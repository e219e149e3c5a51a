// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

//go:embed migrations/*/*.sql
var migrationFS embed.FS

const migrationTable = "schema_migrations"

// Migration is one numbered schema step.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded migrations for dialect in apply order.
func Migrations(dialect Dialect) ([]Migration, error) {
	dir := path.Join("migrations", string(dialect))
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations for %s: %w", dialect, err)
	}

	var out []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := fs.ReadFile(migrationFS, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		out = append(out, Migration{Name: entry.Name(), SQL: string(content)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Migrate applies every embedded migration that has not run yet, each in its
// own transaction. Safe to call on every start. Returns how many were applied.
func Migrate(ctx context.Context, conn *sql.DB, dialect Dialect) (int, error) {
	migrations, err := Migrations(dialect)
	if err != nil {
		return 0, err
	}

	_, err = conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+migrationTable+` (
			name TEXT PRIMARY KEY,
			applied_at BIGINT NOT NULL
		)`)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", migrationTable, err)
	}

	applied := 0
	for _, m := range migrations {
		done, err := isApplied(ctx, conn, dialect, m.Name)
		if err != nil {
			return applied, fmt.Errorf("check migration %s: %w", m.Name, err)
		}
		if done {
			continue
		}

		if err := applyMigration(ctx, conn, dialect, m); err != nil {
			return applied, err
		}
		applied++
		log.Info().Str("migration", m.Name).Str("dialect", string(dialect)).Msg("migration applied")
	}

	return applied, nil
}

func applyMigration(ctx context.Context, conn *sql.DB, dialect Dialect, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("exec migration %s: %w", m.Name, err)
	}

	_, err = tx.ExecContext(ctx,
		Rebind(dialect, "INSERT INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)"),
		m.Name, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record migration %s: %w", m.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", m.Name, err)
	}
	return nil
}

func isApplied(ctx context.Context, conn *sql.DB, dialect Dialect, name string) (bool, error) {
	var found int
	err := conn.QueryRowContext(ctx,
		Rebind(dialect, "SELECT 1 FROM "+migrationTable+" WHERE name = ?"), name,
	).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
