package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// Execer is the subset of *sql.DB the migrator needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Migrator applies versioned SQL files read through a golang-migrate source
// driver and records the applied version in schema_migrations.
type Migrator struct {
	db     Execer
	src    source.Driver
	logger *zap.Logger
}

// NewMigrator reads migrations named like 000001_name.up.sql from dir in fsys.
func NewMigrator(db Execer, fsys fs.FS, dir string, logger *zap.Logger) (*Migrator, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open migrations: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{db: db, src: src, logger: logger}, nil
}

func (m *Migrator) Close() error {
	return m.src.Close()
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var n int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`).Scan(&n)
	if err != nil {
		return fmt.Errorf("could not check schema_migrations: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) NOT NULL, dirty NUMBER(1) NOT NULL)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

// Version returns the applied version. ok is false on a fresh schema.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, ok bool, err error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, false, false, err
	}
	var v int64
	var d int
	err = m.db.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations FETCH FIRST 1 ROWS ONLY`).Scan(&v, &d)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("could not read schema version: %w", err)
	}
	return uint(v), d == 1, true, nil
}

func (m *Migrator) setVersion(ctx context.Context, version uint, dirty bool) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not clear schema version: %w", err)
	}
	d := 0
	if dirty {
		d = 1
	}
	if _, err := m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (:1, :2)`, int64(version), d); err != nil {
		return fmt.Errorf("could not record schema version %d: %w", version, err)
	}
	return nil
}

func (m *Migrator) clearVersion(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations`)
	return err
}

// Up applies every migration newer than the recorded version.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	current, dirty, ok, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("schema is dirty at version %d, fix it manually", current)
	}

	applied := 0
	v, err := m.src.First()
	for err == nil {
		if !ok || v > current {
			if err := m.apply(ctx, v, true); err != nil {
				return applied, err
			}
			applied++
		}
		v, err = m.src.Next(v)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return applied, fmt.Errorf("could not list migrations: %w", err)
	}
	return applied, nil
}

// Down reverts steps migrations, or all of them when steps <= 0.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	current, dirty, ok, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("schema is dirty at version %d, fix it manually", current)
	}

	reverted := 0
	for ok && (steps <= 0 || reverted < steps) {
		if err := m.apply(ctx, current, false); err != nil {
			return reverted, err
		}
		reverted++

		prev, err := m.src.Prev(current)
		if errors.Is(err, fs.ErrNotExist) {
			if err := m.clearVersion(ctx); err != nil {
				return reverted, fmt.Errorf("could not clear schema version: %w", err)
			}
			break
		}
		if err != nil {
			return reverted, fmt.Errorf("could not list migrations: %w", err)
		}
		if err := m.setVersion(ctx, prev, false); err != nil {
			return reverted, err
		}
		current = prev
	}
	return reverted, nil
}

func (m *Migrator) apply(ctx context.Context, version uint, up bool) error {
	var (
		r          io.ReadCloser
		identifier string
		err        error
	)
	if up {
		r, identifier, err = m.src.ReadUp(version)
	} else {
		r, identifier, err = m.src.ReadDown(version)
	}
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}

	if up {
		if err := m.setVersion(ctx, version, true); err != nil {
			return err
		}
	}

	for _, stmt := range SplitStatements(string(body)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}

	if up {
		if err := m.setVersion(ctx, version, false); err != nil {
			return err
		}
	}

	direction := "down"
	if up {
		direction = "up"
	}
	m.logger.Info("Executed migration",
		zap.Uint("version", version),
		zap.String("name", identifier),
		zap.String("direction", direction))
	return nil
}

// SplitStatements splits a migration file into statements without their
// terminating semicolons.
func SplitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
