package main

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// store is the persistence collaborator for the interactive session and the
// command surface. Load returns the full collection in insertion order;
// Save is an idempotent full overwrite.
type store interface {
	Load() ([]bookmark, error)
	Save([]bookmark) error
}

// sqliteStore persists the collection in a single bookmarks table.
type sqliteStore struct {
	db *sql.DB
}

// openStore opens (or creates) the SQLite database at path and brings the
// schema up to date. Any missing parent directories are created.
func openStore(path string) (*sqliteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

// runMigrations applies all up migrations from the embedded migrations FS.
func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// Load returns the collection in insertion order.
func (s *sqliteStore) Load() ([]bookmark, error) {
	rows, err := s.db.Query(`
		SELECT id, name, url, description, tags
		FROM bookmarks
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	defer rows.Close()

	var out []bookmark
	for rows.Next() {
		var b bookmark
		var tags string
		if err := rows.Scan(&b.id, &b.name, &b.url, &b.desc, &tags); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		b.tags = splitTags(tags)
		out = append(out, b)
	}
	return out, rows.Err()
}

// Save overwrites the stored collection with all, preserving slice order as
// the canonical insertion order.
func (s *sqliteStore) Save(all []bookmark) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM bookmarks`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear bookmarks: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO bookmarks (id, name, url, description, tags, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, b := range all {
		if _, err := stmt.Exec(b.id, b.name, b.url, b.desc, joinTags(b.tags), i); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert bookmark %q: %w", b.name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// splitTags parses a comma-separated tag list, trimming whitespace and
// dropping empty entries. Used both for the stored encoding and for the
// Tags form field.
func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
