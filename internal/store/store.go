// Package store is the persistence gateway for artgg: a single SQLite
// database holding taste profiles, display profiles, the keyword catalog,
// and profile↔keyword associations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store wraps the app database. One Store is opened per process and owned
// exclusively by the caller; no operation is safe for concurrent use.
type Store struct {
	db  *sql.DB
	dir string
}

// DefaultDir resolves the data directory: ARTGG_DATA_DIR if set, otherwise
// ~/.local/share/artgg.
func DefaultDir() string {
	if d := strings.TrimSpace(os.Getenv("ARTGG_DATA_DIR")); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "artgg")
}

// Open creates dir if needed, opens (or creates) <dir>/artgg.db and applies
// schema migrations. Safe to call repeatedly across versions: creation is
// idempotent and column migrations tolerate already-applied state.
func Open(ctx context.Context, dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", DBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{db: db, dir: dir}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DBPath returns the database file path under dir.
func DBPath(dir string) string {
	return filepath.Join(dir, "artgg.db")
}

// Dir returns the data directory this store was opened on.
func (s *Store) Dir() string { return s.dir }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	// Base tables as they shipped in the first release: id + name only.
	// Everything later arrives as an additive column below.
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS taste_profiles (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS display_profiles (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS keywords (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			value TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS taste_profile_keywords (
			profile_id INTEGER NOT NULL,
			keyword_id INTEGER NOT NULL,
			PRIMARY KEY (profile_id, keyword_id)
		);`,
	}
	for _, st := range stmts {
		if _, err := s.db.ExecContext(ctx, st); err != nil {
			return err
		}
	}

	cols := []struct{ table, def string }{
		{"taste_profiles", "date_start INTEGER"},
		{"taste_profiles", "date_end INTEGER"},
		{"taste_profiles", "is_public_domain INTEGER NOT NULL DEFAULT 0"},
		{"display_profiles", "wallpaper_color TEXT NOT NULL DEFAULT ''"},
		{"display_profiles", "frame_style TEXT NOT NULL DEFAULT ''"},
		{"display_profiles", "orientation TEXT NOT NULL DEFAULT 'horizontal'"},
		{"display_profiles", "aspect_ratio TEXT NOT NULL DEFAULT '16:9'"},
	}
	for _, c := range cols {
		if err := s.addColumn(ctx, c.table, c.def); err != nil {
			return err
		}
	}
	return nil
}

// addColumn applies one additive migration, treating "already applied" as
// success so reopening across versions stays cheap.
func (s *Store) addColumn(ctx context.Context, table, def string) error {
	_, err := s.db.ExecContext(ctx, `ALTER TABLE `+table+` ADD COLUMN `+def)
	if err != nil && strings.Contains(err.Error(), "duplicate column name") {
		return nil
	}
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
