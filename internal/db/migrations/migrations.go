// internal/db/migrations/migrations.go
package migrations

import (
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

const migrationsDir = "migrations"

// migration is one pending .up.sql file. Down files exist alongside for
// operators; startup only ever rolls forward.
type migration struct {
	version int
	name    string
	sql     string
}

// RunMigrations rolls the schema forward from the migrations directory next
// to the binary's working directory.
func RunMigrations(db *sql.DB) error {
	return Migrate(db, os.DirFS(migrationsDir))
}

// Migrate applies every .up.sql file in fsys that schema_migrations does not
// yet record, lowest version first. Each migration runs in its own
// transaction together with its bookkeeping row.
func Migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}

	pending, err := loadPending(fsys, applied)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("failed to apply migration %04d_%s: %w", m.version, m.name, err)
		}
		log.Printf("Applied migration: %04d_%s", m.version, m.name)
	}

	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func loadPending(fsys fs.FS, applied map[int]bool) ([]migration, error) {
	entries, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}

	seen := make(map[int]string)
	var pending []migration
	for _, entry := range entries {
		version, name, err := parseFilename(entry)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, entry)
		}
		seen[version] = entry

		if applied[version] {
			continue
		}

		content, err := fs.ReadFile(fsys, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry, err)
		}
		pending = append(pending, migration{version: version, name: name, sql: string(content)})
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].version < pending[j].version })
	return pending, nil
}

// parseFilename splits "0001_create_campaigns.up.sql" into version 1 and
// name "create_campaigns".
func parseFilename(filename string) (int, string, error) {
	stem, ok := strings.CutSuffix(filename, ".up.sql")
	if !ok {
		return 0, "", fmt.Errorf("migration %s does not end in .up.sql", filename)
	}

	prefix, name, ok := strings.Cut(stem, "_")
	if !ok || name == "" {
		return 0, "", fmt.Errorf("migration %s is not of the form NNNN_name.up.sql", filename)
	}

	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("migration %s has a non-numeric version: %w", filename, err)
	}

	return version, name, nil
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.sql); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)",
		m.version, m.name,
	); err != nil {
		return err
	}

	return tx.Commit()
}
