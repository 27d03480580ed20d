package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultUsageStorePath is the default SQLite database location.
const DefaultUsageStorePath = ".promptforge/template_usage.db"

// UsageStore persists template usage counters in SQLite so popularity
// rankings survive restarts. Increments are simple upserts with
// last-write-wins semantics; no cross-caller ordering is guaranteed.
type UsageStore struct {
	db   *sql.DB
	path string
}

// NewUsageStore opens (or creates) the usage database at path.
// An empty path uses DefaultUsageStorePath.
func NewUsageStore(path string) (*UsageStore, error) {
	if path == "" {
		path = DefaultUsageStorePath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS template_usage (
		template_id TEXT PRIMARY KEY,
		use_count INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &UsageStore{db: db, path: path}, nil
}

// Increment bumps the counter for a template id.
func (s *UsageStore) Increment(id string) error {
	_, err := s.db.Exec(`
		INSERT INTO template_usage (template_id, use_count, updated_at)
		VALUES (?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(template_id)
		DO UPDATE SET use_count = use_count + 1, updated_at = CURRENT_TIMESTAMP
	`, id)
	if err != nil {
		return fmt.Errorf("increment usage for %s: %w", id, err)
	}
	return nil
}

// Count returns the persisted counter for a single template id.
func (s *UsageStore) Count(id string) (int64, error) {
	var count int64
	err := s.db.QueryRow(
		"SELECT use_count FROM template_usage WHERE template_id = ?", id,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read usage for %s: %w", id, err)
	}
	return count, nil
}

// Counts returns all persisted counters keyed by template id.
func (s *UsageStore) Counts() (map[string]int64, error) {
	rows, err := s.db.Query("SELECT template_id, use_count FROM template_usage")
	if err != nil {
		return nil, fmt.Errorf("read usage counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var id string
		var count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// Close closes the underlying database.
func (s *UsageStore) Close() error {
	return s.db.Close()
}
