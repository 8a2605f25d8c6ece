// Package cache provides SQLite-backed storage for downloaded CPRT exports.
// Exports change rarely and run to megabytes, so fetch results are kept in
// ~/.cprtcat/cache.db and reused across conversions.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache manages the cache.db SQLite database holding raw export payloads.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database in the given directory, creating
// the directory and initializing the schema as needed.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	dbPath := filepath.Join(dir, "cache.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	cache := &Cache{db: db, dbPath: dbPath}

	if err := cache.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return cache, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Clear removes all cached exports.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM exports")
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// Stats describes cache contents.
type Stats struct {
	ExportCount int64
	TotalBytes  int64
}

// GetStats returns statistics about the cache contents.
func (c *Cache) GetStats() (*Stats, error) {
	var stats Stats
	err := c.db.QueryRow("SELECT COUNT(*), COALESCE(SUM(LENGTH(payload)), 0) FROM exports").
		Scan(&stats.ExportCount, &stats.TotalBytes)
	if err != nil {
		return nil, fmt.Errorf("count exports: %w", err)
	}
	return &stats, nil
}
