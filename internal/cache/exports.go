package cache

import (
	"database/sql"
	"fmt"
	"time"
)

// ExportEntry holds one cached export.
type ExportEntry struct {
	FrameworkVersionID string
	Payload            []byte
	FetchedAt          time.Time
}

// SetExport stores the raw export payload for a framework version,
// replacing any previous copy.
func (c *Cache) SetExport(frameworkVersionID string, payload []byte) error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO exports (framework_version_id, payload, fetched_at)
		VALUES (?, ?, ?)`,
		frameworkVersionID, payload, time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set export %s: %w", frameworkVersionID, err)
	}
	return nil
}

// GetExport retrieves the cached payload for a framework version.
// Returns sql.ErrNoRows if the export has not been fetched.
func (c *Cache) GetExport(frameworkVersionID string) ([]byte, error) {
	var payload []byte
	err := c.db.QueryRow(
		"SELECT payload FROM exports WHERE framework_version_id = ?",
		frameworkVersionID).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get export %s: %w", frameworkVersionID, err)
	}
	return payload, nil
}

// GetExportEntry retrieves the full entry including fetch time.
// Returns sql.ErrNoRows if the export has not been fetched.
func (c *Cache) GetExportEntry(frameworkVersionID string) (*ExportEntry, error) {
	var entry ExportEntry
	var fetchedAt string
	err := c.db.QueryRow(`
		SELECT framework_version_id, payload, fetched_at FROM exports
		WHERE framework_version_id = ?`,
		frameworkVersionID).Scan(&entry.FrameworkVersionID, &entry.Payload, &fetchedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get export entry %s: %w", frameworkVersionID, err)
	}
	entry.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt)
	return &entry, nil
}

// ListExports returns all cached entries without payloads, ordered by id.
func (c *Cache) ListExports() ([]ExportEntry, error) {
	rows, err := c.db.Query(`
		SELECT framework_version_id, fetched_at FROM exports
		ORDER BY framework_version_id`)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	var entries []ExportEntry
	for rows.Next() {
		var entry ExportEntry
		var fetchedAt string
		if err := rows.Scan(&entry.FrameworkVersionID, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		entry.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return entries, nil
}

// DeleteExport removes one cached export.
func (c *Cache) DeleteExport(frameworkVersionID string) error {
	_, err := c.db.Exec("DELETE FROM exports WHERE framework_version_id = ?", frameworkVersionID)
	if err != nil {
		return fmt.Errorf("delete export %s: %w", frameworkVersionID, err)
	}
	return nil
}
