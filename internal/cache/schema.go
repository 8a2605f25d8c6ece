package cache

// schemaSQL defines the SQLite schema for the cache database. One row per
// framework version, holding the raw export JSON as fetched.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS exports (
    framework_version_id TEXT PRIMARY KEY,
    payload BLOB NOT NULL,
    fetched_at TEXT NOT NULL
);
`

// initSchema creates the database tables if they don't exist.
func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
