package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_folder TEXT,
			style TEXT
		);

		CREATE TABLE IF NOT EXISTS focus_state (
			folder TEXT PRIMARY KEY,
			item_name TEXT NOT NULL,
			item_index INTEGER,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_focus_updated_at ON focus_state(updated_at DESC);

		CREATE TABLE IF NOT EXISTS item_sizes (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL,
			width REAL NOT NULL,
			height REAL NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add item_index column if missing
	_, _ = db.Exec(`ALTER TABLE focus_state ADD COLUMN item_index INTEGER`)

	return nil
}
