package state

import (
	"database/sql"
	"strings"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// ItemSize is a measured content size, valid while the file's modification
// time is unchanged.
type ItemSize struct {
	Path    string
	ModTime int64 // unix nanoseconds
	Width   float64
	Height  float64
}

// sizeQueryChunk keeps IN lists under SQLite's variable limit.
const sizeQueryChunk = 500

func getItemSizes(db *sql.DB, paths []string) (map[string]ItemSize, error) {
	sizes := make(map[string]ItemSize, len(paths))

	for start := 0; start < len(paths); start += sizeQueryChunk {
		chunk := paths[start:min(start+sizeQueryChunk, len(paths))]
		args := make([]any, len(chunk))
		for i, p := range chunk {
			args[i] = p
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(chunk)), ",")

		rows, err := db.Query(`
			SELECT path, mtime, width, height FROM item_sizes
			WHERE path IN (`+placeholders+`)
		`, args...)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var s ItemSize
			if err := rows.Scan(&s.Path, &s.ModTime, &s.Width, &s.Height); err != nil {
				rows.Close()
				return nil, err
			}
			sizes[s.Path] = s
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	return sizes, nil
}

func saveItemSizes(db *sql.DB, sizes []ItemSize) error {
	if len(sizes) == 0 {
		return nil
	}
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO item_sizes (path, mtime, width, height)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				mtime = excluded.mtime,
				width = excluded.width,
				height = excluded.height
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range sizes {
			if _, err := stmt.Exec(s.Path, s.ModTime, s.Width, s.Height); err != nil {
				return err
			}
		}
		return nil
	})
}
