package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// Session is what reel reopens with when started without a folder.
type Session struct {
	LastFolder string
	Style      string // "carousel" or "flow"
}

func getSession(db *sql.DB) (*Session, error) {
	var lastFolder, style sql.NullString
	err := db.QueryRow(`SELECT last_folder, style FROM session_state WHERE id = 1`).Scan(&lastFolder, &style)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &Session{
		LastFolder: dbutil.NullStringValue(lastFolder),
		Style:      dbutil.NullStringValue(style),
	}, nil
}

func saveSession(db *sql.DB, s Session) error {
	_, err := db.Exec(`
		INSERT INTO session_state (id, last_folder, style)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_folder = excluded.last_folder,
			style = excluded.style
	`, dbutil.NullString(s.LastFolder), dbutil.NullString(s.Style))

	return err
}
