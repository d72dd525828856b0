package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// FocusState is the focused item of a folder. Index is a fallback for when
// the named item no longer exists.
type FocusState struct {
	Folder    string
	ItemName  string
	Index     int
	UpdatedAt time.Time
}

func getFocus(db *sql.DB, folder string) (*FocusState, error) {
	row := db.QueryRow(`
		SELECT folder, item_name, item_index, updated_at
		FROM focus_state WHERE folder = ?
	`, folder)

	var state FocusState
	var index sql.NullInt64
	var updatedAt int64

	err := row.Scan(&state.Folder, &state.ItemName, &index, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // a folder never opened has no focus
	}
	if err != nil {
		return nil, err
	}

	state.Index = int(dbutil.NullInt64Value(index))
	state.UpdatedAt = time.Unix(updatedAt, 0)

	return &state, nil
}

func saveFocus(db *sql.DB, state FocusState, now time.Time) error {
	_, err := db.Exec(`
		INSERT INTO focus_state (folder, item_name, item_index, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(folder) DO UPDATE SET
			item_name = excluded.item_name,
			item_index = excluded.item_index,
			updated_at = excluded.updated_at
	`, state.Folder, state.ItemName, state.Index, now.Unix())

	return err
}
