package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveFocus(state FocusState)
	GetFocus(folder string) (*FocusState, error)
	GetSession() (*Session, error)
	SaveSession(s Session) error
	GetItemSizes(paths []string) (map[string]ItemSize, error)
	SaveItemSizes(sizes []ItemSize) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
