package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/reel/internal/db"
)

const (
	appName      = "reel"
	dbFileName   = "reel.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *FocusState
	now       func() time.Time
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	return OpenPath(dbPath)
}

// OpenPath opens the state database at path. Tests pass dbutil.MemoryPath.
func OpenPath(path string) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, now: time.Now}, nil
}

func (m *Manager) Close() error {
	if err := m.Flush(); err != nil {
		m.db.Close()
		return err
	}
	return m.db.Close()
}

// Flush writes a pending focus save immediately.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return saveFocus(m.db, *pending, m.now())
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) GetFocus(folder string) (*FocusState, error) {
	return getFocus(m.db, folder)
}

// SaveFocus records the focused item of a folder. Focus changes on every
// key press, so writes are debounced and only the latest state is kept.
func (m *Manager) SaveFocus(state FocusState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveFocus(m.db, *pending, m.now())
		}
	})
}

func (m *Manager) GetSession() (*Session, error) {
	return getSession(m.db)
}

func (m *Manager) SaveSession(s Session) error {
	return saveSession(m.db, s)
}

func (m *Manager) GetItemSizes(paths []string) (map[string]ItemSize, error) {
	return getItemSizes(m.db, paths)
}

func (m *Manager) SaveItemSizes(sizes []ItemSize) error {
	return saveItemSizes(m.db, sizes)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
