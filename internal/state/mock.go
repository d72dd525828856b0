package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	focus   map[string]FocusState
	session *Session
	sizes   map[string]ItemSize
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		focus: make(map[string]FocusState),
		sizes: make(map[string]ItemSize),
	}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveFocus(state FocusState) {
	m.focus[state.Folder] = state
}

func (m *Mock) GetFocus(folder string) (*FocusState, error) {
	s, ok := m.focus[folder]
	if !ok {
		return nil, nil //nolint:nilnil // matches Manager
	}
	return &s, nil
}

func (m *Mock) GetSession() (*Session, error) {
	return m.session, nil
}

func (m *Mock) SaveSession(s Session) error {
	m.session = &s
	return nil
}

func (m *Mock) GetItemSizes(paths []string) (map[string]ItemSize, error) {
	out := make(map[string]ItemSize)
	for _, p := range paths {
		if s, ok := m.sizes[p]; ok {
			out[p] = s
		}
	}
	return out, nil
}

func (m *Mock) SaveItemSizes(sizes []ItemSize) error {
	for _, s := range sizes {
		m.sizes[s.Path] = s
	}
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

var _ Interface = (*Mock)(nil)
