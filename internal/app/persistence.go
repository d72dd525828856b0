// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/reel/internal/state"
)

// saveFocus persists the focused item of the open folder.
func (m *Model) saveFocus(index int, name string) {
	if m.Folder == "" {
		return
	}
	m.StateMgr.SaveFocus(state.FocusState{
		Folder:   m.Folder,
		ItemName: name,
		Index:    index,
	})
}

// saveSession persists the open folder and the style.
func (m *Model) saveSession() error {
	return m.StateMgr.SaveSession(state.Session{
		LastFolder: m.Folder,
		Style:      m.Style.String(),
	})
}
