// internal/app/keys.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/ui/strip"
)

// handleKeyMsg dispatches a key press to the help panel or an action.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help panel takes every key but ctrl+c; q closes it.
	if m.ShowHelp && msg.String() != "ctrl+c" {
		return m, m.Help.Update(msg)
	}

	action := m.Keys.ResolveKey(msg)
	switch action {
	case keymap.ActionQuit:
		m.Shutdown()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
		m.resizeComponents()
		return m, nil
	case keymap.ActionReload:
		return m, m.reload()
	}

	if m.Strip == nil {
		return m, nil
	}
	return m, m.handleStripAction(action)
}

func (m *Model) handleStripAction(action keymap.Action) tea.Cmd {
	switch action {
	case keymap.ActionPrev:
		return m.Strip.Prev()
	case keymap.ActionNext:
		return m.Strip.Next()
	case keymap.ActionFirst:
		return m.Strip.First()
	case keymap.ActionLast:
		return m.Strip.Last()
	case keymap.ActionToggleStyle:
		cmd := m.Strip.ToggleStyle()
		m.Style = m.Strip.Style()
		if err := m.saveSession(); err != nil {
			return tea.Batch(cmd, m.setError(errmsg.OpStyleChange, err))
		}
		return cmd
	case keymap.ActionRemove:
		it, _ := m.Strip.Focused()
		cmd, err := m.Strip.RemoveFocused()
		switch {
		case errors.Is(err, strip.ErrEmpty), errors.Is(err, carousel.ErrRemovalInProgress):
			return nil
		case err != nil:
			return m.setErrorWith(errmsg.OpItemRemove, it.Name, err)
		}
		return cmd
	case keymap.ActionTogglePlaying:
		cmd, _ := m.Strip.TogglePlaying()
		return cmd
	}
	return nil
}

// handleMouseMsg forwards pointer input on the strip rows. Motion and
// release always reach the strip so a drag leaving it still ends.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Strip == nil {
		return m, nil
	}
	onStrip := msg.Y < m.stripHeight()
	if !onStrip && msg.Action == tea.MouseActionPress {
		return m, nil
	}
	return m, m.Strip.Update(msg)
}
