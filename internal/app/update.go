// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/bounce"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/ui/helpbindings"
	"github.com/llehouerou/reel/internal/ui/strip"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadingMessage:
		return m.handleLoadingMsg(msg)

	case MeasureMessage:
		return m.handleMeasureMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case strip.FrameMsg:
		if m.Strip == nil {
			return m, nil
		}
		return m, m.Strip.Update(msg)

	case strip.FocusChangedMsg:
		m.saveFocus(msg.Index, msg.Item.Name)
		return m, nil

	case strip.RemovedMsg:
		m.StatusMsg = "Removed " + msg.Item.Name
		return m, nil

	case strip.EmptiedMsg:
		m.StatusMsg = "Strip is empty"
		return m, nil

	case strip.EdgeMsg:
		m.handleEdge(msg)
		return m, nil

	case helpbindings.CloseMsg:
		m.ShowHelp = false
		m.resizeComponents()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case ErrorTimeoutMsg:
		if msg.Version == m.errorVersion {
			m.ErrorMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleEdge shows which end of the folder the strip is pulled past, until
// it starts to come back.
func (m *Model) handleEdge(msg strip.EdgeMsg) {
	text := "End of folder"
	if msg.Edge == bounce.Left {
		text = "Start of folder"
	}
	switch {
	case !msg.Recovering:
		m.StatusMsg = text
	case m.StatusMsg == text:
		m.StatusMsg = ""
	}
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.resizeComponents()
	if !m.stripFits() {
		return m, m.setError(errmsg.OpResize, errWindowTooSmall)
	}
	return m, nil
}

// setError shows err in the status bar until it times out.
func (m *Model) setError(op errmsg.Op, err error) tea.Cmd {
	m.ErrorMsg = errmsg.Format(op, err)
	m.errorVersion++
	return ErrorTimeoutCmd(m.errorVersion)
}

// setErrorWith is setError with the name of what failed.
func (m *Model) setErrorWith(op errmsg.Op, context string, err error) tea.Cmd {
	m.ErrorMsg = errmsg.FormatWith(op, context, err)
	m.errorVersion++
	return ErrorTimeoutCmd(m.errorVersion)
}
