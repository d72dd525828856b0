// internal/app/update_loading.go
package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/debug"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/geom"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui/layout"
	"github.com/llehouerou/reel/internal/ui/strip"
)

// handleLoadingMsg routes folder loading messages.
func (m Model) handleLoadingMsg(msg LoadingMessage) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(FolderLoadedMsg); ok {
		return m.handleFolderLoaded(msg)
	}
	return m, nil
}

func (m Model) handleFolderLoaded(msg FolderLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		return m, nil
	}
	m.Loading = false
	if msg.Err != nil {
		return m, m.setErrorWith(errmsg.OpFolderScan, msg.Folder, msg.Err)
	}

	list := media.NewList(msg.Items)
	st, err := strip.New(list, m.stripOptions())
	if err != nil {
		return m, m.setErrorWith(errmsg.OpFolderLoad, msg.Folder, err)
	}
	m.Folder = msg.Folder
	m.List = list
	m.Strip = st
	m.StatusMsg = ""
	m.pendingSizes = nil

	var toMeasure []media.Item
	for _, it := range msg.Items {
		if c, ok := msg.Cached[it.Path]; ok && c.ModTime == it.ModTime.UnixNano() {
			m.applySize(it, geom.Size{Width: c.Width, Height: c.Height})
			continue
		}
		toMeasure = append(toMeasure, it)
	}

	if f := msg.Focus; f != nil && list.Len() > 0 {
		index := list.IndexOfName(f.ItemName)
		if index < 0 {
			index = min(max(f.Index, 0), list.Len()-1)
		}
		st.SetFocus(index)
	}
	m.resizeComponents()

	var cmds []tea.Cmd
	if err := m.saveSession(); err != nil {
		cmds = append(cmds, m.setError(errmsg.OpFolderLoad, err))
	}

	m.Measuring = len(toMeasure)
	for _, it := range toMeasure {
		cmds = append(cmds, measureCmd(m.ctx, m.generation, m.measureSem, m.Measurer, it))
	}
	cmds = append(cmds, m.startSpinner())
	debug.Logf("opened %s: %d items, %d to measure", m.Folder, list.Len(), len(toMeasure))
	return m, tea.Batch(cmds...)
}

// reload cancels work on the open folder and scans it again.
func (m *Model) reload() tea.Cmd {
	m.Shutdown()
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.generation++
	m.Loading = true
	m.Measuring = 0
	m.pendingSizes = nil
	if m.Strip != nil {
		if it, ok := m.Strip.Focused(); ok {
			m.saveFocus(m.Strip.Center(), it.Name)
		}
	}
	return tea.Batch(
		loadFolderCmd(m.ctx, m.generation, m.Folder, m.StateMgr),
		m.startSpinner(),
	)
}

// handleMeasureMsg routes measurement messages.
func (m Model) handleMeasureMsg(msg MeasureMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemMeasuredMsg:
		return m.handleItemMeasured(msg)
	case SizesSavedMsg:
		if msg.Err != nil {
			debug.Logf("save sizes: %v", msg.Err)
		}
	}
	return m, nil
}

func (m Model) handleItemMeasured(msg ItemMeasuredMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		return m, nil
	}
	m.Measuring = max(m.Measuring-1, 0)

	var cmds []tea.Cmd
	switch {
	case errors.Is(msg.Err, context.Canceled):
	case msg.Err != nil:
		// The item keeps its natural size.
		debug.Logf("%s", errmsg.FormatWith(errmsg.OpItemMeasure, msg.Item.Name, msg.Err))
	default:
		cmds = append(cmds, m.applySize(msg.Item, msg.Size))
		m.pendingSizes = append(m.pendingSizes, state.ItemSize{
			Path:    msg.Item.Path,
			ModTime: msg.Item.ModTime.UnixNano(),
			Width:   msg.Size.Width,
			Height:  msg.Size.Height,
		})
	}

	if m.Measuring == 0 && len(m.pendingSizes) > 0 {
		cmds = append(cmds, saveSizesCmd(m.StateMgr, m.pendingSizes))
		m.pendingSizes = nil
	}
	return m, tea.Batch(cmds...)
}

// applySize hands a pixel size to the strip in cell units. Items removed
// meanwhile are skipped.
func (m *Model) applySize(it media.Item, pixels geom.Size) tea.Cmd {
	if m.Strip == nil || m.List.IndexOf(it.ID()) < 0 {
		return nil
	}
	cmd, err := m.Strip.SetPreferredSize(it.ID(), layout.ToCells(pixels, m.CellSize))
	if err != nil {
		debug.Logf("%s", errmsg.FormatWith(errmsg.OpItemMeasure, it.Name, err))
		return nil
	}
	return cmd
}
