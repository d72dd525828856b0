// Package app contains the root model of the reel TUI and its messages.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/geom"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/state"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these interfaces, so they
// are handled separately in the Update() switch.

// LoadingMessage is implemented by messages related to opening a folder.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// MeasureMessage is implemented by messages related to item measurement.
type MeasureMessage interface {
	tea.Msg
	measureMessage()
}

// FolderLoadedMsg carries the result of scanning a folder. Cached holds the
// stored sizes of the scanned paths, keyed by path.
type FolderLoadedMsg struct {
	Generation int
	Folder     string
	Items      []media.Item
	Cached     map[string]state.ItemSize
	Focus      *state.FocusState
	Err        error
}

func (FolderLoadedMsg) loadingMessage() {}

// ItemMeasuredMsg carries the natural size of one item, in pixels.
type ItemMeasuredMsg struct {
	Generation int
	Item       media.Item
	Size       geom.Size
	Err        error
}

func (ItemMeasuredMsg) measureMessage() {}

// SizesSavedMsg reports the end of a size cache write.
type SizesSavedMsg struct {
	Err error
}

func (SizesSavedMsg) measureMessage() {}

// ErrorTimeoutMsg clears the status bar error once it is stale. Version
// ignores timeouts of errors that were already replaced.
type ErrorTimeoutMsg struct {
	Version int
}
