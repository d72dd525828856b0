// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/debug"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/state"
)

// errorTimeout is how long an error stays in the status bar.
const errorTimeout = 5 * time.Second

// loadFolderCmd scans folder and reads what is stored about it.
func loadFolderCmd(ctx context.Context, gen int, folder string, mgr state.Interface) tea.Cmd {
	return func() tea.Msg {
		items, err := media.Scan(ctx, folder)
		if err != nil {
			return FolderLoadedMsg{Generation: gen, Folder: folder, Err: err}
		}

		paths := make([]string, len(items))
		for i, it := range items {
			paths[i] = it.Path
		}
		cached, err := mgr.GetItemSizes(paths)
		if err != nil {
			debug.Logf("size cache: %v", err)
			cached = nil
		}
		focus, err := mgr.GetFocus(folder)
		if err != nil {
			debug.Logf("%s", errmsg.FormatWith(errmsg.OpFocusLoad, folder, err))
			focus = nil
		}

		return FolderLoadedMsg{
			Generation: gen,
			Folder:     folder,
			Items:      items,
			Cached:     cached,
			Focus:      focus,
		}
	}
}

// measureCmd measures one item once a measurement slot is free.
func measureCmd(ctx context.Context, gen int, sem chan struct{}, measurer *media.Measurer, it media.Item) tea.Cmd {
	return func() tea.Msg {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return ItemMeasuredMsg{Generation: gen, Item: it, Err: ctx.Err()}
		}
		defer func() { <-sem }()

		size, err := measurer.Measure(ctx, it)
		return ItemMeasuredMsg{Generation: gen, Item: it, Size: size, Err: err}
	}
}

// saveSizesCmd writes measured sizes to the cache.
func saveSizesCmd(mgr state.Interface, sizes []state.ItemSize) tea.Cmd {
	return func() tea.Msg {
		return SizesSavedMsg{Err: mgr.SaveItemSizes(sizes)}
	}
}

// ErrorTimeoutCmd returns a command that sends ErrorTimeoutMsg after errorTimeout.
func ErrorTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(errorTimeout, func(_ time.Time) tea.Msg {
		return ErrorTimeoutMsg{Version: version}
	})
}
