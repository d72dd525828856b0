//go:build unix

package layout

import (
	"os"

	"golang.org/x/sys/unix"
)

// QueryCellSize returns the terminal cell dimensions in pixels by querying
// TIOCGWINSZ. Falls back to DefaultCellSize if unavailable.
func QueryCellSize() CellSize {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return DefaultCellSize
	}
	return CellSize{
		Width:  int(ws.Xpixel) / int(ws.Col),
		Height: int(ws.Ypixel) / int(ws.Row),
	}
}
