// Package layout provides pure functions for splitting the screen and for
// converting between media pixels and terminal cells.
package layout

import (
	"math"

	"github.com/llehouerou/reel/internal/geom"
)

// StatusHeight is the height of the status bar (single line).
const StatusHeight = 1

// MinStripHeight is the smallest strip that still shows a caption row and
// an item row.
const MinStripHeight = 3

// ContentOpts contains the parameters needed to calculate the strip height.
type ContentOpts struct {
	StatusHeight int
	HelpHeight   int // 0 when help is hidden
}

// StripHeight is the window height left for the strip, never below
// MinStripHeight.
func StripHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	return max(height, MinStripHeight)
}

// Viewport is the strip viewport in cell units.
func Viewport(width, height int) geom.Size {
	return geom.Size{Width: float64(width), Height: float64(height)}
}

// CellSize is the size of one terminal cell in pixels.
type CellSize struct {
	Width, Height int
}

// DefaultCellSize is used when the terminal does not report pixel sizes.
var DefaultCellSize = CellSize{Width: 8, Height: 16}

// Valid reports whether both dimensions are positive.
func (c CellSize) Valid() bool {
	return c.Width > 0 && c.Height > 0
}

// ToCells converts a pixel size to cell units, so its width/height ratio is
// measured in columns per row.
func ToCells(pixels geom.Size, cell CellSize) geom.Size {
	if !cell.Valid() {
		cell = DefaultCellSize
	}
	return geom.Size{
		Width:  pixels.Width / float64(cell.Width),
		Height: pixels.Height / float64(cell.Height),
	}
}

// Span maps the content range [minX, maxX) scrolled by offset to screen
// columns. Both edges round the same way, so neighbours never overlap.
func Span(minX, maxX, offset float64) (start, end int) {
	start = int(math.Round(minX - offset))
	end = int(math.Round(maxX - offset))
	return start, max(start, end)
}

// Clip restricts [start, end) to [0, width).
func Clip(start, end, width int) (int, int, bool) {
	start = max(start, 0)
	end = min(end, width)
	return start, end, start < end
}
