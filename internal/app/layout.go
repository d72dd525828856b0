// internal/app/layout.go
package app

import (
	"errors"

	"github.com/llehouerou/reel/internal/ui/layout"
)

// helpPanelHeight is the preferred height of the help panel.
const helpPanelHeight = 12

var errWindowTooSmall = errors.New("window too small")

// helpHeight is the height of the help panel, 0 when hidden. The strip keeps
// at least layout.MinStripHeight rows.
func (m *Model) helpHeight() int {
	if !m.ShowHelp {
		return 0
	}
	room := m.Height - layout.StatusHeight - layout.MinStripHeight
	return max(min(helpPanelHeight, room), 0)
}

// stripHeight is the height of the strip rows at the top of the window.
func (m *Model) stripHeight() int {
	return layout.StripHeight(m.Height, layout.ContentOpts{
		StatusHeight: layout.StatusHeight,
		HelpHeight:   m.helpHeight(),
	})
}

// stripFits reports whether items have room for at least one row.
func (m *Model) stripFits() bool {
	return float64(m.stripHeight()) > m.Config.Metrics().VerticalInset
}

// resizeComponents pushes the window size to every component.
func (m *Model) resizeComponents() {
	if m.Strip != nil {
		m.Strip.SetSize(m.Width, m.stripHeight())
	}
	m.Help.SetSize(m.Width, m.helpHeight())
}
