// internal/app/view.go
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	sections := []string{m.renderStrip()}
	if h := m.helpHeight(); h > 0 {
		sections = append(sections, fitHeight(m.Help.View(), m.Width, h))
	}
	sections = append(sections, m.renderStatus())
	return strings.Join(sections, "\n")
}

func (m Model) renderStrip() string {
	h := m.stripHeight()
	if m.Strip != nil {
		return m.Strip.View()
	}

	msg := "No folder"
	if m.Loading {
		msg = m.Spinner.View() + " Loading " + render.Sanitize(filepath.Base(m.Folder))
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = render.EmptyLine(m.Width)
	}
	lines[h/2] = lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, msg)
	return fitHeight(strings.Join(lines, "\n"), m.Width, h)
}

// renderStatus renders the one-line status bar: where we are on the left,
// activity or errors on the right.
func (m Model) renderStatus() string {
	s := styles.T().S()

	left := []string{icons.FormatFolder(render.Sanitize(filepath.Base(m.Folder)))}
	if m.Strip != nil && !m.Strip.Empty() {
		left = append(left, fmt.Sprintf("%d/%d", m.Strip.Center()+1, m.Strip.Count()))
		if it, ok := m.Strip.Focused(); ok {
			left = append(left, it.Kind.String(), humanize.Bytes(uint64(max(it.Size, 0))))
		}
	}
	left = append(left, m.Style.String())
	if m.Strip != nil && m.Strip.Playing() {
		left = append(left, s.Playing.Render(icons.Playing() + " playing"))
	}

	var right string
	switch {
	case m.ErrorMsg != "":
		right = s.Error.Render(render.Truncate(m.ErrorMsg, m.Width/2))
	case m.Loading:
		right = m.Spinner.View() + " loading"
	case m.Measuring > 0:
		right = m.Spinner.View() + fmt.Sprintf(" measuring %d", m.Measuring)
	case m.StatusMsg != "":
		right = s.Muted.Render(render.Truncate(m.StatusMsg, m.Width/2))
	default:
		right = s.Subtle.Render("? help")
	}

	leftText := " " + strings.Join(left, " · ")
	leftWidth := max(m.Width-lipgloss.Width(right)-2, 0)
	row := render.Row(render.Cut(leftText, 0, leftWidth), right+" ", m.Width)
	return s.Status.Width(m.Width).MaxWidth(m.Width).Render(row)
}

// fitHeight pads or cuts view to exactly h lines of width cells.
func fitHeight(view string, width, h int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if pad := width - lipgloss.Width(line); pad > 0 {
			lines[i] = line + render.EmptyLine(pad)
		}
	}
	return strings.Join(lines, "\n")
}
