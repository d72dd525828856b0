package strip

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/bounce"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/ui/layout"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// View renders the visible part of the strip. Every line is exactly the
// strip width.
func (m *Model) View() string {
	w, h := m.Width(), m.Height()
	if w <= 0 || h <= 0 {
		return ""
	}
	if m.Empty() || !m.Ready() {
		return m.emptyView(w, h)
	}

	rows := make([]strings.Builder, h)
	cursor := 0
	first, last := m.geo.VisibleRange(m.offset.X)
	for i := first; i <= last; i++ {
		f := m.geo.Frame(i)
		start, end := layout.Span(f.MinX(), f.MaxX(), m.offset.X)
		cs, ce, ok := layout.Clip(max(start, cursor), end, w)
		if !ok {
			continue
		}

		top := int(math.Round(f.MinY()))
		height := min(int(math.Round(f.Size.Height)), h-top)
		box := m.renderItem(i, end-start, height)
		caption := m.renderCaption(i, end-start)

		for r := range rows {
			rows[r].WriteString(render.EmptyLine(cs - cursor))
			switch {
			case r >= top && r-top < len(box):
				rows[r].WriteString(render.Cut(box[r-top], cs-start, ce-start))
			case r == top+height:
				rows[r].WriteString(render.Cut(caption, cs-start, ce-start))
			default:
				rows[r].WriteString(render.EmptyLine(ce - cs))
			}
		}
		cursor = ce
	}

	lines := make([]string, h)
	for r := range rows {
		rows[r].WriteString(render.EmptyLine(w - cursor))
		lines[r] = rows[r].String()
	}
	m.drawEdges(lines, w)
	return strings.Join(lines, "\n")
}

// focusWeight is how focused item i is, following the transition.
func (m *Model) focusWeight(i int) float64 {
	st := m.geo.State()
	switch {
	case !st.Transitioning():
		if i == st.Center {
			return 1
		}
	case i == st.Center:
		return 1 - st.Transition.Progress
	case i == st.Transition.Target:
		return st.Transition.Progress
	}
	return 0
}

func (m *Model) renderItem(i, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	it := m.list.Item(i)
	t := styles.T()
	fill := t.FillFor(it.Kind)

	if width < 3 || height < 3 {
		line := lipgloss.NewStyle().Background(fill).Render(render.EmptyLine(width))
		box := make([]string, height)
		for r := range box {
			box[r] = line
		}
		return box
	}

	border := styles.ItemBorder(m.focusWeight(i))
	if m.geo.Playing() == it.ID() {
		border = t.Secondary
	}
	inner := width - 2
	content := []string{render.Truncate(icons.FormatKind(it.Kind), inner)}
	if m.geo.Playing() == it.ID() {
		content = append(content, render.Truncate(icons.Playing()+" playing", inner))
	}
	if size, ok := m.sizes[it.ID()]; ok && size.Height > 0 {
		content = append(content, render.Truncate(ratioLabel(size.Ratio()), inner))
	}
	content = content[:min(len(content), height-2)]

	out := styles.ItemStyle(border, fill).
		Width(inner).
		Height(height - 2).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Foreground(t.FgMuted).
		Render(strings.Join(content, "\n"))
	return strings.Split(out, "\n")
}

func ratioLabel(r float64) string {
	// Cell ratios are twice the pixel ratio on the usual 1:2 cells.
	switch {
	case r >= 2.6:
		return "wide"
	case r <= 1.4:
		return "tall"
	default:
		return "square"
	}
}

func (m *Model) renderCaption(i, width int) string {
	if width <= 0 {
		return ""
	}
	name := render.Center(m.list.Item(i).Name, width)
	t := styles.T()
	if m.focusWeight(i) >= 0.5 {
		return styles.Gradient(name, t.Primary, t.Secondary, true)
	}
	return t.S().Subtle.Render(name)
}

// drawEdges marks the overscrolled edges with a bar.
func (m *Model) drawEdges(lines []string, w int) {
	dir := m.edges.Bouncing()
	if dir == 0 || w < 2 {
		return
	}
	s := styles.T().S()
	bar := func(edge bounce.Direction) string {
		if m.edges.ReverseBouncing().Has(edge) {
			return s.Muted.Render("┃")
		}
		return s.Warning.Render("┃")
	}
	for r, line := range lines {
		if dir.Has(bounce.Left) {
			line = bar(bounce.Left) + render.Cut(line, 1, w)
		}
		if dir.Has(bounce.Right) {
			line = render.Cut(line, 0, w-1) + bar(bounce.Right)
		}
		lines[r] = line
	}
}

func (m *Model) emptyView(w, h int) string {
	lines := make([]string, h)
	for r := range lines {
		lines[r] = render.EmptyLine(w)
	}
	msg := "No media"
	if !m.Empty() {
		msg = "…"
	}
	lines[h/2] = styles.T().S().Muted.Render(render.Center(msg, w))
	return strings.Join(lines, "\n")
}

// ItemAt returns the item under column x, if any.
func (m *Model) ItemAt(x int) (media.Item, bool) {
	if m.Empty() || !m.Ready() {
		return media.Item{}, false
	}
	first, last := m.geo.VisibleRange(m.offset.X)
	for i := first; i <= last; i++ {
		f := m.geo.Frame(i)
		start, end := layout.Span(f.MinX(), f.MaxX(), m.offset.X)
		if x >= start && x < end {
			return m.list.Item(i), true
		}
	}
	return media.Item{}, false
}
