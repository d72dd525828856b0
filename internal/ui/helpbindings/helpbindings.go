// Package helpbindings provides a scrollable panel listing the key and
// mouse bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// CloseMsg asks the owner to hide the panel.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"global", "strip", "mouse"}

var categoryLabels = map[string]string{
	"global": "Global",
	"strip":  "Strip",
	"mouse":  "Mouse",
}

// chrome is the title line plus the footer line.
const chrome = 2

// Model holds the state for the help panel.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help panel showing every category.
func New() Model {
	m := Model{}
	m.SetContexts(categoryOrder)
	return m
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Update scrolls the panel or asks to close it.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return nil
}

// View renders the panel at its size.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.lines()
	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	for _, line := range lines[start:end] {
		b.WriteString("\n")
		b.WriteString(line)
	}
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return lipgloss.NewStyle().MaxWidth(m.Width()).Render(b.String())
}

func (m *Model) lines() []string {
	s := styles.T().S()

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines, s.Warning.Bold(true).Render(label))
			current = b.Context
		}
		key := keyLabel(b)
		padded := key + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(key))
		lines = append(lines, "  "+s.Key.Render(padded)+"  "+s.Base.Render(b.Description))
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	labels := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		labels[i] = keymap.KeyLabel(k)
	}
	return strings.Join(labels, ", ")
}

func (m *Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-chrome, 1)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
