package styles

import "github.com/charmbracelet/lipgloss"

// ItemBorder returns the border color of an item that is mix of the way to
// being focused.
func ItemBorder(mix float64) lipgloss.Color {
	t := T()
	return Blend(t.Border, t.BorderFocus, mix)
}

// ItemStyle returns the rounded box style of an item.
func ItemStyle(border, fill lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(fill)
}
