package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/carousel"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // focused item, active states
	Secondary lipgloss.Color // playing video

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color
	BgStatus lipgloss.Color

	Border      lipgloss.Color // items at rest
	BorderFocus lipgloss.Color // focused item

	Error   lipgloss.Color
	Warning lipgloss.Color

	// Fill tints the inside of an item by kind.
	Fill map[carousel.MediaKind]lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Status  lipgloss.Style
	Key     lipgloss.Style
	Playing lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgStatus: lipgloss.Color("#262626"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	Fill: map[carousel.MediaKind]lipgloss.Color{
		carousel.Image: lipgloss.Color("#2b2640"),
		carousel.Video: lipgloss.Color("#3a2a12"),
		carousel.PDF:   lipgloss.Color("#1f3328"),
	},
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// FillFor returns the fill color of kind, or the base background.
func (t *Theme) FillFor(kind carousel.MediaKind) lipgloss.Color {
	if c, ok := t.Fill[kind]; ok {
		return c
	}
	return t.BgBase
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgStatus),
		Key: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
