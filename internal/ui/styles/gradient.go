package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color ramp from from to to, one
// color per grapheme cluster.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	base := lipgloss.NewStyle().Bold(bold)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range blendColors(len(clusters), from, to) {
		b.WriteString(base.Foreground(lipgloss.Color(colorToHex(c))).Render(clusters[i]))
	}
	return b.String()
}

// Blend returns the color t of the way from from to to, in HCL space.
// t is clamped to [0,1].
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// blendColors returns a slice of colors blended between from and to.
// Blending is done in HCL color space for perceptually uniform transitions.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{from}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t)
	}

	return colors
}

// lipglossToColor converts a lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// colorToHex converts a color.Color to a hex string.
func colorToHex(c color.Color) string {
	cf, ok := c.(colorful.Color)
	if ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
