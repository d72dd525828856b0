// Package render provides text rendering utilities for the strip and the
// status bar.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes
// so file names cannot break terminal rendering.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b >= 0x7f {
			return !utf8.ValidString(s) || strings.ContainsFunc(s, unicode.IsControl)
		}
	}
	return false
}

// Truncate shortens s to maxWidth cells, ending with "…" when cut.
// Uses runewidth for wide characters (CJK, emoji).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Fit truncates s and pads it to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// Center truncates s and pads both sides to exactly width cells.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Row puts left and right at the two ends of a width-cell line. Styled
// strings are measured without their escape codes.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Cut returns the cells [start, end) of a styled line.
func Cut(s string, start, end int) string {
	if end <= start {
		return ""
	}
	return ansi.Cut(s, start, end)
}

// EmptyLine is width spaces.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
