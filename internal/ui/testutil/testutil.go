// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a string, accounting for wide
// characters and ignoring escape sequences.
func MeasureWidth(s string) int {
	return lipgloss.Width(s)
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineWidths returns the visual width of every line of output.
func LineWidths(output string) []int {
	lines := strings.Split(output, "\n")
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = MeasureWidth(line)
	}
	return widths
}

// ContainsLine checks if any line of the plain output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first plain line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
