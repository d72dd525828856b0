// Package debug provides optional file-based debug logging.
//
// When the REEL_DEBUG environment variable is set to a file path, the
// standard logger appends to that file. Otherwise log output is discarded,
// since the terminal belongs to the UI.
package debug

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// EnvVar names the log file.
const EnvVar = "REEL_DEBUG"

var enabled bool

// Setup routes the standard logger. The returned func closes the log file.
func Setup() (func() error, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		enabled = false
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "reel")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() error { return nil }, err
	}
	enabled = true
	return f.Close, nil
}

// Enabled reports whether log lines are kept.
func Enabled() bool {
	return enabled
}

// Logf logs a line when debugging is enabled.
func Logf(format string, args ...any) {
	if !enabled {
		return
	}
	log.Printf(format, args...)
}
