// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Folder operations
	OpFolderLoad Op = "load folder"
	OpFolderScan Op = "scan folder"

	// Item operations
	OpItemMeasure Op = "measure item"
	OpItemRemove  Op = "remove item"

	// Layout operations
	OpStyleChange Op = "change layout style"
	OpResize      Op = "resize strip"

	// Persistence
	OpFocusLoad Op = "load saved focus"
	OpFocusSave Op = "save focus"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
