//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFolderLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpFolderLoad,
			err:      errors.New("permission denied"),
			expected: "Failed to load folder: permission denied",
		},
		{
			name:     "measure operation",
			op:       OpItemMeasure,
			err:      errors.New("ffprobe not found"),
			expected: "Failed to measure item: ffprobe not found",
		},
		{
			name:     "persistence operation",
			op:       OpFocusSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save focus: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpItemMeasure,
			context:  "clip.mp4",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpItemMeasure,
			context:  "clip.mp4",
			err:      errors.New("no video stream"),
			expected: "Failed to measure item 'clip.mp4': no video stream",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpItemRemove,
			context:  "",
			err:      errors.New("removal in progress"),
			expected: "Failed to remove item: removal in progress",
		},
		{
			name:     "folder with path context",
			op:       OpFolderScan,
			context:  "/home/user/Pictures",
			err:      errors.New("directory not found"),
			expected: "Failed to scan folder '/home/user/Pictures': directory not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpFolderLoad, OpFolderScan,
		OpItemMeasure, OpItemRemove,
		OpStyleChange, OpResize,
		OpFocusLoad, OpFocusSave,
		OpConfigLoad, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
