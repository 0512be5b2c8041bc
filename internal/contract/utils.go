package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	SelectedColor = color.New(color.FgGreen, color.Bold) // SelectedColor marks the selected slice or brushed commit.
	HeaderColor   = color.New(color.FgCyan, color.Bold)  // HeaderColor marks section headers.
	MutedColor    = color.New(color.FgHiBlack)           // MutedColor marks values outside the selection.
)

// Marker prefixes a selected row in table output.
const Marker = "●"

// SelectedLabel returns the label for a table row, highlighted when selected.
func SelectedLabel(label string, selected, useColors bool) string {
	if !selected {
		return label
	}
	if useColors {
		return SelectedColor.Sprint(Marker + " " + label)
	}
	return Marker + " " + label
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
