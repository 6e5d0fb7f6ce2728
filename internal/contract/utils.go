package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/babynames/schema"
)

// Color variables for console output.
var (
	UnisexColor  = color.New(color.FgMagenta, color.Bold) // UnisexColor marks names shared evenly.
	LeaningColor = color.New(color.FgYellow)              // LeaningColor marks names with a clear minority.
	SkewedColor  = color.New(color.FgCyan)                // SkewedColor marks names used almost only by one sex.
	SingleColor  = color.New(color.Faint)                 // SingleColor marks names used by one sex only.

	IncreaseColor = color.New(color.FgGreen)
	DecreaseColor = color.New(color.FgRed)
)

// GetColorLabel returns a colored ambiguity label for console output (table).
// It uses schema.GetAmbiguityLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(entropy float64) string {
	text := schema.GetAmbiguityLabel(entropy)

	switch text {
	case schema.UnisexLabel:
		return UnisexColor.Sprint(text)
	case schema.LeaningLabel:
		return LeaningColor.Sprint(text)
	case schema.SkewedLabel:
		return SkewedColor.Sprint(text)
	default:
		return SingleColor.Sprint(text)
	}
}

// GetColorDirection returns a colored change direction for console output.
func GetColorDirection(direction schema.ChangeDirection) string {
	if direction == schema.Decrease {
		return DecreaseColor.Sprint(string(direction))
	}
	return IncreaseColor.Sprint(string(direction))
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
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

// TruncateName truncates a name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
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
