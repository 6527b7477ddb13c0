package contract

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Availability label constants.
const (
	FullValue    = "Full"    // At or near full capacity
	ReducedValue = "Reduced" // Noticeably below full capacity
	LimitedValue = "Limited" // Less than half capacity
	OutValue     = "Out"     // No capacity at all
)

// Color variables for console output.
var (
	FullColor    = color.New(color.FgGreen)               // fullColor signals healthy capacity.
	ReducedColor = color.New(color.FgYellow)              // reducedColor signals standard caution, not bold.
	LimitedColor = color.New(color.FgMagenta, color.Bold) // limitedColor signals a strong, distinct warning.
	OutColor     = color.New(color.FgRed, color.Bold)     // outColor signals a resource with zero contribution.
)

// GetPlainAvailabilityLabel returns a plain text label for a resource's
// next-sprint capacity relative to a full sprint. This is the core logic
// used for CSV, JSON, and table printing.
func GetPlainAvailabilityLabel(effDays, sprintDays float64) string {
	if sprintDays <= 0 {
		return OutValue
	}
	ratio := effDays / sprintDays
	switch {
	case ratio >= 0.8:
		return FullValue
	case ratio >= 0.5:
		return ReducedValue
	case ratio > 0:
		return LimitedValue
	default:
		return OutValue
	}
}

// GetColorAvailabilityLabel returns a colored text label for console output.
// It uses GetPlainAvailabilityLabel to determine the string, then applies
// the appropriate color.
func GetColorAvailabilityLabel(effDays, sprintDays float64) string {
	text := GetPlainAvailabilityLabel(effDays, sprintDays)

	switch text {
	case FullValue:
		return FullColor.Sprint(text)
	case ReducedValue:
		return ReducedColor.Sprint(text)
	case LimitedValue:
		return LimitedColor.Sprint(text)
	default: // "Out"
		return OutColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// Round2 rounds to two decimal places, the precision used for all
// displayed effective-day and velocity figures.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TruncateName truncates a resource name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both content
// and the ellipsis.
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

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
