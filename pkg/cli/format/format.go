// Package format holds shared CLI output styling.
package format

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Output colors
var (
	SuccessColor = color.New(color.FgGreen, color.Bold)
	WarningColor = color.New(color.FgYellow, color.Bold)
	ErrorColor   = color.New(color.FgRed, color.Bold)
	DetailColor  = color.New(color.FgHiBlack)
)

// Success prints a green confirmation line.
func Success(format string, args ...interface{}) {
	SuccessColor.Printf(format+"\n", args...)
}

// Warn prints a yellow warning line.
func Warn(format string, args ...interface{}) {
	WarningColor.Printf(format+"\n", args...)
}

// Error prints a red error line to stderr.
func Error(format string, args ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", args...)
}

// MaskSecret shortens a secret for display, keeping three characters of
// context at each end.
func MaskSecret(s string) string {
	if len(s) <= 6 {
		return "******"
	}
	return fmt.Sprintf("%s******%s", s[:3], s[len(s)-3:])
}
