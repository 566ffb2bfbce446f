// Package term provides color state and terminal detection.
//
// Color printers are package-level variables because both logging and display
// need them for output formatting. [Configure] sets them once during startup;
// when colors are disabled the fatih/color global switch makes every printer
// a plain-text passthrough.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/backmassage/webmpress/internal/config"
)

// Level color printers. Plain passthrough when colors are disabled.
var (
	Red     = color.New(color.FgHiRed, color.Bold).SprintFunc()
	Green   = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	Yellow  = color.New(color.FgHiYellow, color.Bold).SprintFunc()
	Blue    = color.New(color.FgHiBlue, color.Bold).SprintFunc()
	Cyan    = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	Magenta = color.New(color.FgHiMagenta, color.Bold).SprintFunc()
)

// Configure resolves the color mode and flips the global color switch.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return !color.NoColor }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
