package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the output.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Layer properties
	colorKey = color.New(color.FgCyan)

	// Success messages
	colorDone = color.New(color.FgGreen)

	// Warnings from the decorators
	colorWarn = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// warnWriter prints log lines as warnings
type warnWriter struct {
	w io.Writer
}

func (ww warnWriter) Write(p []byte) (int, error) {
	if _, err := colorWarn.Fprint(ww.w, "warning: ", string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
