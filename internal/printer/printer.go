// Package printer styles the diagnostic messages written to stderr. Project
// identifiers themselves are never styled.
package printer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style definitions for consistent diagnostic output.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects the Print functions. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// SetNoColor disables all styling when disabled is true. Styling is also
// dropped when stderr is not a terminal.
func SetNoColor(disabled bool) {
	if disabled || !term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec // G115: fd is a small value, no overflow risk
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

func writeLine(text string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, text)
}

// PrintError prints text with error (red) styling.
func PrintError(text string) {
	writeLine(Error(text))
}

// PrintWarning prints text with warning (yellow) styling.
func PrintWarning(text string) {
	writeLine(Warning(text))
}

// Debug prints a labelled diagnostic line: "debug: <msg>".
func Debug(format string, args ...any) {
	writeLine(Faint("debug:") + " " + fmt.Sprintf(format, args...))
}
