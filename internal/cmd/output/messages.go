package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/agentstation/v0-cli/internal/cmd/emoji"
)

// Message helper writers, swappable in tests. Errorf writes to stderr so
// that piped stdout stays clean; the other helpers write to stdout.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
)

// Successf prints a success message prefixed with a green check glyph.
func Successf(format string, args ...any) {
	fmt.Fprintf(Stdout, "%s %s\n", successColor.Sprint(emoji.Success), fmt.Sprintf(format, args...))
}

// Errorf prints an error message prefixed with a red cross glyph to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s %s\n", errorColor.Sprint(emoji.Error), fmt.Sprintf(format, args...))
}

// Infof prints an informational message prefixed with a cyan glyph.
func Infof(format string, args ...any) {
	fmt.Fprintf(Stdout, "%s %s\n", infoColor.Sprint(emoji.Info), fmt.Sprintf(format, args...))
}

// Warningf prints a warning message prefixed with a yellow glyph.
func Warningf(format string, args ...any) {
	fmt.Fprintf(Stdout, "%s %s\n", warningColor.Sprint(emoji.Warning), fmt.Sprintf(format, args...))
}
