// Package console implements the default error reporter: a single colored
// line on stderr. Color is disabled when stderr is not a terminal or when
// NO_COLOR is set.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var errPrefix = color.New(color.FgRed, color.Bold)

// ReportError writes an error line to stderr. It is the default message
// handler of the client's error-handler chain.
func ReportError(msg string) {
	Freport(os.Stderr, msg)
}

// Freport writes an error line to w, coloring the marker only when w is a
// terminal.
func Freport(w io.Writer, msg string) {
	if useColor(w) {
		fmt.Fprintln(w, errPrefix.Sprint("✗")+" "+msg)
		return
	}
	fmt.Fprintln(w, "✗ "+msg)
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
