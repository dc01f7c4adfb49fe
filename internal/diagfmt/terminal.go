package diagfmt

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal, the same check
// a command-line front end uses to decide whether Options.Color should
// default to on.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
