package fmtconfig

import (
	"os"

	"golang.org/x/term"
)

// TerminalLineLength reports the terminal width backing f, for a caller
// that wants LineLengthMaximum to track the window it is printed in
// rather than the spec default. Returns ok=false when f is not a
// terminal or the width cannot be determined.
func TerminalLineLength(f *os.File) (width int, ok bool) {
	if !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
