package fmtconfig

// Options are the tunables format() accepts (spec §6). Zero value is not
// valid; use Default() or Load() to obtain one with defaults applied.
type Options struct {
	// LineLengthMaximum is the column budget a Group must fit within to
	// stay flat.
	LineLengthMaximum int
	// IndentInMultilineBlock chooses, when a call/array/dictionary
	// breaks across lines, how many indent levels its contents get
	// beyond the opening line: one (0) or two (1).
	IndentInMultilineBlock int
}

const defaultLineLengthMaximum = 100

// Default returns the spec's documented defaults.
func Default() Options {
	return Options{
		LineLengthMaximum:      defaultLineLengthMaximum,
		IndentInMultilineBlock: 0,
	}
}
