// Package fmtconfig loads formatter Options from a "gdformat.toml" file,
// walking up from a starting directory the way a project manifest is
// located. A field the file leaves unset keeps its Default() value
// (line_length_maximum 100); TerminalLineLength is a separate helper
// that Load does not call.
package fmtconfig
