package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
	pathColor    = color.New(color.Bold)
)

// Pretty writes one human-readable report per diagnostic in bag to w, in
// the order the diagnostics were collected:
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	    <context>
//	<line> | <source line>
//	       | <caret underline>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts Options) {
	path := "<input>"
	var start, end source.LineCol
	if fs != nil {
		f := fs.Get(d.Primary.File)
		path = displayPath(f.Path, opts.PathMode)
		start, end = fs.Resolve(d.Primary)
	}

	sevLabel, sevColor := severityLabel(d.Severity)
	header := fmt.Sprintf("%s:%d:%d:", path, start.Line, start.Col)
	if opts.Color {
		fmt.Fprintf(w, "%s %s %s: %s\n", pathColor.Sprint(header), sevColor.Sprint(sevLabel), d.Code, d.Message)
	} else {
		fmt.Fprintf(w, "%s %s %s: %s\n", header, sevLabel, d.Code, d.Message)
	}

	if fs == nil {
		return
	}
	writeSnippet(w, fs, d.Primary, start, end, opts)
}

func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, start, end source.LineCol, opts Options) {
	gutter := fmt.Sprintf("%d", end.Line)
	gutterWidth := len(gutter)

	firstLine := start.Line
	if opts.Context > 0 {
		ctx, err := safeSub(firstLine, uint32(opts.Context))
		if err == nil {
			firstLine = ctx
		}
	}
	if firstLine < 1 {
		firstLine = 1
	}

	for line := firstLine; line < start.Line; line++ {
		text := fs.LineText(span.File, line)
		fmt.Fprintf(w, "%*d | %s\n", gutterWidth, line, text)
	}

	text := fs.LineText(span.File, start.Line)
	fmt.Fprintf(w, "%*d | %s\n", gutterWidth, start.Line, text)

	underline := caretUnderline(text, start.Col, end.Line, end.Col)
	pad := strings.Repeat(" ", gutterWidth)
	if opts.Color {
		fmt.Fprintf(w, "%s | %s\n", pad, caretColor.Sprint(underline))
	} else {
		fmt.Fprintf(w, "%s | %s\n", pad, underline)
	}
}

// caretUnderline builds a "^~~~" marker aligned to the span's start
// column, measuring display width with go-runewidth so tabs and wide
// runes line up with the printed source line rather than a raw byte
// count.
func caretUnderline(line string, startCol uint32, endLine, endCol uint32) string {
	runes := []rune(line)
	startIdx := int(startCol) - 1
	if startIdx < 0 {
		startIdx = 0
	}
	if startIdx > len(runes) {
		startIdx = len(runes)
	}

	var pad strings.Builder
	for _, r := range runes[:startIdx] {
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}

	span := 1
	if endLine == 0 || endCol > startCol {
		span = int(endCol - startCol)
	}
	if span < 1 {
		span = 1
	}
	underlineWidth := runewidth.StringWidth(string(runes[startIdx:min(startIdx+span, len(runes))]))
	if underlineWidth < 1 {
		underlineWidth = 1
	}

	var b strings.Builder
	b.WriteString(pad.String())
	b.WriteByte('^')
	if underlineWidth > 1 {
		b.WriteString(strings.Repeat("~", underlineWidth-1))
	}
	return b.String()
}

func severityLabel(sev diag.Severity) (string, *color.Color) {
	switch sev {
	case diag.SevError:
		return "error", errorColor
	case diag.SevWarning:
		return "warning", warningColor
	default:
		return "info", infoColor
	}
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
			return path[idx+1:]
		}
	}
	return path
}

func safeSub(a, b uint32) (uint32, error) {
	if b > a {
		return 0, fmt.Errorf("underflow")
	}
	return a - b, nil
}
