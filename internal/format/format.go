package format

import (
	"strings"

	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/fmtconfig"
	"github.com/Razoric480/gdformat/internal/layout"
	"github.com/Razoric480/gdformat/internal/lexer"
	"github.com/Razoric480/gdformat/internal/normalize"
	"github.com/Razoric480/gdformat/internal/parser"
	"github.com/Razoric480/gdformat/internal/source"
)

const maxDiagnostics = 256

// Format lexes, parses, normalizes, and re-prints code (spec §6): the
// public entry point every caller (CLI, library, batch driver) goes
// through. On a lexer or parser error it returns the source unchanged
// alongside a *ParseError describing the failure; the normalizer and
// layouter that follow are specified to never fail (spec §7), so any
// panic-worthy state past that point is a bug, not user input.
func Format(code string, opts fmtconfig.Options) (string, *ParseError) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("<input>", []byte(code))

	lexBag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fs.Get(file), lexer.Options{Reporter: diag.BagReporter{Bag: lexBag}})

	b := ast.NewBuilder(ast.Hints{})
	result := parser.Parse(fs, file, lx, b, maxDiagnostics)
	// The lexer streams tokens as the parser consumes them, so its bag
	// only fills up during parser.Parse above; check it alongside the
	// parser's own bag once parsing has finished.
	if d, ok := lexBag.First(); ok {
		return code, newParseError(d)
	}
	// CodeTruncatedConstruct (spec §4.7) is the one recoverable parser
	// diagnostic: the construct it names already carries its own
	// verbatim source tail (see ast.Stmt.RawTail), so formatting
	// continues over the partial tree instead of aborting with the
	// input unchanged.
	if d, ok := result.Bag.First(); ok && d.Code != diag.CodeTruncatedConstruct {
		return code, newParseError(d)
	}

	normalize.File(fs, b, result.File)

	conv := &converter{b: b, fs: fs, file: file, opts: opts}
	doc := conv.fileDoc(result.File)
	printer := layout.NewPrinter(opts.LineLengthMaximum)
	out := printer.Print(doc, 0, 0)

	return strings.TrimRight(out, "\n") + "\n", nil
}
