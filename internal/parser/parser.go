// Package parser turns a token stream into a lossless ast.File tree,
// attaching every comment to the nearest node (spec §4.2).
package parser

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/diag"
	"github.com/Razoric480/gdformat/internal/lexer"
	"github.com/Razoric480/gdformat/internal/source"
	"github.com/Razoric480/gdformat/internal/token"
)

// Options configures a Parser.
type Options struct {
	Reporter  diag.Reporter
	MaxErrors uint
}

func (o Options) enough(errs uint) bool {
	return o.MaxErrors != 0 && errs >= o.MaxErrors
}

// Parser holds per-file parse state. A Parser is single-use: construct
// one with New, call ParseFile once, discard it.
type Parser struct {
	lx   *lexer.Lexer
	fs   *source.FileSet
	file source.FileID
	b    *ast.Builder
	opts Options
	errs uint

	// Comment bookkeeping (spec §4.2): pendingLeading accumulates
	// stand-alone comments waiting to attach to whichever construct is
	// parsed next; pendingTrailing holds a same-line comment waiting to
	// attach to whichever construct was just finished; lastCodeLine is
	// the source line of the most recently consumed non-trivial token.
	pendingLeading  []ast.Comment
	pendingTrailing *ast.Comment
	lastCodeLine    uint32

	// depth tracks the current block nesting (one tab per level, spec
	// §4.1), used to classify a stand-alone comment as disabled-line
	// when its column doesn't match the expected indentation.
	depth int

	// truncated is set once a construct is found opened but not
	// completed before EOF (spec §4.7's TruncatedConstruct), which is
	// recoverable rather than a hard abort; once set, further
	// diagnostics from unwinding the call stack back to EOF are noise
	// and are suppressed by report. pendingRawTail carries the verbatim
	// source text the construct's caller should splice into its node in
	// place of a reformatted body.
	truncated      bool
	pendingRawTail string
}

func New(lx *lexer.Lexer, fs *source.FileSet, file source.FileID, b *ast.Builder, opts Options) *Parser {
	return &Parser{lx: lx, fs: fs, file: file, b: b, opts: opts}
}

// ParseFile consumes the whole token stream and returns the resulting
// file's ID in the shared builder.
func (p *Parser) ParseFile() ast.FileID {
	return p.parseFile()
}

// Result is the outcome of a single-file parse.
type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parse is the package's entry point: build a Parser over an
// already-constructed lexer and builder, parse the whole file, and
// return its root id alongside whatever diagnostics were collected.
func Parse(fs *source.FileSet, file source.FileID, lx *lexer.Lexer, b *ast.Builder, maxErrors uint) Result {
	capHint := int(maxErrors)
	if capHint <= 0 {
		// MaxErrors == 0 means "no cutoff" (Options.enough never fires),
		// so the bag itself needs enough room to not silently drop
		// diagnostics Options would otherwise have let through.
		capHint = 256
	}
	bag := diag.NewBag(capHint)
	opts := Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: maxErrors}
	p := New(lx, fs, file, b, opts)
	return Result{File: p.ParseFile(), Bag: bag}
}

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

func (p *Parser) atAny(ks ...token.Kind) bool {
	peek := p.lx.Peek().Kind
	for _, k := range ks {
		if peek == k {
			return true
		}
	}
	return false
}

// advance consumes the next token, folding its leading trivia into
// p.pending for the next construct that wants leading comments.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.absorbLeading(tok)
	return tok
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, diag.SevError, msg)
	return p.lx.Peek(), false
}

func (p *Parser) report(code diag.Code, sev diag.Severity, msg string) {
	// Once a construct has been found truncated, the rest of the call
	// stack unwinding back to EOF (each caller's own "expected dedent" /
	// "expected end of statement") is noise on top of the one diagnostic
	// that actually explains what happened.
	if p.truncated && code != diag.CodeTruncatedConstruct {
		return
	}
	if sev == diag.SevError {
		p.errs++
	}
	if p.opts.Reporter == nil || p.opts.enough(p.errs) {
		return
	}
	p.opts.Reporter.Report(code, sev, p.lx.Peek().Span, msg)
}

// reportTruncatedTail records a recoverable "opened but not completed
// before EOF" diagnostic (spec §4.7's TruncatedConstruct) and captures
// everything from start to EOF verbatim into pendingRawTail, for the
// caller to splice into its node unchanged rather than reformatted.
func (p *Parser) reportTruncatedTail(start uint32, msg string) {
	p.truncated = true
	p.report(diag.CodeTruncatedConstruct, diag.SevError, msg)
	content := p.fs.Get(p.file).Content
	if int(start) <= len(content) {
		p.pendingRawTail = string(content[start:])
	}
}

// skipNewlines consumes blank/Newline tokens, which a grammar position
// is happy to tolerate (e.g. between a class header and its first
// member).
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// resync advances past tokens until it finds one of the given
// "sync points" or EOF, used to recover from an unexpected-token error
// at a known recursion level (spec §4.7).
func (p *Parser) resync(syncAt ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(syncAt...) {
		p.advance()
	}
}
