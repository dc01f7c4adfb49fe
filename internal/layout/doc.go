// Package layout implements the pretty-printing document algebra and
// best-fit printer spec §4.4/§4.5 describes: a small set of document
// primitives built by internal/format from the AST, and a printer that
// decides, group by group, whether each renders flat or broken.
package layout

// Kind tags a Doc node.
type Kind uint8

const (
	KindText Kind = iota
	// KindSoftBreak renders as nothing when flat, a newline when broken.
	KindSoftBreak
	// KindLine renders as a single space when flat, a newline when broken.
	KindLine
	// KindHardBreak always renders as a newline, forcing every enclosing
	// group to break.
	KindHardBreak
	KindIndent
	KindGroup
	KindIfBroken
	KindConcat
)

// Doc is a node in the printer's intermediate document tree. A tree is
// built fresh for one file and consumed once by Print; nodes are never
// shared across files, so identity-keyed caching in this package is
// safe.
type Doc struct {
	Kind Kind

	Text string // KindText

	Level    int    // KindIndent: additional indent levels for the child
	Children []*Doc // KindConcat (N), KindGroup/KindIndent (1)

	Broken *Doc // KindIfBroken: used when the enclosing group breaks
	Flat   *Doc // KindIfBroken: used when the enclosing group stays flat
}

// Text is a literal run of source text with no break points.
func Text(s string) *Doc { return &Doc{Kind: KindText, Text: s} }

// Concat joins docs with no break between them.
func Concat(docs ...*Doc) *Doc { return &Doc{Kind: KindConcat, Children: docs} }

// SoftBreak is nothing when flat, a newline when broken.
func SoftBreak() *Doc { return &Doc{Kind: KindSoftBreak} }

// Line is a space when flat, a newline when broken.
func Line() *Doc { return &Doc{Kind: KindLine} }

// HardBreak is always a newline; any group containing one can never
// render flat.
func HardBreak() *Doc { return &Doc{Kind: KindHardBreak} }

// Indent increases the indent level by levels for everything within d
// that renders as a broken newline.
func Indent(levels int, d *Doc) *Doc {
	return &Doc{Kind: KindIndent, Level: levels, Children: []*Doc{d}}
}

// Group is a unit of the best-fit decision: it renders flat if its
// flat width fits the remaining line budget, else broken, independent
// of any enclosing or nested group's own decision.
func Group(d *Doc) *Doc { return &Doc{Kind: KindGroup, Children: []*Doc{d}} }

// IfBroken selects broken or flat depending on the nearest enclosing
// group's decision.
func IfBroken(broken, flat *Doc) *Doc { return &Doc{Kind: KindIfBroken, Broken: broken, Flat: flat} }
