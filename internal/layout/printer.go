package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// tabWidth is the fixed column width a tab counts as for line-budget
// measurement; the character actually emitted for one indent level is
// still a single tab byte (spec §4.5).
const tabWidth = 4

// Printer renders a Doc tree to text with the best-fit algorithm: each
// Group independently renders flat if its flat width, added to the
// current column, fits within maxWidth, else broken. Nested groups
// decide independently, so an outer group can break while an inner one
// stays flat.
type Printer struct {
	maxWidth int
	cache    *cache
}

// NewPrinter creates a Printer bound to a line-budget in columns.
func NewPrinter(maxWidth int) *Printer {
	return &Printer{maxWidth: maxWidth, cache: newCache()}
}

// Print renders d starting at the given column and indent depth, both
// ordinarily 0 for a statement beginning its own line.
func (p *Printer) Print(d *Doc, startCol, startDepth int) string {
	var sb strings.Builder
	col := startCol
	p.render(&sb, d, &col, startDepth, false)
	return sb.String()
}

func (p *Printer) render(sb *strings.Builder, d *Doc, col *int, depth int, flat bool) {
	if d == nil {
		return
	}
	switch d.Kind {
	case KindText:
		sb.WriteString(d.Text)
		*col += runewidth.StringWidth(d.Text)
	case KindSoftBreak:
		if flat {
			return
		}
		p.newline(sb, col, depth)
	case KindLine:
		if flat {
			sb.WriteByte(' ')
			*col++
			return
		}
		p.newline(sb, col, depth)
	case KindHardBreak:
		p.newline(sb, col, depth)
	case KindIndent:
		p.render(sb, d.Children[0], col, depth+d.Level, flat)
	case KindGroup:
		m := measure(p.cache, d.Children[0])
		fits := !m.hard && *col+m.width <= p.maxWidth
		p.render(sb, d.Children[0], col, depth, fits)
	case KindIfBroken:
		if flat {
			p.render(sb, d.Flat, col, depth, flat)
		} else {
			p.render(sb, d.Broken, col, depth, flat)
		}
	case KindConcat:
		for _, child := range d.Children {
			p.render(sb, child, col, depth, flat)
		}
	}
}

func (p *Printer) newline(sb *strings.Builder, col *int, depth int) {
	sb.WriteByte('\n')
	if depth > 0 {
		sb.WriteString(strings.Repeat("\t", depth))
	}
	*col = depth * tabWidth
}
