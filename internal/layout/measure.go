package layout

import "github.com/mattn/go-runewidth"

// measure computes d's flat-rendered width bottom-up, memoized per
// node (spec §4.5: "Flat width is computed bottom-up once per group").
// A nested Group is measured as if it too rendered flat: that is
// exactly the question an enclosing group's own fit check needs to
// ask ("if I collapsed everything under me onto one line, how wide
// would it be?"), independent of what that nested group actually
// decides once printing reaches it.
func measure(c *cache, d *Doc) measurement {
	if d == nil {
		return measurement{}
	}
	if m, ok := c.get(d); ok {
		return m
	}

	var m measurement
	switch d.Kind {
	case KindText:
		m = measurement{width: runewidth.StringWidth(d.Text)}
	case KindSoftBreak:
		m = measurement{width: 0}
	case KindLine:
		m = measurement{width: 1}
	case KindHardBreak:
		m = measurement{hard: true}
	case KindIndent:
		m = measure(c, d.Children[0])
	case KindGroup:
		m = measure(c, d.Children[0])
	case KindIfBroken:
		// A flat ancestor only ever reaches the Flat branch, so that is
		// the branch whose width matters for this check.
		m = measure(c, d.Flat)
	case KindConcat:
		for _, child := range d.Children {
			cm := measure(c, child)
			m.width += cm.width
			if cm.hard {
				m.hard = true
			}
		}
	}

	c.put(d, m)
	return m
}
