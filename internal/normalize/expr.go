package normalize

import "github.com/Razoric480/gdformat/internal/ast"

// alwaysUnwrap lists operand kinds that never need parentheses for
// grouping regardless of surrounding precedence: they are already the
// tightest-binding primaries a grammar has, so wrapping them can never
// change how the source parses (spec §4.2: "Every call/parameter/
// collection node that originated wrapped in redundant parentheses has
// those parentheses removed if removing them does not alter parse or
// change formatting").
var alwaysUnwrap = map[ast.ExprKind]bool{
	ast.ExprLiteral:    true,
	ast.ExprIdentifier: true,
	ast.ExprSelf:       true,
	ast.ExprSuper:      true,
	ast.ExprCall:       true,
	ast.ExprAttribute:  true,
	ast.ExprSubscript:  true,
	ast.ExprArray:      true,
	ast.ExprDictionary: true,
	ast.ExprGetNode:    true,
	ast.ExprPreload:    true,
}

// unwrapIfMultiline lists operand kinds whose parentheses matter for
// precedence in general (a cast or ternary can bind looser than its
// surrounding context) but which the grammar only ever wraps across
// multiple lines when the whole parenthesized group stands alone as a
// statement-level value, not nested inside a larger expression where
// removing them would change parsing (spec §4.3: "parens wrapping a
// single primary expression... unwrapped unless doing so would strand
// an unreattachable trailing comment").
var unwrapIfMultiline = map[ast.ExprKind]bool{
	ast.ExprCast:    true,
	ast.ExprTernary: true,
}

func (c *ctx) expr(id ast.ExprID) ast.ExprID {
	e := c.b.Exprs.Get(id)
	if e == nil {
		return id
	}

	switch e.Kind {
	case ast.ExprCall:
		e.Callee = c.expr(e.Callee)
		for i := range e.Args {
			e.Args[i] = c.expr(e.Args[i])
		}
	case ast.ExprPreload:
		for i := range e.Args {
			e.Args[i] = c.expr(e.Args[i])
		}
	case ast.ExprAttribute:
		e.Base = c.expr(e.Base)
	case ast.ExprUnary:
		e.Operand = c.expr(e.Operand)
	case ast.ExprSubscript:
		e.Base = c.expr(e.Base)
		e.Operand = c.expr(e.Operand)
	case ast.ExprBinary:
		e.Left = c.expr(e.Left)
		e.Right = c.expr(e.Right)
	case ast.ExprTernary:
		e.ThenExpr = c.expr(e.ThenExpr)
		e.Cond = c.expr(e.Cond)
		e.ElseExpr = c.expr(e.ElseExpr)
	case ast.ExprCast:
		e.Operand = c.expr(e.Operand)
	case ast.ExprArray:
		for i := range e.Elements {
			e.Elements[i] = c.expr(e.Elements[i])
		}
		c.freezeArray(e)
	case ast.ExprDictionary:
		for i := range e.Entries {
			e.Entries[i].Key = c.expr(e.Entries[i].Key)
			e.Entries[i].Value = c.expr(e.Entries[i].Value)
			c.hoistDictValueComments(&e.Entries[i])
		}
		freezeDict(e)
	case ast.ExprLambda:
		for i := range e.Params {
			e.Params[i].Default = c.expr(e.Params[i].Default)
		}
		c.block(e.Body)
	case ast.ExprParenthesized:
		e.Operand = c.expr(e.Operand)
		return c.maybeUnwrap(id, e)
	}
	return id
}

// maybeUnwrap decides whether a parenthesized node is redundant and,
// if so, folds its comments onto the inner operand and returns the
// operand's id in its place.
func (c *ctx) maybeUnwrap(id ast.ExprID, wrapper *ast.Expr) ast.ExprID {
	inner := c.b.Exprs.Get(wrapper.Operand)
	if inner == nil {
		return id
	}

	eligible := alwaysUnwrap[inner.Kind]
	if !eligible && unwrapIfMultiline[inner.Kind] {
		start, end := c.fs.Resolve(wrapper.Span)
		eligible = start.Line != end.Line
	}
	if !eligible {
		return id
	}

	if wrapper.Trailing != nil && inner.Trailing != nil {
		// Both the inner expression and the closing paren carry a
		// trailing comment; keeping both would merge two comments onto
		// one line, which the line format can't express, so the paren
		// stays to give the outer comment somewhere to live.
		return id
	}

	inner.Leading = append(append([]ast.Comment{}, wrapper.Leading...), inner.Leading...)
	if inner.Trailing == nil {
		inner.Trailing = wrapper.Trailing
	}
	inner.Dangling = append(inner.Dangling, wrapper.Dangling...)
	return wrapper.Operand
}

// hoistDictValueComments moves any comment that paren-unwrapping left
// on a dict value's own expression node up onto the entry (spec §9:
// "moving a comment from a value's opening paren onto the enclosing
// key when flattening a dictionary value"). dictEntryDoc only ever
// renders a value's bare text, so a comment left on the value node
// itself would otherwise be silently dropped.
func (c *ctx) hoistDictValueComments(entry *ast.DictEntry) {
	value := c.b.Exprs.Get(entry.Value)
	if value == nil {
		return
	}
	if len(value.Leading) > 0 {
		entry.Leading = append(entry.Leading, value.Leading...)
		value.Leading = nil
	}
	if value.Trailing != nil {
		if entry.Trailing == nil {
			entry.Trailing = value.Trailing
		}
		value.Trailing = nil
	}
}

func hasComments(c ast.Comments) bool {
	return len(c.Leading) > 0 || c.Trailing != nil || len(c.Dangling) > 0
}

// freezeArray sets MustBreak when an array literal carries a comment
// anywhere inside it, so layout can't collapse it back onto one line
// and silently drop or reorder that comment (spec §4.3).
func (c *ctx) freezeArray(e *ast.Expr) {
	if hasComments(e.Comments) {
		e.MustBreak = true
		return
	}
	for _, elemID := range e.Elements {
		if elem := c.b.Exprs.Get(elemID); elem != nil && hasComments(elem.Comments) {
			e.MustBreak = true
			return
		}
	}
}

func freezeDict(e *ast.Expr) {
	if hasComments(e.Comments) {
		e.MustBreak = true
		return
	}
	for _, entry := range e.Entries {
		if hasComments(entry.Comments) {
			e.MustBreak = true
			return
		}
	}
}
