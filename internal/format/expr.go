package format

import (
	"github.com/Razoric480/gdformat/internal/ast"
	"github.com/Razoric480/gdformat/internal/layout"
	"github.com/Razoric480/gdformat/internal/token"
)

// exprDoc renders an expression node. topLevel marks a position where a
// Binary chain or Ternary that breaks must synthesize its own enclosing
// parentheses (spec §4.4: "wrapped in a Parenthesized group when the
// original had no enclosing brackets") — true only for the direct
// right-hand side of a var/const initializer, an assignment, a
// return/await value, or a bare expression statement; everywhere else
// (call args, array/dict elements, an explicit ExprParenthesized's
// operand) the surrounding brackets already exist, so a nested
// Binary/Ternary there never adds its own.
func (c *converter) exprDoc(id ast.ExprID, topLevel bool) *layout.Doc {
	e := c.b.Exprs.Get(id)
	if e == nil {
		return layout.Concat()
	}
	switch e.Kind {
	case ast.ExprLiteral:
		return layout.Text(e.Text)
	case ast.ExprIdentifier:
		return layout.Text(c.b.Strings.MustLookup(e.Name))
	case ast.ExprSelf:
		return layout.Text("self")
	case ast.ExprSuper:
		return layout.Text("super")
	case ast.ExprGetNode:
		if e.Quoted {
			return layout.Text(e.Text)
		}
		return layout.Text("$" + c.b.Strings.MustLookup(e.Name))
	case ast.ExprPreload:
		return c.callLikeDoc("preload", e.Args)
	case ast.ExprCall:
		return layout.Concat(c.exprDoc(e.Callee, false), c.argListDoc(e.Args))
	case ast.ExprAttribute:
		return layout.Concat(c.exprDoc(e.Base, false), layout.Text("."), layout.Text(c.b.Strings.MustLookup(e.Name)))
	case ast.ExprSubscript:
		return layout.Concat(c.exprDoc(e.Base, false), layout.Text("["), c.exprDoc(e.Operand, false), layout.Text("]"))
	case ast.ExprUnary:
		return c.unaryDoc(e)
	case ast.ExprBinary:
		return c.binaryDoc(e, topLevel)
	case ast.ExprTernary:
		return c.ternaryDoc(e, topLevel)
	case ast.ExprCast:
		return layout.Concat(c.exprDoc(e.Operand, false), layout.Text(" as "), c.typeRefDoc(e.TargetType))
	case ast.ExprArray:
		return c.arrayDoc(e)
	case ast.ExprDictionary:
		return c.dictDoc(e)
	case ast.ExprLambda:
		return c.lambdaDoc(e)
	case ast.ExprParenthesized:
		return layout.Concat(layout.Text("("), c.exprDoc(e.Operand, false), layout.Text(")"))
	default:
		return layout.Concat()
	}
}

func (c *converter) unaryDoc(e *ast.Expr) *layout.Doc {
	spelling := token.Spelling(e.Op)
	if e.Op == token.KwNot {
		spelling = "not "
	}
	return layout.Concat(layout.Text(spelling), c.exprDoc(e.Operand, false))
}

// binaryDoc renders `left op right`; when this is a top-level position
// and the whole chain doesn't fit flat, it synthesizes its own
// parentheses and breaks with the operator leading the continuation
// line (spec §4.4).
func (c *converter) binaryDoc(e *ast.Expr, topLevel bool) *layout.Doc {
	left := c.exprDoc(e.Left, false)
	right := c.exprDoc(e.Right, false)
	op := token.Spelling(e.Op)
	body := layout.Concat(left, layout.Line(), layout.Text(op+" "), right)
	if !topLevel {
		return layout.Group(body)
	}
	return c.wrapBreakable(body)
}

// ternaryDoc renders `then if cond else else`. Its one break point is
// before `else`: `then if cond` always stays on one line, and a broken
// ternary continues with `else ...` on the next line, the shape of
// spec §8 scenario 5.
func (c *converter) ternaryDoc(e *ast.Expr, topLevel bool) *layout.Doc {
	then := c.exprDoc(e.ThenExpr, false)
	cond := c.exprDoc(e.Cond, false)
	elseExpr := c.exprDoc(e.ElseExpr, false)
	body := layout.Concat(then, layout.Text(" if "), cond, layout.Line(), layout.Text("else "), elseExpr)
	if !topLevel {
		return layout.Group(body)
	}
	return c.wrapBreakable(body)
}

// wrapBreakable is the synthetic-parenthesization group spec §4.4
// describes: a single Group so that whether it breaks and whether the
// "(" "/" ")" appear are the same decision.
func (c *converter) wrapBreakable(body *layout.Doc) *layout.Doc {
	return layout.Group(layout.Concat(
		layout.IfBroken(layout.Text("("), layout.Concat()),
		layout.Indent(1, layout.Concat(layout.IfBroken(layout.SoftBreak(), layout.Concat()), body)),
		layout.IfBroken(layout.Concat(layout.SoftBreak(), layout.Text(")")), layout.Concat()),
	))
}

func (c *converter) argListDoc(args []ast.ExprID) *layout.Doc {
	items := make([]elemDoc, len(args))
	for i, a := range args {
		e := c.b.Exprs.Get(a)
		items[i] = elemDoc{content: c.exprDoc(a, false), leading: e.Leading, trailing: e.Trailing}
	}
	return bracketed("(", ")", c.collectionIndent(), items, nil)
}

func (c *converter) callLikeDoc(callee string, args []ast.ExprID) *layout.Doc {
	return layout.Concat(layout.Text(callee), c.argListDoc(args))
}

func (c *converter) arrayDoc(e *ast.Expr) *layout.Doc {
	items := make([]elemDoc, len(e.Elements))
	for i, el := range e.Elements {
		elem := c.b.Exprs.Get(el)
		items[i] = elemDoc{content: c.exprDoc(el, false), leading: elem.Leading, trailing: elem.Trailing}
	}
	return bracketed("[", "]", c.collectionIndent(), items, e.Dangling)
}

func (c *converter) dictDoc(e *ast.Expr) *layout.Doc {
	items := make([]elemDoc, len(e.Entries))
	for i, entry := range e.Entries {
		items[i] = elemDoc{content: c.dictEntryDoc(entry, e.Style), leading: entry.Leading, trailing: entry.Trailing}
	}
	return bracketed("{", "}", c.collectionIndent(), items, e.Dangling)
}

func (c *converter) dictEntryDoc(entry ast.DictEntry, style ast.DictStyle) *layout.Doc {
	key := c.exprDoc(entry.Key, false)
	value := c.exprDoc(entry.Value, false)
	if style == ast.DictStyleLua {
		return layout.Concat(key, layout.Text(" = "), value)
	}
	return layout.Concat(key, layout.Text(": "), value)
}

func (c *converter) lambdaDoc(e *ast.Expr) *layout.Doc {
	parts := []*layout.Doc{layout.Text("func")}
	parts = append(parts, c.paramListDoc(e.Params))
	if e.ReturnType != nil {
		parts = append(parts, layout.Text(" -> "), c.typeRefDoc(*e.ReturnType))
	}
	parts = append(parts, layout.Text(":"))
	parts = append(parts, c.blockDoc(e.Body))
	return layout.Concat(parts...)
}
