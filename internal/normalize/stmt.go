package normalize

import "github.com/Razoric480/gdformat/internal/ast"

func (c *ctx) block(ids []ast.StmtID) {
	for _, id := range ids {
		c.stmt(id)
	}
}

func (c *ctx) stmt(id ast.StmtID) {
	s := c.b.Stmts.Get(id)
	if s == nil {
		return
	}
	switch s.Kind {
	case ast.StmtIf:
		s.Cond = c.expr(s.Cond)
		c.block(s.Then)
		for i := range s.Elifs {
			s.Elifs[i].Cond = c.expr(s.Elifs[i].Cond)
			c.block(s.Elifs[i].Body)
		}
		c.block(s.Else)
	case ast.StmtWhile:
		s.Cond = c.expr(s.Cond)
		c.block(s.Then)
	case ast.StmtFor:
		s.Iterable = c.expr(s.Iterable)
		c.block(s.Then)
	case ast.StmtMatch:
		s.Subject = c.expr(s.Subject)
		for i := range s.Arms {
			for j := range s.Arms[i].Patterns {
				c.pattern(&s.Arms[i].Patterns[j])
			}
			c.block(s.Arms[i].Body)
		}
	case ast.StmtReturn, ast.StmtAwait, ast.StmtExpression:
		s.Value = c.expr(s.Value)
	case ast.StmtAssert:
		s.Value = c.expr(s.Value)
		s.Message = c.expr(s.Message)
	case ast.StmtAssignment:
		s.Target = c.expr(s.Target)
		s.RHS = c.expr(s.RHS)
	case ast.StmtVarDecl, ast.StmtConstDecl:
		s.Value = c.expr(s.Value)
	}
}

func (c *ctx) pattern(p *ast.Pattern) {
	switch p.Kind {
	case ast.PatternLiteral:
		p.Literal = c.expr(p.Literal)
	case ast.PatternArray:
		for i := range p.Elements {
			c.pattern(&p.Elements[i])
		}
	case ast.PatternDictionary:
		for i := range p.DictEntries {
			p.DictEntries[i].Key = c.expr(p.DictEntries[i].Key)
			c.pattern(&p.DictEntries[i].Value)
		}
	case ast.PatternMulti:
		for i := range p.Values {
			c.pattern(&p.Values[i])
		}
	}
}
