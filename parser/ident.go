package parser

import (
	"github.com/sqlast/sqlast/ast"
	"github.com/sqlast/sqlast/lexer"
	"github.com/sqlast/sqlast/token"
)

// parseIdent consumes one identifier token: a quoted Word (any quote
// style) or an unquoted Word that is not reserved under the active
// dialect.
func (p *Parser) parseIdent() (ast.Ident, error) {
	t := p.cur()
	if t.Kind != token.Word {
		return ast.Ident{}, &Error{Pos: t.Span.Start, Reason: "expected an identifier", Found: t}
	}
	if t.Quote == 0 {
		if _, reserved, ok := lexer.KeywordAt(p.d, t.Text); ok && reserved {
			return ast.Ident{}, &Error{Pos: t.Span.Start, Reason: "unexpected reserved word " + t.Text, Found: t}
		}
	}
	p.advance()
	return ast.Ident{Name: t.Text, Quote: ast.QuoteChar(t.Quote)}, nil
}

// parseObjectName parses a dotted path of identifiers: table, or
// schema.table, or catalog.schema.table.
func (p *Parser) parseObjectName() (ast.ObjectName, error) {
	first, err := p.parseIdent()
	if err != nil {
		return ast.ObjectName{}, err
	}
	parts := []ast.Ident{first}
	for p.at(token.Dot) {
		p.advance()
		next, err := p.parseIdent()
		if err != nil {
			return ast.ObjectName{}, err
		}
		parts = append(parts, next)
	}
	return ast.ObjectName{Parts: parts}, nil
}

