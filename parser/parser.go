// Package parser implements a hand-written recursive-descent parser with
// a Pratt/precedence-climbing expression core, turning a token.Token
// stream from package lexer into the ast package's Statement trees.
//
// The parser buffers every non-trivia token of the whole input up
// front into a slice and walks it with an index rather than consuming
// the lexer one token at a time, so it can backtrack: speculate snapshots
// the index, tries a parse, and rewinds on a soft failure instead of
// failing outright (see speculate.go).
package parser

import (
	"fmt"
	"strings"

	"github.com/sqlast/sqlast/ast"
	"github.com/sqlast/sqlast/dialect"
	"github.com/sqlast/sqlast/keyword"
	"github.com/sqlast/sqlast/lexer"
	"github.com/sqlast/sqlast/token"
)

// Parser holds the token buffer and cursor for one Parse call. It is not
// safe for concurrent use; construct one per call, matching the
// lexer.Lexer's own single-call-at-a-time discipline.
type Parser struct {
	d       dialect.Dialect
	toks    []token.Token
	pos     int // index of the current token in toks
	depth   int
	maxDepth int
	recordComments bool
	trailingSemicolon bool
}

// Parse tokenizes and parses sql under dialect d, returning every
// statement found, in source order. A trailing ';' before EOF is
// treated as a statement separator, not a requirement; an empty
// statement between two semicolons is skipped.
func Parse(sql string, d dialect.Dialect, opts ...Option) ([]ast.Statement, error) {
	stmts, _, err := ParseWithMarginComments(sql, d, opts...)
	return stmts, err
}

// ParseWithMarginComments is Parse plus the comment margin SplitMarginComments
// strips from the ends of sql before tokenizing: a /* header */ banner or
// a trailing -- note that sits outside any statement and so has nowhere
// to attach in the AST. When WithRecordComments is off, Margin is always
// the zero value and sql is parsed unsplit.
func ParseWithMarginComments(sql string, d dialect.Dialect, opts ...Option) ([]ast.Statement, MarginComments, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	body := sql
	var margin MarginComments
	if cfg.recordComments {
		body, margin = SplitMarginComments(sql)
		margin.Leading = strings.TrimRight(margin.Leading, " \t\r\n")
		// SplitMarginComments leaves trailing -- line comments in the
		// body; peel them off into the trailing margin here.
		for {
			lineStart := strings.LastIndexByte(body, '\n') + 1
			line := strings.TrimSpace(body[lineStart:])
			if !strings.HasPrefix(line, "--") {
				break
			}
			margin.Trailing = strings.TrimRight(line+"\n"+margin.Trailing, " \t\r\n")
			body = strings.TrimRight(body[:lineStart], " \t\r\n")
		}
	}

	toks, err := tokenizeAll(body, d)
	if err != nil {
		return nil, margin, err
	}

	p := &Parser{
		d:        d,
		toks:     toks,
		maxDepth: cfg.maxDepth,
		recordComments: cfg.recordComments,
		trailingSemicolon: cfg.trailingSemicolon,
	}

	var stmts []ast.Statement
	for {
		p.skipSemicolons()
		if p.at(token.EOF) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return stmts, margin, err
		}
		stmts = append(stmts, stmt)
		if !p.at(token.Semicolon) && !p.at(token.EOF) {
			return stmts, margin, &Error{Pos: p.cur().Span.Start, Reason: "expected ';' or end of input", Found: p.cur()}
		}
	}
	return stmts, margin, nil
}

// tokenizeAll drains l into a slice, dropping Whitespace tokens: the
// parser never needs trivia to build the AST, so trivia is dropped
// before the parser ever sees it. A Comment token shaped like a MySQL
// version-gated comment (/*!40101 SET NAMES utf8 */, as mysqldump
// emits) is not trivia: its body is live SQL that a mysqld at or above
// the stated version executes, so it is re-lexed and spliced into the
// stream in place of the comment.
func tokenizeAll(sql string, d dialect.Dialect) ([]token.Token, error) {
	l := lexer.New(sql, d)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.Comment:
			if isMysqlVersionComment(tok.Text) {
				_, inner := ExtractMysqlComment(tok.Text)
				innerToks, err := tokenizeAll(inner, d)
				if err != nil {
					return nil, err
				}
				toks = append(toks, innerToks[:len(innerToks)-1]...) // drop inner EOF
			}
			continue
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// isMysqlVersionComment reports whether text is a whole /*!NNNNN ...*/
// MySQL version-gated comment, the shape ExtractMysqlComment expects.
func isMysqlVersionComment(text string) bool {
	if len(text) < 8 || !strings.HasPrefix(text, "/*!") || !strings.HasSuffix(text, "*/") {
		return false
	}
	for _, r := range text[3:6] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p *Parser) skipSemicolons() {
	for p.at(token.Semicolon) {
		p.advance()
	}
}

// cur returns the token at the cursor without consuming it.
func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

// peekN returns the token n positions ahead of the cursor (peekN(0) ==
// cur()) without consuming anything.
func (p *Parser) peekN(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

// kw reports whether the current token is the keyword kw (matched
// case-insensitively via the dialect's keyword table), regardless of
// whether the dialect treats it as reserved.
func (p *Parser) kw(kw keyword.Keyword) bool {
	t := p.cur()
	if t.Kind != token.Word || t.Quote != 0 {
		return false
	}
	got, _, ok := lexer.KeywordAt(p.d, t.Text)
	return ok && got == kw
}

// kwText reports whether the current token is an (unquoted) Word whose
// text matches s case-insensitively, bypassing the keyword table. Used
// for contextual words that keyword.Lookup may not classify uniquely
// (FETCH_CLAUSE vs. FETCH, and the like).
func (p *Parser) kwText(s string) bool {
	t := p.cur()
	return t.Kind == token.Word && t.Quote == 0 && eqFold(t.Text, s)
}

func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// expectKwText consumes the current token if it matches kwText(s), else
// returns a parse error.
func (p *Parser) expectKwText(s string) error {
	if !p.kwText(s) {
		return &Error{Pos: p.cur().Span.Start, Reason: fmt.Sprintf("expected %q", s), Found: p.cur(), Expected: []string{s}}
	}
	p.advance()
	return nil
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.at(k) {
		return token.Token{}, &Error{Pos: p.cur().Span.Start, Reason: fmt.Sprintf("expected %s", k), Found: p.cur(), Expected: []string{k.String()}}
	}
	return p.advance(), nil
}

// enter increments the recursion depth for the duration of a parse
// subroutine, returning a soft error once maxDepth is exceeded rather
// than recursing further.
func (p *Parser) enter() (func(), error) {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		return func() {}, p.recursionLimitError()
	}
	return func() { p.depth-- }, nil
}
