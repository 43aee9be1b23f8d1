package parser

import (
	"fmt"

	"github.com/sqlast/sqlast/token"
)

// Error is the failure a Parse call returns when the token stream cannot
// be formed into a statement: an unexpected token, a missing clause, or
// a recursion-depth overrun. It carries enough of the source position
// that a caller can point a user at the exact offending token, mirroring
// token.Error's line/column reporting.
type Error struct {
	Pos      token.Pos
	Reason   string
	Found    token.Token
	Expected []string // candidate token/keyword spellings, when known; nil otherwise
}

func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error at %s: %s (found %q)", e.Pos, e.Reason, e.Found.String())
	}
	return fmt.Sprintf("parse error at %s: %s (found %q, expected one of %v)", e.Pos, e.Reason, e.Found.String(), e.Expected)
}

// recursionLimitError reports that an expression or subquery nested
// deeper than the configured maximum, the safety valve required so a
// pathological input cannot blow the Go call stack.
func (p *Parser) recursionLimitError() error {
	return &Error{
		Pos:    p.cur().Span.Start,
		Reason: fmt.Sprintf("exceeded maximum nesting depth of %d", p.maxDepth),
		Found:  p.cur(),
	}
}
