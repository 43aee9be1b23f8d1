package parser

import (
	"strings"

	"github.com/sqlast/sqlast/ast"
	"github.com/sqlast/sqlast/keyword"
	"github.com/sqlast/sqlast/lexer"
	"github.com/sqlast/sqlast/token"
)

// Binding powers for the Pratt/precedence-climbing expression parser.
// Each operator's left/right power pair controls associativity: a right
// power one above the left (rbp == lbp+1) associates left, a right power
// below the left (bpExponent/bpExponentRight) associates right.
const (
	bpOr          = 5
	bpOrRight     = 6
	bpAnd         = 10
	bpAndRight    = 11
	bpNot         = 15 // prefix NOT
	bpComparison  = 20
	bpComparisonRight = 21
	bpConcatAdd   = 30
	bpConcatAddRight = 31
	bpMulDivMod   = 40
	bpMulDivModRight = 41
	bpUnary       = 50
	bpExponent    = 55
	bpExponentRight = 54
	bpPostfix     = 60
	bpCollate     = 65
	bpCollateRight = 66
)

func (p *Parser) parseExpr(minBp int) (ast.Expression, error) {
	done, err := p.enter()
	if err != nil {
		return nil, err
	}
	defer done()

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	return p.parseInfix(left, minBp)
}

func (p *Parser) parseInfix(left ast.Expression, minBp int) (ast.Expression, error) {
	for {
		negated := false
		opTok := p.cur()

		// Keyword-led infix/postfix constructs: BETWEEN, LIKE family, IN,
		// IS, COLLATE, AT TIME ZONE. These all sit at their own fixed
		// precedence bands rather than in the symbolic-operator table.
		if p.kw(keyword.NOT) {
			// `expr NOT BETWEEN/LIKE/IN/...`: NOT here negates the predicate
			// that follows, not a prefix NOT(expr) — hence the boolean flag
			// on the predicate node rather than a wrapping UnaryOp.
			if bpComparison < minBp {
				break
			}
			save := p.pos
			p.advance()
			negated = true
			if e, ok, err := p.tryParseNegatablePredicate(left, negated); err != nil {
				return nil, err
			} else if ok {
				left = e
				continue
			}
			p.pos = save
			break
		}

		if sym, ok := symbolicBinaryOp(opTok.Kind); ok {
			lbp, rbp := symbolicBp(opTok.Kind)
			if lbp < minBp {
				break
			}
			p.advance()
			if (p.kw(keyword.ANY) || p.kw(keyword.SOME) || p.kw(keyword.ALL)) && p.peekN(1).Kind == token.LParen {
				kind := ast.SubqueryComparisonAny
				if p.kw(keyword.ALL) {
					kind = ast.SubqueryComparisonAll
				}
				sub, err := p.parseAnySomeAll(kind)
				if err != nil {
					return nil, err
				}
				left = ast.AllAny{Left: left, Op: sym, Kind: kind, Subquery: sub.(ast.Exists).Subquery}
				continue
			}
			right, err := p.parseExpr(rbp)
			if err != nil {
				return nil, err
			}
			left = ast.BinaryOp{Left: left, Op: sym, Right: right}
			continue
		}

		if p.kw(keyword.AND) {
			if bpAnd < minBp {
				break
			}
			p.advance()
			right, err := p.parseExpr(bpAndRight)
			if err != nil {
				return nil, err
			}
			left = ast.BinaryOp{Left: left, Op: ast.OpAnd, Right: right}
			continue
		}
		if p.kw(keyword.OR) {
			if bpOr < minBp {
				break
			}
			p.advance()
			right, err := p.parseExpr(bpOrRight)
			if err != nil {
				return nil, err
			}
			left = ast.BinaryOp{Left: left, Op: ast.OpOr, Right: right}
			continue
		}

		if bpComparison >= minBp {
			if e, ok, err := p.tryParseNegatablePredicate(left, false); err != nil {
				return nil, err
			} else if ok {
				left = e
				continue
			}
		}

		if p.kw(keyword.COLLATE) {
			if bpCollate < minBp {
				break
			}
			p.advance()
			name, err := p.parseObjectName()
			if err != nil {
				return nil, err
			}
			left = ast.Collate{Expr: left, Collation: name}
			continue
		}
		if p.kw(keyword.AT) && p.peekKwText(1, "TIME") && p.peekKwText(2, "ZONE") {
			if bpCollate < minBp {
				break
			}
			p.advance()
			p.advance()
			p.advance()
			zone, err := p.parseExpr(bpCollateRight)
			if err != nil {
				return nil, err
			}
			left = ast.AtTimeZone{Expr: left, Zone: zone}
			continue
		}

		// Postfix: ::type, [index], .field
		if p.at(token.DoubleColon) {
			if bpPostfix < minBp {
				break
			}
			p.advance()
			typ, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			left = ast.Cast{Kind: ast.CastKindDoubleColon, Expr: left, Type: typ}
			continue
		}
		if p.at(token.LBracket) {
			if bpPostfix < minBp {
				break
			}
			p.advance()
			idx, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			if p.at(token.Colon) {
				p.advance()
				hi, err := p.parseExpr(0)
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.RBracket); err != nil {
					return nil, err
				}
				left = ast.MapAccess{Expr: left, Index: idx, Hi: hi, Slice: true}
				continue
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			left = ast.MapAccess{Expr: left, Index: idx}
			continue
		}
		if p.at(token.Dot) {
			if bpPostfix < minBp {
				break
			}
			// table.column chains are handled in parsePrefix for leading
			// identifiers; a '.' following an already-parsed non-identifier
			// expression is a struct/row field access.
			p.advance()
			field, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			left = ast.CompositeAccess{Expr: left, Field: field}
			continue
		}

		break
	}
	return left, nil
}

// tryParseNegatablePredicate attempts to parse one of the predicates
// whose NOT is represented as a boolean flag (BETWEEN, LIKE/ILIKE/
// SIMILAR TO/RLIKE, IN, IS DISTINCT FROM) starting at the current
// cursor, given that `negated` has already been determined by whether a
// NOT token preceded it. Returns ok=false (with no tokens consumed) if
// the current token doesn't start any such predicate.
func (p *Parser) tryParseNegatablePredicate(left ast.Expression, negated bool) (ast.Expression, bool, error) {
	switch {
	case p.kw(keyword.BETWEEN):
		p.advance()
		low, err := p.parseExpr(bpComparisonRight)
		if err != nil {
			return nil, false, err
		}
		if err := p.expectKwText("AND"); err != nil {
			return nil, false, err
		}
		high, err := p.parseExpr(bpComparisonRight)
		if err != nil {
			return nil, false, err
		}
		return ast.Between{Expr: left, Negated: negated, Low: low, High: high}, true, nil

	case p.kw(keyword.LIKE):
		return p.parseLikeTail(left, negated, ast.LikeKindLike)
	case p.kw(keyword.ILIKE):
		return p.parseLikeTail(left, negated, ast.LikeKindILike)
	case p.kw(keyword.RLIKE):
		return p.parseLikeTail(left, negated, ast.LikeKindRLike)
	case p.kw(keyword.SIMILAR):
		if !p.peekKwText(1, "TO") {
			return nil, false, nil
		}
		p.advance()
		return p.parseLikeTail(left, negated, ast.LikeKindSimilarTo)

	case p.kw(keyword.IN):
		p.advance()
		if p.kw(keyword.UNNEST) {
			p.advance()
			if _, err := p.expect(token.LParen); err != nil {
				return nil, false, err
			}
			arr, err := p.parseExpr(0)
			if err != nil {
				return nil, false, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, false, err
			}
			return ast.InUnnest{Expr: left, Negated: negated, ArrayExpr: arr}, true, nil
		}
		if _, err := p.expect(token.LParen); err != nil {
			return nil, false, err
		}
		if p.isSelectStart() {
			q, err := p.parseQuery()
			if err != nil {
				return nil, false, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, false, err
			}
			return ast.InSubquery{Expr: left, Negated: negated, Subquery: q}, true, nil
		}
		var list []ast.Expression
		if !p.at(token.RParen) {
			for {
				e, err := p.parseExpr(0)
				if err != nil {
					return nil, false, err
				}
				list = append(list, e)
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, false, err
		}
		return ast.InList{Expr: left, Negated: negated, List: list}, true, nil

	case p.kw(keyword.IS):
		p.advance()
		isNegated := false
		if p.kw(keyword.NOT) {
			p.advance()
			isNegated = true
		}
		switch {
		case p.kw(keyword.NULL):
			p.advance()
			return ast.Is{Kind: ast.IsKindNull, Expr: left, Negated: isNegated}, true, nil
		case p.kw(keyword.TRUE):
			p.advance()
			return ast.Is{Kind: ast.IsKindTrue, Expr: left, Negated: isNegated}, true, nil
		case p.kw(keyword.FALSE):
			p.advance()
			return ast.Is{Kind: ast.IsKindFalse, Expr: left, Negated: isNegated}, true, nil
		case p.kw(keyword.UNKNOWN):
			p.advance()
			return ast.Is{Kind: ast.IsKindUnknown, Expr: left, Negated: isNegated}, true, nil
		case p.kw(keyword.DISTINCT):
			p.advance()
			if err := p.expectKwText("FROM"); err != nil {
				return nil, false, err
			}
			other, err := p.parseExpr(bpComparisonRight)
			if err != nil {
				return nil, false, err
			}
			return ast.Is{Kind: ast.IsKindDistinctFrom, Expr: left, Negated: isNegated, Other: other}, true, nil
		}
		return nil, false, &Error{Pos: p.cur().Span.Start, Reason: "expected NULL/TRUE/FALSE/UNKNOWN/DISTINCT FROM after IS", Found: p.cur()}
	}
	if negated {
		return nil, false, &Error{Pos: p.cur().Span.Start, Reason: "expected BETWEEN/LIKE/IN/... after NOT", Found: p.cur()}
	}
	return nil, false, nil
}

func (p *Parser) parseLikeTail(left ast.Expression, negated bool, kind ast.LikeKind) (ast.Expression, bool, error) {
	p.advance()
	pattern, err := p.parseExpr(bpComparisonRight)
	if err != nil {
		return nil, false, err
	}
	var escape ast.Expression
	if p.kw(keyword.ESCAPE) {
		p.advance()
		escape, err = p.parseExpr(bpComparisonRight)
		if err != nil {
			return nil, false, err
		}
	}
	return ast.Like{Kind: kind, Expr: left, Negated: negated, Pattern: pattern, Escape: escape}, true, nil
}

// peekKwText reports whether the token n positions ahead is the
// (unquoted) word s, case-insensitively.
func (p *Parser) peekKwText(n int, s string) bool {
	t := p.peekN(n)
	return t.Kind == token.Word && t.Quote == 0 && eqFold(t.Text, s)
}

func symbolicBinaryOp(k token.Kind) (ast.BinaryOperator, bool) {
	switch k {
	case token.Plus:
		return ast.OpPlus, true
	case token.Minus:
		return ast.OpMinus, true
	case token.Star:
		return ast.OpMultiply, true
	case token.Slash:
		return ast.OpDivide, true
	case token.Percent:
		return ast.OpModulo, true
	case token.Concat:
		return ast.OpStringConcat, true
	case token.Gt:
		return ast.OpGt, true
	case token.Lt:
		return ast.OpLt, true
	case token.GtEq:
		return ast.OpGtEq, true
	case token.LtEq:
		return ast.OpLtEq, true
	case token.Eq:
		return ast.OpEq, true
	case token.NotEq:
		return ast.OpNotEq, true
	case token.Spaceship:
		return ast.OpSpaceshipEq, true
	case token.Pipe:
		return ast.OpBitwiseOr, true
	case token.Amp:
		return ast.OpBitwiseAnd, true
	case token.Caret:
		return ast.OpExponent, true
	case token.ShiftLeft:
		return ast.OpBitwiseShiftLeft, true
	case token.ShiftRight:
		return ast.OpBitwiseShiftRight, true
	case token.Arrow:
		return ast.OpArrow, true
	case token.LongArrow:
		return ast.OpLongArrow, true
	case token.HashArrow:
		return ast.OpHashArrow, true
	case token.HashLongArrow:
		return ast.OpHashLongArrow, true
	case token.AtArrow:
		return ast.OpAtArrow, true
	case token.ArrowAt:
		return ast.OpArrowAt, true
	case token.AtAt:
		return ast.OpAtAt, true
	case token.Question:
		return ast.OpQuestion, true
	case token.QuestionAmp:
		return ast.OpQuestionAmp, true
	case token.QuestionPipe:
		return ast.OpQuestionPipe, true
	}
	return 0, false
}

func symbolicBp(k token.Kind) (int, int) {
	switch k {
	case token.Caret:
		return bpExponent, bpExponentRight
	case token.Star, token.Slash, token.Percent:
		return bpMulDivMod, bpMulDivModRight
	case token.Plus, token.Minus, token.Concat:
		return bpConcatAdd, bpConcatAddRight
	default:
		return bpComparison, bpComparisonRight
	}
}

// parsePrefix parses one "nud" (null denotation): a literal, identifier,
// prefix operator, parenthesized expression, or any other expression
// form that does not require a left operand.
func (p *Parser) parsePrefix() (ast.Expression, error) {
	t := p.cur()

	switch t.Kind {
	case token.Number:
		p.advance()
		return ast.NumberLiteral{Raw: t.Text}, nil
	case token.SingleQuotedString, token.DollarQuotedString:
		p.advance()
		return ast.StringLiteral{Value: t.Text}, nil
	case token.NationalString:
		p.advance()
		return ast.NationalStringLiteral{Value: t.Text}, nil
	case token.HexString:
		p.advance()
		return ast.HexStringLiteral{Value: t.Text}, nil
	case token.EscapedString:
		p.advance()
		return ast.EscapedStringLiteral{Value: t.Text}, nil
	case token.Placeholder:
		p.advance()
		return ast.Placeholder{Name: t.Text}, nil
	case token.Star:
		p.advance()
		return ast.Wildcard{}, nil
	case token.Plus:
		p.advance()
		e, err := p.parseExpr(bpUnary)
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: ast.UnaryPlus, Expr: e}, nil
	case token.Minus:
		p.advance()
		e, err := p.parseExpr(bpUnary)
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: ast.UnaryMinus, Expr: e}, nil
	case token.Tilde:
		p.advance()
		e, err := p.parseExpr(bpUnary)
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: ast.UnaryBitwiseNot, Expr: e}, nil
	case token.SqrtOp:
		p.advance()
		e, err := p.parseExpr(bpUnary)
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: ast.UnarySquareRoot, Expr: e}, nil
	case token.CubeRootOp:
		p.advance()
		e, err := p.parseExpr(bpUnary)
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: ast.UnaryCubeRoot, Expr: e}, nil
	case token.LParen:
		return p.parseParenthesizedExprOrSubqueryOrTuple()
	case token.LBracket:
		return p.parseArrayLiteralBrackets()
	}

	if t.Kind == token.Word {
		return p.parseWordLedExpr()
	}

	return nil, &Error{Pos: t.Span.Start, Reason: "expected an expression", Found: t}
}

func (p *Parser) parseParenthesizedExprOrSubqueryOrTuple() (ast.Expression, error) {
	p.advance() // '('
	if p.isSelectStart() || p.kw(keyword.WITH) {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.Subquery{Query: q}, nil
	}
	first, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.at(token.Comma) {
		exprs := []ast.Expression{first}
		for p.at(token.Comma) {
			p.advance()
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		if p.d.SupportsLambdaFunctions && p.at(token.Arrow) {
			if params, ok := identParamsOf(exprs); ok {
				p.advance()
				body, err := p.parseExpr(0)
				if err != nil {
					return nil, err
				}
				return ast.Lambda{Params: params, Body: body}, nil
			}
		}
		return ast.Tuple{Exprs: exprs}, nil
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Nested{Expr: first}, nil
}

// identParamsOf reports whether every element of exprs is a bare
// identifier, the shape a parenthesized lambda parameter list takes
// before the parser knows it isn't just a row-value tuple.
func identParamsOf(exprs []ast.Expression) ([]ast.Ident, bool) {
	params := make([]ast.Ident, len(exprs))
	for i, e := range exprs {
		ie, ok := e.(ast.IdentExpr)
		if !ok {
			return nil, false
		}
		params[i] = ie.Ident
	}
	return params, true
}

func (p *Parser) parseArrayLiteralBrackets() (ast.Expression, error) {
	p.advance() // '['
	var elems []ast.Expression
	for !p.at(token.RBracket) {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return ast.Array{Elements: elems}, nil
}

// parseWordLedExpr dispatches on a leading Word token: a keyword-led
// construct (CASE, CAST, EXTRACT, ...), a known niladic/function name,
// or a plain (possibly compound) identifier.
func (p *Parser) parseWordLedExpr() (ast.Expression, error) {
	t := p.cur()
	kw, _, isKw := lexer.KeywordAt(p.d, t.Text)
	_ = isKw

	switch {
	case t.Quote == 0 && eqFold(t.Text, "TRUE"):
		p.advance()
		return ast.BooleanLiteral{Value: true}, nil
	case t.Quote == 0 && eqFold(t.Text, "FALSE"):
		p.advance()
		return ast.BooleanLiteral{Value: false}, nil
	case t.Quote == 0 && eqFold(t.Text, "NULL"):
		p.advance()
		return ast.NullLiteral{}, nil
	case t.Quote == 0 && eqFold(t.Text, "NOT"):
		p.advance()
		e, err := p.parseExpr(bpNot)
		if err != nil {
			return nil, err
		}
		return ast.UnaryOp{Op: ast.UnaryNot, Expr: e}, nil
	case t.Quote == 0 && eqFold(t.Text, "CASE"):
		return p.parseCase()
	case t.Quote == 0 && (eqFold(t.Text, "CAST") || eqFold(t.Text, "TRY_CAST") || eqFold(t.Text, "SAFE_CAST")):
		return p.parseCast()
	case t.Quote == 0 && eqFold(t.Text, "EXTRACT"):
		return p.parseExtract()
	case t.Quote == 0 && eqFold(t.Text, "POSITION"):
		return p.parsePosition()
	case t.Quote == 0 && eqFold(t.Text, "SUBSTRING"):
		return p.parseSubstring()
	case t.Quote == 0 && eqFold(t.Text, "TRIM"):
		return p.parseTrim()
	case t.Quote == 0 && eqFold(t.Text, "OVERLAY"):
		return p.parseOverlay()
	case t.Quote == 0 && eqFold(t.Text, "EXISTS"):
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.Exists{Subquery: q}, nil
	case t.Quote == 0 && eqFold(t.Text, "INTERVAL"):
		return p.parseInterval()
	case t.Quote == 0 && eqFold(t.Text, "ARRAY") && p.peekBracketOrParenAfterArray():
		return p.parseArrayConstructorKeyword()
	case t.Quote == 0 && eqFold(t.Text, "ROW"):
		return p.parseRowConstructor()
	case isKw && (kw == keyword.ROLLUP || kw == keyword.CUBE):
		return p.parseRollupCube(kw)
	case isKw && kw == keyword.GROUPING && p.peekKwText(1, "SETS"):
		return p.parseGroupingSets()
	case isKw && (kw == keyword.ANY || kw == keyword.SOME) && p.peekN(1).Kind == token.LParen:
		return p.parseAnySomeAll(ast.SubqueryComparisonAny)
	}

	return p.parseIdentOrCompoundOrFunctionCall()
}

func (p *Parser) peekBracketOrParenAfterArray() bool {
	n := p.peekN(1)
	return n.Kind == token.LBracket || n.Kind == token.LParen
}

func (p *Parser) parseArrayConstructorKeyword() (ast.Expression, error) {
	p.advance() // ARRAY
	if p.at(token.LParen) {
		p.advance()
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.Subquery{Query: q}, nil
	}
	if _, err := p.expect(token.LBracket); err != nil {
		return nil, err
	}
	var elems []ast.Expression
	for !p.at(token.RBracket) {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return ast.Array{Elements: elems, Named: true}, nil
}

func (p *Parser) parseRowConstructor() (ast.Expression, error) {
	p.advance() // ROW
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var exprs []ast.Expression
	for !p.at(token.RParen) {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Tuple{Exprs: exprs}, nil
}

func (p *Parser) parseRollupCube(kw keyword.Keyword) (ast.Expression, error) {
	p.advance()
	kind := ast.GroupingRollup
	if kw == keyword.CUBE {
		kind = ast.GroupingCube
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var set []ast.Expression
	for !p.at(token.RParen) {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		set = append(set, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Grouping{Kind: kind, Sets: [][]ast.Expression{set}}, nil
}

func (p *Parser) parseGroupingSets() (ast.Expression, error) {
	p.advance() // GROUPING
	p.advance() // SETS
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var sets [][]ast.Expression
	for {
		var set []ast.Expression
		if p.at(token.LParen) {
			p.advance()
			for !p.at(token.RParen) {
				e, err := p.parseExpr(0)
				if err != nil {
					return nil, err
				}
				set = append(set, e)
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
		} else {
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			set = []ast.Expression{e}
		}
		sets = append(sets, set)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Grouping{Kind: ast.GroupingSets, Sets: sets}, nil
}

func (p *Parser) parseAnySomeAll(kind ast.SubqueryComparisonKind) (ast.Expression, error) {
	// Parses ANY/SOME/ALL (subquery) with the cursor on the keyword and
	// returns the subquery as an ast.Exists. A bare ANY(subquery) or
	// SOME(subquery) with no comparison operator before it (e.g. WHERE
	// ANY(...) used as a boolean) is left as that Exists; the common
	// `expr op ANY (subquery)` form is handled by parseInfix's symbolic
	// operator branch, which wraps the subquery in an ast.AllAny.
	p.advance()
	p.advance() // '('
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Exists{Subquery: q}, nil
}

func (p *Parser) parseCase() (ast.Expression, error) {
	p.advance() // CASE
	var operand ast.Expression
	if !p.kw(keyword.WHEN) {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		operand = e
	}
	var whens []ast.CaseWhen
	for p.kw(keyword.WHEN) {
		p.advance()
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectKwText("THEN"); err != nil {
			return nil, err
		}
		result, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		whens = append(whens, ast.CaseWhen{Condition: cond, Result: result})
	}
	var elseExpr ast.Expression
	if p.kw(keyword.ELSE) {
		p.advance()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		elseExpr = e
	}
	if err := p.expectKwText("END"); err != nil {
		return nil, err
	}
	return ast.Case{Operand: operand, Whens: whens, Else: elseExpr}, nil
}

func (p *Parser) parseCast() (ast.Expression, error) {
	kindTok := p.cur()
	p.advance()
	kind := ast.CastKindCast
	switch strings.ToUpper(kindTok.Text) {
	case "TRY_CAST":
		kind = ast.CastKindTryCast
	case "SAFE_CAST":
		kind = ast.CastKindSafeCast
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKwText("AS"); err != nil {
		return nil, err
	}
	typ, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	var format ast.Expression
	if p.kwText("FORMAT") {
		p.advance()
		format, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Cast{Kind: kind, Expr: e, Type: typ, Format: format}, nil
}

func (p *Parser) parseExtract() (ast.Expression, error) {
	p.advance() // EXTRACT
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	field, text := p.parseDateTimeField()
	if err := p.expectKwText("FROM"); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Extract{Field: field, FieldText: text, Expr: e}, nil
}

func (p *Parser) parseDateTimeField() (ast.DateTimeField, string) {
	t := p.cur()
	p.advance()
	switch strings.ToUpper(t.Text) {
	case "YEAR":
		return ast.FieldYear, ""
	case "MONTH":
		return ast.FieldMonth, ""
	case "DAY":
		return ast.FieldDay, ""
	case "HOUR":
		return ast.FieldHour, ""
	case "MINUTE":
		return ast.FieldMinute, ""
	case "SECOND":
		return ast.FieldSecond, ""
	case "QUARTER":
		return ast.FieldQuarter, ""
	case "WEEK":
		return ast.FieldWeek, ""
	case "DOW":
		return ast.FieldDow, ""
	case "DOY":
		return ast.FieldDoy, ""
	case "EPOCH":
		return ast.FieldEpoch, ""
	case "TIMEZONE":
		return ast.FieldTimezone, ""
	default:
		return ast.FieldCustom, t.Text
	}
}

func (p *Parser) parsePosition() (ast.Expression, error) {
	p.advance() // POSITION
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	needle, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKwText("IN"); err != nil {
		return nil, err
	}
	haystack, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Position{Needle: needle, Haystack: haystack}, nil
}

func (p *Parser) parseSubstring() (ast.Expression, error) {
	p.advance() // SUBSTRING
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	var from, forLen ast.Expression
	usingComma := false
	if p.at(token.Comma) {
		usingComma = true
		p.advance()
		from, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.at(token.Comma) {
			p.advance()
			forLen, err = p.parseExpr(0)
			if err != nil {
				return nil, err
			}
		}
	} else {
		if p.kwText("FROM") {
			p.advance()
			from, err = p.parseExpr(0)
			if err != nil {
				return nil, err
			}
		}
		if p.kwText("FOR") {
			p.advance()
			forLen, err = p.parseExpr(0)
			if err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Substring{Expr: e, From: from, For: forLen, UsingCommaSyntax: usingComma}, nil
}

func (p *Parser) parseTrim() (ast.Expression, error) {
	p.advance() // TRIM
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	where := ast.TrimWhereNone
	switch {
	case p.kwText("LEADING"):
		where = ast.TrimWhereLeading
		p.advance()
	case p.kwText("TRAILING"):
		where = ast.TrimWhereTrailing
		p.advance()
	case p.kwText("BOTH"):
		where = ast.TrimWhereBoth
		p.advance()
	}
	var chars, expr ast.Expression
	var err error
	if p.kwText("FROM") {
		p.advance()
		expr, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
	} else {
		first, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.kwText("FROM") {
			p.advance()
			chars = first
			expr, err = p.parseExpr(0)
			if err != nil {
				return nil, err
			}
		} else {
			expr = first
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Trim{Where: where, Chars: chars, Expr: expr}, nil
}

func (p *Parser) parseOverlay() (ast.Expression, error) {
	p.advance() // OVERLAY
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKwText("PLACING"); err != nil {
		return nil, err
	}
	placing, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKwText("FROM"); err != nil {
		return nil, err
	}
	from, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	var forLen ast.Expression
	if p.kwText("FOR") {
		p.advance()
		forLen, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.Overlay{Expr: e, Placing: placing, From: from, For: forLen}, nil
}

func (p *Parser) parseInterval() (ast.Expression, error) {
	p.advance() // INTERVAL
	val, err := p.parseExpr(bpUnary)
	if err != nil {
		return nil, err
	}
	var lead, trail *ast.DateTimeField
	if isDateTimeFieldWord(p.cur()) {
		f, _ := p.parseDateTimeField()
		lead = &f
		if p.kwText("TO") {
			p.advance()
			f2, _ := p.parseDateTimeField()
			trail = &f2
		}
	}
	return ast.Interval{Value: val, LeadingField: lead, TrailingField: trail}, nil
}

func isDateTimeFieldWord(t token.Token) bool {
	if t.Kind != token.Word || t.Quote != 0 {
		return false
	}
	switch strings.ToUpper(t.Text) {
	case "YEAR", "MONTH", "DAY", "HOUR", "MINUTE", "SECOND":
		return true
	}
	return false
}

// parseIdentOrCompoundOrFunctionCall handles the common case: a bare
// word that is either a function call name, a (possibly dotted)
// identifier, or a qualified wildcard (table.*).
func (p *Parser) parseIdentOrCompoundOrFunctionCall() (ast.Expression, error) {
	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	idents := []ast.Ident{first}
	for p.at(token.Dot) {
		if p.peekN(1).Kind == token.Star {
			p.advance()
			p.advance()
			return ast.QualifiedWildcard{Qualifier: idents}, nil
		}
		p.advance()
		next, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		idents = append(idents, next)
	}

	if p.at(token.LParen) {
		name := ast.ObjectName{Parts: idents}
		return p.parseFunctionCall(name)
	}

	if len(idents) == 1 {
		if p.d.SupportsLambdaFunctions && p.at(token.Arrow) {
			p.advance()
			body, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			return ast.Lambda{Params: idents, Body: body}, nil
		}
		return ast.IdentExpr{Ident: idents[0]}, nil
	}
	return ast.CompoundIdentifier{Idents: idents}, nil
}

func (p *Parser) parseFunctionCall(name ast.ObjectName) (ast.Expression, error) {
	p.advance() // '('
	args := ast.FunctionArgs{}
	if p.kw(keyword.DISTINCT) {
		args.Quantifier = ast.SetQuantifierDistinct
		p.advance()
	} else if p.kw(keyword.ALL) {
		args.Quantifier = ast.SetQuantifierAll
		p.advance()
	}
	for !p.at(token.RParen) {
		if p.at(token.Star) {
			p.advance()
			args.Args = append(args.Args, ast.FunctionArg{Value: ast.Wildcard{}})
		} else {
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			args.Args = append(args.Args, ast.FunctionArg{Value: e})
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if p.kw(keyword.SEPARATOR) {
		p.advance()
		t, err := p.expect(token.SingleQuotedString)
		if err != nil {
			return nil, err
		}
		sep := t.Text
		args.Separator = &sep
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	fn := ast.Function{Name: name, Args: args}

	if p.kw(keyword.WITHIN) {
		p.advance()
		if err := p.expectKwText("GROUP"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		if err := p.expectKwText("ORDER"); err != nil {
			return nil, err
		}
		if err := p.expectKwText("BY"); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		fn.WithinGroup = obs
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}

	if p.kw(keyword.FILTER) {
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		if err := p.expectKwText("WHERE"); err != nil {
			return nil, err
		}
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		fn.Filter = e
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}

	if p.kwText("IGNORE") && p.peekKwText(1, "NULLS") {
		p.advance()
		p.advance()
		fn.NullTreatment = ast.NullTreatmentIgnore
	} else if p.kwText("RESPECT") && p.peekKwText(1, "NULLS") {
		p.advance()
		p.advance()
		fn.NullTreatment = ast.NullTreatmentRespect
	}

	if p.kw(keyword.OVER) {
		p.advance()
		if p.at(token.LParen) {
			ws, err := p.parseWindowSpecBody()
			if err != nil {
				return nil, err
			}
			fn.Over = &ws
		} else {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			fn.OverName = name
		}
	}

	return fn, nil
}
