// Package lexer implements a single-pass, dialect-aware tokenizer. It
// turns source text into a sequence of token.Token values, one rune of
// lookahead at a time (occasionally two), switching on the current rune
// and calling peekRune() to look one character ahead, in the style of a
// hand-written recursive scanner (see the vendored comment-splitting
// helper in parser/comments.go, drawn from the same lineage).
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sqlast/sqlast/dialect"
	"github.com/sqlast/sqlast/keyword"
	"github.com/sqlast/sqlast/token"
)

// eof is the sentinel rune value returned by ch once the input is
// exhausted, following the convention of go/scanner.
const eof = -1

// Lexer scans one SQL source string into a token at a time. A Lexer holds
// exclusive mutable state (its cursor) for the duration of a single scan;
// it is not safe to share across goroutines.
type Lexer struct {
	src     string
	dialect dialect.Dialect

	offset   int // byte offset of ch
	rdOffset int // byte offset of the rune after ch
	ch       rune

	line, col int

	posVarIndex int // increments for each bare '?' placeholder
}

// New creates a Lexer over src under the given dialect.
func New(src string, d dialect.Dialect) *Lexer {
	l := &Lexer{src: src, dialect: d, line: 1, col: 0}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	if l.rdOffset >= len(l.src) {
		l.offset = len(l.src)
		l.ch = eof
		return
	}
	l.offset = l.rdOffset
	r, size := utf8.DecodeRuneInString(l.src[l.rdOffset:])
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.ch = r
	l.rdOffset += size
}

func (l *Lexer) pos() token.Pos {
	return token.Pos{Offset: l.offset, Line: l.line, Column: l.col}
}

// peekRune returns the rune following ch without consuming anything, or
// eof at end of input. Used for two-character lookahead (e.g. '|' then '|').
func (l *Lexer) peekRune() rune {
	if l.rdOffset >= len(l.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.rdOffset:])
	return r
}

// Next scans and returns the next token, including Whitespace and Comment
// tokens — callers that want them dropped (the default for parser
// consumption) filter them out; see parser.tokenizeAll.
func (l *Lexer) Next() (token.Token, error) {
	start := l.pos()

	switch {
	case l.ch == eof:
		return token.Token{Kind: token.EOF, Span: token.Span{Start: start, End: start}}, nil
	case isSpace(l.ch):
		return l.scanWhitespace(start)
	case l.ch == '-' && l.peekRune() == '-':
		return l.scanLineComment(start, "--")
	case l.ch == '/' && l.peekRune() == '*':
		return l.scanBlockComment(start)
	case isIdentStart(l.ch, l.dialect):
		return l.scanWordOrPrefixedLiteral(start)
	case isDigit(l.ch):
		return l.scanNumber(start, false)
	case l.ch == '.' && isDigit(l.peekRune()):
		return l.scanNumber(start, true)
	case l.ch == '\'':
		return l.scanQuotedLiteral(start, '\'', token.SingleQuotedString, 0)
	case l.ch == '"':
		if l.dialect.SupportsDoubleQuoteAsStringLiteral {
			return l.scanQuotedLiteral(start, '"', token.SingleQuotedString, 0)
		}
		return l.scanQuotedWord(start, '"', '"')
	case l.ch == '`':
		if l.dialect.SupportsBacktickIdentifierQuoting {
			return l.scanQuotedWord(start, '`', '`')
		}
		return l.illegal(start, "unexpected '`'")
	case l.ch == '[':
		if l.dialect.SupportsBracketIdentifierQuoting {
			return l.scanQuotedWord(start, '[', ']')
		}
		return l.punct(start, token.LBracket)
	case l.ch == '$':
		return l.scanDollar(start)
	case l.ch == '?':
		return l.scanQuestionPlaceholder(start)
	case l.ch == ':':
		return l.scanColonPlaceholderOrColon(start)
	default:
		return l.scanOperator(start)
	}
}

func (l *Lexer) illegal(start token.Pos, reason string) (token.Token, error) {
	return token.Token{}, &token.Error{Pos: start, Reason: reason}
}

func (l *Lexer) span(start token.Pos) token.Span {
	return token.Span{Start: start, End: l.pos()}
}

func (l *Lexer) punct(start token.Pos, k token.Kind) (token.Token, error) {
	l.advance()
	return token.Token{Kind: k, Span: l.span(start)}, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune, d dialect.Dialect) bool {
	if r == '_' || r == '#' || unicode.IsLetter(r) {
		return true
	}
	return d.AllowsIdentifierStartsWithDigit && isDigit(r)
}

func isIdentPart(r rune, d dialect.Dialect) bool {
	if r == '_' || unicode.IsLetter(r) || isDigit(r) {
		return true
	}
	return d.AllowsUnquotedIdentDash && r == '-'
}

func (l *Lexer) scanWhitespace(start token.Pos) (token.Token, error) {
	var b strings.Builder
	for isSpace(l.ch) {
		b.WriteRune(l.ch)
		l.advance()
	}
	return token.Token{Kind: token.Whitespace, Text: b.String(), Span: l.span(start)}, nil
}

func (l *Lexer) scanLineComment(start token.Pos, prefix string) (token.Token, error) {
	var b strings.Builder
	b.WriteString(prefix)
	l.advance()
	l.advance()
	for l.ch != '\n' && l.ch != eof {
		b.WriteRune(l.ch)
		l.advance()
	}
	return token.Token{Kind: token.Comment, Text: b.String(), Span: l.span(start)}, nil
}

func (l *Lexer) scanBlockComment(start token.Pos) (token.Token, error) {
	var b strings.Builder
	b.WriteString("/*")
	l.advance()
	l.advance()
	for {
		if l.ch == eof {
			return l.illegal(start, "unterminated block comment")
		}
		if l.ch == '*' && l.peekRune() == '/' {
			b.WriteString("*/")
			l.advance()
			l.advance()
			break
		}
		b.WriteRune(l.ch)
		l.advance()
	}
	return token.Token{Kind: token.Comment, Text: b.String(), Span: l.span(start)}, nil
}

// scanWordOrPrefixedLiteral scans an identifier run, then special-cases
// the handful of single-letter literal prefixes (N'...', X'...', B'...',
// E'...', R'...') and the Postgres Unicode-escape identifier U&"...".
func (l *Lexer) scanWordOrPrefixedLiteral(start token.Pos) (token.Token, error) {
	first := l.ch
	l.advance()

	if (first == 'u' || first == 'U') && l.ch == '&' && l.peekRune() == '"' {
		l.advance() // '&'
		tok, err := l.scanQuotedWord(start, '"', '"')
		tok.Quote = 'u'
		return tok, err
	}

	if l.ch == '\'' {
		switch first {
		case 'n', 'N':
			return l.scanPrefixedString(start, byte(first), token.NationalString)
		case 'x', 'X':
			return l.scanPrefixedString(start, byte(first), token.HexString)
		case 'b', 'B':
			return l.scanPrefixedString(start, byte(first), token.BitString)
		case 'e', 'E':
			if l.dialect.SupportsStringLiteralBackslashEscape {
				return l.scanPrefixedString(start, byte(first), token.EscapedString)
			}
		case 'r', 'R':
			return l.scanPrefixedString(start, byte(first), token.RawString)
		}
	}

	var b strings.Builder
	b.WriteRune(first)
	for isIdentPart(l.ch, l.dialect) {
		b.WriteRune(l.ch)
		l.advance()
	}
	text := b.String()
	tok := token.Token{Kind: token.Word, Text: text, Span: l.span(start)}
	return tok, nil
}

func (l *Lexer) scanPrefixedString(start token.Pos, prefix byte, kind token.Kind) (token.Token, error) {
	l.advance() // consume opening quote
	text, err := l.scanStringBody(start, '\'')
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{Kind: kind, Text: text, Span: l.span(start), Quote: prefix}, nil
}

// scanQuotedWord scans a delimited identifier, honoring the doubled-quote
// escape (e.g. "a""b" -> a"b) uniformly across backtick/bracket/double
// quote delimiters.
func (l *Lexer) scanQuotedWord(start token.Pos, open, closeCh rune) (token.Token, error) {
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		if l.ch == eof {
			return l.illegal(start, "unterminated quoted identifier")
		}
		if l.ch == closeCh {
			if l.peekRune() == closeCh {
				b.WriteRune(closeCh)
				l.advance()
				l.advance()
				continue
			}
			l.advance()
			break
		}
		b.WriteRune(l.ch)
		l.advance()
	}
	if b.Len() == 0 {
		return l.illegal(start, "empty quoted identifier")
	}
	return token.Token{Kind: token.Word, Text: b.String(), Span: l.span(start), Quote: byte(open)}, nil
}

func (l *Lexer) scanQuotedLiteral(start token.Pos, delim rune, kind token.Kind, prefix byte) (token.Token, error) {
	l.advance()
	text, err := l.scanStringBody(start, delim)
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{Kind: kind, Text: text, Span: l.span(start), Quote: prefix}, nil
}

// scanStringBody scans the body of a '...' (or N'...', X'...', ...)
// literal up to the matching delim, honoring doubled-delim escaping
// unconditionally and backslash escaping when the dialect allows it.
func (l *Lexer) scanStringBody(start token.Pos, delim rune) (string, error) {
	var b strings.Builder
	for {
		switch {
		case l.ch == eof:
			_, err := l.illegal(start, "unterminated string literal")
			return "", err
		case l.ch == delim:
			if l.peekRune() == delim {
				b.WriteRune(delim)
				l.advance()
				l.advance()
				continue
			}
			l.advance()
			return b.String(), nil
		case l.ch == '\\' && l.dialect.SupportsBackslashEscapesByDefault:
			l.advance()
			if l.ch == eof {
				_, err := l.illegal(start, "unterminated escape sequence")
				return "", err
			}
			b.WriteRune(decodeBackslashEscape(l.ch))
			l.advance()
		default:
			b.WriteRune(l.ch)
			l.advance()
		}
	}
}

func decodeBackslashEscape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 'b':
		return '\b'
	case 'Z':
		return 26
	default:
		return r
	}
}

// scanDollar scans either a Postgres tagged dollar-quoted string
// ($tag$...$tag$) or a $n placeholder, falling back to a bare '$'
// placeholder when neither form matches.
func (l *Lexer) scanDollar(start token.Pos) (token.Token, error) {
	if l.dialect.SupportsDollarQuotedStrings {
		if tag, ok := l.tryScanDollarTag(); ok {
			return l.scanDollarQuotedBody(start, tag)
		}
	}
	l.advance() // consume '$'
	if isDigit(l.ch) {
		var b strings.Builder
		b.WriteByte('$')
		for isDigit(l.ch) {
			b.WriteRune(l.ch)
			l.advance()
		}
		return token.Token{Kind: token.Placeholder, Text: b.String(), Span: l.span(start)}, nil
	}
	return token.Token{Kind: token.Placeholder, Text: "$", Span: l.span(start)}, nil
}

// tryScanDollarTag peeks ahead (without consuming '$' if it fails) for a
// possibly empty tag of letters, '_' and (after the first character)
// digits, closed by a '$', following the current '$'. This is the one
// genuinely speculative lookahead inside the tokenizer itself: there is
// no cheap one-token way to tell $tag$ from a $1 placeholder without
// scanning the candidate identifier first.
func (l *Lexer) tryScanDollarTag() (string, bool) {
	save := *l
	l.advance() // consume opening '$'
	var b strings.Builder
	for unicode.IsLetter(l.ch) || l.ch == '_' || (b.Len() > 0 && isDigit(l.ch)) {
		b.WriteRune(l.ch)
		l.advance()
	}
	if l.ch == '$' {
		l.advance()
		return b.String(), true
	}
	*l = save
	return "", false
}

func (l *Lexer) scanDollarQuotedBody(start token.Pos, tag string) (token.Token, error) {
	closer := "$" + tag + "$"
	var b strings.Builder
	for {
		if l.ch == eof {
			return l.illegal(start, "unterminated dollar-quoted string")
		}
		if l.ch == '$' && strings.HasPrefix(l.src[l.offset:], closer) {
			for i := 0; i < len(closer); i++ {
				l.advance()
			}
			return token.Token{Kind: token.DollarQuotedString, Text: b.String(), Span: l.span(start)}, nil
		}
		b.WriteRune(l.ch)
		l.advance()
	}
}

func (l *Lexer) scanQuestionPlaceholder(start token.Pos) (token.Token, error) {
	l.advance()
	l.posVarIndex++
	return token.Token{Kind: token.Placeholder, Text: "?", Span: l.span(start)}, nil
}

// scanColonPlaceholderOrColon handles ':name' (named placeholder), '::'
// (Postgres cast), and bare ':' (used in some slice/array dialects).
func (l *Lexer) scanColonPlaceholderOrColon(start token.Pos) (token.Token, error) {
	l.advance()
	if l.ch == ':' {
		l.advance()
		return token.Token{Kind: token.DoubleColon, Span: l.span(start)}, nil
	}
	if l.ch == '=' {
		l.advance()
		return token.Token{Kind: token.Walrus, Span: l.span(start)}, nil
	}
	if unicode.IsLetter(l.ch) || l.ch == '_' {
		var b strings.Builder
		b.WriteByte(':')
		for isIdentPart(l.ch, l.dialect) {
			b.WriteRune(l.ch)
			l.advance()
		}
		return token.Token{Kind: token.Placeholder, Text: b.String(), Span: l.span(start)}, nil
	}
	return token.Token{Kind: token.Colon, Span: l.span(start)}, nil
}

// scanNumber scans an integer, decimal, or exponent-form numeric literal.
// seenDot is true when the caller already consumed a leading '.'.
func (l *Lexer) scanNumber(start token.Pos, seenDot bool) (token.Token, error) {
	var b strings.Builder
	if seenDot {
		b.WriteByte('.')
		l.advance()
		l.scanDigits(&b)
	} else {
		if l.ch == '0' && (l.peekRune() == 'x' || l.peekRune() == 'X') {
			b.WriteRune(l.ch)
			l.advance()
			b.WriteRune(l.ch)
			l.advance()
			for isHexDigit(l.ch) {
				b.WriteRune(l.ch)
				l.advance()
			}
			return token.Token{Kind: token.Number, Text: b.String(), Span: l.span(start)}, nil
		}
		l.scanDigits(&b)
		if l.ch == '.' {
			b.WriteByte('.')
			l.advance()
			l.scanDigits(&b)
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		b.WriteRune(l.ch)
		l.advance()
		if l.ch == '+' || l.ch == '-' {
			b.WriteRune(l.ch)
			l.advance()
		}
		l.scanDigits(&b)
	}
	if l.ch == 'L' {
		b.WriteByte('L')
		l.advance()
	}
	if unicode.IsLetter(l.ch) {
		return l.illegal(start, "invalid character following numeric literal")
	}
	return token.Token{Kind: token.Number, Text: b.String(), Span: l.span(start)}, nil
}

func (l *Lexer) scanDigits(b *strings.Builder) {
	for isDigit(l.ch) {
		b.WriteRune(l.ch)
		l.advance()
	}
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// scanOperator consumes punctuation/operator symbols, matching the
// longest compound operator first, then falling back to the
// single-character token.
func (l *Lexer) scanOperator(start token.Pos) (token.Token, error) {
	ch := l.ch
	l.advance()
	next := l.ch

	two := func(k token.Kind) (token.Token, error) {
		l.advance()
		return token.Token{Kind: k, Span: l.span(start)}, nil
	}
	one := func(k token.Kind) (token.Token, error) {
		return token.Token{Kind: k, Span: l.span(start)}, nil
	}

	switch ch {
	case ',':
		return one(token.Comma)
	case ';':
		return one(token.Semicolon)
	case '(':
		return one(token.LParen)
	case ')':
		return one(token.RParen)
	case '[':
		return one(token.LBracket)
	case ']':
		return one(token.RBracket)
	case '{':
		return one(token.LBrace)
	case '}':
		return one(token.RBrace)
	case '.':
		return one(token.Dot)
	case '+':
		return one(token.Plus)
	case '*':
		return one(token.Star)
	case '%':
		return one(token.Percent)
	case '^':
		return one(token.Caret)
	case '=':
		if next == '>' {
			return two(token.FatArrow)
		}
		return one(token.Eq)
	case '&':
		return one(token.Amp)
	case '~':
		return one(token.Tilde)
	case '!':
		if next == '=' {
			return two(token.NotEq)
		}
		if next == '!' {
			return two(token.FactorialOp)
		}
		return one(token.Bang)
	case '<':
		switch next {
		case '>':
			return two(token.NotEq)
		case '<':
			return two(token.ShiftLeft)
		case '=':
			l.advance()
			if l.ch == '>' {
				return two(token.Spaceship)
			}
			return token.Token{Kind: token.LtEq, Span: l.span(start)}, nil
		case '@':
			return two(token.ArrowAt)
		}
		return one(token.Lt)
	case '>':
		switch next {
		case '=':
			return two(token.GtEq)
		case '>':
			return two(token.ShiftRight)
		}
		return one(token.Gt)
	case '-':
		switch next {
		case '>':
			l.advance()
			if l.ch == '>' {
				return two(token.LongArrow)
			}
			return token.Token{Kind: token.Arrow, Span: l.span(start)}, nil
		}
		return one(token.Minus)
	case '/':
		return one(token.Slash)
	case '|':
		switch next {
		case '|':
			l.advance()
			if l.ch == '/' {
				return two(token.CubeRootOp)
			}
			return token.Token{Kind: token.Concat, Span: l.span(start)}, nil
		case '/':
			return two(token.SqrtOp)
		}
		return one(token.Pipe)
	case '#':
		switch next {
		case '>':
			l.advance()
			if l.ch == '>' {
				return two(token.HashLongArrow)
			}
			return token.Token{Kind: token.HashArrow, Span: l.span(start)}, nil
		case '-':
			return two(token.HashMinus)
		}
		return l.illegal(start, "unexpected '#'")
	case '@':
		switch next {
		case '>':
			return two(token.AtArrow)
		case '?':
			return two(token.AtQuestion)
		case '@':
			return two(token.AtAt)
		}
		return one(token.AtSign)
	case '?':
		switch next {
		case '&':
			return two(token.QuestionAmp)
		case '|':
			return two(token.QuestionPipe)
		}
		return one(token.Question)
	}
	return l.illegal(start, "unexpected character "+string(ch))
}

// KeywordAt resolves text to its keyword.Keyword id under dialect d,
// applying the dialect's reserved/unreserved override table on top of
// the default classification.
func KeywordAt(d dialect.Dialect, text string) (kw keyword.Keyword, reserved bool, ok bool) {
	kw, ok = keyword.Lookup(text)
	if !ok {
		return 0, false, false
	}
	if r, overridden := d.IsReservedOverride(strings.ToLower(text)); overridden {
		return kw, r, true
	}
	return kw, keyword.DefaultReserved(kw), true
}
