package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlast/sqlast/dialect"
	"github.com/sqlast/sqlast/token"
)

// scanAll drains every non-EOF token, dropping Whitespace, for focused
// assertions on the meaningful token sequence.
func scanAll(t *testing.T, src string, d dialect.Dialect) []token.Token {
	t.Helper()
	l := New(src, d)
	var out []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		if tok.Kind == token.EOF {
			return out
		}
		if tok.Kind == token.Whitespace {
			continue
		}
		out = append(out, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanBasicStatement(t *testing.T) {
	toks := scanAll(t, "SELECT 1, 'abc' FROM t", dialect.Generic)
	assert.Equal(t, []token.Kind{
		token.Word, token.Number, token.Comma, token.SingleQuotedString,
		token.Word, token.Word,
	}, kinds(toks))
}

func TestScanQuotedIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		d     dialect.Dialect
		quote byte
	}{
		{"doubleQuote", `"my col"`, dialect.Postgres, '"'},
		{"backtick", "`my col`", dialect.MySQL, '`'},
		{"bracket", `[my col]`, dialect.MSSQL, '['},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.src, tt.d)
			if assert.Len(t, toks, 1) {
				assert.Equal(t, token.Word, toks[0].Kind)
				assert.Equal(t, "my col", toks[0].Text)
				assert.Equal(t, tt.quote, toks[0].Quote)
			}
		})
	}
}

func TestScanStringEscapes(t *testing.T) {
	toks := scanAll(t, `'it''s fine'`, dialect.Generic)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, "it's fine", toks[0].Text)
	}
}

func TestScanComments(t *testing.T) {
	l := New("-- line comment\n/* block */ SELECT", dialect.Generic)

	tok, err := l.Next()
	assert.NoError(t, err)
	assert.Equal(t, token.Comment, tok.Kind)
	assert.Equal(t, "-- line comment", tok.Text)

	tok, err = l.Next()
	assert.NoError(t, err)
	assert.Equal(t, token.Whitespace, tok.Kind)

	tok, err = l.Next()
	assert.NoError(t, err)
	assert.Equal(t, token.Comment, tok.Kind)
	assert.Equal(t, "/* block */", tok.Text)
}

func TestScanDollarQuotedString(t *testing.T) {
	toks := scanAll(t, `$tag$hello $ world$tag$`, dialect.Postgres)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, token.DollarQuotedString, toks[0].Kind)
		assert.Equal(t, "hello $ world", toks[0].Text)
	}
}

func TestScanDollarPlaceholderWithoutDollarQuoting(t *testing.T) {
	toks := scanAll(t, `$1`, dialect.Generic)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, token.Placeholder, toks[0].Kind)
	}
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		name string
		src  string
		d    dialect.Dialect
		want token.Kind
	}{
		{"arrow", "->", dialect.Postgres, token.Arrow},
		{"longArrow", "->>", dialect.Postgres, token.LongArrow},
		{"spaceship", "<=>", dialect.MySQL, token.Spaceship},
		{"notEqDiamond", "<>", dialect.Generic, token.NotEq},
		{"notEqBang", "!=", dialect.Generic, token.NotEq},
		{"doubleColon", "::", dialect.Postgres, token.DoubleColon},
		{"concat", "||", dialect.Generic, token.Concat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.src, tt.d)
			if assert.Len(t, toks, 1) {
				assert.Equal(t, tt.want, toks[0].Kind)
			}
		})
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"integer", "123", "123"},
		{"decimal", "1.5", "1.5"},
		{"exponent", "1e10", "1e10"},
		{"leadingDot", ".5", ".5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.src, dialect.Generic)
			if assert.Len(t, toks, 1) {
				assert.Equal(t, token.Number, toks[0].Kind)
				assert.Equal(t, tt.want, toks[0].Text)
			}
		})
	}
}

func TestScanIllegalByte(t *testing.T) {
	l := New("\x01", dialect.Generic)
	_, err := l.Next()
	assert.Error(t, err)
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	l := New("/* never closes", dialect.Generic)
	_, err := l.Next()
	assert.Error(t, err)
}

func TestKeywordAtAppliesOverrides(t *testing.T) {
	overridden := dialect.New("custom").WithOverrides(map[string]bool{"end": false})

	kw, reserved, ok := KeywordAt(overridden, "END")
	assert.True(t, ok)
	assert.False(t, reserved)
	assert.NotEqual(t, 0, int(kw))
}

func TestKeywordAtDefaultClassification(t *testing.T) {
	kw, reserved, ok := KeywordAt(dialect.Generic, "SELECT")
	assert.True(t, ok)
	assert.True(t, reserved)
	assert.NotEqual(t, 0, int(kw))
}

func TestKeywordAtNotAKeyword(t *testing.T) {
	_, _, ok := KeywordAt(dialect.Generic, "my_column")
	assert.False(t, ok)
}
