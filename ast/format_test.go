package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSQLIdentQuoting(t *testing.T) {
	tests := []struct {
		name string
		id   Ident
		want string
	}{
		{"unquoted", NewIdent("foo"), "foo"},
		{"doubleQuote", Ident{Name: "my col", Quote: DoubleQuote}, `"my col"`},
		{"doubleQuoteEscaped", Ident{Name: `a"b`, Quote: DoubleQuote}, `"a""b"`},
		{"backtick", Ident{Name: "my col", Quote: Backtick}, "`my col`"},
		{"backtickEscaped", Ident{Name: "a`b", Quote: Backtick}, "`a``b`"},
		{"bracket", Ident{Name: "my col", Quote: BracketQuote}, "[my col]"},
		{"unicode", Ident{Name: "col", Quote: UnicodeQuote}, `U&"col"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSQL(tt.id))
		})
	}
}

func TestToSQLObjectName(t *testing.T) {
	o := NewObjectName("schema", "table")
	assert.Equal(t, "schema.table", ToSQL(o))
}

func TestToSQLNilNode(t *testing.T) {
	assert.Equal(t, "", ToSQL(nil))
}

func TestToSQLLiterals(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"number", NumberLiteral{Raw: "1.5"}, "1.5"},
		{"string", StringLiteral{Value: "it's"}, "'it''s'"},
		{"boolTrue", BooleanLiteral{Value: true}, "TRUE"},
		{"boolFalse", BooleanLiteral{Value: false}, "FALSE"},
		{"null", NullLiteral{}, "NULL"},
		{"placeholder", Placeholder{Name: "?"}, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSQL(tt.expr))
		})
	}
}

func TestToSQLBinaryOp(t *testing.T) {
	e := BinaryOp{
		Left:  IdentExpr{Ident: NewIdent("a")},
		Op:    OpEq,
		Right: NumberLiteral{Raw: "1"},
	}
	assert.Equal(t, "a = 1", ToSQL(e))
}

func TestToSQLNestedPreservesGrouping(t *testing.T) {
	e := Nested{Expr: BinaryOp{
		Left:  IdentExpr{Ident: NewIdent("a")},
		Op:    OpPlus,
		Right: NumberLiteral{Raw: "1"},
	}}
	assert.Equal(t, "(a + 1)", ToSQL(e))
}

func selectOf(n string) Statement {
	return SelectStatement{Query: &Query{Body: SelectSetExpr{Select: &Select{Projection: []SelectItem{
		{Expr: NumberLiteral{Raw: n}},
	}}}}}
}

func TestFormatStatementsJoinsWithSemicolon(t *testing.T) {
	stmts := []Statement{selectOf("1"), selectOf("2")}
	assert.Equal(t, "SELECT 1;\nSELECT 2", FormatStatements(stmts))
}

func TestFormatProgramTrailingSemicolon(t *testing.T) {
	stmts := []Statement{selectOf("1")}
	assert.Equal(t, "SELECT 1;", FormatProgram(stmts, true))
	assert.Equal(t, "SELECT 1", FormatProgram(stmts, false))
}

func TestFormatProgramEmptyNoTrailingSemicolon(t *testing.T) {
	assert.Equal(t, "", FormatProgram(nil, true))
}
