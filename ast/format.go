// The format_*.go files in this package are the unparser: the reverse of
// the parser, turning an AST fragment back into dialect-neutral SQL
// text. Printing is a pure function of the tree — one function per sum
// type plus a type switch — rather than a Stringer method on every
// node, so the dispatch point (ToSQL) is the single place that needs to
// know the full variant list.
//
// Spacing is a single space between tokens, never more, and no trailing
// whitespace inside parentheses. Grouping the parser decided was
// significant is already explicit in the tree as a Nested/NestedSetExpr
// node; the printer never re-derives precedence, it only prints what
// it's given.
package ast

import "strings"

// ToSQL renders any AST node back to SQL text. It is the single dispatch
// point across every root sum type (Statement, Expression, DataType,
// TableFactor, SetExpr) plus the handful of support record types that can
// usefully stand alone (Ident, ObjectName, Query).
func ToSQL(n Node) string {
	var w strings.Builder
	writeNode(&w, n)
	return w.String()
}

// FormatStatements renders a statement list as one ";\n"-joined program,
// mirroring the shape Parser.Parse returns: reparsing the joined text
// must reproduce the same statement list. It never emits a semicolon
// after the last statement; use FormatProgram for that.
func FormatStatements(stmts []Statement) string {
	return FormatProgram(stmts, false)
}

// FormatProgram is FormatStatements with control over whether a ';' is
// emitted after the final statement, mirroring parser.WithTrailingSemicolon.
func FormatProgram(stmts []Statement, trailingSemicolon bool) string {
	var w strings.Builder
	for i, s := range stmts {
		if i > 0 {
			w.WriteString(";\n")
		}
		writeStatement(&w, s)
	}
	if trailingSemicolon && len(stmts) > 0 {
		w.WriteByte(';')
	}
	return w.String()
}

func writeNode(w *strings.Builder, n Node) {
	switch v := n.(type) {
	case nil:
		return
	case Statement:
		writeStatement(w, v)
	case Expression:
		writeExpr(w, v)
	case DataType:
		writeDataType(w, v)
	case TableFactor:
		writeTableFactor(w, v)
	case SetExpr:
		writeSetExpr(w, v)
	case *Query:
		writeQuery(w, v)
	case Query:
		writeQuery(w, &v)
	case Ident:
		writeIdent(w, v)
	case ObjectName:
		writeObjectName(w, v)
	default:
		panic("ast: ToSQL: unhandled node type")
	}
}

// writeIdent prints name, re-quoting it with its stored quote character
// if any: two Idents with the same Name but a different Quote are
// distinct values and must not print the same way.
func writeIdent(w *strings.Builder, id Ident) {
	switch id.Quote {
	case NoQuote:
		w.WriteString(id.Name)
	case DoubleQuote:
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(id.Name, `"`, `""`))
		w.WriteByte('"')
	case Backtick:
		w.WriteByte('`')
		w.WriteString(strings.ReplaceAll(id.Name, "`", "``"))
		w.WriteByte('`')
	case BracketQuote:
		w.WriteByte('[')
		w.WriteString(id.Name)
		w.WriteByte(']')
	case UnicodeQuote:
		w.WriteString(`U&"`)
		w.WriteString(strings.ReplaceAll(id.Name, `"`, `""`))
		w.WriteByte('"')
	default:
		w.WriteString(id.Name)
	}
}

func identSQL(id Ident) string {
	var w strings.Builder
	writeIdent(&w, id)
	return w.String()
}

func writeObjectName(w *strings.Builder, o ObjectName) {
	for i, p := range o.Parts {
		if i > 0 {
			w.WriteByte('.')
		}
		writeIdent(w, p)
	}
}

func objectNameSQL(o ObjectName) string {
	var w strings.Builder
	writeObjectName(&w, o)
	return w.String()
}

// writeIdentList prints a comma-separated Ident list with no surrounding
// parens, for callers that add their own.
func writeIdentList(w *strings.Builder, ids []Ident) {
	for i, id := range ids {
		if i > 0 {
			w.WriteString(", ")
		}
		writeIdent(w, id)
	}
}

// writeList prints a comma-separated list of items via the supplied
// printer function, the shared shape behind every comma-joined clause in
// this package (projections, argument lists, column lists, ...).
func writeList[T any](w *strings.Builder, items []T, sep string, each func(*strings.Builder, T)) {
	for i, it := range items {
		if i > 0 {
			w.WriteString(sep)
		}
		each(w, it)
	}
}

// quoteStringLiteral escapes value for a '...'-quoted SQL string literal:
// a literal quote doubles.
func quoteStringLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
