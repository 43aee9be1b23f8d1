// Package sqlast is the public façade over this module's tokenizer,
// parser, and unparser packages: Parse a dialect's SQL text into an AST,
// walk or inspect it, and print it back out.
//
// Most callers only need this file; the ast, parser, dialect, and lexer
// packages are exported for callers who need a finer-grained entry point
// (a raw token stream, the comment margins, printing a single node) than
// Parse/Format give.
package sqlast

import (
	"github.com/sqlast/sqlast/ast"
	"github.com/sqlast/sqlast/dialect"
	"github.com/sqlast/sqlast/parser"
)

// Dialect re-exports dialect.Dialect so callers need only import this
// package for the common case.
type Dialect = dialect.Dialect

// Named dialect presets, re-exported for convenience.
var (
	Generic    = dialect.Generic
	Ansi       = dialect.Ansi
	Postgres   = dialect.Postgres
	MySQL      = dialect.MySQL
	SQLite     = dialect.SQLite
	MSSQL      = dialect.MSSQL
	Snowflake  = dialect.Snowflake
	BigQuery   = dialect.BigQuery
	Redshift   = dialect.Redshift
	Hive       = dialect.Hive
	ClickHouse = dialect.ClickHouse
	DuckDB     = dialect.DuckDB
	Databricks = dialect.Databricks
)

// LookupDialect returns the named preset dialect, e.g. "postgresql" or
// "mysql"; ok is false for an unknown name.
func LookupDialect(name string) (Dialect, bool) {
	return dialect.Lookup(name)
}

// Option re-exports parser.Option.
type Option = parser.Option

var (
	WithMaxDepth          = parser.WithMaxDepth
	WithRecordComments    = parser.WithRecordComments
	WithTrailingSemicolon = parser.WithTrailingSemicolon
)

// Parse tokenizes and parses sql under dialect d, returning every
// top-level statement found in source order.
func Parse(sql string, d Dialect, opts ...Option) ([]ast.Statement, error) {
	return parser.Parse(sql, d, opts...)
}

// Format renders a statement back to canonical, dialect-neutral SQL
// text. It is the inverse of Parse for any single statement Parse
// produced.
func Format(stmt ast.Statement) string {
	return ast.ToSQL(stmt)
}

// FormatAll renders a statement list as one program, in the same shape
// Parse returns them, separated by ";\n" (and, with
// WithTrailingSemicolon applied through opts, terminated by a final ';').
func FormatAll(stmts []ast.Statement, opts ...Option) string {
	cfg := parser.ResolveConfig(opts...)
	return ast.FormatProgram(stmts, cfg.TrailingSemicolon())
}

// Reformat parses sql under dialect d and immediately reprints it,
// normalizing whitespace and quoting without changing which dialect
// features it relies on. cmd/sqlfmt runs the same two
// steps, calling Parse and FormatAll itself.
func Reformat(sql string, d Dialect, opts ...Option) (string, error) {
	stmts, err := Parse(sql, d, opts...)
	if err != nil {
		return "", err
	}
	return FormatAll(stmts, opts...), nil
}
