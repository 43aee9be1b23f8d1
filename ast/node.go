// Package ast is the AST algebra: the closed sum types for Statement,
// Expression, DataType, TableFactor, Query, and their supporting
// records, plus (in the format_*.go files) the to_sql unparser that is
// each type's printing half.
//
// Every node type is a value-equal, exclusively-owned tree node: parents
// own their children outright, there are no back-pointers, and the tree
// is acyclic. Host-language sealed class hierarchies become Go
// interfaces implemented by a closed set of struct value types in
// this package: a type switch on the interface value replaces virtual
// dispatch or downcasting.
package ast

// Node is the root of every AST type; printing a node back to SQL is done
// by ToSQL in the format_*.go files. Statement, Expression, DataType, TableFactor and every support
// record implement it.
type Node interface {
	// Children enumerates this node's immediate AST children in source
	// order, so a tree-walker can traverse without reflection. Leaf
	// nodes return nil.
	Children() []Node
}

// Statement is any of the ~35 top-level statement forms this library
// parses: DDL, DML, DCL, transactional, and procedural statements.
type Statement interface {
	Node
	statementNode()
}

// Expression is any of the scalar/relational expression forms usable
// inside a statement: literals, operators, function calls, subqueries,
// and so on.
type Expression interface {
	Node
	expressionNode()
}

// DataType is any SQL type name: INT, VARCHAR(n), TIMESTAMP WITH TIME
// ZONE, ARRAY<T>, and the dialect-specific forms (FixedString, Nullable,
// LowCardinality, ...).
type DataType interface {
	Node
	dataTypeNode()
}

// TableFactor is anything that can appear in a FROM clause: a table name,
// a derived (sub)query, a table function call, a parenthesized join, etc.
type TableFactor interface {
	Node
	tableFactorNode()
}

// QuoteChar identifies how an Ident was quoted in the source. Zero means
// unquoted. Two Idents with the same Name but different Quote are
// distinct values.
type QuoteChar byte

const (
	NoQuote         QuoteChar = 0
	DoubleQuote     QuoteChar = '"'
	Backtick        QuoteChar = '`'
	BracketQuote    QuoteChar = '['
	UnicodeQuote    QuoteChar = 'u' // u&"..." Postgres Unicode-escape identifiers
)

// Ident is a single, possibly quoted, SQL identifier: a column, table,
// schema, or other name component. It is the atom CompoundIdentifier and
// ObjectName are built from.
type Ident struct {
	Name  string
	Quote QuoteChar
}

func (i Ident) Children() []Node { return nil }

// NewIdent builds an unquoted Ident, the common case.
func NewIdent(name string) Ident { return Ident{Name: name} }

// ObjectName is a dotted path of Idents: a table, schema-qualified table,
// function, or other catalog object name (e.g. `schema.table`).
type ObjectName struct {
	Parts []Ident
}

func NewObjectName(parts ...string) ObjectName {
	idents := make([]Ident, len(parts))
	for i, p := range parts {
		idents[i] = NewIdent(p)
	}
	return ObjectName{Parts: idents}
}

func (o ObjectName) Children() []Node {
	out := make([]Node, len(o.Parts))
	for i, p := range o.Parts {
		out[i] = p
	}
	return out
}

func childrenOf(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
