// Package dialect describes a SQL flavor as a vector of capability bits
// rather than as a type the tokenizer or parser switches on by name. The
// tokenizer and parser only ever ask a Dialect "can you do X", never "are
// you Postgres" — that keeps every dialect-gate check uniform and lets a
// caller hand in a bespoke Dialect that mixes capabilities no named
// preset has.
package dialect

// Dialect is an immutable capability vector. The zero value is the most
// conservative dialect (nothing dialect-specific is allowed); use Generic
// or one of the named presets instead of the zero value in practice.
type Dialect struct {
	name string

	// Core capability bits shared by most dialect-gated grammar forms.
	SupportsFilterDuringAggregation    bool
	SupportsWindowFunctionNullTreatmentArg bool
	SupportsDictionarySyntax          bool
	SupportsGroupByExpr               bool
	SupportsConnectBy                 bool
	SupportsNumericPrefix             bool
	SupportsStringLiteralBackslashEscape bool
	SupportsLambdaFunctions           bool
	SupportsTrailingCommas            bool
	AllowsIdentifierStartsWithDigit   bool
	AllowsUnquotedIdentDash           bool

	// Additional bits needed to drive the tokenizer/parser faithfully
	// across the named presets (MS SQL bracket quoting, Postgres
	// operators, MySQL backtick quoting, dollar-quoted strings, etc).
	SupportsBracketIdentifierQuoting bool // MS SQL [ident]
	SupportsBacktickIdentifierQuoting bool // MySQL/SQLite/ClickHouse `ident`
	SupportsDoubleQuoteAsStringLiteral bool // MySQL: "..." is a string, not an identifier
	SupportsDollarQuotedStrings       bool // Postgres $tag$...$tag$
	SupportsPostgresOperators         bool // ->, ->>, #>, @>, ~, etc.
	SupportsBackslashEscapesByDefault bool // MySQL default on, Postgres default off
	SupportsTopClause                 bool // MS SQL SELECT TOP n
	SupportsLimitClause                bool // LIMIT n [OFFSET m]
	SupportsDescribeAsExplain          bool // DESCRIBE == EXPLAIN

	// keywordOverrides lists words this dialect treats differently from
	// the default reserved/unreserved classification (see package
	// keyword). Populated by preset constructors; nil means "use the
	// default table unmodified".
	keywordOverrides map[string]bool // true = reserved, false = unreserved
}

// Name returns the dialect's identifying name, e.g. "postgresql".
func (d Dialect) Name() string { return d.name }

// IsReservedOverride reports whether this dialect overrides the default
// reserved/unreserved classification for word, and what it overrides it
// to. ok is false when the dialect has no override (consult the default
// table).
func (d Dialect) IsReservedOverride(word string) (reserved bool, ok bool) {
	if d.keywordOverrides == nil {
		return false, false
	}
	reserved, ok = d.keywordOverrides[word]
	return reserved, ok
}

// New constructs a custom capability vector, starting from Generic, for a
// caller that wants to mix and match bits rather than use a preset. The
// returned Dialect is independent of the Generic default and of any other
// Dialect built this way.
func New(name string) Dialect {
	d := Generic
	d.name = name
	return d
}

// WithOverrides returns a copy of d with keyword reserved/unreserved
// overrides replaced by overrides.
func (d Dialect) WithOverrides(overrides map[string]bool) Dialect {
	d.keywordOverrides = overrides
	return d
}
