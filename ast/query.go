package ast

// OrderByExpr is one element of an ORDER BY list.
type OrderByExpr struct {
	Expr     Expression
	Desc     bool
	HasDesc  bool // true when ASC/DESC was written explicitly
	NullsFirst *bool // nil when NULLS FIRST/LAST was not specified
}

// Cte is one entry of a WITH clause: `name [(cols...)] AS [MATERIALIZED|
// NOT MATERIALIZED] (query)`.
type CteMaterialized int

const (
	CteMaterializedDefault CteMaterialized = iota
	CteMaterializedOn
	CteMaterializedOff
)

type Cte struct {
	Name         Ident
	Columns      []Ident
	Query        *Query
	Materialized CteMaterialized
}

func (c Cte) Children() []Node {
	out := []Node{c.Name}
	for _, col := range c.Columns {
		out = append(out, col)
	}
	return append(out, c.Query)
}

// With is a query's leading `WITH [RECURSIVE] cte, cte ...` clause.
type With struct {
	Recursive bool
	Ctes      []Cte
}

func (w With) Children() []Node {
	out := make([]Node, len(w.Ctes))
	for i, c := range w.Ctes {
		out[i] = c
	}
	return out
}

// SetExpr is the body of a Query: either a Select, a set operation
// combining two SetExprs, a VALUES list, or a parenthesized SetExpr.
type SetExpr interface {
	Node
	setExprNode()
}

// SelectSetExpr wraps a Select so it can stand as a SetExpr.
type SelectSetExpr struct{ Select *Select }

func (SelectSetExpr) setExprNode()       {}
func (s SelectSetExpr) Children() []Node { return childrenOf(s.Select) }

// SetOperationExpr is `left {UNION,INTERSECT,EXCEPT} [ALL|DISTINCT] right`.
type SetOperationExpr struct {
	Left       SetExpr
	Op         SetOperator
	Quantifier SetQuantifier
	Right      SetExpr
}

func (SetOperationExpr) setExprNode() {}
func (s SetOperationExpr) Children() []Node {
	return childrenOf(s.Left, s.Right)
}

// ValuesSetExpr is a `VALUES (...), (...)` row-constructor list used as a
// query body.
type ValuesSetExpr struct {
	Rows []Tuple
}

func (ValuesSetExpr) setExprNode() {}
func (v ValuesSetExpr) Children() []Node {
	out := make([]Node, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r
	}
	return out
}

// NestedSetExpr is a parenthesized SetExpr, kept explicit so the printer
// restores the source grouping around a set operation.
type NestedSetExpr struct{ Expr SetExpr }

func (NestedSetExpr) setExprNode()       {}
func (n NestedSetExpr) Children() []Node { return childrenOf(n.Expr) }

// SelectItem is one projection entry: an expression, optionally aliased,
// or a (qualified) wildcard.
type SelectItem struct {
	Expr  Expression
	Alias Ident // zero Ident when unaliased
}

func (s SelectItem) Children() []Node { return childrenOf(s.Expr, Node(s.Alias)) }

// GroupByKind distinguishes a plain expression list from ALL/DISTINCT
// grouping modifiers (MySQL/Postgres `GROUP BY ALL`).
type GroupByKind int

const (
	GroupByExprs GroupByKind = iota
	GroupByAll
)

// Select is the core `SELECT ... FROM ... WHERE ...` clause set, the
// typical SetExpr alternative.
type Select struct {
	Quantifier    SetQuantifier
	Top           Expression // MSSQL/Sybase TOP n; nil when absent
	TopPercent    bool
	Projection    []SelectItem
	Into          *ObjectName // SELECT ... INTO table
	From          []TableWithJoins
	Where         Expression
	GroupByKind   GroupByKind
	GroupBy       []Expression
	Having        Expression
	Windows       []WindowSpec // named WINDOW clause entries
	QualifyClause Expression   // Snowflake/Databricks QUALIFY
	Distinct      bool
	DistinctOn    []Expression // Postgres DISTINCT ON (...)
}

func (s Select) Children() []Node {
	out := childrenOf(s.Top)
	for _, p := range s.Projection {
		out = append(out, p)
	}
	if s.Into != nil {
		out = append(out, Node(*s.Into))
	}
	for _, f := range s.From {
		out = append(out, f)
	}
	out = append(out, childrenOf(s.Where)...)
	for _, g := range s.GroupBy {
		out = append(out, g)
	}
	out = append(out, childrenOf(s.Having, s.QualifyClause)...)
	for _, w := range s.Windows {
		out = append(out, w)
	}
	for _, d := range s.DistinctOn {
		out = append(out, d)
	}
	return out
}

// Query is a full query: optional WITH, a SetExpr body, then trailing
// ORDER BY / LIMIT / OFFSET / FETCH / locking clauses.
type Query struct {
	With    *With
	Body    SetExpr
	OrderBy []OrderByExpr
	Limit   Expression
	Offset  Expression
	OffsetRows string // "ROW" or "ROWS", empty when OFFSET is absent or dialect omits it
	FetchFirst Expression // ANSI FETCH FIRST n ROWS ONLY
	FetchWithTies bool
	Locking []LockClause
}

func (q Query) Children() []Node {
	var out []Node
	if q.With != nil {
		out = append(out, *q.With)
	}
	out = append(out, q.Body)
	for _, o := range q.OrderBy {
		out = append(out, o.Expr)
	}
	out = append(out, childrenOf(q.Limit, q.Offset, q.FetchFirst)...)
	for _, l := range q.Locking {
		out = append(out, l)
	}
	return out
}

// LockStrength is SELECT's trailing FOR UPDATE/SHARE row-locking clause
// strength.
type LockStrength int

const (
	LockForUpdate LockStrength = iota
	LockForNoKeyUpdate
	LockForShare
	LockForKeyShare
)

// LockWait selects NOWAIT / SKIP LOCKED behavior for a locking clause.
type LockWait int

const (
	LockWaitBlock LockWait = iota
	LockWaitNoWait
	LockWaitSkipLocked
)

// LockClause is one `FOR UPDATE [OF tables] [NOWAIT|SKIP LOCKED]` clause.
type LockClause struct {
	Strength LockStrength
	Of       []ObjectName
	Wait     LockWait
}

func (l LockClause) Children() []Node {
	out := make([]Node, len(l.Of))
	for i, o := range l.Of {
		out[i] = o
	}
	return out
}

// Table factors ---------------------------------------------------------

// TableAlias is a FROM-item's `[AS] name [(col, col, ...)]` alias.
type TableAlias struct {
	Name    Ident
	Columns []Ident
}

func (t TableAlias) Children() []Node {
	out := []Node{t.Name}
	for _, c := range t.Columns {
		out = append(out, c)
	}
	return out
}

func (t TableAlias) isZero() bool { return t.Name.Name == "" && len(t.Columns) == 0 }

// Table is a plain table reference, optionally aliased, with optional
// table-function arguments, hints and a PARTITION list. AS OF /
// version-qualifier clauses are not represented.
type Table struct {
	Name       ObjectName
	Alias      *TableAlias
	Args       []FunctionArg // set when Name is actually a table-valued function call: name(args)
	WithHints  []string      // MySQL index hints, carried verbatim
	Partitions []Ident       // MySQL PARTITION (p1, p2)
}

func (Table) tableFactorNode() {}
func (t Table) Children() []Node {
	out := []Node{Node(t.Name)}
	if t.Alias != nil {
		out = append(out, *t.Alias)
	}
	for _, a := range t.Args {
		out = append(out, a.Value)
	}
	for _, p := range t.Partitions {
		out = append(out, p)
	}
	return out
}

// Derived is a subquery appearing in FROM: `(SELECT ...) [AS] alias`.
type Derived struct {
	Lateral bool
	Query   *Query
	Alias   *TableAlias
}

func (Derived) tableFactorNode() {}
func (d Derived) Children() []Node {
	out := []Node{d.Query}
	if d.Alias != nil {
		out = append(out, *d.Alias)
	}
	return out
}

// TableFunction is a table-valued function call used directly as a FROM
// item: `name(args) [AS] alias`.
type TableFunction struct {
	Name  ObjectName
	Args  []FunctionArg
	Alias *TableAlias
}

func (TableFunction) tableFactorNode() {}
func (t TableFunction) Children() []Node {
	out := []Node{Node(t.Name)}
	for _, a := range t.Args {
		out = append(out, a.Value)
	}
	if t.Alias != nil {
		out = append(out, *t.Alias)
	}
	return out
}

// UnNest is BigQuery's `UNNEST(expr) [AS] alias [WITH OFFSET [AS off]]`.
type UnNest struct {
	Exprs       []Expression
	Alias       *TableAlias
	WithOffset  bool
	OffsetAlias Ident
}

func (UnNest) tableFactorNode() {}
func (u UnNest) Children() []Node {
	out := make([]Node, 0, len(u.Exprs)+2)
	for _, e := range u.Exprs {
		out = append(out, e)
	}
	if u.Alias != nil {
		out = append(out, *u.Alias)
	}
	return append(out, childrenOf(Node(u.OffsetAlias))...)
}

// NestedJoin is a parenthesized join tree used as a single FROM item:
// `(a JOIN b ON ...)`.
type NestedJoin struct {
	TableWithJoins TableWithJoins
	Alias          *TableAlias
}

func (NestedJoin) tableFactorNode() {}
func (n NestedJoin) Children() []Node {
	out := []Node{n.TableWithJoins}
	if n.Alias != nil {
		out = append(out, *n.Alias)
	}
	return out
}

// Pivot is `table PIVOT (agg_fn(col) FOR pivot_col IN (val, ...)) alias`.
type PivotValue struct {
	Value Expression
	Alias Ident
}

type Pivot struct {
	Table      TableFactor
	Aggregates []FunctionArg
	AggNames   []ObjectName
	PivotColumn ObjectName
	Values     []PivotValue
	Alias      *TableAlias
}

func (Pivot) tableFactorNode() {}
func (p Pivot) Children() []Node {
	out := []Node{p.Table}
	for _, v := range p.Values {
		out = append(out, childrenOf(v.Value, Node(v.Alias))...)
	}
	if p.Alias != nil {
		out = append(out, *p.Alias)
	}
	return out
}

// Unpivot is `table UNPIVOT (value_col FOR name_col IN (col, ...)) alias`.
type Unpivot struct {
	Table      TableFactor
	ValueName  Ident
	NameColumn Ident
	Columns    []Ident
	Alias      *TableAlias
}

func (Unpivot) tableFactorNode() {}
func (u Unpivot) Children() []Node {
	out := []Node{u.Table, Node(u.ValueName), Node(u.NameColumn)}
	for _, c := range u.Columns {
		out = append(out, c)
	}
	if u.Alias != nil {
		out = append(out, *u.Alias)
	}
	return out
}

// JsonTable is MySQL/Oracle's `JSON_TABLE(expr, path COLUMNS (...)) alias`,
// carried as a semi-opaque column spec list since column definitions vary
// widely across dialects.
type JsonTableColumn struct {
	Name Ident
	Type DataType
	Path string
}

type JsonTable struct {
	Expr    Expression
	Path    string
	Columns []JsonTableColumn
	Alias   *TableAlias
}

func (JsonTable) tableFactorNode() {}
func (j JsonTable) Children() []Node {
	out := childrenOf(j.Expr)
	for _, c := range j.Columns {
		out = append(out, childrenOf(Node(c.Name), c.Type)...)
	}
	if j.Alias != nil {
		out = append(out, *j.Alias)
	}
	return out
}

// MatchRecognize is `table MATCH_RECOGNIZE (...) alias`, carried with its
// clauses kept as loosely-typed expression lists since its internal
// grammar (DEFINE, PATTERN) is a mini-language of its own.
type MatchRecognize struct {
	Table       TableFactor
	PartitionBy []Expression
	OrderBy     []OrderByExpr
	Measures    []SelectItem
	Pattern     string
	Define      []SelectItem
	Alias       *TableAlias
}

func (MatchRecognize) tableFactorNode() {}
func (m MatchRecognize) Children() []Node {
	out := []Node{m.Table}
	for _, p := range m.PartitionBy {
		out = append(out, p)
	}
	for _, o := range m.OrderBy {
		out = append(out, o.Expr)
	}
	for _, mm := range m.Measures {
		out = append(out, mm)
	}
	for _, d := range m.Define {
		out = append(out, d)
	}
	if m.Alias != nil {
		out = append(out, *m.Alias)
	}
	return out
}

// Joins -------------------------------------------------------------

// JoinConstraint is a join's ON/USING/NATURAL qualifier.
type JoinConstraintKind int

const (
	JoinConstraintNone JoinConstraintKind = iota
	JoinConstraintOn
	JoinConstraintUsing
	JoinConstraintNatural
)

type JoinConstraint struct {
	Kind  JoinConstraintKind
	On    Expression
	Using []Ident
}

func (j JoinConstraint) Children() []Node {
	out := childrenOf(j.On)
	for _, u := range j.Using {
		out = append(out, u)
	}
	return out
}

// Join is one `JOIN table constraint` clause chained onto a FROM item.
type Join struct {
	Operator   JoinOperatorKind
	Relation   TableFactor
	Constraint JoinConstraint
	MatchCondition Expression // AsOf join's MATCH_CONDITION(...) (Snowflake)
}

func (j Join) Children() []Node {
	return append(childrenOf(j.Relation), append(j.Constraint.Children(), childrenOf(j.MatchCondition)...)...)
}

// TableWithJoins is one FROM-clause item: a base table factor plus zero
// or more chained joins.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []Join
}

func (t TableWithJoins) Children() []Node {
	out := []Node{t.Relation}
	for _, j := range t.Joins {
		out = append(out, j)
	}
	return out
}
