package ast

// ColumnOptionKind enumerates the inline per-column constraint/attribute
// forms that can follow a column's type in a CREATE/ALTER TABLE column
// definition.
type ColumnOptionKind int

const (
	ColumnOptionNotNull ColumnOptionKind = iota
	ColumnOptionNull
	ColumnOptionDefault
	ColumnOptionUnique
	ColumnOptionPrimaryKey
	ColumnOptionCheck
	ColumnOptionForeignKey
	ColumnOptionCollate
	ColumnOptionGenerated
	ColumnOptionComment
	ColumnOptionCharacterSet
	ColumnOptionAutoIncrement
	ColumnOptionOnUpdate // MySQL ON UPDATE CURRENT_TIMESTAMP
)

// GeneratedKind distinguishes a generated column's storage and
// expression-source forms.
type GeneratedKind int

const (
	GeneratedAlways GeneratedKind = iota
	GeneratedByDefault
)

// ColumnOption is one constraint or attribute attached to a column
// definition, e.g. `NOT NULL`, `DEFAULT expr`, `REFERENCES t(c)`.
type ColumnOption struct {
	Kind        ColumnOptionKind
	Name        Ident // constraint name, from CONSTRAINT name ...; zero if unnamed
	Expr        Expression // DEFAULT / CHECK / GENERATED AS expression
	Generated   GeneratedKind
	Stored      bool // GENERATED ALWAYS AS (expr) STORED vs VIRTUAL
	Collation   ObjectName
	References  *ForeignKeyRef
	Comment     string
	CharacterSet string
}

func (c ColumnOption) Children() []Node {
	out := childrenOf(Node(c.Name), c.Expr)
	if c.References != nil {
		out = append(out, *c.References)
	}
	return out
}

// ForeignKeyRef is the `REFERENCES table(cols) [ON DELETE action] [ON
// UPDATE action]` payload shared by column-level and table-level foreign
// key constraints.
type ForeignKeyRef struct {
	Table    ObjectName
	Columns  []Ident
	OnDelete ReferentialAction
	OnUpdate ReferentialAction
}

func (f ForeignKeyRef) Children() []Node {
	out := []Node{Node(f.Table)}
	for _, c := range f.Columns {
		out = append(out, c)
	}
	return out
}

// ColumnDef is one column in a CREATE TABLE / ALTER TABLE ADD COLUMN.
type ColumnDef struct {
	Name    Ident
	Type    DataType
	Options []ColumnOption
}

func (c ColumnDef) Children() []Node {
	out := []Node{Node(c.Name), c.Type}
	for _, o := range c.Options {
		out = append(out, o)
	}
	return out
}

// TableConstraintKind enumerates table-level (as opposed to per-column)
// constraints.
type TableConstraintKind int

const (
	TableConstraintPrimaryKey TableConstraintKind = iota
	TableConstraintUnique
	TableConstraintForeignKey
	TableConstraintCheck
	TableConstraintIndex // MySQL bare KEY/INDEX(...) inline definition
)

// TableConstraint is one table-level constraint clause.
type TableConstraint struct {
	Kind       TableConstraintKind
	Name       Ident
	Columns    []Ident
	Check      Expression
	References *ForeignKeyRef
	IndexName  Ident
	IndexType  string // "BTREE" / "HASH", carried verbatim when given
}

func (t TableConstraint) Children() []Node {
	out := childrenOf(Node(t.Name))
	for _, c := range t.Columns {
		out = append(out, c)
	}
	out = append(out, childrenOf(t.Check)...)
	if t.References != nil {
		out = append(out, *t.References)
	}
	return out
}

// PartitionBy describes a table's PARTITION BY clause (Postgres/MySQL/
// ClickHouse/BigQuery/Databricks all use the leading-clause form).
type PartitionBy struct {
	Kind  string // "RANGE", "LIST", "HASH", "" for BigQuery/Databricks-style plain-expr partitioning
	Exprs []Expression
}

func (p PartitionBy) Children() []Node {
	out := make([]Node, len(p.Exprs))
	for i, e := range p.Exprs {
		out[i] = e
	}
	return out
}

// CreateTable is `CREATE [TEMP|TEMPORARY] TABLE [IF NOT EXISTS] name
// (columns, constraints) [table_options]`. It is the union of every
// dialect's CREATE TABLE surface; unused fields are left at their zero
// value, which the printer treats as "omit this clause".
type CreateTable struct {
	Temporary    bool
	Unlogged     bool // Postgres UNLOGGED
	IfNotExists  bool
	Name         ObjectName
	Columns      []ColumnDef
	Constraints  []TableConstraint
	Like         *ObjectName // CREATE TABLE t (LIKE other [INCLUDING ALL])
	InheritsFrom []ObjectName // Postgres INHERITS (...)
	AsQuery      *Query       // CREATE TABLE t AS SELECT ...
	Engine       string       // MySQL/ClickHouse ENGINE=...
	Comment      string
	Charset      string
	Collation    string
	PartitionBy  *PartitionBy
	ClusterBy    []Expression // BigQuery CLUSTER BY
	OnCommit     OnCommit
	WithOptions  []TableOption // generic WITH (k=v, ...) options (Postgres storage params, Hive TBLPROPERTIES, ...)
	OrderByKeys  []Expression // ClickHouse ORDER BY
	External     bool         // Hive/Databricks EXTERNAL TABLE
	Location     string       // Hive/Databricks LOCATION 'path'
	StoredAs     string       // Hive STORED AS PARQUET/ORC/...
}

// TableOption is one `name = value` entry in a WITH (...) / TBLPROPERTIES
// (...) / OPTIONS (...) clause.
type TableOption struct {
	Name  string
	Value Expression
}

func (o TableOption) Children() []Node { return childrenOf(o.Value) }

func (CreateTable) statementNode() {}
func (c CreateTable) Children() []Node {
	out := []Node{Node(c.Name)}
	for _, col := range c.Columns {
		out = append(out, col)
	}
	for _, cons := range c.Constraints {
		out = append(out, cons)
	}
	if c.Like != nil {
		out = append(out, Node(*c.Like))
	}
	for _, inh := range c.InheritsFrom {
		out = append(out, Node(inh))
	}
	if c.AsQuery != nil {
		out = append(out, c.AsQuery)
	}
	if c.PartitionBy != nil {
		out = append(out, *c.PartitionBy)
	}
	for _, e := range c.ClusterBy {
		out = append(out, e)
	}
	for _, e := range c.OrderByKeys {
		out = append(out, e)
	}
	for _, opt := range c.WithOptions {
		out = append(out, opt)
	}
	return out
}

// IndexColumn is one column of an index key, with an optional sort
// direction and (Postgres) operator class.
type IndexColumn struct {
	Expr      Expression
	Desc      bool
	HasDesc   bool
	OpClass   string
}

func (i IndexColumn) Children() []Node { return childrenOf(i.Expr) }

// CreateIndex is `CREATE [UNIQUE] INDEX [CONCURRENTLY] [IF NOT EXISTS]
// name ON table [USING method] (columns) [WHERE predicate]`.
type CreateIndex struct {
	Unique      bool
	Concurrently bool
	IfNotExists bool
	Name        Ident
	Table       ObjectName
	Using       string // Postgres USING btree/gin/gist/...
	Columns     []IndexColumn
	Include     []Ident // Postgres INCLUDE (...)
	Where       Expression
}

func (CreateIndex) statementNode() {}
func (c CreateIndex) Children() []Node {
	out := []Node{Node(c.Name), Node(c.Table)}
	for _, col := range c.Columns {
		out = append(out, col)
	}
	for _, inc := range c.Include {
		out = append(out, inc)
	}
	return append(out, childrenOf(c.Where)...)
}

// SequenceOption is one option of a CREATE SEQUENCE / ALTER SEQUENCE
// statement.
type SequenceOptionKind int

const (
	SeqIncrementBy SequenceOptionKind = iota
	SeqMinValue
	SeqMaxValue
	SeqStartWith
	SeqCache
	SeqCycle
	SeqNoMinValue
	SeqNoMaxValue
	SeqNoCycle
	SeqOwnedBy
)

type SequenceOption struct {
	Kind  SequenceOptionKind
	Value Expression
	Owner ObjectName
}

func (s SequenceOption) Children() []Node { return childrenOf(s.Value, Node(s.Owner)) }

// CreateSequence is `CREATE SEQUENCE [IF NOT EXISTS] name [AS type]
// options...`.
type CreateSequence struct {
	Temporary   bool
	IfNotExists bool
	Name        ObjectName
	As          DataType
	Options     []SequenceOption
}

func (CreateSequence) statementNode() {}
func (c CreateSequence) Children() []Node {
	out := []Node{Node(c.Name)}
	out = append(out, childrenOf(c.As)...)
	for _, o := range c.Options {
		out = append(out, o)
	}
	return out
}

// AlterTableAction is one clause of an ALTER TABLE statement's
// (possibly comma-separated) action list.
type AlterTableActionKind int

const (
	AlterAddColumn AlterTableActionKind = iota
	AlterDropColumn
	AlterAlterColumn // ALTER COLUMN ... {TYPE, SET DEFAULT, DROP DEFAULT, SET NOT NULL, DROP NOT NULL}
	AlterRenameColumn
	AlterRenameTable
	AlterAddConstraint
	AlterDropConstraint
	AlterRenameConstraint
	AlterAddPrimaryKey
	AlterDropPrimaryKey
	AlterEngine // MySQL ENGINE=...
	AlterOwner  // Postgres OWNER TO
)

// AlterColumnOperation distinguishes the sub-forms of ALTER COLUMN.
type AlterColumnOperation int

const (
	AlterColumnSetType AlterColumnOperation = iota
	AlterColumnSetDefault
	AlterColumnDropDefault
	AlterColumnSetNotNull
	AlterColumnDropNotNull
)

type AlterTableAction struct {
	Kind               AlterTableActionKind
	IfExists           bool
	IfNotExists        bool
	Column             ColumnDef
	ColumnName         Ident
	NewColumnName      Ident
	NewTableName       ObjectName
	Constraint         TableConstraint
	ConstraintName     Ident
	NewConstraintName  Ident
	ColumnOp           AlterColumnOperation
	NewType            DataType
	DefaultExpr        Expression
	Cascade            bool
	Engine             string
	Owner              Ident
}

func (a AlterTableAction) Children() []Node {
	out := childrenOf(Node(a.ColumnName), Node(a.NewColumnName), Node(a.NewTableName),
		Node(a.ConstraintName), Node(a.NewConstraintName), a.NewType, a.DefaultExpr, Node(a.Owner))
	if a.Kind == AlterAddColumn {
		out = append(out, a.Column)
	}
	if a.Kind == AlterAddConstraint {
		out = append(out, a.Constraint)
	}
	return out
}

// AlterTable is `ALTER TABLE [IF EXISTS] name action, action, ...`.
type AlterTable struct {
	IfExists bool
	Name     ObjectName
	Actions  []AlterTableAction
}

func (AlterTable) statementNode() {}
func (a AlterTable) Children() []Node {
	out := []Node{Node(a.Name)}
	for _, act := range a.Actions {
		out = append(out, act)
	}
	return out
}

// MergeClauseKind distinguishes the WHEN MATCHED / WHEN NOT MATCHED
// branches of a MERGE statement.
type MergeClauseKind int

const (
	MergeWhenMatched MergeClauseKind = iota
	MergeWhenNotMatched
	MergeWhenNotMatchedBySource
)

// MergeAction is the action a MERGE WHEN clause performs: UPDATE SET
// ..., DELETE, or INSERT (cols) VALUES (...).
type MergeActionKind int

const (
	MergeActionUpdate MergeActionKind = iota
	MergeActionDelete
	MergeActionInsert
)

// MergeClause is one flattened `WHEN [NOT] MATCHED [AND cond] THEN
// action` branch of a MERGE statement, kept flat rather than as a tree
// of per-branch node types since every branch shares the same shape.
type MergeClause struct {
	Kind        MergeClauseKind
	Condition   Expression
	Action      MergeActionKind
	Assignments []Assignment
	InsertColumns []Ident
	InsertValues  []Expression
	InsertIsDefaultValues bool
}

func (m MergeClause) Children() []Node {
	out := childrenOf(m.Condition)
	for _, a := range m.Assignments {
		out = append(out, a)
	}
	for _, c := range m.InsertColumns {
		out = append(out, c)
	}
	for _, v := range m.InsertValues {
		out = append(out, v)
	}
	return out
}

// Assignment is one `column = expr` pair in an UPDATE SET clause, an
// INSERT ... ON DUPLICATE KEY UPDATE clause, or a MERGE UPDATE SET
// clause.
type Assignment struct {
	Target Expression // an IdentExpr or CompoundIdentifier, or Tuple for (a,b) = (x,y)
	Value  Expression
}

func (a Assignment) Children() []Node { return childrenOf(a.Target, a.Value) }
