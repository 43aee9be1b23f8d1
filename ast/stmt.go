package ast

// SelectStatement wraps a Query so a top-level `SELECT ...` stands as a
// Statement.
type SelectStatement struct{ Query *Query }

func (SelectStatement) statementNode()  {}
func (s SelectStatement) Children() []Node { return childrenOf(s.Query) }

// InsertSource is the row-producing half of an INSERT: either an
// explicit VALUES list or a full SELECT/Query.
type InsertSource struct {
	Values    []Tuple // nil when Query is set
	Query     *Query
	DefaultValues bool
}

func (s InsertSource) Children() []Node {
	out := make([]Node, 0, len(s.Values)+1)
	for _, v := range s.Values {
		out = append(out, v)
	}
	return append(out, childrenOf(s.Query)...)
}

// OnConflictAction selects INSERT's conflict-resolution behavior:
// Postgres ON CONFLICT, MySQL ON DUPLICATE KEY UPDATE, SQLite's OR
// IGNORE/REPLACE/ABORT/FAIL/ROLLBACK family.
type OnConflictActionKind int

const (
	OnConflictNone OnConflictActionKind = iota
	OnConflictDoNothing
	OnConflictDoUpdate
	OnConflictIgnore
	OnConflictReplace
	OnConflictAbort
	OnConflictFail
	OnConflictRollback
)

// OnConflict is INSERT's optional conflict clause.
type OnConflict struct {
	Kind        OnConflictActionKind
	Columns     []Ident // ON CONFLICT (columns)
	Constraint  Ident   // ON CONFLICT ON CONSTRAINT name
	Assignments []Assignment
	Where       Expression
}

func (o OnConflict) Children() []Node {
	out := make([]Node, 0, len(o.Columns)+len(o.Assignments)+1)
	for _, c := range o.Columns {
		out = append(out, c)
	}
	out = append(out, childrenOf(Node(o.Constraint))...)
	for _, a := range o.Assignments {
		out = append(out, a)
	}
	return append(out, childrenOf(o.Where)...)
}

// Insert is `INSERT [OR action] INTO table [(cols)] source
// [ON CONFLICT ...] [RETURNING ...]`.
type Insert struct {
	Table      ObjectName
	Columns    []Ident
	Source     InsertSource
	OnConflict *OnConflict
	Returning  []SelectItem
	Priority   string // MySQL LOW_PRIORITY/DELAYED/HIGH_PRIORITY, carried verbatim
	Ignore     bool   // MySQL INSERT IGNORE
}

func (Insert) statementNode() {}
func (i Insert) Children() []Node {
	out := []Node{Node(i.Table)}
	for _, c := range i.Columns {
		out = append(out, c)
	}
	out = append(out, i.Source)
	if i.OnConflict != nil {
		out = append(out, *i.OnConflict)
	}
	for _, r := range i.Returning {
		out = append(out, r)
	}
	return out
}

// Update is `UPDATE table SET col = expr, ... [FROM ...] [WHERE ...]
// [RETURNING ...]`.
type Update struct {
	Table     TableWithJoins
	Set       []Assignment
	From      []TableWithJoins
	Where     Expression
	Returning []SelectItem
}

func (Update) statementNode() {}
func (u Update) Children() []Node {
	out := []Node{u.Table}
	for _, a := range u.Set {
		out = append(out, a)
	}
	for _, f := range u.From {
		out = append(out, f)
	}
	out = append(out, childrenOf(u.Where)...)
	for _, r := range u.Returning {
		out = append(out, r)
	}
	return out
}

// Delete is `DELETE FROM table [USING ...] [WHERE ...] [RETURNING ...]`.
type Delete struct {
	Tables    []ObjectName // multi-table DELETE (MySQL)
	From      []TableWithJoins
	Using     []TableWithJoins
	Where     Expression
	Returning []SelectItem
}

func (Delete) statementNode() {}
func (d Delete) Children() []Node {
	out := make([]Node, 0, len(d.Tables)+len(d.From)+len(d.Using))
	for _, t := range d.Tables {
		out = append(out, Node(t))
	}
	for _, f := range d.From {
		out = append(out, f)
	}
	for _, u := range d.Using {
		out = append(out, u)
	}
	out = append(out, childrenOf(d.Where)...)
	for _, r := range d.Returning {
		out = append(out, r)
	}
	return out
}

// CreateView is a CREATE VIEW statement. A dialect-specific WITH (...)
// option list given before AS is kept in WithOptions.
type CreateView struct {
	OrReplace   bool
	Materialized bool
	Temporary   bool
	IfNotExists bool
	Name        ObjectName
	Columns     []Ident
	Query       *Query
	WithCheckOption bool
	SecurityType    string // MySQL SQL SECURITY DEFINER/INVOKER
	WithOptions     []TableOption
}

func (CreateView) statementNode() {}
func (c CreateView) Children() []Node {
	out := []Node{Node(c.Name)}
	for _, col := range c.Columns {
		out = append(out, col)
	}
	out = append(out, c.Query)
	for _, o := range c.WithOptions {
		out = append(out, o)
	}
	return out
}

// CreateSchema is `CREATE SCHEMA [IF NOT EXISTS] name [AUTHORIZATION
// owner]`.
type CreateSchema struct {
	IfNotExists   bool
	Name          ObjectName
	Authorization Ident
}

func (CreateSchema) statementNode() {}
func (c CreateSchema) Children() []Node {
	return childrenOf(Node(c.Name), Node(c.Authorization))
}

// FunctionParam is one parameter of a CREATE FUNCTION/PROCEDURE
// declaration.
type FunctionParam struct {
	Name    Ident
	Type    DataType
	Default Expression
	Mode    string // "IN"/"OUT"/"INOUT", empty when unspecified
}

func (p FunctionParam) Children() []Node { return childrenOf(Node(p.Name), p.Type, p.Default) }

// FunctionBodyKind distinguishes a SQL-language function body from an
// opaque host-language body (PL/pgSQL, JavaScript, Python, ...).
type FunctionBodyKind int

const (
	FunctionBodySQL FunctionBodyKind = iota
	FunctionBodyOpaque
)

// CreateFunction is `CREATE [OR REPLACE] FUNCTION name(params) RETURNS
// type [LANGUAGE lang] AS body`. Opaque procedural bodies (PL/pgSQL
// blocks, JS UDFs) are carried as their raw source text rather than
// parsed: the grammar of each host procedural language is out of scope.
type CreateFunction struct {
	OrReplace  bool
	Name       ObjectName
	Params     []FunctionParam
	Returns    DataType
	Language   string
	BodyKind   FunctionBodyKind
	SQLBody    Statement  // set when BodyKind == FunctionBodySQL and the body is a single RETURN expr/query
	OpaqueBody string     // raw $$...$$ / AS '...' body text
	Deterministic bool
	IsProcedure bool // CREATE PROCEDURE rather than CREATE FUNCTION
}

func (CreateFunction) statementNode() {}
func (c CreateFunction) Children() []Node {
	out := []Node{Node(c.Name)}
	for _, p := range c.Params {
		out = append(out, p)
	}
	out = append(out, childrenOf(c.Returns)...)
	if c.SQLBody != nil {
		out = append(out, c.SQLBody)
	}
	return out
}

// DropObjectType enumerates the kinds of object a DROP statement can
// target.
type DropObjectType int

const (
	DropTable DropObjectType = iota
	DropView
	DropIndex
	DropSchema
	DropSequence
	DropFunction
	DropProcedure
	DropDatabase
)

// Drop is `DROP {TABLE,VIEW,INDEX,SCHEMA,SEQUENCE,FUNCTION,...}
// [IF EXISTS] name, name ... [CASCADE|RESTRICT]`.
type Drop struct {
	ObjectType DropObjectType
	IfExists   bool
	Names      []ObjectName
	Cascade    bool
	Restrict   bool
	Concurrently bool // Postgres DROP INDEX CONCURRENTLY
}

func (Drop) statementNode() {}
func (d Drop) Children() []Node {
	out := make([]Node, len(d.Names))
	for i, n := range d.Names {
		out[i] = n
	}
	return out
}

// Truncate is `TRUNCATE [TABLE] name, name ... [RESTART IDENTITY]
// [CASCADE]`.
type Truncate struct {
	Names          []ObjectName
	RestartIdentity bool
	Cascade        bool
}

func (Truncate) statementNode() {}
func (t Truncate) Children() []Node {
	out := make([]Node, len(t.Names))
	for i, n := range t.Names {
		out[i] = n
	}
	return out
}

// Merge is `MERGE INTO target USING source ON cond when_clause...`.
type Merge struct {
	Target       ObjectName
	TargetAlias  Ident
	Source       TableFactor
	SourceAlias  Ident
	On           Expression
	Clauses      []MergeClause
}

func (Merge) statementNode() {}
func (m Merge) Children() []Node {
	out := []Node{Node(m.Target), Node(m.TargetAlias), m.Source, Node(m.SourceAlias)}
	out = append(out, childrenOf(m.On)...)
	for _, c := range m.Clauses {
		out = append(out, c)
	}
	return out
}

// Privilege is one permission named in a GRANT/REVOKE statement, e.g.
// SELECT, INSERT(col1, col2), ALL PRIVILEGES.
type Privilege struct {
	Name    string
	Columns []Ident
}

func (p Privilege) Children() []Node {
	out := make([]Node, len(p.Columns))
	for i, c := range p.Columns {
		out[i] = c
	}
	return out
}

// GrantRevokeObjectType distinguishes what kind of object a GRANT/REVOKE
// targets.
type GrantObjectType int

const (
	GrantObjectTable GrantObjectType = iota
	GrantObjectSchema
	GrantObjectDatabase
	GrantObjectSequence
	GrantObjectFunction
)

// Grant is `GRANT privilege, ... ON object_type target TO grantee, ...
// [WITH GRANT OPTION]`.
type Grant struct {
	Privileges []Privilege
	ObjectType GrantObjectType
	Objects    []ObjectName
	Grantees   []Ident
	WithGrantOption bool
}

func (Grant) statementNode() {}
func (g Grant) Children() []Node {
	out := make([]Node, 0, len(g.Privileges)+len(g.Objects)+len(g.Grantees))
	for _, p := range g.Privileges {
		out = append(out, p)
	}
	for _, o := range g.Objects {
		out = append(out, Node(o))
	}
	for _, gr := range g.Grantees {
		out = append(out, gr)
	}
	return out
}

// Revoke is GRANT's inverse: `REVOKE [GRANT OPTION FOR] privilege, ...
// ON object_type target FROM grantee, ... [CASCADE|RESTRICT]`.
type Revoke struct {
	GrantOptionFor bool
	Privileges     []Privilege
	ObjectType     GrantObjectType
	Objects        []ObjectName
	Grantees       []Ident
	Cascade        bool
}

func (Revoke) statementNode() {}
func (r Revoke) Children() []Node {
	out := make([]Node, 0, len(r.Privileges)+len(r.Objects)+len(r.Grantees))
	for _, p := range r.Privileges {
		out = append(out, p)
	}
	for _, o := range r.Objects {
		out = append(out, Node(o))
	}
	for _, g := range r.Grantees {
		out = append(out, g)
	}
	return out
}

// TransactionMode is one option in START TRANSACTION's mode list
// (ISOLATION LEVEL ..., READ WRITE / READ ONLY).
type TransactionMode struct {
	IsolationLevel string // "", "READ UNCOMMITTED", "READ COMMITTED", "REPEATABLE READ", "SERIALIZABLE"
	ReadOnly       bool
	HasReadOnly    bool
}

// StartTransaction is `START TRANSACTION` / `BEGIN [WORK|TRANSACTION]
// [mode...]`.
type StartTransaction struct {
	Modes []TransactionMode
}

func (StartTransaction) statementNode()   {}
func (StartTransaction) Children() []Node { return nil }

// Commit is `COMMIT [WORK|TRANSACTION] [AND [NO] CHAIN]`.
type Commit struct{ Chain bool }

func (Commit) statementNode()   {}
func (Commit) Children() []Node { return nil }

// Rollback is `ROLLBACK [WORK|TRANSACTION] [TO [SAVEPOINT] name]`.
type Rollback struct{ SavepointName Ident }

func (Rollback) statementNode()   {}
func (r Rollback) Children() []Node { return childrenOf(Node(r.SavepointName)) }

// Savepoint is `SAVEPOINT name`.
type Savepoint struct{ Name Ident }

func (Savepoint) statementNode()   {}
func (s Savepoint) Children() []Node { return childrenOf(Node(s.Name)) }

// ReleaseSavepoint is `RELEASE [SAVEPOINT] name`.
type ReleaseSavepoint struct{ Name Ident }

func (ReleaseSavepoint) statementNode()   {}
func (r ReleaseSavepoint) Children() []Node { return childrenOf(Node(r.Name)) }

// ExplainFormat selects EXPLAIN's output format option, where supported.
type ExplainFormat int

const (
	ExplainFormatDefault ExplainFormat = iota
	ExplainFormatJSON
	ExplainFormatXML
	ExplainFormatYAML
	ExplainFormatText
	ExplainFormatTraditional
)

// Explain is `EXPLAIN [ANALYZE] [VERBOSE] [FORMAT fmt] statement`.
type Explain struct {
	Analyze bool
	Verbose bool
	Format  ExplainFormat
	Statement Statement
}

func (Explain) statementNode() {}
func (e Explain) Children() []Node { return childrenOf(e.Statement) }

// Use is `USE name` (MySQL/ClickHouse schema switch).
type Use struct{ Name ObjectName }

func (Use) statementNode()   {}
func (u Use) Children() []Node { return childrenOf(Node(u.Name)) }

// CopyDirection distinguishes COPY ... TO vs COPY ... FROM.
type CopyDirection int

const (
	CopyTo CopyDirection = iota
	CopyFrom
)

// CopyTarget is either a table (with optional column list) or a query,
// the two forms `COPY table(cols) TO/FROM ...` and `COPY (query) TO
// ...` allow.
type CopyTarget struct {
	Table   ObjectName
	Columns []Ident
	Query   *Query
}

// Copy is Postgres's `COPY table(cols) {FROM,TO} 'file'|PROGRAM
// 'cmd'|STDIN|STDOUT [WITH (options...)]`.
type Copy struct {
	Target    CopyTarget
	Direction CopyDirection
	Source    string // filename, "STDIN", "STDOUT", or "PROGRAM '...'"
	Options   []TableOption
}

func (Copy) statementNode() {}
func (c Copy) Children() []Node {
	out := []Node{Node(c.Target.Table)}
	for _, col := range c.Target.Columns {
		out = append(out, col)
	}
	if c.Target.Query != nil {
		out = append(out, c.Target.Query)
	}
	for _, o := range c.Options {
		out = append(out, o)
	}
	return out
}

// Declare is a procedural `DECLARE name CURSOR FOR query` or a plain
// variable declaration `DECLARE name type [:= expr]`, the two forms
// distinguished by CursorFor being set.
type Declare struct {
	Name      Ident
	Type      DataType
	Default   Expression
	CursorFor *Query
}

func (Declare) statementNode() {}
func (d Declare) Children() []Node {
	out := childrenOf(Node(d.Name), d.Type, d.Default)
	if d.CursorFor != nil {
		out = append(out, d.CursorFor)
	}
	return out
}

// Fetch is `FETCH [direction] FROM cursor [INTO target, ...]`.
type Fetch struct {
	Direction string // "NEXT", "PRIOR", "FIRST", "LAST", "ABSOLUTE n", "RELATIVE n", "ALL", "FORWARD n", "BACKWARD n"
	Cursor    Ident
	Into      []Ident
}

func (Fetch) statementNode() {}
func (f Fetch) Children() []Node {
	out := []Node{Node(f.Cursor)}
	for _, i := range f.Into {
		out = append(out, i)
	}
	return out
}

// Close is `CLOSE cursor`.
type Close struct{ Cursor Ident }

func (Close) statementNode()   {}
func (c Close) Children() []Node { return childrenOf(Node(c.Cursor)) }

// Prepare is `PREPARE name [(types...)] AS statement`.
type Prepare struct {
	Name      Ident
	ParamTypes []DataType
	Statement Statement
}

func (Prepare) statementNode() {}
func (p Prepare) Children() []Node {
	out := []Node{Node(p.Name)}
	for _, t := range p.ParamTypes {
		out = append(out, t)
	}
	return append(out, childrenOf(p.Statement)...)
}

// Execute is `EXECUTE name [(args...)]`.
type Execute struct {
	Name Ident
	Args []Expression
}

func (Execute) statementNode() {}
func (e Execute) Children() []Node {
	out := []Node{Node(e.Name)}
	for _, a := range e.Args {
		out = append(out, a)
	}
	return out
}

// Deallocate is `DEALLOCATE [PREPARE] {name|ALL}`.
type Deallocate struct {
	Name Ident
	All  bool
}

func (Deallocate) statementNode()   {}
func (d Deallocate) Children() []Node { return childrenOf(Node(d.Name)) }

// SetStatement is `SET [SESSION|LOCAL|GLOBAL] name = value` or
// Postgres's `SET name TO value`.
type SetScope int

const (
	SetScopeNone SetScope = iota
	SetScopeSession
	SetScopeLocal
	SetScopeGlobal
)

type SetStatement struct {
	Scope SetScope
	Name  ObjectName
	Values []Expression
}

func (SetStatement) statementNode() {}
func (s SetStatement) Children() []Node {
	out := []Node{Node(s.Name)}
	for _, v := range s.Values {
		out = append(out, v)
	}
	return out
}

// IfStatement is a minimal procedural `IF cond THEN stmts... [ELSIF
// cond THEN stmts...]... [ELSE stmts...] END IF` conditional, the one
// control-flow form carried across dialects' stored-procedure bodies.
type ElseIfBranch struct {
	Condition Expression
	Body      []Statement
}

type IfStatement struct {
	Condition Expression
	Then      []Statement
	ElseIfs   []ElseIfBranch
	Else      []Statement
}

func (IfStatement) statementNode() {}
func (i IfStatement) Children() []Node {
	out := childrenOf(i.Condition)
	for _, s := range i.Then {
		out = append(out, s)
	}
	for _, ei := range i.ElseIfs {
		out = append(out, childrenOf(ei.Condition)...)
		for _, s := range ei.Body {
			out = append(out, s)
		}
	}
	for _, s := range i.Else {
		out = append(out, s)
	}
	return out
}
