package ast

import "strings"

func statementSQL(s Statement) string {
	var w strings.Builder
	writeStatement(&w, s)
	return w.String()
}

func writeStatement(w *strings.Builder, s Statement) {
	switch v := s.(type) {
	case nil:
		return
	case SelectStatement:
		writeQuery(w, v.Query)
	case Insert:
		writeInsert(w, v)
	case Update:
		writeUpdate(w, v)
	case Delete:
		writeDelete(w, v)
	case CreateTable:
		writeCreateTable(w, v)
	case CreateIndex:
		writeCreateIndex(w, v)
	case CreateSequence:
		writeCreateSequence(w, v)
	case AlterTable:
		writeAlterTable(w, v)
	case Merge:
		writeMerge(w, v)
	case CreateView:
		writeCreateView(w, v)
	case CreateSchema:
		writeCreateSchema(w, v)
	case CreateFunction:
		writeCreateFunction(w, v)
	case Drop:
		writeDrop(w, v)
	case Truncate:
		writeTruncate(w, v)
	case Grant:
		writeGrant(w, v)
	case Revoke:
		writeRevoke(w, v)
	case StartTransaction:
		writeStartTransaction(w, v)
	case Commit:
		w.WriteString("COMMIT")
		if v.Chain {
			w.WriteString(" AND CHAIN")
		}
	case Rollback:
		w.WriteString("ROLLBACK")
		if v.SavepointName.Name != "" {
			w.WriteString(" TO SAVEPOINT ")
			writeIdent(w, v.SavepointName)
		}
	case Savepoint:
		w.WriteString("SAVEPOINT ")
		writeIdent(w, v.Name)
	case ReleaseSavepoint:
		w.WriteString("RELEASE SAVEPOINT ")
		writeIdent(w, v.Name)
	case Explain:
		writeExplain(w, v)
	case Use:
		w.WriteString("USE ")
		writeObjectName(w, v.Name)
	case Copy:
		writeCopy(w, v)
	case Declare:
		writeDeclare(w, v)
	case Fetch:
		writeFetch(w, v)
	case Close:
		w.WriteString("CLOSE ")
		writeIdent(w, v.Cursor)
	case Prepare:
		writePrepare(w, v)
	case Execute:
		writeExecute(w, v)
	case Deallocate:
		w.WriteString("DEALLOCATE ")
		if v.All {
			w.WriteString("ALL")
		} else {
			writeIdent(w, v.Name)
		}
	case SetStatement:
		writeSetStatement(w, v)
	case IfStatement:
		writeIfStatement(w, v)
	default:
		panic("ast: writeStatement: unhandled statement type")
	}
}

func writeInsert(w *strings.Builder, i Insert) {
	w.WriteString("INSERT ")
	orAction := i.OnConflict != nil && i.OnConflict.Kind >= OnConflictIgnore
	if orAction && i.OnConflict.Kind == OnConflictIgnore {
		w.WriteString("OR IGNORE ")
	} else if orAction {
		writeOnConflict(w, *i.OnConflict)
		w.WriteByte(' ')
	}
	if i.Ignore {
		w.WriteString("IGNORE ")
	}
	if i.Priority != "" {
		w.WriteString(i.Priority)
		w.WriteByte(' ')
	}
	w.WriteString("INTO ")
	writeObjectName(w, i.Table)
	if len(i.Columns) > 0 {
		w.WriteString(" (")
		writeIdentList(w, i.Columns)
		w.WriteByte(')')
	}
	w.WriteByte(' ')
	writeInsertSource(w, i.Source)
	if i.OnConflict != nil && !orAction {
		w.WriteByte(' ')
		writeOnConflict(w, *i.OnConflict)
	}
	if len(i.Returning) > 0 {
		w.WriteString(" RETURNING ")
		writeList(w, i.Returning, ", ", writeSelectItem)
	}
}

func writeInsertSource(w *strings.Builder, s InsertSource) {
	if s.DefaultValues {
		w.WriteString("DEFAULT VALUES")
		return
	}
	if s.Query != nil {
		writeQuery(w, s.Query)
		return
	}
	w.WriteString("VALUES ")
	writeList(w, s.Values, ", ", func(w *strings.Builder, t Tuple) { writeExpr(w, t) })
}

func writeOnConflict(w *strings.Builder, o OnConflict) {
	switch o.Kind {
	case OnConflictDoNothing:
		w.WriteString("ON CONFLICT")
		writeConflictTarget(w, o)
		w.WriteString(" DO NOTHING")
	case OnConflictDoUpdate:
		w.WriteString("ON CONFLICT")
		writeConflictTarget(w, o)
		w.WriteString(" DO UPDATE SET ")
		writeList(w, o.Assignments, ", ", writeAssignment)
		if o.Where != nil {
			w.WriteString(" WHERE ")
			writeExpr(w, o.Where)
		}
	case OnConflictIgnore:
		w.WriteString("ON DUPLICATE KEY UPDATE ")
		writeList(w, o.Assignments, ", ", writeAssignment)
	case OnConflictReplace:
		w.WriteString("OR REPLACE")
	case OnConflictAbort:
		w.WriteString("OR ABORT")
	case OnConflictFail:
		w.WriteString("OR FAIL")
	case OnConflictRollback:
		w.WriteString("OR ROLLBACK")
	}
}

func writeConflictTarget(w *strings.Builder, o OnConflict) {
	if len(o.Columns) > 0 {
		w.WriteString(" (")
		writeIdentList(w, o.Columns)
		w.WriteByte(')')
	}
	if o.Constraint.Name != "" {
		w.WriteString(" ON CONSTRAINT ")
		writeIdent(w, o.Constraint)
	}
}

func writeUpdate(w *strings.Builder, u Update) {
	w.WriteString("UPDATE ")
	writeTableWithJoins(w, u.Table)
	w.WriteString(" SET ")
	writeList(w, u.Set, ", ", writeAssignment)
	if len(u.From) > 0 {
		w.WriteString(" FROM ")
		writeList(w, u.From, ", ", writeTableWithJoins)
	}
	if u.Where != nil {
		w.WriteString(" WHERE ")
		writeExpr(w, u.Where)
	}
	if len(u.Returning) > 0 {
		w.WriteString(" RETURNING ")
		writeList(w, u.Returning, ", ", writeSelectItem)
	}
}

func writeDelete(w *strings.Builder, d Delete) {
	w.WriteString("DELETE")
	if len(d.Tables) > 0 {
		w.WriteByte(' ')
		writeList(w, d.Tables, ", ", writeObjectName)
	}
	if len(d.From) > 0 {
		w.WriteString(" FROM ")
		writeList(w, d.From, ", ", writeTableWithJoins)
	}
	if len(d.Using) > 0 {
		w.WriteString(" USING ")
		writeList(w, d.Using, ", ", writeTableWithJoins)
	}
	if d.Where != nil {
		w.WriteString(" WHERE ")
		writeExpr(w, d.Where)
	}
	if len(d.Returning) > 0 {
		w.WriteString(" RETURNING ")
		writeList(w, d.Returning, ", ", writeSelectItem)
	}
}

func writeCreateView(w *strings.Builder, c CreateView) {
	w.WriteString("CREATE ")
	if c.OrReplace {
		w.WriteString("OR REPLACE ")
	}
	if c.Temporary {
		w.WriteString("TEMPORARY ")
	}
	if c.Materialized {
		w.WriteString("MATERIALIZED ")
	}
	w.WriteString("VIEW ")
	if c.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	writeObjectName(w, c.Name)
	if len(c.Columns) > 0 {
		w.WriteString(" (")
		writeIdentList(w, c.Columns)
		w.WriteByte(')')
	}
	if len(c.WithOptions) > 0 {
		w.WriteString(" WITH (")
		writeList(w, c.WithOptions, ", ", writeTableOption)
		w.WriteByte(')')
	}
	if c.SecurityType != "" {
		w.WriteString(" SQL SECURITY ")
		w.WriteString(c.SecurityType)
	}
	w.WriteString(" AS ")
	writeQuery(w, c.Query)
	if c.WithCheckOption {
		w.WriteString(" WITH CHECK OPTION")
	}
}

func writeCreateSchema(w *strings.Builder, c CreateSchema) {
	w.WriteString("CREATE SCHEMA ")
	if c.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	writeObjectName(w, c.Name)
	if c.Authorization.Name != "" {
		w.WriteString(" AUTHORIZATION ")
		writeIdent(w, c.Authorization)
	}
}

func writeCreateFunction(w *strings.Builder, c CreateFunction) {
	w.WriteString("CREATE ")
	if c.OrReplace {
		w.WriteString("OR REPLACE ")
	}
	if c.IsProcedure {
		w.WriteString("PROCEDURE ")
	} else {
		w.WriteString("FUNCTION ")
	}
	writeObjectName(w, c.Name)
	w.WriteByte('(')
	writeList(w, c.Params, ", ", writeFunctionParam)
	w.WriteByte(')')
	if c.Returns != nil {
		w.WriteString(" RETURNS ")
		writeDataType(w, c.Returns)
	}
	if c.Language != "" {
		w.WriteString(" LANGUAGE ")
		w.WriteString(c.Language)
	}
	if c.Deterministic {
		w.WriteString(" DETERMINISTIC")
	}
	w.WriteString(" AS ")
	if c.BodyKind == FunctionBodySQL && c.SQLBody != nil {
		writeStatement(w, c.SQLBody)
	} else {
		w.WriteString(c.OpaqueBody)
	}
}

func writeFunctionParam(w *strings.Builder, p FunctionParam) {
	if p.Mode != "" {
		w.WriteString(p.Mode)
		w.WriteByte(' ')
	}
	if p.Name.Name != "" {
		writeIdent(w, p.Name)
		w.WriteByte(' ')
	}
	writeDataType(w, p.Type)
	if p.Default != nil {
		w.WriteString(" DEFAULT ")
		writeExpr(w, p.Default)
	}
}

func writeDrop(w *strings.Builder, d Drop) {
	w.WriteString("DROP ")
	w.WriteString(dropObjectTypeText(d.ObjectType))
	w.WriteByte(' ')
	if d.Concurrently {
		w.WriteString("CONCURRENTLY ")
	}
	if d.IfExists {
		w.WriteString("IF EXISTS ")
	}
	writeList(w, d.Names, ", ", writeObjectName)
	if d.Cascade {
		w.WriteString(" CASCADE")
	}
	if d.Restrict {
		w.WriteString(" RESTRICT")
	}
}

func dropObjectTypeText(t DropObjectType) string {
	switch t {
	case DropView:
		return "VIEW"
	case DropIndex:
		return "INDEX"
	case DropSchema:
		return "SCHEMA"
	case DropSequence:
		return "SEQUENCE"
	case DropFunction:
		return "FUNCTION"
	case DropProcedure:
		return "PROCEDURE"
	case DropDatabase:
		return "DATABASE"
	default:
		return "TABLE"
	}
}

func writeTruncate(w *strings.Builder, t Truncate) {
	w.WriteString("TRUNCATE TABLE ")
	writeList(w, t.Names, ", ", writeObjectName)
	if t.RestartIdentity {
		w.WriteString(" RESTART IDENTITY")
	}
	if t.Cascade {
		w.WriteString(" CASCADE")
	}
}

func writePrivilege(w *strings.Builder, p Privilege) {
	w.WriteString(p.Name)
	if len(p.Columns) > 0 {
		w.WriteByte('(')
		writeIdentList(w, p.Columns)
		w.WriteByte(')')
	}
}

func grantObjectTypeText(t GrantObjectType) string {
	switch t {
	case GrantObjectSchema:
		return "SCHEMA"
	case GrantObjectDatabase:
		return "DATABASE"
	case GrantObjectSequence:
		return "SEQUENCE"
	case GrantObjectFunction:
		return "FUNCTION"
	default:
		return "TABLE"
	}
}

func writeGrant(w *strings.Builder, g Grant) {
	w.WriteString("GRANT ")
	writeList(w, g.Privileges, ", ", writePrivilege)
	w.WriteString(" ON ")
	w.WriteString(grantObjectTypeText(g.ObjectType))
	w.WriteByte(' ')
	writeList(w, g.Objects, ", ", writeObjectName)
	w.WriteString(" TO ")
	writeIdentList(w, g.Grantees)
	if g.WithGrantOption {
		w.WriteString(" WITH GRANT OPTION")
	}
}

func writeRevoke(w *strings.Builder, r Revoke) {
	w.WriteString("REVOKE ")
	if r.GrantOptionFor {
		w.WriteString("GRANT OPTION FOR ")
	}
	writeList(w, r.Privileges, ", ", writePrivilege)
	w.WriteString(" ON ")
	w.WriteString(grantObjectTypeText(r.ObjectType))
	w.WriteByte(' ')
	writeList(w, r.Objects, ", ", writeObjectName)
	w.WriteString(" FROM ")
	writeIdentList(w, r.Grantees)
	if r.Cascade {
		w.WriteString(" CASCADE")
	}
}

func writeStartTransaction(w *strings.Builder, s StartTransaction) {
	w.WriteString("START TRANSACTION")
	for i, m := range s.Modes {
		if i == 0 {
			w.WriteByte(' ')
		} else {
			w.WriteString(", ")
		}
		if m.IsolationLevel != "" {
			w.WriteString("ISOLATION LEVEL ")
			w.WriteString(m.IsolationLevel)
		} else if m.HasReadOnly {
			if m.ReadOnly {
				w.WriteString("READ ONLY")
			} else {
				w.WriteString("READ WRITE")
			}
		}
	}
}

func writeExplain(w *strings.Builder, e Explain) {
	w.WriteString("EXPLAIN ")
	if e.Analyze {
		w.WriteString("ANALYZE ")
	}
	if e.Verbose {
		w.WriteString("VERBOSE ")
	}
	switch e.Format {
	case ExplainFormatJSON:
		w.WriteString("FORMAT JSON ")
	case ExplainFormatXML:
		w.WriteString("FORMAT XML ")
	case ExplainFormatYAML:
		w.WriteString("FORMAT YAML ")
	case ExplainFormatText:
		w.WriteString("FORMAT TEXT ")
	case ExplainFormatTraditional:
		w.WriteString("FORMAT TRADITIONAL ")
	}
	writeStatement(w, e.Statement)
}

func writeCopy(w *strings.Builder, c Copy) {
	w.WriteString("COPY ")
	if c.Target.Query != nil {
		w.WriteByte('(')
		writeQuery(w, c.Target.Query)
		w.WriteByte(')')
	} else {
		writeObjectName(w, c.Target.Table)
		if len(c.Target.Columns) > 0 {
			w.WriteByte('(')
			writeIdentList(w, c.Target.Columns)
			w.WriteByte(')')
		}
	}
	if c.Direction == CopyTo {
		w.WriteString(" TO ")
	} else {
		w.WriteString(" FROM ")
	}
	w.WriteString(c.Source)
	if len(c.Options) > 0 {
		w.WriteString(" WITH (")
		writeList(w, c.Options, ", ", writeTableOption)
		w.WriteByte(')')
	}
}

func writeDeclare(w *strings.Builder, d Declare) {
	w.WriteString("DECLARE ")
	writeIdent(w, d.Name)
	if d.CursorFor != nil {
		w.WriteString(" CURSOR FOR ")
		writeQuery(w, d.CursorFor)
		return
	}
	w.WriteByte(' ')
	writeDataType(w, d.Type)
	if d.Default != nil {
		w.WriteString(" := ")
		writeExpr(w, d.Default)
	}
}

func writeFetch(w *strings.Builder, f Fetch) {
	w.WriteString("FETCH ")
	if f.Direction != "" {
		w.WriteString(f.Direction)
		w.WriteByte(' ')
	}
	w.WriteString("FROM ")
	writeIdent(w, f.Cursor)
	if len(f.Into) > 0 {
		w.WriteString(" INTO ")
		writeIdentList(w, f.Into)
	}
}

func writePrepare(w *strings.Builder, p Prepare) {
	w.WriteString("PREPARE ")
	writeIdent(w, p.Name)
	if len(p.ParamTypes) > 0 {
		w.WriteByte('(')
		writeList(w, p.ParamTypes, ", ", writeDataType)
		w.WriteByte(')')
	}
	w.WriteString(" AS ")
	writeStatement(w, p.Statement)
}

func writeExecute(w *strings.Builder, e Execute) {
	w.WriteString("EXECUTE ")
	writeIdent(w, e.Name)
	if len(e.Args) > 0 {
		w.WriteByte('(')
		writeList(w, e.Args, ", ", writeExpr)
		w.WriteByte(')')
	}
}

func writeSetStatement(w *strings.Builder, s SetStatement) {
	w.WriteString("SET ")
	switch s.Scope {
	case SetScopeSession:
		w.WriteString("SESSION ")
	case SetScopeLocal:
		w.WriteString("LOCAL ")
	case SetScopeGlobal:
		w.WriteString("GLOBAL ")
	}
	writeObjectName(w, s.Name)
	w.WriteString(" = ")
	writeList(w, s.Values, ", ", writeExpr)
}

func writeIfStatement(w *strings.Builder, i IfStatement) {
	w.WriteString("IF ")
	writeExpr(w, i.Condition)
	w.WriteString(" THEN ")
	writeStatementBody(w, i.Then)
	for _, ei := range i.ElseIfs {
		w.WriteString(" ELSIF ")
		writeExpr(w, ei.Condition)
		w.WriteString(" THEN ")
		writeStatementBody(w, ei.Body)
	}
	if len(i.Else) > 0 {
		w.WriteString(" ELSE ")
		writeStatementBody(w, i.Else)
	}
	w.WriteString(" END IF")
}

func writeStatementBody(w *strings.Builder, stmts []Statement) {
	for i, s := range stmts {
		if i > 0 {
			w.WriteString("; ")
		}
		writeStatement(w, s)
	}
	w.WriteByte(';')
}
