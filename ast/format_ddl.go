package ast

import "strings"

func writeCreateTable(w *strings.Builder, c CreateTable) {
	w.WriteString("CREATE ")
	if c.Temporary {
		w.WriteString("TEMPORARY ")
	}
	if c.Unlogged {
		w.WriteString("UNLOGGED ")
	}
	if c.External {
		w.WriteString("EXTERNAL ")
	}
	w.WriteString("TABLE ")
	if c.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	writeObjectName(w, c.Name)
	if c.Like != nil {
		w.WriteString(" (LIKE ")
		writeObjectName(w, *c.Like)
		w.WriteByte(')')
	} else if len(c.Columns) > 0 || len(c.Constraints) > 0 {
		w.WriteString(" (")
		first := true
		for _, col := range c.Columns {
			if !first {
				w.WriteString(", ")
			}
			first = false
			writeColumnDef(w, col)
		}
		for _, cons := range c.Constraints {
			if !first {
				w.WriteString(", ")
			}
			first = false
			writeTableConstraint(w, cons)
		}
		w.WriteByte(')')
	}
	if len(c.InheritsFrom) > 0 {
		w.WriteString(" INHERITS (")
		writeList(w, c.InheritsFrom, ", ", writeObjectName)
		w.WriteByte(')')
	}
	if c.Engine != "" {
		w.WriteString(" ENGINE = ")
		w.WriteString(c.Engine)
	}
	if c.PartitionBy != nil {
		w.WriteString(" PARTITION BY ")
		if c.PartitionBy.Kind != "" {
			w.WriteString(c.PartitionBy.Kind)
			w.WriteByte(' ')
		}
		w.WriteByte('(')
		writeList(w, c.PartitionBy.Exprs, ", ", writeExpr)
		w.WriteByte(')')
	}
	if len(c.ClusterBy) > 0 {
		w.WriteString(" CLUSTER BY ")
		writeList(w, c.ClusterBy, ", ", writeExpr)
	}
	if len(c.OrderByKeys) > 0 {
		w.WriteString(" ORDER BY (")
		writeList(w, c.OrderByKeys, ", ", writeExpr)
		w.WriteByte(')')
	}
	if len(c.WithOptions) > 0 {
		w.WriteString(" WITH (")
		writeList(w, c.WithOptions, ", ", writeTableOption)
		w.WriteByte(')')
	}
	if c.Charset != "" {
		w.WriteString(" CHARACTER SET ")
		w.WriteString(c.Charset)
	}
	if c.Collation != "" {
		w.WriteString(" COLLATE ")
		w.WriteString(c.Collation)
	}
	if c.Comment != "" {
		w.WriteString(" COMMENT ")
		w.WriteString(quoteStringLiteral(c.Comment))
	}
	if c.StoredAs != "" {
		w.WriteString(" STORED AS ")
		w.WriteString(c.StoredAs)
	}
	if c.Location != "" {
		w.WriteString(" LOCATION ")
		w.WriteString(quoteStringLiteral(c.Location))
	}
	switch c.OnCommit {
	case OnCommitPreserveRows:
		w.WriteString(" ON COMMIT PRESERVE ROWS")
	case OnCommitDeleteRows:
		w.WriteString(" ON COMMIT DELETE ROWS")
	case OnCommitDrop:
		w.WriteString(" ON COMMIT DROP")
	}
	if c.AsQuery != nil {
		w.WriteString(" AS ")
		writeQuery(w, c.AsQuery)
	}
}

func writeTableOption(w *strings.Builder, o TableOption) {
	w.WriteString(o.Name)
	if o.Value != nil {
		w.WriteString(" = ")
		writeExpr(w, o.Value)
	}
}

func writeColumnDef(w *strings.Builder, c ColumnDef) {
	writeIdent(w, c.Name)
	w.WriteByte(' ')
	writeDataType(w, c.Type)
	for _, o := range c.Options {
		w.WriteByte(' ')
		writeColumnOption(w, o)
	}
}

func writeColumnOption(w *strings.Builder, o ColumnOption) {
	if o.Name.Name != "" {
		w.WriteString("CONSTRAINT ")
		writeIdent(w, o.Name)
		w.WriteByte(' ')
	}
	switch o.Kind {
	case ColumnOptionNotNull:
		w.WriteString("NOT NULL")
	case ColumnOptionNull:
		w.WriteString("NULL")
	case ColumnOptionDefault:
		w.WriteString("DEFAULT ")
		writeExpr(w, o.Expr)
	case ColumnOptionUnique:
		w.WriteString("UNIQUE")
	case ColumnOptionPrimaryKey:
		w.WriteString("PRIMARY KEY")
	case ColumnOptionCheck:
		w.WriteString("CHECK (")
		writeExpr(w, o.Expr)
		w.WriteByte(')')
	case ColumnOptionForeignKey:
		writeForeignKeyRef(w, *o.References)
	case ColumnOptionCollate:
		w.WriteString("COLLATE ")
		writeObjectName(w, o.Collation)
	case ColumnOptionGenerated:
		if o.Generated == GeneratedAlways {
			w.WriteString("GENERATED ALWAYS AS (")
		} else {
			w.WriteString("GENERATED BY DEFAULT AS (")
		}
		writeExpr(w, o.Expr)
		w.WriteByte(')')
		if o.Stored {
			w.WriteString(" STORED")
		} else {
			w.WriteString(" VIRTUAL")
		}
	case ColumnOptionComment:
		w.WriteString("COMMENT ")
		w.WriteString(quoteStringLiteral(o.Comment))
	case ColumnOptionCharacterSet:
		w.WriteString("CHARACTER SET ")
		w.WriteString(o.CharacterSet)
	case ColumnOptionAutoIncrement:
		w.WriteString("AUTO_INCREMENT")
	case ColumnOptionOnUpdate:
		w.WriteString("ON UPDATE ")
		writeExpr(w, o.Expr)
	}
}

func writeForeignKeyRef(w *strings.Builder, f ForeignKeyRef) {
	w.WriteString("REFERENCES ")
	writeObjectName(w, f.Table)
	if len(f.Columns) > 0 {
		w.WriteByte('(')
		writeIdentList(w, f.Columns)
		w.WriteByte(')')
	}
	if f.OnDelete != ReferentialActionNone {
		w.WriteString(" ON DELETE ")
		w.WriteString(f.OnDelete.Text())
	}
	if f.OnUpdate != ReferentialActionNone {
		w.WriteString(" ON UPDATE ")
		w.WriteString(f.OnUpdate.Text())
	}
}

func writeTableConstraint(w *strings.Builder, t TableConstraint) {
	if t.Name.Name != "" {
		w.WriteString("CONSTRAINT ")
		writeIdent(w, t.Name)
		w.WriteByte(' ')
	}
	switch t.Kind {
	case TableConstraintPrimaryKey:
		w.WriteString("PRIMARY KEY (")
		writeIdentList(w, t.Columns)
		w.WriteByte(')')
	case TableConstraintUnique:
		w.WriteString("UNIQUE (")
		writeIdentList(w, t.Columns)
		w.WriteByte(')')
	case TableConstraintForeignKey:
		w.WriteString("FOREIGN KEY (")
		writeIdentList(w, t.Columns)
		w.WriteString(") ")
		writeForeignKeyRef(w, *t.References)
	case TableConstraintCheck:
		w.WriteString("CHECK (")
		writeExpr(w, t.Check)
		w.WriteByte(')')
	case TableConstraintIndex:
		w.WriteString("KEY ")
		writeIdent(w, t.IndexName)
		if t.IndexType != "" {
			w.WriteString(" USING ")
			w.WriteString(t.IndexType)
		}
		w.WriteString(" (")
		writeIdentList(w, t.Columns)
		w.WriteByte(')')
	}
}

func writeCreateIndex(w *strings.Builder, c CreateIndex) {
	w.WriteString("CREATE ")
	if c.Unique {
		w.WriteString("UNIQUE ")
	}
	w.WriteString("INDEX ")
	if c.Concurrently {
		w.WriteString("CONCURRENTLY ")
	}
	if c.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	writeIdent(w, c.Name)
	w.WriteString(" ON ")
	writeObjectName(w, c.Table)
	if c.Using != "" {
		w.WriteString(" USING ")
		w.WriteString(c.Using)
	}
	w.WriteString(" (")
	writeList(w, c.Columns, ", ", writeIndexColumn)
	w.WriteByte(')')
	if len(c.Include) > 0 {
		w.WriteString(" INCLUDE (")
		writeIdentList(w, c.Include)
		w.WriteByte(')')
	}
	if c.Where != nil {
		w.WriteString(" WHERE ")
		writeExpr(w, c.Where)
	}
}

func writeIndexColumn(w *strings.Builder, c IndexColumn) {
	writeExpr(w, c.Expr)
	if c.OpClass != "" {
		w.WriteByte(' ')
		w.WriteString(c.OpClass)
	}
	if c.HasDesc {
		if c.Desc {
			w.WriteString(" DESC")
		} else {
			w.WriteString(" ASC")
		}
	}
}

func writeCreateSequence(w *strings.Builder, c CreateSequence) {
	w.WriteString("CREATE ")
	if c.Temporary {
		w.WriteString("TEMPORARY ")
	}
	w.WriteString("SEQUENCE ")
	if c.IfNotExists {
		w.WriteString("IF NOT EXISTS ")
	}
	writeObjectName(w, c.Name)
	if c.As != nil {
		w.WriteString(" AS ")
		writeDataType(w, c.As)
	}
	for _, o := range c.Options {
		w.WriteByte(' ')
		writeSequenceOption(w, o)
	}
}

func writeSequenceOption(w *strings.Builder, o SequenceOption) {
	switch o.Kind {
	case SeqIncrementBy:
		w.WriteString("INCREMENT BY ")
		writeExpr(w, o.Value)
	case SeqMinValue:
		w.WriteString("MINVALUE ")
		writeExpr(w, o.Value)
	case SeqMaxValue:
		w.WriteString("MAXVALUE ")
		writeExpr(w, o.Value)
	case SeqStartWith:
		w.WriteString("START WITH ")
		writeExpr(w, o.Value)
	case SeqCache:
		w.WriteString("CACHE ")
		writeExpr(w, o.Value)
	case SeqCycle:
		w.WriteString("CYCLE")
	case SeqNoMinValue:
		w.WriteString("NO MINVALUE")
	case SeqNoMaxValue:
		w.WriteString("NO MAXVALUE")
	case SeqNoCycle:
		w.WriteString("NO CYCLE")
	case SeqOwnedBy:
		w.WriteString("OWNED BY ")
		writeObjectName(w, o.Owner)
	}
}

func writeAlterTable(w *strings.Builder, a AlterTable) {
	w.WriteString("ALTER TABLE ")
	if a.IfExists {
		w.WriteString("IF EXISTS ")
	}
	writeObjectName(w, a.Name)
	w.WriteByte(' ')
	writeList(w, a.Actions, ", ", writeAlterTableAction)
}

func writeAlterTableAction(w *strings.Builder, a AlterTableAction) {
	switch a.Kind {
	case AlterAddColumn:
		w.WriteString("ADD COLUMN ")
		if a.IfNotExists {
			w.WriteString("IF NOT EXISTS ")
		}
		writeColumnDef(w, a.Column)
	case AlterDropColumn:
		w.WriteString("DROP COLUMN ")
		if a.IfExists {
			w.WriteString("IF EXISTS ")
		}
		writeIdent(w, a.ColumnName)
		if a.Cascade {
			w.WriteString(" CASCADE")
		}
	case AlterAlterColumn:
		w.WriteString("ALTER COLUMN ")
		writeIdent(w, a.ColumnName)
		w.WriteByte(' ')
		writeAlterColumnOp(w, a)
	case AlterRenameColumn:
		w.WriteString("RENAME COLUMN ")
		writeIdent(w, a.ColumnName)
		w.WriteString(" TO ")
		writeIdent(w, a.NewColumnName)
	case AlterRenameTable:
		w.WriteString("RENAME TO ")
		writeObjectName(w, a.NewTableName)
	case AlterAddConstraint:
		w.WriteString("ADD ")
		writeTableConstraint(w, a.Constraint)
	case AlterDropConstraint:
		w.WriteString("DROP CONSTRAINT ")
		if a.IfExists {
			w.WriteString("IF EXISTS ")
		}
		writeIdent(w, a.ConstraintName)
	case AlterRenameConstraint:
		w.WriteString("RENAME CONSTRAINT ")
		writeIdent(w, a.ConstraintName)
		w.WriteString(" TO ")
		writeIdent(w, a.NewConstraintName)
	case AlterAddPrimaryKey:
		w.WriteString("ADD PRIMARY KEY (")
		writeIdent(w, a.ColumnName)
		w.WriteByte(')')
	case AlterDropPrimaryKey:
		w.WriteString("DROP PRIMARY KEY")
	case AlterEngine:
		w.WriteString("ENGINE = ")
		w.WriteString(a.Engine)
	case AlterOwner:
		w.WriteString("OWNER TO ")
		writeIdent(w, a.Owner)
	}
}

func writeAlterColumnOp(w *strings.Builder, a AlterTableAction) {
	switch a.ColumnOp {
	case AlterColumnSetType:
		w.WriteString("TYPE ")
		writeDataType(w, a.NewType)
	case AlterColumnSetDefault:
		w.WriteString("SET DEFAULT ")
		writeExpr(w, a.DefaultExpr)
	case AlterColumnDropDefault:
		w.WriteString("DROP DEFAULT")
	case AlterColumnSetNotNull:
		w.WriteString("SET NOT NULL")
	case AlterColumnDropNotNull:
		w.WriteString("DROP NOT NULL")
	}
}

func writeMerge(w *strings.Builder, m Merge) {
	w.WriteString("MERGE INTO ")
	writeObjectName(w, m.Target)
	if m.TargetAlias.Name != "" {
		w.WriteString(" AS ")
		writeIdent(w, m.TargetAlias)
	}
	w.WriteString(" USING ")
	writeTableFactor(w, m.Source)
	if m.SourceAlias.Name != "" {
		w.WriteString(" AS ")
		writeIdent(w, m.SourceAlias)
	}
	w.WriteString(" ON ")
	writeExpr(w, m.On)
	for _, c := range m.Clauses {
		w.WriteByte(' ')
		writeMergeClause(w, c)
	}
}

func writeMergeClause(w *strings.Builder, c MergeClause) {
	switch c.Kind {
	case MergeWhenMatched:
		w.WriteString("WHEN MATCHED")
	case MergeWhenNotMatched:
		w.WriteString("WHEN NOT MATCHED")
	case MergeWhenNotMatchedBySource:
		w.WriteString("WHEN NOT MATCHED BY SOURCE")
	}
	if c.Condition != nil {
		w.WriteString(" AND ")
		writeExpr(w, c.Condition)
	}
	w.WriteString(" THEN ")
	switch c.Action {
	case MergeActionUpdate:
		w.WriteString("UPDATE SET ")
		writeList(w, c.Assignments, ", ", writeAssignment)
	case MergeActionDelete:
		w.WriteString("DELETE")
	case MergeActionInsert:
		w.WriteString("INSERT")
		if len(c.InsertColumns) > 0 {
			w.WriteString(" (")
			writeIdentList(w, c.InsertColumns)
			w.WriteByte(')')
		}
		if c.InsertIsDefaultValues {
			w.WriteString(" DEFAULT VALUES")
		} else {
			w.WriteString(" VALUES (")
			writeList(w, c.InsertValues, ", ", writeExpr)
			w.WriteByte(')')
		}
	}
}

func writeAssignment(w *strings.Builder, a Assignment) {
	writeExpr(w, a.Target)
	w.WriteString(" = ")
	writeExpr(w, a.Value)
}
