package ast

import "strings"

func writeQuery(w *strings.Builder, q *Query) {
	if q == nil {
		return
	}
	if q.With != nil {
		writeWith(w, *q.With)
		w.WriteByte(' ')
	}
	writeSetExpr(w, q.Body)
	if len(q.OrderBy) > 0 {
		w.WriteString(" ORDER BY ")
		writeOrderByList(w, q.OrderBy)
	}
	if q.Limit != nil {
		w.WriteString(" LIMIT ")
		writeExpr(w, q.Limit)
	}
	if q.Offset != nil {
		w.WriteString(" OFFSET ")
		writeExpr(w, q.Offset)
		if q.OffsetRows != "" {
			w.WriteByte(' ')
			w.WriteString(q.OffsetRows)
		}
	}
	if q.FetchFirst != nil {
		w.WriteString(" FETCH FIRST ")
		writeExpr(w, q.FetchFirst)
		w.WriteString(" ROWS ")
		if q.FetchWithTies {
			w.WriteString("WITH TIES")
		} else {
			w.WriteString("ONLY")
		}
	}
	for _, l := range q.Locking {
		w.WriteByte(' ')
		writeLockClause(w, l)
	}
}

func queryToSQL(q *Query) string {
	var w strings.Builder
	writeQuery(&w, q)
	return w.String()
}

func writeWith(w *strings.Builder, wc With) {
	w.WriteString("WITH ")
	if wc.Recursive {
		w.WriteString("RECURSIVE ")
	}
	writeList(w, wc.Ctes, ", ", writeCte)
}

func writeCte(w *strings.Builder, c Cte) {
	writeIdent(w, c.Name)
	if len(c.Columns) > 0 {
		w.WriteByte('(')
		writeIdentList(w, c.Columns)
		w.WriteByte(')')
	}
	w.WriteString(" AS ")
	switch c.Materialized {
	case CteMaterializedOn:
		w.WriteString("MATERIALIZED ")
	case CteMaterializedOff:
		w.WriteString("NOT MATERIALIZED ")
	}
	w.WriteByte('(')
	writeQuery(w, c.Query)
	w.WriteByte(')')
}

func writeOrderByList(w *strings.Builder, items []OrderByExpr) {
	writeList(w, items, ", ", writeOrderByExpr)
}

func writeOrderByExpr(w *strings.Builder, o OrderByExpr) {
	writeExpr(w, o.Expr)
	if o.HasDesc {
		if o.Desc {
			w.WriteString(" DESC")
		} else {
			w.WriteString(" ASC")
		}
	}
	if o.NullsFirst != nil {
		if *o.NullsFirst {
			w.WriteString(" NULLS FIRST")
		} else {
			w.WriteString(" NULLS LAST")
		}
	}
}

func writeLockClause(w *strings.Builder, l LockClause) {
	switch l.Strength {
	case LockForNoKeyUpdate:
		w.WriteString("FOR NO KEY UPDATE")
	case LockForShare:
		w.WriteString("FOR SHARE")
	case LockForKeyShare:
		w.WriteString("FOR KEY SHARE")
	default:
		w.WriteString("FOR UPDATE")
	}
	if len(l.Of) > 0 {
		w.WriteString(" OF ")
		writeList(w, l.Of, ", ", writeObjectName)
	}
	switch l.Wait {
	case LockWaitNoWait:
		w.WriteString(" NOWAIT")
	case LockWaitSkipLocked:
		w.WriteString(" SKIP LOCKED")
	}
}

func writeSetExpr(w *strings.Builder, s SetExpr) {
	switch v := s.(type) {
	case nil:
		return
	case SelectSetExpr:
		writeSelect(w, v.Select)
	case SetOperationExpr:
		writeSetExpr(w, v.Left)
		w.WriteByte(' ')
		w.WriteString(v.Op.Text())
		if q := v.Quantifier.Text(); q != "" {
			w.WriteByte(' ')
			w.WriteString(q)
		}
		w.WriteByte(' ')
		writeSetExpr(w, v.Right)
	case ValuesSetExpr:
		w.WriteString("VALUES ")
		writeList(w, v.Rows, ", ", func(w *strings.Builder, t Tuple) { writeExpr(w, t) })
	case NestedSetExpr:
		w.WriteByte('(')
		writeSetExpr(w, v.Expr)
		w.WriteByte(')')
	default:
		panic("ast: writeSetExpr: unhandled set expression type")
	}
}

func writeSelect(w *strings.Builder, s *Select) {
	w.WriteString("SELECT ")
	if s.Distinct {
		w.WriteString("DISTINCT ")
	}
	if len(s.DistinctOn) > 0 {
		w.WriteString("DISTINCT ON (")
		writeList(w, s.DistinctOn, ", ", writeExpr)
		w.WriteString(") ")
	}
	if q := s.Quantifier.Text(); q != "" && !s.Distinct {
		w.WriteString(q)
		w.WriteByte(' ')
	}
	if s.Top != nil {
		w.WriteString("TOP ")
		writeExpr(w, s.Top)
		if s.TopPercent {
			w.WriteString(" PERCENT")
		}
		w.WriteByte(' ')
	}
	writeList(w, s.Projection, ", ", writeSelectItem)
	if s.Into != nil {
		w.WriteString(" INTO ")
		writeObjectName(w, *s.Into)
	}
	if len(s.From) > 0 {
		w.WriteString(" FROM ")
		writeList(w, s.From, ", ", writeTableWithJoins)
	}
	if s.Where != nil {
		w.WriteString(" WHERE ")
		writeExpr(w, s.Where)
	}
	if len(s.GroupBy) > 0 || s.GroupByKind == GroupByAll {
		w.WriteString(" GROUP BY ")
		if s.GroupByKind == GroupByAll {
			w.WriteString("ALL")
		} else {
			writeList(w, s.GroupBy, ", ", writeExpr)
		}
	}
	if s.Having != nil {
		w.WriteString(" HAVING ")
		writeExpr(w, s.Having)
	}
	if len(s.Windows) > 0 {
		w.WriteString(" WINDOW ")
		writeList(w, s.Windows, ", ", writeNamedWindow)
	}
	if s.QualifyClause != nil {
		w.WriteString(" QUALIFY ")
		writeExpr(w, s.QualifyClause)
	}
}

func writeSelectItem(w *strings.Builder, s SelectItem) {
	writeExpr(w, s.Expr)
	if s.Alias.Name != "" {
		w.WriteString(" AS ")
		writeIdent(w, s.Alias)
	}
}

func writeNamedWindow(w *strings.Builder, spec WindowSpec) {
	writeIdent(w, spec.Name)
	w.WriteString(" AS (")
	writeWindowSpecBody(w, spec)
	w.WriteByte(')')
}

func writeWindowSpecBody(w *strings.Builder, spec WindowSpec) {
	first := true
	sp := func() {
		if !first {
			w.WriteByte(' ')
		}
		first = false
	}
	if spec.ExistingName.Name != "" {
		sp()
		writeIdent(w, spec.ExistingName)
	}
	if len(spec.PartitionBy) > 0 {
		sp()
		w.WriteString("PARTITION BY ")
		writeList(w, spec.PartitionBy, ", ", writeExpr)
	}
	if len(spec.OrderBy) > 0 {
		sp()
		w.WriteString("ORDER BY ")
		writeOrderByList(w, spec.OrderBy)
	}
	if spec.Frame != nil {
		sp()
		writeWindowFrame(w, *spec.Frame)
	}
}

func writeWindowFrame(w *strings.Builder, f WindowFrame) {
	w.WriteString(f.Unit.Text())
	w.WriteByte(' ')
	if f.End != nil {
		w.WriteString("BETWEEN ")
		writeWindowFrameBound(w, f.Start)
		w.WriteString(" AND ")
		writeWindowFrameBound(w, *f.End)
	} else {
		writeWindowFrameBound(w, f.Start)
	}
	if f.Exclusion != "" {
		w.WriteString(" EXCLUDE ")
		w.WriteString(f.Exclusion)
	}
}

func writeWindowFrameBound(w *strings.Builder, b WindowFrameBound) {
	switch b.Kind {
	case BoundCurrentRow:
		w.WriteString("CURRENT ROW")
	case BoundUnboundedPreceding:
		w.WriteString("UNBOUNDED PRECEDING")
	case BoundUnboundedFollowing:
		w.WriteString("UNBOUNDED FOLLOWING")
	case BoundPreceding:
		writeExpr(w, b.Value)
		w.WriteString(" PRECEDING")
	case BoundFollowing:
		writeExpr(w, b.Value)
		w.WriteString(" FOLLOWING")
	}
}

func writeTableAlias(w *strings.Builder, a *TableAlias) {
	if a == nil || a.isZero() {
		return
	}
	w.WriteString(" AS ")
	writeIdent(w, a.Name)
	if len(a.Columns) > 0 {
		w.WriteByte('(')
		writeIdentList(w, a.Columns)
		w.WriteByte(')')
	}
}

func writeTableWithJoins(w *strings.Builder, t TableWithJoins) {
	writeTableFactor(w, t.Relation)
	for _, j := range t.Joins {
		w.WriteByte(' ')
		writeJoin(w, j)
	}
}

func writeJoin(w *strings.Builder, j Join) {
	w.WriteString(joinOperatorText(j.Operator))
	w.WriteByte(' ')
	writeTableFactor(w, j.Relation)
	switch j.Constraint.Kind {
	case JoinConstraintOn:
		w.WriteString(" ON ")
		writeExpr(w, j.Constraint.On)
	case JoinConstraintUsing:
		w.WriteString(" USING (")
		writeIdentList(w, j.Constraint.Using)
		w.WriteByte(')')
	}
	if j.MatchCondition != nil {
		w.WriteString(" MATCH_CONDITION(")
		writeExpr(w, j.MatchCondition)
		w.WriteByte(')')
	}
}

func joinOperatorText(k JoinOperatorKind) string {
	switch k {
	case JoinInner:
		return "JOIN"
	case JoinLeft:
		return "LEFT JOIN"
	case JoinLeftOuter:
		return "LEFT OUTER JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinRightOuter:
		return "RIGHT OUTER JOIN"
	case JoinFull:
		return "FULL JOIN"
	case JoinFullOuter:
		return "FULL OUTER JOIN"
	case JoinCross:
		return "CROSS JOIN"
	case JoinLeftSemi:
		return "LEFT SEMI JOIN"
	case JoinRightSemi:
		return "RIGHT SEMI JOIN"
	case JoinLeftAnti:
		return "LEFT ANTI JOIN"
	case JoinRightAnti:
		return "RIGHT ANTI JOIN"
	case JoinCrossApply:
		return "CROSS APPLY"
	case JoinOuterApply:
		return "OUTER APPLY"
	case JoinAsOf:
		return "ASOF JOIN"
	default:
		return "JOIN"
	}
}

func writeTableFactor(w *strings.Builder, t TableFactor) {
	switch v := t.(type) {
	case nil:
		return
	case Table:
		writeTable(w, v)
	case Derived:
		if v.Lateral {
			w.WriteString("LATERAL ")
		}
		w.WriteByte('(')
		writeQuery(w, v.Query)
		w.WriteByte(')')
		writeTableAlias(w, v.Alias)
	case TableFunction:
		writeObjectName(w, v.Name)
		w.WriteByte('(')
		writeList(w, v.Args, ", ", writeFunctionArg)
		w.WriteByte(')')
		writeTableAlias(w, v.Alias)
	case UnNest:
		w.WriteString("UNNEST(")
		writeList(w, v.Exprs, ", ", writeExpr)
		w.WriteByte(')')
		writeTableAlias(w, v.Alias)
		if v.WithOffset {
			w.WriteString(" WITH OFFSET")
			if v.OffsetAlias.Name != "" {
				w.WriteString(" AS ")
				writeIdent(w, v.OffsetAlias)
			}
		}
	case NestedJoin:
		w.WriteByte('(')
		writeTableWithJoins(w, v.TableWithJoins)
		w.WriteByte(')')
		writeTableAlias(w, v.Alias)
	case Pivot:
		writeTableFactor(w, v.Table)
		w.WriteString(" PIVOT (")
		writeList(w, v.Aggregates, ", ", writeFunctionArg)
		w.WriteString(" FOR ")
		writeObjectName(w, v.PivotColumn)
		w.WriteString(" IN (")
		writeList(w, v.Values, ", ", writePivotValue)
		w.WriteString("))")
		writeTableAlias(w, v.Alias)
	case Unpivot:
		writeTableFactor(w, v.Table)
		w.WriteString(" UNPIVOT (")
		writeIdent(w, v.ValueName)
		w.WriteString(" FOR ")
		writeIdent(w, v.NameColumn)
		w.WriteString(" IN (")
		writeIdentList(w, v.Columns)
		w.WriteString("))")
		writeTableAlias(w, v.Alias)
	case JsonTable:
		writeJsonTable(w, v)
	case MatchRecognize:
		writeMatchRecognize(w, v)
	default:
		panic("ast: writeTableFactor: unhandled table factor type")
	}
}

func writeTable(w *strings.Builder, t Table) {
	writeObjectName(w, t.Name)
	if len(t.Args) > 0 {
		w.WriteByte('(')
		writeList(w, t.Args, ", ", writeFunctionArg)
		w.WriteByte(')')
	}
	writeTableAlias(w, t.Alias)
	for _, h := range t.WithHints {
		w.WriteByte(' ')
		w.WriteString(h)
	}
	if len(t.Partitions) > 0 {
		w.WriteString(" PARTITION (")
		writeIdentList(w, t.Partitions)
		w.WriteByte(')')
	}
}

func writePivotValue(w *strings.Builder, v PivotValue) {
	writeExpr(w, v.Value)
	if v.Alias.Name != "" {
		w.WriteString(" AS ")
		writeIdent(w, v.Alias)
	}
}

func writeJsonTable(w *strings.Builder, j JsonTable) {
	w.WriteString("JSON_TABLE(")
	writeExpr(w, j.Expr)
	w.WriteString(", ")
	w.WriteString(quoteStringLiteral(j.Path))
	w.WriteString(" COLUMNS (")
	writeList(w, j.Columns, ", ", writeJsonTableColumn)
	w.WriteString("))")
	writeTableAlias(w, j.Alias)
}

func writeJsonTableColumn(w *strings.Builder, c JsonTableColumn) {
	writeIdent(w, c.Name)
	w.WriteByte(' ')
	writeDataType(w, c.Type)
	w.WriteString(" PATH ")
	w.WriteString(quoteStringLiteral(c.Path))
}

func writeMatchRecognize(w *strings.Builder, m MatchRecognize) {
	writeTableFactor(w, m.Table)
	w.WriteString(" MATCH_RECOGNIZE (")
	first := true
	sp := func() {
		if !first {
			w.WriteByte(' ')
		}
		first = false
	}
	if len(m.PartitionBy) > 0 {
		sp()
		w.WriteString("PARTITION BY ")
		writeList(w, m.PartitionBy, ", ", writeExpr)
	}
	if len(m.OrderBy) > 0 {
		sp()
		w.WriteString("ORDER BY ")
		writeOrderByList(w, m.OrderBy)
	}
	if len(m.Measures) > 0 {
		sp()
		w.WriteString("MEASURES ")
		writeList(w, m.Measures, ", ", writeSelectItem)
	}
	if m.Pattern != "" {
		sp()
		w.WriteString("PATTERN (")
		w.WriteString(m.Pattern)
		w.WriteByte(')')
	}
	if len(m.Define) > 0 {
		sp()
		w.WriteString("DEFINE ")
		writeList(w, m.Define, ", ", writeSelectItem)
	}
	w.WriteByte(')')
	writeTableAlias(w, m.Alias)
}
