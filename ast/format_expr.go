package ast

import (
	"strconv"
	"strings"
)

func exprSQL(e Expression) string {
	var w strings.Builder
	writeExpr(&w, e)
	return w.String()
}

func negWord(neg bool) string {
	if neg {
		return "NOT "
	}
	return ""
}

func writeExpr(w *strings.Builder, e Expression) {
	switch v := e.(type) {
	case nil:
		return
	case NumberLiteral:
		w.WriteString(v.Raw)
	case StringLiteral:
		w.WriteString(quoteStringLiteral(v.Value))
	case NationalStringLiteral:
		w.WriteByte('N')
		w.WriteString(quoteStringLiteral(v.Value))
	case HexStringLiteral:
		w.WriteByte('X')
		w.WriteString(quoteStringLiteral(v.Value))
	case EscapedStringLiteral:
		w.WriteByte('E')
		w.WriteString(quoteStringLiteral(v.Value))
	case BooleanLiteral:
		if v.Value {
			w.WriteString("TRUE")
		} else {
			w.WriteString("FALSE")
		}
	case NullLiteral:
		w.WriteString("NULL")
	case Placeholder:
		w.WriteString(v.Name)
	case TypedString:
		writeDataType(w, v.Type)
		w.WriteByte(' ')
		w.WriteString(quoteStringLiteral(v.Value))
	case IdentExpr:
		writeIdent(w, v.Ident)
	case CompoundIdentifier:
		writeList(w, v.Idents, ".", func(w *strings.Builder, id Ident) { writeIdent(w, id) })
	case Wildcard:
		w.WriteByte('*')
	case QualifiedWildcard:
		for _, id := range v.Qualifier {
			writeIdent(w, id)
			w.WriteByte('.')
		}
		w.WriteByte('*')
	case BinaryOp:
		writeExpr(w, v.Left)
		w.WriteByte(' ')
		w.WriteString(v.Text())
		w.WriteByte(' ')
		writeExpr(w, v.Right)
	case UnaryOp:
		w.WriteString(v.Op.Text())
		if v.Op == UnaryNot {
			w.WriteByte(' ')
		}
		writeExpr(w, v.Expr)
	case Nested:
		w.WriteByte('(')
		writeExpr(w, v.Expr)
		w.WriteByte(')')
	case Cast:
		writeCast(w, v)
	case Case:
		writeCase(w, v)
	case Between:
		writeExpr(w, v.Expr)
		w.WriteByte(' ')
		w.WriteString(negWord(v.Negated))
		w.WriteString("BETWEEN ")
		writeExpr(w, v.Low)
		w.WriteString(" AND ")
		writeExpr(w, v.High)
	case Like:
		writeExpr(w, v.Expr)
		w.WriteByte(' ')
		w.WriteString(negWord(v.Negated))
		w.WriteString(likeKindText(v.Kind))
		w.WriteByte(' ')
		writeExpr(w, v.Pattern)
		if v.Escape != nil {
			w.WriteString(" ESCAPE ")
			writeExpr(w, v.Escape)
		}
	case InList:
		writeExpr(w, v.Expr)
		w.WriteByte(' ')
		w.WriteString(negWord(v.Negated))
		w.WriteString("IN (")
		writeList(w, v.List, ", ", writeExpr)
		w.WriteByte(')')
	case InSubquery:
		writeExpr(w, v.Expr)
		w.WriteByte(' ')
		w.WriteString(negWord(v.Negated))
		w.WriteString("IN (")
		writeQuery(w, v.Subquery)
		w.WriteByte(')')
	case InUnnest:
		writeExpr(w, v.Expr)
		w.WriteByte(' ')
		w.WriteString(negWord(v.Negated))
		w.WriteString("IN UNNEST(")
		writeExpr(w, v.ArrayExpr)
		w.WriteByte(')')
	case Is:
		writeIs(w, v)
	case Exists:
		w.WriteString(negWord(v.Negated))
		w.WriteString("EXISTS (")
		writeQuery(w, v.Subquery)
		w.WriteByte(')')
	case Subquery:
		w.WriteByte('(')
		writeQuery(w, v.Query)
		w.WriteByte(')')
	case AllAny:
		writeExpr(w, v.Left)
		w.WriteByte(' ')
		w.WriteString(v.Op.Text())
		w.WriteByte(' ')
		if v.Kind == SubqueryComparisonAll {
			w.WriteString("ALL")
		} else {
			w.WriteString("ANY")
		}
		w.WriteString(" (")
		writeQuery(w, v.Subquery)
		w.WriteByte(')')
	case Function:
		writeFunction(w, v)
	case Lambda:
		writeLambdaParams(w, v.Params)
		w.WriteString(" -> ")
		writeExpr(w, v.Body)
	case Extract:
		w.WriteString("EXTRACT(")
		if v.Field == FieldCustom {
			w.WriteString(v.FieldText)
		} else {
			w.WriteString(v.Field.Text())
		}
		w.WriteString(" FROM ")
		writeExpr(w, v.Expr)
		w.WriteByte(')')
	case Position:
		w.WriteString("POSITION(")
		writeExpr(w, v.Needle)
		w.WriteString(" IN ")
		writeExpr(w, v.Haystack)
		w.WriteByte(')')
	case Substring:
		writeSubstring(w, v)
	case Trim:
		writeTrim(w, v)
	case Overlay:
		w.WriteString("OVERLAY(")
		writeExpr(w, v.Expr)
		w.WriteString(" PLACING ")
		writeExpr(w, v.Placing)
		w.WriteString(" FROM ")
		writeExpr(w, v.From)
		if v.For != nil {
			w.WriteString(" FOR ")
			writeExpr(w, v.For)
		}
		w.WriteByte(')')
	case Tuple:
		w.WriteByte('(')
		writeList(w, v.Exprs, ", ", writeExpr)
		w.WriteByte(')')
	case Array:
		if v.Named {
			w.WriteString("ARRAY")
		}
		w.WriteByte('[')
		writeList(w, v.Elements, ", ", writeExpr)
		w.WriteByte(']')
	case MapAccess:
		writeExpr(w, v.Expr)
		w.WriteByte('[')
		writeExpr(w, v.Index)
		if v.Slice {
			w.WriteByte(':')
			writeExpr(w, v.Hi)
		}
		w.WriteByte(']')
	case Interval:
		writeInterval(w, v)
	case AtTimeZone:
		writeExpr(w, v.Expr)
		w.WriteString(" AT TIME ZONE ")
		writeExpr(w, v.Zone)
	case Collate:
		writeExpr(w, v.Expr)
		w.WriteString(" COLLATE ")
		writeObjectName(w, v.Collation)
	case MatchAgainst:
		w.WriteString("MATCH(")
		writeIdentList(w, v.Columns)
		w.WriteString(") AGAINST(")
		writeExpr(w, v.Against)
		if s := matchAgainstModifierText(v.Modifier); s != "" {
			w.WriteByte(' ')
			w.WriteString(s)
		}
		w.WriteByte(')')
	case Grouping:
		writeGrouping(w, v)
	case CompositeAccess:
		writeExpr(w, v.Expr)
		w.WriteByte('.')
		writeIdent(w, v.Field)
	default:
		panic("ast: writeExpr: unhandled expression type")
	}
}

func likeKindText(k LikeKind) string {
	switch k {
	case LikeKindILike:
		return "ILIKE"
	case LikeKindSimilarTo:
		return "SIMILAR TO"
	case LikeKindRLike:
		return "RLIKE"
	default:
		return "LIKE"
	}
}

func matchAgainstModifierText(m MatchAgainstModifier) string {
	switch m {
	case MatchAgainstNaturalLanguageWithQueryExpansion:
		return "IN NATURAL LANGUAGE MODE WITH QUERY EXPANSION"
	case MatchAgainstBooleanMode:
		return "IN BOOLEAN MODE"
	case MatchAgainstWithQueryExpansion:
		return "WITH QUERY EXPANSION"
	default:
		return ""
	}
}

func writeCast(w *strings.Builder, c Cast) {
	if c.Kind == CastKindDoubleColon {
		writeExpr(w, c.Expr)
		w.WriteString("::")
		writeDataType(w, c.Type)
		return
	}
	switch c.Kind {
	case CastKindTryCast:
		w.WriteString("TRY_CAST(")
	case CastKindSafeCast:
		w.WriteString("SAFE_CAST(")
	default:
		w.WriteString("CAST(")
	}
	writeExpr(w, c.Expr)
	w.WriteString(" AS ")
	writeDataType(w, c.Type)
	if c.Format != nil {
		w.WriteString(" FORMAT ")
		writeExpr(w, c.Format)
	}
	w.WriteByte(')')
}

func writeCase(w *strings.Builder, c Case) {
	w.WriteString("CASE")
	if c.Operand != nil {
		w.WriteByte(' ')
		writeExpr(w, c.Operand)
	}
	for _, wh := range c.Whens {
		w.WriteString(" WHEN ")
		writeExpr(w, wh.Condition)
		w.WriteString(" THEN ")
		writeExpr(w, wh.Result)
	}
	if c.Else != nil {
		w.WriteString(" ELSE ")
		writeExpr(w, c.Else)
	}
	w.WriteString(" END")
}

func writeIs(w *strings.Builder, is Is) {
	writeExpr(w, is.Expr)
	w.WriteString(" IS ")
	w.WriteString(negWord(is.Negated))
	switch is.Kind {
	case IsKindNull:
		w.WriteString("NULL")
	case IsKindTrue:
		w.WriteString("TRUE")
	case IsKindFalse:
		w.WriteString("FALSE")
	case IsKindUnknown:
		w.WriteString("UNKNOWN")
	case IsKindDistinctFrom:
		w.WriteString("DISTINCT FROM ")
		writeExpr(w, is.Other)
	}
}

func writeLambdaParams(w *strings.Builder, params []Ident) {
	if len(params) == 1 {
		writeIdent(w, params[0])
		return
	}
	w.WriteByte('(')
	writeIdentList(w, params)
	w.WriteByte(')')
}

func writeSubstring(w *strings.Builder, s Substring) {
	w.WriteString("SUBSTRING(")
	writeExpr(w, s.Expr)
	if s.UsingCommaSyntax {
		if s.From != nil {
			w.WriteString(", ")
			writeExpr(w, s.From)
		}
		if s.For != nil {
			w.WriteString(", ")
			writeExpr(w, s.For)
		}
	} else {
		if s.From != nil {
			w.WriteString(" FROM ")
			writeExpr(w, s.From)
		}
		if s.For != nil {
			w.WriteString(" FOR ")
			writeExpr(w, s.For)
		}
	}
	w.WriteByte(')')
}

func writeTrim(w *strings.Builder, t Trim) {
	w.WriteString("TRIM(")
	switch t.Where {
	case TrimWhereLeading:
		w.WriteString("LEADING ")
	case TrimWhereTrailing:
		w.WriteString("TRAILING ")
	case TrimWhereBoth:
		w.WriteString("BOTH ")
	}
	if t.Chars != nil {
		writeExpr(w, t.Chars)
		w.WriteByte(' ')
	}
	if t.Where != TrimWhereNone || t.Chars != nil {
		w.WriteString("FROM ")
	}
	writeExpr(w, t.Expr)
	w.WriteByte(')')
}

func writeInterval(w *strings.Builder, iv Interval) {
	w.WriteString("INTERVAL ")
	writeExpr(w, iv.Value)
	if iv.LeadingField != nil {
		w.WriteByte(' ')
		w.WriteString(iv.LeadingField.Text())
		if iv.LeadingPrec != nil {
			w.WriteByte('(')
			w.WriteString(strconv.Itoa(*iv.LeadingPrec))
			w.WriteByte(')')
		}
	}
	if iv.TrailingField != nil {
		w.WriteString(" TO ")
		w.WriteString(iv.TrailingField.Text())
		if iv.TrailingPrec != nil {
			w.WriteByte('(')
			w.WriteString(strconv.Itoa(*iv.TrailingPrec))
			w.WriteByte(')')
		}
	}
}

func writeGrouping(w *strings.Builder, g Grouping) {
	switch g.Kind {
	case GroupingRollup:
		w.WriteString("ROLLUP(")
		writeList(w, g.Sets[0], ", ", writeExpr)
		w.WriteByte(')')
	case GroupingCube:
		w.WriteString("CUBE(")
		writeList(w, g.Sets[0], ", ", writeExpr)
		w.WriteByte(')')
	case GroupingSets:
		w.WriteString("GROUPING SETS (")
		for i, set := range g.Sets {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteByte('(')
			writeList(w, set, ", ", writeExpr)
			w.WriteByte(')')
		}
		w.WriteByte(')')
	}
}

func writeFunction(w *strings.Builder, f Function) {
	writeObjectName(w, f.Name)
	w.WriteByte('(')
	if q := f.Args.Quantifier.Text(); q != "" {
		w.WriteString(q)
		w.WriteByte(' ')
	}
	writeList(w, f.Args.Args, ", ", writeFunctionArg)
	if len(f.Args.OrderBy) > 0 {
		w.WriteString(" ORDER BY ")
		writeOrderByList(w, f.Args.OrderBy)
	}
	if f.Args.Limit != nil {
		w.WriteString(" LIMIT ")
		writeExpr(w, f.Args.Limit)
	}
	if f.Args.Separator != nil {
		w.WriteString(" SEPARATOR ")
		w.WriteString(quoteStringLiteral(*f.Args.Separator))
	}
	if f.Args.Having != nil {
		w.WriteString(" HAVING ")
		writeExpr(w, f.Args.Having)
	}
	w.WriteByte(')')
	if len(f.WithinGroup) > 0 {
		w.WriteString(" WITHIN GROUP (ORDER BY ")
		writeOrderByList(w, f.WithinGroup)
		w.WriteByte(')')
	}
	if f.Filter != nil {
		w.WriteString(" FILTER (WHERE ")
		writeExpr(w, f.Filter)
		w.WriteByte(')')
	}
	switch f.NullTreatment {
	case NullTreatmentIgnore:
		w.WriteString(" IGNORE NULLS")
	case NullTreatmentRespect:
		w.WriteString(" RESPECT NULLS")
	}
	if f.Over != nil {
		w.WriteString(" OVER (")
		writeWindowSpecBody(w, *f.Over)
		w.WriteByte(')')
	} else if f.OverName.Name != "" {
		w.WriteString(" OVER ")
		writeIdent(w, f.OverName)
	}
}

func writeFunctionArg(w *strings.Builder, a FunctionArg) {
	if a.Kind == FunctionArgNamed {
		writeIdent(w, a.Name)
		w.WriteByte(' ')
		if a.NameSep != "" {
			w.WriteString(a.NameSep)
		} else {
			w.WriteString("=>")
		}
		w.WriteByte(' ')
	}
	writeExpr(w, a.Value)
}
