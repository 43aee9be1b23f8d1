package ast

import (
	"strconv"
	"strings"
)

func dataTypeSQL(t DataType) string {
	var w strings.Builder
	writeDataType(&w, t)
	return w.String()
}

func writeDataType(w *strings.Builder, t DataType) {
	switch v := t.(type) {
	case nil:
		return
	case NumericDataType:
		writeNumericDataType(w, v)
	case CharDataType:
		writeCharDataType(w, v)
	case DateTimeDataType:
		w.WriteString(v.Name)
		if v.Precision != nil {
			w.WriteByte('(')
			w.WriteString(strconv.Itoa(*v.Precision))
			w.WriteByte(')')
		}
		switch v.Timezone {
		case TimezoneWithTimeZone:
			w.WriteString(" WITH TIME ZONE")
		case TimezoneWithoutTimeZone:
			w.WriteString(" WITHOUT TIME ZONE")
		}
	case IntervalDataType:
		w.WriteString("INTERVAL")
		if v.LeadingField != nil {
			w.WriteByte(' ')
			w.WriteString(v.LeadingField.Text())
		}
		if v.TrailingField != nil {
			w.WriteString(" TO ")
			w.WriteString(v.TrailingField.Text())
		}
	case SimpleDataType:
		w.WriteString(v.Name)
	case ArrayDataType:
		if v.BracketSyntax {
			writeDataType(w, v.Element)
			w.WriteByte('[')
			if v.Size != nil {
				w.WriteString(strconv.Itoa(*v.Size))
			}
			w.WriteByte(']')
		} else {
			w.WriteString("ARRAY<")
			writeDataType(w, v.Element)
			w.WriteByte('>')
		}
	case StructDataType:
		w.WriteString("STRUCT<")
		writeList(w, v.Fields, ", ", writeStructField)
		w.WriteByte('>')
	case TupleDataType:
		w.WriteByte('(')
		writeList(w, v.Elements, ", ", writeDataType)
		w.WriteByte(')')
	case MapDataType:
		w.WriteString("MAP<")
		writeDataType(w, v.Key)
		w.WriteString(", ")
		writeDataType(w, v.Value)
		w.WriteByte('>')
	case EnumDataType:
		w.WriteString("ENUM(")
		for i, val := range v.Values {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteString(quoteStringLiteral(val))
		}
		w.WriteByte(')')
	case FixedStringDataType:
		w.WriteString("FixedString(")
		w.WriteString(strconv.Itoa(v.Length))
		w.WriteByte(')')
	case LowCardinalityDataType:
		w.WriteString("LowCardinality(")
		writeDataType(w, v.Inner)
		w.WriteByte(')')
	case NullableDataType:
		w.WriteString("Nullable(")
		writeDataType(w, v.Inner)
		w.WriteByte(')')
	case CustomDataType:
		writeObjectName(w, v.Name)
		if len(v.Modifiers) > 0 {
			w.WriteByte('(')
			for i, m := range v.Modifiers {
				if i > 0 {
					w.WriteString(", ")
				}
				w.WriteString(m)
			}
			w.WriteByte(')')
		}
	default:
		panic("ast: writeDataType: unhandled data type")
	}
}

func writeNumericDataType(w *strings.Builder, n NumericDataType) {
	w.WriteString(n.Name)
	if n.Precision != nil {
		w.WriteByte('(')
		w.WriteString(strconv.Itoa(*n.Precision))
		if n.Scale != nil {
			w.WriteString(", ")
			w.WriteString(strconv.Itoa(*n.Scale))
		}
		w.WriteByte(')')
	}
	if n.Unsigned {
		w.WriteString(" UNSIGNED")
	}
	if n.ZeroFill {
		w.WriteString(" ZEROFILL")
	}
}

func writeCharDataType(w *strings.Builder, c CharDataType) {
	w.WriteString(c.Name)
	if c.Length != nil {
		w.WriteByte('(')
		w.WriteString(strconv.Itoa(*c.Length))
		switch c.Unit {
		case CharLengthUnitCharacters:
			w.WriteString(" CHARACTERS")
		case CharLengthUnitOctets:
			w.WriteString(" OCTETS")
		}
		w.WriteByte(')')
	}
	if c.Charset != "" {
		w.WriteString(" CHARACTER SET ")
		w.WriteString(c.Charset)
	}
}

func writeStructField(w *strings.Builder, f StructField) {
	if f.Name.Name != "" {
		writeIdent(w, f.Name)
		w.WriteByte(' ')
	}
	writeDataType(w, f.Type)
}
