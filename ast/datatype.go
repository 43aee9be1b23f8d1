package ast

// NumericDataType is shared by every fixed-width integer/decimal type; a
// Precision or Scale that does not apply to a given Name, or was not
// written, is left nil, which the printer treats as "not specified"
// rather than "0".
type NumericDataType struct {
	Name      string // "INT", "BIGINT", "DECIMAL", ...
	Precision *int
	Scale     *int
	Unsigned  bool
	ZeroFill  bool
}

func (NumericDataType) dataTypeNode()  {}
func (NumericDataType) Children() []Node { return nil }

// CharDataType covers CHAR/VARCHAR/TEXT-family types with an optional
// length and length unit.
type CharDataType struct {
	Name    string // "CHAR", "VARCHAR", "TEXT", "NCHAR", "NVARCHAR", ...
	Length  *int
	Unit    CharLengthUnit
	Charset string
}

func (CharDataType) dataTypeNode()    {}
func (CharDataType) Children() []Node { return nil }

// DateTimeDataType covers DATE/TIME/TIMESTAMP/DATETIME with optional
// fractional-seconds precision and timezone marker.
type DateTimeDataType struct {
	Name      string // "TIME", "TIMESTAMP", "DATETIME"
	Precision *int
	Timezone  TimezoneInfo
}

func (DateTimeDataType) dataTypeNode()    {}
func (DateTimeDataType) Children() []Node { return nil }

// IntervalDataType is the INTERVAL type, optionally qualified by a
// leading/trailing field (e.g. INTERVAL DAY TO SECOND).
type IntervalDataType struct {
	LeadingField  *DateTimeField
	TrailingField *DateTimeField
}

func (IntervalDataType) dataTypeNode()    {}
func (IntervalDataType) Children() []Node { return nil }

// SimpleDataType is a named type with no parameters: BOOLEAN, UUID,
// BYTEA, JSON, JSONB, REGCLASS, MONEY, and similar nullary forms.
type SimpleDataType struct {
	Name string
}

func (SimpleDataType) dataTypeNode()    {}
func (SimpleDataType) Children() []Node { return nil }

// ArrayDataType is ELEMENT[] or ARRAY<ELEMENT>, depending on
// BracketSyntax.
type ArrayDataType struct {
	Element       DataType
	Size          *int
	BracketSyntax bool
}

func (a ArrayDataType) dataTypeNode() {}
func (a ArrayDataType) Children() []Node { return childrenOf(a.Element) }

// StructField is one member of a StructDataType or TupleDataType.
type StructField struct {
	Name Ident // zero Ident for an unnamed tuple element
	Type DataType
}

// StructDataType is a named-field aggregate type (BigQuery STRUCT,
// ClickHouse Tuple-with-names, Snowflake OBJECT, ...).
type StructDataType struct {
	Fields []StructField
}

func (s StructDataType) dataTypeNode() {}
func (s StructDataType) Children() []Node {
	out := make([]Node, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.Type)
	}
	return out
}

// TupleDataType is an unnamed fixed-arity aggregate type.
type TupleDataType struct {
	Elements []DataType
}

func (t TupleDataType) dataTypeNode() {}
func (t TupleDataType) Children() []Node {
	out := make([]Node, len(t.Elements))
	for i, e := range t.Elements {
		out[i] = e
	}
	return out
}

// MapDataType is MAP<K, V> (Hive/ClickHouse/DuckDB).
type MapDataType struct {
	Key   DataType
	Value DataType
}

func (m MapDataType) dataTypeNode()    {}
func (m MapDataType) Children() []Node { return childrenOf(m.Key, m.Value) }

// EnumDataType is an inline ENUM('a','b',...) type.
type EnumDataType struct {
	Values []string
}

func (EnumDataType) dataTypeNode()    {}
func (EnumDataType) Children() []Node { return nil }

// FixedStringDataType is ClickHouse's FixedString(n).
type FixedStringDataType struct {
	Length int
}

func (FixedStringDataType) dataTypeNode()    {}
func (FixedStringDataType) Children() []Node { return nil }

// LowCardinalityDataType is ClickHouse's LowCardinality(T) wrapper.
type LowCardinalityDataType struct {
	Inner DataType
}

func (l LowCardinalityDataType) dataTypeNode()    {}
func (l LowCardinalityDataType) Children() []Node { return childrenOf(l.Inner) }

// NullableDataType is ClickHouse's Nullable(T) wrapper.
type NullableDataType struct {
	Inner DataType
}

func (n NullableDataType) dataTypeNode()    {}
func (n NullableDataType) Children() []Node { return childrenOf(n.Inner) }

// CustomDataType is a named type this library does not special-case,
// with optional parenthesized modifiers, carried verbatim so unknown
// dialect-specific types still round-trip (e.g. "Regclass", "Geometry").
type CustomDataType struct {
	Name     ObjectName
	Modifiers []string
}

func (c CustomDataType) dataTypeNode()    {}
func (c CustomDataType) Children() []Node { return childrenOf(c.Name) }
