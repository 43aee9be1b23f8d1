package parser

import (
	"strconv"
	"strings"

	"github.com/sqlast/sqlast/ast"
	"github.com/sqlast/sqlast/token"
)

// parseDataType parses one SQL type name, the target grammar of CAST,
// column definitions, and function parameter/return types alike.
func (p *Parser) parseDataType() (ast.DataType, error) {
	t := p.cur()
	if t.Kind != token.Word {
		return nil, &Error{Pos: t.Span.Start, Reason: "expected a data type", Found: t}
	}
	upper := strings.ToUpper(t.Text)

	switch upper {
	case "INT", "INTEGER", "SMALLINT", "BIGINT", "TINYINT", "MEDIUMINT":
		p.advance()
		return p.parseNumericTail(upper)
	case "DECIMAL", "NUMERIC":
		p.advance()
		return p.parseDecimalTail(upper)
	case "FLOAT", "REAL":
		p.advance()
		return p.parseNumericTail(upper)
	case "DOUBLE":
		p.advance()
		if p.kwText("PRECISION") {
			p.advance()
			return p.parseNumericTail("DOUBLE PRECISION")
		}
		return p.parseNumericTail("DOUBLE")
	case "BOOLEAN", "BOOL", "UUID", "BYTEA", "JSON", "JSONB", "MONEY", "REGCLASS":
		p.advance()
		return ast.SimpleDataType{Name: upper}, nil
	case "CHAR", "CHARACTER", "VARCHAR", "NVARCHAR", "NCHAR", "TEXT":
		p.advance()
		return p.parseCharTail(upper)
	case "DATE":
		p.advance()
		return ast.SimpleDataType{Name: "DATE"}, nil
	case "TIME", "TIMESTAMP", "DATETIME":
		p.advance()
		return p.parseDateTimeTail(upper)
	case "INTERVAL":
		p.advance()
		return p.parseIntervalTail()
	case "ENUM":
		p.advance()
		return p.parseEnumTail()
	case "ARRAY":
		p.advance()
		if p.at(token.Lt) {
			p.advance()
			elem, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Gt); err != nil {
				return nil, err
			}
			return ast.ArrayDataType{Element: elem}, nil
		}
		if p.at(token.LBracket) {
			p.advance()
			var size *int
			if p.at(token.Number) {
				n, _ := strconv.Atoi(p.cur().Text)
				size = &n
				p.advance()
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			return ast.ArrayDataType{Size: size, BracketSyntax: true}, nil
		}
		return ast.SimpleDataType{Name: "ARRAY"}, nil
	case "STRUCT", "TUPLE":
		p.advance()
		return p.parseStructOrTupleTail(upper)
	case "MAP":
		p.advance()
		return p.parseMapTail()
	case "FIXEDSTRING":
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		n, err := p.expect(token.Number)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		length, _ := strconv.Atoi(n.Text)
		return ast.FixedStringDataType{Length: length}, nil
	case "LOWCARDINALITY":
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		inner, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.LowCardinalityDataType{Inner: inner}, nil
	case "NULLABLE":
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		inner, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return ast.NullableDataType{Inner: inner}, nil
	}

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	var mods []string
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) {
			mt := p.cur()
			p.advance()
			mods = append(mods, mt.Text)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}
	return p.wrapTrailingArrayBrackets(ast.CustomDataType{Name: name, Modifiers: mods})
}

// wrapTrailingArrayBrackets consumes zero or more trailing `[]` /
// `[n]` suffixes after a base type, producing nested ArrayDataType
// wrappers (Postgres `int[]`, `text[][]`).
func (p *Parser) wrapTrailingArrayBrackets(base ast.DataType) (ast.DataType, error) {
	typ := base
	for p.at(token.LBracket) {
		p.advance()
		var size *int
		if p.at(token.Number) {
			n, _ := strconv.Atoi(p.cur().Text)
			size = &n
			p.advance()
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		typ = ast.ArrayDataType{Element: typ, Size: size, BracketSyntax: true}
	}
	return typ, nil
}

func (p *Parser) parseNumericTail(name string) (ast.DataType, error) {
	n := ast.NumericDataType{Name: name}
	if p.at(token.LParen) {
		p.advance()
		prec, err := p.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		n.Precision = &prec
		if p.at(token.Comma) {
			p.advance()
			scale, err := p.parseIntLiteral()
			if err != nil {
				return nil, err
			}
			n.Scale = &scale
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}
	for {
		switch {
		case p.kwText("UNSIGNED"):
			p.advance()
			n.Unsigned = true
		case p.kwText("ZEROFILL"):
			p.advance()
			n.ZeroFill = true
		default:
			return p.wrapTrailingArrayBrackets(n)
		}
	}
}

func (p *Parser) parseDecimalTail(name string) (ast.DataType, error) {
	dt, err := p.parseNumericTail(name)
	if err != nil {
		return nil, err
	}
	return dt, nil
}

func (p *Parser) parseCharTail(name string) (ast.DataType, error) {
	c := ast.CharDataType{Name: name}
	if p.at(token.LParen) {
		p.advance()
		if p.kwText("MAX") {
			p.advance()
		} else {
			length, err := p.parseIntLiteral()
			if err != nil {
				return nil, err
			}
			c.Length = &length
			switch {
			case p.kwText("CHARACTERS"):
				p.advance()
				c.Unit = ast.CharLengthUnitCharacters
			case p.kwText("OCTETS"):
				p.advance()
				c.Unit = ast.CharLengthUnitOctets
			}
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}
	if p.kwText("CHARACTER") && p.peekKwText(1, "SET") {
		p.advance()
		p.advance()
		cs, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		c.Charset = cs.Name
	}
	return p.wrapTrailingArrayBrackets(c)
}

func (p *Parser) parseDateTimeTail(name string) (ast.DataType, error) {
	d := ast.DateTimeDataType{Name: name}
	if p.at(token.LParen) {
		p.advance()
		prec, err := p.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		d.Precision = &prec
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}
	switch {
	case p.kwText("WITH"):
		p.advance()
		if err := p.expectKwText("TIME"); err != nil {
			return nil, err
		}
		if err := p.expectKwText("ZONE"); err != nil {
			return nil, err
		}
		d.Timezone = ast.TimezoneWithTimeZone
	case p.kwText("WITHOUT"):
		p.advance()
		if err := p.expectKwText("TIME"); err != nil {
			return nil, err
		}
		if err := p.expectKwText("ZONE"); err != nil {
			return nil, err
		}
		d.Timezone = ast.TimezoneWithoutTimeZone
	}
	return p.wrapTrailingArrayBrackets(d)
}

func (p *Parser) parseIntervalTail() (ast.DataType, error) {
	it := ast.IntervalDataType{}
	if isDateTimeFieldWord(p.cur()) {
		f, _ := p.parseDateTimeField()
		it.LeadingField = &f
		if p.kwText("TO") {
			p.advance()
			f2, _ := p.parseDateTimeField()
			it.TrailingField = &f2
		}
	}
	return it, nil
}

func (p *Parser) parseEnumTail() (ast.DataType, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var values []string
	for !p.at(token.RParen) {
		s, err := p.expect(token.SingleQuotedString)
		if err != nil {
			return nil, err
		}
		values = append(values, s.Text)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.EnumDataType{Values: values}, nil
}

func (p *Parser) parseStructOrTupleTail(kw string) (ast.DataType, error) {
	openKind := token.Lt
	closeKind := token.Gt
	if p.at(token.LParen) {
		openKind, closeKind = token.LParen, token.RParen
	}
	if _, err := p.expect(openKind); err != nil {
		return nil, err
	}
	var fields []ast.StructField
	for !p.at(closeKind) {
		var name ast.Ident
		save := p.pos
		if id, err := p.parseIdent(); err == nil && !p.at(closeKind) && !p.at(token.Comma) {
			name = id
		} else {
			p.pos = save
		}
		typ, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.StructField{Name: name, Type: typ})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(closeKind); err != nil {
		return nil, err
	}
	if kw == "TUPLE" {
		elems := make([]ast.DataType, len(fields))
		named := true
		for i, f := range fields {
			elems[i] = f.Type
			if f.Name.Name == "" {
				named = false
			}
		}
		if !named {
			return ast.TupleDataType{Elements: elems}, nil
		}
	}
	return ast.StructDataType{Fields: fields}, nil
}

func (p *Parser) parseMapTail() (ast.DataType, error) {
	openKind := token.Lt
	closeKind := token.Gt
	if p.at(token.LParen) {
		openKind, closeKind = token.LParen, token.RParen
	}
	if _, err := p.expect(openKind); err != nil {
		return nil, err
	}
	key, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	val, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(closeKind); err != nil {
		return nil, err
	}
	return ast.MapDataType{Key: key, Value: val}, nil
}

func (p *Parser) parseIntLiteral() (int, error) {
	t, err := p.expect(token.Number)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(t.Text)
	if convErr != nil {
		return 0, &Error{Pos: t.Span.Start, Reason: "expected an integer literal", Found: t}
	}
	return n, nil
}
