package parser

import (
	"github.com/sqlast/sqlast/ast"
	"github.com/sqlast/sqlast/keyword"
	"github.com/sqlast/sqlast/token"
)

// parseStatement dispatches on the leading keyword of one statement and
// returns its parsed form. Called once per statement by Parse's loop.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.isSelectStart():
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		return ast.SelectStatement{Query: q}, nil
	case p.kw(keyword.INSERT):
		return p.parseInsert()
	case p.kw(keyword.UPDATE):
		return p.parseUpdate()
	case p.kw(keyword.DELETE):
		return p.parseDelete()
	case p.kw(keyword.CREATE):
		return p.parseCreate()
	case p.kw(keyword.ALTER):
		return p.parseAlterTable()
	case p.kw(keyword.DROP):
		return p.parseDrop()
	case p.kw(keyword.TRUNCATE):
		return p.parseTruncate()
	case p.kw(keyword.MERGE):
		return p.parseMerge()
	case p.kw(keyword.GRANT):
		return p.parseGrant()
	case p.kw(keyword.REVOKE):
		return p.parseRevoke()
	case p.kw(keyword.EXPLAIN), p.kw(keyword.DESCRIBE):
		return p.parseExplain()
	case p.kw(keyword.USE):
		return p.parseUse()
	case p.kw(keyword.COPY):
		return p.parseCopy()
	case p.kw(keyword.DECLARE):
		return p.parseDeclare()
	case p.kwText("FETCH"):
		return p.parseFetch()
	case p.kw(keyword.CLOSE):
		return p.parseClose()
	case p.kw(keyword.PREPARE):
		return p.parsePrepare()
	case p.kw(keyword.EXECUTE):
		return p.parseExecute()
	case p.kw(keyword.DEALLOCATE):
		return p.parseDeallocate()
	case p.kw(keyword.BEGIN), p.kw(keyword.START):
		return p.parseStartTransaction()
	case p.kw(keyword.COMMIT):
		return p.parseCommit()
	case p.kw(keyword.ROLLBACK):
		return p.parseRollback()
	case p.kw(keyword.SAVEPOINT):
		return p.parseSavepoint()
	case p.kwText("RELEASE"):
		return p.parseReleaseSavepoint()
	case p.kw(keyword.SET):
		return p.parseSet()
	case p.kw(keyword.IF):
		return p.parseIfStatement()
	}
	return nil, &Error{Pos: p.cur().Span.Start, Reason: "expected a statement", Found: p.cur()}
}

// parseStatementBlock parses a ;-separated run of statements terminated
// by one of the given terminator words (matched via kwText), leaving the
// terminator as the current token for the caller to consume.
func (p *Parser) parseStatementBlock(terminators ...string) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		p.skipSemicolons()
		if p.atAnyKwText(terminators...) {
			return stmts, nil
		}
		if p.at(token.EOF) {
			return stmts, &Error{Pos: p.cur().Span.Start, Reason: "unexpected end of input in statement block", Found: p.cur()}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) atAnyKwText(words ...string) bool {
	for _, w := range words {
		if p.kwText(w) {
			return true
		}
	}
	return false
}

// Insert -------------------------------------------------------------

func (p *Parser) parseInsert() (ast.Statement, error) {
	p.advance() // INSERT
	ins := ast.Insert{}
	var sqliteConflict *ast.OnConflict
	if p.kwText("OR") {
		p.advance()
		switch {
		case p.kw(keyword.IGNORE):
			sqliteConflict = &ast.OnConflict{Kind: ast.OnConflictIgnore}
		case p.kwText("REPLACE"):
			sqliteConflict = &ast.OnConflict{Kind: ast.OnConflictReplace}
		case p.kwText("ABORT"):
			sqliteConflict = &ast.OnConflict{Kind: ast.OnConflictAbort}
		case p.kwText("FAIL"):
			sqliteConflict = &ast.OnConflict{Kind: ast.OnConflictFail}
		case p.kwText("ROLLBACK"):
			sqliteConflict = &ast.OnConflict{Kind: ast.OnConflictRollback}
		}
		p.advance()
	} else if p.kwText("LOW_PRIORITY") || p.kwText("DELAYED") || p.kwText("HIGH_PRIORITY") {
		ins.Priority = p.cur().Text
		p.advance()
	}
	if p.kw(keyword.IGNORE) {
		p.advance()
		ins.Ignore = true
	}
	if err := p.expectKwText("INTO"); err != nil {
		return nil, err
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ins.Table = name

	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) {
			c, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			ins.Columns = append(ins.Columns, c)
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

	switch {
	case p.kwText("DEFAULT"):
		p.advance()
		if err := p.expectKwText("VALUES"); err != nil {
			return nil, err
		}
		ins.Source = ast.InsertSource{DefaultValues: true}
	case p.kw(keyword.VALUES):
		p.advance()
		var rows []ast.Tuple
		for {
			if _, err := p.expect(token.LParen); err != nil {
				return nil, err
			}
			var exprs []ast.Expression
			for !p.at(token.RParen) {
				e, err := p.parseExpr(0)
				if err != nil {
					return nil, err
				}
				exprs = append(exprs, e)
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			rows = append(rows, ast.Tuple{Exprs: exprs})
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		ins.Source = ast.InsertSource{Values: rows}
	default:
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		ins.Source = ast.InsertSource{Query: q}
	}

	if sqliteConflict != nil {
		ins.OnConflict = sqliteConflict
	}

	if p.kwText("ON") {
		save := p.pos
		p.advance()
		switch {
		case p.kwText("CONFLICT"):
			p.advance()
			oc, err := p.parseOnConflict()
			if err != nil {
				return nil, err
			}
			ins.OnConflict = &oc
		case p.kwText("DUPLICATE"):
			p.advance()
			if err := p.expectKwText("KEY"); err != nil {
				return nil, err
			}
			if err := p.expectKwText("UPDATE"); err != nil {
				return nil, err
			}
			assigns, err := p.parseAssignmentList()
			if err != nil {
				return nil, err
			}
			ins.OnConflict = &ast.OnConflict{Kind: ast.OnConflictDoUpdate, Assignments: assigns}
		default:
			p.pos = save
		}
	}

	if p.kwText("RETURNING") {
		p.advance()
		items, err := p.parseProjection()
		if err != nil {
			return nil, err
		}
		ins.Returning = items
	}

	return ins, nil
}

func (p *Parser) parseOnConflict() (ast.OnConflict, error) {
	oc := ast.OnConflict{Kind: ast.OnConflictDoNothing}
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) {
			c, err := p.parseIdent()
			if err != nil {
				return oc, err
			}
			oc.Columns = append(oc.Columns, c)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.RParen); err != nil {
			return oc, err
		}
	} else if p.kwText("ON") {
		p.advance()
		if err := p.expectKwText("CONSTRAINT"); err != nil {
			return oc, err
		}
		name, err := p.parseIdent()
		if err != nil {
			return oc, err
		}
		oc.Constraint = name
	}
	if err := p.expectKwText("DO"); err != nil {
		return oc, err
	}
	switch {
	case p.kwText("NOTHING"):
		p.advance()
		oc.Kind = ast.OnConflictDoNothing
	case p.kw(keyword.UPDATE):
		p.advance()
		if err := p.expectKwText("SET"); err != nil {
			return oc, err
		}
		assigns, err := p.parseAssignmentList()
		if err != nil {
			return oc, err
		}
		oc.Kind = ast.OnConflictDoUpdate
		oc.Assignments = assigns
		if p.kw(keyword.WHERE) {
			p.advance()
			e, err := p.parseExpr(0)
			if err != nil {
				return oc, err
			}
			oc.Where = e
		}
	}
	return oc, nil
}

func (p *Parser) parseAssignmentList() ([]ast.Assignment, error) {
	var out []ast.Assignment
	for {
		var target ast.Expression
		if p.at(token.LParen) {
			p.advance()
			var cols []ast.Expression
			for !p.at(token.RParen) {
				id, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				cols = append(cols, ast.IdentExpr{Ident: id})
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			target = ast.Tuple{Exprs: cols}
		} else {
			e, err := p.parseExpr(bpComparisonRight)
			if err != nil {
				return nil, err
			}
			target = e
		}
		if _, err := p.expect(token.Eq); err != nil {
			return nil, err
		}
		val, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		out = append(out, ast.Assignment{Target: target, Value: val})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return out, nil
}

// Update / Delete ------------------------------------------------------

func (p *Parser) parseUpdate() (ast.Statement, error) {
	p.advance() // UPDATE
	twj, err := p.parseTableWithJoins()
	if err != nil {
		return nil, err
	}
	u := ast.Update{Table: twj}
	if err := p.expectKwText("SET"); err != nil {
		return nil, err
	}
	assigns, err := p.parseAssignmentList()
	if err != nil {
		return nil, err
	}
	u.Set = assigns

	if p.kw(keyword.FROM) {
		p.advance()
		for {
			t, err := p.parseTableWithJoins()
			if err != nil {
				return nil, err
			}
			u.From = append(u.From, t)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if p.kw(keyword.WHERE) {
		p.advance()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		u.Where = e
	}
	if p.kwText("RETURNING") {
		p.advance()
		items, err := p.parseProjection()
		if err != nil {
			return nil, err
		}
		u.Returning = items
	}
	return u, nil
}

func (p *Parser) parseDelete() (ast.Statement, error) {
	p.advance() // DELETE
	d := ast.Delete{}
	for p.at(token.Word) && !p.kw(keyword.FROM) && !p.kw(keyword.USING) {
		n, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		d.Tables = append(d.Tables, n)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectKwText("FROM"); err != nil {
		return nil, err
	}
	for {
		t, err := p.parseTableWithJoins()
		if err != nil {
			return nil, err
		}
		d.From = append(d.From, t)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if p.kw(keyword.USING) {
		p.advance()
		for {
			t, err := p.parseTableWithJoins()
			if err != nil {
				return nil, err
			}
			d.Using = append(d.Using, t)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if p.kw(keyword.WHERE) {
		p.advance()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		d.Where = e
	}
	if p.kwText("RETURNING") {
		p.advance()
		items, err := p.parseProjection()
		if err != nil {
			return nil, err
		}
		d.Returning = items
	}
	return d, nil
}

// CREATE dispatch --------------------------------------------------------

func (p *Parser) parseCreate() (ast.Statement, error) {
	p.advance() // CREATE
	orReplace := false
	if p.kw(keyword.OR) {
		p.advance()
		if err := p.expectKwText("REPLACE"); err != nil {
			return nil, err
		}
		orReplace = true
	}
	temporary := false
	unlogged := false
	if p.kw(keyword.TEMPORARY) || p.kw(keyword.TEMP) {
		temporary = true
		p.advance()
	} else if p.kwText("UNLOGGED") {
		unlogged = true
		p.advance()
	}
	materialized := false
	if p.kw(keyword.MATERIALIZED) {
		materialized = true
		p.advance()
	}
	unique := false
	if p.kw(keyword.UNIQUE) {
		unique = true
		p.advance()
	}

	switch {
	case p.kw(keyword.TABLE):
		return p.parseCreateTable(temporary, unlogged)
	case p.kw(keyword.VIEW):
		return p.parseCreateView(orReplace, materialized, temporary)
	case p.kw(keyword.INDEX):
		return p.parseCreateIndex(unique)
	case p.kw(keyword.SCHEMA):
		return p.parseCreateSchema()
	case p.kw(keyword.DATABASE):
		p.advance()
		return p.parseCreateSchemaBody()
	case p.kw(keyword.SEQUENCE):
		return p.parseCreateSequence(temporary)
	case p.kw(keyword.FUNCTION):
		return p.parseCreateFunction(orReplace, false)
	case p.kw(keyword.PROCEDURE):
		return p.parseCreateFunction(orReplace, true)
	}
	return nil, &Error{Pos: p.cur().Span.Start, Reason: "expected TABLE, VIEW, INDEX, SCHEMA, SEQUENCE, FUNCTION, or PROCEDURE", Found: p.cur()}
}

func (p *Parser) parseCreateTable(temporary, unlogged bool) (ast.Statement, error) {
	p.advance() // TABLE
	ct := ast.CreateTable{Temporary: temporary, Unlogged: unlogged}
	if ifne, err := p.tryParseIfNotExists(); err != nil {
		return nil, err
	} else {
		ct.IfNotExists = ifne
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ct.Name = name

	if p.kwText("LIKE") {
		p.advance()
		like, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		ct.Like = &like
		return ct, nil
	}

	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) {
			if isTableConstraintStart(p) {
				tc, err := p.parseTableConstraint()
				if err != nil {
					return nil, err
				}
				ct.Constraints = append(ct.Constraints, tc)
			} else {
				col, err := p.parseColumnDef()
				if err != nil {
					return nil, err
				}
				ct.Columns = append(ct.Columns, col)
			}
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

	if p.kwText("INHERITS") {
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		for !p.at(token.RParen) {
			n, err := p.parseObjectName()
			if err != nil {
				return nil, err
			}
			ct.InheritsFrom = append(ct.InheritsFrom, n)
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

	for {
		switch {
		case p.kwText("ENGINE"):
			p.advance()
			if p.at(token.Eq) {
				p.advance()
			}
			t := p.cur()
			ct.Engine = t.Text
			p.advance()
		case p.kw(keyword.COMMENT):
			p.advance()
			if p.at(token.Eq) {
				p.advance()
			}
			s, err := p.expect(token.SingleQuotedString)
			if err != nil {
				return nil, err
			}
			ct.Comment = s.Text
		case p.kwText("CHARSET"), p.kwText("DEFAULT") && p.peekKwText(1, "CHARSET"):
			if p.kwText("DEFAULT") {
				p.advance()
			}
			p.advance()
			if p.at(token.Eq) {
				p.advance()
			}
			t := p.cur()
			ct.Charset = t.Text
			p.advance()
		case p.kw(keyword.COLLATE):
			p.advance()
			if p.at(token.Eq) {
				p.advance()
			}
			t := p.cur()
			ct.Collation = t.Text
			p.advance()
		case p.kw(keyword.PARTITION):
			p.advance()
			if err := p.expectKwText("BY"); err != nil {
				return nil, err
			}
			pb, err := p.parsePartitionBy()
			if err != nil {
				return nil, err
			}
			ct.PartitionBy = &pb
		case p.kwText("CLUSTER"):
			p.advance()
			if err := p.expectKwText("BY"); err != nil {
				return nil, err
			}
			exprs, err := p.parseExprListParen()
			if err != nil {
				return nil, err
			}
			ct.ClusterBy = exprs
		case p.kw(keyword.ORDER):
			p.advance()
			if err := p.expectKwText("BY"); err != nil {
				return nil, err
			}
			exprs, err := p.parseExprListParen()
			if err != nil {
				return nil, err
			}
			ct.OrderByKeys = exprs
		case p.kw(keyword.COMMIT):
			p.advance()
			switch {
			case p.kwText("PRESERVE"):
				p.advance()
				if err := p.expectKwText("ROWS"); err != nil {
					return nil, err
				}
				ct.OnCommit = ast.OnCommitPreserveRows
			case p.kw(keyword.DELETE):
				p.advance()
				if err := p.expectKwText("ROWS"); err != nil {
					return nil, err
				}
				ct.OnCommit = ast.OnCommitDeleteRows
			case p.kw(keyword.DROP):
				p.advance()
				ct.OnCommit = ast.OnCommitDrop
			}
		case p.kw(keyword.WITH):
			p.advance()
			opts, err := p.parseTableOptionList()
			if err != nil {
				return nil, err
			}
			ct.WithOptions = opts
		case p.kwText("LOCATION"):
			p.advance()
			s, err := p.expect(token.SingleQuotedString)
			if err != nil {
				return nil, err
			}
			ct.Location = s.Text
		case p.kwText("STORED"):
			p.advance()
			if err := p.expectKwText("AS"); err != nil {
				return nil, err
			}
			t := p.cur()
			ct.StoredAs = t.Text
			p.advance()
		case p.kw(keyword.AS):
			p.advance()
			q, err := p.parseQuery()
			if err != nil {
				return nil, err
			}
			ct.AsQuery = q
			return ct, nil
		default:
			return ct, nil
		}
	}
}

func (p *Parser) tryParseIfNotExists() (bool, error) {
	if !p.kw(keyword.IF) {
		return false, nil
	}
	p.advance()
	if err := p.expectKwText("NOT"); err != nil {
		return false, err
	}
	if err := p.expectKwText("EXISTS"); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) tryParseIfExists() (bool, error) {
	if !p.kw(keyword.IF) {
		return false, nil
	}
	p.advance()
	if err := p.expectKwText("EXISTS"); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) parseExprListParen() ([]ast.Expression, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var out []ast.Expression
	for !p.at(token.RParen) {
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parsePartitionBy() (ast.PartitionBy, error) {
	pb := ast.PartitionBy{}
	if p.kwText("RANGE") || p.kwText("LIST") || p.kwText("HASH") {
		pb.Kind = p.cur().Text
		p.advance()
	}
	exprs, err := p.parseExprListParen()
	if err != nil {
		return pb, err
	}
	pb.Exprs = exprs
	return pb, nil
}

func (p *Parser) parseTableOptionList() ([]ast.TableOption, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var out []ast.TableOption
	for !p.at(token.RParen) {
		t := p.cur()
		name := t.Text
		p.advance()
		if p.at(token.Eq) {
			p.advance()
		}
		val, err := p.parseExpr(bpComparison)
		if err != nil {
			return nil, err
		}
		out = append(out, ast.TableOption{Name: name, Value: val})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return out, nil
}

func isTableConstraintStart(p *Parser) bool {
	return p.kw(keyword.CONSTRAINT) || p.kw(keyword.PRIMARY) || p.kw(keyword.UNIQUE) ||
		p.kw(keyword.FOREIGN) || p.kw(keyword.CHECK) || p.kwText("KEY") || p.kwText("INDEX")
}

func (p *Parser) parseTableConstraint() (ast.TableConstraint, error) {
	tc := ast.TableConstraint{}
	if p.kw(keyword.CONSTRAINT) {
		p.advance()
		name, err := p.parseIdent()
		if err != nil {
			return tc, err
		}
		tc.Name = name
	}
	switch {
	case p.kw(keyword.PRIMARY):
		p.advance()
		if err := p.expectKwText("KEY"); err != nil {
			return tc, err
		}
		tc.Kind = ast.TableConstraintPrimaryKey
		cols, err := p.parseIdentListParen()
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	case p.kw(keyword.UNIQUE):
		p.advance()
		if p.kwText("KEY") || p.kwText("INDEX") {
			p.advance()
		}
		tc.Kind = ast.TableConstraintUnique
		cols, err := p.parseIdentListParen()
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	case p.kw(keyword.FOREIGN):
		p.advance()
		if err := p.expectKwText("KEY"); err != nil {
			return tc, err
		}
		cols, err := p.parseIdentListParen()
		if err != nil {
			return tc, err
		}
		tc.Kind = ast.TableConstraintForeignKey
		tc.Columns = cols
		ref, err := p.parseForeignKeyRef()
		if err != nil {
			return tc, err
		}
		tc.References = &ref
	case p.kw(keyword.CHECK):
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return tc, err
		}
		e, err := p.parseExpr(0)
		if err != nil {
			return tc, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return tc, err
		}
		tc.Kind = ast.TableConstraintCheck
		tc.Check = e
	case p.kwText("KEY"), p.kwText("INDEX"):
		p.advance()
		tc.Kind = ast.TableConstraintIndex
		if p.at(token.Word) && !p.at(token.LParen) {
			name, err := p.parseIdent()
			if err != nil {
				return tc, err
			}
			tc.IndexName = name
		}
		cols, err := p.parseIdentListParen()
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	}
	return tc, nil
}

func (p *Parser) parseIdentListParen() ([]ast.Ident, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var out []ast.Ident
	for !p.at(token.RParen) {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		out = append(out, id)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseForeignKeyRef() (ast.ForeignKeyRef, error) {
	if err := p.expectKwText("REFERENCES"); err != nil {
		return ast.ForeignKeyRef{}, err
	}
	table, err := p.parseObjectName()
	if err != nil {
		return ast.ForeignKeyRef{}, err
	}
	ref := ast.ForeignKeyRef{Table: table}
	if p.at(token.LParen) {
		cols, err := p.parseIdentListParen()
		if err != nil {
			return ref, err
		}
		ref.Columns = cols
	}
	for {
		if p.kw(keyword.ON) {
			save := p.pos
			p.advance()
			switch {
			case p.kw(keyword.DELETE):
				p.advance()
				action, err := p.parseReferentialAction()
				if err != nil {
					return ref, err
				}
				ref.OnDelete = action
			case p.kw(keyword.UPDATE):
				p.advance()
				action, err := p.parseReferentialAction()
				if err != nil {
					return ref, err
				}
				ref.OnUpdate = action
			default:
				p.pos = save
				return ref, nil
			}
			continue
		}
		return ref, nil
	}
}

func (p *Parser) parseReferentialAction() (ast.ReferentialAction, error) {
	switch {
	case p.kw(keyword.RESTRICT):
		p.advance()
		return ast.ReferentialActionRestrict, nil
	case p.kw(keyword.CASCADE):
		p.advance()
		return ast.ReferentialActionCascade, nil
	case p.kw(keyword.SET):
		p.advance()
		if p.kw(keyword.NULL) {
			p.advance()
			return ast.ReferentialActionSetNull, nil
		}
		if err := p.expectKwText("DEFAULT"); err != nil {
			return ast.ReferentialActionNone, err
		}
		return ast.ReferentialActionSetDefault, nil
	case p.kwText("NO"):
		p.advance()
		if err := p.expectKwText("ACTION"); err != nil {
			return ast.ReferentialActionNone, err
		}
		return ast.ReferentialActionNoAction, nil
	}
	return ast.ReferentialActionNone, &Error{Pos: p.cur().Span.Start, Reason: "expected a referential action", Found: p.cur()}
}

func (p *Parser) parseColumnDef() (ast.ColumnDef, error) {
	name, err := p.parseIdent()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	typ, err := p.parseDataType()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	col := ast.ColumnDef{Name: name, Type: typ}
	for {
		opt, ok, err := p.tryParseColumnOption()
		if err != nil {
			return col, err
		}
		if !ok {
			break
		}
		col.Options = append(col.Options, opt)
	}
	return col, nil
}

func (p *Parser) tryParseColumnOption() (ast.ColumnOption, bool, error) {
	var constraintName ast.Ident
	if p.kw(keyword.CONSTRAINT) {
		p.advance()
		name, err := p.parseIdent()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		constraintName = name
	}
	switch {
	case p.kw(keyword.NOT):
		p.advance()
		if err := p.expectKwText("NULL"); err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionNotNull, Name: constraintName}, true, nil
	case p.kw(keyword.NULL):
		p.advance()
		return ast.ColumnOption{Kind: ast.ColumnOptionNull, Name: constraintName}, true, nil
	case p.kw(keyword.DEFAULT):
		p.advance()
		e, err := p.parseExpr(bpComparison)
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionDefault, Name: constraintName, Expr: e}, true, nil
	case p.kw(keyword.UNIQUE):
		p.advance()
		if p.kwText("KEY") {
			p.advance()
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionUnique, Name: constraintName}, true, nil
	case p.kw(keyword.PRIMARY):
		p.advance()
		if err := p.expectKwText("KEY"); err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionPrimaryKey, Name: constraintName}, true, nil
	case p.kw(keyword.CHECK):
		p.advance()
		if _, err := p.expect(token.LParen); err != nil {
			return ast.ColumnOption{}, false, err
		}
		e, err := p.parseExpr(0)
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionCheck, Name: constraintName, Expr: e}, true, nil
	case p.kwText("REFERENCES"):
		ref, err := p.parseForeignKeyRef()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionForeignKey, Name: constraintName, References: &ref}, true, nil
	case p.kw(keyword.COLLATE):
		p.advance()
		n, err := p.parseObjectName()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionCollate, Name: constraintName, Collation: n}, true, nil
	case p.kw(keyword.GENERATED):
		p.advance()
		opt := ast.ColumnOption{Kind: ast.ColumnOptionGenerated, Name: constraintName}
		if p.kw(keyword.ALWAYS) {
			p.advance()
			opt.Generated = ast.GeneratedAlways
		} else if p.kwText("BY") {
			p.advance()
			if err := p.expectKwText("DEFAULT"); err != nil {
				return opt, false, err
			}
			opt.Generated = ast.GeneratedByDefault
		}
		if err := p.expectKwText("AS"); err != nil {
			return opt, false, err
		}
		if p.kw(keyword.IDENTITY) {
			p.advance()
			if p.at(token.LParen) {
				p.advance()
				for !p.at(token.RParen) {
					p.advance()
				}
				if _, err := p.expect(token.RParen); err != nil {
					return opt, false, err
				}
			}
			return opt, true, nil
		}
		if _, err := p.expect(token.LParen); err != nil {
			return opt, false, err
		}
		e, err := p.parseExpr(0)
		if err != nil {
			return opt, false, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return opt, false, err
		}
		opt.Expr = e
		if p.kwText("STORED") {
			p.advance()
			opt.Stored = true
		} else if p.kwText("VIRTUAL") {
			p.advance()
		}
		return opt, true, nil
	case p.kw(keyword.COMMENT):
		p.advance()
		s, err := p.expect(token.SingleQuotedString)
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionComment, Name: constraintName, Comment: s.Text}, true, nil
	case p.kwText("CHARACTER") && p.peekKwText(1, "SET"):
		p.advance()
		p.advance()
		cs, err := p.parseIdent()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionCharacterSet, Name: constraintName, CharacterSet: cs.Name}, true, nil
	case p.kwText("AUTO_INCREMENT"), p.kwText("AUTOINCREMENT"):
		p.advance()
		return ast.ColumnOption{Kind: ast.ColumnOptionAutoIncrement, Name: constraintName}, true, nil
	case p.kw(keyword.ON) && p.peekKwText(1, "UPDATE"):
		p.advance()
		p.advance()
		e, err := p.parseExpr(bpComparison)
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColumnOptionOnUpdate, Name: constraintName, Expr: e}, true, nil
	}
	return ast.ColumnOption{}, false, nil
}

// CREATE VIEW -------------------------------------------------------------

func (p *Parser) parseCreateView(orReplace, materialized, temporary bool) (ast.Statement, error) {
	p.advance() // VIEW
	cv := ast.CreateView{OrReplace: orReplace, Materialized: materialized, Temporary: temporary}
	if ifne, err := p.tryParseIfNotExists(); err != nil {
		return nil, err
	} else {
		cv.IfNotExists = ifne
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cv.Name = name
	if p.at(token.LParen) {
		cols, err := p.parseIdentListParen()
		if err != nil {
			return nil, err
		}
		cv.Columns = cols
	}
	if p.kw(keyword.WITH) {
		p.advance()
		opts, err := p.parseTableOptionList()
		if err != nil {
			return nil, err
		}
		cv.WithOptions = opts
	}
	if err := p.expectKwText("AS"); err != nil {
		return nil, err
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	cv.Query = q
	if p.kw(keyword.WITH) {
		save := p.pos
		p.advance()
		if p.kw(keyword.CHECK) {
			if err := p.expectKwText("OPTION"); err != nil {
				return nil, err
			}
			cv.WithCheckOption = true
		} else {
			p.pos = save
		}
	}
	return cv, nil
}

// CREATE INDEX -------------------------------------------------------------

func (p *Parser) parseCreateIndex(unique bool) (ast.Statement, error) {
	p.advance() // INDEX
	ci := ast.CreateIndex{Unique: unique}
	if p.kwText("CONCURRENTLY") || p.kw(keyword.CONCURRENTLY) {
		p.advance()
		ci.Concurrently = true
	}
	if ifne, err := p.tryParseIfNotExists(); err != nil {
		return nil, err
	} else {
		ci.IfNotExists = ifne
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	ci.Name = name
	if err := p.expectKwText("ON"); err != nil {
		return nil, err
	}
	table, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ci.Table = table
	if p.kw(keyword.USING) {
		p.advance()
		t := p.cur()
		ci.Using = t.Text
		p.advance()
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	for !p.at(token.RParen) {
		e, err := p.parseExpr(bpComparison)
		if err != nil {
			return nil, err
		}
		ic := ast.IndexColumn{Expr: e}
		if p.kw(keyword.ASC) {
			p.advance()
			ic.HasDesc = true
		} else if p.kw(keyword.DESC) {
			p.advance()
			ic.Desc = true
			ic.HasDesc = true
		}
		ci.Columns = append(ci.Columns, ic)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if p.kwText("INCLUDE") {
		p.advance()
		cols, err := p.parseIdentListParen()
		if err != nil {
			return nil, err
		}
		ci.Include = cols
	}
	if p.kw(keyword.WHERE) {
		p.advance()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		ci.Where = e
	}
	return ci, nil
}

// CREATE SCHEMA -------------------------------------------------------------

func (p *Parser) parseCreateSchema() (ast.Statement, error) {
	p.advance() // SCHEMA
	return p.parseCreateSchemaBody()
}

func (p *Parser) parseCreateSchemaBody() (ast.Statement, error) {
	cs := ast.CreateSchema{}
	if ifne, err := p.tryParseIfNotExists(); err != nil {
		return nil, err
	} else {
		cs.IfNotExists = ifne
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cs.Name = name
	if p.kwText("AUTHORIZATION") {
		p.advance()
		owner, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		cs.Authorization = owner
	}
	return cs, nil
}

// CREATE SEQUENCE ------------------------------------------------------

func (p *Parser) parseCreateSequence(temporary bool) (ast.Statement, error) {
	p.advance() // SEQUENCE
	seq := ast.CreateSequence{Temporary: temporary}
	if ifne, err := p.tryParseIfNotExists(); err != nil {
		return nil, err
	} else {
		seq.IfNotExists = ifne
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	seq.Name = name
	if p.kw(keyword.AS) {
		p.advance()
		typ, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		seq.As = typ
	}
	for {
		switch {
		case p.kwText("INCREMENT"):
			p.advance()
			if p.kwText("BY") {
				p.advance()
			}
			e, err := p.parseExpr(bpComparison)
			if err != nil {
				return nil, err
			}
			seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqIncrementBy, Value: e})
		case p.kwText("MINVALUE"):
			p.advance()
			e, err := p.parseExpr(bpComparison)
			if err != nil {
				return nil, err
			}
			seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqMinValue, Value: e})
		case p.kwText("MAXVALUE"):
			p.advance()
			e, err := p.parseExpr(bpComparison)
			if err != nil {
				return nil, err
			}
			seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqMaxValue, Value: e})
		case p.kwText("NO"):
			p.advance()
			switch {
			case p.kwText("MINVALUE"):
				p.advance()
				seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqNoMinValue})
			case p.kwText("MAXVALUE"):
				p.advance()
				seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqNoMaxValue})
			case p.kwText("CYCLE"):
				p.advance()
				seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqNoCycle})
			}
		case p.kw(keyword.START):
			p.advance()
			if p.kw(keyword.WITH) {
				p.advance()
			}
			e, err := p.parseExpr(bpComparison)
			if err != nil {
				return nil, err
			}
			seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqStartWith, Value: e})
		case p.kwText("CACHE"):
			p.advance()
			e, err := p.parseExpr(bpComparison)
			if err != nil {
				return nil, err
			}
			seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqCache, Value: e})
		case p.kwText("CYCLE"):
			p.advance()
			seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqCycle})
		case p.kwText("OWNED"):
			p.advance()
			if err := p.expectKwText("BY"); err != nil {
				return nil, err
			}
			owner, err := p.parseObjectName()
			if err != nil {
				return nil, err
			}
			seq.Options = append(seq.Options, ast.SequenceOption{Kind: ast.SeqOwnedBy, Owner: owner})
		default:
			return seq, nil
		}
	}
}

// CREATE FUNCTION / PROCEDURE --------------------------------------------

func (p *Parser) parseCreateFunction(orReplace, isProcedure bool) (ast.Statement, error) {
	p.advance() // FUNCTION/PROCEDURE
	cf := ast.CreateFunction{OrReplace: orReplace, IsProcedure: isProcedure}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	cf.Name = name
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	for !p.at(token.RParen) {
		param := ast.FunctionParam{}
		if p.kwText("IN") || p.kwText("OUT") || p.kwText("INOUT") {
			param.Mode = p.cur().Text
			p.advance()
		}
		pname, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		param.Name = pname
		typ, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		param.Type = typ
		if p.kw(keyword.DEFAULT) || p.at(token.Eq) {
			p.advance()
			e, err := p.parseExpr(bpComparison)
			if err != nil {
				return nil, err
			}
			param.Default = e
		}
		cf.Params = append(cf.Params, param)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if p.kwText("RETURNS") {
		p.advance()
		typ, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		cf.Returns = typ
	}
	for p.kwText("LANGUAGE") || p.kwText("DETERMINISTIC") || p.kwText("IMMUTABLE") ||
		p.kwText("STABLE") || p.kwText("VOLATILE") {
		switch {
		case p.kwText("LANGUAGE"):
			p.advance()
			cf.Language = p.cur().Text
			p.advance()
		case p.kwText("DETERMINISTIC"):
			p.advance()
			cf.Deterministic = true
		default:
			p.advance()
		}
	}
	if p.kw(keyword.AS) {
		p.advance()
		cf.BodyKind = ast.FunctionBodyOpaque
		t := p.cur()
		cf.OpaqueBody = t.Text
		p.advance()
	}
	return cf, nil
}

// ALTER TABLE -------------------------------------------------------------

func (p *Parser) parseAlterTable() (ast.Statement, error) {
	p.advance() // ALTER
	if err := p.expectKwText("TABLE"); err != nil {
		return nil, err
	}
	at := ast.AlterTable{}
	if ifExists, err := p.tryParseIfExists(); err != nil {
		return nil, err
	} else {
		at.IfExists = ifExists
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	at.Name = name
	for {
		act, err := p.parseAlterTableAction()
		if err != nil {
			return nil, err
		}
		at.Actions = append(at.Actions, act)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return at, nil
}

func (p *Parser) parseAlterTableAction() (ast.AlterTableAction, error) {
	act := ast.AlterTableAction{}
	switch {
	case p.kw(keyword.ADD):
		p.advance()
		if isTableConstraintStart(p) {
			tc, err := p.parseTableConstraint()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterAddConstraint
			act.Constraint = tc
			return act, nil
		}
		if p.kw(keyword.COLUMN) {
			p.advance()
		}
		ifne, err := p.tryParseIfNotExists()
		if err != nil {
			return act, err
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return act, err
		}
		act.Kind = AlterAddColumnKindOrPK(col)
		act.IfNotExists = ifne
		act.Column = col
		return act, nil
	case p.kw(keyword.DROP):
		p.advance()
		switch {
		case p.kw(keyword.COLUMN):
			p.advance()
			ifExists, err := p.tryParseIfExists()
			if err != nil {
				return act, err
			}
			name, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterDropColumn
			act.IfExists = ifExists
			act.ColumnName = name
			if p.kw(keyword.CASCADE) {
				p.advance()
				act.Cascade = true
			}
			return act, nil
		case p.kw(keyword.CONSTRAINT):
			p.advance()
			ifExists, err := p.tryParseIfExists()
			if err != nil {
				return act, err
			}
			name, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterDropConstraint
			act.IfExists = ifExists
			act.ConstraintName = name
			return act, nil
		case p.kw(keyword.PRIMARY):
			p.advance()
			if err := p.expectKwText("KEY"); err != nil {
				return act, err
			}
			act.Kind = ast.AlterDropPrimaryKey
			return act, nil
		default:
			ifExists, err := p.tryParseIfExists()
			if err != nil {
				return act, err
			}
			name, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterDropColumn
			act.IfExists = ifExists
			act.ColumnName = name
			return act, nil
		}
	case p.kw(keyword.ALTER):
		p.advance()
		if p.kw(keyword.COLUMN) {
			p.advance()
		}
		name, err := p.parseIdent()
		if err != nil {
			return act, err
		}
		act.Kind = ast.AlterAlterColumn
		act.ColumnName = name
		switch {
		case p.kwText("TYPE"):
			p.advance()
			typ, err := p.parseDataType()
			if err != nil {
				return act, err
			}
			act.ColumnOp = ast.AlterColumnSetType
			act.NewType = typ
		case p.kw(keyword.SET):
			p.advance()
			if p.kw(keyword.DEFAULT) {
				p.advance()
				e, err := p.parseExpr(0)
				if err != nil {
					return act, err
				}
				act.ColumnOp = ast.AlterColumnSetDefault
				act.DefaultExpr = e
			} else if err := p.expectKwText("NOT"); err == nil {
				if err := p.expectKwText("NULL"); err != nil {
					return act, err
				}
				act.ColumnOp = ast.AlterColumnSetNotNull
			}
		case p.kw(keyword.DROP):
			p.advance()
			if p.kw(keyword.DEFAULT) {
				p.advance()
				act.ColumnOp = ast.AlterColumnDropDefault
			} else {
				if err := p.expectKwText("NOT"); err != nil {
					return act, err
				}
				if err := p.expectKwText("NULL"); err != nil {
					return act, err
				}
				act.ColumnOp = ast.AlterColumnDropNotNull
			}
		default:
			typ, err := p.parseDataType()
			if err != nil {
				return act, err
			}
			act.ColumnOp = ast.AlterColumnSetType
			act.NewType = typ
		}
		return act, nil
	case p.kw(keyword.RENAME):
		p.advance()
		switch {
		case p.kw(keyword.COLUMN):
			p.advance()
			old, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			if err := p.expectKwText("TO"); err != nil {
				return act, err
			}
			n, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterRenameColumn
			act.ColumnName = old
			act.NewColumnName = n
			return act, nil
		case p.kw(keyword.CONSTRAINT):
			p.advance()
			old, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			if err := p.expectKwText("TO"); err != nil {
				return act, err
			}
			n, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterRenameConstraint
			act.ConstraintName = old
			act.NewConstraintName = n
			return act, nil
		case p.kw(keyword.TO):
			p.advance()
			n, err := p.parseObjectName()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterRenameTable
			act.NewTableName = n
			return act, nil
		default:
			old, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			if err := p.expectKwText("TO"); err != nil {
				return act, err
			}
			n, err := p.parseIdent()
			if err != nil {
				return act, err
			}
			act.Kind = ast.AlterRenameColumn
			act.ColumnName = old
			act.NewColumnName = n
			return act, nil
		}
	case p.kwText("ENGINE"):
		p.advance()
		if p.at(token.Eq) {
			p.advance()
		}
		t := p.cur()
		p.advance()
		act.Kind = ast.AlterEngine
		act.Engine = t.Text
		return act, nil
	case p.kwText("OWNER"):
		p.advance()
		if err := p.expectKwText("TO"); err != nil {
			return act, err
		}
		owner, err := p.parseIdent()
		if err != nil {
			return act, err
		}
		act.Kind = ast.AlterOwner
		act.Owner = owner
		return act, nil
	}
	return act, &Error{Pos: p.cur().Span.Start, Reason: "expected an ALTER TABLE action", Found: p.cur()}
}

// AlterAddColumnKindOrPK exists because ADD with a bare column spec is
// always AlterAddColumn; table-level ADD CONSTRAINT/PRIMARY KEY is
// handled separately in parseAlterTableAction before this is reached.
func AlterAddColumnKindOrPK(ast.ColumnDef) ast.AlterTableActionKind {
	return ast.AlterAddColumn
}

// DROP / TRUNCATE ---------------------------------------------------------

func (p *Parser) parseDrop() (ast.Statement, error) {
	p.advance() // DROP
	d := ast.Drop{}
	switch {
	case p.kw(keyword.TABLE):
		p.advance()
		d.ObjectType = ast.DropTable
	case p.kw(keyword.VIEW):
		p.advance()
		d.ObjectType = ast.DropView
	case p.kw(keyword.INDEX):
		p.advance()
		d.ObjectType = ast.DropIndex
		if p.kwText("CONCURRENTLY") {
			p.advance()
			d.Concurrently = true
		}
	case p.kw(keyword.SCHEMA):
		p.advance()
		d.ObjectType = ast.DropSchema
	case p.kw(keyword.DATABASE):
		p.advance()
		d.ObjectType = ast.DropDatabase
	case p.kw(keyword.SEQUENCE):
		p.advance()
		d.ObjectType = ast.DropSequence
	case p.kw(keyword.FUNCTION):
		p.advance()
		d.ObjectType = ast.DropFunction
	case p.kw(keyword.PROCEDURE):
		p.advance()
		d.ObjectType = ast.DropProcedure
	default:
		return nil, &Error{Pos: p.cur().Span.Start, Reason: "expected an object type after DROP", Found: p.cur()}
	}
	if ifExists, err := p.tryParseIfExists(); err != nil {
		return nil, err
	} else {
		d.IfExists = ifExists
	}
	for {
		n, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		d.Names = append(d.Names, n)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if p.kw(keyword.CASCADE) {
		p.advance()
		d.Cascade = true
	} else if p.kw(keyword.RESTRICT) {
		p.advance()
		d.Restrict = true
	}
	return d, nil
}

func (p *Parser) parseTruncate() (ast.Statement, error) {
	p.advance() // TRUNCATE
	if p.kw(keyword.TABLE) {
		p.advance()
	}
	t := ast.Truncate{}
	for {
		n, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		t.Names = append(t.Names, n)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if p.kwText("RESTART") {
		p.advance()
		if err := p.expectKwText("IDENTITY"); err != nil {
			return nil, err
		}
		t.RestartIdentity = true
	}
	if p.kw(keyword.CASCADE) {
		p.advance()
		t.Cascade = true
	}
	return t, nil
}

// MERGE --------------------------------------------------------------------

func (p *Parser) parseMerge() (ast.Statement, error) {
	p.advance() // MERGE
	if p.kw(keyword.INTO) {
		p.advance()
	}
	m := ast.Merge{}
	target, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	m.Target = target
	if alias, err := p.parseOptionalAlias(); err != nil {
		return nil, err
	} else if alias != nil {
		m.TargetAlias = alias.Name
	}
	if err := p.expectKwText("USING"); err != nil {
		return nil, err
	}
	source, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	m.Source = source
	if alias, err := p.parseOptionalAlias(); err != nil {
		return nil, err
	} else if alias != nil {
		m.SourceAlias = alias.Name
	}
	if err := p.expectKwText("ON"); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	m.On = e

	for p.kw(keyword.WHEN) {
		clause, err := p.parseMergeClause()
		if err != nil {
			return nil, err
		}
		m.Clauses = append(m.Clauses, clause)
	}
	return m, nil
}

func (p *Parser) parseMergeClause() (ast.MergeClause, error) {
	p.advance() // WHEN
	mc := ast.MergeClause{}
	notMatched := false
	if p.kw(keyword.NOT) {
		p.advance()
		notMatched = true
	}
	if err := p.expectKwText("MATCHED"); err != nil {
		return mc, err
	}
	if notMatched {
		mc.Kind = ast.MergeWhenNotMatched
		if p.kwText("BY") {
			p.advance()
			if p.kwText("SOURCE") {
				p.advance()
				mc.Kind = ast.MergeWhenNotMatchedBySource
			} else if p.kwText("TARGET") {
				p.advance()
			}
		}
	} else {
		mc.Kind = ast.MergeWhenMatched
	}
	if p.kw(keyword.AND) {
		p.advance()
		e, err := p.parseExpr(0)
		if err != nil {
			return mc, err
		}
		mc.Condition = e
	}
	if err := p.expectKwText("THEN"); err != nil {
		return mc, err
	}
	switch {
	case p.kw(keyword.UPDATE):
		p.advance()
		if err := p.expectKwText("SET"); err != nil {
			return mc, err
		}
		assigns, err := p.parseAssignmentList()
		if err != nil {
			return mc, err
		}
		mc.Action = ast.MergeActionUpdate
		mc.Assignments = assigns
	case p.kw(keyword.DELETE):
		p.advance()
		mc.Action = ast.MergeActionDelete
	case p.kw(keyword.INSERT):
		p.advance()
		if p.at(token.LParen) {
			cols, err := p.parseIdentListParen()
			if err != nil {
				return mc, err
			}
			mc.InsertColumns = cols
		}
		if p.kwText("DEFAULT") {
			p.advance()
			if err := p.expectKwText("VALUES"); err != nil {
				return mc, err
			}
			mc.InsertIsDefaultValues = true
		} else {
			if err := p.expectKwText("VALUES"); err != nil {
				return mc, err
			}
			exprs, err := p.parseExprListParen()
			if err != nil {
				return mc, err
			}
			mc.InsertValues = exprs
		}
		mc.Action = ast.MergeActionInsert
	}
	return mc, nil
}

// GRANT / REVOKE -------------------------------------------------------

func (p *Parser) parsePrivilegeList() ([]ast.Privilege, error) {
	var out []ast.Privilege
	for {
		t := p.cur()
		name := t.Text
		p.advance()
		priv := ast.Privilege{Name: name}
		if p.at(token.LParen) {
			cols, err := p.parseIdentListParen()
			if err != nil {
				return nil, err
			}
			priv.Columns = cols
		}
		out = append(out, priv)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return out, nil
}

func (p *Parser) parseGrantObjectTypeAndTargets() (ast.GrantObjectType, []ast.ObjectName, error) {
	objType := ast.GrantObjectTable
	switch {
	case p.kw(keyword.TABLE):
		p.advance()
	case p.kw(keyword.SCHEMA):
		p.advance()
		objType = ast.GrantObjectSchema
	case p.kw(keyword.DATABASE):
		p.advance()
		objType = ast.GrantObjectDatabase
	case p.kw(keyword.SEQUENCE):
		p.advance()
		objType = ast.GrantObjectSequence
	case p.kw(keyword.FUNCTION):
		p.advance()
		objType = ast.GrantObjectFunction
	}
	var targets []ast.ObjectName
	for {
		n, err := p.parseObjectName()
		if err != nil {
			return objType, nil, err
		}
		targets = append(targets, n)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return objType, targets, nil
}

func (p *Parser) parseGrant() (ast.Statement, error) {
	p.advance() // GRANT
	g := ast.Grant{}
	privs, err := p.parsePrivilegeList()
	if err != nil {
		return nil, err
	}
	g.Privileges = privs
	if err := p.expectKwText("ON"); err != nil {
		return nil, err
	}
	objType, targets, err := p.parseGrantObjectTypeAndTargets()
	if err != nil {
		return nil, err
	}
	g.ObjectType = objType
	g.Objects = targets
	if err := p.expectKwText("TO"); err != nil {
		return nil, err
	}
	for {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		g.Grantees = append(g.Grantees, id)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if p.kw(keyword.WITH) {
		p.advance()
		if err := p.expectKwText("GRANT"); err != nil {
			return nil, err
		}
		if err := p.expectKwText("OPTION"); err != nil {
			return nil, err
		}
		g.WithGrantOption = true
	}
	return g, nil
}

func (p *Parser) parseRevoke() (ast.Statement, error) {
	p.advance() // REVOKE
	r := ast.Revoke{}
	if p.kw(keyword.GRANT) {
		p.advance()
		if err := p.expectKwText("OPTION"); err != nil {
			return nil, err
		}
		if err := p.expectKwText("FOR"); err != nil {
			return nil, err
		}
		r.GrantOptionFor = true
	}
	privs, err := p.parsePrivilegeList()
	if err != nil {
		return nil, err
	}
	r.Privileges = privs
	if err := p.expectKwText("ON"); err != nil {
		return nil, err
	}
	objType, targets, err := p.parseGrantObjectTypeAndTargets()
	if err != nil {
		return nil, err
	}
	r.ObjectType = objType
	r.Objects = targets
	if err := p.expectKwText("FROM"); err != nil {
		return nil, err
	}
	for {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		r.Grantees = append(r.Grantees, id)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if p.kw(keyword.CASCADE) {
		p.advance()
		r.Cascade = true
	} else if p.kw(keyword.RESTRICT) {
		p.advance()
	}
	return r, nil
}

// Transaction control -------------------------------------------------

func (p *Parser) parseStartTransaction() (ast.Statement, error) {
	p.advance() // BEGIN or START
	if p.kw(keyword.TRANSACTION) || p.kw(keyword.WORK) {
		p.advance()
	}
	st := ast.StartTransaction{}
	for {
		switch {
		case p.kwText("ISOLATION"):
			p.advance()
			if err := p.expectKwText("LEVEL"); err != nil {
				return nil, err
			}
			level := ""
			for p.at(token.Word) {
				level += p.cur().Text + " "
				p.advance()
				if p.at(token.Comma) || !p.at(token.Word) {
					break
				}
			}
			st.Modes = append(st.Modes, ast.TransactionMode{IsolationLevel: level})
		case p.kwText("READ"):
			p.advance()
			mode := ast.TransactionMode{HasReadOnly: true}
			if p.kwText("ONLY") {
				p.advance()
				mode.ReadOnly = true
			} else if p.kwText("WRITE") {
				p.advance()
				mode.ReadOnly = false
			}
			st.Modes = append(st.Modes, mode)
		default:
			return st, nil
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		return st, nil
	}
}

func (p *Parser) parseCommit() (ast.Statement, error) {
	p.advance() // COMMIT
	if p.kw(keyword.WORK) || p.kw(keyword.TRANSACTION) {
		p.advance()
	}
	c := ast.Commit{}
	if p.kw(keyword.AND) {
		p.advance()
		if p.kw(keyword.NOT) {
			p.advance()
		} else {
			c.Chain = true
		}
		if p.kwText("CHAIN") {
			p.advance()
		}
	}
	return c, nil
}

func (p *Parser) parseRollback() (ast.Statement, error) {
	p.advance() // ROLLBACK
	if p.kw(keyword.WORK) || p.kw(keyword.TRANSACTION) {
		p.advance()
	}
	r := ast.Rollback{}
	if p.kw(keyword.TO) {
		p.advance()
		if p.kw(keyword.SAVEPOINT) {
			p.advance()
		}
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		r.SavepointName = name
	}
	return r, nil
}

func (p *Parser) parseSavepoint() (ast.Statement, error) {
	p.advance() // SAVEPOINT
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return ast.Savepoint{Name: name}, nil
}

func (p *Parser) parseReleaseSavepoint() (ast.Statement, error) {
	p.advance() // RELEASE
	if p.kw(keyword.SAVEPOINT) {
		p.advance()
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return ast.ReleaseSavepoint{Name: name}, nil
}

// EXPLAIN / USE -------------------------------------------------------

func (p *Parser) parseExplain() (ast.Statement, error) {
	p.advance() // EXPLAIN/DESCRIBE
	ex := ast.Explain{}
	for {
		switch {
		case p.kwText("ANALYZE"):
			p.advance()
			ex.Analyze = true
		case p.kwText("VERBOSE"):
			p.advance()
			ex.Verbose = true
		case p.kwText("FORMAT"):
			p.advance()
			ex.Format = parseExplainFormat(p.cur().Text)
			p.advance()
		default:
			goto done
		}
	}
done:
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	ex.Statement = stmt
	return ex, nil
}

func parseExplainFormat(s string) ast.ExplainFormat {
	switch s {
	case "JSON", "json":
		return ast.ExplainFormatJSON
	case "XML", "xml":
		return ast.ExplainFormatXML
	case "YAML", "yaml":
		return ast.ExplainFormatYAML
	case "TRADITIONAL", "traditional":
		return ast.ExplainFormatTraditional
	case "TEXT", "text":
		return ast.ExplainFormatText
	}
	return ast.ExplainFormatDefault
}

func (p *Parser) parseUse() (ast.Statement, error) {
	p.advance() // USE
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	return ast.Use{Name: name}, nil
}

// COPY -----------------------------------------------------------------

func (p *Parser) parseCopy() (ast.Statement, error) {
	p.advance() // COPY
	c := ast.Copy{}
	if p.at(token.LParen) {
		p.advance()
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		c.Target.Query = q
	} else {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		c.Target.Table = name
		if p.at(token.LParen) {
			cols, err := p.parseIdentListParen()
			if err != nil {
				return nil, err
			}
			c.Target.Columns = cols
		}
	}
	switch {
	case p.kw(keyword.TO):
		p.advance()
		c.Direction = ast.CopyTo
	case p.kw(keyword.FROM):
		p.advance()
		c.Direction = ast.CopyFrom
	default:
		return nil, &Error{Pos: p.cur().Span.Start, Reason: "expected TO or FROM", Found: p.cur()}
	}
	switch {
	case p.kwText("STDIN"):
		p.advance()
		c.Source = "STDIN"
	case p.kwText("STDOUT"):
		p.advance()
		c.Source = "STDOUT"
	case p.kwText("PROGRAM"):
		p.advance()
		s, err := p.expect(token.SingleQuotedString)
		if err != nil {
			return nil, err
		}
		c.Source = "PROGRAM '" + s.Text + "'"
	default:
		s, err := p.expect(token.SingleQuotedString)
		if err != nil {
			return nil, err
		}
		c.Source = s.Text
	}
	if p.kw(keyword.WITH) {
		p.advance()
		opts, err := p.parseTableOptionList()
		if err != nil {
			return nil, err
		}
		c.Options = opts
	}
	return c, nil
}

// DECLARE / FETCH / CLOSE ------------------------------------------------

func (p *Parser) parseDeclare() (ast.Statement, error) {
	p.advance() // DECLARE
	d := ast.Declare{}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	d.Name = name
	if p.kwText("CURSOR") {
		p.advance()
		if err := p.expectKwText("FOR"); err != nil {
			return nil, err
		}
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		d.CursorFor = q
		return d, nil
	}
	typ, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	d.Type = typ
	if p.at(token.Walrus) || p.kw(keyword.DEFAULT) {
		p.advance()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		d.Default = e
	}
	return d, nil
}

func (p *Parser) parseFetch() (ast.Statement, error) {
	p.advance() // FETCH
	f := ast.Fetch{}
	switch {
	case p.kwText("NEXT"), p.kwText("PRIOR"), p.kw(keyword.FIRST), p.kw(keyword.LAST),
		p.kwText("FORWARD"), p.kwText("BACKWARD"):
		f.Direction = p.cur().Text
		p.advance()
		if p.at(token.Number) {
			f.Direction += " " + p.cur().Text
			p.advance()
		}
	case p.kwText("ABSOLUTE"), p.kwText("RELATIVE"):
		f.Direction = p.cur().Text
		p.advance()
		n, err := p.expect(token.Number)
		if err != nil {
			return nil, err
		}
		f.Direction += " " + n.Text
	case p.kw(keyword.ALL):
		f.Direction = "ALL"
		p.advance()
	}
	if p.kw(keyword.FROM) || p.kwText("IN") {
		p.advance()
	}
	cursor, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	f.Cursor = cursor
	if p.kw(keyword.INTO) {
		p.advance()
		for {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			f.Into = append(f.Into, id)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	return f, nil
}

func (p *Parser) parseClose() (ast.Statement, error) {
	p.advance() // CLOSE
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return ast.Close{Cursor: name}, nil
}

// PREPARE / EXECUTE / DEALLOCATE -----------------------------------------

func (p *Parser) parsePrepare() (ast.Statement, error) {
	p.advance() // PREPARE
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	pr := ast.Prepare{Name: name}
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) {
			typ, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			pr.ParamTypes = append(pr.ParamTypes, typ)
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
	if err := p.expectKwText("AS"); err != nil {
		return nil, err
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	pr.Statement = stmt
	return pr, nil
}

func (p *Parser) parseExecute() (ast.Statement, error) {
	p.advance() // EXECUTE
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	ex := ast.Execute{Name: name}
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) {
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			ex.Args = append(ex.Args, e)
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
	return ex, nil
}

func (p *Parser) parseDeallocate() (ast.Statement, error) {
	p.advance() // DEALLOCATE
	if p.kw(keyword.PREPARE) {
		p.advance()
	}
	if p.kw(keyword.ALL) {
		p.advance()
		return ast.Deallocate{All: true}, nil
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return ast.Deallocate{Name: name}, nil
}

// SET --------------------------------------------------------------------

func (p *Parser) parseSet() (ast.Statement, error) {
	p.advance() // SET
	s := ast.SetStatement{}
	switch {
	case p.kwText("SESSION"):
		p.advance()
		s.Scope = ast.SetScopeSession
	case p.kwText("LOCAL"):
		p.advance()
		s.Scope = ast.SetScopeLocal
	case p.kwText("GLOBAL"):
		p.advance()
		s.Scope = ast.SetScopeGlobal
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	s.Name = name
	if p.at(token.Eq) || p.kw(keyword.TO) {
		p.advance()
	}
	for {
		e, err := p.parseExpr(bpComparison)
		if err != nil {
			return nil, err
		}
		s.Values = append(s.Values, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return s, nil
}

// IF statement (procedural bodies) ---------------------------------------

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	p.advance() // IF
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKwText("THEN"); err != nil {
		return nil, err
	}
	then, err := p.parseStatementBlock("ELSIF", "ELSEIF", "ELSE", "END")
	if err != nil {
		return nil, err
	}
	ifs := ast.IfStatement{Condition: cond, Then: then}
	for p.kwText("ELSIF") || p.kwText("ELSEIF") {
		p.advance()
		c, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectKwText("THEN"); err != nil {
			return nil, err
		}
		body, err := p.parseStatementBlock("ELSIF", "ELSEIF", "ELSE", "END")
		if err != nil {
			return nil, err
		}
		ifs.ElseIfs = append(ifs.ElseIfs, ast.ElseIfBranch{Condition: c, Body: body})
	}
	if p.kw(keyword.ELSE) {
		p.advance()
		body, err := p.parseStatementBlock("END")
		if err != nil {
			return nil, err
		}
		ifs.Else = body
	}
	if err := p.expectKwText("END"); err != nil {
		return nil, err
	}
	if p.kw(keyword.IF) {
		p.advance()
	}
	return ifs, nil
}
