package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlast/sqlast/ast"
	"github.com/sqlast/sqlast/dialect"
)

// reformat parses sql once, prints it, reparses the printed text, and
// prints that: the two printed forms must agree, since printing is a
// pure function of the tree and reparsing printed, canonical SQL must
// reproduce an equivalent tree.
func reformat(t *testing.T, sql string, d dialect.Dialect) string {
	t.Helper()
	stmts, err := Parse(sql, d)
	if err != nil {
		t.Fatalf("first parse of %q failed: %v", sql, err)
	}
	first := ast.FormatStatements(stmts)

	reparsed, err := Parse(first, d)
	if err != nil {
		t.Fatalf("reparse of %q failed: %v", first, err)
	}
	second := ast.FormatStatements(reparsed)

	assert.Equal(t, first, second, "printing must be a fixed point after one round trip")
	return first
}

func TestRoundTripStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		d    dialect.Dialect
	}{
		{"selectLiteral", "SELECT 1", dialect.Generic},
		{"selectColumns", "SELECT a, b FROM t WHERE a = 1", dialect.Generic},
		{"selectStar", "SELECT * FROM t", dialect.Generic},
		{"selectJoin", "SELECT t1.id FROM t1 JOIN t2 ON t1.id = t2.id", dialect.Generic},
		{"selectOrderLimit", "SELECT a FROM t ORDER BY a DESC LIMIT 10", dialect.Generic},
		{"selectGroupHaving", "SELECT a, COUNT(*) FROM t GROUP BY a HAVING COUNT(*) > 1", dialect.Generic},
		{"selectSubquery", "SELECT a FROM (SELECT a FROM t) AS sub", dialect.Generic},
		{"selectUnion", "SELECT a FROM t1 UNION SELECT a FROM t2", dialect.Generic},
		{"insertValues", "INSERT INTO t (a, b) VALUES (1, 2)", dialect.Generic},
		{"insertSelect", "INSERT INTO t (a) SELECT a FROM u", dialect.Generic},
		{"update", "UPDATE t SET a = 1, b = 2 WHERE c = 3", dialect.Generic},
		{"delete", "DELETE FROM t WHERE a = 1", dialect.Generic},
		{"createTable", "CREATE TABLE t (id INT PRIMARY KEY, name VARCHAR(10) NOT NULL)", dialect.Generic},
		{"createTableIfNotExists", "CREATE TABLE IF NOT EXISTS t (id INT)", dialect.Generic},
		{"dropTable", "DROP TABLE t", dialect.Generic},
		{"truncate", "TRUNCATE TABLE t", dialect.Generic},
		{"createIndex", "CREATE INDEX idx ON t (a, b)", dialect.Generic},
		{"alterTableAddColumn", "ALTER TABLE t ADD COLUMN a INT", dialect.Generic},
		{"beginCommit", "BEGIN", dialect.Generic},
		{"rollback", "ROLLBACK", dialect.Generic},
		{"caseExpr", "SELECT CASE WHEN a > 1 THEN 'x' ELSE 'y' END FROM t", dialect.Generic},
		{"castExpr", "SELECT CAST(a AS INT) FROM t", dialect.Generic},
		{"betweenExpr", "SELECT a FROM t WHERE a BETWEEN 1 AND 10", dialect.Generic},
		{"inList", "SELECT a FROM t WHERE a IN (1, 2, 3)", dialect.Generic},
		{"likeExpr", "SELECT a FROM t WHERE a LIKE 'x%'", dialect.Generic},
		{"existsSubquery", "SELECT a FROM t WHERE EXISTS (SELECT 1 FROM u)", dialect.Generic},
		{"functionCall", "SELECT COUNT(a) FROM t", dialect.Generic},
		{"windowFunction", "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t", dialect.Generic},
		{"doubleColonCast", "SELECT a::int FROM t", dialect.Postgres},
		{"dollarQuoted", "SELECT $$hello$$", dialect.Postgres},
		{"backtickIdent", "SELECT `a` FROM `t`", dialect.MySQL},
		{"bracketIdent", "SELECT [a] FROM [t]", dialect.MSSQL},
		{"topClause", "SELECT TOP 10 a FROM t", dialect.MSSQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reformat(t, tt.sql, tt.d)
		})
	}
}

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := Parse("SELECT 1; SELECT 2;", dialect.Generic)
	assert.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestParseEmptyStatementsAreSkipped(t *testing.T) {
	stmts, err := Parse(";;SELECT 1;;", dialect.Generic)
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)
}

func TestParseErrorOnGarbage(t *testing.T) {
	_, err := Parse("not a valid statement (((", dialect.Generic)
	assert.Error(t, err)

	var perr *Error
	assert.ErrorAs(t, err, &perr)
}

func TestParseErrorOnUnexpectedTrailingInput(t *testing.T) {
	_, err := Parse("SELECT 1 SELECT 2", dialect.Generic)
	assert.Error(t, err)
}

func TestTopClauseRejectedOutsideMSSQL(t *testing.T) {
	_, err := Parse("SELECT TOP 10 a FROM t", dialect.Generic)
	assert.Error(t, err)
}

func TestMaxDepthLimitsNesting(t *testing.T) {
	deep := "SELECT "
	for i := 0; i < 20; i++ {
		deep += "("
	}
	deep += "1"
	for i := 0; i < 20; i++ {
		deep += ")"
	}

	_, err := Parse(deep, dialect.Generic, WithMaxDepth(5))
	assert.Error(t, err)

	_, err = Parse(deep, dialect.Generic, WithMaxDepth(100))
	assert.NoError(t, err)
}

func TestParseWithMarginComments(t *testing.T) {
	sql := "/* header */\nSELECT 1\n-- trailer\n"
	stmts, margin, err := ParseWithMarginComments(sql, dialect.Generic, WithRecordComments(true))
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)
	assert.Equal(t, "/* header */", margin.Leading)
	assert.Equal(t, "-- trailer", margin.Trailing)
}

func TestParseWithoutRecordCommentsIgnoresMargin(t *testing.T) {
	sql := "/* header */\nSELECT 1\n"
	stmts, margin, err := ParseWithMarginComments(sql, dialect.Generic)
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)
	assert.Equal(t, MarginComments{}, margin)
}

func TestMysqlVersionCommentIsLiveSQL(t *testing.T) {
	stmts, err := Parse("/*!40101 SET NAMES utf8 */", dialect.MySQL)
	assert.NoError(t, err)
	if assert.Len(t, stmts, 1) {
		_, ok := stmts[0].(ast.SetStatement)
		assert.True(t, ok, "version-gated SET must be parsed, not dropped as a comment")
	}
}

func TestIsMysqlVersionComment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"versioned", "/*!40101 SET NAMES utf8 */", true},
		{"plain", "/* just a comment */", false},
		{"tooShort", "/*!*/", false},
		{"noDigits", "/*!abc comment*/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMysqlVersionComment(tt.text))
		})
	}
}
