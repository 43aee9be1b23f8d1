package sqlast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndFormat(t *testing.T) {
	stmts, err := Parse("select  1", Generic)
	assert.NoError(t, err)
	if assert.Len(t, stmts, 1) {
		assert.Equal(t, "SELECT 1", Format(stmts[0]))
	}
}

func TestReformat(t *testing.T) {
	out, err := Reformat("select a from t where a=1", Generic)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE a = 1", out)
}

func TestReformatTrailingSemicolon(t *testing.T) {
	out, err := Reformat("SELECT 1", Generic, WithTrailingSemicolon(true))
	assert.NoError(t, err)
	assert.Equal(t, "SELECT 1;", out)
}

func TestLookupDialect(t *testing.T) {
	d, ok := LookupDialect("mysql")
	assert.True(t, ok)
	assert.Equal(t, "mysql", d.Name())

	_, ok = LookupDialect("nonesuch")
	assert.False(t, ok)
}

func TestFormatAllJoinsStatements(t *testing.T) {
	stmts, err := Parse("SELECT 1; SELECT 2", Generic)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT 1;\nSELECT 2", FormatAll(stmts))
}
