package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		lookup  string
		wantOK  bool
		wantCap func(d Dialect) bool
	}{
		{"postgres", "postgresql", true, func(d Dialect) bool { return d.SupportsDollarQuotedStrings }},
		{"mysql", "mysql", true, func(d Dialect) bool { return d.SupportsBacktickIdentifierQuoting }},
		{"mssql", "mssql", true, func(d Dialect) bool { return d.SupportsBracketIdentifierQuoting }},
		{"unknown", "nonesuch", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.lookup, d.Name())
				assert.True(t, tt.wantCap(d))
			}
		})
	}
}

func TestNewStartsFromGeneric(t *testing.T) {
	d := New("custom")
	assert.Equal(t, "custom", d.Name())
	assert.Equal(t, Generic.SupportsLimitClause, d.SupportsLimitClause)
}

func TestWithOverrides(t *testing.T) {
	base := New("custom")
	overridden := base.WithOverrides(map[string]bool{"END": false})

	reserved, ok := overridden.IsReservedOverride("END")
	assert.True(t, ok)
	assert.False(t, reserved)

	_, ok = base.IsReservedOverride("END")
	assert.False(t, ok, "WithOverrides must not mutate the receiver")
}

func TestIsReservedOverrideNilTable(t *testing.T) {
	d := New("custom")
	_, ok := d.IsReservedOverride("SELECT")
	assert.False(t, ok)
}
