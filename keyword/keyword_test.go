package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		word string
		want Keyword
	}{
		{"lower", "select", SELECT},
		{"upper", "SELECT", SELECT},
		{"mixed", "SeLeCt", SELECT},
		{"fromAlias", "FROM", FROM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kw, ok := Lookup(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.want, kw)
		})
	}
}

func TestLookupNotAKeyword(t *testing.T) {
	_, ok := Lookup("totally_not_a_keyword")
	assert.False(t, ok)
}

func TestLookupRegexpAlias(t *testing.T) {
	kw, ok := Lookup("regexp")
	assert.True(t, ok)
	assert.Equal(t, RLIKE, kw)

	kw, ok = Lookup("rlike")
	assert.True(t, ok)
	assert.Equal(t, RLIKE, kw)
}

func TestKeywordString(t *testing.T) {
	assert.Equal(t, "SELECT", SELECT.String())
	assert.Equal(t, "", NotKeyword.String())
}

func TestDefaultReserved(t *testing.T) {
	tests := []struct {
		name string
		kw   Keyword
		want bool
	}{
		{"select", SELECT, true},
		{"from", FROM, true},
		{"exists", EXISTS, true},
		{"notKeyword", NotKeyword, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultReserved(tt.kw))
		})
	}
}
