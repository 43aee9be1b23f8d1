package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
	}{
		{"eof", EOF, "EOF"},
		{"word", Word, "WORD"},
		{"comma", Comma, ","},
		{"arrow", Arrow, "->"},
		{"longArrow", LongArrow, "->>"},
		{"spaceship", Spaceship, "<=>"},
		{"unknown", Kind(99999), "Kind(99999)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestKindIsLiteral(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected bool
	}{
		{"number", Number, true},
		{"singleQuoted", SingleQuotedString, true},
		{"placeholder", Placeholder, true},
		{"word", Word, false},
		{"comma", Comma, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.IsLiteral())
		})
	}
}

func TestKindIsPunctuation(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected bool
	}{
		{"comma", Comma, true},
		{"colon", Colon, true},
		{"word", Word, false},
		{"number", Number, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.IsPunctuation())
		})
	}
}

func TestPosString(t *testing.T) {
	p := Pos{Offset: 10, Line: 2, Column: 5}
	assert.Equal(t, "2:5", p.String())
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		expected string
	}{
		{"withText", Token{Kind: Word, Text: "foo"}, "foo"},
		{"withoutText", Token{Kind: Comma}, ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tok.String())
		})
	}
}

func TestErrorError(t *testing.T) {
	err := &Error{Pos: Pos{Line: 3, Column: 7}, Reason: "unterminated string"}
	assert.Equal(t, "tokenize error at 3:7: unterminated string", err.Error())
}
