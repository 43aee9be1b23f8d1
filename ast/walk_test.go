package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkVisitsEveryNode(t *testing.T) {
	expr := BinaryOp{
		Left:  IdentExpr{Ident: NewIdent("a")},
		Op:    OpPlus,
		Right: BinaryOp{Left: NumberLiteral{Raw: "1"}, Op: OpPlus, Right: NumberLiteral{Raw: "2"}},
	}

	var visited int
	Walk(expr, func(n Node) bool {
		visited++
		return true
	})

	// expr, left ident, left ident's wrapped Ident, right binop, its two
	// number literals: 6 nodes total (IdentExpr.Children returns the Ident).
	assert.Equal(t, 6, visited)
}

func TestWalkStopsDescendingWhenVisitorReturnsFalse(t *testing.T) {
	expr := BinaryOp{
		Left:  IdentExpr{Ident: NewIdent("a")},
		Op:    OpPlus,
		Right: NumberLiteral{Raw: "1"},
	}

	var visited int
	Walk(expr, func(n Node) bool {
		visited++
		if _, ok := n.(IdentExpr); ok {
			return false // don't descend into the Ident below it
		}
		return true
	})

	assert.Equal(t, 3, visited) // expr, IdentExpr, NumberLiteral
}

func TestWalkNilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Walk(nil, func(n Node) bool { return true })
	})
}

func TestCollectFindsMatchingNodes(t *testing.T) {
	expr := BinaryOp{
		Left:  IdentExpr{Ident: NewIdent("a")},
		Op:    OpPlus,
		Right: BinaryOp{Left: IdentExpr{Ident: NewIdent("b")}, Op: OpPlus, Right: NumberLiteral{Raw: "1"}},
	}

	idents := Collect(expr, func(n Node) bool {
		_, ok := n.(IdentExpr)
		return ok
	})

	assert.Len(t, idents, 2)
}

func TestCollectNoMatches(t *testing.T) {
	expr := NumberLiteral{Raw: "1"}
	matches := Collect(expr, func(n Node) bool { return false })
	assert.Empty(t, matches)
}
