package ast

// Visitor is called once per node during Walk. Returning false stops
// descent into that node's children; Walk still visits its siblings.
type Visitor func(n Node) bool

// Walk traverses n and its descendants depth-first, in source order,
// calling visit on each node reached through Children(). This is the
// tree-walking counterpart to the parser: any consumer that wants to
// find every identifier, every subquery, every table reference, and so
// on, can do it generically against Children() rather than writing a
// type switch over every node kind in the package.
func Walk(n Node, visit Visitor) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, visit)
	}
}

// Collect runs Walk over n and returns every node for which match
// returns true, in traversal order.
func Collect(n Node, match func(Node) bool) []Node {
	var out []Node
	Walk(n, func(node Node) bool {
		if match(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}
