package dagnode

import (
	"cmp"
	"slices"
)

// Handle is the opaque membership key derived from a node's identity. Graph
// algorithms that need node sets or maps key them by Handle, so membership
// follows graph position, never payload content.
type Handle int64

// Handle returns the node's membership key.
func (n *Node) Handle() Handle {
	return Handle(n.id)
}

// Compare orders two nodes by identity. It is the strict total order
// algorithms use for deterministic iteration and tie-breaking, and is
// unrelated to SemanticEq.
func Compare(a, b *Node) int {
	return cmp.Compare(a.id, b.id)
}

// Less reports whether n was assigned a smaller identity than other.
func (n *Node) Less(other *Node) bool {
	return n.id < other.id
}

// SortNodes sorts nodes in place into identity order.
func SortNodes(nodes []*Node) {
	slices.SortFunc(nodes, Compare)
}
