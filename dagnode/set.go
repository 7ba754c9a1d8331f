package dagnode

// Set is a set of graph positions: membership is keyed by Handle, so two
// nodes with identical payloads but different identities are distinct
// members. Not safe for concurrent use; the owning algorithm serializes.
type Set struct {
	members map[Handle]*Node
}

// NewSet creates a set holding the given nodes.
func NewSet(nodes ...*Node) *Set {
	s := &Set{members: make(map[Handle]*Node, len(nodes))}
	for _, n := range nodes {
		s.Add(n)
	}
	return s
}

// Add inserts the node, replacing any previous node with the same handle.
func (s *Set) Add(n *Node) {
	s.members[n.Handle()] = n
}

// Has reports membership by handle.
func (s *Set) Has(n *Node) bool {
	_, ok := s.members[n.Handle()]
	return ok
}

// Delete removes the node, if present.
func (s *Set) Delete(n *Node) {
	delete(s.members, n.Handle())
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.members)
}

// Sorted returns the members in ascending identity order. The fixed order
// makes iteration deterministic for callers that draw or diff graphs.
func (s *Set) Sorted() []*Node {
	nodes := make([]*Node, 0, len(s.members))
	for _, n := range s.members {
		nodes = append(nodes, n)
	}
	SortNodes(nodes)
	return nodes
}
