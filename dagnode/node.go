package dagnode

import (
	"fmt"

	"github.com/vk/qdag/circuit"
)

// Payload is the tagged record a node carries. Kind says which fields are
// meaningful; the rest stay at their zero values. The fields mirror what the
// owning graph knows when it inserts a vertex:
//
//   - KindOperation: Op, Name, Qargs, Cargs, and optionally Condition.
//   - KindInput / KindOutput: Wire, and optionally Name.
//   - KindUnset: nothing yet; the node is under construction.
//
// No validation ties the fields to the kind. The graph's rewriting passes
// own that consistency, exactly as they own operand arity.
type Payload struct {
	Kind      Kind
	Op        circuit.Operation
	Name      string
	Qargs     []circuit.Qubit
	Cargs     []circuit.Clbit
	Condition *circuit.Condition
	Wire      circuit.Bit
}

// Node is a single vertex in a circuit DAG: an identity assigned by the
// owning graph plus a Payload. The identity is immutable; the name and
// quantum operands may be rewritten in place for the life of the node.
type Node struct {
	// id is assigned once by the owning graph and never reused within that
	// graph's lifetime. -1 means the node is not in a graph yet.
	id int64

	kind  Kind
	op    circuit.Operation
	name  string
	qargs []circuit.Qubit
	cargs []circuit.Clbit
	cond  *circuit.Condition
	wire  circuit.Bit
}

// New creates a node storing the payload and identity verbatim. A payload
// with KindUnset is legal; the graph may fill the node in incrementally.
func New(p Payload, id int64) *Node {
	return &Node{
		id:    id,
		kind:  p.Kind,
		op:    p.Op,
		name:  p.Name,
		qargs: p.Qargs,
		cargs: p.Cargs,
		cond:  p.Condition,
		wire:  p.Wire,
	}
}

// NewOperation creates an operation vertex. The name defaults to the
// operation's own name.
func NewOperation(op circuit.Operation, qargs []circuit.Qubit, cargs []circuit.Clbit, cond *circuit.Condition, id int64) *Node {
	var name string
	if op != nil {
		name = op.Name()
	}
	return New(Payload{
		Kind:      KindOperation,
		Op:        op,
		Name:      name,
		Qargs:     qargs,
		Cargs:     cargs,
		Condition: cond,
	}, id)
}

// NewInput creates the input terminal vertex for one wire.
func NewInput(wire circuit.Bit, id int64) *Node {
	return New(Payload{Kind: KindInput, Wire: wire}, id)
}

// NewOutput creates the output terminal vertex for one wire.
func NewOutput(wire circuit.Bit, id int64) *Node {
	return New(Payload{Kind: KindOutput, Wire: wire}, id)
}

// ID returns the graph-assigned identity.
func (n *Node) ID() int64 {
	return n.id
}

// Kind returns the node's role, KindUnset if it has not been decided.
func (n *Node) Kind() Kind {
	return n.kind
}

// Op returns the operation this vertex applies. Calling it on a node whose
// kind is not KindOperation is a contract violation and returns an
// InvalidAccessError.
func (n *Node) Op() (circuit.Operation, error) {
	if n.kind != KindOperation {
		return nil, &InvalidAccessError{Node: n, Accessor: "Op"}
	}
	return n.op, nil
}

// Wire returns the bit this terminal represents. Calling it on a
// non-terminal node is a contract violation and returns an
// InvalidAccessError.
func (n *Node) Wire() (circuit.Bit, error) {
	if !n.kind.IsTerminal() {
		return nil, &InvalidAccessError{Node: n, Accessor: "Wire"}
	}
	return n.wire, nil
}

// Name returns the display name, empty when none was set.
func (n *Node) Name() string {
	return n.name
}

// SetName rewrites the display name in place.
func (n *Node) SetName(name string) {
	n.name = name
}

// Qargs returns the quantum operands in order. Always total: a node without
// quantum operands yields an empty sequence, whatever its kind.
func (n *Node) Qargs() []circuit.Qubit {
	return n.qargs
}

// SetQargs replaces the quantum operand list. No validation against the
// operation's arity happens here; substitution passes keep the two
// consistent externally.
func (n *Node) SetQargs(qargs []circuit.Qubit) {
	n.qargs = qargs
}

// Cargs returns the classical operands in order, empty when unset.
func (n *Node) Cargs() []circuit.Clbit {
	return n.cargs
}

// Condition returns the classical guard and true, or a zero Condition and
// false when the node is unconditional.
func (n *Node) Condition() (circuit.Condition, bool) {
	if n.cond == nil {
		return circuit.Condition{}, false
	}
	return *n.cond, true
}

// Payload returns a copy of the node's payload record. Reference fields
// (operation, operand slices, wire) are shared, not cloned; the node never
// owned them to begin with.
func (n *Node) Payload() Payload {
	return Payload{
		Kind:      n.kind,
		Op:        n.op,
		Name:      n.name,
		Qargs:     n.qargs,
		Cargs:     n.cargs,
		Condition: n.cond,
		Wire:      n.wire,
	}
}

// String returns a label that is unique per node instance, for use as a
// drawing vertex label. It carries no meaning beyond uniqueness.
func (n *Node) String() string {
	return fmt.Sprintf("dagnode(%p)", n)
}
