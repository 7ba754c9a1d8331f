package dagnode

import (
	"slices"

	"github.com/vk/qdag/circuit"
)

// barrierName is the one operation whose operand order is insignificant.
const barrierName = "barrier"

// SemanticEq reports whether two nodes are equivalent for the purposes of
// graph isomorphism: full structural payload equality, except that two
// barriers compare their quantum operands as sets because barrier operands
// commute. It is symmetric and pure, and intentionally ignores identity —
// distinct entries of a Set can still be SemanticEq.
func SemanticEq(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name == barrierName && b.name == barrierName {
		return qubitSetEq(a.qargs, b.qargs)
	}
	return a.kind == b.kind &&
		operationEq(a.op, b.op) &&
		a.name == b.name &&
		slices.Equal(a.qargs, b.qargs) &&
		slices.Equal(a.cargs, b.cargs) &&
		conditionEq(a.cond, b.cond) &&
		a.wire == b.wire
}

// qubitSetEq compares two operand lists as sets, ignoring order and
// duplicates.
func qubitSetEq(xs, ys []circuit.Qubit) bool {
	xset := make(map[circuit.Qubit]struct{}, len(xs))
	for _, q := range xs {
		xset[q] = struct{}{}
	}
	yset := make(map[circuit.Qubit]struct{}, len(ys))
	for _, q := range ys {
		yset[q] = struct{}{}
	}
	if len(xset) != len(yset) {
		return false
	}
	for q := range xset {
		if _, ok := yset[q]; !ok {
			return false
		}
	}
	return true
}

func operationEq(a, b circuit.Operation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func conditionEq(a, b *circuit.Condition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
