package testutil

import (
	"slices"

	"github.com/vk/qdag/circuit"
)

// Op is a minimal circuit.Operation for tests: a name plus optional gate
// parameters, compared by value.
type Op struct {
	Label  string
	Params []float64
}

func (o Op) Name() string {
	return o.Label
}

func (o Op) Equal(other circuit.Operation) bool {
	oo, ok := other.(Op)
	if !ok {
		return false
	}
	return o.Label == oo.Label && slices.Equal(o.Params, oo.Params)
}
