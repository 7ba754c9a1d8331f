package testutil

import "github.com/vk/qdag/circuit"

// Qubits returns n qubit identities q[0]..q[n-1] in register reg.
func Qubits(reg string, n int) []circuit.Qubit {
	qs := make([]circuit.Qubit, n)
	for i := range qs {
		qs[i] = circuit.Qubit{Register: reg, Index: i}
	}
	return qs
}

// Clbits returns n classical bit identities in register reg.
func Clbits(reg string, n int) []circuit.Clbit {
	cs := make([]circuit.Clbit, n)
	for i := range cs {
		cs[i] = circuit.Clbit{Register: reg, Index: i}
	}
	return cs
}
