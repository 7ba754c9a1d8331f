package circuit

import "fmt"

// Bit identifies a single wire threaded through a circuit DAG. It is a
// closed sum over Qubit and Clbit; no other implementations exist.
type Bit interface {
	fmt.Stringer
	isBit()
}

// Qubit identifies one quantum wire by its register name and position.
// The zero value is a valid (if unnamed) identity. Qubit is comparable and
// may be used as a map key.
type Qubit struct {
	Register string
	Index    int
}

func (q Qubit) String() string {
	return fmt.Sprintf("%s[%d]", q.Register, q.Index)
}

func (Qubit) isBit() {}

// Clbit identifies one classical wire by its register name and position.
// Clbit is comparable and may be used as a map key.
type Clbit struct {
	Register string
	Index    int
}

func (c Clbit) String() string {
	return fmt.Sprintf("%s[%d]", c.Register, c.Index)
}

func (Clbit) isBit() {}

// ClassicalRegister identifies a named group of classical bits. Only the
// identity lives here; the bits themselves belong to the circuit.
type ClassicalRegister struct {
	Name string
	Size int
}

func (r ClassicalRegister) String() string {
	return r.Name
}
