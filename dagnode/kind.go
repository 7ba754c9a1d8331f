package dagnode

// Kind distinguishes the three vertex roles in a circuit DAG.
type Kind int

const (
	// KindUnset marks a node under construction whose role is not yet known.
	KindUnset Kind = iota
	// KindOperation is a vertex carrying an instruction application.
	KindOperation
	// KindInput is the input terminal of one wire.
	KindInput
	// KindOutput is the output terminal of one wire.
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindOperation:
		return "op"
	case KindInput:
		return "in"
	case KindOutput:
		return "out"
	default:
		return "unset"
	}
}

// IsTerminal reports whether the kind is an input or output terminal.
func (k Kind) IsTerminal() bool {
	return k == KindInput || k == KindOutput
}
