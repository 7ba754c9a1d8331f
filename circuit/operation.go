package circuit

// Operation is the capability set a vertex needs from the instruction it
// carries. The vertex holds a non-owning reference and never inspects the
// operation beyond these two methods.
type Operation interface {
	// Name returns the operation's name, e.g. "cx" or "barrier".
	Name() string

	// Equal reports value equality with another operation, per the
	// implementing type's own equality contract. Implementations must be
	// symmetric and must return false for operations of a different
	// concrete type.
	Equal(other Operation) bool
}
