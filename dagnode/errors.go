package dagnode

import (
	"errors"
	"fmt"
)

// ErrInvalidAccess is the sentinel wrapped by every InvalidAccessError.
// Callers that only care about the class of failure can errors.Is against it.
var ErrInvalidAccess = errors.New("accessor not valid for node kind")

// InvalidAccessError reports a kind-specific accessor invoked on a node of
// the wrong kind. This is a programming-contract violation on the caller's
// side, not a recoverable condition.
type InvalidAccessError struct {
	Node     *Node
	Accessor string
}

func (e *InvalidAccessError) Error() string {
	return fmt.Sprintf("dagnode: %s called on %s node %s", e.Accessor, e.Node.Kind(), e.Node)
}

func (e *InvalidAccessError) Unwrap() error {
	return ErrInvalidAccess
}
