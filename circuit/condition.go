package circuit

// ConditionTarget is what a classical guard reads: either a whole classical
// register or a single classical bit. Closed sum.
type ConditionTarget interface {
	isConditionTarget()
}

func (ClassicalRegister) isConditionTarget() {}

func (Clbit) isConditionTarget() {}

// Condition is a classical guard on an operation: the operation applies only
// when Target holds Value. Condition is comparable as long as Target holds
// one of the types above, which is always the case.
type Condition struct {
	Target ConditionTarget
	Value  int64
}
