package dagnode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/qdag/internal/testutil"
)

func TestCompare_FollowsIdentity(t *testing.T) {
	a := New(Payload{}, 1)
	b := New(Payload{}, 2)
	c := New(Payload{}, 2)

	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(b, c))

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, b.Less(c))
}

func TestSortNodes_Deterministic(t *testing.T) {
	nodes := []*Node{
		New(Payload{}, 30),
		New(Payload{}, 10),
		New(Payload{}, 20),
	}

	SortNodes(nodes)

	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	assert.Equal(t, []int64{10, 20, 30}, ids)
}

func TestOrdering_IgnoresPayload(t *testing.T) {
	// A "bigger" payload on a smaller identity changes nothing: ordering is
	// identity only.
	big := NewOperation(testutil.Op{Label: "ccx"}, testutil.Qubits("q", 3), nil, nil, 1)
	small := NewInput(testutil.Qubits("q", 1)[0], 2)

	assert.True(t, big.Less(small))
}
