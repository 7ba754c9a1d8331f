package dagnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/qdag/internal/testutil"
)

func TestSet_MembershipIsByIdentity(t *testing.T) {
	// Identical payloads, distinct identities: distinct graph positions.
	a := NewOperation(testutil.Op{Label: "x"}, testutil.Qubits("q", 1), nil, nil, 1)
	b := NewOperation(testutil.Op{Label: "x"}, testutil.Qubits("q", 1), nil, nil, 2)
	require.True(t, SemanticEq(a, b))

	s := NewSet(a)

	assert.True(t, s.Has(a))
	assert.False(t, s.Has(b))

	s.Add(b)
	assert.Equal(t, 2, s.Len())
}

func TestSet_AddDeleteLen(t *testing.T) {
	a := New(Payload{}, 1)
	b := New(Payload{}, 2)

	s := NewSet()
	assert.Equal(t, 0, s.Len())

	s.Add(a)
	s.Add(a)
	assert.Equal(t, 1, s.Len())

	s.Add(b)
	assert.Equal(t, 2, s.Len())

	s.Delete(a)
	assert.False(t, s.Has(a))
	assert.True(t, s.Has(b))

	// Deleting an absent node is a no-op.
	s.Delete(a)
	assert.Equal(t, 1, s.Len())
}

func TestSet_SortedIsIdentityOrdered(t *testing.T) {
	s := NewSet(
		New(Payload{}, 3),
		New(Payload{}, 1),
		New(Payload{}, 2),
	)

	sorted := s.Sorted()
	require.Len(t, sorted, 3)

	ids := make([]int64, len(sorted))
	for i, n := range sorted {
		ids[i] = n.ID()
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}
