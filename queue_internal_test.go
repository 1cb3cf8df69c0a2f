package strq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortKeepsNodes(t *testing.T) {
	q := New()
	for _, v := range []string{"banana", "apple", "cherry", "apple"} {
		q.InsertTail(v)
	}
	before := slices.Collect(q.ls.Nodes())

	q.Sort()
	after := slices.Collect(q.ls.Nodes())
	require.Len(t, after, 4)
	require.Same(t, before[1], after[0])
	require.Same(t, before[3], after[1])
	require.Same(t, before[0], after[2])
	require.Same(t, before[2], after[3])
}

func TestReverseKeepsNodes(t *testing.T) {
	q := New()
	for _, v := range []string{"a", "b", "c"} {
		q.InsertTail(v)
	}
	before := slices.Collect(q.ls.Nodes())

	q.Reverse()
	after := slices.Collect(q.ls.Nodes())
	for i := range before {
		require.Same(t, before[i], after[len(after)-1-i])
	}

	q.Reverse()
	require.Equal(t, before, slices.Collect(q.ls.Nodes()))
	require.Zero(t, testing.AllocsPerRun(10, q.Reverse))
}
