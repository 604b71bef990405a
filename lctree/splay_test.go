package lctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/lctree"
	"github.com/katalvlaran/linkcut/monoid"
)

// chain returns the path 0 - 1 - ... - n-1 rooted at 0.
func chain(t *testing.T, n int) *lctree.Forest[int64, int64] {
	t.Helper()
	f := lctree.New[int64, int64](monoid.Sum[int64]{}, make([]int64, n))
	for i := 1; i < n; i++ {
		require.True(t, f.Link(i, i-1))
	}
	f.Evert(0)

	return f
}

func TestSplay_ReportsPathParent(t *testing.T) {
	f := chain(t, 5)

	// Whole root path preferred: one splay tree, no path-parent above it.
	lctree.Access(f, 4)
	assert.Equal(t, 4, lctree.SplayRootOf(f, 0))
	pp, old := lctree.Splay(f, 2)
	assert.Equal(t, lctree.None, pp)
	assert.Equal(t, 4, old)
	assert.Equal(t, 2, lctree.SplayRootOf(f, 4))

	// Accessing the root detaches 1..4 into their own splay tree hanging
	// from 0 by a path-parent.
	lctree.Access(f, 0)
	pp, _ = lctree.Splay(f, 3)
	assert.Equal(t, 0, pp)
	assert.Equal(t, 3, lctree.SplayRootOf(f, 1))
	require.NoError(t, lctree.CheckInvariants(f, eqInt))
}

func TestSplay_SplayRootIsNoop(t *testing.T) {
	f := chain(t, 3)
	lctree.Access(f, 2)
	pp, old := lctree.Splay(f, 2)
	assert.Equal(t, lctree.None, pp)
	assert.Equal(t, 2, old)
	require.NoError(t, lctree.CheckInvariants(f, eqInt))
}

func TestAccess_ReturnsJoin(t *testing.T) {
	//	    0
	//	   / \
	//	  1   4
	//	 / \
	//	2   3
	f := lctree.New[int64, int64](monoid.Sum[int64]{}, make([]int64, 5))
	for _, e := range [][2]int{{1, 0}, {4, 0}, {2, 1}, {3, 1}} {
		require.True(t, f.Link(e[0], e[1]))
	}
	f.Evert(0)

	lctree.Access(f, 2)
	assert.Equal(t, 1, lctree.Access(f, 3))
	assert.Equal(t, 0, lctree.Access(f, 4))
	assert.Equal(t, 4, lctree.Access(f, 4))
	lctree.Access(f, 0)
	assert.Equal(t, 0, lctree.Access(f, 2))
	require.NoError(t, lctree.CheckInvariants(f, eqInt))
}
