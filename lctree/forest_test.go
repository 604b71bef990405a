// Package lctree_test covers the public forest operations: the classic
// link/cut/query scenario, degenerate arguments, and structural invariants
// after every call.
package lctree_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/lctree"
	"github.com/katalvlaran/linkcut/monoid"
)

func eqInt(a, b int64) bool { return a == b }

func eqSeq(a, b monoid.Seq[int]) bool {
	return slices.Equal(a.Fwd, b.Fwd) && slices.Equal(a.Bwd, b.Bwd)
}

func requireValid[V, Q any](t *testing.T, f *lctree.Forest[V, Q], eq func(a, b Q) bool) {
	t.Helper()
	require.NoError(t, lctree.CheckInvariants(f, eq))
}

// scenario builds
//
//	2 - 1 - 0 - 5 - 4
//	    |
//	    3
//
// with values [3, 4, 1, 2, 0, 7].
func scenario(t *testing.T) *lctree.Forest[int64, int64] {
	t.Helper()
	f := lctree.New[int64, int64](monoid.Sum[int64]{}, []int64{3, 4, 1, 2, 0, 7})
	for _, e := range [][2]int{{0, 1}, {2, 1}, {1, 3}, {0, 5}, {4, 5}} {
		require.True(t, f.Link(e[0], e[1]), "link %v", e)
		requireValid(t, f, eqInt)
	}

	return f
}

// ------------------------------------------------------------------------
// 1. Link / Cut / PathQuery
// ------------------------------------------------------------------------

func TestForest_Scenario(t *testing.T) {
	f := scenario(t)

	// The forest is now one tree: every further link closes a cycle.
	for i := 0; i < f.Len(); i++ {
		for j := 0; j < f.Len(); j++ {
			assert.False(t, f.Link(i, j), "link(%d,%d)", i, j)
		}
	}
	requireValid(t, f, eqInt)

	got, ok := f.PathQuery(0, 4)
	require.True(t, ok)
	assert.Equal(t, int64(10), got)
	got, ok = f.PathQuery(1, 5)
	require.True(t, ok)
	assert.Equal(t, int64(14), got)

	require.True(t, f.Cut(1, 0))
	require.True(t, f.Link(1, 4))
	requireValid(t, f, eqInt)

	got, ok = f.PathQuery(2, 0)
	require.True(t, ok)
	assert.Equal(t, int64(15), got)
}

func TestForest_LinkRejects(t *testing.T) {
	f := lctree.New[int64, int64](monoid.Sum[int64]{}, []int64{1, 2, 3})
	assert.False(t, f.Link(0, 0), "self loop")
	require.True(t, f.Link(0, 1))
	require.True(t, f.Link(2, 1))
	assert.False(t, f.Link(0, 2), "cycle")
	assert.False(t, f.Link(1, 0), "existing edge")
	requireValid(t, f, eqInt)

	got, ok := f.PathQuery(0, 2)
	require.True(t, ok)
	assert.Equal(t, int64(6), got)
}

func TestForest_CutRejects(t *testing.T) {
	f := scenario(t)
	assert.False(t, f.Cut(2, 0), "path of length two")
	assert.False(t, f.Cut(4, 4), "same vertex")
	assert.False(t, f.Cut(3, 5), "far apart")
	requireValid(t, f, eqInt)

	// Nothing changed.
	got, ok := f.PathQuery(2, 4)
	require.True(t, ok)
	assert.Equal(t, int64(1+4+3+7+0), got)
}

func TestForest_CutEitherOrientation(t *testing.T) {
	f := scenario(t)
	require.True(t, f.Cut(5, 0))
	assert.False(t, f.Connected(4, 2))
	require.True(t, f.Link(5, 0))
	require.True(t, f.Cut(0, 5))
	assert.False(t, f.Connected(0, 5))
	requireValid(t, f, eqInt)
}

func TestForest_CutThenLinkRestores(t *testing.T) {
	f := scenario(t)
	before := make(map[[2]int]int64)
	for u := 0; u < f.Len(); u++ {
		for v := 0; v < f.Len(); v++ {
			before[[2]int{u, v}], _ = f.PathQuery(u, v)
		}
	}

	require.True(t, f.Cut(3, 1))
	_, ok := f.PathQuery(3, 0)
	assert.False(t, ok)
	require.True(t, f.Link(3, 1))

	for u := 0; u < f.Len(); u++ {
		for v := 0; v < f.Len(); v++ {
			got, ok := f.PathQuery(u, v)
			require.True(t, ok)
			assert.Equal(t, before[[2]int{u, v}], got, "path(%d,%d)", u, v)
		}
	}
	requireValid(t, f, eqInt)
}

func TestForest_PathQuerySingleVertex(t *testing.T) {
	f := scenario(t)
	got, ok := f.PathQuery(5, 5)
	require.True(t, ok)
	assert.Equal(t, int64(7), got)

	iso := lctree.New[int64, int64](monoid.Sum[int64]{}, []int64{9, 1})
	got, ok = iso.PathQuery(0, 0)
	require.True(t, ok)
	assert.Equal(t, int64(9), got)
	_, ok = iso.PathQuery(0, 1)
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 2. Orientation: Evert, non-commutative aggregates
// ------------------------------------------------------------------------

func TestForest_EvertIdempotent(t *testing.T) {
	f := scenario(t)
	f.Evert(3)
	f.Evert(3)
	assert.Equal(t, 3, f.FindRoot(4))
	requireValid(t, f, eqInt)

	p, ok := f.Parent(3, 1)
	require.True(t, ok)
	assert.Equal(t, 3, p)
	p, ok = f.Parent(3, 0)
	require.True(t, ok)
	assert.Equal(t, 1, p)
}

func TestForest_SequenceFollowsPathOrder(t *testing.T) {
	values := []int{10, 11, 12, 13, 14, 15}
	f := lctree.New[int, monoid.Seq[int]](monoid.Sequence[int]{}, values)
	for _, e := range [][2]int{{0, 1}, {2, 1}, {1, 3}, {0, 5}, {4, 5}} {
		require.True(t, f.Link(e[0], e[1]))
	}
	requireValid(t, f, eqSeq)

	got, ok := f.PathQuery(2, 4)
	require.True(t, ok)
	assert.Equal(t, []int{12, 11, 10, 15, 14}, got.Fwd)
	assert.Equal(t, []int{14, 15, 10, 11, 12}, got.Bwd)

	// Repeated everts in both directions must not disturb the order.
	for i := 0; i < 4; i++ {
		got, ok = f.PathQuery(4, 3)
		require.True(t, ok)
		assert.Equal(t, []int{14, 15, 10, 11, 13}, got.Fwd)
		got, ok = f.PathQuery(3, 4)
		require.True(t, ok)
		assert.Equal(t, []int{13, 11, 10, 15, 14}, got.Fwd)
		requireValid(t, f, eqSeq)
	}
}

func TestForest_AffineComposition(t *testing.T) {
	op := monoid.NewAffine(1_000_003)
	values := []monoid.Linear{{A: 2, B: 1}, {A: 3, B: 0}, {A: 1, B: 5}}
	f := lctree.New[monoid.Linear, monoid.AffinePath](op, values)
	require.True(t, f.Link(0, 1))
	require.True(t, f.Link(2, 1))

	got, ok := f.PathQuery(0, 2)
	require.True(t, ok)
	// x=1: 2*1+1=3, 3*3=9, 9+5=14
	assert.Equal(t, int64(14), op.Apply(got, 1))

	got, ok = f.PathQuery(2, 0)
	require.True(t, ok)
	// x=1: 1+5=6, 3*6=18, 2*18+1=37
	assert.Equal(t, int64(37), op.Apply(got, 1))
}

// ------------------------------------------------------------------------
// 3. LCA / Parent / FindRoot / Connected
// ------------------------------------------------------------------------

func TestForest_LCA(t *testing.T) {
	f := scenario(t)

	tests := []struct {
		root, u, v int
		want       int
	}{
		{0, 2, 3, 1},
		{0, 2, 4, 0},
		{1, 4, 0, 0},
		{4, 2, 3, 1},
		{4, 3, 0, 0},
		{3, 2, 4, 1},
		{0, 0, 4, 0}, // u == root
		{2, 4, 4, 4}, // u == v
		{5, 5, 5, 5}, // all equal
		{5, 4, 5, 5}, // v == root
		{0, 2, 1, 1}, // ancestor
	}
	for _, tc := range tests {
		got, ok := f.LCA(tc.root, tc.u, tc.v)
		require.True(t, ok, "lca%v", tc)
		assert.Equal(t, tc.want, got, "lca(root=%d, %d, %d)", tc.root, tc.u, tc.v)
		requireValid(t, f, eqInt)
	}
}

func TestForest_LCADisconnected(t *testing.T) {
	f := scenario(t)
	require.True(t, f.Cut(0, 5))

	_, ok := f.LCA(0, 2, 4)
	assert.False(t, ok)
	_, ok = f.LCA(4, 5, 1)
	assert.False(t, ok)
	_, ok = f.LCA(2, 3, 0)
	assert.True(t, ok)
	requireValid(t, f, eqInt)
}

func TestForest_Parent(t *testing.T) {
	f := scenario(t)

	for _, tc := range []struct{ root, x, want int }{
		{0, 1, 0}, {0, 2, 1}, {0, 3, 1}, {0, 5, 0}, {0, 4, 5},
		{4, 5, 4}, {4, 0, 5}, {4, 1, 0}, {2, 0, 1},
	} {
		got, ok := f.Parent(tc.root, tc.x)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "parent(root=%d, %d)", tc.root, tc.x)
	}

	_, ok := f.Parent(3, 3)
	assert.False(t, ok, "root has no parent")
	require.True(t, f.Cut(4, 5))
	_, ok = f.Parent(0, 4)
	assert.False(t, ok, "disconnected")
	requireValid(t, f, eqInt)
}

func TestForest_FindRootConnected(t *testing.T) {
	f := lctree.New[int64, int64](monoid.Sum[int64]{}, make([]int64, 4))
	for x := 0; x < 4; x++ {
		assert.Equal(t, x, f.FindRoot(x))
	}
	require.True(t, f.Link(0, 1))
	require.True(t, f.Link(1, 2))
	// Link(u, v) leaves u's old tree rooted at u, hung below v; the combined
	// root is whatever v's tree was rooted at.
	assert.Equal(t, f.FindRoot(0), f.FindRoot(2))
	f.Evert(2)
	assert.Equal(t, 2, f.FindRoot(0))

	assert.True(t, f.Connected(0, 2))
	assert.True(t, f.Connected(3, 3))
	assert.False(t, f.Connected(0, 3))
	requireValid(t, f, eqInt)
}

// ------------------------------------------------------------------------
// 4. Values and construction
// ------------------------------------------------------------------------

func TestForest_SetValue(t *testing.T) {
	f := scenario(t)
	f.SetValue(0, 100)
	requireValid(t, f, eqInt)

	got, ok := f.PathQuery(2, 4)
	require.True(t, ok)
	assert.Equal(t, int64(1+4+100+7+0), got)

	v, ok := f.Value(0)
	require.True(t, ok)
	assert.Equal(t, int64(100), v)
	_, ok = f.Value(-1)
	assert.False(t, ok)
	_, ok = f.Value(f.Len())
	assert.False(t, ok)
}

func TestForest_MinMax(t *testing.T) {
	values := []int64{5, -2, 9, 4}
	mn := lctree.New[int64, int64](monoid.NewMin[int64](1<<62), values)
	mx := lctree.New[int64, int64](monoid.NewMax[int64](-1<<62), values)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {3, 2}} {
		require.True(t, mn.Link(e[0], e[1]))
		require.True(t, mx.Link(e[0], e[1]))
	}

	lo, _ := mn.PathQuery(0, 3)
	hi, _ := mx.PathQuery(3, 0)
	assert.Equal(t, int64(-2), lo)
	assert.Equal(t, int64(9), hi)

	lo, _ = mn.PathQuery(2, 3)
	assert.Equal(t, int64(4), lo)
}

func TestCollect(t *testing.T) {
	f := lctree.Collect[int64, int64](monoid.Sum[int64]{}, slices.Values([]int64{7, 8, 9}))
	require.Equal(t, 3, f.Len())
	v, ok := f.Value(2)
	require.True(t, ok)
	assert.Equal(t, int64(9), v)
	assert.IsType(t, monoid.Sum[int64]{}, f.Operator())

	empty := lctree.New[int64, int64](monoid.Sum[int64]{}, nil)
	assert.Zero(t, empty.Len())
}

func TestNew_NilOperatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		lctree.New[int64, int64](nil, []int64{1})
	})
}

func TestNew_CopiesValues(t *testing.T) {
	values := []int64{1, 2}
	f := lctree.New[int64, int64](monoid.Sum[int64]{}, values)
	values[0] = 50
	v, _ := f.Value(0)
	assert.Equal(t, int64(1), v)
}
