package script_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/builder"
	"github.com/katalvlaran/linkcut/internal/script"
)

// ------------------------------------------------------------------------
// 1. Loading and validation
// ------------------------------------------------------------------------

func TestLoad_Scenario(t *testing.T) {
	s, err := script.Load("testdata/scenario.yaml")
	require.NoError(t, err)
	assert.Equal(t, "sum", s.Operator)
	assert.Len(t, s.Values, 6)
	require.Len(t, s.Ops, 19)

	assert.Equal(t, script.KindLCA, s.Ops[11].Op)
	require.NotNil(t, s.Ops[11].Expect)
	assert.Equal(t, script.Int(1), *s.Ops[11].Expect)
	assert.True(t, s.Ops[13].Expect.IsNone())
	assert.Nil(t, s.Ops[14].Expect)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := script.Load("testdata/absent.yaml")
	assert.Error(t, err)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", script.ErrInvalidScript},
		{"unknown operator", "operator: avg\nvalues: [1]\n", script.ErrInvalidScript},
		{"no values", "operator: sum\nvalues: []\n", script.ErrInvalidScript},
		{"unknown op", "operator: sum\nvalues: [1]\nops: [{op: splay, u: 0}]\n", script.ErrInvalidScript},
		{"negative handle", "operator: sum\nvalues: [1]\nops: [{op: evert, u: -1}]\n", script.ErrInvalidScript},
		{"unknown key", "operator: sum\nvalues: [1]\ncolor: red\n", script.ErrInvalidScript},
		{"handle too large", "operator: sum\nvalues: [1, 2]\nops: [{op: link, u: 0, v: 2}]\n", script.ErrHandleOutOfRange},
		{"lca root too large", "operator: sum\nvalues: [1, 2]\nops: [{op: lca, root: 5, u: 0, v: 1}]\n", script.ErrHandleOutOfRange},
		{"bool for query", "operator: sum\nvalues: [1, 2]\nops: [{op: query, u: 0, v: 1, expect: true}]\n", script.ErrInvalidScript},
		{"int for link", "operator: sum\nvalues: [1, 2]\nops: [{op: link, u: 0, v: 1, expect: 3}]\n", script.ErrInvalidScript},
		{"expect on evert", "operator: sum\nvalues: [1]\nops: [{op: evert, u: 0, expect: 0}]\n", script.ErrInvalidScript},
		{"root none", "operator: sum\nvalues: [1]\nops: [{op: root, u: 0, expect: none}]\n", script.ErrInvalidScript},
		{"bad literal", "operator: sum\nvalues: [1]\nops: [{op: root, u: 0, expect: maybe}]\n", script.ErrInvalidScript},
		{"mapping expect", "operator: sum\nvalues: [1]\nops: [{op: root, u: 0, expect: {a: 1}}]\n", script.ErrInvalidScript},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	shape, err := builder.Build(12, []builder.BuilderOption{builder.WithSeed(1), builder.WithUniformValues(-9, 9)},
		builder.RandomTree(0, 12))
	require.NoError(t, err)
	s := script.Random(shape, 40, 2)

	var buf bytes.Buffer
	require.NoError(t, script.Encode(&buf, s))
	assert.Contains(t, buf.String(), "expect: true")

	back, err := script.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

// ------------------------------------------------------------------------
// 2. Running
// ------------------------------------------------------------------------

func TestRunner_Scenario(t *testing.T) {
	s, err := script.Load("testdata/scenario.yaml")
	require.NoError(t, err)

	for _, verify := range []bool{false, true} {
		rep, err := script.NewRunner(script.WithVerify(verify)).Run(context.Background(), s)
		require.NoError(t, err, "verify=%v", verify)
		assert.True(t, rep.OK())
		assert.Equal(t, 19, rep.Steps)
		assert.Len(t, rep.Results, 19)
		assert.Equal(t, 6, rep.Vertices)
		assert.Equal(t, 7, rep.Counts[script.KindLink])
		assert.Equal(t, 2, rep.Rejected, "link(3,4) and parent of the root")
		assert.Equal(t, verify, rep.Verified)
		if verify {
			assert.NotNil(t, rep.Results[6].Oracle)
		}
	}
}

func TestRunner_Operators(t *testing.T) {
	tests := []struct {
		op   string
		want int64
	}{
		{"sum", 3 + 4 + 1},
		{"min", 1},
		{"max", 4},
		{"xor", 3 ^ 4 ^ 1},
		{"count", 3},
	}
	for _, tc := range tests {
		t.Run(tc.op, func(t *testing.T) {
			want := script.Int(tc.want)
			s := &script.Script{
				Operator: tc.op,
				Values:   []int64{3, 4, 1},
				Ops: []script.Op{
					{Op: script.KindLink, U: 0, V: 1},
					{Op: script.KindLink, U: 2, V: 1},
					{Op: script.KindQuery, U: 0, V: 2, Expect: &want},
				},
			}
			_, err := script.NewRunner(script.WithVerify(true)).Run(context.Background(), s)
			require.NoError(t, err)
		})
	}
}

func TestRunner_ExpectationFailure(t *testing.T) {
	wrong := script.Int(99)
	no := script.Bool(false)
	s := &script.Script{
		Operator: "sum",
		Values:   []int64{1, 2},
		Ops: []script.Op{
			{Op: script.KindLink, U: 0, V: 1, Expect: &no},
			{Op: script.KindQuery, U: 0, V: 1, Expect: &wrong},
			{Op: script.KindConnected, U: 0, V: 1},
		},
	}

	rep, err := script.NewRunner(script.WithFailuresOnly()).Run(context.Background(), s)
	require.ErrorIs(t, err, script.ErrExpectationFailed)
	assert.Equal(t, 2, rep.Failed)
	assert.Equal(t, 3, rep.Steps)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, script.Int(3), rep.Results[1].Got)
	assert.Equal(t, script.StatusFail, rep.Results[1].Status)

	rep, err = script.NewRunner(script.WithFailFast(true)).Run(context.Background(), s)
	require.ErrorIs(t, err, script.ErrExpectationFailed)
	assert.Equal(t, 1, rep.Steps)
	assert.Contains(t, err.Error(), "link(0, 1)")
}

func TestRunner_InvalidScript(t *testing.T) {
	_, err := script.NewRunner().Run(context.Background(), &script.Script{Operator: "sum"})
	assert.ErrorIs(t, err, script.ErrInvalidScript)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &script.Script{Operator: "sum", Values: []int64{1}, Ops: []script.Op{{Op: script.KindRoot}}}
	rep, err := script.NewRunner().Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rep.Steps)
}

type recorder struct {
	mu       sync.Mutex
	vertices int
	labels   map[string]int
}

func (r *recorder) ObserveVertices(n int) { r.vertices = n }

func (r *recorder) ObserveOp(_ script.Kind, label string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels[label]++
}

func TestRunner_Observer(t *testing.T) {
	s, err := script.Load("testdata/scenario.yaml")
	require.NoError(t, err)
	rec := &recorder{labels: map[string]int{}}

	_, err = script.NewRunner(script.WithObserver(rec)).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 6, rec.vertices)
	assert.Equal(t, 17, rec.labels[script.LabelAccepted])
	assert.Equal(t, 2, rec.labels[script.LabelRejected])

	assert.Panics(t, func() { script.WithObserver(nil) })
}

// ------------------------------------------------------------------------
// 3. Random workloads against the oracle
// ------------------------------------------------------------------------

func TestRandom_VerifiedAgainstOracle(t *testing.T) {
	shapes := []builder.Constructor{
		builder.RandomTree(0, 40),
		builder.RandomForest(0, 40, 0.7),
		builder.Caterpillar(0, 8, 4),
		builder.Path(0, 40),
	}
	for i, c := range shapes {
		shape, err := builder.Build(40, []builder.BuilderOption{builder.WithSeed(int64(i)), builder.WithUniformValues(-50, 50)}, c)
		require.NoError(t, err)

		s := script.Random(shape, 600, int64(i))
		require.NoError(t, s.Validate())
		assert.Len(t, s.Ops, len(shape.Edges)+600)

		rep, err := script.NewRunner(script.WithVerify(true), script.WithFailuresOnly()).Run(context.Background(), s)
		require.NoError(t, err, "shape %d", i)
		assert.Empty(t, rep.Results)
		assert.Positive(t, rep.Accepted)
	}
}
