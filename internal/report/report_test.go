package report_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/internal/report"
	"github.com/katalvlaran/linkcut/internal/script"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, s *script.Script, opts ...script.Option) *script.Report {
	t.Helper()
	rep, _ := script.NewRunner(opts...).Run(context.Background(), s)
	require.NotNil(t, rep)

	return rep
}

func TestSteps(t *testing.T) {
	s, err := script.Load("../script/testdata/scenario.yaml")
	require.NoError(t, err)
	rep := run(t, s, script.WithVerify(true))

	var buf bytes.Buffer
	report.New(&buf, 5).Steps(rep)
	out := buf.String()
	assert.Contains(t, out, "OPERATION")
	assert.Contains(t, out, "link(0, 1)")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "14 MORE ROWS", "footers are upper-cased")
	assert.NotContains(t, out, "query(2, 0)")
}

func TestSummary_PassAndFail(t *testing.T) {
	s, err := script.Load("../script/testdata/scenario.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := report.New(&buf, 0)
	w.Summary(run(t, s, script.WithVerify(true)))
	assert.Contains(t, buf.String(), "PASS scenario: 19 ops on 6 vertices (sum), 15 accepted, 2 rejected, oracle agreed")

	wrong := script.Int(0)
	bad := &script.Script{
		Operator: "sum",
		Values:   []int64{1, 2},
		Ops:      []script.Op{{Op: script.KindQuery, U: 0, V: 0, Expect: &wrong}},
	}
	buf.Reset()
	w.Summary(run(t, bad))
	assert.Contains(t, buf.String(), "FAIL script")
	assert.Contains(t, buf.String(), "1 failed")
}

func TestCounts(t *testing.T) {
	s, err := script.Load("../script/testdata/scenario.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	report.New(&buf, 0).Counts(run(t, s))
	out := buf.String()
	assert.Contains(t, out, "link")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "19")
}
