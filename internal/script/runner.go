package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/linkcut/internal/oracle"
	"github.com/katalvlaran/linkcut/lctree"
	"github.com/katalvlaran/linkcut/monoid"
)

// Status classifies one executed operation.
type Status string

const (
	StatusPass     Status = "pass"
	StatusFail     Status = "fail"     // outcome differs from expect
	StatusMismatch Status = "mismatch" // outcome differs from the oracle
)

// Outcome labels reported to an Observer for passing operations.
const (
	LabelAccepted = "accepted"
	LabelRejected = "rejected"
)

// Observer receives per-operation timings, e.g. for metrics.
type Observer interface {
	ObserveVertices(n int)
	ObserveOp(kind Kind, label string, d time.Duration)
}

// Result is the record of one executed operation.
type Result struct {
	Step    int
	Op      Op
	Got     Outcome
	Oracle  *Outcome // nil unless verified
	Status  Status
	Elapsed time.Duration
}

// Report summarizes a run.
type Report struct {
	Name     string
	Operator string
	Vertices int
	Steps    int

	// Results holds every executed operation, or only the failing ones when
	// the runner was built with WithFailuresOnly.
	Results []Result

	Counts     map[Kind]int
	Accepted   int
	Rejected   int
	Failed     int
	Mismatched int
	Verified   bool
	Elapsed    time.Duration
}

// OK reports whether every expectation held and no oracle check failed.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Mismatched == 0
}

// Throughput returns executed operations per second.
func (r *Report) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Steps) / r.Elapsed.Seconds()
}

// Runner executes scripts. Build one with NewRunner.
type Runner struct {
	verify       bool
	failFast     bool
	failuresOnly bool
	obs          Observer
	log          *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithVerify cross-checks every outcome against the O(n) oracle.
func WithVerify(on bool) Option {
	return func(r *Runner) { r.verify = on }
}

// WithFailFast stops at the first failed expectation or mismatch.
func WithFailFast(on bool) Option {
	return func(r *Runner) { r.failFast = on }
}

// WithFailuresOnly keeps only failing results in the Report.
func WithFailuresOnly() Option {
	return func(r *Runner) { r.failuresOnly = true }
}

// WithObserver reports every operation to obs. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("script: WithObserver(nil)")
	}
	return func(r *Runner) { r.obs = obs }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("script: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

type nopObserver struct{}

func (nopObserver) ObserveVertices(int)                   {}
func (nopObserver) ObserveOp(Kind, string, time.Duration) {}

// NewRunner returns a Runner with opts applied.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		obs: nopObserver{},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run validates s and executes it on a fresh forest. The returned error
// wraps ErrOracleMismatch or ErrExpectationFailed when any operation failed;
// the Report is returned alongside it. Cancelling ctx stops between
// operations.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	op, err := Operator(s.Operator)
	if err != nil {
		return nil, err
	}

	values := slices.Clone(s.Values)
	f := lctree.New(op, values)
	var o *oracle.Forest
	if r.verify {
		o = oracle.New(len(values))
	}
	r.obs.ObserveVertices(len(values))

	rep := &Report{
		Name:     s.Name,
		Operator: s.Operator,
		Vertices: len(values),
		Counts:   make(map[Kind]int, len(Kinds)),
		Verified: r.verify,
	}
	r.log.InfoContext(ctx, "run started",
		"script", s.Name, "operator", s.Operator, "vertices", len(values), "ops", len(s.Ops), "verify", r.verify)

	start := time.Now()
	defer func() { rep.Elapsed = time.Since(start) }()

	for i, step := range s.Ops {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		t0 := time.Now()
		got := apply(f, step)
		res := Result{Step: i, Op: step, Got: got, Status: StatusPass, Elapsed: time.Since(t0)}

		if step.Op == KindSet {
			values[step.U] = step.Value
		}
		if o != nil {
			if want, checked := consult(o, op, values, step, got); checked {
				res.Oracle = &want
				if want != got {
					res.Status = StatusMismatch
				}
			}
		}
		if res.Status == StatusPass && step.Expect != nil && *step.Expect != got {
			res.Status = StatusFail
		}

		rep.record(res, r.failuresOnly)
		r.obs.ObserveOp(step.Op, label(res), res.Elapsed)

		switch res.Status {
		case StatusMismatch:
			r.log.ErrorContext(ctx, "oracle mismatch", "step", i, "op", step.String(), "got", got.String(), "oracle", res.Oracle.String())
		case StatusFail:
			r.log.WarnContext(ctx, "expectation failed", "step", i, "op", step.String(), "got", got.String(), "want", step.Expect.String())
		default:
			r.log.DebugContext(ctx, "op", "step", i, "op", step.String(), "got", got.String())
		}
		if res.Status != StatusPass && r.failFast {
			return rep, res.err()
		}
	}

	rep.Elapsed = time.Since(start)
	r.log.InfoContext(ctx, "run finished",
		"script", s.Name, "steps", rep.Steps, "failed", rep.Failed, "mismatched", rep.Mismatched, "elapsed", rep.Elapsed)

	switch {
	case rep.Mismatched > 0:
		return rep, fmt.Errorf("%d of %d operations disagree with the oracle: %w", rep.Mismatched, rep.Steps, ErrOracleMismatch)
	case rep.Failed > 0:
		return rep, fmt.Errorf("%d of %d expectations failed: %w", rep.Failed, rep.Steps, ErrExpectationFailed)
	}

	return rep, nil
}

func (rep *Report) record(res Result, failuresOnly bool) {
	rep.Steps++
	rep.Counts[res.Op.Op]++
	switch res.Status {
	case StatusFail:
		rep.Failed++
	case StatusMismatch:
		rep.Mismatched++
	}
	if res.Op.hasOutcome() {
		if res.Got.Accepted() {
			rep.Accepted++
		} else {
			rep.Rejected++
		}
	}
	if !failuresOnly || res.Status != StatusPass {
		rep.Results = append(rep.Results, res)
	}
}

func (res Result) err() error {
	if res.Status == StatusMismatch {
		return fmt.Errorf("step %d %s: got %s, oracle %s: %w", res.Step, res.Op, res.Got, res.Oracle, ErrOracleMismatch)
	}

	return fmt.Errorf("step %d %s: got %s, want %s: %w", res.Step, res.Op, res.Got, res.Op.Expect, ErrExpectationFailed)
}

func label(res Result) string {
	switch {
	case res.Status != StatusPass:
		return string(res.Status)
	case !res.Op.hasOutcome(), res.Got.Accepted():
		return LabelAccepted
	default:
		return LabelRejected
	}
}

// apply runs one operation on the forest. Handles were validated.
func apply(f *lctree.Forest[int64, int64], op Op) Outcome {
	switch op.Op {
	case KindLink:
		return Bool(f.Link(op.U, op.V))
	case KindCut:
		return Bool(f.Cut(op.U, op.V))
	case KindEvert:
		f.Evert(op.U)
	case KindQuery:
		return optInt(f.PathQuery(op.U, op.V))
	case KindLCA:
		l, ok := f.LCA(op.Root, op.U, op.V)
		return optInt(int64(l), ok)
	case KindParent:
		p, ok := f.Parent(op.Root, op.U)
		return optInt(int64(p), ok)
	case KindRoot:
		return Int(int64(f.FindRoot(op.U)))
	case KindConnected:
		return Bool(f.Connected(op.U, op.V))
	case KindSet:
		f.SetValue(op.U, op.Value)
	}

	return None()
}

// consult runs op on the oracle and returns the outcome it expects. The
// represented root depends on internal re-rooting, so for root the oracle
// only confirms that got lies in u's tree.
func consult(o *oracle.Forest, op monoid.Operator[int64, int64], values []int64, step Op, got Outcome) (Outcome, bool) {
	switch step.Op {
	case KindLink:
		return Bool(o.Link(step.U, step.V)), true
	case KindCut:
		return Bool(o.Cut(step.U, step.V)), true
	case KindQuery:
		path, ok := o.Path(step.U, step.V)
		if !ok {
			return None(), true
		}
		return Int(oracle.Fold(op, values, path)), true
	case KindLCA:
		l, ok := o.LCA(step.Root, step.U, step.V)
		return optInt(int64(l), ok), true
	case KindParent:
		p, ok := o.Parent(step.Root, step.U)
		return optInt(int64(p), ok), true
	case KindRoot:
		if got.kind == kindInt && got.n >= 0 && int(got.n) < o.Len() && o.Connected(step.U, int(got.n)) {
			return got, true
		}
		return None(), true
	case KindConnected:
		return Bool(o.Connected(step.U, step.V)), true
	default:
		return None(), false
	}
}
