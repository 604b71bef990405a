package script

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/linkcut/builder"
)

// mix weights the operation kinds drawn by Random after the initial links.
var mix = []struct {
	kind   Kind
	weight int
}{
	{KindLink, 4},
	{KindCut, 3},
	{KindQuery, 6},
	{KindLCA, 2},
	{KindParent, 2},
	{KindEvert, 1},
	{KindRoot, 1},
	{KindConnected, 2},
	{KindSet, 2},
}

// Random turns shape into a workload: one expected-true link per shape edge,
// followed by steps random operations over sum. Cuts target a previously
// linked pair half of the time so they mostly succeed. Expectations are
// only attached to the initial links; verify the rest with the oracle.
func Random(shape *builder.Shape, steps int, seed int64) *Script {
	rng := rand.New(rand.NewSource(seed))
	n := shape.N

	s := &Script{
		Name:     fmt.Sprintf("random-%d-%d-%d", n, steps, seed),
		Operator: "sum",
		Values:   append([]int64(nil), shape.Values...),
		Ops:      make([]Op, 0, len(shape.Edges)+steps),
	}

	// linked holds candidate edges for cuts; links that the forest rejects
	// stay in it and simply produce rejected cuts.
	linked := make([][2]int, 0, len(shape.Edges))
	yes := Bool(true)
	for _, e := range shape.Edges {
		s.Ops = append(s.Ops, Op{Op: KindLink, U: e.Child, V: e.Parent, Expect: &yes})
		linked = append(linked, [2]int{e.Child, e.Parent})
	}

	total := 0
	for _, m := range mix {
		total += m.weight
	}
	for i := 0; i < steps; i++ {
		kind := pick(rng, total)
		op := Op{Op: kind, U: rng.Intn(n), V: rng.Intn(n), Root: rng.Intn(n)}
		switch kind {
		case KindLink:
			linked = append(linked, [2]int{op.U, op.V})
		case KindCut:
			if len(linked) > 0 && rng.Intn(2) == 0 {
				j := rng.Intn(len(linked))
				op.U, op.V = linked[j][0], linked[j][1]
				linked[j] = linked[len(linked)-1]
				linked = linked[:len(linked)-1]
			}
		case KindSet:
			op.Value = rng.Int63n(2001) - 1000
		}
		s.Ops = append(s.Ops, op.trim())
	}

	return s
}

func pick(rng *rand.Rand, total int) Kind {
	r := rng.Intn(total)
	for _, m := range mix {
		if r < m.weight {
			return m.kind
		}
		r -= m.weight
	}

	return mix[len(mix)-1].kind
}

// trim clears the handle fields op does not read so encoded scripts stay
// readable.
func (o Op) trim() Op {
	switch o.Op {
	case KindLCA:
	case KindParent:
		o.V = 0
	case KindEvert, KindRoot, KindSet:
		o.V, o.Root = 0, 0
	default:
		o.Root = 0
	}

	return o
}
