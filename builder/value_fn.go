// Package builder provides the vertex value generators used by Build.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultVertexValue is the value every vertex carries when no ValueFn is set.
const DefaultVertexValue int64 = 1

// ValueFn produces the value of vertex i given an optional RNG. It must be
// deterministic for a given RNG state.
type ValueFn func(i int, rng *rand.Rand) int64

// DefaultValueFn always returns DefaultVertexValue.
func DefaultValueFn(int, *rand.Rand) int64 {
	return DefaultVertexValue
}

// ConstantValueFn returns a ValueFn that always yields v.
func ConstantValueFn(v int64) ValueFn {
	return func(int, *rand.Rand) int64 {
		return v
	}
}

// UniformValueFn returns a ValueFn sampling uniformly in [lo, hi].
// Panics if hi < lo. With a nil RNG it yields lo.
func UniformValueFn(lo, hi int64) ValueFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformValueFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(_ int, rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// IndexValueFn returns a ValueFn yielding scale·i + offset, handy for
// readable fixtures where a path sum identifies the path.
func IndexValueFn(scale, offset int64) ValueFn {
	return func(i int, _ *rand.Rand) int64 {
		return scale*int64(i) + offset
	}
}

// WithConstantValue sets every vertex value to v.
func WithConstantValue(v int64) BuilderOption {
	return WithValueFn(ConstantValueFn(v))
}

// WithUniformValues draws vertex values from U[lo, hi].
func WithUniformValues(lo, hi int64) BuilderOption {
	return WithValueFn(UniformValueFn(lo, hi))
}
