package script

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linkcut/monoid"
)

// Operator returns the int64 path operator named by a script. count is
// expressed through monoid.Func so every operator shares one aggregate type.
func Operator(name string) (monoid.Operator[int64, int64], error) {
	switch name {
	case "sum":
		return monoid.Sum[int64]{}, nil
	case "min":
		return monoid.NewMin[int64](math.MaxInt64), nil
	case "max":
		return monoid.NewMax[int64](math.MinInt64), nil
	case "xor":
		return monoid.Xor[int64]{}, nil
	case "count":
		return monoid.NewFunc[int64, int64](0,
			func(int64) int64 { return 1 },
			func(a, b int64) int64 { return a + b },
		), nil
	default:
		return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidScript, name)
	}
}
