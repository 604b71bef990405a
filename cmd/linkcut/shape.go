package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linkcut/builder"
	"github.com/katalvlaran/linkcut/internal/config"
)

const (
	valueLo         = -1000
	valueHi         = 1000
	caterpillarLegs = 3
	forestKeep      = 0.9
)

var errUnknownShape = errors.New("unknown shape")

// buildShape turns the bench settings into an initial forest.
func buildShape(b config.BenchConfig) (*builder.Shape, error) {
	n := b.Vertices

	var cons builder.Constructor
	switch b.Shape {
	case "path":
		cons = builder.Path(0, n)
	case "star":
		cons = builder.Star(0, 0, n)
	case "binary":
		cons = builder.Binary(0, n)
	case "caterpillar":
		cons = builder.Caterpillar(0, max(1, n/(1+caterpillarLegs)), caterpillarLegs)
	case "random":
		cons = builder.RandomTree(0, n)
	case "forest":
		cons = builder.RandomForest(0, n, forestKeep)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownShape, b.Shape)
	}

	return builder.Build(n,
		[]builder.BuilderOption{builder.WithSeed(b.Seed), builder.WithUniformValues(valueLo, valueHi)},
		cons)
}
