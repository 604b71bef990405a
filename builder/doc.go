// Package builder generates deterministic forest shapes for tests,
// benchmarks and the linkcut CLI.
//
// A Shape is a vertex count, one int64 value per vertex and an ordered list
// of Edges. Replaying the edges as Link(child, parent) calls on an empty
// link-cut forest never closes a cycle, so every Shape is a valid forest.
//
// Components:
//
//   - Orchestration:
//     – Build(n, opts, cons...): allocate n vertices, draw values, run cons.
//     – Constructor: closure adding edges over a [from, to) vertex range.
//   - Shapes: Path, Star, Binary, Caterpillar, RandomTree, RandomForest.
//   - Options (BuilderOption): WithSeed, WithRand, WithValueFn,
//     WithConstantValue, WithUniformValues.
//   - Value generators (ValueFn): DefaultValueFn, ConstantValueFn,
//     UniformValueFn, IndexValueFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order yield an
//     identical Shape.
//   - Constructors validate before emitting and return sentinel errors
//     (ErrTooFewVertices, ErrRangeOutOfBounds, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with context.
//   - Option constructors panic on meaningless values (nil RNG, nil ValueFn,
//     empty uniform interval).
//
// Constructors may share one Shape over disjoint ranges; an overlap that
// would join two vertices already in one tree fails with ErrConstructFailed.
package builder
