// Package builder generates deterministic fixture graphs as a stream of
// weighted edges into any Sink (core.Graph, network.Network, a file writer).
//
// Components:
//
//   - Build(sink, opts, cons...) / BuildGraph(opts, cons...): the orchestrator.
//   - Constructors: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Options: WithIDScheme, WithOffset, WithSeed, WithRand, WithWeightFn,
//     WithConstantWeight, WithUniformWeight.
//   - Weight generators: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Identifiers: constructors work on vertex indices 0..n-1 and map them to
// ids through the ID scheme; the default is OneBasedID (i → i+1).
//
// Guarantees:
//
//   - Fixed emission order per constructor, documented in its file, so a
//     fixed seed always yields the same edges and weights.
//   - Parameter errors are returned before any edge is emitted.
//   - Option constructors panic on invalid arguments (nil funcs, bad ranges).
//   - Composing constructors that hit the same pair with different weights
//     surfaces the sink's conflict error, wrapped.
package builder
