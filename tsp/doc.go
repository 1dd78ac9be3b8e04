// Package tsp holds the Euclidean TSP instance and the pruning data a
// branch-and-bound search over it relies on.
//
// What & Why
//
//   - Instance precomputes every ordered segment between its locations with
//     truncated fixed-point lengths (see geometry.ApproximateDistance), the
//     same segments sorted by length, per-node maximum costs and the
//     bounding box. Lengths are integers so bounds compare exactly.
//
//   - DominatedEdges records, for each directed edge, the edges it may not
//     share an optimal tour with: two crossing edges that can be uncrossed
//     into a pair that is no longer exclude each other. The table is built
//     lazily, once, either through a spatial index over the segments
//     (default) or by comparing all pairs. Both give the same table.
//
//   - Christofides builds a feasible tour under the caller's mandatory
//     edges and filter (an upper bound), and TwoOpt shortens it without
//     breaking those constraints. Lower bounds live in package kruskal.
//
// Contracts
//
//   - Node indices are 0-based; location ids are 1-based and equal index+1.
//   - Accessors panic, wrapping ErrNodeRange, on out-of-range nodes.
//   - Christofides never guesses: when it cannot produce a tour it returns
//     (nil, false).
//   - An Instance is safe for concurrent reads, including the first call
//     to DominatedEdges.
//
// Configuration
//
//	inst, err := tsp.NewInstance(name, points,
//		tsp.WithDecimals(2),
//		tsp.WithDominance(tsp.DominanceSpatialIndex),
//		tsp.WithLogger(slog.Default()))
//
// or from a TOML file with LoadConfig and Config.Options.
//
// Complexity
//
//   - NewInstance: O(n² log n).
//   - DominatedEdges: O(n⁴) all-vs-all; the spatial index visits only
//     segments whose boxes meet, typically far fewer.
//   - Christofides: O(n² log n) over the instance's segments.
package tsp
