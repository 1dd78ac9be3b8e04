// Package geometry provides the integer plane primitives used by the
// pruning and bounding code: points with an optional 1-based identifier,
// inclusive bounding boxes, and line segments with a truncated fixed-point
// length.
//
// What & Why
//
//   - All predicates work on integer coordinates only. Orientation is the
//     sign of a cross product, so no division and no rounding happen while
//     deciding whether two segments cross.
//
//   - Segment lengths are Euclidean distances scaled by 10^decimals and
//     truncated toward zero (default 2 decimals). Every consumer compares
//     these integers, never the raw float, so two segments are "equal" only
//     when their truncated lengths are equal.
//
//   - DominatingInEuclideanTSP is the single geometric fact that licenses
//     pruning: a crossing pair of tour edges that can be replaced by a
//     non-crossing pair over the same four endpoints, of no greater length,
//     is never part of an optimal tour.
//
// Identifiers
//
//   - Point.ID is 1-based (TSPLib numbering) or NoID.
//   - LineSegment.StartID / EndID return 0-based node indices (ID-1).
//
// Complexity
//
//   - Every operation is O(1), except BoxOfPoints / BoxOfBoxes / SumLengths
//     which are linear in their input.
package geometry
