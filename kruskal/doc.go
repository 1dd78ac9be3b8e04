// Package kruskal builds minimum spanning trees and Held–Karp one-trees
// over geometry.LineSegment edges under partial constraints.
//
// What & Why
//
//   - Kruskal seeds a union-find with the mandatory edges (edges already
//     fixed by the caller's partial assignment), then scans candidate edges
//     in ascending truncated length, keeping those the caller's Filter still
//     allows and that join two components. It stops as soon as one
//     component remains.
//
//   - KruskalOneTree does the same over every node but excludedNode; edges
//     touching excludedNode are set aside until two of them (the cheapest
//     available) are found. The result's length is a lower bound on any
//     tour that respects the mandatory edges and the filter.
//
//   - HeldKarpBound tightens that bound with subgradient ascent on node
//     penalties π, re-running KruskalOneTree on reduced costs
//     len(u,v)+π_u+π_v.
//
// Contracts
//
//   - Candidate edges are sorted by Length; ties keep the caller's order.
//   - Mandatory edges must not close a cycle. This is not checked.
//   - KruskalOneTree panics (wrapping ErrExcludedNodeRange or
//     ErrExcludedNodeDegree) when its preconditions are violated: those are
//     inconsistencies in the caller's constraint state, not input errors.
//   - The filter is a plain closure: the functions keep no state between
//     calls and are safe to call concurrently over shared inputs.
//
// Complexity
//
//   - Kruskal / KruskalOneTree: O(m·α(n)) for m candidate edges.
//   - HeldKarpBound: O(iters · m log m).
package kruskal
