// Package tspprune computes the pruning and bounding artifacts a
// branch-and-bound search needs for the Euclidean Travelling Salesman
// Problem.
//
// What is in here?
//
//	geometry/    integer points, boxes and segments with truncated fixed-point
//	             lengths; orientation, intersection and dominance predicates
//	disjointset/ union-find with path compression and union by size
//	spatial/     immutable bulk-loaded bounding-volume hierarchy
//	kruskal/     MST, Held–Karp one-tree and subgradient bound under
//	             mandatory edges and a caller filter
//	tsp/         the instance, the dominated-edge table, Christofides
//	             and 2-opt upper bounds, options and TOML configuration
//	tsplib/      reader for EUC_2D TSPLIB files
//
// Quick start:
//
//	p, err := tsplib.ReadFile("berlin52.tsp")
//	if err != nil { ... }
//	inst, err := p.Instance()
//	if err != nil { ... }
//
//	excluded := inst.DominatedEdges().Dominated(tsp.Edge{From: 0, To: 7})
//	bound := kruskal.HeldKarpBound(inst.Len(), 0, nil, inst.LinesLengthOrdered(), nil, kruskal.DefaultBoundConfig())
//	tour, ok := tsp.Christofides(inst, nil, inst.LinesLengthOrdered(), nil)
//
// The search engine that drives these pieces is not part of this module.
package tspprune
