package tsp

import (
	"slices"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/kruskal"
)

// Christofides builds a tour that keeps the mandatory edges and otherwise
// uses what the filter allows:
//
//  1. minimum spanning tree via kruskal.Kruskal over edges,
//  2. greedy matching of the tree's odd-degree nodes (see greedyMatch),
//  3. Eulerian circuit of tree plus matching, starting at node 0,
//  4. shortcut repeated nodes and close the circuit.
//
// The matching is greedy rather than minimum-weight, so the usual 3/2 factor
// is not guaranteed. The result is a heuristic upper bound.
//
// It reports false, and returns nil, when no tour can be produced: the
// allowed edges do not span the instance, some odd node stays unmatched, or
// the instance has fewer than two nodes.
//
// Complexity: O(m log m + n²) for m edges.
func Christofides(inst *Instance, mandatory, edges []geometry.LineSegment, filter kruskal.Filter) ([]geometry.LineSegment, bool) {
	n := inst.Len()
	if n < 2 {
		return nil, false
	}
	log := inst.logger()

	mst := kruskal.Kruskal(n, mandatory, edges, filter)
	if len(mst.Edges()) != n-1 {
		log.Debug("christofides: spanning tree incomplete", "instance", inst.name, "edges", len(mst.Edges()), "nodes", n)
		return nil, false
	}

	var odd []int
	for v := range n {
		if mst.Degree(v)%2 == 1 {
			odd = append(odd, v)
		}
	}

	matched, unmatched := greedyMatch(inst, odd, edges, filter)
	if len(unmatched) > 0 {
		log.Debug("christofides: odd nodes left unmatched", "instance", inst.name, "unmatched", unmatched)
		return nil, false
	}

	multigraph := append(slices.Clone(mst.Edges()), matched...)
	walk := EulerianCircuit(n, multigraph, 0)

	tour, ok := shortcut(inst, walk)
	if !ok {
		log.Debug("christofides: walk does not reach every node", "instance", inst.name, "walk", len(walk))
		return nil, false
	}
	return tour, true
}

// shortcut turns a closed walk into a tour: each node is kept at its first
// visit and the last kept node is joined back to the first.
func shortcut(inst *Instance, walk []int) ([]geometry.LineSegment, bool) {
	n := inst.Len()
	if len(walk) == 0 {
		return nil, false
	}
	visited := make([]bool, n)
	visited[walk[0]] = true
	last := walk[0]
	tour := make([]geometry.LineSegment, 0, n)
	for _, v := range walk[1:] {
		if visited[v] {
			continue
		}
		visited[v] = true
		tour = append(tour, inst.Line(last, v))
		last = v
	}
	if len(tour) != n-1 {
		return nil, false
	}
	return append(tour, inst.Line(last, walk[0])), true
}
