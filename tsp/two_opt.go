package tsp

import (
	"slices"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/kruskal"
)

// TwoOpt improves a tour with deterministic first-improvement 2-opt: for
// positions i < k it replaces a->b and c->d (a=T[i-1], b=T[i], c=T[k],
// d=T[k+1]) by a->c and b->d, reversing T[i..k], whenever
//
//	Δ = len(a,c) + len(b,d) − len(a,b) − len(c,d) < 0
//
// and the move removes no mandatory edge and adds or reverses only segments
// the filter allows. The scan restarts after each accepted move and stops
// at a local optimum or after maxMoves accepted moves (0 means no limit).
//
// The tour must pass ValidateTour; the returned tour starts at the same node.
//
// Complexity: O(n²) per pass, O(n) per accepted move.
func TwoOpt(inst *Instance, tour, mandatory []geometry.LineSegment, filter kruskal.Filter, maxMoves int) ([]geometry.LineSegment, error) {
	n := inst.Len()
	if err := ValidateTour(tour, n); err != nil {
		return nil, err
	}
	if n < 4 {
		return slices.Clone(tour), nil
	}

	fixed := make(map[Edge]bool, 2*len(mandatory))
	for _, e := range mandatory {
		fixed[Edge{e.StartID(), e.EndID()}] = true
		fixed[Edge{e.EndID(), e.StartID()}] = true
	}
	allowed := func(u, v int) bool { return filter == nil || filter(inst.lines[u][v]) }
	w := func(u, v int) int { return inst.lines[u][v].Length() }

	order := TourNodes(tour)
	accepted := 0
	for maxMoves == 0 || accepted < maxMoves {
		improved := false
	scan:
		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := order[i-1], order[i], order[k], order[(k+1)%n]
				if a == d {
					continue
				}
				if w(a, c)+w(b, d)-w(a, b)-w(c, d) >= 0 {
					continue
				}
				if fixed[Edge{a, b}] || fixed[Edge{c, d}] || !allowed(a, c) || !allowed(b, d) {
					continue
				}
				if !reversible(order[i:k+1], allowed) {
					continue
				}
				slices.Reverse(order[i : k+1])
				accepted++
				improved = true
				break scan
			}
		}
		if !improved {
			break
		}
	}
	inst.logger().Debug("two-opt done", "instance", inst.name, "moves", accepted)
	return TourFromNodes(inst, order), nil
}

// reversible reports whether every segment inside path may be walked the
// other way.
func reversible(path []int, allowed func(u, v int) bool) bool {
	for j := 1; j < len(path); j++ {
		if !allowed(path[j], path[j-1]) {
			return false
		}
	}
	return true
}
