package tsp

import (
	"slices"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/kruskal"
)

func byLength(a, b geometry.LineSegment) int { return a.Length() - b.Length() }

// greedyMatch pairs up the odd nodes. Nodes with the most candidate edges
// choose first, each taking its shortest candidate to a node that is still
// free. Nodes left over are then paired by scanning the instance's direct
// segments between them in ascending length. It returns the matching and
// the nodes it could not pair.
//
// Candidates are the edges the filter allows whose endpoints are both odd
// and distinct.
//
// Complexity: O(m log m + k² log k) for m edges and k odd nodes.
func greedyMatch(inst *Instance, odd []int, edges []geometry.LineSegment, filter kruskal.Filter) (matched []geometry.LineSegment, unmatched []int) {
	n := inst.Len()
	isOdd := make([]bool, n)
	for _, v := range odd {
		isOdd[v] = true
	}

	candidates := make([][]geometry.LineSegment, n)
	for _, e := range edges {
		u, v := e.StartID(), e.EndID()
		if u == v || !isOdd[u] || !isOdd[v] || (filter != nil && !filter(e)) {
			continue
		}
		candidates[u] = append(candidates[u], e)
		candidates[v] = append(candidates[v], e)
	}

	order := slices.Clone(odd)
	slices.SortStableFunc(order, func(a, b int) int {
		return len(candidates[b]) - len(candidates[a])
	})

	free := isOdd // the odd set doubles as the free set from here on
	for _, u := range order {
		if !free[u] {
			continue
		}
		slices.SortStableFunc(candidates[u], byLength)
		for _, e := range candidates[u] {
			v := e.OtherID(u)
			if free[v] {
				matched = append(matched, e)
				free[u], free[v] = false, false
				break
			}
		}
	}

	var rest []int
	for _, u := range odd {
		if free[u] {
			rest = append(rest, u)
		}
	}
	if len(rest) == 0 {
		return matched, nil
	}
	slices.Sort(rest)

	pairs := make([]geometry.LineSegment, 0, len(rest)*(len(rest)-1)/2)
	for i, u := range rest {
		for _, v := range rest[i+1:] {
			pairs = append(pairs, inst.Line(u, v))
		}
	}
	slices.SortStableFunc(pairs, byLength)
	for _, e := range pairs {
		u, v := e.StartID(), e.EndID()
		if free[u] && free[v] {
			matched = append(matched, e)
			free[u], free[v] = false, false
		}
	}

	for _, u := range rest {
		if free[u] {
			unmatched = append(unmatched, u)
		}
	}
	return matched, unmatched
}
