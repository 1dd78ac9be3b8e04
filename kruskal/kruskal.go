package kruskal

import (
	"fmt"

	"github.com/katalvlaran/tspprune/disjointset"
	"github.com/katalvlaran/tspprune/geometry"
)

// Kruskal returns a minimum spanning tree over nodes [0..n) that contains
// every mandatory edge and otherwise uses the cheapest edges allowed by
// filter. edges must be sorted by ascending Length.
//
// If the allowed edges do not connect the graph the result is a spanning
// forest; callers can compare len(Edges()) against n-1.
//
// Steps:
//  1. Join the endpoints of every mandatory edge and record it.
//  2. Scan edges in order; skip self-loops and filtered edges.
//  3. Keep an edge iff it joins two components; stop at one component.
//
// Complexity: O(m·α(n)) time, O(n) extra space.
func Kruskal(n int, mandatory, edges []geometry.LineSegment, filter Filter) MST {
	sets := disjointset.New(n)
	used := make([]geometry.LineSegment, 0, max(n-1, 0))
	for _, e := range mandatory {
		sets.Join(e.StartID(), e.EndID())
		used = append(used, e)
	}

	for _, e := range edges {
		if sets.SetCount() <= 1 {
			break
		}
		u, v := e.StartID(), e.EndID()
		if u == v || !filter.allows(e) {
			continue
		}
		if sets.Join(u, v) {
			used = append(used, e)
		}
	}

	return NewMST(n, used)
}

// KruskalOneTree returns a minimum one-tree: a Kruskal tree over every node
// except excluded, plus the two cheapest allowed edges incident to excluded.
// Mandatory edges touching excluded take precedence over candidates.
//
// For n > 2 the two extra edges always connect excluded to two different
// nodes: a second direction of an already chosen edge is skipped.
//
// Panics with ErrExcludedNodeRange if excluded is not in [0..n), and with
// ErrExcludedNodeDegree if the inputs do not give excluded exactly two
// edges. Both are contract violations on the caller's side.
//
// Complexity: O(m·α(n)) time, O(n) extra space.
func KruskalOneTree(n, excluded int, mandatory, edges []geometry.LineSegment, filter Filter) OneTree {
	if excluded < 0 || excluded >= n {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrExcludedNodeRange, excluded, n))
	}

	sets := disjointset.New(n)
	extra := make([]geometry.LineSegment, 0, 2)
	used := make([]geometry.LineSegment, 0, max(n-2, 0))

	addExtra := func(e geometry.LineSegment) {
		if len(extra) == 1 && n > 2 && extra[0].OtherID(excluded) == e.OtherID(excluded) {
			return
		}
		extra = append(extra, e)
	}

	for _, e := range mandatory {
		if e.Touches(excluded) {
			extra = append(extra, e)
			continue
		}
		sets.Join(e.StartID(), e.EndID())
		used = append(used, e)
	}

	// Main scan: grow the tree over V\{excluded} until only the tree and
	// the isolated excluded node remain, collecting extra edges on the way.
	i := 0
	for ; i < len(edges) && sets.SetCount() > 2; i++ {
		e := edges[i]
		u, v := e.StartID(), e.EndID()
		if u == v || !filter.allows(e) {
			continue
		}
		if e.Touches(excluded) {
			if len(extra) < 2 {
				addExtra(e)
			}
			continue
		}
		if sets.Join(u, v) {
			used = append(used, e)
		}
	}

	// The tree may complete before two extra edges were seen.
	for ; i < len(edges) && len(extra) < 2; i++ {
		e := edges[i]
		if e.StartID() != e.EndID() && e.Touches(excluded) && filter.allows(e) {
			addExtra(e)
		}
	}

	if sets.SetSize(excluded) != 1 || len(extra) != 2 {
		panic(fmt.Errorf("%w: node %d got %d edges", ErrExcludedNodeDegree, excluded, len(extra)))
	}

	return newOneTree(n, excluded, [2]geometry.LineSegment{extra[0], extra[1]}, used)
}

// ChooseExcludedNode picks the node a one-tree should set aside: the first
// node without mandatory edges, else the first node with exactly one.
// ok is false when every node already has two mandatory edges.
//
// Complexity: O(n + len(mandatory)).
func ChooseExcludedNode(n int, mandatory []geometry.LineSegment) (node int, ok bool) {
	deg := make([]int, n)
	for _, e := range mandatory {
		deg[e.StartID()]++
		deg[e.EndID()]++
	}
	for v := 0; v < n; v++ {
		if deg[v] == 0 {
			return v, true
		}
	}
	for v := 0; v < n; v++ {
		if deg[v] < 2 {
			return v, true
		}
	}
	return -1, false
}
