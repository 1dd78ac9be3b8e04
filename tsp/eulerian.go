package tsp

import "github.com/katalvlaran/tspprune/geometry"

// EulerianCircuit returns a closed walk from start that uses every edge of
// the undirected multigraph over n nodes exactly once (Hierholzer). Parallel
// edges are allowed; self-loops are not expected. The walk has
// len(edges)+1 entries when every node has even degree and the edges are
// connected; otherwise it covers only start's part of the graph.
//
// Complexity: O(n + E).
func EulerianCircuit(n int, edges []geometry.LineSegment, start int) []int {
	// adj[u] holds edge ids; next[u] counts down over adj[u] so edges are
	// taken last-in first-out.
	adj := make([][]int, n)
	for id, e := range edges {
		u, v := e.StartID(), e.EndID()
		adj[u] = append(adj[u], id)
		adj[v] = append(adj[v], id)
	}
	next := make([]int, n)
	for u := range adj {
		next[u] = len(adj[u])
	}
	used := make([]bool, len(edges))

	circuit := make([]int, 0, len(edges)+1)
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		for next[u] > 0 && used[adj[u][next[u]-1]] {
			next[u]--
		}
		if next[u] == 0 {
			// no more edges: backtrack
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		id := adj[u][next[u]-1]
		next[u]--
		used[id] = true
		stack = append(stack, edges[id].OtherID(u))
	}
	return circuit
}
