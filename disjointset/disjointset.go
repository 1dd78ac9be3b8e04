// Package disjointset implements union-find over the integers [0..n).
//
// The structure is a single parent-pointer slice: a negative entry marks
// a root and its magnitude is the size of the set; a non-negative entry
// points toward the root. Find compresses paths, Join attaches the
// smaller set under the larger one, so both run in amortized O(α(n)).
//
// Other element types need an external mapping to indices; package
// kruskal uses the 0-based node index of each segment endpoint.
package disjointset

import "fmt"

// UnionFind is a set of disjoint sets over [0..n).
// The zero value holds no elements; use New.
type UnionFind struct {
	sets  []int
	count int
}

// New returns n singleton sets. Panics if n is negative.
func New(n int) *UnionFind {
	if n < 0 {
		panic(fmt.Sprintf("disjointset: New(%d)", n))
	}
	sets := make([]int, n)
	for i := range sets {
		sets[i] = -1
	}
	return &UnionFind{sets: sets, count: n}
}

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.sets) }

// Find returns the representative of x's set, compressing the path.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.sets[root] >= 0 {
		root = u.sets[root]
	}
	// Second pass: point every node on the path straight at the root.
	for u.sets[x] >= 0 {
		next := u.sets[x]
		u.sets[x] = root
		x = next
	}
	return root
}

// SameSet reports whether a and b are in the same set.
func (u *UnionFind) SameSet(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// Join merges the sets of a and b. It reports whether they were distinct.
func (u *UnionFind) Join(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.sets[ra] > u.sets[rb] {
		// Sizes are negative: ra is the smaller set, swap so ra is larger.
		ra, rb = rb, ra
	}
	u.sets[ra] += u.sets[rb]
	u.sets[rb] = ra
	u.count--
	return true
}

// SetCount returns the number of disjoint sets.
func (u *UnionFind) SetCount() int { return u.count }

// SetSize returns the size of x's set.
func (u *UnionFind) SetSize(x int) int {
	return -u.sets[u.Find(x)]
}
