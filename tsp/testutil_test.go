// Package tsp_test holds the shared helpers of the tsp tests.
package tsp_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/tsp"
)

// unitSquare returns nodes 0=(1,1), 1=(1,2), 2=(2,1), 3=(2,2).
func unitSquare(t testing.TB, opts ...tsp.Option) *tsp.Instance {
	t.Helper()
	return mustInstance(t, "square", [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, opts...)
}

func mustInstance(t testing.TB, name string, coords [][2]int, opts ...tsp.Option) *tsp.Instance {
	t.Helper()
	points := make([]geometry.Point, len(coords))
	for i, c := range coords {
		points[i] = geometry.NewPoint(i+1, c[0], c[1])
	}
	inst, err := tsp.NewInstance(name, points, opts...)
	if err != nil {
		t.Fatalf("NewInstance(%s): %v", name, err)
	}
	return inst
}

// randomCoords returns n pseudo-random coordinates in [0, span).
func randomCoords(seed int64, n, span int) [][2]int {
	rng := rand.New(rand.NewSource(seed))
	coords := make([][2]int, n)
	for i := range coords {
		coords[i] = [2]int{rng.Intn(span), rng.Intn(span)}
	}
	return coords
}

// dominatedTable reads the whole table through the public accessor.
func dominatedTable(inst *tsp.Instance) [][][]tsp.Edge {
	d := inst.DominatedEdges()
	n := inst.Len()
	out := make([][][]tsp.Edge, n)
	for i := range n {
		out[i] = make([][]tsp.Edge, n)
		for j := range n {
			out[i][j] = d.Dominated(tsp.Edge{From: i, To: j})
		}
	}
	return out
}

// bruteForceTour returns the optimal tour length by trying every
// permutation that starts at node 0. Use only for small n.
func bruteForceTour(inst *tsp.Instance) int {
	n := inst.Len()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := -1
	var rec func(k, acc int)
	rec = func(k, acc int) {
		if best >= 0 && acc >= best {
			return
		}
		if k == n {
			total := acc + inst.Line(perm[n-1], perm[0]).Length()
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k+1, acc+inst.Line(perm[k-1], perm[k]).Length())
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(1, 0)
	return best
}

// panicErr runs fn and returns the error it panicked with, or nil.
func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("non-error panic")
		}
	}()
	fn()
	return nil
}
