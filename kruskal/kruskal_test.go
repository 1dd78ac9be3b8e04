package kruskal_test

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/kruskal"
)

// gridPoints returns size×size unit-spaced points with ids 1..size².
func gridPoints(size int) []geometry.Point {
	pts := make([]geometry.Point, 0, size*size)
	id := 1
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			pts = append(pts, geometry.NewPoint(id, i, j))
			id++
		}
	}
	return pts
}

// allLinesOrdered returns every ordered pair (self-loops included) sorted
// by length, ties in generation order.
func allLinesOrdered(pts []geometry.Point) []geometry.LineSegment {
	lines := make([]geometry.LineSegment, 0, len(pts)*len(pts))
	for _, a := range pts {
		for _, b := range pts {
			lines = append(lines, geometry.NewLineSegment(a, b))
		}
	}
	slices.SortStableFunc(lines, func(a, b geometry.LineSegment) int {
		return cmp.Compare(a.Length(), b.Length())
	})
	return lines
}

// line returns the segment between 0-based nodes i and j.
func line(pts []geometry.Point, i, j int) geometry.LineSegment {
	return geometry.NewLineSegment(pts[i], pts[j])
}

// panicErr runs fn and returns the error it panicked with, if any.
func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

// -----------------------------------------------------------------------------
// Kruskal
// -----------------------------------------------------------------------------

func TestKruskal_Grid_UnitEdges(t *testing.T) {
	for _, size := range []int{2, 3, 5} {
		pts := gridPoints(size)
		n := len(pts)
		mst := kruskal.Kruskal(n, nil, allLinesOrdered(pts), nil)

		require.Len(t, mst.Edges(), n-1, "size=%d", size)
		require.Equal(t, 100*(n-1), mst.Length(), "size=%d", size)
		for v := 0; v < n; v++ {
			require.GreaterOrEqual(t, mst.Degree(v), 1, "node %d isolated", v)
		}
	}
}

func TestKruskal_MandatoryEdgesAreKept(t *testing.T) {
	pts := gridPoints(3)
	n := len(pts)
	diag := line(pts, 0, 4) // (0,0)-(1,1)
	mst := kruskal.Kruskal(n, []geometry.LineSegment{diag}, allLinesOrdered(pts), nil)

	require.Len(t, mst.Edges(), n-1)
	require.True(t, mst.Edges()[0].Equal(diag), "mandatory edges come first")
	require.Equal(t, 141+100*(n-2), mst.Length())
	require.Contains(t, mst.EdgesAt(4), diag)
}

func TestKruskal_FilterLeavesForest(t *testing.T) {
	pts := gridPoints(3)
	n := len(pts)
	noNode8 := kruskal.Filter(func(l geometry.LineSegment) bool { return !l.Touches(8) })
	mst := kruskal.Kruskal(n, nil, allLinesOrdered(pts), noNode8)

	require.Len(t, mst.Edges(), n-2)
	require.Zero(t, mst.Degree(8))
	require.Nil(t, mst.EdgesAt(-1))
}

// -----------------------------------------------------------------------------
// KruskalOneTree
// -----------------------------------------------------------------------------

// Unit square, node layout:
//
//	1 (0,1) ── 3 (1,1)
//	   │          │
//	0 (0,0) ── 2 (1,0)
func TestKruskalOneTree_UnitSquareIsTour(t *testing.T) {
	pts := gridPoints(2)
	ot := kruskal.KruskalOneTree(4, 0, nil, allLinesOrdered(pts), nil)

	require.Equal(t, 0, ot.ExcludedNode())
	require.Equal(t, 400, ot.Length())
	require.Equal(t, 200, ot.MST().Length())
	require.Len(t, ot.Edges(), 4)
	require.True(t, ot.IsTour())

	extra := ot.ExtraEdges()
	require.NotEqual(t, extra[0].OtherID(0), extra[1].OtherID(0),
		"both directions of one edge must not be taken twice")
	for v := 0; v < 4; v++ {
		require.Equal(t, 2, ot.Degree(v))
	}
	require.Zero(t, ot.MST().Degree(0), "excluded node stays out of the tree")
}

func TestKruskalOneTree_MandatoryAtExcludedNode(t *testing.T) {
	pts := gridPoints(2)
	diag := line(pts, 0, 3)
	ot := kruskal.KruskalOneTree(4, 0, []geometry.LineSegment{diag}, allLinesOrdered(pts), nil)

	extra := ot.ExtraEdges()
	require.True(t, extra[0].Equal(diag))
	require.Equal(t, 100, extra[1].Length())
	require.Equal(t, 200+141+100, ot.Length())
	require.False(t, ot.IsTour())
}

func TestKruskalOneTree_ExtraEdgesAfterTreeCompletes(t *testing.T) {
	// Node 0 is far away, so its edges come after the tree over 1..4 is done.
	pts := []geometry.Point{
		geometry.NewPoint(1, 100, 100),
		geometry.NewPoint(2, 0, 0),
		geometry.NewPoint(3, 1, 0),
		geometry.NewPoint(4, 2, 0),
		geometry.NewPoint(5, 3, 0),
	}
	ot := kruskal.KruskalOneTree(5, 0, nil, allLinesOrdered(pts), nil)
	require.Len(t, ot.MST().Edges(), 3)
	require.Equal(t, 300, ot.MST().Length())
	extra := ot.ExtraEdges()
	require.ElementsMatch(t, []int{4, 3}, []int{extra[0].OtherID(0), extra[1].OtherID(0)})
	require.LessOrEqual(t, extra[0].Length(), extra[1].Length())
}

func TestKruskalOneTree_PreconditionPanics(t *testing.T) {
	pts := gridPoints(2)
	edges := allLinesOrdered(pts)

	err := panicErr(func() { kruskal.KruskalOneTree(4, 4, nil, edges, nil) })
	require.True(t, errors.Is(err, kruskal.ErrExcludedNodeRange), "got %v", err)

	// Only one neighbour of node 0 remains allowed.
	onlyOne := kruskal.Filter(func(l geometry.LineSegment) bool {
		return !l.Touches(0) || l.Touches(1)
	})
	err = panicErr(func() { kruskal.KruskalOneTree(4, 0, nil, edges, onlyOne) })
	require.True(t, errors.Is(err, kruskal.ErrExcludedNodeDegree), "got %v", err)

	// Three mandatory edges at the excluded node.
	three := []geometry.LineSegment{line(pts, 0, 1), line(pts, 0, 2), line(pts, 0, 3)}
	err = panicErr(func() { kruskal.KruskalOneTree(4, 0, three, edges, nil) })
	require.True(t, errors.Is(err, kruskal.ErrExcludedNodeDegree), "got %v", err)
}

// -----------------------------------------------------------------------------
// ChooseExcludedNode
// -----------------------------------------------------------------------------

func TestChooseExcludedNode(t *testing.T) {
	pts := gridPoints(2)

	v, ok := kruskal.ChooseExcludedNode(4, nil)
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = kruskal.ChooseExcludedNode(4, []geometry.LineSegment{line(pts, 0, 1)})
	assert.True(t, ok)
	assert.Equal(t, 2, v, "first node without mandatory edges")

	path := []geometry.LineSegment{line(pts, 0, 1), line(pts, 1, 3), line(pts, 3, 2)}
	v, ok = kruskal.ChooseExcludedNode(4, path)
	assert.True(t, ok)
	assert.Equal(t, 0, v, "first node with a single mandatory edge")

	cycle := append(path, line(pts, 2, 0))
	_, ok = kruskal.ChooseExcludedNode(4, cycle)
	assert.False(t, ok)
}

// -----------------------------------------------------------------------------
// HeldKarpBound
// -----------------------------------------------------------------------------

// bruteForceTour returns the optimal tour length over all permutations
// fixing node 0. Only for tiny n.
func bruteForceTour(pts []geometry.Point) int {
	n := len(pts)
	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}
	best := -1
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			total := line(pts, 0, rest[0]).Length() + line(pts, rest[len(rest)-1], 0).Length()
			for i := 0; i+1 < len(rest); i++ {
				total += line(pts, rest[i], rest[i+1]).Length()
			}
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)
	return best
}

func TestHeldKarpBound_UnitSquareIsTight(t *testing.T) {
	pts := gridPoints(2)
	b := kruskal.HeldKarpBound(4, 0, nil, allLinesOrdered(pts), nil, kruskal.DefaultBoundConfig())
	require.True(t, b.Tour)
	require.Equal(t, 400, b.Value)
	require.Equal(t, 1, b.Iterations)
}

func TestHeldKarpBound_BetweenOneTreeAndOptimum(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for rep := 0; rep < 5; rep++ {
		pts := make([]geometry.Point, 7)
		for i := range pts {
			pts[i] = geometry.NewPoint(i+1, r.Intn(50), r.Intn(50))
		}
		edges := allLinesOrdered(pts)
		plain := kruskal.KruskalOneTree(len(pts), 0, nil, edges, nil)
		opt := bruteForceTour(pts)

		for _, cfg := range []kruskal.BoundConfig{
			kruskal.DefaultBoundConfig(),
			{MaxIter: 50, Alpha: 1, UB: opt},
		} {
			b := kruskal.HeldKarpBound(len(pts), 0, nil, edges, nil, cfg)
			require.GreaterOrEqual(t, b.Value, plain.Length(), "rep %d", rep)
			require.LessOrEqual(t, b.Value, opt, "rep %d: bound above optimum", rep)
			require.GreaterOrEqual(t, b.Iterations, 1)
		}
	}
}
