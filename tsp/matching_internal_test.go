package tsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspprune/geometry"
)

func square(t *testing.T) *Instance {
	t.Helper()
	inst, err := NewInstance("square", []geometry.Point{
		geometry.NewPoint(1, 1, 1),
		geometry.NewPoint(2, 1, 2),
		geometry.NewPoint(3, 2, 1),
		geometry.NewPoint(4, 2, 2),
	})
	require.NoError(t, err)
	return inst
}

func TestGreedyMatch_PrefersCandidates(t *testing.T) {
	inst := square(t)
	edges := []geometry.LineSegment{inst.Line(0, 3), inst.Line(1, 2)}

	matched, unmatched := greedyMatch(inst, []int{0, 1, 2, 3}, edges, nil)
	assert.Empty(t, unmatched)
	assert.Equal(t, []geometry.LineSegment{inst.Line(0, 3), inst.Line(1, 2)}, matched)
}

func TestGreedyMatch_FallbackScan(t *testing.T) {
	inst := square(t)
	rejectAll := func(geometry.LineSegment) bool { return false }

	matched, unmatched := greedyMatch(inst, []int{0, 1, 2, 3}, inst.LinesLengthOrdered(), rejectAll)
	assert.Empty(t, unmatched)
	assert.Equal(t, []geometry.LineSegment{inst.Line(0, 1), inst.Line(2, 3)}, matched)
}

func TestGreedyMatch_MostConstrainedFirst(t *testing.T) {
	inst := square(t)
	// node 3 has three candidates and picks its shortest, 3->1
	edges := []geometry.LineSegment{inst.Line(0, 1), inst.Line(3, 1), inst.Line(3, 2), inst.Line(3, 0)}

	matched, unmatched := greedyMatch(inst, []int{0, 1, 2, 3}, edges, nil)
	assert.Empty(t, unmatched)
	require.Len(t, matched, 2)
	assert.Equal(t, inst.Line(3, 1), matched[0])
	assert.Equal(t, inst.Line(0, 2), matched[1], "0 and 2 fall back to the direct segment")
}

func TestGreedyMatch_LeftoverFails(t *testing.T) {
	inst := square(t)
	matched, unmatched := greedyMatch(inst, []int{2}, inst.LinesLengthOrdered(), nil)
	assert.Empty(t, matched)
	assert.Equal(t, []int{2}, unmatched)
}

func TestShortcut(t *testing.T) {
	inst := square(t)

	tour, ok := shortcut(inst, []int{0, 1, 0, 2, 3, 0})
	require.True(t, ok)
	assert.Equal(t, []geometry.LineSegment{inst.Line(0, 1), inst.Line(1, 2), inst.Line(2, 3), inst.Line(3, 0)}, tour)

	_, ok = shortcut(inst, []int{0, 1, 0})
	assert.False(t, ok)
	_, ok = shortcut(inst, nil)
	assert.False(t, ok)
}
