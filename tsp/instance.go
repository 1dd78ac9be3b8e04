package tsp

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/tspprune/geometry"
)

// Instance is an immutable Euclidean TSP instance. All derived data is
// computed once in NewInstance, except the dominated-edge table which is
// built on first use.
type Instance struct {
	name      string
	locations []geometry.Point
	lines     [][]geometry.LineSegment // lines[i][j] goes from node i to node j
	ordered   []geometry.LineSegment
	maxCosts  []int
	maxCost   int
	bounds    geometry.BoundingBox
	cfg       instanceConfig

	dominatedOnce sync.Once
	dominated     *DominatedEdges
}

// NewInstance builds an instance over locations, which must carry the ids
// 1..n in order.
func NewInstance(name string, locations []geometry.Point, opts ...Option) (*Instance, error) {
	if len(locations) == 0 {
		return nil, ErrEmptyInstance
	}
	for i, p := range locations {
		if p.ID() != i+1 {
			return nil, fmt.Errorf("%w: location %d has id %d", ErrNodeIDs, i, p.ID())
		}
	}

	cfg := defaultInstanceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(locations)
	inst := &Instance{
		name:      name,
		locations: slices.Clone(locations),
		lines:     make([][]geometry.LineSegment, n),
		ordered:   make([]geometry.LineSegment, 0, n*n),
		maxCosts:  make([]int, n),
		maxCost:   -1,
		bounds:    geometry.BoxOfPoints(locations...),
		cfg:       cfg,
	}
	for i := range n {
		row := make([]geometry.LineSegment, n)
		inst.maxCosts[i] = -1
		for j := range n {
			row[j] = geometry.NewLineSegmentDecimals(locations[i], locations[j], cfg.decimals)
			inst.maxCosts[i] = max(inst.maxCosts[i], row[j].Length())
		}
		inst.lines[i] = row
		inst.ordered = append(inst.ordered, row...)
		inst.maxCost = max(inst.maxCost, inst.maxCosts[i])
	}
	slices.SortStableFunc(inst.ordered, func(a, b geometry.LineSegment) int {
		return a.Length() - b.Length()
	})

	return inst, nil
}

// Grid returns the size×size unit grid instance named "Grid". Node i*size+j
// sits at (i, j).
func Grid(size int, opts ...Option) *Instance {
	if size < 1 {
		panic(fmt.Sprintf("tsp: Grid(%d)", size))
	}
	locations := make([]geometry.Point, 0, size*size)
	id := 1
	for i := range size {
		for j := range size {
			locations = append(locations, geometry.NewPoint(id, i, j))
			id++
		}
	}
	inst, err := NewInstance("Grid", locations, opts...)
	if err != nil {
		panic(err) // ids are generated in order
	}
	return inst
}

// Name returns the instance name.
func (inst *Instance) Name() string { return inst.name }

// Len returns the number of nodes.
func (inst *Instance) Len() int { return len(inst.locations) }

// Decimals returns the fixed-point precision of the instance's lengths.
func (inst *Instance) Decimals() int { return inst.cfg.decimals }

func (inst *Instance) checkNode(i int) {
	if i < 0 || i >= len(inst.locations) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrNodeRange, i, len(inst.locations)))
	}
}

// Location returns node i's point.
func (inst *Instance) Location(i int) geometry.Point {
	inst.checkNode(i)
	return inst.locations[i]
}

// Line returns the segment from node i to node j. Line(i, i) is a
// zero-length self-loop.
func (inst *Instance) Line(i, j int) geometry.LineSegment {
	inst.checkNode(i)
	inst.checkNode(j)
	return inst.lines[i][j]
}

// Lines returns the n×n segment matrix. The result is shared; do not modify.
func (inst *Instance) Lines() [][]geometry.LineSegment { return inst.lines }

// LinesLengthOrdered returns all n² ordered segments, self-loops included,
// sorted by ascending length. Ties keep row-major order. The result is
// shared; do not modify.
func (inst *Instance) LinesLengthOrdered() []geometry.LineSegment { return inst.ordered }

// MaxCosts returns, for each node, the length of its longest segment.
func (inst *Instance) MaxCosts() []int { return slices.Clone(inst.maxCosts) }

// MaxCost returns the longest segment length in the instance.
func (inst *Instance) MaxCost() int { return inst.maxCost }

// MaxTotalCost returns the sum of MaxCosts, an upper bound on any tour.
func (inst *Instance) MaxTotalCost() int {
	total := 0
	for _, c := range inst.maxCosts {
		total += c
	}
	return total
}

// Bounds returns the bounding box of all locations.
func (inst *Instance) Bounds() geometry.BoundingBox { return inst.bounds }

// ComputeDominatedEdges builds the dominated-edge table if it has not been
// built yet. Safe for concurrent use.
func (inst *Instance) ComputeDominatedEdges() {
	inst.dominatedOnce.Do(func() {
		inst.dominated = buildDominatedEdges(inst)
	})
}

// DominatedEdges returns the dominated-edge table, building it on first use.
func (inst *Instance) DominatedEdges() *DominatedEdges {
	inst.ComputeDominatedEdges()
	return inst.dominated
}

func (inst *Instance) logger() *slog.Logger { return inst.cfg.logger }
