package tsp

import (
	"slices"
	"time"

	"github.com/katalvlaran/tspprune/geometry"
	"github.com/katalvlaran/tspprune/spatial"
)

// DominatedEdges maps each directed edge to the edges it may not share a
// tour with.
//
// For four distinct nodes, a pair of crossing edges is never part of an
// optimal Euclidean tour when uncrossing them into a pair of the same four
// endpoints is no longer and keeps the tour connected (see
// geometry.DominatingInEuclideanTSP). The two crossing edges therefore
// exclude each other: Dominated(s1->e1) lists s2->e2 and e2->s2, and the
// same holds for every direction of both edges.
//
// Each cell is sorted by (From, To) and free of duplicates.
type DominatedEdges struct {
	table [][][]Edge
}

// Len returns the number of nodes the table covers.
func (d *DominatedEdges) Len() int { return len(d.table) }

// Dominated returns the edges that exclude e. The result is shared; do not
// modify.
func (d *DominatedEdges) Dominated(e Edge) []Edge {
	if e.From < 0 || e.From >= len(d.table) || e.To < 0 || e.To >= len(d.table) {
		return nil
	}
	return d.table[e.From][e.To]
}

// Count returns the total number of entries over all cells.
func (d *DominatedEdges) Count() int {
	total := 0
	for _, row := range d.table {
		for _, cell := range row {
			total += len(cell)
		}
	}
	return total
}

func newDominatedTable(n int) [][][]Edge {
	table := make([][][]Edge, n)
	for i := range table {
		table[i] = make([][]Edge, n)
	}
	return table
}

// exclude records that the crossing edges a-b and c-d rule each other out.
func exclude(table [][][]Edge, a, b, c, d int) {
	ab, cd := Edge{a, b}, Edge{c, d}
	for _, e := range [...]Edge{ab, ab.Reverse()} {
		table[e.From][e.To] = append(table[e.From][e.To], cd, cd.Reverse())
	}
	for _, e := range [...]Edge{cd, cd.Reverse()} {
		table[e.From][e.To] = append(table[e.From][e.To], ab, ab.Reverse())
	}
}

func finalize(table [][][]Edge) *DominatedEdges {
	for _, row := range table {
		for j, cell := range row {
			if len(cell) == 0 {
				continue
			}
			slices.SortFunc(cell, func(a, b Edge) int {
				if a.Less(b) {
					return -1
				}
				if b.Less(a) {
					return 1
				}
				return 0
			})
			row[j] = slices.Clip(slices.Compact(cell))
		}
	}
	return &DominatedEdges{table: table}
}

func buildDominatedEdges(inst *Instance) *DominatedEdges {
	start := time.Now()
	var d *DominatedEdges
	switch inst.cfg.dominance {
	case DominanceAllVsAll:
		d = dominatedAllVsAll(inst)
	default:
		d = dominatedSpatial(inst)
	}
	inst.logger().Debug("dominated edges built",
		"instance", inst.name,
		"strategy", inst.cfg.dominance.String(),
		"nodes", inst.Len(),
		"entries", d.Count(),
		"elapsed", time.Since(start))
	return d
}

// forwardLines returns every segment s->e with s < e.
func forwardLines(inst *Instance) []geometry.LineSegment {
	n := inst.Len()
	out := make([]geometry.LineSegment, 0, n*(n-1)/2)
	for s := range n {
		for e := s + 1; e < n; e++ {
			out = append(out, inst.lines[s][e])
		}
	}
	return out
}

// dominatedAllVsAll compares the pairings {s1e1, s2e2} and {s1e2, s2e1} of
// every four distinct nodes with s1 < e1, s1 < s2 < e2, in both directions.
func dominatedAllVsAll(inst *Instance) *DominatedEdges {
	n := inst.Len()
	table := newDominatedTable(n)
	line := func(a, b int) geometry.LineSegment { return inst.lines[a][b] }

	for s1 := range n {
		for e1 := s1 + 1; e1 < n; e1++ {
			for s2 := s1 + 1; s2 < n; s2++ {
				if s2 == e1 {
					continue
				}
				for e2 := s2 + 1; e2 < n; e2++ {
					if e2 == e1 {
						continue
					}
					switch {
					case geometry.DominatingInEuclideanTSP(line(s1, e2), line(s2, e1), line(s1, e1), line(s2, e2)):
						exclude(table, s1, e1, s2, e2)
					case geometry.DominatingInEuclideanTSP(line(s1, e1), line(s2, e2), line(s1, e2), line(s2, e1)):
						exclude(table, s1, e2, s2, e1)
					}
				}
			}
		}
	}
	return finalize(table)
}

// dominatedSpatial finds the same exclusions as dominatedAllVsAll. A
// dominated pair always crosses, so for each outer edge s1->e1 only the
// inner edges s2->e2 whose box meets its box are tested, and the outer and
// inner edge are taken as the crossing pair.
//
// With s1 the smallest of the four nodes, the all-vs-all enumeration tests
// a crossing pair against the swap {s1e2, s2e1}, and additionally against
// {s1s2, e2e1} when s1 < s2 < e2 < e1.
func dominatedSpatial(inst *Instance) *DominatedEdges {
	n := inst.Len()
	table := newDominatedTable(n)
	line := func(a, b int) geometry.LineSegment { return inst.lines[a][b] }

	forward := forwardLines(inst)
	index := spatial.NewBoxed(forward, spatial.WithBucketSize(inst.cfg.bucketSize))

	for _, outer := range forward {
		s1, e1 := outer.StartID(), outer.EndID()
		index.Visit(outer.Box(), func(inner geometry.LineSegment) {
			s2, e2 := inner.StartID(), inner.EndID()
			if s2 <= s1 || s2 == e1 || e2 == e1 {
				return
			}
			if !geometry.Intersects(outer, inner) {
				return
			}
			if geometry.DominatingInEuclideanTSP(line(s1, e2), line(s2, e1), outer, inner) {
				exclude(table, s1, e1, s2, e2)
				return
			}
			if e2 < e1 && geometry.DominatingInEuclideanTSP(line(s1, s2), line(e2, e1), outer, line(e2, s2)) {
				exclude(table, s1, e1, s2, e2)
			}
		})
	}
	return finalize(table)
}
