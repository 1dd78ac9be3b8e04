// Held–Karp (Lagrangian) one-tree lower bound.
//
// For penalties π ∈ ℝⁿ define reduced costs c'_{uv} = c_{uv} + π_u + π_v.
// A minimum one-tree T(π) under c' gives the bound
//
//	L(π) = cost_c'(T(π)) − 2·Σ_i π_i
//
// which is a lower bound on every tour for every π (a tour has degree 2
// everywhere, so the penalties cancel on it). π is updated by subgradient
// ascent with s_i = deg_T(i) − 2.
//
// Mandatory edges stay forced in every iteration, so the bound holds for
// the tours consistent with them and with the filter.

package kruskal

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/tspprune/geometry"
)

// BoundConfig controls the subgradient loop.
type BoundConfig struct {
	// MaxIter is the maximum number of one-tree constructions (≥ 1).
	MaxIter int
	// Alpha ∈ (0, 2) scales the step.
	Alpha float64
	// UB is an optional incumbent tour length for adaptive steps; ≤ 0
	// selects the diminishing schedule α/(1+iter) scaled by the mean edge.
	UB int
}

// DefaultBoundConfig returns a short, deterministic schedule.
func DefaultBoundConfig() BoundConfig {
	return BoundConfig{MaxIter: 32, Alpha: 0.9}
}

// Bound is the outcome of HeldKarpBound.
type Bound struct {
	// Value is the best lower bound found, rounded up to an integer
	// length (tour lengths are integers).
	Value int
	// Tree is the one-tree of the last iteration.
	Tree OneTree
	// Tour is set when some iteration produced a one-tree with every
	// degree equal to 2; Value is then optimal under the constraints.
	Tour bool
	// Iterations is the number of one-trees built.
	Iterations int
}

// HeldKarpBound runs subgradient ascent over KruskalOneTree.
//
// Arguments match KruskalOneTree; edges need not be sorted because every
// iteration re-sorts a private copy by reduced cost. Panics like
// KruskalOneTree on contract violations.
//
// Complexity: O(cfg.MaxIter · m log m) time, O(m) extra space.
func HeldKarpBound(n, excluded int, mandatory, edges []geometry.LineSegment, filter Filter, cfg BoundConfig) Bound {
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 2 {
		cfg.Alpha = 0.9
	}

	pi := make([]float64, n)
	reduced := func(e geometry.LineSegment) float64 {
		return float64(e.Length()) + pi[e.StartID()] + pi[e.EndID()]
	}
	sorted := slices.Clone(edges)

	// Step scale for the schedule without UB: the average candidate length.
	scale := 1.0
	if len(edges) > 0 {
		scale = float64(geometry.SumLengths(edges)) / float64(len(edges))
	}

	var (
		best  = math.Inf(-1)
		res   Bound
		tree  OneTree
		sumPi float64
	)
	for iter := 0; iter < cfg.MaxIter; iter++ {
		slices.SortStableFunc(sorted, func(a, b geometry.LineSegment) int {
			return cmp.Compare(reduced(a), reduced(b))
		})
		tree = KruskalOneTree(n, excluded, mandatory, sorted, filter)
		res.Iterations++

		var cost float64
		for _, e := range tree.Edges() {
			cost += reduced(e)
		}
		sumPi = 0
		for _, p := range pi {
			sumPi += p
		}
		bound := cost - 2*sumPi
		if bound > best {
			best = bound
		}

		// ||s||² with s_i = deg(i) − 2.
		var norm2 float64
		for v := 0; v < n; v++ {
			d := float64(tree.Degree(v) - 2)
			norm2 += d * d
		}
		if norm2 == 0 {
			res.Tour = true
			break
		}

		var step float64
		if cfg.UB > 0 {
			step = cfg.Alpha * max(float64(cfg.UB)-bound, 0) / norm2
		} else {
			step = cfg.Alpha * scale / (1.0 + float64(iter)) / math.Sqrt(norm2)
		}
		if step == 0 {
			break
		}
		for v := 0; v < n; v++ {
			pi[v] += step * float64(tree.Degree(v)-2)
		}
	}

	res.Tree = tree
	// Shave FP noise before rounding up to the next integer length.
	res.Value = int(math.Ceil(best - 1e-6))
	return res
}
