package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspprune/geometry"
)

// TourLength returns the sum of the tour's truncated segment lengths.
func TourLength(tour []geometry.LineSegment) int { return geometry.SumLengths(tour) }

// ValidateTour checks that tour is a Hamiltonian cycle over n nodes:
// exactly n segments, each starting where the previous one ended, the last
// returning to the first node, and no node entered twice.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []geometry.LineSegment, n int) error {
	if n <= 0 || len(tour) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrTourLength, len(tour), n)
	}
	seen := make([]bool, n)
	for i, e := range tour {
		next := tour[(i+1)%n]
		if e.EndID() != next.StartID() {
			return fmt.Errorf("%w: %v then %v", ErrTourBroken, e, next)
		}
		v := e.EndID()
		if v < 0 || v >= n {
			return fmt.Errorf("%w: node %d outside [0, %d)", ErrNodeRange, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: node %d", ErrTourRevisit, v)
		}
		seen[v] = true
	}
	return nil
}

// TourNodes returns the node sequence of a tour, without repeating the
// first node at the end.
func TourNodes(tour []geometry.LineSegment) []int {
	nodes := make([]int, len(tour))
	for i, e := range tour {
		nodes[i] = e.StartID()
	}
	return nodes
}

// TourFromNodes closes the node sequence order into a tour of inst's
// segments. Panics, wrapping ErrNodeRange, on a node outside the instance.
func TourFromNodes(inst *Instance, order []int) []geometry.LineSegment {
	if len(order) == 0 {
		return nil
	}
	tour := make([]geometry.LineSegment, len(order))
	for i, u := range order {
		tour[i] = inst.Line(u, order[(i+1)%len(order)])
	}
	return tour
}
