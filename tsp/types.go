package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrEmptyInstance is returned by NewInstance when no locations are given.
	ErrEmptyInstance = errors.New("tsp: instance has no locations")

	// ErrNodeIDs is returned by NewInstance when location i does not carry id i+1.
	ErrNodeIDs = errors.New("tsp: location ids must be 1..n in input order")

	// ErrNodeRange is wrapped by the panics of Instance accessors given a
	// node index outside [0, n).
	ErrNodeRange = errors.New("tsp: node index out of range")

	// ErrTourLength is returned by ValidateTour when the tour does not have n edges.
	ErrTourLength = errors.New("tsp: tour must have exactly n edges")

	// ErrTourBroken is returned by ValidateTour when consecutive edges do not
	// share an endpoint or the last edge does not return to the first node.
	ErrTourBroken = errors.New("tsp: tour edges are not consecutive")

	// ErrTourRevisit is returned by ValidateTour when a node is entered twice.
	ErrTourRevisit = errors.New("tsp: tour visits a node more than once")

	// ErrUnknownDominance is returned when a configuration names no known
	// dominated-edge strategy.
	ErrUnknownDominance = errors.New("tsp: unknown dominance strategy")
)

// Edge is a directed pair of 0-based node indices.
type Edge struct {
	From int
	To   int
}

// Reverse returns the edge traversed the other way.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// Less orders edges by From, then To.
func (e Edge) Less(o Edge) bool {
	if e.From != o.From {
		return e.From < o.From
	}
	return e.To < o.To
}

func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.From, e.To) }

// Dominance selects how the dominated-edge table is built.
type Dominance int

const (
	// DominanceSpatialIndex restricts the inner search to edges whose
	// bounding box meets the outer edge's bounding box.
	DominanceSpatialIndex Dominance = iota
	// DominanceAllVsAll compares every pair of node-disjoint edges.
	DominanceAllVsAll
)

func (d Dominance) String() string {
	switch d {
	case DominanceSpatialIndex:
		return "spatial"
	case DominanceAllVsAll:
		return "all-vs-all"
	default:
		return fmt.Sprintf("Dominance(%d)", int(d))
	}
}

// ParseDominance maps the names printed by Dominance.String back to values.
func ParseDominance(s string) (Dominance, error) {
	switch s {
	case "spatial", "":
		return DominanceSpatialIndex, nil
	case "all-vs-all":
		return DominanceAllVsAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDominance, s)
	}
}
