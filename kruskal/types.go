package kruskal

import (
	"errors"

	"github.com/katalvlaran/tspprune/geometry"
)

// ErrExcludedNodeRange indicates an excluded node outside [0..n).
var ErrExcludedNodeRange = errors.New("kruskal: excluded node out of range")

// ErrExcludedNodeDegree indicates that the mandatory and candidate edges
// do not give the excluded node exactly two incident edges.
var ErrExcludedNodeDegree = errors.New("kruskal: excluded node must get exactly two edges")

// Filter reports whether an edge is still permitted. A nil Filter permits
// every edge.
type Filter func(geometry.LineSegment) bool

func (f Filter) allows(l geometry.LineSegment) bool {
	return f == nil || f(l)
}

// MST is an immutable spanning forest: its edges, a per-node adjacency
// view and the cached total length.
type MST struct {
	edges  []geometry.LineSegment
	byNode [][]geometry.LineSegment
	length int
}

// NewMST wraps edges over nodes [0..n). Endpoints beyond n grow the
// adjacency view.
func NewMST(n int, edges []geometry.LineSegment) MST {
	return MST{
		edges:  edges,
		byNode: splitByNode(n, edges),
		length: geometry.SumLengths(edges),
	}
}

func splitByNode(n int, edges []geometry.LineSegment) [][]geometry.LineSegment {
	for _, e := range edges {
		n = max(n, e.StartID()+1, e.EndID()+1)
	}
	out := make([][]geometry.LineSegment, n)
	for _, e := range edges {
		out[e.StartID()] = append(out[e.StartID()], e)
		out[e.EndID()] = append(out[e.EndID()], e)
	}
	return out
}

// Edges returns the tree edges in insertion order (mandatory first).
func (m MST) Edges() []geometry.LineSegment { return m.edges }

// EdgesAt returns the tree edges incident to node.
func (m MST) EdgesAt(node int) []geometry.LineSegment {
	if node < 0 || node >= len(m.byNode) {
		return nil
	}
	return m.byNode[node]
}

// Degree returns the number of tree edges incident to node.
func (m MST) Degree(node int) int { return len(m.EdgesAt(node)) }

// Nodes returns the size of the adjacency view.
func (m MST) Nodes() int { return len(m.byNode) }

// Length returns the summed truncated length of the edges.
func (m MST) Length() int { return m.length }

// OneTree is a spanning tree over every node but ExcludedNode plus the two
// edges reattaching ExcludedNode.
type OneTree struct {
	excluded int
	extra    [2]geometry.LineSegment
	mst      MST
	byNode   [][]geometry.LineSegment
	length   int
}

func newOneTree(n, excluded int, extra [2]geometry.LineSegment, mstEdges []geometry.LineSegment) OneTree {
	mst := NewMST(n, mstEdges)
	byNode := make([][]geometry.LineSegment, max(n, mst.Nodes()))
	for i := range byNode {
		byNode[i] = append([]geometry.LineSegment(nil), mst.EdgesAt(i)...)
	}
	for _, e := range extra {
		byNode[e.StartID()] = append(byNode[e.StartID()], e)
		byNode[e.EndID()] = append(byNode[e.EndID()], e)
	}
	return OneTree{
		excluded: excluded,
		extra:    extra,
		mst:      mst,
		byNode:   byNode,
		length:   mst.Length() + extra[0].Length() + extra[1].Length(),
	}
}

// ExcludedNode returns the node reattached by ExtraEdges.
func (o OneTree) ExcludedNode() int { return o.excluded }

// ExtraEdges returns the two edges incident to the excluded node, cheapest first.
func (o OneTree) ExtraEdges() [2]geometry.LineSegment { return o.extra }

// MST returns the spanning tree over the other nodes.
func (o OneTree) MST() MST { return o.mst }

// Edges returns the tree edges followed by the two extra edges.
func (o OneTree) Edges() []geometry.LineSegment {
	out := make([]geometry.LineSegment, 0, len(o.mst.edges)+2)
	out = append(out, o.mst.edges...)
	return append(out, o.extra[0], o.extra[1])
}

// EdgesAt returns every one-tree edge incident to node.
func (o OneTree) EdgesAt(node int) []geometry.LineSegment {
	if node < 0 || node >= len(o.byNode) {
		return nil
	}
	return o.byNode[node]
}

// Degree returns the one-tree degree of node.
func (o OneTree) Degree(node int) int { return len(o.EdgesAt(node)) }

// Length returns the total truncated length, a lower bound on any tour
// consistent with the inputs it was built from.
func (o OneTree) Length() int { return o.length }

// IsTour reports whether every node has degree 2, in which case the
// one-tree is a Hamiltonian cycle and its length is optimal under the
// constraints it was built from.
func (o OneTree) IsTour() bool {
	for _, edges := range o.byNode {
		if len(edges) != 2 {
			return false
		}
	}
	return len(o.byNode) > 0
}
