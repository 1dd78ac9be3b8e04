package spatial

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/tspprune/geometry"
)

// DefaultBucketSize is the maximum number of elements stored in a leaf.
const DefaultBucketSize = 8

// Option customizes New.
type Option func(*config)

type config struct {
	bucketSize int
}

// WithBucketSize sets the leaf capacity. Panics if k < 1.
func WithBucketSize(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("spatial: WithBucketSize(%d)", k))
	}
	return func(c *config) {
		c.bucketSize = k
	}
}

// entry pairs an element with its cached bounding box.
type entry[E any] struct {
	box  geometry.BoundingBox
	elem E
}

// node is a leaf when leaf is set: a and b are then the inclusive element
// range [a..b]. Otherwise a and b are the node indices of the children.
type node struct {
	box  geometry.BoundingBox
	a, b int
	leaf bool
}

// Index is an immutable bounding-volume hierarchy over elements of type E.
type Index[E any] struct {
	data []entry[E]
	tree []node // root is the last node
}

// Boxed is implemented by elements that know their own bounding box.
type Boxed interface {
	Box() geometry.BoundingBox
}

// NewBoxed builds an index over elements that implement Boxed.
func NewBoxed[E Boxed](elements []E, opts ...Option) *Index[E] {
	return New(elements, func(e E) geometry.BoundingBox { return e.Box() }, opts...)
}

// New builds an index over elements, using box to extract each element's
// bounding box. The elements slice is not retained or modified.
func New[E any](elements []E, box func(E) geometry.BoundingBox, opts ...Option) *Index[E] {
	cfg := config{bucketSize: DefaultBucketSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	data := make([]entry[E], len(elements))
	for i, e := range elements {
		data[i] = entry[E]{box: box(e), elem: e}
	}
	idx := &Index[E]{data: data}
	if len(data) == 0 {
		return idx
	}
	if len(data) <= cfg.bucketSize {
		idx.tree = []node{makeLeaf(data, 0, len(data)-1)}
		return idx
	}
	idx.tree = build(data, cfg.bucketSize)
	return idx
}

// work is a half-open element range awaiting a split.
type work struct {
	sortX    bool
	from, to int
}

// pending is a finished subtree not yet placed in the tree slice.
type pending struct {
	level int
	n     node
}

func build[E any](data []entry[E], bucket int) []node {
	byX := func(a, b entry[E]) int {
		if c := cmp.Compare(a.box.Width(), b.box.Width()); c != 0 {
			return c
		}
		return cmp.Compare(a.box.MaxX, b.box.MaxX)
	}
	byY := func(a, b entry[E]) int {
		if c := cmp.Compare(a.box.Height(), b.box.Height()); c != 0 {
			return c
		}
		return cmp.Compare(a.box.MaxY, b.box.MaxY)
	}

	// Phase 1: breadth-first median splits down to leaves.
	queue := []work{{sortX: true, from: 0, to: len(data)}}
	var results []pending
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		if w.to-w.from <= bucket {
			results = append(results, pending{level: 1, n: makeLeaf(data, w.from, w.to-1)})
			continue
		}
		part := data[w.from:w.to]
		if w.sortX {
			slices.SortStableFunc(part, byX)
		} else {
			slices.SortStableFunc(part, byY)
		}
		mid := (w.from + w.to + 1) / 2
		queue = append(queue, work{sortX: !w.sortX, from: w.from, to: mid})
		queue = append(queue, work{sortX: !w.sortX, from: mid, to: w.to})
	}

	// Phase 2: pairwise bottom-up merge.
	tree := make([]node, 0, 2*len(results))
	for len(results) > 0 {
		if len(results) == 1 {
			tree = append(tree, results[0].n)
			break
		}
		if results[0].level < results[1].level {
			results = append(results[1:], results[0])
		}
		left, right := results[0], results[1]
		results = results[2:]
		l, r := len(tree), len(tree)+1
		tree = append(tree, left.n, right.n)
		results = append(results, pending{
			level: max(left.level, right.level) + 1,
			n:     node{box: left.n.box.Union(right.n.box), a: l, b: r},
		})
	}
	return tree
}

func makeLeaf[E any](data []entry[E], from, to int) node {
	b := data[from].box
	for i := from + 1; i <= to; i++ {
		b = b.Union(data[i].box)
	}
	return node{box: b, a: from, b: to, leaf: true}
}

// Len returns the number of indexed elements.
func (x *Index[E]) Len() int { return len(x.data) }

// Height returns the number of node levels on the longest root-to-leaf
// path; 0 for an empty index.
func (x *Index[E]) Height() int {
	if len(x.tree) == 0 {
		return 0
	}
	return x.height(len(x.tree) - 1)
}

func (x *Index[E]) height(i int) int {
	n := x.tree[i]
	if n.leaf {
		return 1
	}
	return 1 + max(x.height(n.a), x.height(n.b))
}

// Bounds returns the box of the whole index. ok is false when empty.
func (x *Index[E]) Bounds() (b geometry.BoundingBox, ok bool) {
	if len(x.tree) == 0 {
		return geometry.BoundingBox{}, false
	}
	return x.tree[len(x.tree)-1].box, true
}

// Visit calls fn for every element whose bounding box intersects box.
// Each such element is visited exactly once; order follows the tree.
func (x *Index[E]) Visit(box geometry.BoundingBox, fn func(E)) {
	if len(x.tree) == 0 {
		return
	}
	x.visit(box, fn, len(x.tree)-1)
}

func (x *Index[E]) visit(box geometry.BoundingBox, fn func(E), i int) {
	n := &x.tree[i]
	if !n.box.Intersects(box) {
		return
	}
	if !n.leaf {
		x.visit(box, fn, n.a)
		x.visit(box, fn, n.b)
		return
	}
	for j := n.a; j <= n.b; j++ {
		if x.data[j].box.Intersects(box) {
			fn(x.data[j].elem)
		}
	}
}

// Collect returns the elements whose bounding box intersects box.
func (x *Index[E]) Collect(box geometry.BoundingBox) []E {
	var out []E
	x.Visit(box, func(e E) { out = append(out, e) })
	return out
}

// Dump writes an indented rendering of the tree, one node per line.
func (x *Index[E]) Dump(w io.Writer) error {
	if len(x.tree) == 0 {
		_, err := io.WriteString(w, "empty\n")
		return err
	}
	return x.dump(w, len(x.tree)-1, 0)
}

func (x *Index[E]) dump(w io.Writer, i, depth int) error {
	n := x.tree[i]
	indent := strings.Repeat("\t", depth)
	if n.leaf {
		boxes := make([]string, 0, n.b-n.a+1)
		for j := n.a; j <= n.b; j++ {
			boxes = append(boxes, x.data[j].box.String())
		}
		_, err := fmt.Fprintf(w, "%sLeaf %d %v [%s]\n", indent, i, n.box, strings.Join(boxes, ", "))
		return err
	}
	if _, err := fmt.Fprintf(w, "%sNode %d %v\n", indent, i, n.box); err != nil {
		return err
	}
	if err := x.dump(w, n.a, depth+1); err != nil {
		return err
	}
	return x.dump(w, n.b, depth+1)
}
