// Package spatial provides an immutable, bulk-loaded bounding-volume
// hierarchy over arbitrary elements that expose an integer bounding box.
//
// Construction (New)
//
//   - Elements are packed into leaves of at most BucketSize entries by
//     recursively splitting the current range at its median, sorting
//     alternately by (width, max-x) and (height, max-y). This is an STR-like
//     packing: ranges are processed breadth-first, so sibling leaves cover
//     comparable slices of the plane.
//   - Leaves are then merged pairwise, bottom-up, into binary internal
//     nodes whose box is the union of their children. When the queue front
//     is of a lower level than its neighbour it is rotated to the back, so
//     shallow subtrees end up on the right side of the tree.
//   - Nodes live in one slice and refer to each other by index; leaves
//     refer to a contiguous range of the (reordered) element slice. Nothing
//     is mutated after New returns.
//
// Queries
//
//   - Visit(box, fn) descends from the root, pruning subtrees whose box
//     misses the query, and calls fn once for every element whose own box
//     intersects the query box, and for no other element.
//   - Collect(box) gathers the same elements into a slice.
//
// There are no insertions or deletions; a changed element set requires a
// new Index.
//
// Complexity
//
//   - New: O(n log² n) time (one sort per level), O(n) space.
//   - Visit: O(log n + k·BucketSize) for k reported leaves on typical data.
//
// Concurrency
//
//   - An Index is read-only once built and safe for concurrent queries.
package spatial
