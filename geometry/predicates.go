package geometry

// Orientation of an ordered point triple.
type Orientation int

const (
	// Colinear: the three points lie on one line.
	Colinear Orientation = iota
	// Clockwise turn p1→p2→p3.
	Clockwise
	// CounterClockwise turn p1→p2→p3.
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Colinear:
		return "colinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	}
	return "orientation(?)"
}

// Orient returns the orientation of the triangle (p1, p2, p3).
//
// It compares the slopes p1→p2 and p2→p3 in closed form,
//
//	(y2-y1)·(x3-x2) − (y3-y2)·(x2-x1)
//
// so vertical segments need no special case and nothing is divided.
func Orient(p1, p2, p3 Point) Orientation {
	v := (p2.y-p1.y)*(p3.x-p2.x) - (p3.y-p2.y)*(p2.x-p1.x)
	switch {
	case v == 0:
		return Colinear
	case v > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// Intersects reports whether the closed segments l1 and l2 share a point.
//
// General case: the endpoints of each segment lie on different sides of
// the other. Degenerate case: an endpoint is colinear with the other
// segment and inside its bounding box, hence on it. Shared endpoints and
// zero-length segments fall out of the degenerate case.
func Intersects(l1, l2 LineSegment) bool {
	o1 := Orient(l1.start, l1.end, l2.start)
	o2 := Orient(l1.start, l1.end, l2.end)
	o3 := Orient(l2.start, l2.end, l1.start)
	o4 := Orient(l2.start, l2.end, l1.end)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == Colinear && l1.BoundsContains(l2.start):
		return true
	case o2 == Colinear && l1.BoundsContains(l2.end):
		return true
	case o3 == Colinear && l2.BoundsContains(l1.start):
		return true
	case o4 == Colinear && l2.BoundsContains(l1.end):
		return true
	}
	return false
}

// DominatingInEuclideanTSP reports whether the pair x1=(s1,e1), y1=(s2,e2)
// dominates the pair x2=(s1,e2), y2=(s2,e1) in every optimal Euclidean tour:
//
//  1. the endpoints follow that swap pattern,
//  2. len(x1)+len(y1) ≤ len(x2)+len(y2) on truncated lengths,
//  3. x1 and y1 do not cross while x2 and y2 do.
//
// Condition 2 is checked explicitly: the truncation can break it for pairs
// where exact lengths would satisfy it.
func DominatingInEuclideanTSP(x1, y1, x2, y2 LineSegment) bool {
	if x1.start != x2.start || y1.start != y2.start || x1.end != y2.end || y1.end != x2.end {
		return false
	}
	if x1.length+y1.length > x2.length+y2.length {
		return false
	}
	return !Intersects(x1, y1) && Intersects(x2, y2)
}
