package geometry

import (
	"fmt"
	"math"
)

// DefaultDecimals is the fixed-point precision of segment lengths.
const DefaultDecimals = 2

// ApproximateAsInt scales value by 10^decimals and truncates toward zero.
// Panics unless 0 ≤ decimals ≤ 2.
func ApproximateAsInt(value float64, decimals int) int {
	var scale float64
	switch decimals {
	case 0:
		scale = 1
	case 1:
		scale = 10
	case 2:
		scale = 100
	default:
		panic(fmt.Sprintf("geometry: ApproximateAsInt: decimals=%d not in [0,2]", decimals))
	}
	return int(value * scale)
}

// ApproximateDistance is the truncated fixed-point Euclidean distance
// between a and b.
func ApproximateDistance(a, b Point, decimals int) int {
	dx := float64(b.x - a.x)
	dy := float64(b.y - a.y)
	return ApproximateAsInt(math.Sqrt(dx*dx+dy*dy), decimals)
}

// LineSegment is an ordered pair of points with a precomputed length.
// The length is an approximation, see ApproximateDistance.
type LineSegment struct {
	start  Point
	end    Point
	length int
}

// NewLineSegment returns the segment start→end with DefaultDecimals precision.
func NewLineSegment(start, end Point) LineSegment {
	return NewLineSegmentDecimals(start, end, DefaultDecimals)
}

// NewLineSegmentDecimals returns the segment start→end whose length keeps
// the given number of decimals (0, 1 or 2).
func NewLineSegmentDecimals(start, end Point, decimals int) LineSegment {
	return LineSegment{start: start, end: end, length: ApproximateDistance(start, end, decimals)}
}

// Start returns the first endpoint.
func (l LineSegment) Start() Point { return l.start }

// End returns the second endpoint.
func (l LineSegment) End() Point { return l.end }

// Length returns the truncated fixed-point length.
func (l LineSegment) Length() int { return l.length }

// StartID returns the 0-based node index of the start point.
func (l LineSegment) StartID() int { return l.start.id - 1 }

// EndID returns the 0-based node index of the end point.
func (l LineSegment) EndID() int { return l.end.id - 1 }

// Touches reports whether node is one of the segment's endpoints.
func (l LineSegment) Touches(node int) bool {
	return l.StartID() == node || l.EndID() == node
}

// OtherID returns the endpoint index that is not node.
// Panics if node is not an endpoint.
func (l LineSegment) OtherID(node int) int {
	switch node {
	case l.StartID():
		return l.EndID()
	case l.EndID():
		return l.StartID()
	}
	panic(fmt.Sprintf("geometry: node %d is not an endpoint of %v", node, l))
}

// Box returns the bounding box of the two endpoints.
func (l LineSegment) Box() BoundingBox {
	return BoxOfPoints(l.start, l.end)
}

// BoundsContains reports whether p lies in the segment's bounding box.
func (l LineSegment) BoundsContains(p Point) bool {
	return min(l.start.x, l.end.x) <= p.x && p.x <= max(l.start.x, l.end.x) &&
		min(l.start.y, l.end.y) <= p.y && p.y <= max(l.start.y, l.end.y)
}

// Equal reports whether both endpoints match; the length follows from them.
func (l LineSegment) Equal(o LineSegment) bool {
	return l.start == o.start && l.end == o.end
}

// Less orders segments by start point, then end point.
func (l LineSegment) Less(o LineSegment) bool {
	if l.start != o.start {
		return l.start.Less(o.start)
	}
	return l.end.Less(o.end)
}

func (l LineSegment) String() string {
	return "(" + l.start.String() + "-" + l.end.String() + ")"
}

// SumLengths returns the summed lengths of lines.
func SumLengths(lines []LineSegment) int {
	total := 0
	for _, l := range lines {
		total += l.length
	}
	return total
}
