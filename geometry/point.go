package geometry

import (
	"fmt"
	"strconv"
)

// NoID is the identifier carried by points created without one.
const NoID = -1

// Point is an immutable integer location with an optional identifier.
type Point struct {
	id int
	x  int
	y  int
}

// NewPoint returns a point with the given 1-based identifier.
// Panics if id is negative: identifiers come from input numbering and a
// negative one is a programmer error.
func NewPoint(id, x, y int) Point {
	if id < 0 {
		panic(fmt.Sprintf("geometry: NewPoint(%d): negative identifier", id))
	}
	return Point{id: id, x: x, y: y}
}

// At returns a point with no identifier (NoID).
func At(x, y int) Point {
	return Point{id: NoID, x: x, y: y}
}

// ID returns the identifier, or NoID.
func (p Point) ID() int { return p.id }

// HasID reports whether the point carries an identifier.
func (p Point) HasID() bool { return p.id != NoID }

// X returns the x coordinate.
func (p Point) X() int { return p.x }

// Y returns the y coordinate.
func (p Point) Y() int { return p.y }

// Less orders points by identifier, then x, then y.
func (p Point) Less(q Point) bool {
	if p.id != q.id {
		return p.id < q.id
	}
	if p.x != q.x {
		return p.x < q.x
	}
	return p.y < q.y
}

// String renders "id:<x,y>", or "<x,y>" for points without identifier.
func (p Point) String() string {
	s := "<" + strconv.Itoa(p.x) + "," + strconv.Itoa(p.y) + ">"
	if p.id != NoID {
		return strconv.Itoa(p.id) + ":" + s
	}
	return s
}
