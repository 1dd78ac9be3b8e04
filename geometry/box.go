package geometry

import "fmt"

// BoundingBox is an axis-aligned box with inclusive integer bounds.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Box returns the box [minX,maxX]×[minY,maxY].
func Box(minX, minY, maxX, maxY int) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// BoxOfPoints returns the smallest box containing every point.
// Panics on an empty slice.
func BoxOfPoints(points ...Point) BoundingBox {
	if len(points) == 0 {
		panic("geometry: BoxOfPoints of no points")
	}
	b := BoundingBox{MinX: points[0].x, MinY: points[0].y, MaxX: points[0].x, MaxY: points[0].y}
	for _, p := range points[1:] {
		b.MinX = min(b.MinX, p.x)
		b.MinY = min(b.MinY, p.y)
		b.MaxX = max(b.MaxX, p.x)
		b.MaxY = max(b.MaxY, p.y)
	}
	return b
}

// BoxOfBoxes returns the smallest box containing every box.
// Panics on an empty slice.
func BoxOfBoxes(boxes ...BoundingBox) BoundingBox {
	if len(boxes) == 0 {
		panic("geometry: BoxOfBoxes of no boxes")
	}
	b := boxes[0]
	for _, o := range boxes[1:] {
		b = b.Union(o)
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Width is MaxX-MinX.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX }

// Height is MaxY-MinY.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY }

// Contains reports whether p lies inside b, borders included.
func (b BoundingBox) Contains(p Point) bool {
	return b.MinX <= p.x && p.x <= b.MaxX && b.MinY <= p.y && p.y <= b.MaxY
}

// Intersects reports whether b and o share at least one point.
// Touching borders count as intersecting.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return !(o.MaxX < b.MinX || b.MaxX < o.MinX || o.MaxY < b.MinY || b.MaxY < o.MinY)
}

// Less orders boxes lexicographically by MinX, MinY, MaxX, MaxY.
func (b BoundingBox) Less(o BoundingBox) bool {
	switch {
	case b.MinX != o.MinX:
		return b.MinX < o.MinX
	case b.MinY != o.MinY:
		return b.MinY < o.MinY
	case b.MaxX != o.MaxX:
		return b.MaxX < o.MaxX
	default:
		return b.MaxY < o.MaxY
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("box(%d,%d - %d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
