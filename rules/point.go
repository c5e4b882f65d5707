package rules

import "fmt"

// Point is a grid cell, addressed in cells rather than pixels.
type Point struct {
	X int
	Y int
}

// Move returns the point one cell away in the given direction.
func (p Point) Move(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether the point lies inside a width x height grid.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
