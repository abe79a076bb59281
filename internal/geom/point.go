// Package geom provides the integer geometry shared by grid code: 2D and 3D
// points, compass directions, and a few integer helpers.
package geom

import (
	"errors"
	"fmt"
)

// ErrEmptyRectangle is returned when a wrap rectangle has no area.
var ErrEmptyRectangle = errors.New("rectangle has no area")

// Point is a 2D integer coordinate. Y grows downward, matching text input read
// top to bottom. Components are int64; overflow wraps like any Go int64.
type Point struct {
	X int64
	Y int64
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both components by n.
func (p Point) Scale(n int64) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y|.
//
// Postcondition: the result never exceeds the number of 4-way steps between a and b.
func ManhattanDistance(a, b Point) int64 {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// WrapInRectangle wraps p into the half-open rectangle [min, max) on each axis.
//
// Precondition: max.X > min.X and max.Y > min.Y.
// Postcondition: Returns a point inside the rectangle, or ErrEmptyRectangle.
func (p Point) WrapInRectangle(min, max Point) (Point, error) {
	w, h := max.X-min.X, max.Y-min.Y
	if w <= 0 || h <= 0 {
		return Point{}, fmt.Errorf("wrapping %s into %s..%s: %w", p, min, max, ErrEmptyRectangle)
	}
	return Point{
		X: min.X + Mod(p.X-min.X, w),
		Y: min.Y + Mod(p.Y-min.Y, h),
	}, nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Point3 is a 3D integer coordinate.
type Point3 struct {
	X int64
	Y int64
	Z int64
}

// Add returns the component-wise sum of p and o.
func (p Point3) Add(o Point3) Point3 {
	return Point3{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub returns the component-wise difference p - o.
func (p Point3) Sub(o Point3) Point3 {
	return Point3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// ManhattanDistance3 returns the 3D manhattan distance between a and b.
func ManhattanDistance3(a, b Point3) int64 {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y) + AbsDiff(a.Z, b.Z)
}

// Neighbors returns the six face-adjacent points in the order
// +X, -X, +Y, -Y, +Z, -Z.
func (p Point3) Neighbors() []Point3 {
	return []Point3{
		{X: p.X + 1, Y: p.Y, Z: p.Z},
		{X: p.X - 1, Y: p.Y, Z: p.Z},
		{X: p.X, Y: p.Y + 1, Z: p.Z},
		{X: p.X, Y: p.Y - 1, Z: p.Z},
		{X: p.X, Y: p.Y, Z: p.Z + 1},
		{X: p.X, Y: p.Y, Z: p.Z - 1},
	}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}
