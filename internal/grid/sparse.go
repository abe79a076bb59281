// Package grid provides SparseGrid, a map from integer 2D coordinates to
// arbitrary values with bounding-box queries and wraparound navigation that
// follows the occupied cells rather than a fixed rectangle.
package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cory-johannsen/gridkit/internal/geom"
)

var (
	// ErrEmptyGrid is returned by queries that need at least one cell.
	ErrEmptyGrid = errors.New("grid is empty")
	// ErrNoCellInLine is returned by WrapAround when the row or column of the
	// given point holds no cells.
	ErrNoCellInLine = errors.New("no occupied cell in line")
)

// SparseGrid maps points to values of type V. The zero value is not usable;
// call New.
//
// A SparseGrid has a single owner and is not safe for concurrent mutation.
type SparseGrid[V any] struct {
	cells map[geom.Point]V
}

// New returns an empty grid.
func New[V any]() *SparseGrid[V] {
	return &SparseGrid[V]{cells: make(map[geom.Point]V)}
}

// Insert stores v at p, replacing any previous value.
func (g *SparseGrid[V]) Insert(p geom.Point, v V) {
	g.cells[p] = v
}

// Get returns the value at p and whether p is present.
func (g *SparseGrid[V]) Get(p geom.Point) (V, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Has reports whether p is present.
func (g *SparseGrid[V]) Has(p geom.Point) bool {
	_, ok := g.cells[p]
	return ok
}

// Len returns the number of present cells.
func (g *SparseGrid[V]) Len() int {
	return len(g.cells)
}

// Dimensions returns the component-wise minimum and maximum over all present
// points. The bounds are derived from the live key set on every call.
//
// Postcondition: Returns (min, max, nil) with every key inside [min, max] and
// each of the four extremes reached by some key, or ErrEmptyGrid.
func (g *SparseGrid[V]) Dimensions() (geom.Point, geom.Point, error) {
	if len(g.cells) == 0 {
		return geom.Point{}, geom.Point{}, ErrEmptyGrid
	}
	first := true
	var min, max geom.Point
	for p := range g.cells {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, nil
}

// Neighbor returns p moved distance steps toward d. It does not check bounds.
func (g *SparseGrid[V]) Neighbor(p geom.Point, d geom.Direction, distance int64) geom.Point {
	return p.Add(d.Offset(distance))
}

// Occupied reports whether any of the immediate neighbours of p in dirs is
// present.
func (g *SparseGrid[V]) Occupied(p geom.Point, dirs ...geom.Direction) bool {
	for _, d := range dirs {
		if g.Has(g.Neighbor(p, d, 1)) {
			return true
		}
	}
	return false
}

// WrapAround returns the cell on the far edge of p's row or column for a step
// leaving the occupied region toward d. Moving North lands on the present
// point with the same X and the largest Y; South on the smallest Y; East on
// the smallest X with the same Y; West on the largest X. Keys are unique, so
// the extreme on a line is unique and the result does not depend on map order.
//
// Precondition: d must be cardinal.
// Postcondition: Returns a present point sharing p's perpendicular coordinate,
// or an error wrapping geom.ErrUnsupportedDirection or ErrNoCellInLine.
func (g *SparseGrid[V]) WrapAround(p geom.Point, d geom.Direction) (geom.Point, error) {
	var (
		onLine func(geom.Point) bool
		better func(candidate, best geom.Point) bool
	)
	switch d {
	case geom.North:
		onLine = func(q geom.Point) bool { return q.X == p.X }
		better = func(c, b geom.Point) bool { return c.Y > b.Y }
	case geom.South:
		onLine = func(q geom.Point) bool { return q.X == p.X }
		better = func(c, b geom.Point) bool { return c.Y < b.Y }
	case geom.East:
		onLine = func(q geom.Point) bool { return q.Y == p.Y }
		better = func(c, b geom.Point) bool { return c.X < b.X }
	case geom.West:
		onLine = func(q geom.Point) bool { return q.Y == p.Y }
		better = func(c, b geom.Point) bool { return c.X > b.X }
	default:
		return p, fmt.Errorf("wrapping %s toward %s: %w", p, d, geom.ErrUnsupportedDirection)
	}

	found := false
	var best geom.Point
	for q := range g.cells {
		if !onLine(q) {
			continue
		}
		if !found || better(q, best) {
			best = q
			found = true
		}
	}
	if !found {
		return p, fmt.Errorf("wrapping %s toward %s: %w", p, d, ErrNoCellInLine)
	}
	return best, nil
}

// Points returns every present point in row-major order: by Y, then X.
func (g *SparseGrid[V]) Points() []geom.Point {
	out := make([]geom.Point, 0, len(g.cells))
	for p := range g.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Each calls fn for every cell in row-major order until fn returns false.
func (g *SparseGrid[V]) Each(fn func(geom.Point, V) bool) {
	for _, p := range g.Points() {
		if !fn(p, g.cells[p]) {
			return
		}
	}
}

// Clone returns a shallow copy of g. Values are copied by assignment.
func (g *SparseGrid[V]) Clone() *SparseGrid[V] {
	out := &SparseGrid[V]{cells: make(map[geom.Point]V, len(g.cells))}
	for p, v := range g.cells {
		out.cells[p] = v
	}
	return out
}
