// Package board describes a walkable tile map: a sparse grid of open and wall
// tiles plus the route and starting pose used to walk it.
package board

import (
	"fmt"

	"github.com/cory-johannsen/gridkit/internal/geom"
	"github.com/cory-johannsen/gridkit/internal/grid"
)

// Tile is the content of one board cell.
type Tile int

// Tile kinds.
const (
	Open Tile = iota
	Wall
)

// String returns the glyph used in board layouts.
func (t Tile) String() string {
	switch t {
	case Open:
		return "."
	case Wall:
		return "#"
	default:
		return "?"
	}
}

// ParseTile maps a legend value ("open" or "wall") to a Tile.
func ParseTile(s string) (Tile, error) {
	switch s {
	case "open":
		return Open, nil
	case "wall":
		return Wall, nil
	default:
		return 0, fmt.Errorf("unknown tile kind %q: must be one of [open, wall]", s)
	}
}

// Step is one route instruction: either move Forward cells, or Turn.
type Step struct {
	// Forward is the number of cells to advance. Zero for turns.
	Forward int64
	// Turn is 'L', 'R', or 0 for forward moves.
	Turn rune
}

// Board is a loaded, validated tile map.
type Board struct {
	// Name identifies the board in logs.
	Name string
	// Tiles holds every open or wall cell. Spaces in the layout are absent.
	Tiles *grid.SparseGrid[Tile]
	// Route is the sequence of moves to walk.
	Route []Step
	// Start is the initial position.
	Start geom.Point
	// Facing is the initial cardinal direction.
	Facing geom.Direction
}

// TopLeft returns the leftmost open tile on the topmost row that has one.
//
// Postcondition: Returns (point, true) if the board has any open tile.
func (b *Board) TopLeft() (geom.Point, bool) {
	var found geom.Point
	ok := false
	b.Tiles.Each(func(p geom.Point, t Tile) bool {
		if t == Open {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}
