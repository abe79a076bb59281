package geom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedDirection is returned when an operation defined only for
// cardinal directions is given a diagonal or unknown one.
var ErrUnsupportedDirection = errors.New("unsupported direction")

// Direction is one of the eight compass directions. The numeric order is the
// clockwise order starting at North.
type Direction int

// Compass directions.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var unitOffsets = [...]Point{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	East:      {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -1, Y: -1},
}

var directionNames = [...]string{
	North:     "north",
	NorthEast: "northeast",
	East:      "east",
	SouthEast: "southeast",
	South:     "south",
	SouthWest: "southwest",
	West:      "west",
	NorthWest: "northwest",
}

var directionAbbrevs = map[string]Direction{
	"n": North, "ne": NorthEast, "e": East, "se": SouthEast,
	"s": South, "sw": SouthWest, "w": West, "nw": NorthWest,
}

// Cardinal returns North, East, South, West in that order.
//
// Postcondition: Returns a fresh slice on every call.
func Cardinal() []Direction {
	return []Direction{North, East, South, West}
}

// WithDiagonals returns all eight directions clockwise from North.
//
// Postcondition: Returns a fresh slice on every call.
func WithDiagonals() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// IsValid reports whether d is one of the eight compass directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsCardinal reports whether d is North, East, South, or West.
func (d Direction) IsCardinal() bool {
	switch d {
	case North, East, South, West:
		return true
	default:
		return false
	}
}

// Offset returns the unit vector of d scaled by distance. A negative distance
// points the opposite way. Invalid directions yield the zero point.
func (d Direction) Offset(distance int64) Point {
	if !d.IsValid() {
		return Point{}
	}
	return unitOffsets[d].Scale(distance)
}

// RotateLeft turns d 90 degrees counter-clockwise.
//
// Precondition: d must be cardinal.
// Postcondition: Returns the rotated direction, or an error wrapping ErrUnsupportedDirection.
func (d Direction) RotateLeft() (Direction, error) {
	switch d {
	case North:
		return West, nil
	case West:
		return South, nil
	case South:
		return East, nil
	case East:
		return North, nil
	default:
		return d, fmt.Errorf("rotating %s left: %w", d, ErrUnsupportedDirection)
	}
}

// RotateRight turns d 90 degrees clockwise.
//
// Precondition: d must be cardinal.
// Postcondition: Returns the rotated direction, or an error wrapping ErrUnsupportedDirection.
func (d Direction) RotateRight() (Direction, error) {
	switch d {
	case North:
		return East, nil
	case East:
		return South, nil
	case South:
		return West, nil
	case West:
		return North, nil
	default:
		return d, fmt.Errorf("rotating %s right: %w", d, ErrUnsupportedDirection)
	}
}

// Opposite returns the direction pointing the other way. Invalid directions
// are returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Glyph returns the arrow used when rendering a cardinal direction, or '?'.
func (d Direction) Glyph() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return '?'
	}
}

// ParseGlyph is the inverse of Glyph.
func ParseGlyph(r rune) (Direction, error) {
	switch r {
	case '^':
		return North, nil
	case '>':
		return East, nil
	case 'v':
		return South, nil
	case '<':
		return West, nil
	default:
		return 0, fmt.Errorf("parsing glyph %q: %w", r, ErrUnsupportedDirection)
	}
}

// ParseDirection accepts a full name ("northeast") or compass abbreviation
// ("NE"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == key {
			return Direction(i), nil
		}
	}
	if d, ok := directionAbbrevs[key]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("parsing direction %q: %w", s, ErrUnsupportedDirection)
}
