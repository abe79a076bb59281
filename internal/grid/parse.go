package grid

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cory-johannsen/gridkit/internal/geom"
)

// DecodeFunc turns one input rune into a cell value. Returning ok == false
// leaves the cell absent.
type DecodeFunc[V any] func(r rune) (v V, ok bool, err error)

// Parse reads text from r into a new grid. The line index becomes Y and the
// rune index within the line becomes X, both zero-based from the top-left.
// Parsing stops at the first decode or read error.
//
// Precondition: decode must be non-nil.
// Postcondition: Returns the populated grid or a non-nil error naming the
// offending position.
func Parse[V any](r io.Reader, decode DecodeFunc[V]) (*SparseGrid[V], error) {
	g := New[V]()
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var y int64
	for s.Scan() {
		var x int64
		for _, c := range s.Text() {
			v, ok, err := decode(c)
			if err != nil {
				return nil, fmt.Errorf("decoding %q at %s: %w", c, geom.Point{X: x, Y: y}, err)
			}
			if ok {
				g.Insert(geom.Point{X: x, Y: y}, v)
			}
			x++
		}
		y++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return g, nil
}
