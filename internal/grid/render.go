package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/gridkit/internal/geom"
)

// Render writes g row by row from min.Y to max.Y, and within a row from min.X
// to max.X, both inclusive. Present cells are drawn with glyph and absent
// cells with empty. Every row ends in a newline. An empty grid writes nothing.
//
// Precondition: glyph must be non-nil.
// Postcondition: Returns the first write error, if any.
func (g *SparseGrid[V]) Render(w io.Writer, empty rune, glyph func(geom.Point, V) rune) error {
	if g.Len() == 0 {
		return nil
	}
	min, max, err := g.Dimensions()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			p := geom.Point{X: x, Y: y}
			r := empty
			if v, ok := g.cells[p]; ok {
				r = glyph(p, v)
			}
			if _, err := bw.WriteRune(r); err != nil {
				return fmt.Errorf("rendering row %d: %w", y, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("rendering row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// String renders g with each value drawn as the first rune of its fmt.Sprint
// form and absent cells as spaces.
func (g *SparseGrid[V]) String() string {
	var sb strings.Builder
	_ = g.Render(&sb, ' ', func(_ geom.Point, v V) rune {
		r, _ := utf8.DecodeRuneInString(fmt.Sprint(v))
		if r == utf8.RuneError {
			return ' '
		}
		return r
	})
	return sb.String()
}
