package route

import (
	"io"

	"github.com/cory-johannsen/gridkit/internal/board"
	"github.com/cory-johannsen/gridkit/internal/geom"
)

// RenderTrail draws b with every trail point replaced by the arrow of the
// facing recorded there.
func RenderTrail(w io.Writer, b *board.Board, res Result, empty rune) error {
	return b.Tiles.Render(w, empty, func(p geom.Point, t board.Tile) rune {
		if d, ok := res.Trail[p]; ok {
			return d.Glyph()
		}
		return rune(t.String()[0])
	})
}
