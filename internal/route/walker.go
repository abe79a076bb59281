// Package route walks a board's route over its tile grid, wrapping around the
// occupied extent whenever a step would leave the map.
package route

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gridkit/internal/board"
	"github.com/cory-johannsen/gridkit/internal/geom"
)

// ErrStepLimit is returned when a walk exceeds the configured forward-step budget.
var ErrStepLimit = errors.New("step limit exceeded")

// Result is the final pose of a walk together with its trail.
type Result struct {
	// Position is where the walker stopped.
	Position geom.Point
	// Facing is the direction the walker faced at the end.
	Facing geom.Direction
	// Trail records the last facing seen at every visited point.
	Trail map[geom.Point]geom.Direction
	// Steps counts forward cells actually moved.
	Steps int64
}

// Password scores the final pose: 1000 times the one-based row, plus four
// times the one-based column, plus the facing score (east 0, south 1, west 2,
// north 3).
func (r Result) Password() int64 {
	var facing int64
	switch r.Facing {
	case geom.East:
		facing = 0
	case geom.South:
		facing = 1
	case geom.West:
		facing = 2
	case geom.North:
		facing = 3
	}
	return 1000*(r.Position.Y+1) + 4*(r.Position.X+1) + facing
}

// Walker follows routes on boards.
type Walker struct {
	logger   *zap.Logger
	maxSteps int64
}

// NewWalker creates a Walker. A nil logger disables logging; maxSteps <= 0
// means no limit on forward moves.
func NewWalker(logger *zap.Logger, maxSteps int64) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{logger: logger, maxSteps: maxSteps}
}

// Walk runs b.Route from b.Start facing b.Facing. A forward step onto a wall
// ends that move; a step off the map wraps to the far edge of the same row or
// column, and is blocked if the wrapped cell is a wall.
//
// Precondition: b must be a validated board.
// Postcondition: Returns the final pose, or an error if a turn or wrap hits a
// contract violation or the step limit is exceeded.
func (w *Walker) Walk(b *board.Board) (Result, error) {
	res := Result{
		Position: b.Start,
		Facing:   b.Facing,
		Trail:    map[geom.Point]geom.Direction{b.Start: b.Facing},
	}
	log := w.logger.With(zap.String("board", b.Name))

	for i, step := range b.Route {
		switch step.Turn {
		case 'L', 'R':
			var (
				next geom.Direction
				err  error
			)
			if step.Turn == 'L' {
				next, err = res.Facing.RotateLeft()
			} else {
				next, err = res.Facing.RotateRight()
			}
			if err != nil {
				return res, fmt.Errorf("step %d: %w", i, err)
			}
			log.Debug("turn",
				zap.Int("step", i),
				zap.String("from", res.Facing.String()),
				zap.String("to", next.String()),
			)
			res.Facing = next
			res.Trail[res.Position] = next
			continue
		case 0:
		default:
			return res, fmt.Errorf("step %d: unknown turn %q", i, step.Turn)
		}

		for n := int64(0); n < step.Forward; n++ {
			next, tile, err := w.advance(b, res.Position, res.Facing, log)
			if err != nil {
				return res, fmt.Errorf("step %d: %w", i, err)
			}
			if tile == board.Wall {
				log.Debug("blocked", zap.Int("step", i), zap.Stringer("at", res.Position))
				break
			}
			res.Position = next
			res.Trail[next] = res.Facing
			res.Steps++
			if w.maxSteps > 0 && res.Steps > w.maxSteps {
				return res, fmt.Errorf("after %d moves: %w", w.maxSteps, ErrStepLimit)
			}
		}
	}

	log.Info("walk complete",
		zap.Stringer("position", res.Position),
		zap.String("facing", res.Facing.String()),
		zap.Int64("steps", res.Steps),
	)
	return res, nil
}

// advance returns the cell one step ahead of p, wrapping when the neighbour is
// absent, together with that cell's tile.
func (w *Walker) advance(b *board.Board, p geom.Point, d geom.Direction, log *zap.Logger) (geom.Point, board.Tile, error) {
	next := b.Tiles.Neighbor(p, d, 1)
	if t, ok := b.Tiles.Get(next); ok {
		return next, t, nil
	}
	wrapped, err := b.Tiles.WrapAround(p, d)
	if err != nil {
		return p, board.Wall, err
	}
	log.Debug("wrap", zap.Stringer("from", p), zap.Stringer("to", wrapped), zap.String("facing", d.String()))
	t, _ := b.Tiles.Get(wrapped)
	return wrapped, t, nil
}
