package route

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/gridkit/internal/board"
	"github.com/cory-johannsen/gridkit/internal/geom"
)

const monkeyMapYAML = `
board:
  name: monkey-map
  legend: {".": open, "#": wall}
  layout:
    - "        ...#"
    - "        .#.."
    - "        #..."
    - "        ...."
    - "...#.......#"
    - "........#..."
    - "..#....#...."
    - "..........#."
    - "        ...#...."
    - "        .....#.."
    - "        .#......"
    - "        ......#."
  route: "10R5L5R10L4R5L5"
`

func loadBoard(t *testing.T, doc string) *board.Board {
	t.Helper()
	b, err := board.LoadBoardFromBytes([]byte(doc))
	require.NoError(t, err)
	return b
}

func line(layout, route, facing string) string {
	return "board: {name: t, legend: {'.': open, '#': wall}, layout: ['" + layout + "'], route: '" + route + "', facing: " + facing + "}"
}

func TestWalk_MonkeyMap(t *testing.T) {
	b := loadBoard(t, monkeyMapYAML)
	res, err := NewWalker(nil, 0).Walk(b)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 7, Y: 5}, res.Position)
	assert.Equal(t, geom.East, res.Facing)
	assert.Equal(t, int64(6032), res.Password())
}

func TestWalk_BlockedByWall(t *testing.T) {
	res, err := NewWalker(nil, 0).Walk(loadBoard(t, line("..#", "5", "east")))
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 0}, res.Position)
	assert.Equal(t, int64(1), res.Steps)
	assert.Equal(t, int64(1008), res.Password())
}

func TestWalk_WrapsAround(t *testing.T) {
	res, err := NewWalker(nil, 0).Walk(loadBoard(t, line("...", "4", "east")))
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 0}, res.Position)
	assert.Equal(t, int64(4), res.Steps)
}

func TestWalk_WrapBlockedByWall(t *testing.T) {
	res, err := NewWalker(nil, 0).Walk(loadBoard(t, line("#..", "3", "east")))
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 2, Y: 0}, res.Position)
	assert.Equal(t, int64(1), res.Steps)
}

func TestWalk_Turns(t *testing.T) {
	res, err := NewWalker(nil, 0).Walk(loadBoard(t, line("...", "LLR", "east")))
	require.NoError(t, err)
	assert.Equal(t, geom.North, res.Facing)
	assert.Equal(t, geom.North, res.Trail[geom.Point{X: 0, Y: 0}])
	assert.Equal(t, int64(1007), res.Password())
}

func TestWalk_StepLimit(t *testing.T) {
	_, err := NewWalker(nil, 2).Walk(loadBoard(t, line("...", "4", "east")))
	assert.ErrorIs(t, err, ErrStepLimit)
}

func TestWalk_RejectsDiagonalFacing(t *testing.T) {
	b := loadBoard(t, line("...", "R", "east"))
	b.Facing = geom.NorthEast
	_, err := NewWalker(nil, 0).Walk(b)
	assert.ErrorIs(t, err, geom.ErrUnsupportedDirection)
}

func TestWalk_LogsWraps(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := NewWalker(zap.New(core), 0).Walk(loadBoard(t, line("...", "3", "east")))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("wrap").Len())
	assert.Equal(t, 1, logs.FilterMessage("walk complete").Len())
}

func TestRenderTrail(t *testing.T) {
	b := loadBoard(t, line("...#", "2", "east"))
	res, err := NewWalker(nil, 0).Walk(b)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, RenderTrail(&sb, b, res, ' '))
	assert.Equal(t, ">>>#\n", sb.String())
}
