package selection

import (
	"testing"

	nchess "github.com/corentings/chess/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricklet/movehighlight/internal/board"
	"github.com/cricklet/movehighlight/internal/highlight"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

func setup(t *testing.T, fen string) (*Controller, *highlight.Grid) {
	b, err := board.FromFen(fen, nchess.White)
	require.True(t, IsNil(err), err)

	grid := highlight.NewGrid()
	return NewController(b, grid, nil), grid
}

func TestSelectShowsMoves(t *testing.T) {
	c, grid := setup(t, "4k3/8/8/8/8/8/3p4/R3K3")

	moves, err := c.SelectSquare("e1")
	require.True(t, IsNil(err))

	// king on e1: d1, f1, d2 (capture), e2, f2
	assert.Equal(t, []MoveResult{
		Quiet(Coordinate{Row: 0, Col: 3}),
		Quiet(Coordinate{Row: 0, Col: 5}),
		Capture(Coordinate{Row: 1, Col: 3}),
		Quiet(Coordinate{Row: 1, Col: 4}),
		Quiet(Coordinate{Row: 1, Col: 5}),
	}, moves)
	assert.Equal(t, Coordinate{Row: 0, Col: 4}, c.Selected().Value())
	assert.Equal(t, Coordinate{Row: 0, Col: 4}, grid.Selected().Value())
	assert.Equal(t, 4, grid.Count(highlight.Reachable))
	assert.Equal(t, 1, grid.Count(highlight.Capturable))
}

func TestSelectReplacesPreviousHighlights(t *testing.T) {
	c, grid := setup(t, "4k3/8/8/8/8/8/8/R3K3")

	c.Select(Coordinate{Row: 0, Col: 0})
	assert.Equal(t, highlight.Reachable, grid.At(Coordinate{Row: 7, Col: 0}))

	c.Select(Coordinate{Row: 0, Col: 4})
	assert.Equal(t, highlight.None, grid.At(Coordinate{Row: 7, Col: 0}))
	assert.Equal(t, Coordinate{Row: 0, Col: 4}, grid.Selected().Value())
	assert.Equal(t, 5, len(grid.Tiles()))
}

func TestSelectEmptyClears(t *testing.T) {
	c, grid := setup(t, "4k3/8/8/8/8/8/8/R3K3")

	c.Select(Coordinate{Row: 0, Col: 0})
	moves := c.Select(Coordinate{Row: 4, Col: 4})

	assert.Empty(t, moves)
	assert.True(t, c.Selected().IsEmpty())
	assert.True(t, grid.Selected().IsEmpty())
	assert.Empty(t, grid.Tiles())

	assert.Empty(t, c.Select(Coordinate{Row: -1, Col: 9}))
}

func TestSelectTwiceToggles(t *testing.T) {
	c, grid := setup(t, "4k3/8/8/8/8/8/8/R3K3")

	assert.NotEmpty(t, c.Select(Coordinate{Row: 0, Col: 0}))
	assert.Empty(t, c.Select(Coordinate{Row: 0, Col: 0}))
	assert.True(t, c.Selected().IsEmpty())
	assert.Empty(t, grid.Tiles())
}

func TestSelectEnemyPiece(t *testing.T) {
	c, grid := setup(t, "4k3/4p3/8/8/8/8/8/R3K3")

	moves, err := c.SelectSquare("e7")
	require.True(t, IsNil(err))
	assert.Equal(t, []MoveResult{Quiet(Coordinate{Row: 5, Col: 4})}, moves)
	assert.Equal(t, highlight.Reachable, grid.At(Coordinate{Row: 5, Col: 4}))
}

func TestSelectSquareInvalid(t *testing.T) {
	c, _ := setup(t, "4k3/8/8/8/8/8/8/R3K3")
	_, err := c.SelectSquare("z9")
	assert.False(t, IsNil(err))
}

func TestRefreshAfterBoardChange(t *testing.T) {
	c, grid := setup(t, "4k3/8/8/8/8/8/8/R3K3")
	c.Select(Coordinate{Row: 0, Col: 0})

	require.True(t, IsNil(c.Board().Place(Coordinate{Row: 3, Col: 0}, board.EN)))
	moves := c.Refresh()

	assert.Equal(t, []MoveResult{
		Quiet(Coordinate{Row: 1, Col: 0}),
		Quiet(Coordinate{Row: 2, Col: 0}),
		Capture(Coordinate{Row: 3, Col: 0}),
		Quiet(Coordinate{Row: 0, Col: 1}),
		Quiet(Coordinate{Row: 0, Col: 2}),
		Quiet(Coordinate{Row: 0, Col: 3}),
	}, moves)
	assert.Equal(t, highlight.Capturable, grid.At(Coordinate{Row: 3, Col: 0}))

	c.Board().Remove(Coordinate{Row: 0, Col: 0})
	assert.Empty(t, c.Refresh())
	assert.True(t, c.Selected().IsEmpty())
}

func TestSetBoardDropsSelection(t *testing.T) {
	c, grid := setup(t, "4k3/8/8/8/8/8/8/R3K3")
	c.Select(Coordinate{Row: 0, Col: 0})

	c.SetBoard(board.NewBoard())
	assert.True(t, c.Selected().IsEmpty())
	assert.Empty(t, grid.Tiles())
	assert.Empty(t, c.Moves())
}
