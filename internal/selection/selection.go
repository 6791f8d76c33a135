package selection

import (
	"github.com/cricklet/movehighlight/internal/board"
	"github.com/cricklet/movehighlight/internal/highlight"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

// Controller tracks the selected piece and keeps a renderer showing its
// moves. It reads the board and never modifies it.
type Controller struct {
	Logger Logger

	board    *board.Board
	renderer highlight.Renderer
	selected Optional[Coordinate]
	moves    []MoveResult
}

func NewController(b *board.Board, r highlight.Renderer, logger Logger) *Controller {
	if logger == nil {
		logger = &SilentLogger
	}
	return &Controller{
		Logger:   logger,
		board:    b,
		renderer: r,
		moves:    []MoveResult{},
	}
}

func (c *Controller) Selected() Optional[Coordinate] {
	return c.selected
}

// Moves are the results last shown for the selected piece.
func (c *Controller) Moves() []MoveResult {
	return c.moves
}

func (c *Controller) Board() *board.Board {
	return c.board
}

// SetBoard swaps the board and drops the selection.
func (c *Controller) SetBoard(b *board.Board) {
	c.board = b
	c.Deselect()
}

// Select picks the piece at tile and shows its moves. Selecting an empty
// or out-of-bounds tile, or the tile that is already selected, clears the
// selection instead.
func (c *Controller) Select(tile Coordinate) []MoveResult {
	if c.selected.HasValue() && c.selected.Value() == tile {
		c.Deselect()
		return c.moves
	}

	piece := c.board.At(tile)
	if piece.IsEmpty() {
		c.Logger.Println("nothing to select at", c.board.SquareName(tile))
		c.Deselect()
		return c.moves
	}

	c.deselectRenderer()
	c.selected = Some(tile)
	if selectable, ok := c.renderer.(highlight.Selectable); ok {
		selectable.Select(tile)
	}

	c.moves = GenerateMoves(piece.Kind(), tile, piece.Side(), c.board)
	highlight.Show(c.renderer, c.moves)

	c.Logger.Printf("selected %v %v at %v: %v moves\n", piece.Side(), piece.Kind(), c.board.SquareName(tile), len(c.moves))
	return c.moves
}

// SelectSquare is Select for an algebraic square name.
func (c *Controller) SelectSquare(square string) ([]MoveResult, Error) {
	tile, err := c.board.ParseSquare(square)
	if !IsNil(err) {
		return nil, Errorf("failed to parse selection: %w", err)
	}
	return c.Select(tile), NilError
}

// Refresh regenerates the moves of the selected piece, e.g. after the
// board view changed underneath.
func (c *Controller) Refresh() []MoveResult {
	if c.selected.IsEmpty() {
		return c.moves
	}
	tile := c.selected.Value()
	c.selected = Empty[Coordinate]()
	return c.Select(tile)
}

func (c *Controller) Deselect() {
	c.deselectRenderer()
	c.selected = Empty[Coordinate]()
	c.moves = []MoveResult{}
	c.renderer.Clear()
}

func (c *Controller) deselectRenderer() {
	if selectable, ok := c.renderer.(highlight.Selectable); ok {
		selectable.Deselect()
	}
}
