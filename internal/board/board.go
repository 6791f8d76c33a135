package board

import (
	nchess "github.com/corentings/chess/v2"

	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

// Board is an 8x8 grid of pieces, indexed row*8+col. Row 0 is the
// friendly back rank and friendly pawns advance towards row 7.
//
// Friendly is the chess color that plays the friendly side. When it is
// black the grid is rotated so that a1 maps to row 7, col 7.
type Board struct {
	Pieces   [64]Piece
	Friendly nchess.Color
}

var _ Oracle = (*Board)(nil)

func NewBoard() *Board {
	return &Board{Friendly: nchess.White}
}

func IndexFromCoordinate(c Coordinate) int {
	return c.Row*BoardSize + c.Col
}

func CoordinateFromIndex(index int) Coordinate {
	return Coordinate{Row: index >> 3, Col: index & 0b111}
}

func (b *Board) InBounds(c Coordinate) bool {
	return c.InBounds()
}

func (b *Board) IsOccupied(c Coordinate) bool {
	return !b.Pieces[IndexFromCoordinate(c)].IsEmpty()
}

func (b *Board) OccupantSide(c Coordinate) Side {
	return b.Pieces[IndexFromCoordinate(c)].Side()
}

// At returns XX for empty or out-of-bounds tiles.
func (b *Board) At(c Coordinate) Piece {
	if !c.InBounds() {
		return XX
	}
	return b.Pieces[IndexFromCoordinate(c)]
}

func (b *Board) Place(c Coordinate, p Piece) Error {
	if !c.InBounds() {
		return Errorf("cannot place %v out of bounds at %v", p, c)
	}
	b.Pieces[IndexFromCoordinate(c)] = p
	return NilError
}

func (b *Board) Remove(c Coordinate) {
	if c.InBounds() {
		b.Pieces[IndexFromCoordinate(c)] = XX
	}
}

// EachPiece calls f for every occupied tile in index order.
func (b *Board) EachPiece(f func(c Coordinate, p Piece)) {
	for index, p := range b.Pieces {
		if !p.IsEmpty() {
			f(CoordinateFromIndex(index), p)
		}
	}
}

// MovesAt generates the moves of whichever piece stands at c. Empty and
// out-of-bounds tiles have none.
func (b *Board) MovesAt(c Coordinate) []MoveResult {
	p := b.At(c)
	if p.IsEmpty() {
		return []MoveResult{}
	}
	return GenerateMoves(p.Kind(), c, p.Side(), b)
}
