package board

import (
	"strings"

	nchess "github.com/corentings/chess/v2"

	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

const StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func ColorFromString(s string) (nchess.Color, Error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return nchess.White, NilError
	case "black", "b":
		return nchess.Black, NilError
	default:
		return nchess.NoColor, Errorf("invalid color %q", s)
	}
}

// normalizeFen accepts a bare piece placement and fills in the remaining
// fields.
func normalizeFen(fen string) string {
	fen = strings.TrimSpace(fen)
	if fen == "" || fen == "startpos" {
		return StartingFen
	}
	if len(strings.Fields(fen)) == 1 {
		return fen + " w - - 0 1"
	}
	return fen
}

// FromFen builds a board from a FEN string. Pieces of the friendly color
// become Friendly, the others Enemy.
func FromFen(fen string, friendly nchess.Color) (*Board, Error) {
	option, err := nchess.FEN(normalizeFen(fen))
	if err != nil {
		return nil, Errorf("parse fen %q: %w", fen, err)
	}
	position := nchess.NewGame(option).Position().Board()

	b := &Board{Friendly: friendly}
	for index := range b.Pieces {
		c := CoordinateFromIndex(index)
		piece := position.Piece(b.squareFor(c))
		if piece == nchess.NoPiece {
			continue
		}

		kind := kindFromPieceType(piece.Type())
		if !kind.IsValid() {
			return nil, Errorf("unknown piece %v at %v", piece, b.SquareName(c))
		}
		side := Enemy
		if piece.Color() == friendly {
			side = Friendly
		}
		b.Pieces[index] = PieceFor(side, kind)
	}
	return b, NilError
}

func kindFromPieceType(t nchess.PieceType) PieceKind {
	switch t {
	case nchess.Pawn:
		return Pawn
	case nchess.Rook:
		return Rook
	case nchess.Knight:
		return Knight
	case nchess.Bishop:
		return Bishop
	case nchess.Queen:
		return Queen
	case nchess.King:
		return King
	}
	return InvalidPiece
}

func (b *Board) flipped() bool {
	return b.Friendly == nchess.Black
}

func (b *Board) squareFor(c Coordinate) nchess.Square {
	file, rank := c.Col, c.Row
	if b.flipped() {
		file, rank = 7-file, 7-rank
	}
	return nchess.NewSquare(nchess.File(file), nchess.Rank(rank))
}

// SquareName is the algebraic name of c, taking the orientation into
// account.
func (b *Board) SquareName(c Coordinate) string {
	if !c.InBounds() {
		return c.String()
	}
	return b.squareFor(c).String()
}

func (b *Board) ParseSquare(s string) (Coordinate, Error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Coordinate{}, Errorf("invalid square %q", s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Coordinate{}, Errorf("invalid square %q", s)
	}

	if b.flipped() {
		file, rank = 7-file, 7-rank
	}
	return Coordinate{Row: rank, Col: file}, NilError
}

// Fen writes the piece placement field only.
func (b *Board) Fen() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		numSpaces := 0
		for file := 0; file < BoardSize; file++ {
			c := Coordinate{Row: rank, Col: file}
			if b.flipped() {
				c = Coordinate{Row: 7 - rank, Col: 7 - file}
			}
			p := b.At(c)
			if p.IsEmpty() {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += string(rune('0' + numSpaces))
				numSpaces = 0
			}
			s += b.fenLetter(p)
		}
		if numSpaces > 0 {
			s += string(rune('0' + numSpaces))
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

// fenLetter is uppercase for white pieces.
func (b *Board) fenLetter(p Piece) string {
	letter := strings.ToLower(p.String())
	white := p.Side() == Friendly
	if b.flipped() {
		white = !white
	}
	if white {
		return strings.ToUpper(letter)
	}
	return letter
}
