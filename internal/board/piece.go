package board

import (
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

type Piece uint

const (
	XX Piece = iota
	FP
	FR
	FN
	FB
	FQ
	FK
	EP
	ER
	EN
	EB
	EQ
	EK
)

var PieceForSide [2][6]Piece = func() [2][6]Piece {
	result := [2][6]Piece{}
	for _, kind := range AllPieceKinds {
		result[Friendly][kind] = FP + Piece(kind)
		result[Enemy][kind] = EP + Piece(kind)
	}
	return result
}()

func PieceFor(side Side, kind PieceKind) Piece {
	if side > Enemy || !kind.IsValid() {
		return XX
	}
	return PieceForSide[side][kind]
}

func (p Piece) IsEmpty() bool {
	return p == XX || p > EK
}

func (p Piece) Kind() PieceKind {
	if p.IsEmpty() {
		return InvalidPiece
	}
	if p < EP {
		return PieceKind(p - FP)
	}
	return PieceKind(p - EP)
}

func (p Piece) Side() Side {
	if p >= EP {
		return Enemy
	}
	return Friendly
}

// String is uppercase for friendly pieces and lowercase for enemy pieces.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	return [13]string{
		" ",
		"P", "R", "N", "B", "Q", "K",
		"p", "r", "n", "b", "q", "k",
	}[p]
}

func (p Piece) Unicode() string {
	if p.IsEmpty() {
		return " "
	}
	return [6]string{
		"♟", "♜", "♞", "♝", "♛", "♚",
	}[p.Kind()]
}

func PieceFromString(c rune) (Piece, Error) {
	switch c {
	case 'P':
		return FP, NilError
	case 'R':
		return FR, NilError
	case 'N':
		return FN, NilError
	case 'B':
		return FB, NilError
	case 'Q':
		return FQ, NilError
	case 'K':
		return FK, NilError
	case 'p':
		return EP, NilError
	case 'r':
		return ER, NilError
	case 'n':
		return EN, NilError
	case 'b':
		return EB, NilError
	case 'q':
		return EQ, NilError
	case 'k':
		return EK, NilError
	default:
		return XX, Errorf("invalid piece %q", c)
	}
}
