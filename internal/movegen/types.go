package movegen

import "fmt"

// BoardSize is the number of rows and columns of the board.
const BoardSize = 8

type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

func (c Coordinate) Add(d Dir) Coordinate {
	return Coordinate{c.Row + d.DRow, c.Col + d.DCol}
}

// String is algebraic ("e2", col is the file and row the rank) for
// in-bounds coordinates.
func (c Coordinate) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string(rune('a'+c.Col)) + string(rune('1'+c.Row))
}

// Side is the team a piece belongs to, relative to the player.
type Side uint

const (
	Friendly Side = iota
	Enemy
)

var _sideStrings = [2]string{
	"friendly", "enemy",
}

func (s Side) String() string {
	if s > Enemy {
		return "?"
	}
	return _sideStrings[s]
}

func (s Side) Other() Side {
	return 1 - s
}

func SideFromString(s string) (Side, bool) {
	switch s {
	case "friendly":
		return Friendly, true
	case "enemy":
		return Enemy, true
	}
	return Friendly, false
}

type PieceKind uint

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	InvalidPiece
)

var AllPieceKinds = [6]PieceKind{Pawn, Rook, Knight, Bishop, Queen, King}

func (p PieceKind) String() string {
	if p > InvalidPiece {
		p = InvalidPiece
	}
	return [7]string{
		"p", "r", "n", "b", "q", "k", "?",
	}[p]
}

func (p PieceKind) IsValid() bool {
	return p <= King
}

func PieceKindFromString(s string) PieceKind {
	switch s {
	case "p":
		return Pawn
	case "r":
		return Rook
	case "n":
		return Knight
	case "b":
		return Bishop
	case "q":
		return Queen
	case "k":
		return King
	default:
		return InvalidPiece
	}
}

type MoveType int

const (
	QuietMove MoveType = iota
	CaptureMove
)

func (t MoveType) Captures() bool {
	return t == CaptureMove
}

func (t MoveType) String() string {
	switch t {
	case QuietMove:
		return "QuietMove"
	case CaptureMove:
		return "CaptureMove"
	}
	return "Invalid"
}

// MoveResult is one reachable tile: empty (quiet) or held by the other side
// (capture).
type MoveResult struct {
	MoveType MoveType
	Target   Coordinate
}

func Quiet(c Coordinate) MoveResult {
	return MoveResult{QuietMove, c}
}

func Capture(c Coordinate) MoveResult {
	return MoveResult{CaptureMove, c}
}

func (m MoveResult) String() string {
	if m.MoveType.Captures() {
		return "x" + m.Target.String()
	}
	return m.Target.String()
}
