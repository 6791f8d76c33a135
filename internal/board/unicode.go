package board

import (
	"strings"

	"github.com/acarl005/stripansi"
	"golang.org/x/term"

	. "github.com/cricklet/movehighlight/internal/movegen"
)

const _hintForeground = "\033[38;5;244m"
const _friendlyForeground = "\033[38;5;255m"
const _enemyForeground = "\033[38;5;232m"
const _lightBackground = "\033[48;5;244m"
const _darkBackground = "\033[48;5;243m"
const _quietBackground = "\033[48;5;107m"
const _captureBackground = "\033[48;5;167m"
const _resetColors = "\x1b[0m"

// String is one line per row, the friendly back rank last.
func (b *Board) String() string {
	rows := []string{}
	for row := BoardSize - 1; row >= 0; row-- {
		line := ""
		for col := 0; col < BoardSize; col++ {
			line += b.At(Coordinate{Row: row, Col: col}).String()
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

// Unicode draws the board with ANSI colors. Tiles in markers are tinted
// green for quiet moves and red for captures.
func (b *Board) Unicode(markers map[Coordinate]MoveType) string {
	result := "  "
	for col := 0; col < BoardSize; col++ {
		name := b.SquareName(Coordinate{Row: 0, Col: col})
		result += _hintForeground + " " + name[:1] + " " + _resetColors
	}
	result += "\n"

	for row := BoardSize - 1; row >= 0; row-- {
		name := b.SquareName(Coordinate{Row: row, Col: 0})
		result += _hintForeground + name[1:] + " " + _resetColors
		for col := 0; col < BoardSize; col++ {
			c := Coordinate{Row: row, Col: col}
			piece := b.At(c)

			marker, marked := markers[c]
			switch {
			case marked && marker.Captures():
				result += _captureBackground
			case marked:
				result += _quietBackground
			case (row+col)%2 == 0:
				result += _darkBackground
			default:
				result += _lightBackground
			}

			if piece.Side() == Friendly {
				result += _friendlyForeground
			} else {
				result += _enemyForeground
			}

			symbol := piece.Unicode()
			if piece.IsEmpty() && marked {
				symbol = "·"
			}
			result += " " + symbol + " " + _resetColors
		}
		result += "\n"
	}

	return result
}

// MarkersFor indexes move results by target tile.
func MarkersFor(results []MoveResult) map[Coordinate]MoveType {
	markers := make(map[Coordinate]MoveType, len(results))
	for _, r := range results {
		markers[r.Target] = r.MoveType
	}
	return markers
}

// ForTerminal strips ANSI escapes unless fd is a terminal.
func ForTerminal(s string, fd int) string {
	if term.IsTerminal(fd) {
		return s
	}
	return stripansi.Strip(s)
}
