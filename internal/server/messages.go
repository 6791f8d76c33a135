package server

import (
	"fmt"

	"github.com/cricklet/movehighlight/internal/board"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
	"github.com/cricklet/movehighlight/internal/threats"
)

type UpdateToWeb struct {
	Session   string   `json:"session"`
	Fen       string   `json:"fen"`
	Selection string   `json:"selection"`
	Quiet     []string `json:"quiet"`
	Captures  []string `json:"captures"`
	Error     string   `json:"error,omitempty"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.Fen, ", ", u.Selection, ", ", u.Quiet, ", ", u.Captures)
}

type MessageFromWeb struct {
	Fen       *string `json:"fen"`
	Selection *string `json:"selection"`
	Deselect  *bool   `json:"deselect"`
}

func (m MessageFromWeb) String() string {
	if m.Fen != nil {
		return fmt.Sprint("MessageFromWeb Fen: ", *m.Fen)
	}
	if m.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *m.Selection)
	}
	if m.Deselect != nil {
		return fmt.Sprint("MessageFromWeb Deselect: ", *m.Deselect)
	}
	return "MessageFromWeb unknown"
}

type LogToWeb struct {
	Log string `json:"log"`
}

type AttackJson struct {
	From    string `json:"from"`
	Piece   string `json:"piece"`
	Capture bool   `json:"capture"`
}

type ThreatTileJson struct {
	Square    string       `json:"square"`
	Attackers []AttackJson `json:"attackers"`
}

type ThreatsJson struct {
	Fen   string           `json:"fen"`
	Side  string           `json:"side"`
	Tiles []ThreatTileJson `json:"tiles"`
}

func squareNames(b *board.Board, cs []Coordinate) []string {
	return MapSlice(cs, func(c Coordinate) string {
		return b.SquareName(c)
	})
}

func threatsJson(b *board.Board, m threats.Map) ThreatsJson {
	return ThreatsJson{
		Fen:  b.Fen(),
		Side: m.Side.String(),
		Tiles: MapSlice(m.Targets(), func(c Coordinate) ThreatTileJson {
			return ThreatTileJson{
				Square: b.SquareName(c),
				Attackers: MapSlice(m.Attackers(c), func(a threats.Attack) AttackJson {
					return AttackJson{
						From:    b.SquareName(a.Origin),
						Piece:   a.Kind.String(),
						Capture: a.MoveType.Captures(),
					}
				}),
			}
		}),
	}
}
