package highlight

import (
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

// Renderer displays reachable tiles. It never feeds back into move
// generation.
type Renderer interface {
	Clear()
	Highlight(c Coordinate)
	HighlightTake(c Coordinate)
}

// Selectable renderers also mark the tile of the selected piece.
type Selectable interface {
	Select(c Coordinate)
	Deselect()
}

// Show replaces whatever r displays with results.
func Show(r Renderer, results []MoveResult) {
	r.Clear()
	for _, result := range results {
		if result.MoveType.Captures() {
			r.HighlightTake(result.Target)
		} else {
			r.Highlight(result.Target)
		}
	}
}

type Marker int

const (
	None Marker = iota
	Reachable
	Capturable
)

func (m Marker) String() string {
	switch m {
	case Reachable:
		return "reachable"
	case Capturable:
		return "capturable"
	}
	return "none"
}

// Grid keeps one marker per tile. Out-of-bounds tiles are ignored.
type Grid struct {
	markers  [BoardSize][BoardSize]Marker
	order    []Coordinate
	selected Optional[Coordinate]
}

var _ Renderer = (*Grid)(nil)
var _ Selectable = (*Grid)(nil)

func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) Clear() {
	g.markers = [BoardSize][BoardSize]Marker{}
	g.order = g.order[:0]
}

func (g *Grid) Highlight(c Coordinate) {
	g.mark(c, Reachable)
}

func (g *Grid) HighlightTake(c Coordinate) {
	g.mark(c, Capturable)
}

func (g *Grid) mark(c Coordinate, m Marker) {
	if !c.InBounds() {
		return
	}
	if g.markers[c.Row][c.Col] == None {
		g.order = append(g.order, c)
	}
	g.markers[c.Row][c.Col] = m
}

func (g *Grid) Select(c Coordinate) {
	g.selected = Some(c)
}

func (g *Grid) Deselect() {
	g.selected = Empty[Coordinate]()
}

func (g *Grid) Selected() Optional[Coordinate] {
	return g.selected
}

func (g *Grid) At(c Coordinate) Marker {
	if !c.InBounds() {
		return None
	}
	return g.markers[c.Row][c.Col]
}

// Tiles lists marked tiles in the order they were first marked.
func (g *Grid) Tiles() []Coordinate {
	return append([]Coordinate{}, g.order...)
}

func (g *Grid) Count(m Marker) int {
	count := 0
	for _, c := range g.order {
		if g.At(c) == m {
			count++
		}
	}
	return count
}
