package threats

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/cricklet/movehighlight/internal/board"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

// Attack is one piece able to move to a tile.
type Attack struct {
	Origin   Coordinate
	Kind     PieceKind
	MoveType MoveType
}

// Map lists, for every tile some piece of Side can move to, which pieces
// can do so.
type Map struct {
	Side  Side
	Tiles map[Coordinate][]Attack
}

func (m Map) Attackers(c Coordinate) []Attack {
	return m.Tiles[c]
}

// Targets lists the reachable tiles in board index order.
func (m Map) Targets() []Coordinate {
	targets := make([]Coordinate, 0, len(m.Tiles))
	for c := range m.Tiles {
		targets = append(targets, c)
	}
	sort.Slice(targets, func(i, j int) bool {
		return board.IndexFromCoordinate(targets[i]) < board.IndexFromCoordinate(targets[j])
	})
	return targets
}

// Captures lists the tiles holding a piece of the other side that can be
// taken, in board index order.
func (m Map) Captures() []Coordinate {
	return FilterSlice(m.Targets(), func(c Coordinate) bool {
		for _, a := range m.Tiles[c] {
			if a.MoveType.Captures() {
				return true
			}
		}
		return false
	})
}

type origin struct {
	coordinate Coordinate
	kind       PieceKind
}

// Compute generates moves for every piece of side, running at most limit
// generations at once. limit <= 0 uses one per CPU. The board must not be
// modified until Compute returns.
func Compute(ctx context.Context, b *board.Board, side Side, limit int) (Map, Error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	origins := []origin{}
	b.EachPiece(func(c Coordinate, p board.Piece) {
		if p.Side() == side {
			origins = append(origins, origin{c, p.Kind()})
		}
	})

	results := make([][]MoveResult, len(origins))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MinInt(limit, MaxInt(len(origins), 1)))
	for i := range origins {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = GenerateMoves(origins[i].kind, origins[i].coordinate, side, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Map{}, Errorf("threat map: %w", err)
	}

	m := Map{Side: side, Tiles: map[Coordinate][]Attack{}}
	for i, moves := range results {
		for _, move := range moves {
			m.Tiles[move.Target] = append(m.Tiles[move.Target], Attack{
				Origin:   origins[i].coordinate,
				Kind:     origins[i].kind,
				MoveType: move.MoveType,
			})
		}
	}
	return m, NilError
}
