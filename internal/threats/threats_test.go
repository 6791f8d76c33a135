package threats

import (
	"context"
	"testing"

	nchess "github.com/corentings/chess/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricklet/movehighlight/internal/board"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
)

func TestComputeSmallPosition(t *testing.T) {
	b, err := board.FromFen("4k3/8/8/8/8/8/1p6/R3K3", nchess.White)
	require.True(t, IsNil(err), err)

	m, err := Compute(context.Background(), b, Friendly, 2)
	require.True(t, IsNil(err), err)

	assert.Equal(t, Friendly, m.Side)

	// d1 is reached by both the rook and the king
	d1 := Coordinate{Row: 0, Col: 3}
	assert.Equal(t, []Attack{
		{Origin: Coordinate{Row: 0, Col: 0}, Kind: Rook, MoveType: QuietMove},
		{Origin: Coordinate{Row: 0, Col: 4}, Kind: King, MoveType: QuietMove},
	}, m.Attackers(d1), spew.Sdump(m.Attackers(d1)))

	assert.Empty(t, m.Captures())

	targets := m.Targets()
	for i := 1; i < len(targets); i++ {
		assert.Less(t, board.IndexFromCoordinate(targets[i-1]), board.IndexFromCoordinate(targets[i]))
	}
}

func TestComputeEnemyCaptures(t *testing.T) {
	b, err := board.FromFen("4k3/8/8/8/8/8/1p6/R3K3", nchess.White)
	require.True(t, IsNil(err), err)

	m, err := Compute(context.Background(), b, Enemy, 0)
	require.True(t, IsNil(err), err)

	// the enemy pawn on b2 takes the rook on a1
	assert.Equal(t, []Coordinate{{Row: 0, Col: 0}}, m.Captures())
	assert.Equal(t, []Attack{{Origin: Coordinate{Row: 1, Col: 1}, Kind: Pawn, MoveType: CaptureMove}}, m.Attackers(Coordinate{Row: 0, Col: 0}))
	assert.Equal(t, []Attack{{Origin: Coordinate{Row: 1, Col: 1}, Kind: Pawn, MoveType: QuietMove}}, m.Attackers(Coordinate{Row: 0, Col: 1}))
}

func TestComputeMatchesSequential(t *testing.T) {
	b, err := board.FromFen(board.StartingFen, nchess.White)
	require.True(t, IsNil(err), err)

	for _, side := range []Side{Friendly, Enemy} {
		m, err := Compute(context.Background(), b, side, 4)
		require.True(t, IsNil(err), err)

		expected := map[Coordinate]int{}
		b.EachPiece(func(c Coordinate, p board.Piece) {
			if p.Side() != side {
				return
			}
			for _, move := range b.MovesAt(c) {
				expected[move.Target]++
			}
		})

		assert.Len(t, m.Tiles, len(expected))
		for target, count := range expected {
			assert.Len(t, m.Attackers(target), count, target.String())
		}
	}
}

func TestComputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, err := board.FromFen(board.StartingFen, nchess.White)
	require.True(t, IsNil(err), err)

	_, err = Compute(ctx, b, Friendly, 1)
	assert.False(t, IsNil(err))
}
