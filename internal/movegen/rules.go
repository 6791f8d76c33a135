package movegen

// Pawns step one row forward onto an empty tile and capture one row
// forward on either neighbouring column. The diagonal captures do not
// depend on the forward tile.
func pawnMoves(f func(MoveResult), oracle Oracle, origin Coordinate, side Side) {
	forwardRow := origin.Row + PawnForward[side]

	forward := Coordinate{forwardRow, origin.Col}
	if oracle.InBounds(forward) && !oracle.IsOccupied(forward) {
		f(Quiet(forward))
	}

	for _, col := range [2]int{origin.Col - 1, origin.Col + 1} {
		diagonal := Coordinate{forwardRow, col}
		if !oracle.InBounds(diagonal) || !oracle.IsOccupied(diagonal) {
			continue
		}
		if oracle.OccupantSide(diagonal) != side {
			f(Capture(diagonal))
		}
	}
}

func rookMoves(f func(MoveResult), oracle Oracle, origin Coordinate, side Side) {
	scanRays(f, oracle, origin, RookDirs, side)
}

func bishopMoves(f func(MoveResult), oracle Oracle, origin Coordinate, side Side) {
	scanRays(f, oracle, origin, BishopDirs, side)
}

func queenMoves(f func(MoveResult), oracle Oracle, origin Coordinate, side Side) {
	rookMoves(f, oracle, origin, side)
	bishopMoves(f, oracle, origin, side)
}

func knightMoves(f func(MoveResult), oracle Oracle, origin Coordinate, side Side) {
	probeOffsets(f, oracle, origin, KnightOffsets, side)
}

func kingMoves(f func(MoveResult), oracle Oracle, origin Coordinate, side Side) {
	probeOffsets(f, oracle, origin, KingOffsets, side)
}

type rule func(f func(MoveResult), oracle Oracle, origin Coordinate, side Side)

var rulesByKind = [6]rule{
	Pawn:   pawnMoves,
	Rook:   rookMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}
