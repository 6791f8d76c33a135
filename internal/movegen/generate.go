package movegen

// MaxMoves bounds the results of one call: a queen in the open reaches 27
// tiles, every other piece fewer.
const MaxMoves = 27

// EachMove calls f for every tile the piece at origin can move to, in
// scan order. Nothing is emitted for an out-of-bounds origin, an unknown
// kind or an unknown side.
func EachMove(f func(MoveResult), kind PieceKind, origin Coordinate, side Side, oracle Oracle) {
	if !kind.IsValid() || side > Enemy {
		return
	}
	if !oracle.InBounds(origin) {
		return
	}
	rulesByKind[kind](f, oracle, origin, side)
}

// GenerateMoves returns the quiet and capture moves of a piece of the given
// kind and side standing at origin. The result is empty, never nil, when
// there are none.
func GenerateMoves(kind PieceKind, origin Coordinate, side Side, oracle Oracle) []MoveResult {
	results := make([]MoveResult, 0, MaxMoves)
	EachMove(func(m MoveResult) {
		results = append(results, m)
	}, kind, origin, side, oracle)
	return results
}

// Split separates results into quiet and capture targets, keeping order.
func Split(results []MoveResult) (quiet []Coordinate, captures []Coordinate) {
	quiet, captures = []Coordinate{}, []Coordinate{}
	for _, r := range results {
		if r.MoveType.Captures() {
			captures = append(captures, r.Target)
		} else {
			quiet = append(quiet, r.Target)
		}
	}
	return quiet, captures
}
