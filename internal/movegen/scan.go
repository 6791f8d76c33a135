package movegen

type Dir struct {
	DRow int
	DCol int
}

var (
	North = Dir{1, 0}
	South = Dir{-1, 0}
	East  = Dir{0, 1}
	West  = Dir{0, -1}

	NorthEast = Dir{1, 1}
	NorthWest = Dir{1, -1}
	SouthEast = Dir{-1, 1}
	SouthWest = Dir{-1, -1}
)

var RookDirs = []Dir{
	North,
	South,
	East,
	West,
}

var BishopDirs = []Dir{
	NorthEast,
	NorthWest,
	SouthEast,
	SouthWest,
}

var KnightOffsets = []Dir{
	{2, 1},
	{2, -1},
	{1, 2},
	{1, -2},
	{-1, 2},
	{-1, -2},
	{-2, 1},
	{-2, -1},
}

var KingOffsets = []Dir{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// PawnForward is the row step of a pawn for each side.
var PawnForward = [2]int{
	1,  // Friendly
	-1, // Enemy
}

// classify returns the result for moving onto an in-bounds tile, or false
// when the tile holds a piece of the moving side.
func classify(oracle Oracle, target Coordinate, side Side) (MoveResult, bool) {
	if !oracle.IsOccupied(target) {
		return Quiet(target), true
	}
	if oracle.OccupantSide(target) != side {
		return Capture(target), true
	}
	return MoveResult{}, false
}

// scanRay steps from origin along dir until the edge or the first
// occupied tile. Results are emitted nearest first.
func scanRay(f func(MoveResult), oracle Oracle, origin Coordinate, dir Dir, side Side) {
	for target := origin.Add(dir); oracle.InBounds(target); target = target.Add(dir) {
		result, ok := classify(oracle, target, side)
		if !ok {
			return
		}
		f(result)
		if result.MoveType.Captures() {
			return
		}
	}
}

func scanRays(f func(MoveResult), oracle Oracle, origin Coordinate, dirs []Dir, side Side) {
	for _, dir := range dirs {
		scanRay(f, oracle, origin, dir, side)
	}
}

// probeOffsets checks each origin+offset once, in table order.
func probeOffsets(f func(MoveResult), oracle Oracle, origin Coordinate, offsets []Dir, side Side) {
	for _, offset := range offsets {
		target := origin.Add(offset)
		if !oracle.InBounds(target) {
			continue
		}
		if result, ok := classify(oracle, target, side); ok {
			f(result)
		}
	}
}
