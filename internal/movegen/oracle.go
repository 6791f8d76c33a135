package movegen

// Oracle is read-only access to the occupancy of a board.
//
// IsOccupied is only called for coordinates where InBounds is true and
// OccupantSide only where IsOccupied is true.
type Oracle interface {
	InBounds(c Coordinate) bool
	IsOccupied(c Coordinate) bool
	OccupantSide(c Coordinate) Side
}
