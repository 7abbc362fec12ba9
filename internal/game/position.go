package game

// Direction is a movement direction on the maze grid.
// The index order (up, left, down, right) matters: it is the tie-break
// order during ghost planning and the index into the delta tables.
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
	DirStay
)

const numDirs = 4

// Row/column deltas, indexed by Direction.
var (
	dRow = [numDirs + 1]int8{-1, 0, 1, 0, 0}
	dCol = [numDirs + 1]int8{0, -1, 0, 1, 0}
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirStay:
		return "stay"
	default:
		return "unknown"
	}
}

// Reversed returns the opposite direction. DirStay reverses to itself.
func (d Direction) Reversed() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Position is the location and facing direction of an actor on the maze.
// The sentinel position (32, 32) means "not currently placed": it is used
// while the player or a ghost is mid-respawn, and it never collides with
// anything, itself included.
type Position struct {
	Row, Col int8
	Dir      Direction
}

// CollidesWith reports whether two positions occupy the same cell.
// Coordinates of 32 or more never collide; this keeps the sentinel inert.
func (p Position) CollidesWith(o Position) bool {
	if p.Row >= 32 || p.Col >= 32 || o.Row >= 32 || o.Col >= 32 {
		return false
	}
	return p.Row == o.Row && p.Col == o.Col
}

// IsEmpty reports whether the position is the sentinel.
func (p Position) IsEmpty() bool {
	return p.Row == emptyPos.Row && p.Col == emptyPos.Col
}

// Neighbor returns the coordinates one cell away in the given direction.
func (p Position) Neighbor(dir Direction) (int8, int8) {
	return p.Row + dRow[dir], p.Col + dCol[dir]
}

// Ahead returns the coordinates a number of cells ahead of the position,
// along its current facing direction.
func (p Position) Ahead(spaces int8) (int8, int8) {
	return p.Row + dRow[p.Dir]*spaces, p.Col + dCol[p.Dir]*spaces
}

// advanceFrom sets p to be one step ahead of another position, keeping
// that position's direction.
func (p *Position) advanceFrom(o Position) {
	p.Row, p.Col = o.Ahead(1)
	p.Dir = o.Dir
}

// distSq is the squared Euclidean distance between two cells.
func distSq(row1, col1, row2, col2 int8) int {
	dr := int(row2) - int(row1)
	dc := int(col2) - int(col1)
	return dr*dr + dc*dc
}
