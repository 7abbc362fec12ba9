package game

// Bit-grid queries against the maze. Walls are immutable package data;
// pellets live on the Game because collection mutates them.

func getBit(row uint32, col int8) bool {
	return (row>>uint(col))&1 == 1
}

func clearBit(row *uint32, col int8) {
	*row &^= 1 << uint(col)
}

// InBounds reports whether a cell lies within the maze.
func InBounds(row, col int8) bool {
	return row >= 0 && row < MazeRows && col >= 0 && col < MazeCols
}

// WallAt reports whether a cell is a wall. Out-of-bounds cells count as
// walls, so movement fails closed at the maze edge.
func WallAt(row, col int8) bool {
	if !InBounds(row, col) {
		return true
	}
	return getBit(initWalls[row], col)
}

// GhostHouseAt reports whether a cell is inside the ghost house.
func GhostHouseAt(row, col int8) bool {
	return row >= 13 && row <= 14 && col >= 11 && col <= 15
}

// SuperPelletAt reports whether a cell is one of the four super pellet
// cells (the inner corners).
func SuperPelletAt(row, col int8) bool {
	return (row == 3 || row == 23) && (col == 1 || col == 26)
}

// PelletAt reports whether a pellet is present at a cell. Out-of-bounds
// cells never hold pellets.
func (g *Game) PelletAt(row, col int8) bool {
	if !InBounds(row, col) {
		return false
	}
	return getBit(g.pellets[row], col)
}
