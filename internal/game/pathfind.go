package game

import (
	"errors"
	"fmt"
)

// Click-to-move support: a breadth-first search over the maze converts an
// arbitrary target cell into the direction sequence that reaches it. This
// is a convenience for pointing devices, layered on top of MovePlayer; the
// simulation's invariants do not depend on it.

// ErrUnreachable is returned when no path exists to the requested cell.
var ErrUnreachable = errors.New("game: no path to target")

// PathTo returns the shortest direction sequence from the player's cell to
// the target cell, walls respected. The ghost house is unreachable for the
// player. The game state is not modified.
func (g *Game) PathTo(row, col int8) ([]Direction, error) {
	if WallAt(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, row, col)
	}

	start := g.player
	if start.IsEmpty() {
		return nil, fmt.Errorf("%w: player is not on the board", ErrUnreachable)
	}
	if start.Row == row && start.Col == col {
		return nil, nil
	}

	type cell struct{ row, col int8 }

	// cameFrom holds, per visited cell, the direction that entered it,
	// offset by one so zero still means unvisited.
	var cameFrom [MazeRows][MazeCols]uint8
	queue := []cell{{start.Row, start.Col}}
	cameFrom[start.Row][start.Col] = uint8(DirStay) + 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for dir := Direction(0); dir < numDirs; dir++ {
			nr := cur.row + dRow[dir]
			nc := cur.col + dCol[dir]
			if WallAt(nr, nc) || cameFrom[nr][nc] != 0 {
				continue
			}
			cameFrom[nr][nc] = uint8(dir) + 1

			if nr == row && nc == col {
				// Walk back to the start, collecting directions.
				var path []Direction
				for nr != start.Row || nc != start.Col {
					dir := Direction(cameFrom[nr][nc] - 1)
					path = append(path, dir)
					nr -= dRow[dir]
					nc -= dCol[dir]
				}
				// Reverse into start-to-target order.
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, nil
			}

			queue = append(queue, cell{nr, nc})
		}
	}

	return nil, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, row, col)
}

// SetPlayerTarget queues a walk to the target cell; Step consumes one
// queued move per simulation step. An unreachable target leaves the state,
// any queued walk included, untouched.
func (g *Game) SetPlayerTarget(row, col int8) error {
	path, err := g.PathTo(row, col)
	if err != nil {
		return err
	}
	g.pending = path
	return nil
}
