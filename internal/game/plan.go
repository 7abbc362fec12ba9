package game

import "fmt"

// Ghost targeting and planning. Each due step every ghost picks the
// direction it will move on the following step; the one-step latency
// between planning and moving is part of the wire-visible behavior and
// must not be collapsed.

// chaseTarget returns the cell a ghost hunts while the game is in chase
// mode. Each color has its own rule.
func (g *Game) chaseTarget(color GhostColor) (int8, int8) {
	switch color {
	case GhostRed:
		// Red chases the player directly.
		return g.player.Row, g.player.Col

	case GhostPink:
		// Pink aims four cells ahead of the player's facing direction.
		return g.player.Ahead(4)

	case GhostCyan:
		// Cyan reflects red's position through the cell two ahead of the
		// player, flanking from the far side.
		pivotRow, pivotCol := g.player.Ahead(2)
		red := g.ghosts[GhostRed].pos
		return 2*pivotRow - red.Row, 2*pivotCol - red.Col

	case GhostOrange:
		// Orange chases the player from afar but retreats to its scatter
		// corner once it gets within eight cells.
		orange := g.ghosts[GhostOrange].pos
		if distSq(orange.Row, orange.Col, g.player.Row, g.player.Col) >= 64 {
			return g.player.Row, g.player.Col
		}
		target := g.ghosts[GhostOrange].scatterTarget
		return target.Row, target.Col
	}
	return emptyPos.Row, emptyPos.Col
}

// planAllGhosts picks every ghost's next move. Plans read only committed
// positions, never other ghosts' in-progress plans, so the order of the
// loop does not affect the outcome; the frightened random draws do depend
// on color order, which is why the loop is a plain ascending one.
func (g *Game) planAllGhosts() {
	for c := range g.ghosts {
		g.planGhost(GhostColor(c))
	}
}

// planGhost decides one ghost's next position and direction.
func (g *Game) planGhost(color GhostColor) {
	gh := &g.ghosts[color]

	// Nothing to plan while the ghost is inactive or mid-respawn.
	if !gh.active || gh.pos.IsEmpty() {
		return
	}

	// Dead-reckon one cell ahead along the current direction.
	gh.next.advanceFrom(gh.pos)

	// A trapped ghost just reverses; walls and targets are not consulted.
	if gh.trapped() {
		gh.next.Dir = gh.pos.Dir.Reversed()
		gh.trappedSteps--
		return
	}

	// Choose the target cell.
	var targetRow, targetCol int8
	switch {
	case gh.spawning &&
		!gh.pos.CollidesWith(ghostSpawnPos[GhostRed]) &&
		!gh.next.CollidesWith(ghostSpawnPos[GhostRed]):
		// Push spawning ghosts toward red's spawn cell so they leave
		// the house.
		targetRow, targetCol = ghostSpawnPos[GhostRed].Row, ghostSpawnPos[GhostRed].Col
	case g.lastMode() == ModeChase:
		targetRow, targetCol = g.chaseTarget(color)
	default:
		targetRow, targetCol = gh.scatterTarget.Row, gh.scatterTarget.Col
	}

	// Enumerate the moves out of the planned cell. Reversing is never
	// allowed here; only the trap mechanism above can turn a ghost around.
	var (
		moveValid  [numDirs]bool
		moveDistSq [numDirs]int
		numValid   int
	)
	for dir := Direction(0); dir < numDirs; dir++ {
		row, col := gh.next.Neighbor(dir)
		moveDistSq[dir] = distSq(row, col, targetRow, targetCol)

		valid := !WallAt(row, col)
		if gh.spawning {
			// Spawning ghosts may pass through the house and its exit.
			valid = valid || GhostHouseAt(row, col) ||
				(row == ghostHouseExitRow && col == ghostHouseExitCol)
		}
		if dir == gh.next.Dir.Reversed() {
			valid = false
		}

		moveValid[dir] = valid
		if valid {
			numValid++
		}
	}

	// The maze guarantees an exit from every reachable cell. Hitting zero
	// here means the static maze data is corrupt, which nothing at
	// runtime can fix.
	if numValid == 0 {
		panic(fmt.Sprintf("game: ghost %v has no valid moves at (%d,%d)",
			gh.color, gh.next.Row, gh.next.Col))
	}

	// A ghost that will still be frightened after this step wanders:
	// pick uniformly among the valid moves with the shared PRNG.
	if gh.frightSteps > 1 {
		pick := g.rng.intn(numValid)
		for dir := Direction(0); dir < numDirs; dir++ {
			if !moveValid[dir] {
				continue
			}
			if pick == 0 {
				gh.next.Dir = dir
				return
			}
			pick--
		}
	}

	// Otherwise head for the target: smallest squared distance wins, ties
	// broken by direction index order (up, left, down, right).
	bestDir := DirStay
	bestDist := int(^uint(0) >> 1)
	for dir := Direction(0); dir < numDirs; dir++ {
		if moveValid[dir] && moveDistSq[dir] < bestDist {
			bestDir = dir
			bestDist = moveDistSq[dir]
		}
	}
	gh.next.Dir = bestDir
}
