package game

// Step advances the simulation by one raw tick and returns the events it
// produced. A simulation step happens only on ticks divisible by the
// update period: ghosts move to their previously planned cells, the player
// respawns if due, collisions and countdowns resolve, and finally every
// ghost plans its next move. Pausing freezes the clock entirely, so the
// tick/period alignment survives a pause.
func (g *Game) Step() []Event {
	if g.Paused() {
		return g.drainEvents()
	}

	g.tick++

	if g.updateReady() {
		// Click-to-move feeds the player one queued direction per step.
		if len(g.pending) > 0 {
			dir := g.pending[0]
			g.pending = g.pending[1:]
			g.MovePlayer(dir)
		}

		g.updateAllGhosts()
		g.tryRespawnPlayer()
		g.checkCollisions()
		g.handleStepEvents()

		// A death or level reset pauses after this update goes out, so
		// clients see the reset positions before the game stops.
		if g.pauseOnUpdate {
			g.pauseOnUpdate = false
			g.Pause()
		}
	}

	if g.updateReady() {
		g.planAllGhosts()
	}

	return g.drainEvents()
}

// updateReady reports whether the current tick is a simulation step.
func (g *Game) updateReady() bool {
	if g.Paused() {
		return false
	}
	period := g.updatePeriod
	if period == 0 {
		period = 1
	}
	return g.tick%uint32(period) == 0
}

// updateAllGhosts commits every ghost's planned position.
func (g *Game) updateAllGhosts() {
	for i := range g.ghosts {
		if !g.ghosts[i].active {
			continue
		}
		g.ghosts[i].update()
	}
}

// tryRespawnPlayer puts the player back on its spawn cell after a death,
// once there is a life to spend.
func (g *Game) tryRespawnPlayer() {
	if g.player.IsEmpty() && g.lives > 0 {
		g.player = playerSpawnPos
	}
}

// MovePlayer attempts to move the player one cell. Collisions are resolved
// first, so walking into a ghost is never free; the move itself is ignored
// when the game is paused or the destination is a wall. The facing
// direction updates even when the move is blocked.
func (g *Game) MovePlayer(dir Direction) {
	if dir >= numDirs {
		return
	}

	g.checkCollisions()

	if g.Paused() || g.pauseOnUpdate {
		return
	}

	nextRow, nextCol := g.player.Neighbor(dir)
	g.player.Dir = dir

	if WallAt(nextRow, nextCol) {
		return
	}

	g.player.Row = nextRow
	g.player.Col = nextCol
	g.collectPellet(nextRow, nextCol)
}
