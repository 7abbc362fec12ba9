package game

// checkCollisions resolves contact between the player and the ghosts.
// Ghosts are scanned in color order, red first; the first non-frightened
// contact kills the player and aborts the scan. Frightened ghosts eaten in
// the same pass score a doubling combo in scan order.
func (g *Game) checkCollisions() {
	var respawnFlag uint8
	respawns := 0

	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.active {
			continue
		}
		if !g.player.CollidesWith(gh.pos) {
			continue
		}
		if gh.eaten {
			continue
		}
		if gh.frightened() {
			respawnFlag |= 1 << uint(i)
			respawns++
		} else {
			g.deathReset()
			return
		}
	}

	if respawns == 0 {
		return
	}

	for i := range g.ghosts {
		if respawnFlag&(1<<uint(i)) == 0 {
			continue
		}
		gh := &g.ghosts[i]
		gh.respawn()

		points := uint32(comboMultiplier) << g.combo
		g.addScore(points)
		g.emit(EventGhostEaten, uint16(gh.color), uint16(min(points, 0xffff)))
		g.combo++
	}
}

// deathReset rebuilds the board after the player dies. Pellets are kept;
// positions, fruit and (conditionally) the mode are restored, and the game
// pauses once the update that revealed the death has gone out.
func (g *Game) deathReset() {
	g.pauseOnUpdate = true
	g.player = emptyPos
	g.decrementLives()

	// Angry ghosts stay angry: the mode only snaps back to its initial
	// value while the board still has pellets above the anger threshold.
	if g.numPellets > angerThreshold1 {
		g.setMode(initMode)
		g.modeSteps = modeDurations[initMode]
	}

	g.fruitSteps = 0
	g.resetAllGhosts()
}

// levelReset rebuilds the board, pellets included, after a level is
// cleared. The score carries over.
func (g *Game) levelReset() {
	g.pauseOnUpdate = true
	g.player = emptyPos

	g.setMode(initMode)
	g.modeSteps = modeDurations[initMode]
	g.levelSteps = levelDuration

	g.fruitSteps = 0
	g.resetAllGhosts()
	g.resetPellets()
}

// resetAllGhosts sends every ghost back to its spawn state and clears the
// combo. With no lives left, the ghosts turn to face the player; orange
// insists on eye contact.
func (g *Game) resetAllGhosts() {
	g.combo = 0
	for i := range g.ghosts {
		g.ghosts[i].reset()
	}

	if g.lives == 0 {
		for i := range g.ghosts {
			gh := &g.ghosts[i]
			if gh.color == GhostOrange {
				gh.next.Dir = DirLeft
			} else {
				gh.next.Dir = DirStay
			}
		}
	}
}
