package game

// collectPellet consumes whatever is edible at the given cell: the fruit if
// the player is standing on it, then the pellet bit. Threshold side effects
// (fruit spawns, ghost anger, level clear) key off the exact remaining
// count, so collection is the only place the count changes.
func (g *Game) collectPellet(row, col int8) {
	// Fruit first: its collection is independent of the pellet bit.
	if g.fruitSteps > 0 && g.player.CollidesWith(g.fruit) {
		g.fruitSteps = 0
		g.addScore(fruitPoints)
	}

	if !g.PelletAt(row, col) {
		return
	}

	clearBit(&g.pellets[row], col)
	if g.numPellets != 0 {
		g.numPellets--
	}

	super := SuperPelletAt(row, col)
	if super {
		g.frightenAllGhosts()
		g.addScore(superPelletPoints)
	} else {
		g.addScore(pelletPoints)
	}

	switch {
	case g.numPellets == fruitThreshold1 && g.fruitSteps == 0,
		g.numPellets == fruitThreshold2 && g.fruitSteps == 0:
		g.fruitSteps = fruitDuration
		g.emit(EventFruitSpawned, 0, fruitPoints)

	case g.numPellets == angerThreshold1 || g.numPellets == angerThreshold2:
		// The ghosts get angry: speed up and pin the mode to chase.
		period := int(g.updatePeriod) - 2
		if period < 1 {
			period = 1
		}
		g.setUpdatePeriod(uint8(period))
		g.setMode(ModeChase)
		g.modeSteps = 0xff

	case g.numPellets == 0:
		g.levelReset()
		g.incrementLevel()
	}
}

// frightenAllGhosts starts the frightened phase on every ghost and resets
// the eating combo. A one-step trap forces each ghost to reverse.
func (g *Game) frightenAllGhosts() {
	g.combo = 0
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.active {
			continue
		}
		gh.frightSteps = ghostFrightSteps
		if !gh.trapped() {
			gh.trappedSteps = 1
		}
	}
}

// reverseAllGhosts forces every ghost to reverse on its next plan, which is
// how a mode flip is made visible on the board.
func (g *Game) reverseAllGhosts() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.active {
			continue
		}
		if !gh.trapped() {
			gh.trappedSteps = 1
		}
	}
}
