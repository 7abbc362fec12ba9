package game

// Mode returns the current mode, ModePaused included.
func (g *Game) Mode() Mode {
	return g.mode
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.mode == ModePaused
}

// lastMode returns the mode the game is in, or was in before pausing.
func (g *Game) lastMode() Mode {
	if g.mode != ModePaused {
		return g.mode
	}
	return g.lastUnpausedMode
}

// setMode switches the running mode, remembering it for unpausing.
func (g *Game) setMode(mode Mode) {
	prev := g.mode
	if prev != ModePaused && mode != ModePaused && prev != mode {
		g.emit(EventModeChanged, uint16(prev), uint16(mode))
	}
	if mode == ModePaused {
		g.mode = mode
		return
	}
	if g.mode == ModePaused {
		g.lastUnpausedMode = mode
		return
	}
	g.mode = mode
}

// Pause stops the clock. The current mode is remembered and restored by
// Play; pausing an already paused game is a no-op.
func (g *Game) Pause() {
	if g.Paused() {
		return
	}
	g.lastUnpausedMode = g.mode
	g.emit(EventModeChanged, uint16(g.mode), uint16(ModePaused))
	g.mode = ModePaused
}

// Play resumes a paused game. A game with no lives left cannot resume.
func (g *Game) Play() {
	if !g.Paused() || g.lives == 0 {
		return
	}
	g.emit(EventModeChanged, uint16(ModePaused), uint16(g.lastUnpausedMode))
	g.mode = g.lastUnpausedMode
}

// handleStepEvents runs the per-step countdowns: the scatter/chase flip,
// the long-game speed penalty, and the fruit timer. Called once per due
// step, after collisions are resolved.
func (g *Game) handleStepEvents() {
	if g.modeSteps == 0 {
		// Flip scatter and chase. When paused the flip applies to the
		// remembered mode, so unpausing lands in the right phase.
		switch g.lastMode() {
		case ModeChase:
			g.setMode(ModeScatter)
			g.modeSteps = modeDurations[ModeScatter]
		case ModeScatter:
			g.setMode(ModeChase)
			g.modeSteps = modeDurations[ModeChase]
		}

		// Signal the flip to the planners with a forced reversal.
		g.reverseAllGhosts()
	}

	if g.levelSteps == 0 {
		// Long-game penalty: speed the game up and rearm the countdown.
		period := int(g.updatePeriod) - 2
		if period < 1 {
			period = 1
		}
		g.setUpdatePeriod(uint8(period))
		g.levelSteps = levelPenaltyDuration
	}

	// Mode progression freezes once the board is nearly cleared; the anger
	// thresholds have already pinned the mode to chase by then.
	if g.numPellets >= angerThreshold1 && g.modeSteps != 0 {
		g.modeSteps--
	}

	if g.levelSteps != 0 {
		g.levelSteps--
	}

	if g.fruitSteps != 0 {
		g.fruitSteps--
	}
}
