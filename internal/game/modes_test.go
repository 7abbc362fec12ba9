package game

import "testing"

func TestModeFlipReloadsAndReversesGhosts(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter
	g.modeSteps = 0

	g.handleStepEvents()

	if g.Mode() != ModeChase {
		t.Fatalf("mode = %v, want chase after scatter expires", g.Mode())
	}
	// Reloaded to the chase duration, then decremented once this step.
	if g.modeSteps != modeDurations[ModeChase]-1 {
		t.Errorf("mode steps = %d, want %d", g.modeSteps, modeDurations[ModeChase]-1)
	}
	for c := range g.ghosts {
		if !g.ghosts[c].trapped() {
			t.Errorf("ghost %v should be trapped for the forced reversal", GhostColor(c))
		}
	}
}

func TestModeFlipWhilePausedUpdatesRememberedMode(t *testing.T) {
	g := New(Options{Seed: 1}) // starts paused, remembering scatter
	g.modeSteps = 0

	g.handleStepEvents()

	if !g.Paused() {
		t.Fatal("game should remain paused across a mode flip")
	}
	if g.lastUnpausedMode != ModeChase {
		t.Errorf("remembered mode = %v, want chase", g.lastUnpausedMode)
	}
}

func TestModeCountdownFreezesBelowAngerThreshold(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeChase
	g.modeSteps = 100
	g.numPellets = angerThreshold1 - 1
	levelSteps := g.levelSteps

	g.handleStepEvents()

	if g.modeSteps != 100 {
		t.Errorf("mode steps = %d, want frozen at 100", g.modeSteps)
	}
	// The long-game penalty countdown is not gated.
	if g.levelSteps != levelSteps-1 {
		t.Errorf("level steps = %d, want %d", g.levelSteps, levelSteps-1)
	}
}

func TestLevelPenaltySpeedsUpAndRearms(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter
	g.levelSteps = 0

	g.handleStepEvents()

	if g.UpdatePeriod() != initUpdatePeriod-2 {
		t.Errorf("update period = %d, want %d", g.UpdatePeriod(), initUpdatePeriod-2)
	}
	if g.levelSteps != levelPenaltyDuration-1 {
		t.Errorf("level steps = %d, want %d", g.levelSteps, levelPenaltyDuration-1)
	}
}

func TestPauseRestoresModeOnPlay(t *testing.T) {
	g := New(Options{Seed: 1})

	g.Play()
	if g.Mode() != ModeScatter {
		t.Fatalf("mode = %v, want scatter after first play", g.Mode())
	}

	g.mode = ModeChase
	g.Pause()
	if !g.Paused() {
		t.Fatal("pause did not pause")
	}

	g.Play()
	if g.Mode() != ModeChase {
		t.Errorf("mode = %v, want chase restored after unpause", g.Mode())
	}
}

func TestPlayRefusedWithNoLives(t *testing.T) {
	g := New(Options{Seed: 1})
	g.lives = 0

	g.Play()

	if !g.Paused() {
		t.Error("a game with no lives must not resume")
	}
}

func TestStepDoesNothingWhilePaused(t *testing.T) {
	g := New(Options{Seed: 1}) // paused

	for i := 0; i < 50; i++ {
		g.Step()
	}

	if g.Tick() != 0 {
		t.Errorf("tick = %d, want 0: the clock freezes while paused", g.Tick())
	}
}
