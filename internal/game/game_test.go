package game

import "testing"

func TestCollectPelletIdempotent(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter

	if !g.PelletAt(1, 1) {
		t.Fatal("expected a pellet at (1,1) on a fresh board")
	}

	g.collectPellet(1, 1)
	score := g.Score()
	count := g.PelletsRemaining()

	if score != pelletPoints {
		t.Fatalf("first collection scored %d, want %d", score, pelletPoints)
	}
	if count != initPelletCount-1 {
		t.Fatalf("pellet count = %d, want %d", count, initPelletCount-1)
	}

	// Collecting the same empty cell again must change nothing.
	g.collectPellet(1, 1)
	if g.Score() != score {
		t.Errorf("score changed on empty cell: %d -> %d", score, g.Score())
	}
	if g.PelletsRemaining() != count {
		t.Errorf("pellet count changed on empty cell: %d -> %d", count, g.PelletsRemaining())
	}
}

func TestSuperPelletFrightensAllGhosts(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter
	g.combo = 3

	if !SuperPelletAt(3, 1) {
		t.Fatal("(3,1) should be a super pellet cell")
	}

	g.collectPellet(3, 1)

	for c := range g.ghosts {
		if got := g.ghosts[c].frightSteps; got != ghostFrightSteps {
			t.Errorf("ghost %v frightSteps = %d, want %d", GhostColor(c), got, ghostFrightSteps)
		}
	}
	if g.combo != 0 {
		t.Errorf("combo = %d, want 0 after super pellet", g.combo)
	}
	if g.Score() != superPelletPoints {
		t.Errorf("score = %d, want %d", g.Score(), superPelletPoints)
	}
}

func TestComboDoublesPerGhostInOnePass(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeChase

	// Two frightened ghosts on the player's cell.
	for _, c := range []GhostColor{GhostRed, GhostPink} {
		g.ghosts[c].pos = g.player
		g.ghosts[c].frightSteps = 5
	}

	g.checkCollisions()

	want := uint16(comboMultiplier + comboMultiplier*2)
	if g.Score() != want {
		t.Errorf("score = %d, want %d (200 then 400)", g.Score(), want)
	}
	if g.combo != 2 {
		t.Errorf("combo = %d, want 2", g.combo)
	}
	for _, c := range []GhostColor{GhostRed, GhostPink} {
		gh := &g.ghosts[c]
		if !gh.eaten || !gh.spawning {
			t.Errorf("ghost %v: eaten=%v spawning=%v, want both true", c, gh.eaten, gh.spawning)
		}
		if !gh.pos.IsEmpty() {
			t.Errorf("ghost %v should be parked at the sentinel mid-respawn", c)
		}
	}

	// Red respawns into pink's cell to stay inside the house.
	if g.ghosts[GhostRed].next.Row != ghostSpawnPos[GhostPink].Row ||
		g.ghosts[GhostRed].next.Col != ghostSpawnPos[GhostPink].Col {
		t.Errorf("red respawn target = (%d,%d), want pink's spawn",
			g.ghosts[GhostRed].next.Row, g.ghosts[GhostRed].next.Col)
	}
}

func TestDeathResetRestoresModeAboveAngerThreshold(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeChase

	g.ghosts[GhostRed].pos = g.player // not frightened: lethal

	g.checkCollisions()

	if g.Lives() != initLives-1 {
		t.Errorf("lives = %d, want %d", g.Lives(), initLives-1)
	}
	if !g.player.IsEmpty() {
		t.Error("player should be at the sentinel after death")
	}
	if g.Mode() != initMode {
		t.Errorf("mode = %v, want %v (pellets above anger threshold)", g.Mode(), initMode)
	}
	if !g.pauseOnUpdate {
		t.Error("death should arm the deferred pause")
	}
	if g.fruitSteps != 0 {
		t.Error("fruit should be cleared on death")
	}
}

func TestDeathResetKeepsModeBelowAngerThreshold(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeChase
	g.numPellets = angerThreshold1 - 5

	g.ghosts[GhostRed].pos = g.player
	g.checkCollisions()

	if g.Mode() != ModeChase {
		t.Errorf("mode = %v, want chase (ghosts stay angry)", g.Mode())
	}
}

func TestAngerThresholdForcesChaseAndSpeedup(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter
	g.numPellets = angerThreshold1 + 1

	g.collectPellet(1, 1)

	if g.Mode() != ModeChase {
		t.Errorf("mode = %v, want chase at the anger threshold", g.Mode())
	}
	if g.UpdatePeriod() != initUpdatePeriod-2 {
		t.Errorf("update period = %d, want %d", g.UpdatePeriod(), initUpdatePeriod-2)
	}
	if g.modeSteps != 0xff {
		t.Errorf("mode steps = %d, want 255", g.modeSteps)
	}
}

func TestUpdatePeriodFloorsAtOne(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter
	g.updatePeriod = 2
	g.numPellets = angerThreshold2 + 1

	g.collectPellet(1, 1)

	if g.UpdatePeriod() != 1 {
		t.Errorf("update period = %d, want floor of 1", g.UpdatePeriod())
	}
}

func TestFruitSpawnsAtThreshold(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter
	g.numPellets = fruitThreshold1 + 1

	g.collectPellet(1, 1)

	if _, ok := g.FruitPos(); !ok {
		t.Fatal("fruit should exist at the first fruit threshold")
	}
	if g.fruitSteps != fruitDuration {
		t.Errorf("fruit steps = %d, want %d", g.fruitSteps, fruitDuration)
	}
}

func TestFullClearTriggersLevelReset(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeScatter

	for row := int8(0); row < MazeRows; row++ {
		for col := int8(0); col < MazeCols; col++ {
			if g.PelletAt(row, col) {
				g.collectPellet(row, col)
			}
		}
	}

	if g.PelletsRemaining() != initPelletCount {
		t.Errorf("pellets = %d, want %d restored after level clear",
			g.PelletsRemaining(), initPelletCount)
	}
	if g.Level() != initLevel+1 {
		t.Errorf("level = %d, want %d", g.Level(), initLevel+1)
	}
	if g.Mode() != initMode {
		t.Errorf("mode = %v, want %v after level reset", g.Mode(), initMode)
	}
	if !g.player.IsEmpty() {
		t.Error("player should be awaiting respawn after level reset")
	}
	// Level 2 runs two ticks faster.
	if g.UpdatePeriod() != initUpdatePeriod-2 {
		t.Errorf("update period = %d, want %d", g.UpdatePeriod(), initUpdatePeriod-2)
	}
	// 240 plain pellets and 4 super pellets.
	wantScore := uint16(240*pelletPoints + 4*superPelletPoints)
	if g.Score() != wantScore {
		t.Errorf("score = %d, want %d (score survives the reset)", g.Score(), wantScore)
	}
}

func TestSaturatingScore(t *testing.T) {
	g := New(Options{Seed: 1})
	g.score = 0xfff0

	g.addScore(1000)

	if g.Score() != 0xffff {
		t.Errorf("score = %d, want saturation at 65535", g.Score())
	}
}

func TestInactiveGhostIgnored(t *testing.T) {
	g := New(Options{Seed: 1})
	g.mode = ModeChase
	g.SetGhostActive(GhostRed, false)

	// Even sitting on the player, an inactive ghost does nothing.
	g.ghosts[GhostRed].pos = g.player
	g.checkCollisions()

	if g.Lives() != initLives {
		t.Errorf("lives = %d, inactive ghost must not kill", g.Lives())
	}
}
