package game

import (
	"bytes"
	"testing"
)

func TestStepGatesOnUpdatePeriod(t *testing.T) {
	g := New(Options{Seed: 1})
	g.Play()

	// Ghosts hold their sentinel positions until the first due step.
	for i := 0; i < int(initUpdatePeriod)-1; i++ {
		g.Step()
		if !g.ghosts[GhostRed].pos.IsEmpty() {
			t.Fatalf("red moved on tick %d, before the first due step", g.Tick())
		}
	}

	g.Step()
	want := ghostSpawnPos[GhostRed]
	if g.ghosts[GhostRed].pos != want {
		t.Errorf("red at %+v after the first due step, want %+v",
			g.ghosts[GhostRed].pos, want)
	}
}

func TestPlanCommitsOneStepLater(t *testing.T) {
	g := New(Options{Seed: 1})
	g.Play()

	for i := 0; i < int(initUpdatePeriod); i++ {
		g.Step()
	}
	planned := g.ghosts[GhostRed].next

	for i := 0; i < int(initUpdatePeriod); i++ {
		g.Step()
	}
	if g.ghosts[GhostRed].pos != planned {
		t.Errorf("red at %+v, want the previously planned %+v",
			g.ghosts[GhostRed].pos, planned)
	}
}

func TestSameSeedSameInputsSameBytes(t *testing.T) {
	run := func() []byte {
		g := New(Options{Seed: 99})
		g.Play()
		for i := 0; i < 600; i++ {
			switch {
			case i%48 == 0:
				g.MovePlayer(DirLeft)
			case i%31 == 0:
				g.MovePlayer(DirUp)
			}
			g.Step()
		}
		return g.Encode()
	}

	if !bytes.Equal(run(), run()) {
		t.Error("identical seed and inputs diverged")
	}
}

func TestDeferredPauseAfterDeath(t *testing.T) {
	g := New(Options{Seed: 1})
	g.Play()
	g.pauseOnUpdate = true

	// The pause lands at the end of the next due step, not immediately.
	for i := 0; i < int(initUpdatePeriod)-1; i++ {
		g.Step()
		if g.Paused() {
			t.Fatalf("paused at tick %d, before the due step", g.Tick())
		}
	}
	g.Step()

	if !g.Paused() {
		t.Error("deferred pause never landed")
	}
	if g.pauseOnUpdate {
		t.Error("pauseOnUpdate should be cleared once consumed")
	}
}

func TestMovePlayerBlockedByWall(t *testing.T) {
	g := New(Options{Seed: 1})
	g.Play()

	// (24,13) below the spawn is a wall.
	g.MovePlayer(DirDown)

	if g.player.Row != 23 || g.player.Col != 13 {
		t.Errorf("player at (%d,%d), want unmoved (23,13)", g.player.Row, g.player.Col)
	}
	if g.player.Dir != DirDown {
		t.Errorf("facing = %v, want down even when blocked", g.player.Dir)
	}
}

func TestMovePlayerCollectsPellet(t *testing.T) {
	g := New(Options{Seed: 1})
	g.Play()

	g.MovePlayer(DirLeft)

	if g.player.Col != 12 {
		t.Fatalf("player col = %d, want 12", g.player.Col)
	}
	if g.Score() != pelletPoints {
		t.Errorf("score = %d, want %d", g.Score(), pelletPoints)
	}
	if g.PelletsRemaining() != initPelletCount-1 {
		t.Errorf("pellets = %d, want %d", g.PelletsRemaining(), initPelletCount-1)
	}
}

func TestMovePlayerIgnoredWhilePaused(t *testing.T) {
	g := New(Options{Seed: 1}) // paused

	g.MovePlayer(DirLeft)

	if g.player.Col != 13 {
		t.Errorf("player col = %d, paused moves must not land", g.player.Col)
	}
}

func TestPlayerRespawnsAfterDeath(t *testing.T) {
	g := New(Options{Seed: 1})
	g.Play()
	g.mode = ModeChase
	g.ghosts[GhostRed].pos = g.player
	g.ghosts[GhostRed].next = g.player
	g.ghosts[GhostRed].spawning = false
	g.checkCollisions()

	if !g.player.IsEmpty() {
		t.Fatal("player should be off-board right after death")
	}

	for i := 0; i < int(initUpdatePeriod); i++ {
		g.Step()
	}

	if g.player != playerSpawnPos {
		t.Errorf("player at %+v, want respawned at %+v", g.player, playerSpawnPos)
	}
}
