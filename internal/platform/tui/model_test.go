package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// playerCell reads the player's cell out of the binary snapshot: the two
// packed position bytes carry the coordinate in their low six bits.
func playerCell(m Model) (int8, int8) {
	snap := m.game.Encode()
	return int8(snap[22] & 0x3f), int8(snap[23] & 0x3f)
}

func TestNewModelAppliesDifficultySettings(t *testing.T) {
	m := NewModel(nil, core.RuntimeConfig{TickRate: 24, Seed: 1, Lives: 5, UpdatePeriod: 14})

	if got := m.game.UpdatePeriod(); got != 14 {
		t.Errorf("update period = %d, want 14", got)
	}
	if got := m.game.Lives(); got != 5 {
		t.Errorf("lives = %d, want 5", got)
	}
}

func TestKeyInputAppliesOnNextTick(t *testing.T) {
	m := NewModel(nil, core.RuntimeConfig{TickRate: 24, Seed: 1})

	next, _ := m.Update(keyMsg('a'))
	m = next.(Model)

	if row, col := playerCell(m); row != 23 || col != 13 {
		t.Fatalf("player = (%d,%d) before the tick, want (23,13)", row, col)
	}
	if !m.frame.Has(core.ActionLeft) {
		t.Fatal("left action not gathered into the frame")
	}

	next, _ = m.Update(TickMsg(time.Time{}))
	m = next.(Model)

	if row, col := playerCell(m); row != 23 || col != 12 {
		t.Errorf("player = (%d,%d) after the tick, want (23,12)", row, col)
	}
	if m.frame.Has(core.ActionLeft) {
		t.Error("frame not cleared after the tick")
	}
}

func TestPauseActionAppliesOnTick(t *testing.T) {
	m := NewModel(nil, core.RuntimeConfig{TickRate: 24, Seed: 1})

	next, _ := m.Update(keyMsg('p'))
	m = next.(Model)
	if m.game.Paused() {
		t.Fatal("paused before the tick")
	}

	next, _ = m.Update(TickMsg(time.Time{}))
	m = next.(Model)
	if !m.game.Paused() {
		t.Error("pause action did not apply on the tick")
	}
}

func TestQuitKeyAppliesImmediately(t *testing.T) {
	m := NewModel(nil, core.RuntimeConfig{TickRate: 24, Seed: 1})

	next, cmd := m.Update(keyMsg('q'))
	m = next.(Model)

	if cmd == nil {
		t.Error("quit produced no command")
	}
	if !m.quitting {
		t.Error("quitting not set")
	}
}
