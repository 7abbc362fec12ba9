package game

// The core never logs. Every externally interesting transition is appended
// to an event list that Step returns, so the simulation stays a pure
// (state, input) -> (state, events) function and tests never have to
// capture output.

// EventKind identifies a state transition reported by the core.
type EventKind uint8

const (
	EventScoreChanged EventKind = iota
	EventModeChanged
	EventSpeedChanged
	EventLevelAdvanced
	EventLifeLost
	EventFruitSpawned
	EventGhostEaten
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score_changed"
	case EventModeChanged:
		return "mode_changed"
	case EventSpeedChanged:
		return "speed_changed"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventLifeLost:
		return "life_lost"
	case EventFruitSpawned:
		return "fruit_spawned"
	case EventGhostEaten:
		return "ghost_eaten"
	default:
		return "unknown"
	}
}

// Event is a single reported transition. Prev and Curr carry the
// kind-specific values: score before/after, mode before/after, and so on.
// For EventGhostEaten, Prev is the ghost color and Curr the points awarded.
type Event struct {
	Kind EventKind
	Tick uint32
	Prev uint16
	Curr uint16
}

func (g *Game) emit(kind EventKind, prev, curr uint16) {
	g.events = append(g.events, Event{Kind: kind, Tick: g.tick, Prev: prev, Curr: curr})
}

func (g *Game) drainEvents() []Event {
	ev := g.events
	g.events = nil
	return ev
}
