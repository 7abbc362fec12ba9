// Package game implements a deterministic, tick-driven Pac-Man simulation:
// the maze and pellet grids, the scatter/chase mode machine, the four ghost
// planners, collision and score resolution, and a fixed-layout binary
// snapshot codec. The package has no clock and no I/O of its own; an
// external caller drives Step at a fixed rate and drains the emitted events.
package game

// Mode is the global game mode. Pause is represented as its own mode on the
// wire, with the last unpaused mode remembered so play can resume.
type Mode uint8

const (
	ModePaused Mode = iota
	ModeScatter
	ModeChase
)

const numModes = 3

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePaused:
		return "paused"
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	default:
		return "unknown"
	}
}

// Game is the root simulation state. It is single-threaded by design: one
// Step is one atomic transition, and callers that share a Game across
// goroutines must serialize access themselves.
type Game struct {
	tick         uint32
	updatePeriod uint8

	mode             Mode
	lastUnpausedMode Mode
	pauseOnUpdate    bool
	modeSteps        uint8
	levelSteps       uint16

	score uint16
	level uint8
	lives uint8

	player Position

	fruit      Position
	fruitSteps uint8

	ghosts [NumGhosts]Ghost
	combo  uint8

	pellets    [MazeRows]uint32
	numPellets uint16

	rng rng

	// Pending click-to-move directions, consumed one per due step.
	pending []Direction

	events []Event
}

// Options configures a new Game. Zero values select the defaults.
type Options struct {
	Seed         uint64 // PRNG seed for frightened movement
	Lives        uint8  // starting lives, default 3
	UpdatePeriod uint8  // ticks per simulation step, default 12
}

// New creates a game in the paused state with the standard starting board.
func New(opts Options) *Game {
	lives := uint8(initLives)
	if opts.Lives != 0 {
		lives = opts.Lives
	}
	period := uint8(initUpdatePeriod)
	if opts.UpdatePeriod != 0 {
		period = opts.UpdatePeriod
	}

	g := &Game{
		updatePeriod:     period,
		mode:             ModePaused,
		lastUnpausedMode: initMode,
		modeSteps:        modeDurations[initMode],
		levelSteps:       levelDuration,
		level:            initLevel,
		lives:            lives,
		player:           playerSpawnPos,
		fruit:            fruitSpawnPos,
		pellets:          initPellets,
		numPellets:       initPelletCount,
		rng:              newRNG(opts.Seed),
	}
	for c := range g.ghosts {
		g.ghosts[c] = newGhost(GhostColor(c))
	}
	return g
}

// Read accessors. These expose the state the platform layers render;
// mutation happens only through Step, MovePlayer and the pause controls.

// Tick returns the raw tick counter.
func (g *Game) Tick() uint32 { return g.tick }

// UpdatePeriod returns the current ticks-per-step divisor.
func (g *Game) UpdatePeriod() uint8 { return g.updatePeriod }

// Score returns the current score.
func (g *Game) Score() uint16 { return g.score }

// Level returns the current level, starting at 1.
func (g *Game) Level() uint8 { return g.level }

// Lives returns the lives remaining.
func (g *Game) Lives() uint8 { return g.lives }

// PelletsRemaining returns the number of uncollected pellets.
func (g *Game) PelletsRemaining() uint16 { return g.numPellets }

// PlayerPos returns the player's position.
func (g *Game) PlayerPos() Position { return g.player }

// FruitPos returns the fruit position and whether the fruit is present.
func (g *Game) FruitPos() (Position, bool) {
	return g.fruit, g.fruitSteps > 0
}

// GhostInfo is a read-only view of one ghost.
type GhostInfo struct {
	Color      GhostColor
	Pos        Position
	Frightened bool
	FrightLeft uint8
	Spawning   bool
	Eaten      bool
	Active     bool
}

// Ghost returns a read-only view of the ghost with the given color.
func (g *Game) Ghost(c GhostColor) GhostInfo {
	gh := &g.ghosts[c]
	return GhostInfo{
		Color:      gh.color,
		Pos:        gh.pos,
		Frightened: gh.frightened(),
		FrightLeft: gh.frightSteps,
		Spawning:   gh.spawning,
		Eaten:      gh.eaten,
		Active:     gh.active,
	}
}

// SetGhostActive hides or reveals a ghost. An inactive ghost is parked at
// the sentinel, so it neither moves nor collides.
func (g *Game) SetGhostActive(c GhostColor, active bool) {
	gh := &g.ghosts[c]
	if gh.active == active {
		return
	}
	gh.active = active
	if active {
		gh.reset()
	} else {
		gh.pos = emptyPos
		gh.next = emptyPos
	}
}

// addScore increases the score, saturating at the top of the 16-bit range.
func (g *Game) addScore(points uint32) {
	prev := g.score
	total := uint32(g.score) + points
	if total > 0xffff {
		total = 0xffff
	}
	g.score = uint16(total)
	if g.score != prev {
		g.emit(EventScoreChanged, prev, g.score)
	}
}

// setLevel updates the level and derives the suggested update period for
// it: two ticks faster per level, never below one.
func (g *Game) setLevel(level uint8) {
	g.level = level
	suggested := initUpdatePeriod - 2*(int(level)-1)
	if suggested < 1 {
		suggested = 1
	}
	g.setUpdatePeriod(uint8(suggested))
}

// incrementLevel advances the level, saturating at 255.
func (g *Game) incrementLevel() {
	if g.level == 255 {
		return
	}
	g.emit(EventLevelAdvanced, uint16(g.level), uint16(g.level)+1)
	g.setLevel(g.level + 1)
}

// decrementLives removes one life, saturating at zero.
func (g *Game) decrementLives() {
	if g.lives == 0 {
		return
	}
	g.lives--
	g.emit(EventLifeLost, uint16(g.lives)+1, uint16(g.lives))
}

func (g *Game) setUpdatePeriod(period uint8) {
	if period == g.updatePeriod {
		return
	}
	g.emit(EventSpeedChanged, uint16(g.updatePeriod), uint16(period))
	g.updatePeriod = period
}

func (g *Game) resetPellets() {
	g.pellets = initPellets
	g.numPellets = initPelletCount
}
