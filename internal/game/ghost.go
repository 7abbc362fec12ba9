package game

// GhostColor identifies one of the four ghosts. The numeric order is
// significant: collisions and respawns are resolved red-first.
type GhostColor uint8

const (
	GhostRed GhostColor = iota
	GhostPink
	GhostCyan
	GhostOrange
)

// NumGhosts is the number of ghost colors.
const NumGhosts = 4

// String returns the color name.
func (c GhostColor) String() string {
	switch c {
	case GhostRed:
		return "red"
	case GhostPink:
		return "pink"
	case GhostCyan:
		return "cyan"
	case GhostOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Ghost is the state of a single ghost. The Game owns all four in a plain
// array indexed by color; nothing holds a pointer back to the Game, and the
// planner receives the aggregate explicitly.
type Ghost struct {
	color         GhostColor
	pos           Position // committed position for this step
	next          Position // planned position for the next step
	scatterTarget Position
	trappedSteps  uint8
	frightSteps   uint8
	spawning      bool
	eaten         bool
	active        bool // inactive ghosts are parked at the sentinel and ignored
}

func newGhost(color GhostColor) Ghost {
	return Ghost{
		color:         color,
		pos:           emptyPos,
		next:          ghostSpawnPos[color],
		scatterTarget: ghostScatterTargets[color],
		trappedSteps:  ghostTrappedSteps[color],
		spawning:      true,
		active:        true,
	}
}

func (gh *Ghost) frightened() bool {
	return gh.frightSteps > 0
}

func (gh *Ghost) trapped() bool {
	return gh.trappedSteps > 0
}

// reset returns the ghost to its spawn state after a death or level reset.
func (gh *Ghost) reset() {
	gh.spawning = true
	gh.eaten = false
	gh.trappedSteps = ghostTrappedSteps[gh.color]
	gh.frightSteps = 0
	gh.pos = emptyPos
	gh.next = ghostSpawnPos[gh.color]
	if !gh.active {
		gh.next = emptyPos
	}
}

// respawn sends an eaten ghost back toward the house. Red respawns into
// pink's cell so it re-enters the house instead of its own doorstep spot.
func (gh *Ghost) respawn() {
	gh.spawning = true
	gh.eaten = true
	gh.pos = emptyPos

	spawnColor := gh.color
	if spawnColor == GhostRed {
		spawnColor = GhostPink
	}
	gh.next = ghostSpawnPos[spawnColor]
	gh.next.Dir = DirUp
}

// update commits the planned position. Runs once per due step, before
// collision resolution.
func (gh *Ghost) update() {
	// A ghost at red's spawn cell facing anywhere but down has cleared
	// the house and is done spawning.
	if gh.pos.CollidesWith(ghostSpawnPos[GhostRed]) && gh.pos.Dir != DirDown {
		gh.spawning = false
	}

	if gh.eaten {
		gh.eaten = false
		gh.frightSteps = 0
	}

	if gh.frightened() {
		gh.frightSteps--
	}

	gh.pos = gh.next
}
