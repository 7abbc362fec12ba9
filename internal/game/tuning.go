package game

// Fixed gameplay constants. The maze layout, spawn points, thresholds and
// durations are compile-time data: there is deliberately no way to load a
// different maze at runtime.

// Maze dimensions, in cells.
const (
	MazeRows = 31
	MazeCols = 28
)

// Tick timing.
const (
	initUpdatePeriod     = 12  // ticks per simulation step at level 1
	levelDuration        = 960 // steps before the first long-game speedup
	levelPenaltyDuration = 240 // steps between subsequent speedups
)

// Mode durations in steps, indexed by Mode.
var modeDurations = [numModes]uint8{
	255, // paused
	60,  // scatter
	180, // chase
}

const (
	initMode  = ModeScatter
	initLevel = 1
	initLives = 3
)

// Ghost house exit cell.
const (
	ghostHouseExitRow = 12
	ghostHouseExitCol = 13
)

// Player and fruit spawn positions.
var (
	playerSpawnPos = Position{Row: 23, Col: 13, Dir: DirRight}
	fruitSpawnPos  = Position{Row: 17, Col: 13, Dir: DirStay}

	// emptyPos is the "not placed" sentinel; it packs to 0x20 0x20 on the wire.
	emptyPos = Position{Row: 32, Col: 32, Dir: DirStay}
)

// Fruit behavior.
const (
	fruitDuration = 30 // steps the fruit stays on the maze
	fruitPoints   = 100
)

// Ghost spawn positions, indexed by color.
var ghostSpawnPos = [NumGhosts]Position{
	{Row: 11, Col: 13, Dir: DirLeft}, // red
	{Row: 13, Col: 13, Dir: DirDown}, // pink
	{Row: 14, Col: 11, Dir: DirUp},   // cyan
	{Row: 14, Col: 15, Dir: DirUp},   // orange
}

// Fixed scatter targets, indexed by color. The off-board rows are
// intentional: they pull the ghosts toward the corners.
var ghostScatterTargets = [NumGhosts]Position{
	{Row: -3, Col: 25, Dir: DirStay}, // red
	{Row: -3, Col: 2, Dir: DirStay},  // pink
	{Row: 31, Col: 27, Dir: DirStay}, // cyan
	{Row: 31, Col: 0, Dir: DirStay},  // orange
}

// Steps each ghost stays trapped in the house after a reset, indexed by
// color. The stagger spreads out their release.
var ghostTrappedSteps = [NumGhosts]uint8{0, 5, 16, 32}

// Steps a ghost stays frightened after a super pellet.
const ghostFrightSteps = 40

// Pellet thresholds and scoring.
const (
	initPelletCount = 244

	fruitThreshold1 = 174 // pellets left when the first fruit spawns
	fruitThreshold2 = 74  // pellets left when the second fruit spawns
	angerThreshold1 = 20  // pellets left when the ghosts speed up
	angerThreshold2 = 10  // pellets left when the ghosts speed up again

	pelletPoints      = 10
	superPelletPoints = 50

	// Base points for eating a frightened ghost; doubles per combo.
	comboMultiplier = 200
)

// Initial pellet layout. Each uint32 is one row; column 0 is bit 0, so the
// rows read right-to-left. (Tip: search for '1' to see the pellets.)
var initPellets = [MazeRows]uint32{
	//                middle
	// col:             vv    8 6 4 2 0
	0b0000_0000000000000000000000000000, // row 0
	0b0000_0111111111111001111111111110, // row 1
	0b0000_0100001000001001000001000010, // row 2
	0b0000_0100001000001001000001000010, // row 3
	0b0000_0100001000001001000001000010, // row 4
	0b0000_0111111111111111111111111110, // row 5
	0b0000_0100001001000000001001000010, // row 6
	0b0000_0100001001000000001001000010, // row 7
	0b0000_0111111001111001111001111110, // row 8
	0b0000_0000001000000000000001000000, // row 9
	0b0000_0000001000000000000001000000, // row 10
	0b0000_0000001000000000000001000000, // row 11
	0b0000_0000001000000000000001000000, // row 12
	0b0000_0000001000000000000001000000, // row 13
	0b0000_0000001000000000000001000000, // row 14
	0b0000_0000001000000000000001000000, // row 15
	0b0000_0000001000000000000001000000, // row 16
	0b0000_0000001000000000000001000000, // row 17
	0b0000_0000001000000000000001000000, // row 18
	0b0000_0000001000000000000001000000, // row 19
	0b0000_0111111111111001111111111110, // row 20
	0b0000_0100001000001001000001000010, // row 21
	0b0000_0100001000001001000001000010, // row 22
	0b0000_0111001111111001111111001110, // row 23
	0b0000_0001001001000000001001001000, // row 24
	0b0000_0001001001000000001001001000, // row 25
	0b0000_0111111001111001111001111110, // row 26
	0b0000_0100000000001001000000000010, // row 27
	0b0000_0100000000001001000000000010, // row 28
	0b0000_0111111111111111111111111110, // row 29
	0b0000_0000000000000000000000000000, // row 30
}

// Wall layout, same packing as initPellets. Immutable: the planner's
// no-dead-end invariant depends on this exact maze.
var initWalls = [MazeRows]uint32{
	//                middle
	// col:             vv    8 6 4 2 0
	0b0000_1111111111111111111111111111, // row 0
	0b0000_1000000000000110000000000001, // row 1
	0b0000_1011110111110110111110111101, // row 2
	0b0000_1011110111110110111110111101, // row 3
	0b0000_1011110111110110111110111101, // row 4
	0b0000_1000000000000000000000000001, // row 5
	0b0000_1011110110111111110110111101, // row 6
	0b0000_1011110110111111110110111101, // row 7
	0b0000_1000000110000110000110000001, // row 8
	0b0000_1111110111110110111110111111, // row 9
	0b0000_1111110111110110111110111111, // row 10
	0b0000_1111110110000000000110111111, // row 11
	0b0000_1111110110111111110110111111, // row 12
	0b0000_1111110110111111110110111111, // row 13
	0b0000_1111110000111111110000111111, // row 14
	0b0000_1111110110111111110110111111, // row 15
	0b0000_1111110110111111110110111111, // row 16
	0b0000_1111110110000000000110111111, // row 17
	0b0000_1111110110111111110110111111, // row 18
	0b0000_1111110110111111110110111111, // row 19
	0b0000_1000000000000110000000000001, // row 20
	0b0000_1011110111110110111110111101, // row 21
	0b0000_1011110111110110111110111101, // row 22
	0b0000_1000110000000000000000110001, // row 23
	0b0000_1110110110111111110110110111, // row 24
	0b0000_1110110110111111110110110111, // row 25
	0b0000_1000000110000110000110000001, // row 26
	0b0000_1011111111110110111111111101, // row 27
	0b0000_1011111111110110111111111101, // row 28
	0b0000_1000000000000000000000000001, // row 29
	0b0000_1111111111111111111111111111, // row 30
}
