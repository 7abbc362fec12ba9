package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

// Fixed-layout binary snapshot of the full game state, big-endian. The
// layout is wire-compatible with the thin clients, so field order and
// packing are frozen:
//
//	[0:2]     tick counter (truncated to 16 bits)
//	[2]       update period
//	[3]       mode byte: 0 paused, 1 scatter, 2 chase
//	[4]       mode step countdown
//	[5]       current mode duration (informational; 255 while paused)
//	[6:8]     score
//	[8]       level
//	[9]       lives
//	[10:22]   four ghost blocks (red, pink, cyan, orange), 3 bytes each:
//	          packed position + aux byte (bit 7 spawning, bits 0-5 fright)
//	[22:24]   player packed position
//	[24:26]   fruit packed position
//	[26]      fruit step countdown
//	[27]      fruit duration constant (informational)
//	[28:152]  31 pellet rows, one uint32 each
//	[152:160] PRNG state, so decoded games replay identically
//
// A packed position is one byte per axis: the top two bits are the
// direction delta for that axis in two's complement, the low six bits the
// coordinate. The sentinel (32, 32, stay) packs to 0x20 0x20.

// SnapshotSize is the exact encoded length in bytes.
const SnapshotSize = 160

// Decode failure modes. Snapshots are never silently patched: anything
// that does not parse exactly is an error.
var (
	ErrTruncatedSnapshot = errors.New("game: truncated snapshot")
	ErrBadModeByte       = errors.New("game: invalid mode byte")
	ErrBadPosition       = errors.New("game: invalid packed position")
)

func packAxis(coord, delta int8) byte {
	return byte(delta)<<6 | byte(coord)&0x3f
}

func packPosition(p Position) (byte, byte) {
	return packAxis(p.Row, dRow[p.Dir]), packAxis(p.Col, dCol[p.Dir])
}

func unpackAxis(b byte) (coord, delta int8) {
	coord = int8(b & 0x3f)
	delta = int8(b >> 6)
	if delta >= 2 {
		delta -= 4
	}
	return coord, delta
}

func unpackPosition(rowByte, colByte byte) (Position, error) {
	row, dr := unpackAxis(rowByte)
	col, dc := unpackAxis(colByte)
	for dir := Direction(0); dir <= DirStay; dir++ {
		if dRow[dir] == dr && dCol[dir] == dc {
			return Position{Row: row, Col: col, Dir: dir}, nil
		}
	}
	return Position{}, fmt.Errorf("%w: deltas (%d,%d)", ErrBadPosition, dr, dc)
}

// Encode serializes the game state. It always succeeds on a valid Game.
func (g *Game) Encode() []byte {
	buf := make([]byte, SnapshotSize)

	binary.BigEndian.PutUint16(buf[0:], uint16(g.tick))
	buf[2] = g.updatePeriod
	buf[3] = byte(g.mode)
	buf[4] = g.modeSteps
	buf[5] = modeDurations[g.mode]
	binary.BigEndian.PutUint16(buf[6:], g.score)
	buf[8] = g.level
	buf[9] = g.lives

	off := 10
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		buf[off], buf[off+1] = packPosition(gh.pos)
		aux := gh.frightSteps & 0x3f
		if gh.spawning {
			aux |= 1 << 7
		}
		buf[off+2] = aux
		off += 3
	}

	buf[22], buf[23] = packPosition(g.player)
	buf[24], buf[25] = packPosition(g.fruit)
	buf[26] = g.fruitSteps
	buf[27] = fruitDuration

	off = 28
	for row := 0; row < MazeRows; row++ {
		binary.BigEndian.PutUint32(buf[off:], g.pellets[row])
		off += 4
	}

	binary.BigEndian.PutUint64(buf[off:], g.rng.state)
	return buf
}

// Decode reconstructs a game from a snapshot. Trapped steps, the eaten
// flags and the remembered pre-pause mode are not on the wire; they come
// back as zero, false and scatter respectively.
func Decode(data []byte) (*Game, error) {
	if len(data) != SnapshotSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			ErrTruncatedSnapshot, len(data), SnapshotSize)
	}

	g := &Game{
		lastUnpausedMode: initMode,
	}

	g.tick = uint32(binary.BigEndian.Uint16(data[0:]))
	g.updatePeriod = data[2]
	if g.updatePeriod == 0 {
		g.updatePeriod = 1
	}

	switch data[3] {
	case byte(ModePaused), byte(ModeScatter), byte(ModeChase):
		g.mode = Mode(data[3])
	default:
		return nil, fmt.Errorf("%w: %#02x", ErrBadModeByte, data[3])
	}
	if g.mode != ModePaused {
		g.lastUnpausedMode = g.mode
	}

	g.modeSteps = data[4]
	// data[5] is the informational mode duration; nothing to restore.
	g.score = binary.BigEndian.Uint16(data[6:])
	g.level = data[8]
	g.lives = data[9]
	g.levelSteps = levelDuration

	off := 10
	for i := range g.ghosts {
		pos, err := unpackPosition(data[off], data[off+1])
		if err != nil {
			return nil, fmt.Errorf("ghost %v: %w", GhostColor(i), err)
		}
		aux := data[off+2]
		g.ghosts[i] = Ghost{
			color:         GhostColor(i),
			pos:           pos,
			next:          pos,
			scatterTarget: ghostScatterTargets[i],
			frightSteps:   aux & 0x3f,
			spawning:      aux&(1<<7) != 0,
			active:        true,
		}
		off += 3
	}

	var err error
	if g.player, err = unpackPosition(data[22], data[23]); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if g.fruit, err = unpackPosition(data[24], data[25]); err != nil {
		return nil, fmt.Errorf("fruit: %w", err)
	}
	g.fruitSteps = data[26]
	// data[27] is the fruit duration constant.

	off = 28
	for row := 0; row < MazeRows; row++ {
		g.pellets[row] = binary.BigEndian.Uint32(data[off:])
		g.numPellets += uint16(bits.OnesCount32(g.pellets[row]))
		off += 4
	}

	g.rng = rng{state: binary.BigEndian.Uint64(data[off:])}
	if g.rng.state == 0 {
		g.rng = newRNG(0)
	}

	return g, nil
}
