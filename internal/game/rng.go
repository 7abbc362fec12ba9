package game

// rng is a xorshift64* generator. math/rand would do for gameplay, but its
// state cannot be captured in the snapshot; this one is eight bytes and
// replays exactly, which keeps frightened-ghost movement reproducible
// across encode/decode.
type rng struct {
	state uint64
}

func newRNG(seed uint64) rng {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return rng{state: seed}
}

func (r *rng) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545f4914f6cdd1d
}

// intn returns a value in [0, n). Panics if n <= 0, matching math/rand.
func (r *rng) intn(n int) int {
	if n <= 0 {
		panic("game: intn with non-positive bound")
	}
	return int(r.next() % uint64(n))
}
