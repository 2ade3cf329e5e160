package mt19937

import "fmt"

// Engine parameters (Matsumoto & Nishimura, 2002).
const (
	N         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	// defaultSeed is used the first time Extract is called on an Engine that
	// was never explicitly seeded, matching the reference implementation's
	// fallback (mt19937ar.c calls init_genrand(5489) under the same
	// condition).
	defaultSeed = 5489
)

// Engine is one MT19937 generator instance: 624 words of state plus the
// index of the next word to temper and emit. An index of N means "every
// word of the current state has been consumed; Twist before the next
// Extract". notSeeded is a distinguished index used only by New, so a fresh
// Engine lazily adopts defaultSeed on first use instead of silently
// streaming from an all-zero state.
type Engine struct {
	state [N]uint32
	index int
}

const notSeeded = N + 1

// New returns an Engine that has not yet been seeded. The first call to
// Extract seeds it with defaultSeed.
func New() *Engine {
	return &Engine{index: notSeeded}
}

// Seed initializes the generator from a single 32-bit seed using the
// standard MT19937 linear-congruential stretch. Only the low 32 bits of
// seed are used.
func (e *Engine) Seed(seed uint64) {
	e.state[0] = uint32(seed)
	for i := 1; i < N; i++ {
		e.state[i] = 1812433253*(e.state[i-1]^(e.state[i-1]>>30)) + uint32(i)
	}
	e.index = N
}

// SeedFromKeys initializes the generator from an arbitrary-length key array,
// matching the reference init_by_array seeding used by CPython and the
// original C++ implementation. It is not on the state-recovery path (the
// recoverer always uses SeedState) but is carried along as the engine's
// other documented, general-purpose seeding entry point.
func (e *Engine) SeedFromKeys(keys []uint32) {
	e.Seed(19650218)
	i, j := 1, 0
	k := N
	if len(keys) > k {
		k = len(keys)
	}
	for ; k != 0; k-- {
		e.state[i] = (e.state[i] ^ ((e.state[i-1] ^ (e.state[i-1] >> 30)) * 1664525)) + keys[j] + uint32(j)
		i++
		j++
		if i >= N {
			e.state[0] = e.state[N-1]
			i = 1
		}
		if j >= len(keys) {
			j = 0
		}
	}
	for k = N - 1; k != 0; k-- {
		e.state[i] = (e.state[i] ^ ((e.state[i-1] ^ (e.state[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= N {
			e.state[0] = e.state[N-1]
			i = 1
		}
	}
	e.state[0] = upperMask // MSB is 1, assuring non-zero initial array.
	e.index = N
}

// SeedState loads state verbatim as the generator's 624 words and forces a
// twist before the next Extract. This is the constructor the transition-
// matrix builder and the cracker facade use: the recovered state is defined
// as the word array immediately before the first observed extract, and a
// single pre-twist reproduces the victim generator exactly.
func (e *Engine) SeedState(state [N]uint32) {
	e.state = state
	e.index = N
}

// MarshalState returns a copy of the engine's raw 624-word array as it
// currently sits, without tempering. Useful for persisting or comparing
// generator state; the recovery pipeline itself tracks the recovered seed
// separately (see cracker.Cracker.State), since by the time a Cracker's
// engine has advanced it no longer holds the original seed words.
func (e *Engine) MarshalState() [N]uint32 {
	return e.state
}

// UnmarshalState is the slice-typed counterpart to SeedState, for callers
// that receive state as a serialized []uint32 (e.g. read back from a file
// or wire message) rather than holding it in a fixed-size array. Returns
// ErrBadStateLength if words does not have exactly N elements.
func (e *Engine) UnmarshalState(words []uint32) error {
	if len(words) != N {
		return fmt.Errorf("mt19937: unmarshal state: got %d words: %w", len(words), ErrBadStateLength)
	}

	var state [N]uint32
	copy(state[:], words)
	e.SeedState(state)

	return nil
}

// twist advances the full 624-word state by one generation.
func (e *Engine) twist() {
	for i := 0; i < N; i++ {
		x := (e.state[i] & upperMask) | (e.state[(i+1)%N] & lowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= matrixA
		}
		e.state[i] = e.state[(i+m)%N] ^ xA
	}
	e.index = 0
}

// Extract returns the next tempered 32-bit output, twisting the state first
// if every word of the current generation has been consumed. An Engine that
// has never been seeded is lazily seeded with defaultSeed on the first call.
func (e *Engine) Extract() uint32 {
	if e.index == notSeeded {
		e.Seed(defaultSeed)
	}
	if e.index >= N {
		e.twist()
	}
	y := e.state[e.index]
	e.index++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}
