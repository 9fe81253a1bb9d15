package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator; not safe for concurrent use
// All simulation randomness runs on the tick goroutine, seeded once per session
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a uniform integer in [lo, hi] inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Symmetric returns a uniform float in [-amount, amount]
// Non-positive amount yields exactly zero
func (r *FastRand) Symmetric(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return (r.Float64()*2 - 1) * amount
}
