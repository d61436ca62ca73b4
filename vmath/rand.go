package vmath

// Rand is a xorshift64* generator for all gameplay randomness
// One instance per run, seeded at run start; not safe for concurrent use,
// which matches the single-writer tick discipline
type Rand struct {
	s uint64
}

// NewRand creates a generator; a zero seed is remapped to keep the state
// out of the xorshift fixed point
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Intn returns a value in [0, n); n <= 0 yields 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Range returns a value in [min, max] inclusive
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

// RangeF returns a value in [min, max)
func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// WalkStep returns -1, 0, or +1 with equal probability
func (r *Rand) WalkStep() int {
	return r.Intn(3) - 1
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}
