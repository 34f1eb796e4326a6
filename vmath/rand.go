package vmath

import "time"

// Source yields uniform floats in [0, 1)
// Implementations are not required to be safe for concurrent use
type Source interface {
	Float64() float64
}

// FastRand is a xorshift64 generator (13, 17, 5)
type FastRand struct {
	state uint64
}

// NewFastRand returns a generator for seed, zero is remapped since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewEntropyRand seeds from the wall clock; two calls yield different sequences
func NewEntropyRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Intn draws from [0, n) using only the float operation of src
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance reports true with probability p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
