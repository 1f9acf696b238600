// Package randutil derives reproducible random sources for quiz versions.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the index-th stream under a base seed. Distinct
// indexes give unrelated streams, and the result can be fed back into New to
// replay a single stream on its own.
func Derive(base int64, index int) int64 {
	return int64(mix(uint64(base) + uint64(index+1)*goldenRatio64))
}

// SampleIndexes returns k distinct indexes from [0, n) in random order using
// a partial Fisher-Yates shuffle. k is clamped to n.
func SampleIndexes(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
