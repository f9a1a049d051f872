package simulation

import "math/rand"

// DefaultSeed is the fixed reference seed. Repeated runs against unchanged
// inputs reproduce bit-identical results, so differences between two
// scenarios reflect the inputs rather than noise.
const DefaultSeed = 42

// RNG is the random source for one simulation run. All three draw kinds
// advance a single shared stream, so a run's full draw sequence is determined
// by seed and draw order alone.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a seeded source.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// UniformFloat returns a value in [min, max).
func (g *RNG) UniformFloat(min, max float64) float64 {
	return min + g.r.Float64()*(max-min)
}

// UniformInt returns an integer in [min, max] inclusive.
func (g *RNG) UniformInt(min, max int) int {
	return min + g.r.Intn(max-min+1)
}

// NormFloat returns a standard normal draw.
func (g *RNG) NormFloat() float64 {
	return g.r.NormFloat64()
}

// Categorical returns an index drawn with probability proportional to its
// weight. Weights are normalized internally, so callers may pass raw share
// percentages. Selection walks the cumulative sum; if floating-point rounding
// leaves the walk short, the last index is returned rather than failing.
func (g *RNG) Categorical(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	u := g.r.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if u < cum {
			return i
		}
	}
	return len(weights) - 1
}
