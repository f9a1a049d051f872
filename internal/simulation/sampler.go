package simulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
)

// multiplierSampler draws one price multiplier per farm. Implementations are
// immutable after construction and safe to share across trial blocks; the
// only mutable state is the RNG passed into each draw.
type multiplierSampler interface {
	Sample(g *RNG) float64
}

// newSampler builds the sampler for a scenario's pricing mode. Unknown modes
// or distribution names are configuration errors, not user-input errors, and
// are returned as such so callers fail fast instead of falling back silently.
func newSampler(s *scenario.Scenario) (multiplierSampler, error) {
	switch s.Mode {
	case scenario.ModeSimple, "":
		return newTypeRangeSampler(s), nil
	case scenario.ModeMixture:
		return newMixtureSampler(s.Mixture)
	default:
		return nil, fmt.Errorf("unsupported pricing mode %q", s.Mode)
	}
}

// typeRangeSampler implements the baseline model: pick a farm type by share
// weight, then draw uniformly within that type's multiplier range.
type typeRangeSampler struct {
	weights []float64
	lo, hi  []float64
}

func newTypeRangeSampler(s *scenario.Scenario) *typeRangeSampler {
	t := &typeRangeSampler{
		weights: s.ShareWeights(),
		lo:      make([]float64, len(s.FarmTypes)),
		hi:      make([]float64, len(s.FarmTypes)),
	}
	for i, ft := range s.FarmTypes {
		t.lo[i], t.hi[i] = ft.MultiplierRange()
	}
	return t
}

func (t *typeRangeSampler) Sample(g *RNG) float64 {
	i := g.Categorical(t.weights)
	return g.UniformFloat(t.lo[i], t.hi[i])
}

// mixtureSampler implements the two-component model: a Bernoulli split into a
// full-price group and a discount group. Farm-type shares play no role here;
// the two schemes never blend within a scenario.
type mixtureSampler struct {
	pFullPrice float64

	fullFixed bool
	fullValue float64
	fullMean  float64
	fullStd   float64

	useBeta bool
	minMult float64
	alpha   float64
	beta    float64
}

func newMixtureSampler(p *scenario.MixtureParams) (*mixtureSampler, error) {
	if p == nil {
		return nil, errors.New("mixture mode selected without mixture parameters")
	}

	m := &mixtureSampler{pFullPrice: p.PFullPrice, minMult: p.MinMultiplier}

	switch p.FullPriceDistribution {
	case "", scenario.FullPriceFixed:
		m.fullFixed = true
		m.fullValue = p.FullPriceValue
		if m.fullValue == 0 {
			m.fullValue = 1.0
		}
	case scenario.FullPriceNormal:
		m.fullMean = p.FullPriceMean
		m.fullStd = p.FullPriceStd
	default:
		return nil, fmt.Errorf("unsupported full-price distribution %q", p.FullPriceDistribution)
	}

	switch p.DiscountDistribution {
	case "", scenario.DiscountUniform:
	case scenario.DiscountBeta:
		m.useBeta = true
		m.alpha = p.Alpha
		m.beta = p.Beta
	default:
		return nil, fmt.Errorf("unsupported discount distribution %q", p.DiscountDistribution)
	}

	return m, nil
}

func (m *mixtureSampler) Sample(g *RNG) float64 {
	if g.UniformFloat(0, 1) < m.pFullPrice {
		return m.sampleFullPrice(g)
	}
	return m.sampleDiscount(g)
}

func (m *mixtureSampler) sampleFullPrice(g *RNG) float64 {
	if m.fullFixed {
		return m.fullValue
	}
	v := m.fullMean + m.fullStd*g.NormFloat()
	// Clip to [0, 2]: negative or implausibly high prices are forbidden.
	if v < 0 {
		return 0
	}
	if v > 2 {
		return 2
	}
	return v
}

func (m *mixtureSampler) sampleDiscount(g *RNG) float64 {
	if m.useBeta {
		// Beta's [0,1] support maps linearly onto [minMult, 1).
		return m.minMult + betaSample(g, m.alpha, m.beta)*(1-m.minMult)
	}
	return g.UniformFloat(m.minMult, 1.0)
}

// betaSample draws from Beta(alpha, beta) as a ratio of gamma variates.
func betaSample(g *RNG, alpha, beta float64) float64 {
	x := gammaSample(g, alpha)
	y := gammaSample(g, beta)
	if x+y == 0 {
		return 0
	}
	return x / (x + y)
}

// gammaSample draws from Gamma(shape, 1) using Marsaglia-Tsang squeeze
// rejection, with the standard boost for shape < 1.
func gammaSample(g *RNG, shape float64) float64 {
	if shape < 1 {
		u := g.UniformFloat(0, 1)
		return gammaSample(g, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := g.NormFloat()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := g.UniformFloat(0, 1)
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
