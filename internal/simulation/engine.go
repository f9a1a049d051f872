package simulation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
	"github.com/nsuurmey/apple-discount-planning/internal/stats"
)

// Result holds everything a completed run produces. It is pure output: a run
// either returns a fully populated Result or an error, never a partial one.
type Result struct {
	Savings   []float64     `json:"savings"`
	Stats     stats.Summary `json:"stats"`
	Histogram []stats.Bin   `json:"histogram"`
}

// Options control a run's reproducibility and execution. The zero value is
// the reference behavior: the fixed default seed and a single sequential
// trial loop.
type Options struct {
	// Seed drives every draw in the run. 0 means DefaultSeed.
	Seed int64
	// Workers above 1 enables the block-parallel runner. Output stays
	// deterministic for a given seed regardless of the worker count, but the
	// draw sequence differs from the sequential one.
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// Run simulates a scenario and reduces the per-trial savings into summary
// statistics and a histogram. The scenario must pass scenario.Validate; an
// invalid one is rejected with an error rather than simulated, so garbage
// never comes out quietly.
func Run(s *scenario.Scenario, opts Options) (*Result, error) {
	if ok, errs := scenario.Validate(s); !ok {
		return nil, fmt.Errorf("scenario %q failed validation: %s", s.Name, joinFieldErrors(errs))
	}
	smp, err := newSampler(s)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	opts = opts.withDefaults()

	start := time.Now()
	savings := make([]float64, s.Trials)
	if opts.Workers > 1 {
		runBlocks(s, smp, opts, savings)
	} else {
		runTrials(s, smp, NewRNG(opts.Seed), savings)
	}

	summary, hist := stats.Reduce(savings)

	log.Debug().
		Str("scenario", s.Name).
		Int("trials", s.Trials).
		Int64("seed", opts.Seed).
		Int("workers", opts.Workers).
		Dur("elapsed", time.Since(start)).
		Float64("meanSavings", summary.Mean).
		Msg("Simulation completed")

	return &Result{Savings: savings, Stats: summary, Histogram: hist}, nil
}

// runTrials fills out with one savings value per trial. Each trial draws this
// year's farm count, prices every farm off last year's average, then rescales
// the partial cost to a full-fleet total so savings compare like-for-like
// against lastYearCost whatever farm count the trial drew.
func runTrials(s *scenario.Scenario, smp multiplierSampler, g *RNG, out []float64) {
	avgPrice := s.AvgPriceLastYear()
	lastYearFarms := float64(s.LastYearFarms)

	for i := range out {
		nFarms := g.UniformInt(s.MinNewFarms, s.MaxNewFarms)
		cost := 0.0
		for f := 0; f < nFarms; f++ {
			cost += smp.Sample(g) * avgPrice
		}
		scaled := cost * lastYearFarms / float64(nFarms)
		out[i] = s.LastYearCost - scaled
	}
}

func joinFieldErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + errs[f]
	}
	return strings.Join(parts, "; ")
}
