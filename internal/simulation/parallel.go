package simulation

import (
	"golang.org/x/sync/errgroup"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
)

// trialBlock is the fixed number of trials per parallel block. Sub-seeds are
// derived per block, not per worker, so the output for a given seed is
// identical no matter how many workers run the blocks.
const trialBlock = 4096

// runBlocks partitions the trials into fixed-size blocks and fans them out
// over a bounded errgroup. Each block gets its own RNG seeded from the base
// seed plus the block's starting trial index; sharing one advancing stream
// across goroutines would destroy both determinism and uniformity.
func runBlocks(s *scenario.Scenario, smp multiplierSampler, opts Options, out []float64) {
	var grp errgroup.Group
	grp.SetLimit(opts.Workers)

	for start := 0; start < len(out); start += trialBlock {
		end := min(start+trialBlock, len(out))
		block := out[start:end]
		seed := opts.Seed + int64(start)
		grp.Go(func() error {
			runTrials(s, smp, NewRNG(seed), block)
			return nil
		})
	}

	// Block workers never return errors; Wait only synchronizes.
	_ = grp.Wait()
}
