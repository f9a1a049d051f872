package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
	"github.com/nsuurmey/apple-discount-planning/internal/simulation"
)

var (
	runSeed    int64
	runTrials  int
	runWorkers int
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Simulate a scenario and print the savings report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.LoadFile(args[0])
		if err != nil {
			return err
		}
		if runTrials > 0 {
			s.Trials = runTrials
		}

		if ok, fieldErrs := scenario.Validate(s); !ok {
			printFieldErrors(cmd, s.Name, fieldErrs)
			return fmt.Errorf("scenario %q is invalid", s.Name)
		}

		opts := simulation.Options{Seed: cfg.Seed, Workers: cfg.Workers}
		if cmd.Flags().Changed("seed") {
			opts.Seed = runSeed
		}
		if cmd.Flags().Changed("workers") {
			opts.Workers = runWorkers
		}

		res, err := simulation.Run(s, opts)
		if err != nil {
			return err
		}

		cmd.Print(formatReport(s, res))
		return nil
	},
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", simulation.DefaultSeed, "base seed for the run")
	runCmd.Flags().IntVar(&runTrials, "trials", 0, "override the scenario's trial count")
	runCmd.Flags().IntVar(&runWorkers, "workers", 1, "parallel workers (1 = sequential)")
	rootCmd.AddCommand(runCmd)
}

func printFieldErrors(cmd *cobra.Command, name string, fieldErrs map[string]string) {
	cmd.PrintErrf("Scenario %q has %d problem(s):\n", name, len(fieldErrs))
	for _, field := range sortedKeys(fieldErrs) {
		cmd.PrintErrf("  %-32s %s\n", field, fieldErrs[field])
	}
}
