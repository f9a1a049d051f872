package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
	"github.com/nsuurmey/apple-discount-planning/internal/simulation"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenario.yaml> <scenario.yaml>...",
	Short: "Run several scenarios and compare their savings distributions",
	Long: `Runs each scenario with the same seed and prints the comparison view:
median, P10, P90 and the probability of any savings. Sharing the seed means
the differences between rows reflect the scenarios, not sampling noise.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		type row struct {
			name string
			res  *simulation.Result
		}
		rows := make([]row, 0, len(args))

		for _, path := range args {
			s, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}
			if ok, fieldErrs := scenario.Validate(s); !ok {
				printFieldErrors(cmd, s.Name, fieldErrs)
				return fmt.Errorf("scenario %q is invalid", s.Name)
			}
			res, err := simulation.Run(s, simulation.Options{Seed: cfg.Seed, Workers: cfg.Workers})
			if err != nil {
				return err
			}
			rows = append(rows, row{name: s.Name, res: res})
		}

		cmd.Printf("%-24s %14s %14s %14s %10s\n", "Scenario", "Median", "P10", "P90", "P(save)")
		for _, r := range rows {
			st := r.res.Stats
			cmd.Printf("%-24s %14s %14s %14s %9.1f%%\n",
				r.name, money(st.Median), money(st.P10), money(st.P90), st.ProbPositive*100)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
