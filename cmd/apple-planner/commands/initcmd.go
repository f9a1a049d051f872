package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init <scenario.yaml>",
	Short: "Write a starter scenario file with the reference defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !initForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
		s := scenario.Default()
		if cfg.DefaultTrials > 0 {
			s.Trials = cfg.DefaultTrials
		}
		if err := s.WriteFile(path); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
