package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nsuurmey/apple-discount-planning/internal/scenario"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>...",
	Short: "Check scenario files without simulating them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, path := range args {
			s, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}
			ok, fieldErrs := scenario.Validate(s)
			if ok {
				cmd.Printf("%s: ok\n", path)
				continue
			}
			invalid++
			printFieldErrors(cmd, s.Name, fieldErrs)
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d scenario(s) invalid", invalid, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
