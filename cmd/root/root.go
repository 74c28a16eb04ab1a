package root

import (
	"github.com/spf13/cobra"

	"github.com/operator-framework/backtrack/cmd/enumerate"
	"github.com/operator-framework/backtrack/cmd/verify"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "backtrack",
		Short: "Backtrack enumerates combinatorial search spaces",
		Long: `Enumerates combinations, combination sums, permutations, subsets
and string partitions with a single depth-first backtracking engine.`,
		SilenceUsage: true,
	}

	enumerate.AddFlags(rootCmd.PersistentFlags())

	// add sub-commands
	rootCmd.AddCommand(enumerate.NewCombineCommand())
	rootCmd.AddCommand(enumerate.NewSumCommand())
	rootCmd.AddCommand(enumerate.NewPermuteCommand())
	rootCmd.AddCommand(enumerate.NewSubsetsCommand())
	rootCmd.AddCommand(enumerate.NewPartitionCommand())
	rootCmd.AddCommand(enumerate.NewLettersCommand())
	rootCmd.AddCommand(verify.NewVerifyCommand())

	return rootCmd
}
