package verify

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/operator-framework/backtrack/internal/satcheck"
	"github.com/operator-framework/backtrack/pkg/backtrack/enumerate"
)

func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify --n <n> --k <k>",
		Short: "Cross-checks the engine against a SAT solver",
		Long: `Cross-checks the engine against a SAT solver.
Enumerates the k-combinations and all subsets of n positions with the
backtracking engine and, independently, by model enumeration over a
cardinality-constrained CNF, and fails if the two disagree.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			if n < 0 || n > 16 {
				return fmt.Errorf("n must be between 0 and 16, got %d", n)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			k, _ := cmd.Flags().GetInt("k")
			return verify(cmd.OutOrStdout(), n, k)
		},
	}
	cmd.Flags().Int("n", 5, "number of positions")
	cmd.Flags().Int("k", 2, "combination size")
	return cmd
}

func verify(out io.Writer, n, k int) error {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	checks := []struct {
		name   string
		paths  [][]int
		lo, hi int
	}{
		{name: fmt.Sprintf("combinations(%d, %d)", n, k), paths: enumerate.Combinations(pool, k), lo: k, hi: k},
		{name: fmt.Sprintf("subsets(%d)", n), paths: enumerate.Subsets(pool), lo: 0, hi: n},
	}
	for _, c := range checks {
		expected, err := satcheck.Selections(n, c.lo, c.hi)
		if err != nil {
			return fmt.Errorf("error enumerating %s with the SAT solver: %w", c.name, err)
		}
		// engine paths are ascending index lists in DFS order
		got := slices.Clone(c.paths)
		slices.SortFunc(got, slices.Compare[[]int])
		if !slices.EqualFunc(got, expected, slices.Equal[[]int]) {
			return fmt.Errorf("%s: engine found %d selections, SAT solver found %d", c.name, len(got), len(expected))
		}
		fmt.Fprintf(out, "%s: %d selections, ok\n", c.name, len(got))
	}
	return nil
}
