package enumerate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/operator-framework/backtrack/pkg/backtrack/enumerate"
)

func NewCombineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine --k <k> <value>...",
		Short: "Lists every k-element combination of the given values",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRun(cmd)
			if err != nil {
				return err
			}
			k, _ := cmd.Flags().GetInt("k")
			if strs, _ := cmd.Flags().GetBool(flagStrings); strs {
				printPaths(r, enumerate.Combinations(args, k, r.options...))
				return nil
			}
			pool, err := parseInts(args)
			if err != nil {
				return err
			}
			printPaths(r, enumerate.Combinations(pool, k, r.options...))
			return nil
		},
	}
	cmd.Flags().Int("k", 0, "number of values per combination")
	cmd.Flags().Bool(flagStrings, false, "treat values as strings")
	return cmd
}

func NewSumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum --target <n> <value>...",
		Short: "Lists every combination of the given values summing to a target",
		Long: `Lists every combination of the given values summing to a target.
By default each value may be used any number of times. With --dup each
value is used at most once and repeated values never repeat a result.
With --k exactly k values are used, each at most once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRun(cmd)
			if err != nil {
				return err
			}
			pool, err := parseInts(args)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			target, _ := flags.GetInt("target")
			dup, _ := flags.GetBool(flagDup)
			k, _ := flags.GetInt("k")
			switch {
			case flags.Changed("k"):
				printPaths(r, enumerate.CombinationSumK(pool, k, target, r.options...))
			case dup:
				printPaths(r, enumerate.CombinationSumWithDup(pool, target, r.options...))
			default:
				printPaths(r, enumerate.CombinationSum(pool, target, r.options...))
			}
			return nil
		},
	}
	cmd.Flags().Int("target", 0, "sum every combination must reach")
	cmd.Flags().Bool(flagDup, false, "use each value at most once")
	cmd.Flags().Int("k", 0, "use exactly k values")
	cmd.MarkFlagsMutuallyExclusive(flagDup, "k")
	return cmd
}

func NewPermuteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permute <value>...",
		Short: "Lists every ordering of the given values",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRun(cmd)
			if err != nil {
				return err
			}
			dup, _ := cmd.Flags().GetBool(flagDup)
			if strs, _ := cmd.Flags().GetBool(flagStrings); strs {
				if dup {
					printPaths(r, enumerate.PermutationsWithDup(args, r.options...))
				} else {
					printPaths(r, enumerate.Permutations(args, r.options...))
				}
				return nil
			}
			pool, err := parseInts(args)
			if err != nil {
				return err
			}
			if dup {
				printPaths(r, enumerate.PermutationsWithDup(pool, r.options...))
			} else {
				printPaths(r, enumerate.Permutations(pool, r.options...))
			}
			return nil
		},
	}
	cmd.Flags().Bool(flagDup, false, "list each distinct ordering once when values repeat")
	cmd.Flags().Bool(flagStrings, false, "treat values as strings")
	return cmd
}

func NewSubsetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subsets <value>...",
		Short: "Lists every subset of the given values",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRun(cmd)
			if err != nil {
				return err
			}
			dup, _ := cmd.Flags().GetBool(flagDup)
			if strs, _ := cmd.Flags().GetBool(flagStrings); strs {
				if dup {
					printPaths(r, enumerate.SubsetsWithDup(args, r.options...))
				} else {
					printPaths(r, enumerate.Subsets(args, r.options...))
				}
				return nil
			}
			pool, err := parseInts(args)
			if err != nil {
				return err
			}
			if dup {
				printPaths(r, enumerate.SubsetsWithDup(pool, r.options...))
			} else {
				printPaths(r, enumerate.Subsets(pool, r.options...))
			}
			return nil
		},
	}
	cmd.Flags().Bool(flagDup, false, "list each distinct sub-multiset once when values repeat")
	cmd.Flags().Bool(flagStrings, false, "treat values as strings")
	return cmd
}

func NewPartitionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition <input>",
		Short: "Splits a string into valid segments in every possible way",
		Long: `Splits a string into valid segments in every possible way.
Modes:
  palindrome  every segment is a palindrome
  ip          four decimal octets, printed as dotted IPv4 addresses`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRun(cmd)
			if err != nil {
				return err
			}
			mode, _ := cmd.Flags().GetString("mode")
			switch mode {
			case "palindrome":
				parts, err := enumerate.Partition(args[0], enumerate.Palindromes, r.options...)
				if err != nil {
					return err
				}
				printPaths(r, parts)
			case "ip":
				printLines(r, enumerate.RestoreIPAddresses(args[0], r.options...))
			default:
				return fmt.Errorf("unknown partition mode %q", mode)
			}
			return nil
		},
	}
	cmd.Flags().String("mode", "palindrome", "segment validity rule: palindrome or ip")
	return cmd
}

func NewLettersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "letters <digits>",
		Short: "Lists every word a phone keypad could spell for the digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRun(cmd)
			if err != nil {
				return err
			}
			printLines(r, enumerate.LetterCombinations(args[0], r.options...))
			return nil
		},
	}
}
