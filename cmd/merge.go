package cmd

import (
	"github.com/spf13/cobra"
)

var mergeOutputFlag string
var mergeParallelFlag int

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [reports...]",
		Short: "Merge coverage reports into one document",
		Long: `Merge folds the given Cobertura reports, in order, into the first one:

  - source roots are unioned, first occurrence wins
  - per-line hit counts are summed
  - branch coverage is merged optimistically per line
  - all rates are recomputed bottom-up from the merged lines

The result is stamped with the merge completion time and written to
stdout, or to the file named by --output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			mergeArgs, err := resolveMergeArgs(c, args, mergeOutputFlag, mergeParallelFlag)
			if err != nil {
				return err
			}

			return workflow.Merge(c.Context(), mergeArgs)
		},
	}
	cmd.Flags().StringVarP(&mergeOutputFlag, "output", "o", "", "write the merged report to FILE instead of stdout")
	cmd.Flags().IntVarP(&mergeParallelFlag, "parallel", "p", 1, "number of parallel workers for reading input reports")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
