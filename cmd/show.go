package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mergecov/mergecov/internal/domain"
	m "github.com/mergecov/mergecov/internal/model"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <report>",
		Short: "Show the package coverage of a single report",
		Long: `Show parses one Cobertura report and prints its per-package line and
branch rates, derived from the line data rather than the rate
attributes stored in the file. The report is not modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Inspect(c.Context(), domain.InspectArgs{
				Input: m.Path(args[0]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
