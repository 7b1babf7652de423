// Package cmd provides the root command and CLI setup for mergecov.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mergecov/mergecov/internal/adapter"
	"github.com/mergecov/mergecov/internal/controller"
	"github.com/mergecov/mergecov/internal/domain"
	m "github.com/mergecov/mergecov/internal/model"
)

var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(reportStore, ui)
}

var outputFlag string
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mergecov [reports...]",
		Short: "Merge sharded Cobertura coverage reports",
		Long: `Mergecov consolidates Cobertura coverage reports produced by sharded
test runs (parallel CI jobs, multiple suites) into a single report.

Line hits are summed, branch coverage is merged optimistically (the
highest condition coverage wins), and every line-rate and branch-rate
is recomputed from the merged data. The merged document goes to stdout
unless --output names a file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			mergeArgs, err := resolveMergeArgs(c, args, outputFlag, parallelFlag)
			if err != nil {
				return err
			}

			return workflow.Merge(c.Context(), mergeArgs)
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write the merged report to FILE instead of stdout")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for reading input reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveMergeArgs combines CLI args with the optional config file.
// Explicitly set flags always win over config values.
func resolveMergeArgs(cmd *cobra.Command, args []string, output string, parallel int) (domain.MergeArgs, error) {
	cfg, err := adapter.LoadConfig(".")
	if err != nil {
		return domain.MergeArgs{}, err
	}

	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		output = cfg.Output
	}

	if !cmd.Flags().Changed("parallel") && cfg.Parallel > 0 {
		parallel = cfg.Parallel
	}

	if cfg.Quiet {
		if simple, ok := ui.(*controller.SimpleUI); ok {
			simple.SetQuiet(true)
		}
	}

	inputs := make([]m.Path, 0, len(args))
	for _, arg := range args {
		inputs = append(inputs, m.Path(arg))
	}

	return domain.MergeArgs{
		Inputs:  inputs,
		Output:  m.Path(output),
		Threads: parallel,
	}, nil
}
