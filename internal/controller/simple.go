package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mergecov/mergecov/internal/model"
)

// SimpleUI implements UI with plain text through a cobra Command. Progress
// goes to stderr so the merged document can be piped from stdout.
type SimpleUI struct {
	cmd   *cobra.Command
	quiet bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// SetQuiet suppresses progress messages. Summaries and stdout documents are
// still produced.
func (s *SimpleUI) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// DisplayMergeStart announces the inputs about to be folded.
func (s *SimpleUI) DisplayMergeStart(inputs []m.Path, threads int) {
	s.eprintf("Merging %d reports with %d worker(s)\n", len(inputs), threads)
}

// DisplayFolded reports one input folded into the accumulator.
func (s *SimpleUI) DisplayFolded(input m.Path, folded, total int) {
	s.eprintf("Folded %s (%d/%d)\n", input, folded, total)
}

// DisplayMergeResult writes the serialized report to stdout when no output
// path was requested, otherwise prints the destination and a summary table.
func (s *SimpleUI) DisplayMergeResult(report *m.CoverageReport, serialized []byte, output m.Path) error {
	if output == "" {
		_, err := s.cmd.OutOrStdout().Write(serialized)

		return err
	}

	s.eprintf("Wrote %s\n", output)

	return s.DisplaySummary(report)
}

// DisplaySummary renders the per-package coverage table.
func (s *SimpleUI) DisplaySummary(report *m.CoverageReport) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Package", "Classes", "Line Rate", "Branch Rate"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, pkg := range report.Packages.Package {
		classes := 0
		if pkg.Classes != nil {
			classes = len(pkg.Classes.Class)
		}

		table.Append([]string{pkg.Name, fmt.Sprintf("%d", classes), pkg.LineRate, pkg.BranchRate})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Packages %d", len(report.Packages.Package)),
		"",
		report.LineRate,
		report.BranchRate,
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) eprintf(format string, args ...any) {
	if s.quiet {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
