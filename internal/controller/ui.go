// Package controller provides output adapters for displaying merge progress
// and coverage summaries.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mergecov/mergecov/internal/model"
)

// UI defines the interface for reporting a merge run to the user.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// DisplayMergeStart announces the inputs about to be folded.
	DisplayMergeStart(inputs []m.Path, threads int)

	// DisplayFolded reports one input folded into the accumulator.
	DisplayFolded(input m.Path, folded, total int)

	// DisplayMergeResult delivers the finished document: to stdout when
	// output is empty, otherwise as a summary of what was written.
	DisplayMergeResult(report *m.CoverageReport, serialized []byte, output m.Path) error

	// DisplaySummary renders the per-package coverage table for a report.
	DisplaySummary(report *m.CoverageReport) error
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns a TUI (Bubble Tea), otherwise a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Returns
// false when the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
