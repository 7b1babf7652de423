package controller

import (
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mergecov/mergecov/internal/model"
)

var (
	tuiHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tuiPathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	tuiGoodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	tuiWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	tuiBadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// TUI implements UI using Bubble Tea for interactive display. The progress
// model renders on stderr so stdout stays clean for the merged document.
type TUI struct {
	out     io.Writer
	errOut  io.Writer
	program *tea.Program
}

// NewTUI creates a new TUI.
func NewTUI(out, errOut io.Writer) *TUI {
	return &TUI{out: out, errOut: errOut}
}

// DisplayMergeStart launches the fold-progress program.
func (t *TUI) DisplayMergeStart(inputs []m.Path, _ int) {
	t.program = tea.NewProgram(newMergeModel(len(inputs)), tea.WithOutput(t.errOut))

	go func() {
		_, _ = t.program.Run()
	}()
}

// DisplayFolded advances the progress bar by one folded input.
func (t *TUI) DisplayFolded(input m.Path, folded, total int) {
	if t.program == nil {
		return
	}

	t.program.Send(foldedMsg{input: input, folded: folded, total: total})
}

// DisplayMergeResult finishes the progress display, then delivers the
// document to stdout or prints the destination and summary.
func (t *TUI) DisplayMergeResult(report *m.CoverageReport, serialized []byte, output m.Path) error {
	t.finishProgress()

	if output == "" {
		_, err := t.out.Write(serialized)

		return err
	}

	_, _ = fmt.Fprintf(t.errOut, "Wrote %s\n", tuiPathStyle.Render(string(output)))

	return t.DisplaySummary(report)
}

// DisplaySummary renders a styled per-package coverage listing.
func (t *TUI) DisplaySummary(report *m.CoverageReport) error {
	_, _ = fmt.Fprintf(t.out, "\n%s\n", tuiHeaderStyle.Render("Package coverage"))

	for _, pkg := range report.Packages.Package {
		classes := 0
		if pkg.Classes != nil {
			classes = len(pkg.Classes.Class)
		}

		_, _ = fmt.Fprintf(t.out, "  %s  %d class(es)  line %s  branch %s\n",
			tuiPathStyle.Render(pkg.Name),
			classes,
			styleRate(pkg.LineRate),
			styleRate(pkg.BranchRate),
		)
	}

	_, _ = fmt.Fprintf(t.out, "%s  line %s  branch %s\n",
		tuiHeaderStyle.Render("Total"),
		styleRate(report.LineRate),
		styleRate(report.BranchRate),
	)

	return nil
}

func (t *TUI) finishProgress() {
	if t.program == nil {
		return
	}

	t.program.Send(mergeDoneMsg{})
	t.program.Wait()
	t.program = nil
}

// styleRate colors a rate attribute value by coverage band.
func styleRate(rate string) string {
	value, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return rate
	}

	switch {
	case value >= 0.8:
		return tuiGoodStyle.Render(rate)
	case value >= 0.5:
		return tuiWarnStyle.Render(rate)
	default:
		return tuiBadStyle.Render(rate)
	}
}
