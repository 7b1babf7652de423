package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mergecov/mergecov/internal/model"
)

const maxBarWidth = 60

// foldedMsg reports one input absorbed into the accumulator.
type foldedMsg struct {
	input  m.Path
	folded int
	total  int
}

// mergeDoneMsg tells the model the fold sequence is complete.
type mergeDoneMsg struct{}

// mergeModel renders fold progress as a bar plus the current input path.
type mergeModel struct {
	bar     progress.Model
	total   int
	folded  int
	current m.Path
	done    bool
}

func newMergeModel(total int) mergeModel {
	return mergeModel{
		bar:    progress.New(progress.WithDefaultGradient()),
		total:  total,
		folded: 1, // the first input is the accumulator itself
	}
}

func (mm mergeModel) Init() tea.Cmd {
	return nil
}

func (mm mergeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return mm, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > maxBarWidth {
			width = maxBarWidth
		}

		if width > 0 {
			mm.bar.Width = width
		}

		return mm, nil

	case foldedMsg:
		mm.folded = msg.folded
		mm.total = msg.total
		mm.current = msg.input

		if msg.total > 0 {
			return mm, mm.bar.SetPercent(float64(msg.folded) / float64(msg.total))
		}

		return mm, nil

	case mergeDoneMsg:
		mm.done = true

		return mm, tea.Sequence(mm.bar.SetPercent(1), tea.Quit)

	case progress.FrameMsg:
		barModel, cmd := mm.bar.Update(msg)
		mm.bar = barModel.(progress.Model)

		return mm, cmd
	}

	return mm, nil
}

func (mm mergeModel) View() string {
	status := fmt.Sprintf("folded %d/%d", mm.folded, mm.total)
	if mm.current != "" {
		status += "  " + tuiPathStyle.Render(string(mm.current))
	}

	if mm.done {
		status = tuiGoodStyle.Render("merge complete")
	}

	return fmt.Sprintf("%s\n%s\n%s\n",
		tuiHeaderStyle.Render("Merging coverage reports"),
		mm.bar.View(),
		status,
	)
}
