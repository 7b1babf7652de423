package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mergecov/mergecov/internal/adapter"
	"github.com/mergecov/mergecov/internal/controller"
	m "github.com/mergecov/mergecov/internal/model"
)

// ErrNoInput is returned when a merge is requested without any report files.
// It fails before any file is touched.
var ErrNoInput = errors.New("at least one cobertura report is required")

// MergeArgs carries everything one merge run needs.
type MergeArgs struct {
	// Inputs is the ordered list of report references. The first becomes
	// the accumulator; the rest are folded in sequence.
	Inputs []m.Path
	// Output is where the merged document is written. Empty means stdout.
	Output m.Path
	// Threads bounds concurrent input loading. The fold itself is
	// strictly sequential.
	Threads int
}

// InspectArgs identifies a single report to summarize.
type InspectArgs struct {
	Input m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Merge(ctx context.Context, args MergeArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
}

type workflow struct {
	store adapter.ReportStore
	ui    controller.UI
	now   func() time.Time
}

// NewWorkflow creates a Workflow wired to the provided store and UI.
func NewWorkflow(store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{store: store, ui: ui, now: time.Now}
}

// Merge runs the whole pipeline: load every input, fold them in file-list
// order into the first report, recompute all rates bottom-up, stamp the
// completion time, and hand the serialized document to the UI or the store.
// Any structural failure aborts the run with no output produced.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	if len(args.Inputs) == 0 {
		return ErrNoInput
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	reports, err := w.loadAll(ctx, args.Inputs, threads)
	if err != nil {
		return err
	}

	w.ui.DisplayMergeStart(args.Inputs, threads)

	merger := NewMerger(reports[0])
	for i, incoming := range reports[1:] {
		merger.Fold(incoming)
		w.ui.DisplayFolded(args.Inputs[i+1], i+2, len(reports))
	}

	merger.Recalculate()
	merger.Finalize(w.now())

	serialized, err := adapter.EncodeReport(merger.Report())
	if err != nil {
		return err
	}

	if args.Output != "" {
		if err := w.store.Save(ctx, args.Output, serialized); err != nil {
			return err
		}
	}

	return w.ui.DisplayMergeResult(merger.Report(), serialized, args.Output)
}

// Inspect loads one report, derives its rates from the line data, and shows
// the per-package summary. The input file is never modified.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	report, err := w.store.Load(ctx, args.Input)
	if err != nil {
		return err
	}

	NewMerger(report).Recalculate()

	return w.ui.DisplaySummary(report)
}

// loadAll parses the inputs concurrently but keeps them in argument order,
// so the fold stays deterministic regardless of read completion order.
func (w *workflow) loadAll(ctx context.Context, inputs []m.Path, threads int) ([]*m.CoverageReport, error) {
	reports := make([]*m.CoverageReport, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range inputs {
		g.Go(func() error {
			report, err := w.store.Load(ctx, path)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
