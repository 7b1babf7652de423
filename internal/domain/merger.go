// Package domain implements the Cobertura merge engine: folding report
// trees into a single accumulator and recomputing aggregate rates.
package domain

import (
	"strconv"
	"time"

	m "github.com/mergecov/mergecov/internal/model"
)

// Merger folds successive coverage reports into a single mutable
// accumulator. It keeps a lookup index over the accumulator so classes are
// found by filename across the whole report in O(1), no matter which
// package currently owns them. The index is built once and updated on every
// insertion; it persists across the whole fold sequence.
type Merger struct {
	report   *m.CoverageReport
	classes  map[string]*m.Class
	packages map[string]*m.Package
}

// NewMerger wraps the first report as the accumulator and indexes it. The
// accumulator is mutated by every Fold; the caller must not hand the report
// to anything else until Finalize.
func NewMerger(base *m.CoverageReport) *Merger {
	mg := &Merger{
		report:   base,
		classes:  make(map[string]*m.Class),
		packages: make(map[string]*m.Package),
	}

	for _, pkg := range base.Packages.Package {
		mg.packages[pkg.Name] = pkg

		if pkg.Classes == nil {
			continue
		}

		for _, cls := range pkg.Classes.Class {
			mg.classes[cls.Filename] = cls
		}
	}

	return mg
}

// Report exposes the accumulator. It reflects all folds applied so far.
func (mg *Merger) Report() *m.CoverageReport {
	return mg.report
}

// Fold merges one incoming report into the accumulator: source roots first,
// then every class, package by package, in document order.
func (mg *Merger) Fold(incoming *m.CoverageReport) {
	mg.mergeSources(incoming)

	for _, pkg := range incoming.Packages.Package {
		// Structurally empty packages are carried over by name; everything
		// else is driven by the classes, which create packages on demand.
		if pkg.Classes == nil || len(pkg.Classes.Class) == 0 {
			mg.ensurePackage(pkg.Name)

			continue
		}

		for _, cls := range pkg.Classes.Class {
			mg.mergeClass(pkg.Name, cls)
		}
	}
}

// mergeSources appends any incoming source root whose text is not already
// present. Exact string match, first occurrence wins positionally. A report
// without a sources container gains one, positioned before packages.
func (mg *Merger) mergeSources(incoming *m.CoverageReport) {
	if mg.report.Sources == nil {
		mg.report.Sources = &m.Sources{}
	}

	if incoming.Sources == nil {
		return
	}

	seen := make(map[string]struct{}, len(mg.report.Sources.Source))
	for _, src := range mg.report.Sources.Source {
		seen[src.Value] = struct{}{}
	}

	for _, src := range incoming.Sources.Source {
		if _, ok := seen[src.Value]; ok {
			continue
		}

		mg.report.Sources.Source = append(mg.report.Sources.Source, src)
		seen[src.Value] = struct{}{}
	}
}

// mergeClass inserts an incoming class under its owning package, creating
// the package on demand, or merges it line by line into the existing class
// of the same filename.
func (mg *Merger) mergeClass(packageName string, incoming *m.Class) {
	base, ok := mg.classes[incoming.Filename]
	if !ok {
		pkg := mg.ensurePackage(packageName)
		if pkg.Classes == nil {
			pkg.Classes = &m.Classes{}
		}

		// The class moves in verbatim, lines and conditions included.
		pkg.Classes.Class = append(pkg.Classes.Class, incoming)
		mg.classes[incoming.Filename] = incoming

		return
	}

	mg.mergeLines(base, incoming)
}

// ensurePackage returns the accumulator's package of the given name,
// creating and indexing it when absent.
func (mg *Merger) ensurePackage(name string) *m.Package {
	if pkg, ok := mg.packages[name]; ok {
		return pkg
	}

	pkg := &m.Package{Name: name, Classes: &m.Classes{}}
	mg.report.Packages.Package = append(mg.report.Packages.Package, pkg)
	mg.packages[name] = pkg

	return pkg
}

// mergeLines combines the incoming class's lines into the base class,
// keyed by line number. Lines unknown to the base are inserted verbatim.
func (mg *Merger) mergeLines(base, incoming *m.Class) {
	if incoming.Lines == nil {
		return
	}

	byNumber := make(map[string]*m.Line)
	if base.Lines != nil {
		for _, line := range base.Lines.Line {
			byNumber[line.Number] = line
		}
	}

	for _, line := range incoming.Lines.Line {
		existing, ok := byNumber[line.Number]
		if !ok {
			if base.Lines == nil {
				base.Lines = &m.Lines{}
			}

			base.Lines.Line = append(base.Lines.Line, line)
			byNumber[line.Number] = line

			continue
		}

		mergeLine(existing, line)
	}
}

// mergeLine applies the combination rules in order: hit summation, sticky
// branch promotion, optimistic condition-coverage replacement. On an exact
// percentage tie the base keeps its value and its conditions.
func mergeLine(base, incoming *m.Line) {
	base.Hits = m.FormatHits(m.ParseHits(base.Hits) + m.ParseHits(incoming.Hits))

	if !incoming.IsBranch() {
		return
	}

	base.Branch = "true"

	if m.ConditionPercent(incoming.ConditionCoverage) > m.ConditionPercent(base.ConditionCoverage) {
		if incoming.ConditionCoverage != "" {
			base.ConditionCoverage = incoming.ConditionCoverage
		}

		// Conditions are an opaque unit: replaced wholesale, never blended.
		base.Conditions = incoming.Conditions
	}
}

// Finalize stamps the merge completion time on the accumulator, overwriting
// whatever any input declared.
func (mg *Merger) Finalize(now time.Time) {
	mg.report.Timestamp = strconv.FormatInt(now.Unix(), 10)
}
