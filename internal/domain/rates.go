package domain

import (
	m "github.com/mergecov/mergecov/internal/model"
)

// Recalculate walks the accumulator bottom-up and rewrites every line-rate
// and branch-rate attribute from the merged line data. Rates present in any
// input are stale and never consulted.
func (mg *Merger) Recalculate() {
	var total m.Tally

	for _, pkg := range mg.report.Packages.Package {
		total.Add(recalculatePackage(pkg))
	}

	mg.report.LineRate = total.LineRate()
	mg.report.BranchRate = total.BranchRate()
}

func recalculatePackage(pkg *m.Package) m.Tally {
	var tally m.Tally

	if pkg.Classes != nil {
		for _, cls := range pkg.Classes.Class {
			tally.Add(recalculateClass(cls))
		}
	}

	pkg.LineRate = tally.LineRate()
	pkg.BranchRate = tally.BranchRate()

	return tally
}

func recalculateClass(cls *m.Class) m.Tally {
	var tally m.Tally

	if cls.Lines != nil {
		for _, line := range cls.Lines.Line {
			tally.TotalLines++

			if m.ParseHits(line.Hits) > 0 {
				tally.CoveredLines++
			}

			if line.IsBranch() {
				covered, total := m.ParseConditionFraction(line.ConditionCoverage)
				tally.CoveredBranches += covered
				tally.TotalBranches += total
			}
		}
	}

	cls.LineRate = tally.LineRate()
	cls.BranchRate = tally.BranchRate()

	return tally
}
