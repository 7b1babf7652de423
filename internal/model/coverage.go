package model

import (
	"regexp"
	"strconv"
	"strings"
)

// conditionFraction matches the "(covered/total)" tail of a
// condition-coverage string such as "50% (1/2)".
var conditionFraction = regexp.MustCompile(`\((\d+)/(\d+)\)`)

// ParseConditionFraction extracts the covered/total pair from a
// condition-coverage string. An absent or unparseable value yields (0, 0).
func ParseConditionFraction(cc string) (covered, total int) {
	match := conditionFraction.FindStringSubmatch(cc)
	if match == nil {
		return 0, 0
	}

	covered, _ = strconv.Atoi(match[1])
	total, _ = strconv.Atoi(match[2])

	return covered, total
}

// ConditionPercent returns the leading percentage of a condition-coverage
// string. An absent or unparseable value returns -1, which is lower than any
// real percentage so any valid value wins a comparison against it.
func ConditionPercent(cc string) float64 {
	head, _, found := strings.Cut(cc, "%")
	if !found {
		return -1
	}

	percent, err := strconv.ParseFloat(strings.TrimSpace(head), 64)
	if err != nil {
		return -1
	}

	return percent
}

// ParseHits decodes a hits attribute. A missing or unparseable value counts
// as zero.
func ParseHits(hits string) int {
	n, err := strconv.Atoi(strings.TrimSpace(hits))
	if err != nil {
		return 0
	}

	return n
}

// FormatHits renders a hit count back into attribute form.
func FormatHits(hits int) string {
	return strconv.Itoa(hits)
}

// FormatRate renders covered/total as a rate attribute: "0" when the
// denominator is empty, otherwise the shortest round-trippable decimal with
// a forced fractional part ("1.0" rather than "1") so output diffs cleanly
// against reports produced by other Cobertura tooling.
func FormatRate(covered, total int) string {
	if total <= 0 {
		return "0"
	}

	s := strconv.FormatFloat(float64(covered)/float64(total), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// Tally accumulates line and branch totals for one subtree. Package and
// report rates are computed from summed tallies, not from averaged child
// rates, so totals weight correctly.
type Tally struct {
	TotalLines      int
	CoveredLines    int
	TotalBranches   int
	CoveredBranches int
}

// Add folds another tally into this one.
func (t *Tally) Add(other Tally) {
	t.TotalLines += other.TotalLines
	t.CoveredLines += other.CoveredLines
	t.TotalBranches += other.TotalBranches
	t.CoveredBranches += other.CoveredBranches
}

// LineRate renders the tally's line rate attribute value.
func (t Tally) LineRate() string {
	return FormatRate(t.CoveredLines, t.TotalLines)
}

// BranchRate renders the tally's branch rate attribute value.
func (t Tally) BranchRate() string {
	return FormatRate(t.CoveredBranches, t.TotalBranches)
}
