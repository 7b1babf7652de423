// Package model defines the data structures for Cobertura coverage reports.
package model

import "encoding/xml"

// CoverageReport is the root <coverage> element of a Cobertura document.
//
// Rate and timestamp attributes are carried as raw strings: whatever the
// input declared is stale by definition and gets rewritten after the merge,
// so there is nothing to gain from decoding them into numbers up front.
type CoverageReport struct {
	XMLName    xml.Name `xml:"coverage"`
	LineRate   string   `xml:"line-rate,attr,omitempty"`
	BranchRate string   `xml:"branch-rate,attr,omitempty"`
	Timestamp  string   `xml:"timestamp,attr,omitempty"`
	Version    string   `xml:"version,attr,omitempty"`
	Sources    *Sources `xml:"sources"`
	Packages   Packages `xml:"packages"`
}

// Sources is the <sources> container. It stays a pointer on the report so a
// document without one can be told apart from one with an empty container.
type Sources struct {
	Source []Source `xml:"source"`
}

// Source is a single filesystem root entry. Unique by exact text within a
// report; first occurrence across a merge sequence wins positionally.
type Source struct {
	Value string `xml:",chardata"`
}

// Packages is the <packages> container.
type Packages struct {
	Package []*Package `xml:"package"`
}

// Package groups the classes of one package. Unique by name within a report.
type Package struct {
	Name       string   `xml:"name,attr"`
	LineRate   string   `xml:"line-rate,attr,omitempty"`
	BranchRate string   `xml:"branch-rate,attr,omitempty"`
	Complexity string   `xml:"complexity,attr,omitempty"`
	Classes    *Classes `xml:"classes"`
}

// Classes is the <classes> container.
type Classes struct {
	Class []*Class `xml:"class"`
}

// Class holds the per-line coverage of one source file. Its filename is
// unique across the whole report, not just within its owning package.
type Class struct {
	Name       string `xml:"name,attr"`
	Filename   string `xml:"filename,attr"`
	LineRate   string `xml:"line-rate,attr,omitempty"`
	BranchRate string `xml:"branch-rate,attr,omitempty"`
	Complexity string `xml:"complexity,attr,omitempty"`
	Lines      *Lines `xml:"lines"`
}

// Lines is the <lines> container.
type Lines struct {
	Line []*Line `xml:"line"`
}

// Line is one source line's coverage. Hits and branch are kept as strings so
// a missing or garbled attribute degrades to zero instead of failing the
// whole document decode.
type Line struct {
	Number            string      `xml:"number,attr"`
	Hits              string      `xml:"hits,attr,omitempty"`
	Branch            string      `xml:"branch,attr,omitempty"`
	ConditionCoverage string      `xml:"condition-coverage,attr,omitempty"`
	Conditions        *Conditions `xml:"conditions"`
}

// IsBranch reports whether the line carries branch coverage.
func (l *Line) IsBranch() bool {
	return l.Branch == "true"
}

// Conditions is the <conditions> container. The merge treats it as an opaque
// unit: it is replaced wholesale, never combined element by element.
type Conditions struct {
	Condition []Condition `xml:"condition"`
}

// Condition is an opaque per-branch payload carried along with its line.
type Condition struct {
	Number   string `xml:"number,attr,omitempty"`
	Type     string `xml:"type,attr,omitempty"`
	Coverage string `xml:"coverage,attr,omitempty"`
}
