// Package psplib parses the PSPLIB textual problem format (the ".sm"
// single-mode project scheduling benchmark files) and converts a parsed
// Problem into project.BuildInput, the seam project.New actually consumes.
//
// This is an external collaborator relative to the core scheduling
// packages: nothing in project, schedule, neighborhood, tabulist, or
// search imports psplib.
package psplib

import "errors"

// ErrMalformed is returned by Parse when a required section is missing or
// a numeric field fails to parse.
var ErrMalformed = errors.New("psplib: malformed input")

// ResourceCounts is the RESOURCES block: how many of the problem's total
// resource columns are renewable, nonrenewable, or doubly constrained.
type ResourceCounts struct {
	Renewable, Nonrenewable, DoublyConstrained int
}

// ProjectInfo is one row of the PROJECT INFORMATION section.
type ProjectInfo struct {
	Number, Jobs, RelativeDate, DueDate, TardCost, MPMTime int
}

// PrecedenceRelation is one row of the PRECEDENCE RELATIONS section.
// JobNumber and Successors are 1-indexed, as PSPLIB source files number
// jobs starting at 1.
type PrecedenceRelation struct {
	JobNumber, ModeCount, SuccessorCount int
	Successors                          []int
}

// RequestDuration is one row of the REQUESTS/DURATIONS section: a job's
// (mode's) duration and its demand on each of up to four resource columns.
type RequestDuration struct {
	JobNumber, Mode, Duration int
	R1, R2, R3, R4            int
}

// ResourceAvailability is the RESOURCEAVAILABILITIES section.
type ResourceAvailability struct {
	R1, R2, R3, R4 int
}

// Problem is a fully parsed PSPLIB instance.
type Problem struct {
	FileWithBasedata string
	InitialRNG       int

	Projects  int
	Jobs      int
	Horizon   int
	Resources ResourceCounts

	ProjectInfo            []ProjectInfo
	PrecedenceRelations    []PrecedenceRelation
	RequestDurations       []RequestDuration
	ResourceAvailabilities ResourceAvailability
}
