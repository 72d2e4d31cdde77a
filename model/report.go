package model

import "time"

// MonthReport contains the time spent on each work item active during a month.
type MonthReport struct {
	Month       Interval
	GeneratedAt time.Time
	Items       []AggregateEntry
}

// StateReport contains the time spent in each schedule state across every
// snapshot, unclipped.
type StateReport struct {
	GeneratedAt time.Time
	States      []AggregateEntry
}

// Report is the outcome of a full run over one snapshot set.
type Report struct {
	Source *SourceInfo
	Month  *MonthReport
	States *StateReport
}
