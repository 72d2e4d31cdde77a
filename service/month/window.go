// Package month selects and clips snapshots against a calendar month.
package month

import (
	"fmt"
	"time"

	"github.com/elC0mpa/flow-doctor/model"
)

const layout = "2006-01"

// Window is the half-open span of one UTC calendar month.
type Window struct {
	Start time.Time
	End   time.Time
}

func New(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}

// Parse reads a month in YYYY-MM form.
func Parse(value string) (Window, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Window{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", value, err)
	}
	return New(t.Year(), t.Month()), nil
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Overlaps reports whether [from, to) should be counted in the month: either
// bound falls inside the month, or the interval strictly contains it.
func (w Window) Overlaps(from, to time.Time) bool {
	if w.Contains(from) || w.Contains(to) {
		return true
	}
	return from.Before(w.Start) && to.After(w.End)
}

// Clip truncates [from, to) to the month bounds.
func (w Window) Clip(from, to time.Time) (time.Time, time.Time) {
	if from.Before(w.Start) {
		from = w.Start
	}
	if to.After(w.End) {
		to = w.End
	}
	return from, to
}

func (w Window) Interval() model.Interval {
	return model.Interval{Start: w.Start, End: w.End}
}

func (w Window) Name() string {
	return w.Start.Format("January 2006")
}

func (w Window) String() string {
	return w.Start.Format(layout)
}
