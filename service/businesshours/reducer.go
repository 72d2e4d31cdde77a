package businesshours

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("invalid interval: end is before start")

const week = 7 * 24 * time.Hour

// steps is ordered from largest to smallest. The reducer always takes the
// largest step that does not overshoot the end of the interval, so a
// multi-year interval costs one iteration per week plus a handful for the
// remainder.
var steps = []time.Duration{
	week,
	24 * time.Hour,
	time.Hour,
	time.Minute,
	time.Second,
	time.Millisecond,
}

// Result holds the elapsed milliseconds of one interval and the part of them
// spent in business hours. Milliseconds keep multi-century spans in range.
type Result struct {
	TotalMS    int64
	BusinessMS int64
}

// Reduce walks [from, to) and returns its total and business-hours
// milliseconds. Bounds are truncated to the millisecond.
//
// Every week-sized step is credited a flat 40 hours without looking at where
// the cursor sits in the week. Day steps are classified from their two end
// points only, so a day step that starts and ends outside business hours
// contributes nothing even if it spans a whole business window (Sunday 20:00
// to Monday 20:00, Friday 07:00 to Saturday 07:00). Splitting an interval can
// therefore change its business time when the split moves the phase of the
// week and day steps.
func Reduce(from, to time.Time) (Result, error) {
	from = from.UTC().Truncate(time.Millisecond)
	to = to.UTC().Truncate(time.Millisecond)
	if to.Before(from) {
		return Result{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano))
	}

	var business int64
	cursor := from
	for {
		step, ok := largestStep(cursor, to)
		if !ok {
			break
		}
		next := cursor.Add(step)
		switch step {
		case week:
			business += businessWeek.Milliseconds()
		case 24 * time.Hour:
			business += dayStep(cursor, next).Milliseconds()
		case time.Millisecond:
			if IsBusinessInstant(next) {
				business++
			}
		default:
			business += partialStep(cursor, next, step).Milliseconds()
		}
		cursor = next
	}

	return Result{
		TotalMS:    to.UnixMilli() - from.UnixMilli(),
		BusinessMS: business,
	}, nil
}

func largestStep(cursor, to time.Time) (time.Duration, bool) {
	for _, step := range steps {
		if !cursor.Add(step).After(to) {
			return step, true
		}
	}
	return 0, false
}

func dayStep(cursor, next time.Time) time.Duration {
	if IsBusinessDay(cursor) && IsBusinessDay(next) {
		return businessDay
	}
	startIn, endIn := IsBusinessInstant(cursor), IsBusinessInstant(next)
	switch {
	case startIn && !endIn:
		return UntilClosing(cursor)
	case !startIn && endIn:
		return SinceOpening(next)
	}
	return 0
}

// partialStep handles hour, minute and second steps.
func partialStep(cursor, next time.Time, step time.Duration) time.Duration {
	startIn, endIn := IsBusinessInstant(cursor), IsBusinessInstant(next)
	switch {
	case startIn && endIn:
		return step
	case startIn:
		return UntilClosing(cursor)
	case endIn:
		return SinceOpening(next)
	}
	return 0
}
