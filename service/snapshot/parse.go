package snapshot

import (
	"strings"
	"time"

	"github.com/elC0mpa/flow-doctor/model"
	er "github.com/mcorbin/corbierror"
)

// OpenYear marks a _ValidTo that is still current.
const OpenYear = 9999

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp reads an ISO-8601 instant. Instants without a zone are UTC.
// The result is truncated to the millisecond.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC().Truncate(time.Millisecond), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// IsOpen reports whether t is the "still active" sentinel.
func IsOpen(t time.Time) bool {
	return t.UTC().Year() == OpenYear
}

// Parse validates one raw snapshot. An open _ValidTo is replaced by now.
func Parse(index int, raw model.RawSnapshot, now time.Time) (model.Snapshot, error) {
	id := strings.TrimSpace(string(raw.ObjectID))
	if id == "" {
		return model.Snapshot{}, er.Newf("snapshot %d: missing ObjectID", er.BadRequest, true, index)
	}
	state := strings.TrimSpace(raw.ScheduleState)
	if state == "" {
		return model.Snapshot{}, er.Newf("snapshot %d (ObjectID %s): missing ScheduleState", er.BadRequest, true, index, id)
	}
	from, err := ParseTimestamp(raw.ValidFrom)
	if err != nil {
		return model.Snapshot{}, er.Newf("snapshot %d (ObjectID %s): invalid _ValidFrom %q: %s", er.BadRequest, true, index, id, raw.ValidFrom, err.Error())
	}
	to, err := ParseTimestamp(raw.ValidTo)
	if err != nil {
		return model.Snapshot{}, er.Newf("snapshot %d (ObjectID %s): invalid _ValidTo %q: %s", er.BadRequest, true, index, id, raw.ValidTo, err.Error())
	}

	open := IsOpen(to)
	if open {
		to = now.UTC().Truncate(time.Millisecond)
	}
	if to.Before(from) {
		return model.Snapshot{}, er.Newf("snapshot %d (ObjectID %s): interval [%s, %s) ends before it starts", er.BadRequest, true, index, id, raw.ValidFrom, raw.ValidTo)
	}

	return model.Snapshot{
		Index:    index,
		ObjectID: id,
		State:    state,
		Interval: model.Interval{Start: from, End: to},
		Open:     open,
		Raw:      raw,
	}, nil
}
