package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// RawSnapshot is one snapshot as exported by the tracking tool, before any
// parsing or validation.
type RawSnapshot struct {
	ObjectID      SnapshotID `json:"ObjectID"`
	ScheduleState string     `json:"ScheduleState"`
	ValidFrom     string     `json:"_ValidFrom"`
	ValidTo       string     `json:"_ValidTo"`
}

// SnapshotID accepts both numeric and string object identifiers.
type SnapshotID string

func (id *SnapshotID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SnapshotID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ObjectID must be a string or a number: %w", err)
	}
	*id = SnapshotID(n.String())
	return nil
}

// Interval is the half-open span [Start, End) in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Millis is the span length in whole milliseconds.
func (i Interval) Millis() int64 {
	return i.End.UnixMilli() - i.Start.UnixMilli()
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339Nano), i.End.Format(time.RFC3339Nano))
}

// Snapshot is a validated snapshot. Open snapshots already have their end
// resolved against the report clock.
type Snapshot struct {
	Index    int
	ObjectID string
	State    string
	Interval Interval
	Open     bool
	Raw      RawSnapshot
}

// Record is the shape consumed by the reducer and the aggregator.
type Record struct {
	Key      string
	Interval Interval
}

func (s Snapshot) ItemRecord() Record {
	return Record{Key: s.ObjectID, Interval: s.Interval}
}

func (s Snapshot) StateRecord() Record {
	return Record{Key: s.State, Interval: s.Interval}
}
