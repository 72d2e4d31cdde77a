package report

import (
	"log/slog"
	"time"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/service/businesshours"
	"github.com/elC0mpa/flow-doctor/service/month"
	"github.com/elC0mpa/flow-doctor/service/snapshot"
	er "github.com/mcorbin/corbierror"
)

func NewService(logger *slog.Logger, clock Clock) *service {
	if clock == nil {
		clock = time.Now
	}
	return &service{
		logger: logger,
		clock:  clock,
	}
}

// Build runs both report passes over the same snapshots. The clock is read
// once, before anything else.
func (s *service) Build(raws []model.RawSnapshot, opts Options) (*model.Report, error) {
	now := s.clock().UTC()

	snapshots, err := s.Prepare(raws, now, opts.SkipInvalid)
	if err != nil {
		return nil, err
	}

	result := &model.Report{}
	if !opts.StatesOnly {
		result.Month, err = s.MonthReport(snapshots, opts.Month, now)
		if err != nil {
			return nil, err
		}
	}
	result.States, err = s.StateReport(snapshots, now)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Prepare validates every raw snapshot and resolves open ends against now.
// Invalid snapshots abort unless skipInvalid is set, in which case they are
// logged and dropped.
func (s *service) Prepare(raws []model.RawSnapshot, now time.Time, skipInvalid bool) ([]model.Snapshot, error) {
	snapshots := make([]model.Snapshot, 0, len(raws))
	skipped := 0
	for i, raw := range raws {
		parsed, err := snapshot.Parse(i, raw, now)
		if err != nil {
			if !skipInvalid {
				return nil, err
			}
			skipped++
			s.logger.Warn("skipping invalid snapshot", "error", err.Error())
			continue
		}
		snapshots = append(snapshots, parsed)
	}
	s.logger.Debug("snapshots prepared", "total", len(raws), "valid", len(snapshots), "skipped", skipped, "now", now)
	return snapshots, nil
}

// MonthReport sums, per work item, the time of every snapshot overlapping the
// month, clipped to the month bounds.
func (s *service) MonthReport(snapshots []model.Snapshot, window month.Window, now time.Time) (*model.MonthReport, error) {
	table := model.NewAggregateTable()
	for _, snap := range snapshots {
		record := snap.ItemRecord()
		from, to := record.Interval.Start, record.Interval.End
		if !window.Overlaps(from, to) {
			s.logger.Debug("snapshot outside month", "index", snap.Index, "object_id", snap.ObjectID, "interval", record.Interval.String())
			continue
		}
		from, to = window.Clip(from, to)
		if err := s.reduceInto(table, snap, record.Key, from, to); err != nil {
			return nil, err
		}
	}
	s.logger.Info("month report built", "month", window.String(), "items", table.Len())

	return &model.MonthReport{
		Month:       window.Interval(),
		GeneratedAt: now,
		Items:       table.Entries(),
	}, nil
}

// StateReport sums, per schedule state, the full time of every snapshot.
func (s *service) StateReport(snapshots []model.Snapshot, now time.Time) (*model.StateReport, error) {
	table := model.NewAggregateTable()
	for _, snap := range snapshots {
		record := snap.StateRecord()
		if err := s.reduceInto(table, snap, record.Key, record.Interval.Start, record.Interval.End); err != nil {
			return nil, err
		}
	}
	s.logger.Info("state report built", "states", table.Len())

	return &model.StateReport{
		GeneratedAt: now,
		States:      table.Entries(),
	}, nil
}

func (s *service) reduceInto(table *model.AggregateTable, snap model.Snapshot, key string, from, to time.Time) error {
	result, err := businesshours.Reduce(from, to)
	if err != nil {
		return er.Newf("snapshot %d (ObjectID %s, _ValidFrom %q, _ValidTo %q): %s", er.BadRequest, true,
			snap.Index, snap.ObjectID, snap.Raw.ValidFrom, snap.Raw.ValidTo, err.Error())
	}
	table.Upsert(key, result.TotalMS, result.BusinessMS)
	return nil
}
