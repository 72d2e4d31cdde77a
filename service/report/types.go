package report

import (
	"log/slog"
	"time"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/service/month"
)

// Clock returns the instant open snapshots are resolved against.
type Clock func() time.Time

type Options struct {
	Month       month.Window
	SkipInvalid bool
	StatesOnly  bool
}

type service struct {
	logger *slog.Logger
	clock  Clock
}

type ReportService interface {
	Build(raws []model.RawSnapshot, opts Options) (*model.Report, error)
	Prepare(raws []model.RawSnapshot, now time.Time, skipInvalid bool) ([]model.Snapshot, error)
	MonthReport(snapshots []model.Snapshot, window month.Window, now time.Time) (*model.MonthReport, error)
	StateReport(snapshots []model.Snapshot, now time.Time) (*model.StateReport, error)
}
