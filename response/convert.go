package response

import (
	"time"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/utils"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ConvertSourceInfo converts model.SourceInfo to response.SourceInfo
func ConvertSourceInfo(info *model.SourceInfo) *SourceInfo {
	if info == nil {
		return nil
	}
	return &SourceInfo{
		Provider:    info.Provider,
		Location:    info.Location,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertEntries keeps the input order. Entries are never dropped here, only
// the table renderer hides empty rows.
func ConvertEntries(entries []model.AggregateEntry) []Entry {
	result := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, Entry{
			Key:        entry.Key,
			TotalMS:    entry.TotalMS,
			BusinessMS: entry.BusinessMS,
			Total:      utils.FormatDuration(entry.TotalMS),
			Business:   utils.FormatDuration(entry.BusinessMS),
		})
	}
	return result
}

func ConvertMonthReport(report *model.MonthReport) *MonthReport {
	if report == nil {
		return nil
	}
	return &MonthReport{
		Month:       report.Month.Start.Format("2006-01"),
		Start:       formatTimestamp(report.Month.Start),
		End:         formatTimestamp(report.Month.End),
		ItemsActive: len(report.Items),
		Items:       ConvertEntries(report.Items),
	}
}

func ConvertStateReport(report *model.StateReport) *StateReport {
	if report == nil {
		return nil
	}
	return &StateReport{
		StateCount: len(report.States),
		States:     ConvertEntries(report.States),
	}
}

// ConvertReport builds the export document. GeneratedAt comes from whichever
// pass ran, both share the same instant.
func ConvertReport(report *model.Report) *Report {
	if report == nil {
		return nil
	}

	var generatedAt time.Time
	switch {
	case report.States != nil:
		generatedAt = report.States.GeneratedAt
	case report.Month != nil:
		generatedAt = report.Month.GeneratedAt
	}

	return &Report{
		Source:      ConvertSourceInfo(report.Source),
		GeneratedAt: formatTimestamp(generatedAt),
		Month:       ConvertMonthReport(report.Month),
		States:      ConvertStateReport(report.States),
	}
}

func ConvertBusinessTime(from, to time.Time, total, business int64) *BusinessTime {
	return &BusinessTime{
		From:       formatTimestamp(from),
		To:         formatTimestamp(to),
		TotalMS:    total,
		BusinessMS: business,
		Total:      utils.FormatDuration(total),
		Business:   utils.FormatDuration(business),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
