package utils

import (
	"fmt"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Measure selects which millisecond sum of an aggregate entry a table shows.
type Measure int

const (
	TotalTime Measure = iota
	BusinessTime
)

func (m Measure) label() string {
	if m == BusinessTime {
		return "Business Hours"
	}
	return "Total"
}

func (m Measure) of(entry model.AggregateEntry) int64 {
	if m == BusinessTime {
		return entry.BusinessMS
	}
	return entry.TotalMS
}

// DrawMonthReport prints the month report as two tables, total time and
// business-hours time per work item.
func DrawMonthReport(source *model.SourceInfo, report *model.MonthReport) {
	monthName := report.Month.Start.Format("January 2006")
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 🩺  FLOW DOCTOR: %s", monthName))
	drawSourceLine(source)
	fmt.Printf(" Work items active: %s\n", text.FgHiGreen.Sprint(len(report.Items)))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	for _, measure := range []Measure{TotalTime, BusinessTime} {
		title := fmt.Sprintf("Time devoted to each work item (%s)", measure.label())
		fmt.Println(RenderAggregateTable(title, "Work Item", report.Items, measure))
	}
}

// DrawStateReport prints the schedule state report as two tables.
func DrawStateReport(source *model.SourceInfo, report *model.StateReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🩺  FLOW DOCTOR: SCHEDULE STATES"))
	drawSourceLine(source)
	fmt.Printf(" Schedule states: %s\n", text.FgHiGreen.Sprint(len(report.States)))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	for _, measure := range []Measure{TotalTime, BusinessTime} {
		title := fmt.Sprintf("Time devoted to each schedule state (%s)", measure.label())
		fmt.Println(RenderAggregateTable(title, "Schedule State", report.States, measure))
	}
}

func drawSourceLine(source *model.SourceInfo) {
	if source == nil {
		return
	}
	line := fmt.Sprintf(" Source: %s", text.FgBlue.Sprint(source.Location))
	if source.AccountID != "" {
		line += fmt.Sprintf(" (%s %s)", source.Provider, text.FgBlue.Sprint(source.AccountID))
	}
	fmt.Println(line)
}

// RenderAggregateTable renders one measure of the entries, in their order.
// Entries with nothing to render are left out.
func RenderAggregateTable(title, keyHeader string, entries []model.AggregateEntry, measure Measure) string {
	tw := table.NewWriter()
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{keyHeader, measure.label(), "Milliseconds"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 2,
			Align:  text.AlignRight,
		},
		{
			Number: 3,
			Align:  text.AlignRight,
		},
	})

	var sum int64
	rows := 0
	for _, entry := range entries {
		value := measure.of(entry)
		formatted := FormatDuration(value)
		if formatted == "" {
			continue
		}
		sum += value
		rows++
		tw.AppendRow(populateRow(entry.Key, formatted, value, measure))
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d row(s)", rows),
		FormatDuration(sum),
		sum,
	})
	return tw.Render()
}

func populateRow(key, formatted string, value int64, measure Measure) table.Row {
	row := make(table.Row, 3)
	row[0] = text.FgGreen.Sprint(key)
	row[1] = text.FgHiGreen.Sprint(formatted)
	if measure == BusinessTime {
		row[1] = text.FgHiYellow.Sprint(formatted)
	}
	row[2] = value
	return row
}
