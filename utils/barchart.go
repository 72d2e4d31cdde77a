package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/flow-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawStateChart plots business hours spent in each schedule state.
func DrawStateChart(source *model.SourceInfo, report *model.StateReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🩺  FLOW DOCTOR: BUSINESS HOURS BY STATE"))
	drawSourceLine(source)
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(130, 20)

	indexedColors := assignRankedColors(report.States)

	for idx, state := range report.States {
		data := barchart.BarData{
			Label: getBarLabel(state),
			Values: []barchart.BarValue{
				{
					Value: businessHours(state),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()
	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func getBarLabel(state model.AggregateEntry) string {
	return fmt.Sprintf("%s: %.1fh", state.Key, businessHours(state))
}

func businessHours(entry model.AggregateEntry) float64 {
	return float64(entry.BusinessMS) / float64(time.Hour.Milliseconds())
}

// assignRankedColors colours the largest business time hottest. Entries past
// the palette keep an empty colour.
func assignRankedColors(entries []model.AggregateEntry) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type entryWithIndex struct {
		index int
		value float64
	}

	toSort := make([]entryWithIndex, len(entries))
	for i, entry := range entries {
		toSort[i] = entryWithIndex{
			index: i,
			value: businessHours(entry),
		}
	}

	sort.SliceStable(toSort, func(i, j int) bool {
		return toSort[i].value > toSort[j].value
	})

	resultColors := make([]string, len(entries))
	for rank, sorted := range toSort {
		if rank < len(palette) {
			resultColors[sorted.index] = palette[rank]
		}
	}

	return resultColors
}
