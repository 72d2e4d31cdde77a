package utils

import (
	"fmt"
	"strings"
	"time"
)

var (
	day  = uint64(24 * time.Hour / time.Millisecond)
	week = 7 * day
	// A reporting year is 52 weeks.
	year = 52 * week
)

var durationUnits = []struct {
	size  uint64
	label string
}{
	{year, "year(s)"},
	{week, "week(s)"},
	{day, "day(s)"},
	{uint64(time.Hour / time.Millisecond), "hour(s)"},
	{uint64(time.Minute / time.Millisecond), "minute(s)"},
	{uint64(time.Second / time.Millisecond), "second(s)"},
	{1, "MS"},
}

// FormatDuration renders ms milliseconds from years down to milliseconds,
// leaving out zero components. Zero renders as "".
func FormatDuration(ms int64) string {
	sign, magnitude := "", uint64(ms)
	if ms < 0 {
		// Two's complement negation stays correct for math.MinInt64.
		sign, magnitude = "-", -magnitude
	}
	parts := make([]string, 0, len(durationUnits))
	for _, unit := range durationUnits {
		count := magnitude / unit.size
		magnitude -= count * unit.size
		if count != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, unit.label))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return sign + strings.Join(parts, " ")
}
