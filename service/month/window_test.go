package month_test

import (
	"testing"
	"time"

	"github.com/elC0mpa/flow-doctor/service/month"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	w, err := month.Parse("2012-02")
	require.NoError(t, err)
	assert.Equal(t, date(2012, time.February, 1, 0), w.Start)
	assert.Equal(t, date(2012, time.March, 1, 0), w.End)
	assert.Equal(t, "February 2012", w.Name())
	assert.Equal(t, "2012-02", w.String())

	w, err = month.Parse("2011-12")
	require.NoError(t, err)
	assert.Equal(t, date(2012, time.January, 1, 0), w.End)

	_, err = month.Parse("February")
	assert.Error(t, err)
	_, err = month.Parse("2012-13")
	assert.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	w := month.New(2012, time.February)
	cases := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected bool
	}{
		{name: "inside", from: date(2012, time.February, 3, 0), to: date(2012, time.February, 4, 0), expected: true},
		{name: "starts inside", from: date(2012, time.February, 28, 0), to: date(2012, time.March, 4, 0), expected: true},
		{name: "ends inside", from: date(2012, time.January, 20, 0), to: date(2012, time.February, 2, 0), expected: true},
		{name: "ends on first instant", from: date(2012, time.January, 20, 0), to: date(2012, time.February, 1, 0), expected: true},
		{name: "contains month", from: date(2012, time.January, 1, 0), to: date(2012, time.April, 1, 0), expected: true},
		{name: "before", from: date(2012, time.January, 1, 0), to: date(2012, time.January, 31, 0), expected: false},
		{name: "after", from: date(2012, time.March, 1, 0), to: date(2012, time.March, 2, 0), expected: false},
		// The month end is exclusive and containment is strict.
		{name: "ends exactly on month end", from: date(2012, time.January, 1, 0), to: date(2012, time.March, 1, 0), expected: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, w.Overlaps(c.from, c.to))
		})
	}
}

func TestClip(t *testing.T) {
	w := month.New(2012, time.February)

	from, to := w.Clip(date(2012, time.January, 1, 0), date(2012, time.April, 1, 0))
	assert.Equal(t, w.Start, from)
	assert.Equal(t, w.End, to)

	from, to = w.Clip(date(2012, time.February, 10, 9), date(2012, time.February, 11, 9))
	assert.Equal(t, date(2012, time.February, 10, 9), from)
	assert.Equal(t, date(2012, time.February, 11, 9), to)
}
