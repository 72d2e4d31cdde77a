package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClock(t *testing.T) {
	clock, err := buildClock("2012-02-29T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2012, time.February, 29, 12, 0, 0, 0, time.UTC), clock().UTC())

	clock, err = buildClock("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), clock(), time.Minute)

	_, err = buildClock("tomorrow")
	assert.Error(t, err)
}
