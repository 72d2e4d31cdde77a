package flag

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/flow-doctor/model"
	er "github.com/mcorbin/corbierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetParsedFlagsDefaults(t *testing.T) {
	flags, err := NewService().GetParsedFlags([]string{"--input", "snapshots.json"})
	require.NoError(t, err)
	assert.Equal(t, model.Flags{
		Input:     "snapshots.json",
		Month:     "2012-02",
		Format:    "table",
		LogLevel:  "info",
		LogFormat: "text",
	}, flags)
}

func TestGetParsedFlags(t *testing.T) {
	flags, err := NewService().GetParsedFlags([]string{
		"-m", "2012-03",
		"-f", "json",
		"-o", "report.json",
		"--now", "2012-03-31T00:00:00Z",
		"--states-only",
		"--skip-invalid",
		"--aws-region", "eu-west-1",
		"s3://exports/feb.json",
	})
	require.NoError(t, err)
	assert.Equal(t, "s3://exports/feb.json", flags.Input)
	assert.Equal(t, "2012-03", flags.Month)
	assert.Equal(t, "json", flags.Format)
	assert.Equal(t, "report.json", flags.Output)
	assert.Equal(t, "2012-03-31T00:00:00Z", flags.Now)
	assert.True(t, flags.StatesOnly)
	assert.True(t, flags.SkipInvalid)
	assert.False(t, flags.Chart)
	assert.Equal(t, "eu-west-1", flags.Region)
}

func TestGetParsedFlagsOverConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow-doctor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: bq://agile-metrics.lookback.snapshots
month: "2012-01"
format: yaml
chart: true
gcp:
  project: billing-project
`), 0o600))

	flags, err := NewService().GetParsedFlags([]string{"-c", path, "--month", "2012-02"})
	require.NoError(t, err)
	assert.Equal(t, "bq://agile-metrics.lookback.snapshots", flags.Input)
	assert.Equal(t, "2012-02", flags.Month)
	assert.Equal(t, "yaml", flags.Format)
	assert.True(t, flags.Chart)
	assert.Equal(t, "billing-project", flags.Project)
	assert.Equal(t, path, flags.ConfigFile)
}

func TestGetParsedFlagsErrors(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		badRequest bool
	}{
		{name: "missing input", args: []string{}, badRequest: true},
		{name: "invalid month", args: []string{"-i", "a.json", "-m", "2012-13"}, badRequest: true},
		{name: "invalid format", args: []string{"-i", "a.json", "-f", "csv"}, badRequest: true},
		{name: "invalid now", args: []string{"-i", "a.json", "--now", "2012-03-31"}, badRequest: true},
		{name: "output with table format", args: []string{"-i", "a.json", "-o", "report.txt"}, badRequest: true},
		{name: "output with chart", args: []string{"-i", "a.json", "--chart", "-f", "table", "-o", "report.txt"}, badRequest: true},
		{name: "unknown flag", args: []string{"-i", "a.json", "--trend"}},
		{name: "too many args", args: []string{"a.json", "b.json"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewService().GetParsedFlags(c.args)
			require.Error(t, err)

			var corbiErr *er.Error
			assert.Equal(t, c.badRequest, errors.As(err, &corbiErr))
		})
	}
}

func TestGetParsedFlagsHelp(t *testing.T) {
	_, err := NewService().GetParsedFlags([]string{"--help"})
	assert.ErrorIs(t, err, ErrHelpRequested)
}
