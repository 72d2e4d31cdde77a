package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/response"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBuilder struct {
	flags  model.Flags
	result *model.Report
	err    error
}

func (f *fakeBuilder) BuildReport(_ context.Context, flags model.Flags) (*model.Report, error) {
	f.flags = flags
	return f.result, f.err
}

func callRequest(arguments map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return content.Text
}

func sampleReport() *model.Report {
	generated := time.Date(2012, time.February, 29, 12, 0, 0, 0, time.UTC)
	return &model.Report{
		Month: &model.MonthReport{
			Month: model.Interval{
				Start: time.Date(2012, time.February, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2012, time.March, 1, 0, 0, 0, 0, time.UTC),
			},
			GeneratedAt: generated,
			Items:       []model.AggregateEntry{{Key: "1", TotalMS: (32 * time.Hour).Milliseconds(), BusinessMS: (16 * time.Hour).Milliseconds()}},
		},
		States: &model.StateReport{
			GeneratedAt: generated,
			States:      []model.AggregateEntry{{Key: "Defined", TotalMS: (8 * time.Hour).Milliseconds(), BusinessMS: (8 * time.Hour).Milliseconds()}},
		},
	}
}

func TestMonthReportHandler(t *testing.T) {
	builder := &fakeBuilder{result: sampleReport()}
	defaults := model.Flags{Input: "default.json", Month: "2012-02", Format: "json"}
	handler := makeMonthReportHandler(builder, defaults)

	result, err := handler(context.Background(), callRequest(map[string]any{"month": "2012-03", "skip_invalid": true}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, "default.json", builder.flags.Input)
	assert.Equal(t, "2012-03", builder.flags.Month)
	assert.True(t, builder.flags.SkipInvalid)
	assert.False(t, builder.flags.StatesOnly)

	var document response.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &document))
	require.NotNil(t, document.Month)
	assert.Equal(t, 1, document.Month.ItemsActive)
	assert.Equal(t, "1 day(s) 8 hour(s)", document.Month.Items[0].Total)
}

func TestStateReportHandler(t *testing.T) {
	builder := &fakeBuilder{result: sampleReport()}
	handler := makeStateReportHandler(builder, model.Flags{Month: "2012-02"})

	result, err := handler(context.Background(), callRequest(map[string]any{"input": "s3://exports/feb.json"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "s3://exports/feb.json", builder.flags.Input)
	assert.True(t, builder.flags.StatesOnly)
}

func TestReportHandlerErrors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		builder := &fakeBuilder{}
		result, err := makeStateReportHandler(builder, model.Flags{})(context.Background(), callRequest(nil))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("build failure", func(t *testing.T) {
		builder := &fakeBuilder{err: errors.New("snapshot 3: missing ObjectID")}
		result, err := makeMonthReportHandler(builder, model.Flags{Input: "a.json"})(context.Background(), callRequest(nil))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "missing ObjectID")
	})
}

func TestBusinessTimeHandler(t *testing.T) {
	handler := makeBusinessTimeHandler()

	result, err := handler(context.Background(), callRequest(map[string]any{
		"from": "2012-02-06T08:00:00.000Z",
		"to":   "2012-02-06T10:30:00.000Z",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var document response.BusinessTime
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &document))
	assert.Equal(t, int64(9000000), document.TotalMS)
	assert.Equal(t, int64(5400000), document.BusinessMS)
}

func TestBusinessTimeHandlerErrors(t *testing.T) {
	cases := []struct {
		name      string
		arguments map[string]any
	}{
		{name: "missing from", arguments: map[string]any{"to": "2012-02-06T10:30:00.000Z"}},
		{name: "invalid to", arguments: map[string]any{"from": "2012-02-06T08:00:00.000Z", "to": "later"}},
		{name: "reversed", arguments: map[string]any{"from": "2012-02-07T08:00:00.000Z", "to": "2012-02-06T08:00:00.000Z"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := makeBusinessTimeHandler()(context.Background(), callRequest(c.arguments))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}
