package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/response"
	"github.com/elC0mpa/flow-doctor/service/businesshours"
	"github.com/elC0mpa/flow-doctor/service/snapshot"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ReportBuilder reads a snapshot export and builds its reports
type ReportBuilder interface {
	BuildReport(ctx context.Context, flags model.Flags) (*model.Report, error)
}

// RegisterReportTools registers the flow report tools with the MCP server
func RegisterReportTools(s *server.MCPServer, builder ReportBuilder, defaults model.Flags) {
	s.AddTool(
		mcp.NewTool("flow_get_month_report",
			mcp.WithDescription("Get the total and business-hours time each work item was active during a month, from a lookback snapshot export. Business hours are 09:00-17:00 UTC, Monday to Friday."),
			mcp.WithString("input",
				mcp.Description("Snapshot export: file path, s3://bucket/key, bq://project.dataset.table or azblob://container/blob. Defaults to FLOW_DOCTOR_INPUT."),
			),
			mcp.WithString("month",
				mcp.Description("Month to report on, as YYYY-MM. Defaults to FLOW_DOCTOR_MONTH."),
			),
			mcp.WithBoolean("skip_invalid",
				mcp.Description("Skip invalid snapshots instead of failing"),
			),
		),
		makeMonthReportHandler(builder, defaults),
	)

	s.AddTool(
		mcp.NewTool("flow_get_state_report",
			mcp.WithDescription("Get the total and business-hours time spent in each schedule state across every snapshot of a lookback export"),
			mcp.WithString("input",
				mcp.Description("Snapshot export: file path, s3://bucket/key, bq://project.dataset.table or azblob://container/blob. Defaults to FLOW_DOCTOR_INPUT."),
			),
			mcp.WithBoolean("skip_invalid",
				mcp.Description("Skip invalid snapshots instead of failing"),
			),
		),
		makeStateReportHandler(builder, defaults),
	)

	s.AddTool(
		mcp.NewTool("flow_get_business_time",
			mcp.WithDescription("Get the total and business-hours time of a single half-open interval [from, to)"),
			mcp.WithString("from",
				mcp.Required(),
				mcp.Description("Interval start, ISO-8601 UTC timestamp"),
			),
			mcp.WithString("to",
				mcp.Required(),
				mcp.Description("Interval end, ISO-8601 UTC timestamp"),
			),
		),
		makeBusinessTimeHandler(),
	)
}

func makeMonthReportHandler(builder ReportBuilder, defaults model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags := defaults
		flags.Input = request.GetString("input", defaults.Input)
		flags.Month = request.GetString("month", defaults.Month)
		flags.SkipInvalid = request.GetBool("skip_invalid", defaults.SkipInvalid)

		if flags.Input == "" {
			return mcp.NewToolResultError("No input given and FLOW_DOCTOR_INPUT is not set"), nil
		}

		result, err := builder.BuildReport(ctx, flags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build month report: %v", err)), nil
		}

		return jsonResult(response.ConvertReport(result))
	}
}

func makeStateReportHandler(builder ReportBuilder, defaults model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags := defaults
		flags.Input = request.GetString("input", defaults.Input)
		flags.SkipInvalid = request.GetBool("skip_invalid", defaults.SkipInvalid)
		flags.StatesOnly = true

		if flags.Input == "" {
			return mcp.NewToolResultError("No input given and FLOW_DOCTOR_INPUT is not set"), nil
		}

		result, err := builder.BuildReport(ctx, flags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build state report: %v", err)), nil
		}

		return jsonResult(response.ConvertReport(result))
	}
}

func makeBusinessTimeHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fromValue, err := request.RequireString("from")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		toValue, err := request.RequireString("to")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		from, err := snapshot.ParseTimestamp(fromValue)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid from: %v", err)), nil
		}
		to, err := snapshot.ParseTimestamp(toValue)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid to: %v", err)), nil
		}

		result, err := businesshours.Reduce(from, to)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to compute business time: %v", err)), nil
		}

		return jsonResult(response.ConvertBusinessTime(from, to, result.TotalMS, result.BusinessMS))
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
