package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/elC0mpa/flow-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/flow-doctor/service/orchestrator"
	"github.com/elC0mpa/flow-doctor/service/report"
	"github.com/elC0mpa/flow-doctor/service/source"
	"github.com/elC0mpa/flow-doctor/utils"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	// stdout carries the protocol, logs go to stderr
	logger := utils.BuildLogger(os.Stderr, cfg.LogLevel, "json")

	s := server.NewMCPServer(
		"flow-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	sourceService := source.NewService(logger, nil)
	reportService := report.NewService(logger, time.Now)
	orchestratorService := orchestrator.NewService(logger, sourceService, reportService, io.Discard)

	tools.RegisterReportTools(s, orchestratorService, cfg.Defaults())

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
