package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elC0mpa/flow-doctor/response"
	"github.com/elC0mpa/flow-doctor/service/flag"
	"github.com/elC0mpa/flow-doctor/service/orchestrator"
	"github.com/elC0mpa/flow-doctor/service/report"
	"github.com/elC0mpa/flow-doctor/service/source"
	"github.com/elC0mpa/flow-doctor/utils"
)

func main() {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelpRequested) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	logger := utils.BuildLogger(os.Stderr, flags.LogLevel, flags.LogFormat)

	clock, err := buildClock(flags.Now)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if !response.IsExportFormat(flags.Format) {
		utils.DrawBanner()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sourceService := source.NewService(logger, os.Stdin)
	reportService := report.NewService(logger, clock)
	orchestratorService := orchestrator.NewService(logger, sourceService, reportService, os.Stdout)

	err = orchestratorService.Orchestrate(ctx, flags)
	if err != nil {
		logger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

// buildClock freezes the clock at value when set.
func buildClock(value string) (report.Clock, error) {
	if value == "" {
		return time.Now, nil
	}
	now, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --now value %q: %w", value, err)
	}
	return func() time.Time { return now }, nil
}
