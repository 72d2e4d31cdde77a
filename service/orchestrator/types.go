package orchestrator

import (
	"context"
	"io"
	"log/slog"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/service/report"
	"github.com/elC0mpa/flow-doctor/service/source"
)

type orchestratorService struct {
	logger        *slog.Logger
	sourceService source.SourceService
	reportService report.ReportService
	stdout        io.Writer
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
	BuildReport(ctx context.Context, flags model.Flags) (*model.Report, error)
}
