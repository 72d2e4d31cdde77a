package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/elC0mpa/flow-doctor/model"
	"github.com/elC0mpa/flow-doctor/response"
	"github.com/elC0mpa/flow-doctor/service/month"
	"github.com/elC0mpa/flow-doctor/service/report"
	"github.com/elC0mpa/flow-doctor/service/source"
	"github.com/elC0mpa/flow-doctor/utils"
)

func NewService(logger *slog.Logger, sourceService source.SourceService, reportService report.ReportService, stdout io.Writer) *orchestratorService {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &orchestratorService{
		logger:        logger,
		sourceService: sourceService,
		reportService: reportService,
		stdout:        stdout,
	}
}

func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) error {
	exporting := response.IsExportFormat(flags.Format)
	if !exporting {
		utils.StartSpinner("Reading snapshots")
	}
	defer utils.StopSpinner()

	result, err := s.BuildReport(ctx, flags)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if exporting {
		return s.exportWorkflow(result, flags)
	}

	if flags.Chart {
		return s.chartWorkflow(result)
	}

	return s.defaultWorkflow(result)
}

// BuildReport reads the snapshots named by flags.Input and runs both report
// passes over them. Source account lookup failures only log a warning.
func (s *orchestratorService) BuildReport(ctx context.Context, flags model.Flags) (*model.Report, error) {
	window, err := month.Parse(flags.Month)
	if err != nil {
		return nil, err
	}

	src, err := s.sourceService.Resolve(ctx, flags)
	if err != nil {
		return nil, err
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	raws, err := src.GetSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("snapshots read", "count", len(raws), "input", flags.Input)

	info, err := src.GetSourceInfo(ctx)
	if err != nil {
		s.logger.Warn("failed to resolve source account", "input", flags.Input, "error", err.Error())
		info = &model.SourceInfo{Location: flags.Input}
	}

	result, err := s.reportService.Build(raws, report.Options{
		Month:       window,
		SkipInvalid: flags.SkipInvalid,
		StatesOnly:  flags.StatesOnly,
	})
	if err != nil {
		return nil, err
	}
	result.Source = info
	return result, nil
}

func (s *orchestratorService) defaultWorkflow(result *model.Report) error {
	if result.Month != nil {
		utils.DrawMonthReport(result.Source, result.Month)
	}
	utils.DrawStateReport(result.Source, result.States)
	return nil
}

func (s *orchestratorService) chartWorkflow(result *model.Report) error {
	if result.Month != nil {
		utils.DrawMonthReport(result.Source, result.Month)
	}
	utils.DrawStateChart(result.Source, result.States)
	return nil
}

func (s *orchestratorService) exportWorkflow(result *model.Report, flags model.Flags) error {
	document := response.ConvertReport(result)

	if flags.Output == "" {
		return response.Encode(s.stdout, flags.Format, document)
	}

	f, err := os.Create(flags.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", flags.Output, err)
	}
	if err := response.Encode(f, flags.Format, document); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", flags.Output, err)
	}
	s.logger.Info("report exported", "format", flags.Format, "output", flags.Output)
	return nil
}
