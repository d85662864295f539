package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/nao1215/crashplot/internal/aggregate"
	"github.com/nao1215/crashplot/internal/dataset"
	"github.com/nao1215/crashplot/internal/model"
	"github.com/nao1215/crashplot/internal/report"
)

// errMissingDataset is returned when the aggregate step runs before load.
var errMissingDataset = errors.New("no dataset loaded")

// errMissingResult is returned when a step that needs the aggregate runs before it.
var errMissingResult = errors.New("no aggregate result")

// LoadStep reads run.InputPath into run.Dataset.
type LoadStep struct {
	logger *slog.Logger
}

// NewLoadStep creates a new load step.
func NewLoadStep(logger *slog.Logger) *LoadStep {
	return &LoadStep{logger: orDefault(logger)}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, run *model.Run) error {
	ds, err := dataset.Load(run.InputPath)
	if err != nil {
		return err
	}
	run.Dataset = ds

	s.logger.Debug("dataset loaded",
		"path", run.InputPath,
		"rows", ds.Len(),
		"segfault_column", ds.HasSegFaulted,
	)
	return nil
}

// AggregateStep computes run.Result from run.Dataset.
type AggregateStep struct {
	logger *slog.Logger
}

// NewAggregateStep creates a new aggregate step.
func NewAggregateStep(logger *slog.Logger) *AggregateStep {
	return &AggregateStep{logger: orDefault(logger)}
}

// Name returns the step name.
func (s *AggregateStep) Name() string {
	return "aggregate"
}

// Do executes the aggregate step.
func (s *AggregateStep) Do(_ context.Context, run *model.Run) error {
	if run.Dataset == nil {
		return errMissingDataset
	}
	run.Result = aggregate.Aggregate(run.Dataset)

	for _, g := range run.Result.Groups {
		s.logger.Debug("group aggregated",
			"test", g.Test,
			"mean_ns", g.Mean,
			"trials", g.Count,
		)
	}
	return nil
}

// RenderStep draws run.Result to run.OutputPath and prints the confirmation
// line to its output.
type RenderStep struct {
	renderer report.Renderer
	output   io.Writer
	logger   *slog.Logger
}

// NewRenderStep creates a new render step.
// The confirmation line is written to output.
func NewRenderStep(renderer report.Renderer, output io.Writer, logger *slog.Logger) *RenderStep {
	return &RenderStep{
		renderer: renderer,
		output:   output,
		logger:   orDefault(logger),
	}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do executes the render step.
func (s *RenderStep) Do(_ context.Context, run *model.Run) error {
	if run.Result == nil {
		return errMissingResult
	}

	if err := report.WriteChart(run.OutputPath, s.renderer, run.Result); err != nil {
		return err
	}
	run.ChartWritten = true

	s.logger.Debug("chart written",
		"path", run.OutputPath,
		"renderer", s.renderer.Name(),
		"bars", run.Result.Len(),
	)

	return report.PrintConfirmation(s.output, run.OutputPath)
}

// SummaryStep writes run.Result with a report.Writer.
type SummaryStep struct {
	writer report.Writer
}

// NewSummaryStep creates a new summary step.
func NewSummaryStep(writer report.Writer) *SummaryStep {
	return &SummaryStep{writer: writer}
}

// Name returns the step name.
func (s *SummaryStep) Name() string {
	return "summary"
}

// Do executes the summary step.
func (s *SummaryStep) Do(_ context.Context, run *model.Run) error {
	if run.Result == nil {
		return errMissingResult
	}
	_, err := s.writer.Write(run.Result)
	return err
}

// orDefault returns logger, or slog.Default() when it is nil.
func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// DefaultPipeline builds the load -> aggregate -> [summary] -> render pipeline.
// summary may be nil. The summary runs before render so that the
// confirmation line is the last thing printed.
func DefaultPipeline(renderer report.Renderer, summary report.Writer, output io.Writer, logger *slog.Logger) *Pipeline {
	p := New(WithLogger(orDefault(logger)))
	p.AddSteps(
		NewLoadStep(logger),
		NewAggregateStep(logger),
	)
	if summary != nil {
		p.AddStep(NewSummaryStep(summary))
	}
	p.AddStep(NewRenderStep(renderer, output, logger))
	return p
}
