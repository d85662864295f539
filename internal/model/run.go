package model

// Run carries the state of one crashplot invocation through the pipeline.
// Each step fills in the fields it owns.
type Run struct {
	// InputPath is the CSV file to read.
	InputPath string

	// OutputPath is where the chart image is written.
	OutputPath string

	// Dataset is set by the load step.
	Dataset *Dataset

	// Result is set by the aggregate step.
	Result *AggregateResult

	// ChartWritten is true once the render step has written OutputPath.
	ChartWritten bool

	// PerformedSteps lists the names of steps that completed, in order.
	PerformedSteps []string

	// Error holds the error of the step that stopped the run, if any.
	Error error
}

// NewRun creates a Run for the given input and output paths.
func NewRun(inputPath, outputPath string) *Run {
	return &Run{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		PerformedSteps: make([]string, 0),
	}
}
