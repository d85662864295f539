package report

import (
	"io"

	"github.com/nao1215/crashplot/internal/model"
)

// Writer defines the interface for summary output.
// Implementations write the aggregate result in various formats.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.AggregateResult) (int, error)
}

// baseWriter provides common functionality for summary writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
