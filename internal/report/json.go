package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/nao1215/crashplot/internal/model"
)

// JSONWriter outputs the aggregate result in JSON format.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// jsonGroup is the wire form of model.Group.
// encoding/json cannot encode NaN, so a missing mean is written as null.
type jsonGroup struct {
	Test      string   `json:"test"`
	MeanNs    *float64 `json:"mean_ns"`
	Trials    int      `json:"trials"`
	SegFaults *int     `json:"segfaults,omitempty"`
}

// jsonSummary is the top-level JSON document.
type jsonSummary struct {
	Groups []jsonGroup `json:"groups"`
}

// Write implements Writer.Write.
func (w *JSONWriter) Write(result *model.AggregateResult) (int, error) {
	summary := jsonSummary{Groups: make([]jsonGroup, 0, result.Len())}
	if result != nil {
		for _, g := range result.Groups {
			jg := jsonGroup{Test: g.Test, Trials: g.Count}
			if !math.IsNaN(g.Mean) && !math.IsInf(g.Mean, 0) {
				mean := g.Mean
				jg.MeanNs = &mean
			}
			if result.HasSegFaulted {
				segFaults := g.SegFaults
				jg.SegFaults = &segFaults
			}
			summary.Groups = append(summary.Groups, jg)
		}
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(summary, "", "  ")
	} else {
		data, err = json.Marshal(summary)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')

	return w.output.Write(data)
}
