package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/nao1215/crashplot/internal/model"
)

// MarkdownWriter outputs the aggregate result as a markdown table with the
// columns Test, Avg time (ns), Trials and SIGSEGVs.
type MarkdownWriter struct {
	baseWriter

	// title is the heading written above the table. Empty means no heading.
	title string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithHeading sets the level-2 heading written above the table.
func WithHeading(title string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.title = title
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements Writer.Write.
func (w *MarkdownWriter) Write(result *model.AggregateResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if w.title != "" {
		md.H2(w.title)
		md.PlainText("")
	}

	if result.Len() == 0 {
		md.PlainText("No measurements found.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, 0, result.Len())
	for _, g := range result.Groups {
		rows = append(rows, []string{
			g.Test,
			formatNanos(g.Mean),
			formatCount(g.Count),
			formatSegFaults(g.SegFaults, result.HasSegFaulted),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Test", "Avg time (ns)", "Trials", "SIGSEGVs"},
		Rows:   rows,
		Alignment: []markdown.TableAlignment{
			markdown.AlignDefault,
			markdown.AlignRight,
			markdown.AlignRight,
			markdown.AlignRight,
		},
	})

	return len(md.String()), md.Build()
}
