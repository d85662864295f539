// Package report renders aggregate crash timings as charts and summaries.
//
// Charts are produced by a Renderer:
//   - GonumRenderer: gonum.org/v1/plot bar chart (default)
//   - GoChartRenderer: github.com/wcharczuk/go-chart bar chart
//
// WriteChart places a rendered chart on disk and PrintConfirmation reports
// it on the console.
//
// Summaries are produced by a Writer:
//   - MarkdownWriter: GitHub-flavoured markdown table
//   - JSONWriter: structured JSON for tool integration
package report
