package report

import (
	"io"
	"log/slog"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nao1215/crashplot/internal/model"
)

// goChartBarColor matches the gonum bar fill.
var goChartBarColor = drawing.Color{R: barColor.R, G: barColor.G, B: barColor.B, A: barColor.A}

// GoChartRenderer draws bar charts with github.com/wcharczuk/go-chart.
type GoChartRenderer struct {
	opts   ChartOptions
	logger *slog.Logger
}

// NewGoChartRenderer creates a GoChartRenderer with the given options.
func NewGoChartRenderer(opts ChartOptions, logger *slog.Logger) *GoChartRenderer {
	return &GoChartRenderer{opts: opts, logger: logger}
}

// Name implements Renderer.Name.
func (r *GoChartRenderer) Name() string {
	return "go-chart"
}

// Render implements Renderer.Render.
// go-chart refuses to draw a bar chart without bars, so an empty result is
// drawn as a blank canvas carrying only the title.
func (r *GoChartRenderer) Render(w io.Writer, result *model.AggregateResult) error {
	if result.Len() == 0 {
		return r.renderBlank(w)
	}

	heights := barHeights(result, r.logger)
	bars := make([]chart.Value, 0, len(heights))
	for i, g := range result.Groups {
		bars = append(bars, chart.Value{
			Value: heights[i],
			Label: g.Test,
			Style: chart.Style{
				FillColor:   goChartBarColor,
				StrokeColor: goChartBarColor,
			},
		})
	}

	// An explicit range keeps the baseline at zero and avoids the zero-span
	// error go-chart raises when every bar has the same height.
	top := result.MaxMean() * 1.1
	if top <= 0 {
		top = 1
	}

	barWidth := r.barWidth(len(bars))
	bc := chart.BarChart{
		Title:  r.opts.Title,
		Width:  r.opts.widthPixels(),
		Height: r.opts.heightPixels(),
		DPI:    r.opts.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		YAxis: chart.YAxis{
			Name:  r.opts.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	return bc.Render(chart.PNG, w)
}

// barWidth sizes the bars so that bars plus half-width gaps fill at most
// 70% of the canvas width.
func (r *GoChartRenderer) barWidth(n int) int {
	w := int(float64(r.opts.widthPixels()) * 0.7 / (float64(n) * 1.5))
	if maxW := int(0.8 * r.opts.DPI); w > maxW {
		return maxW
	}
	if w < 1 {
		return 1
	}
	return w
}

// renderBlank draws a white canvas with the chart title.
func (r *GoChartRenderer) renderBlank(w io.Writer) error {
	width, height := r.opts.widthPixels(), r.opts.heightPixels()

	canvas, err := chart.PNG(width, height)
	if err != nil {
		return err
	}
	canvas.SetDPI(r.opts.DPI)

	canvas.SetFillColor(drawing.ColorWhite)
	canvas.MoveTo(0, 0)
	canvas.LineTo(width, 0)
	canvas.LineTo(width, height)
	canvas.LineTo(0, height)
	canvas.Close()
	canvas.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	canvas.SetFont(font)
	canvas.SetFontColor(drawing.ColorBlack)
	canvas.SetFontSize(chart.DefaultTitleFontSize)

	box := canvas.MeasureText(r.opts.Title)
	canvas.Text(r.opts.Title, (width-box.Width())/2, box.Height()+20)

	return canvas.Save(w)
}
