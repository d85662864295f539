package report

import (
	"image/color"
	"io"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nao1215/crashplot/internal/model"
)

// barColor is the fill of every bar (#1f77b4).
var barColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// maxBarWidth caps the bar width when only a few categories are drawn.
const maxBarWidth = 0.8 * vg.Inch

// GonumRenderer draws bar charts with gonum.org/v1/plot.
type GonumRenderer struct {
	opts   ChartOptions
	logger *slog.Logger
}

// NewGonumRenderer creates a GonumRenderer with the given options.
func NewGonumRenderer(opts ChartOptions, logger *slog.Logger) *GonumRenderer {
	return &GonumRenderer{opts: opts, logger: logger}
}

// Name implements Renderer.Name.
func (r *GonumRenderer) Name() string {
	return "gonum"
}

// Render implements Renderer.Render.
// Categories are placed on a nominal x-axis in result order. An empty
// result produces a titled chart with no bars.
func (r *GonumRenderer) Render(w io.Writer, result *model.AggregateResult) error {
	if result == nil {
		result = &model.AggregateResult{}
	}

	p, err := r.buildPlot(result)
	if err != nil {
		return err
	}

	width := vg.Length(r.opts.WidthInches) * vg.Inch
	height := vg.Length(r.opts.HeightInches) * vg.Inch
	canvas := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(int(r.opts.DPI)),
	)
	p.Draw(draw.New(canvas))

	_, err = vgimg.PngCanvas{Canvas: canvas}.WriteTo(w)
	return err
}

// buildPlot assembles the plot for result.
func (r *GonumRenderer) buildPlot(result *model.AggregateResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.opts.Title
	p.Y.Label.Text = r.opts.YLabel

	if result.Len() == 0 {
		return p, nil
	}

	values := plotter.Values(barHeights(result, r.logger))
	bars, err := plotter.NewBarChart(values, r.barWidth(result.Len()))
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(result.Categories()...)

	return p, nil
}

// barWidth spreads the bars over roughly two thirds of the canvas width.
func (r *GonumRenderer) barWidth(n int) vg.Length {
	w := vg.Length(r.opts.WidthInches) * vg.Inch * 2 / 3 / vg.Length(n)
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}
