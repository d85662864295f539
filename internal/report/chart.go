package report

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/nao1215/crashplot/internal/config"
	"github.com/nao1215/crashplot/internal/model"
)

// ChartOptions controls the appearance of a rendered chart.
type ChartOptions struct {
	// Title is drawn above the plot area.
	Title string

	// YLabel labels the value axis.
	YLabel string

	// DPI is the raster resolution.
	DPI float64

	// WidthInches and HeightInches give the canvas size.
	WidthInches  float64
	HeightInches float64
}

// ChartOptionsFromConfig extracts chart options from a Config.
func ChartOptionsFromConfig(cfg *config.Config) ChartOptions {
	return ChartOptions{
		Title:        cfg.Title,
		YLabel:       cfg.YLabel,
		DPI:          cfg.DPI,
		WidthInches:  cfg.WidthInches,
		HeightInches: cfg.HeightInches,
	}
}

// widthPixels returns the canvas width in pixels.
func (o ChartOptions) widthPixels() int {
	return int(o.WidthInches*o.DPI + 0.5)
}

// heightPixels returns the canvas height in pixels.
func (o ChartOptions) heightPixels() int {
	return int(o.HeightInches*o.DPI + 0.5)
}

// Renderer draws an aggregate result as a PNG image.
type Renderer interface {
	// Render encodes the chart for result as PNG into w.
	Render(w io.Writer, result *model.AggregateResult) error

	// Name returns the backend name for logging purposes.
	Name() string
}

// NewRenderer returns the Renderer registered under name.
func NewRenderer(name string, opts ChartOptions, logger *slog.Logger) (Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch name {
	case config.RendererGonum, "":
		return NewGonumRenderer(opts, logger), nil
	case config.RendererGoChart:
		return NewGoChartRenderer(opts, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownRenderer, name)
	}
}

// WriteChart renders result with r and writes it to path, replacing any
// existing file. A failure mid-write may leave a truncated file behind.
func WriteChart(path string, r Renderer, result *model.AggregateResult) error {
	f, err := os.Create(path) //nolint:gosec // Output path comes from config
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	if err := r.Render(f, result); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	return nil
}

// PrintConfirmation writes the one-line success message naming path.
func PrintConfirmation(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "[+] plot written → %s\n", path)
	return err
}

// barHeights returns the plotted height of each group. NaN and infinite
// means cannot be drawn, so they become zero and are reported on logger.
func barHeights(result *model.AggregateResult, logger *slog.Logger) []float64 {
	heights := make([]float64, 0, result.Len())
	for _, g := range result.Groups {
		v := g.Mean
		if math.IsNaN(v) || math.IsInf(v, 0) {
			logger.Warn("mean is not finite, drawing empty bar",
				"test", g.Test,
				"mean", v,
			)
			v = 0
		}
		heights = append(heights, v)
	}
	return heights
}
