package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Renderer names accepted by the --renderer flag and the config file.
const (
	// RendererGonum draws the chart with gonum.org/v1/plot.
	RendererGonum = "gonum"

	// RendererGoChart draws the chart with github.com/wcharczuk/go-chart.
	RendererGoChart = "go-chart"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "crashplot"

	// DefaultInputPath is the CSV written by the crash-timing harness.
	DefaultInputPath = "mem_crash_results.csv"

	// DefaultOutputPath is the chart image written to the working directory.
	DefaultOutputPath = "mem_crash_plot.png"

	// DefaultTitle is the chart title.
	DefaultTitle = "Heap‑overflow vs Kernel‑access crash latency"

	// DefaultYLabel is the y-axis label.
	DefaultYLabel = "Average time to SIGSEGV (ns)"

	// DefaultDPI is the raster resolution of the chart.
	DefaultDPI = 180

	// DefaultWidthInches and DefaultHeightInches give a 6.4in x 4.8in canvas,
	// which at 180 DPI is 1152x864 pixels.
	DefaultWidthInches  = 6.4
	DefaultHeightInches = 4.8

	// DefaultRenderer is the chart backend used when none is selected.
	DefaultRenderer = RendererGonum
)

// Config holds all configuration options for one crashplot run.
// It is populated from defaults, an optional config file and CLI flags,
// in that order of precedence (later wins).
type Config struct {
	// InputPath is the CSV file to read.
	InputPath string

	// OutputPath is the PNG file to write. It is overwritten on every run.
	OutputPath string

	// Title is the chart title.
	Title string

	// YLabel is the y-axis label.
	YLabel string

	// DPI is the raster resolution in dots per inch.
	DPI float64

	// WidthInches is the canvas width.
	WidthInches float64

	// HeightInches is the canvas height.
	HeightInches float64

	// Renderer selects the chart backend (RendererGonum or RendererGoChart).
	Renderer string

	// Verbose enables debug logging on stderr.
	Verbose bool

	// LogFormat is "text" or "json".
	LogFormat string

	// ConfigFilePath is the YAML file the settings were read from, if any.
	ConfigFilePath string

	// JSONReport prints the aggregate result as JSON on stdout.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport prints the aggregate result as a markdown table on stdout.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		InputPath:    DefaultInputPath,
		OutputPath:   DefaultOutputPath,
		Title:        DefaultTitle,
		YLabel:       DefaultYLabel,
		DPI:          DefaultDPI,
		WidthInches:  DefaultWidthInches,
		HeightInches: DefaultHeightInches,
		Renderer:     DefaultRenderer,
		LogFormat:    LogFormatText,
	}
}

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// XDGConfigDir returns the XDG config directory for crashplot.
// On Linux: ~/.config/crashplot
// On macOS: ~/Library/Application Support/crashplot
// On Windows: %APPDATA%\crashplot
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return ErrNoOutput
	}

	if c.DPI <= 0 {
		return ErrInvalidDPI
	}

	if c.WidthInches <= 0 || c.HeightInches <= 0 {
		return ErrInvalidCanvasSize
	}

	switch c.Renderer {
	case RendererGonum, RendererGoChart:
	default:
		return ErrUnknownRenderer
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
