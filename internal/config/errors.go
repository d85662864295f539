package config

import "errors"

// Configuration validation errors returned by Config.Validate().
// Callers use errors.Is() to tell them apart.
var (
	// ErrNoOutput is returned when the chart output path is empty.
	ErrNoOutput = errors.New("no output path specified")

	// ErrInvalidDPI is returned when the DPI is not positive.
	ErrInvalidDPI = errors.New("invalid dpi: must be positive")

	// ErrInvalidCanvasSize is returned when the canvas width or height is not positive.
	ErrInvalidCanvasSize = errors.New("invalid canvas size: width and height must be positive")

	// ErrUnknownRenderer is returned for a renderer name other than gonum or go-chart.
	ErrUnknownRenderer = errors.New("unknown renderer: use gonum or go-chart")

	// ErrUnknownLogFormat is returned for a log format other than text or json.
	ErrUnknownLogFormat = errors.New("unknown log format: use text or json")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
