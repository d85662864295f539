package report

import "errors"

// ErrOutputWrite is returned when the chart file cannot be created or written.
var ErrOutputWrite = errors.New("output write failure")
