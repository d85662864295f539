// Package log builds the slog loggers used by crashplot.
//
// All log output goes to the writer given by the caller (stderr in the
// CLI) so that stdout only carries the chart confirmation and summaries.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	slog.SetDefault(logger)
//
//	logger.Debug("loaded dataset", "rows", ds.Len())
package log
