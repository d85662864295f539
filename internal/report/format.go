package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with English digit grouping (48,211.5).
var printer = message.NewPrinter(language.English)

// formatNanos formats a mean elapsed time for display.
func formatNanos(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return printer.Sprintf("%.1f", v)
}

// formatCount formats an integer count for display.
func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// formatSegFaults returns the SIGSEGV column value, or "-" when the input
// had no SegFaulted column.
func formatSegFaults(n int, known bool) string {
	if !known {
		return "-"
	}
	return formatCount(n)
}
