// Package main provides the entry point for the crashplot CLI.
//
// crashplot reads the crash-timing CSV written by the memory-crash harness,
// averages Time_ns per Test category and draws the result as a bar chart.
//
// Usage:
//
//	crashplot [csv_path]
//
// See --help for all available options.
package main

// main is the entry point for crashplot.
func main() {
	Execute()
}
