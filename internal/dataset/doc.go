// Package dataset loads crash-timing measurements from CSV files.
//
// The expected input is the file written by the crash-timing harness:
//
//	Trial,Test,Time_ns,SegFaulted
//	1,Heap,48211,1
//	1,Kernel,1733,1
//
// Only the Test and Time_ns columns are required. SegFaulted is used when
// present; any other column is ignored.
package dataset
