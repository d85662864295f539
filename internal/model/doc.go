// Package model defines the data structures shared by the crashplot stages.
//
// This package contains the following main types:
//   - Dataset: The crash-timing table loaded from CSV
//   - AggregateResult: Per-category mean elapsed time
//   - Run: The state carried through one pipeline execution
//
// Models live in their own package so that dataset, aggregate, report and
// pipeline can all use them without import cycles.
package model
