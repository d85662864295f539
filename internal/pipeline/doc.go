// Package pipeline runs the crashplot stages in sequence.
//
// A crashplot run is load -> aggregate -> render, optionally followed by a
// summary. Each stage is a Step that reads and fills a shared model.Run.
// The pipeline stops at the first failing step; nothing is retried.
package pipeline
