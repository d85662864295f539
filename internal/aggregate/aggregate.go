// Package aggregate computes per-category statistics over a crash-timing dataset.
package aggregate

import "github.com/nao1215/crashplot/internal/model"

// accumulator collects the running totals for one category.
type accumulator struct {
	sum       float64
	count     int
	segFaults int
}

// Aggregate groups the dataset rows by Test and computes the mean of
// Time_ns for each group. Groups appear in the order their category is
// first seen. A NaN value makes its group mean NaN.
func Aggregate(ds *model.Dataset) *model.AggregateResult {
	result := &model.AggregateResult{
		Groups: make([]model.Group, 0),
	}
	if ds == nil {
		return result
	}
	result.HasSegFaulted = ds.HasSegFaulted

	order := make([]string, 0)
	totals := make(map[string]*accumulator)

	for _, row := range ds.Rows {
		acc, ok := totals[row.Test]
		if !ok {
			acc = &accumulator{}
			totals[row.Test] = acc
			order = append(order, row.Test)
		}
		acc.sum += row.TimeNs
		acc.count++
		if row.SegFaulted {
			acc.segFaults++
		}
	}

	for _, test := range order {
		acc := totals[test]
		result.Groups = append(result.Groups, model.Group{
			Test:      test,
			Mean:      acc.sum / float64(acc.count),
			Count:     acc.count,
			SegFaults: acc.segFaults,
		})
	}

	return result
}
