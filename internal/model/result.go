package model

import "math"

// Group is the aggregate of all rows sharing one Test value.
type Group struct {
	// Test is the category name.
	Test string `json:"test"`

	// Mean is the arithmetic mean of TimeNs across the group.
	// NaN when any member value was missing.
	Mean float64 `json:"mean_ns"`

	// Count is the number of rows in the group.
	Count int `json:"trials"`

	// SegFaults is the number of rows whose SegFaulted flag was set.
	SegFaults int `json:"segfaults"`
}

// AggregateResult is the ordered list of groups produced by aggregation.
// Order follows the first appearance of each category in the input.
type AggregateResult struct {
	// Groups holds one entry per distinct category.
	Groups []Group `json:"groups"`

	// HasSegFaulted mirrors Dataset.HasSegFaulted so writers know whether
	// SegFaults carries information.
	HasSegFaulted bool `json:"has_seg_faulted"`
}

// Len returns the number of groups.
func (r *AggregateResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Groups)
}

// Categories returns the category names in result order.
func (r *AggregateResult) Categories() []string {
	names := make([]string, 0, r.Len())
	for _, g := range r.groups() {
		names = append(names, g.Test)
	}
	return names
}

// Means returns the mean values in result order.
func (r *AggregateResult) Means() []float64 {
	means := make([]float64, 0, r.Len())
	for _, g := range r.groups() {
		means = append(means, g.Mean)
	}
	return means
}

// Lookup returns the group for the given category.
func (r *AggregateResult) Lookup(test string) (Group, bool) {
	for _, g := range r.groups() {
		if g.Test == test {
			return g, true
		}
	}
	return Group{}, false
}

// MaxMean returns the largest finite mean, or 0 when there is none.
func (r *AggregateResult) MaxMean() float64 {
	var maxMean float64
	for _, g := range r.groups() {
		if math.IsNaN(g.Mean) || math.IsInf(g.Mean, 0) {
			continue
		}
		if g.Mean > maxMean {
			maxMean = g.Mean
		}
	}
	return maxMean
}

func (r *AggregateResult) groups() []Group {
	if r == nil {
		return nil
	}
	return r.Groups
}
