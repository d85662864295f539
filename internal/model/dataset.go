package model

// Column names recognised in the crash-timing CSV header.
// Matching is exact and case-sensitive.
const (
	// ColumnTest holds the test category (for example "Heap" or "Kernel").
	ColumnTest = "Test"

	// ColumnTimeNs holds the elapsed time until the crash, in nanoseconds.
	ColumnTimeNs = "Time_ns"

	// ColumnSegFaulted is optional and records whether the trial ended in SIGSEGV.
	ColumnSegFaulted = "SegFaulted"
)

// Row is a single crash-timing measurement.
type Row struct {
	// Test is the category the measurement belongs to.
	Test string `json:"test"`

	// TimeNs is the elapsed time in nanoseconds.
	// A missing value is stored as NaN.
	TimeNs float64 `json:"time_ns"`

	// SegFaulted reports whether the trial crashed.
	// Only meaningful when Dataset.HasSegFaulted is true.
	SegFaulted bool `json:"seg_faulted"`
}

// Dataset is the in-memory crash-timing table.
// It is created once per run and treated as read-only afterwards.
type Dataset struct {
	// Rows holds the measurements in file order.
	Rows []Row `json:"rows"`

	// HasSegFaulted is true when the input carried a SegFaulted column.
	HasSegFaulted bool `json:"has_seg_faulted"`
}

// Len returns the number of rows in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// IsEmpty reports whether the dataset has no rows.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}
