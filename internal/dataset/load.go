package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/nao1215/crashplot/internal/model"
)

// DefaultInputFile is the CSV read when no path is given.
const DefaultInputFile = "mem_crash_results.csv"

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\ufeff"

// columns holds the header positions of the columns crashplot uses.
// segFaulted is -1 when the column is absent.
type columns struct {
	test       int
	timeNs     int
	segFaulted int
}

// Load reads the CSV file at path into a Dataset.
// An empty path means DefaultInputFile in the current directory.
func Load(path string) (*model.Dataset, error) {
	if path == "" {
		path = DefaultInputFile
	}

	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}
	defer f.Close()

	ds, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadReader parses crash-timing CSV from r.
func LoadReader(r io.Reader) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", ErrInputMalformed)
		}
		return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	ds := &model.Dataset{
		Rows:          make([]model.Row, 0),
		HasSegFaulted: cols.segFaulted >= 0,
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputMalformed, err)
		}

		line, _ := reader.FieldPos(0)
		row, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInputMalformed, line, err)
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// locateColumns finds the required and optional columns in the header.
func locateColumns(header []string) (columns, error) {
	cols := columns{test: -1, timeNs: -1, segFaulted: -1}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		switch name {
		case model.ColumnTest:
			cols.test = i
		case model.ColumnTimeNs:
			cols.timeNs = i
		case model.ColumnSegFaulted:
			cols.segFaulted = i
		}
	}

	if cols.test < 0 {
		return cols, fmt.Errorf("%w: missing column %q", ErrInputMalformed, model.ColumnTest)
	}
	if cols.timeNs < 0 {
		return cols, fmt.Errorf("%w: missing column %q", ErrInputMalformed, model.ColumnTimeNs)
	}
	return cols, nil
}

// parseRow converts one CSV record into a Row.
func parseRow(record []string, cols columns) (model.Row, error) {
	// Only leading blanks are trimmed, so "Heap " and "Heap" stay distinct.
	test := record[cols.test]
	if strings.TrimSpace(test) == "" {
		return model.Row{}, fmt.Errorf("empty %s value", model.ColumnTest)
	}

	timeNs, err := parseTime(record[cols.timeNs])
	if err != nil {
		return model.Row{}, err
	}

	row := model.Row{Test: test, TimeNs: timeNs}

	if cols.segFaulted >= 0 {
		crashed, err := parseBool(record[cols.segFaulted])
		if err != nil {
			return model.Row{}, err
		}
		row.SegFaulted = crashed
	}

	return row, nil
}

// parseTime parses a Time_ns cell. An empty cell is a missing value and
// becomes NaN so that it propagates into the group mean.
func parseTime(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", model.ColumnTimeNs, cell)
	}
	return v, nil
}

// parseBool parses a SegFaulted cell. Empty cells count as false.
func parseBool(cell string) (bool, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(cell)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q", model.ColumnSegFaulted, cell)
	}
	return v, nil
}
