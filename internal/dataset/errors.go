package dataset

import "errors"

var (
	// ErrInputNotFound is returned when the CSV file does not exist or cannot be opened.
	ErrInputNotFound = errors.New("input not found")

	// ErrInputMalformed is returned when the file is not valid CSV or does not
	// have the shape crashplot needs (required columns, numeric times).
	ErrInputMalformed = errors.New("input malformed")
)
