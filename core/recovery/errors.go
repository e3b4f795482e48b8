package recovery

import (
	"errors"
	"fmt"
)

// ErrNoData is returned, wrapped in a [*NoDataError], when every strategy in
// the pipeline fails to produce structured data. Callers should match it
// with errors.Is.
var ErrNoData = errors.New("structout: no structured data found")

// Attempt records one failed strategy run for diagnostics: the 1-based
// strategy index, its name, the exact text handed to the parser, and the
// parse error.
type Attempt struct {
	Strategy int
	Name     string
	Input    string
	Err      error
}

// NoDataError reports that the whole pipeline was exhausted without yielding
// data. Attempts holds one entry per strategy that ran, in order.
type NoDataError struct {
	Attempts []Attempt
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("structout: no structured data found after %d strategies", len(e.Attempts))
}

func (e *NoDataError) Unwrap() error {
	return ErrNoData
}
