package result

import (
	"errors"
	"fmt"
)

// ErrNoResult is returned by One when a row was required but none exists.
var ErrNoResult = errors.New("litesql: no result found")

// ErrNotRowSet is returned by Mappings when the result came from a scalar
// or mutation outcome and therefore carries no named columns.
var ErrNotRowSet = errors.New("litesql: result does not contain row data")

// MultipleResultsError is returned by One and OneOrNone when more rows are
// present than the call allows. Count is the number of rows observed.
type MultipleResultsError struct {
	Count int
}

func (e *MultipleResultsError) Error() string {
	return fmt.Sprintf("litesql: expected at most one result, got %d", e.Count)
}
