package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidDigit indicates a character other than '1'..'9' in textual input.
	ErrInvalidDigit = errors.New("gridgraph: cell must be a digit 1-9")
	// ErrInvalidCost indicates a numeric cell cost outside [MinCost, MaxCost].
	ErrInvalidCost = errors.New("gridgraph: cell cost out of range")
	// ErrOutOfBounds indicates a point outside the declared grid bounds.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBadTileFactor indicates an expansion factor smaller than 1.
	ErrBadTileFactor = errors.New("gridgraph: tile factor must be at least 1")
)

// ParseError reports where textual grid input was rejected.
// Line and Column are 1-based; Column is 0 when the whole line is at fault.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error { return e.Err }
