package filter

import "fmt"

// DimensionMismatchError means a system hook returned a matrix or vector
// whose shape disagrees with the dimensions declared for the current cycle.
// The step that observed it is aborted and the carried estimate is left at
// its pre-step value.
type DimensionMismatchError struct {
	// Hook is the name of the offending hook
	Hook string
	// Rows and Cols are the observed dimensions
	Rows, Cols int
	// WantRows and WantCols are the declared dimensions
	WantRows, WantCols int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("invalid %s dimensions: [%d x %d], want [%d x %d]",
		e.Hook, e.Rows, e.Cols, e.WantRows, e.WantCols)
}

// SingularInnovationError means the innovation covariance S could not be
// solved during the correct step. The carried estimate is left at its
// pre-step value so the caller may retry with adjusted noise parameters or
// skip the measurement.
type SingularInnovationError struct {
	// Dim is the measurement dimension of the singular matrix
	Dim int
	// Err is the underlying solve failure
	Err error
}

func (e *SingularInnovationError) Error() string {
	return fmt.Sprintf("failed to solve innovation covariance [%d x %d]: %v", e.Dim, e.Dim, e.Err)
}

func (e *SingularInnovationError) Unwrap() error { return e.Err }

// SequencingError means predict or correct was called out of the expected
// order: correct before any predict, predict twice without an intervening
// correct, or any call before initialization. Nothing is mutated.
type SequencingError struct {
	// Op is the operation that was attempted
	Op string
	// State is the filter state the operation was attempted in
	State string
}

func (e *SequencingError) Error() string {
	return fmt.Sprintf("invalid filter sequencing: %s called in %s state", e.Op, e.State)
}
