package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when an analysis is started with zero
	// observations. Nothing can be aggregated, so the whole run fails.
	ErrEmptyInput = errors.New("analysis: no observations")

	// ErrDimensionMismatch is returned when observed and predicted vectors
	// have different lengths. This is a caller bug, not a runtime
	// condition, and is never recovered silently.
	ErrDimensionMismatch = errors.New("analysis: observed and predicted lengths differ")
)

// FitFailureReason classifies why a single (method, model) fit attempt
// failed. Failures are local: they never abort sibling models or methods.
type FitFailureReason string

const (
	// FailureDegenerate - the series cannot constrain the model:
	// fewer points than free parameters, or non-finite values.
	FailureDegenerate FitFailureReason = "degenerate_series"
	// FailureNonConvergence - the solver exhausted its evaluation budget
	// without converging.
	FailureNonConvergence FitFailureReason = "non_convergence"
)

// FitError describes a failed fit attempt for one (method, model) pair.
type FitError struct {
	Model  string
	Reason FitFailureReason
	Detail string
}

func (e *FitError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("fit %s: %s", e.Model, e.Reason)
	}
	return fmt.Sprintf("fit %s: %s: %s", e.Model, e.Reason, e.Detail)
}
