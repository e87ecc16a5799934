package planner

import "errors"

// ValidationError reports why a trip request was rejected.
// The exported Err* values are the only instances; compare with errors.Is.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingDestination = &ValidationError{Code: "missing_destination", Message: "destination is required"}
	ErrMissingDateRange   = &ValidationError{Code: "missing_date_range", Message: "date_from and date_to are required"}
	ErrInvalidDateOrder   = &ValidationError{Code: "invalid_date_order", Message: "date_from must be before date_to"}
	ErrStayTooLong        = &ValidationError{Code: "stay_too_long", Message: "date_to must be within 3650 days of date_from"}
	ErrInvalidCount       = &ValidationError{Code: "invalid_count", Message: "num_people and max_duration_days must be between 1 and 2147483647"}
	ErrInvalidBudget      = &ValidationError{Code: "invalid_budget", Message: "max_budget must be between 0 and 999999999999.99"}
)

// ErrDegenerateStay means pricing was asked for a stay shorter than one night.
// Validation makes this unreachable; seeing it is a programming error.
var ErrDegenerateStay = errors.New("degenerate stay: at least one night is required")

// ErrNoOptions is returned when a category has nothing to aggregate
var ErrNoOptions = errors.New("no priced options to aggregate")
