package engine

import "fmt"

// ValidationError reports a required booking field missing or malformed
// before the engine runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("validation failed: %s is required", e.Field)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// ConflictError reports that the selected employee lost the slot between
// availability check and submit. Recoverable: re-run availability and
// let the customer pick again.
type ConflictError struct {
	EmployeeName string
	Date         string
	StartTime    string
	EndTime      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s is no longer available on %s between %s and %s",
		e.EmployeeName, e.Date, e.StartTime, e.EndTime)
}

// StoreError wraps a failed persistence call so the boundary can report
// it as retryable, distinct from validation and conflict failures.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// StateError reports a booking status transition not permitted by the
// lifecycle. The record is left unchanged.
type StateError struct {
	From Status
	To   Status
}

func (e *StateError) Error() string {
	if IsTerminal(e.From) {
		return fmt.Sprintf("no transitions allowed from %s", e.From)
	}
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}
