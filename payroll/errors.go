/*
errors.go - Centralized error types for the derivation engine

PURPOSE:
  All engine error types in one place for consistency and discoverability.
  Callers (HTTP layer, stores) wrap these errors with additional context.

ERROR CATEGORIES:
  1. Validation errors - invalid date range
  2. Not-found errors  - employee or shift reference does not resolve
  3. Computation errors - malformed event sequences (best-effort, per day)
  4. Persistence errors - uniqueness conflicts under concurrent writes

PROPAGATION POLICY:
  ErrEmployeeNotFound, ErrShiftNotFound and ErrInvalidRange abort a
  derivation call immediately. A malformed event sequence never aborts the
  batch: the offending day is classified as an invalid outcome and logged.
  ErrRecordConflict is recoverable by re-reading the existing record.
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when end date precedes start date.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrEmployeeNotFound is returned when an employee reference does not resolve.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrShiftNotFound is returned when a shift reference does not resolve.
	ErrShiftNotFound = errors.New("shift not found")

	// ErrConceptNotFound is returned when a concept reference does not resolve.
	ErrConceptNotFound = errors.New("concept not found")

	// ErrConceptNotDeletable is returned when deleting a system concept.
	ErrConceptNotDeletable = errors.New("concept is not deletable")

	// ErrMalformedSequence marks an event sequence the resolvers cannot
	// classify (e.g. an OUT with no IN anywhere in context). Days carrying
	// it are still recorded, as a low-confidence invalid outcome.
	ErrMalformedSequence = errors.New("malformed event sequence")

	// ErrRecordConflict is a unique-constraint violation on
	// (employee, work date) during concurrent writes. Recoverable by
	// re-fetching the existing record.
	ErrRecordConflict = errors.New("hours record already exists for day")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidRangeError reports a reversed date range.
type InvalidRangeError struct {
	Start WorkDate
	End   WorkDate
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: end %s before start %s", e.End, e.Start)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// NotFoundError reports a missing employee or shift reference.
type NotFoundError struct {
	Kind string // "employee" or "shift"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	if e.Kind == "shift" {
		return ErrShiftNotFound
	}
	return ErrEmployeeNotFound
}

// RecordConflictError reports a day-uniqueness violation during persistence.
type RecordConflictError struct {
	EmployeeID string
	WorkDate   WorkDate
}

func (e *RecordConflictError) Error() string {
	return fmt.Sprintf("hours record already exists for employee %s on %s",
		e.EmployeeID, e.WorkDate)
}

func (e *RecordConflictError) Unwrap() error { return ErrRecordConflict }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing reference.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrShiftNotFound) ||
		errors.Is(err, ErrConceptNotFound)
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrConceptNotDeletable)
}

// IsRetryable returns true if the operation might succeed when re-invoked.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRecordConflict)
}
