/*
store.go - Persistence interfaces consumed by the engine

PURPOSE:
  Defines the boundary between the derivation logic and the database.
  Employees, shifts and clock events are read-only collaborators; concepts
  and hours records are the engine's outputs. Different implementations can
  use SQLite, PostgreSQL, or in-memory storage.

KEY INTERFACES:
  Directory:        Employee and shift lookups (read-only)
  ClockEventSource: Clock events for an employee over a time window (read-only)
  ConceptRegistry:  Atomic get-or-create of outcome labels
  HoursStore:       Append-only hours-record persistence + day existence checks
  TxHoursStore:     Transactional wrapper for atomic batch commits

IDEMPOTENCY CONTRACT:
  HoursStore exposes a day-level existence check so a re-run of the same
  employee and range skips already-persisted days instead of duplicating
  them. The backing schema additionally carries a unique constraint on
  (employee_id, work_date, concept_id) so that a concurrent race degrades
  into a detectable conflict, never into duplicate rows.

ATOMIC BATCHES:
  A derivation run commits all of its days inside one transaction via
  TxHoursStore.WithTx. Partial failure rolls the whole run back.
*/
package payroll

import (
	"context"
	"time"
)

// =============================================================================
// READ-ONLY COLLABORATORS
// =============================================================================

// Directory resolves employee and shift references.
type Directory interface {
	// GetEmployee returns the employee, or a NotFoundError.
	GetEmployee(ctx context.Context, id string) (Employee, error)

	// GetShift returns the shift, or a NotFoundError.
	GetShift(ctx context.Context, id string) (Shift, error)
}

// ClockEventSource supplies the persisted clock events for one employee
// within inclusive timestamp bounds, ordered ascending.
type ClockEventSource interface {
	ClockEventsInRange(ctx context.Context, employeeID string, from, to time.Time) ([]ClockEvent, error)
}

// =============================================================================
// CONCEPT REGISTRY
// =============================================================================

// ConceptRegistry maps outcome descriptions to stable Concept rows.
type ConceptRegistry interface {
	// GetOrCreateConcept returns the concept for a description, creating it
	// if absent. Implementations MUST use a single atomic
	// lookup-or-insert-on-conflict statement: repeated or concurrent calls
	// with the same description converge to the same id.
	GetOrCreateConcept(ctx context.Context, description string) (Concept, error)

	// GetConcept resolves a concept by id.
	GetConcept(ctx context.Context, id string) (Concept, error)
}

// =============================================================================
// HOURS STORE
// =============================================================================

// HoursStore persists derived hours records. Append-only: records are never
// updated; a re-run skips days that already have records.
type HoursStore interface {
	// InsertHours appends one record. A day-uniqueness violation surfaces
	// as a RecordConflictError.
	InsertHours(ctx context.Context, rec HoursRecord) error

	// HoursExistForDay reports whether any record exists for the employee
	// and work date.
	HoursExistForDay(ctx context.Context, employeeID string, day WorkDate) (bool, error)

	// HoursForDay returns the existing records (one, or two for overtime)
	// for the employee and work date, ordered by insertion.
	HoursForDay(ctx context.Context, employeeID string, day WorkDate) ([]HoursRecord, error)

	// HoursInRange returns all records for the employee with work dates in
	// [from, to], ordered by work date.
	HoursInRange(ctx context.Context, employeeID string, from, to WorkDate) ([]HoursRecord, error)
}

// TxHoursStore adds transactional scope over the write-side interfaces.
type TxHoursStore interface {
	HoursStore
	ConceptRegistry

	// WithTx executes fn within one transaction. If fn returns an error the
	// whole batch rolls back; otherwise it commits.
	WithTx(ctx context.Context, fn func(HoursTx) error) error
}

// HoursTx is the store surface available inside a transaction.
type HoursTx interface {
	HoursStore
	ConceptRegistry
}
