/*
engine.go - Derivation orchestrator

PURPOSE:
  Drives a derivation run: resolves the employee and shift, pulls the
  already-persisted clock events for the range, partitions them by day, runs
  the shift-appropriate resolver over every day, and hands the outcomes to
  the persistence writer. Returns the composite (record, concept, shift)
  rows for presentation.

EXECUTION MODEL:
  Single-threaded and synchronous per invocation: one employee, one range, a
  bounded in-memory loop over days. Night-shift day pairs create day-to-day
  dependencies that are trivial to keep sequential, so there is no fan-out.
  The whole batch commits as one transaction; re-invocation is safe because
  already-persisted days are skipped (see writer.go). Concurrent runs for
  the same employee over overlapping ranges must be serialized by the
  caller; the unique index in the store turns such races into detectable
  conflicts.
*/
package payroll

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine derives payroll hours records from clock events.
type Engine struct {
	dir    Directory
	events ClockEventSource
	store  TxHoursStore
	policy TolerancePolicy
	log    zerolog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithPolicy overrides the canonical tolerance policy.
func WithPolicy(p TolerancePolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithLogger injects the structured logger. Derivation runs derive a
// run-scoped sub-logger from it; the engine holds no global logging state.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine wires a derivation engine from its collaborators.
func NewEngine(dir Directory, events ClockEventSource, store TxHoursStore, opts ...Option) *Engine {
	e := &Engine{
		dir:    dir,
		events: events,
		store:  store,
		policy: DefaultTolerancePolicy(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// =============================================================================
// DERIVE HOURS - The batch entry point
// =============================================================================

// DeriveHours computes and persists the payroll records for one employee
// over an inclusive date range. Every day in range yields at least one
// record; overtime days yield two. Re-running the same arguments is a no-op
// for days that already have records.
func (e *Engine) DeriveHours(ctx context.Context, employeeID string, start, end WorkDate) ([]PayrollRow, error) {
	days, err := DateRange(start, end)
	if err != nil {
		return nil, err
	}

	emp, err := e.dir.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	shift, err := e.dir.GetShift(ctx, emp.ShiftID)
	if err != nil {
		return nil, err
	}

	runLog := e.log.With().
		Str("run_id", uuid.NewString()).
		Str("employee_id", employeeID).
		Str("shift_type", string(shift.Type)).
		Str("start", start.String()).
		Str("end", end.String()).
		Logger()

	// Night shifts close on the morning after the last day in range.
	fetchTo := end.EndOfDay()
	if shift.Type == ShiftNight {
		fetchTo = end.Next().EndOfDay()
	}
	events, err := e.events.ClockEventsInRange(ctx, employeeID, start.StartOfDay(), fetchTo)
	if err != nil {
		return nil, err
	}

	partition := PartitionEvents(events)
	resolver := ResolverFor(shift, e.policy, runLog)

	outcomes := make([][]DayOutcome, 0, len(days))
	for _, day := range days {
		outcomes = append(outcomes, resolver.Resolve(day, partition))
	}

	writer := &Writer{Store: e.store, Log: runLog}
	rows, err := writer.Commit(ctx, emp, shift, days, outcomes)
	if err != nil {
		return nil, err
	}

	runLog.Info().
		Int("days", len(days)).
		Int("records", len(rows)).
		Int("events", len(events)).
		Msg("derivation run committed")
	return rows, nil
}

// =============================================================================
// HOURS IN RANGE - Pure read accessor
// =============================================================================

// HoursInRange returns already-persisted rows for the employee and range,
// joined with their concept and shift. No computation, no writes.
func (e *Engine) HoursInRange(ctx context.Context, employeeID string, start, end WorkDate) ([]PayrollRow, error) {
	if end.Before(start) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	emp, err := e.dir.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	shift, err := e.dir.GetShift(ctx, emp.ShiftID)
	if err != nil {
		return nil, err
	}

	records, err := e.store.HoursInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]PayrollRow, 0, len(records))
	for _, rec := range records {
		concept, err := e.store.GetConcept(ctx, rec.ConceptID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, PayrollRow{Hours: rec, Concept: concept, Shift: shift})
	}
	return rows, nil
}
