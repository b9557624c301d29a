/*
writer.go - Idempotent persistence of a derivation batch

PURPOSE:
  Commits the computed outcomes of a run in one transaction. For every day:
  if any record already exists for (employee, work date), the day is skipped
  and the existing rows are returned; otherwise the day's concepts are
  registered (atomic get-or-create) and its records inserted.

GUARANTEES:
  - At most one record set per (employee, work date): the existence check
    plus the store's unique index.
  - All-or-nothing: a failure on any day rolls back the whole batch, so a
    retry never sees a half-committed range.
  - A conflict raced in by a concurrent run is absorbed by re-reading the
    winner's records instead of failing the caller.
*/
package payroll

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Writer persists derivation outcomes.
type Writer struct {
	Store TxHoursStore
	Log   zerolog.Logger
}

// Commit writes the per-day outcomes inside one transaction and returns the
// composite presentation rows, existing rows included.
func (w *Writer) Commit(ctx context.Context, emp Employee, shift Shift, days []WorkDate, outcomes [][]DayOutcome) ([]PayrollRow, error) {
	var rows []PayrollRow

	err := w.Store.WithTx(ctx, func(tx HoursTx) error {
		rows = rows[:0] // transaction retries must not double-collect
		for i, day := range days {
			dayRows, err := w.commitDay(ctx, tx, emp, shift, day, outcomes[i])
			if err != nil {
				return err
			}
			rows = append(rows, dayRows...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (w *Writer) commitDay(ctx context.Context, tx HoursTx, emp Employee, shift Shift, day WorkDate, outcomes []DayOutcome) ([]PayrollRow, error) {
	exists, err := tx.HoursExistForDay(ctx, emp.ID, day)
	if err != nil {
		return nil, err
	}
	if exists {
		w.Log.Debug().Str("day", day.String()).Msg("day already derived, keeping existing records")
		return w.existingRows(ctx, tx, emp, shift, day)
	}

	var rows []PayrollRow
	for _, outcome := range outcomes {
		concept, err := tx.GetOrCreateConcept(ctx, outcome.Concept)
		if err != nil {
			return nil, err
		}

		rec := outcome.Record
		rec.ID = uuid.NewString()
		rec.EmployeeID = emp.ID
		rec.ShiftID = shift.ID
		rec.ConceptID = concept.ID

		if err := tx.InsertHours(ctx, rec); err != nil {
			if errors.Is(err, ErrRecordConflict) {
				// A concurrent run won the day. Take its records.
				w.Log.Warn().Str("day", day.String()).Msg("concurrent write detected, re-reading existing records")
				return w.existingRows(ctx, tx, emp, shift, day)
			}
			return nil, err
		}
		rows = append(rows, PayrollRow{Hours: rec, Concept: concept, Shift: shift})
	}
	return rows, nil
}

func (w *Writer) existingRows(ctx context.Context, tx HoursTx, emp Employee, shift Shift, day WorkDate) ([]PayrollRow, error) {
	records, err := tx.HoursForDay(ctx, emp.ID, day)
	if err != nil {
		return nil, err
	}
	rows := make([]PayrollRow, 0, len(records))
	for _, rec := range records {
		concept, err := tx.GetConcept(ctx, rec.ConceptID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, PayrollRow{Hours: rec, Concept: concept, Shift: shift})
	}
	return rows, nil
}
