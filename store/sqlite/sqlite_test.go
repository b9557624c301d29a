package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigrh/hours-engine/payroll"
	"github.com/sigrh/hours-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// seedDirectory inserts the shift and employee rows the foreign keys require.
func seedDirectory(t *testing.T, store *sqlite.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.SaveShift(ctx, payroll.Shift{
		ID: "shift-day", Description: "Turno diurno", Type: payroll.ShiftDay,
		WorkingHours: 8, WorkingDays: 5,
	}))
	require.NoError(t, store.SaveEmployee(ctx, payroll.Employee{
		ID: "emp-1", Name: "Lucía Fernández", ShiftID: "shift-day",
	}))
}

func hoursRecord(day payroll.WorkDate, conceptID string) payroll.HoursRecord {
	in := day.At(8, 0, 0)
	out := day.At(16, 0, 0)
	summary := 8 * time.Hour
	return payroll.HoursRecord{
		ID:           "rec-" + day.String() + "-" + conceptID,
		EmployeeID:   "emp-1",
		WorkDate:     day,
		ShiftID:      "shift-day",
		ConceptID:    conceptID,
		RegisterType: payroll.RegisterPresence,
		CheckCount:   2,
		FirstCheckIn: &in,
		LastCheckOut: &out,
		SummaryTime:  &summary,
		Pay:          true,
		Status:       payroll.StatusPayable,
		Notes:        "El empleado completó su jornada laboral.",
	}
}

// =============================================================================
// DIRECTORY TESTS
// =============================================================================

func TestStore_SaveAndGetShift(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	shift := payroll.Shift{
		ID: "shift-night", Description: "Turno nocturno", Type: payroll.ShiftNight,
		WorkingHours: 7.5, WorkingDays: 6,
	}
	require.NoError(t, store.SaveShift(ctx, shift))

	got, err := store.GetShift(ctx, "shift-night")
	require.NoError(t, err)
	assert.Equal(t, shift, got)

	// Upsert keeps the same row
	shift.WorkingHours = 8
	require.NoError(t, store.SaveShift(ctx, shift))
	got, err = store.GetShift(ctx, "shift-night")
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.WorkingHours)
}

func TestStore_GetShift_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetShift(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrShiftNotFound)
}

func TestStore_GetEmployee_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetEmployee(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)

	var nf *payroll.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "employee", nf.Kind)
	assert.Equal(t, "ghost", nf.ID)
}

// =============================================================================
// CLOCK EVENT TESTS
// =============================================================================

func TestStore_ClockEventsInRange(t *testing.T) {
	// GIVEN: Punches inside and outside the query window
	// WHEN: Querying the window
	// THEN: Only in-window punches return, ascending, bounds inclusive

	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	day := payroll.NewWorkDate(2025, time.March, 3)
	punches := []payroll.ClockEvent{
		{ID: "before", EmployeeID: "emp-1", At: day.Prev().At(16, 0, 0), Type: payroll.EventOut, Source: payroll.SourceTotem},
		{ID: "start", EmployeeID: "emp-1", At: day.At(0, 0, 0), Type: payroll.EventIn, Source: payroll.SourceTotem},
		{ID: "mid", EmployeeID: "emp-1", At: day.At(12, 0, 0), Type: payroll.EventOut, Source: payroll.SourceManual},
		{ID: "after", EmployeeID: "emp-1", At: day.Next().At(8, 0, 0), Type: payroll.EventIn, Source: payroll.SourceTotem},
	}
	for _, ev := range punches {
		require.NoError(t, store.SaveClockEvent(ctx, ev))
	}

	events, err := store.ClockEventsInRange(ctx, "emp-1", day.StartOfDay(), day.At(23, 0, 0))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "start", events[0].ID)
	assert.Equal(t, "mid", events[1].ID)
	assert.Equal(t, payroll.SourceManual, events[1].Source)
	assert.True(t, events[0].At.Equal(day.At(0, 0, 0)))
}

func TestStore_ClockEventsInRange_DeviceIDRoundTrip(t *testing.T) {
	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	day := payroll.NewWorkDate(2025, time.March, 3)
	require.NoError(t, store.SaveClockEvent(ctx, payroll.ClockEvent{
		ID: "e1", EmployeeID: "emp-1", At: day.At(8, 0, 0),
		Type: payroll.EventIn, Source: payroll.SourceTotem, DeviceID: "totem-7",
	}))
	require.NoError(t, store.SaveClockEvent(ctx, payroll.ClockEvent{
		ID: "e2", EmployeeID: "emp-1", At: day.At(16, 0, 0),
		Type: payroll.EventOut, Source: payroll.SourceManual,
	}))

	events, err := store.ClockEventsInRange(ctx, "emp-1", day.StartOfDay(), day.EndOfDay())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "totem-7", events[0].DeviceID)
	assert.Empty(t, events[1].DeviceID, "manual punches carry no device")
}

// =============================================================================
// CONCEPT REGISTRY TESTS
// =============================================================================

func TestStore_GetOrCreateConcept_Deduplicates(t *testing.T) {
	// GIVEN: The same description registered twice
	// WHEN: Resolving both times
	// THEN: One row, same ID

	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, payroll.ConceptFullDay, first.Description)
	assert.False(t, first.Deletable, "engine concepts are system concepts")

	second, err := store.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	concepts, err := store.ListConcepts(ctx)
	require.NoError(t, err)
	assert.Len(t, concepts, 1)
}

func TestStore_GetConcept_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetConcept(context.Background(), "ghost")
	assert.ErrorIs(t, err, payroll.ErrConceptNotFound)
}

func TestStore_DeleteConcept_SystemConceptRefused(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c, err := store.GetOrCreateConcept(ctx, payroll.ConceptAbsence)
	require.NoError(t, err)

	err = store.DeleteConcept(ctx, c.ID)
	assert.ErrorIs(t, err, payroll.ErrConceptNotDeletable)

	_, err = store.GetConcept(ctx, c.ID)
	assert.NoError(t, err, "refused delete must leave the row in place")
}

// =============================================================================
// HOURS RECORD TESTS
// =============================================================================

func TestStore_InsertHours_RoundTrip(t *testing.T) {
	// GIVEN: A fully-populated record
	// WHEN: Inserting and reading it back
	// THEN: All fields survive, punch instants to the second

	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	concept, err := store.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
	require.NoError(t, err)

	day := payroll.NewWorkDate(2025, time.March, 3)
	rec := hoursRecord(day, concept.ID)
	require.NoError(t, store.InsertHours(ctx, rec))

	got, err := store.HoursForDay(ctx, "emp-1", day)
	require.NoError(t, err)
	require.Len(t, got, 1)

	stored := got[0]
	assert.Equal(t, rec.ID, stored.ID)
	assert.True(t, stored.WorkDate.Equal(day))
	assert.Equal(t, payroll.RegisterPresence, stored.RegisterType)
	assert.Equal(t, 2, stored.CheckCount)
	require.NotNil(t, stored.FirstCheckIn)
	require.NotNil(t, stored.LastCheckOut)
	assert.True(t, stored.FirstCheckIn.Equal(*rec.FirstCheckIn))
	assert.True(t, stored.LastCheckOut.Equal(*rec.LastCheckOut))
	require.NotNil(t, stored.SummaryTime)
	assert.Equal(t, 8*time.Hour, *stored.SummaryTime)
	assert.Nil(t, stored.ExtraHours)
	assert.True(t, stored.Pay)
	assert.Equal(t, payroll.StatusPayable, stored.Status)
	assert.Equal(t, rec.Notes, stored.Notes)
}

func TestStore_InsertHours_DuplicateDayConcept_Conflict(t *testing.T) {
	// GIVEN: A record for (emp-1, March 3, full day)
	// WHEN: Inserting the same employee-day-concept again
	// THEN: RecordConflictError from the unique index

	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	concept, err := store.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
	require.NoError(t, err)

	day := payroll.NewWorkDate(2025, time.March, 3)
	require.NoError(t, store.InsertHours(ctx, hoursRecord(day, concept.ID)))

	dup := hoursRecord(day, concept.ID)
	dup.ID = "rec-duplicate"
	err = store.InsertHours(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrRecordConflict)

	var conflict *payroll.RecordConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "emp-1", conflict.EmployeeID)
	assert.True(t, conflict.WorkDate.Equal(day))
}

func TestStore_InsertHours_SameDayDistinctConcepts_Allowed(t *testing.T) {
	// The overtime day legitimately carries two rows under different concepts.

	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	base, err := store.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
	require.NoError(t, err)
	extra, err := store.GetOrCreateConcept(ctx, payroll.ConceptOvertime)
	require.NoError(t, err)

	day := payroll.NewWorkDate(2025, time.March, 4)
	require.NoError(t, store.InsertHours(ctx, hoursRecord(day, base.ID)))
	require.NoError(t, store.InsertHours(ctx, hoursRecord(day, extra.ID)))

	exists, err := store.HoursExistForDay(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := store.HoursForDay(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStore_HoursInRange_OrderedAndBounded(t *testing.T) {
	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	concept, err := store.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
	require.NoError(t, err)

	monday := payroll.NewWorkDate(2025, time.March, 3)
	// Insert out of date order
	for _, day := range []payroll.WorkDate{monday.AddDays(2), monday, monday.AddDays(4), monday.Next()} {
		require.NoError(t, store.InsertHours(ctx, hoursRecord(day, concept.ID)))
	}

	got, err := store.HoursInRange(ctx, "emp-1", monday, monday.AddDays(2))
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].WorkDate.Before(got[i].WorkDate), "rows should ascend by work date")
	}
}

// =============================================================================
// TRANSACTION TESTS
// =============================================================================

func TestStore_WithTx_RollsBackOnError(t *testing.T) {
	// GIVEN: A transaction that inserts a record then fails
	// WHEN: WithTx returns the error
	// THEN: Nothing is persisted

	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	day := payroll.NewWorkDate(2025, time.March, 3)
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(tx payroll.HoursTx) error {
		concept, err := tx.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
		if err != nil {
			return err
		}
		if err := tx.InsertHours(ctx, hoursRecord(day, concept.ID)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	exists, err := store.HoursExistForDay(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.False(t, exists, "rolled-back insert must not be visible")

	concepts, err := store.ListConcepts(ctx)
	require.NoError(t, err)
	assert.Empty(t, concepts, "concept registration rolls back with the batch")
}

func TestStore_WithTx_CommitsOnSuccess(t *testing.T) {
	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	day := payroll.NewWorkDate(2025, time.March, 3)
	err := store.WithTx(ctx, func(tx payroll.HoursTx) error {
		concept, err := tx.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
		if err != nil {
			return err
		}
		return tx.InsertHours(ctx, hoursRecord(day, concept.ID))
	})
	require.NoError(t, err)

	exists, err := store.HoursExistForDay(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_WithTx_ReadsSeeStagedWrites(t *testing.T) {
	// The writer's existence check runs inside the same transaction as its
	// inserts, so staged rows must be visible to it.

	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	day := payroll.NewWorkDate(2025, time.March, 3)
	err := store.WithTx(ctx, func(tx payroll.HoursTx) error {
		concept, err := tx.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
		if err != nil {
			return err
		}
		if err := tx.InsertHours(ctx, hoursRecord(day, concept.ID)); err != nil {
			return err
		}
		exists, err := tx.HoursExistForDay(ctx, "emp-1", day)
		if err != nil {
			return err
		}
		assert.True(t, exists, "insert must be visible within its own transaction")
		return nil
	})
	require.NoError(t, err)
}

// =============================================================================
// RESET
// =============================================================================

func TestStore_Reset_ClearsEverything(t *testing.T) {
	store := newTestStore(t)
	seedDirectory(t, store)
	ctx := context.Background()

	concept, err := store.GetOrCreateConcept(ctx, payroll.ConceptFullDay)
	require.NoError(t, err)
	day := payroll.NewWorkDate(2025, time.March, 3)
	require.NoError(t, store.InsertHours(ctx, hoursRecord(day, concept.ID)))

	require.NoError(t, store.Reset(ctx))

	employees, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	concepts, err := store.ListConcepts(ctx)
	require.NoError(t, err)
	assert.Empty(t, concepts)

	exists, err := store.HoursExistForDay(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.False(t, exists)
}
