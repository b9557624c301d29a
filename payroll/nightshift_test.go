package payroll_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigrh/hours-engine/payroll"
)

// =============================================================================
// TEST SETUP
// =============================================================================

var nightShift = payroll.Shift{
	ID:           "shift-night",
	Description:  "Turno nocturno",
	Type:         payroll.ShiftNight,
	WorkingHours: 8,
	WorkingDays:  6,
}

func newNightResolver() *payroll.NightShiftResolver {
	return &payroll.NightShiftResolver{
		Shift:  nightShift,
		Policy: payroll.DefaultTolerancePolicy(),
		Log:    zerolog.Nop(),
	}
}

func resolveNight(t *testing.T, start payroll.WorkDate, events ...payroll.ClockEvent) []payroll.DayOutcome {
	t.Helper()
	return newNightResolver().Resolve(start, payroll.PartitionEvents(events))
}

// =============================================================================
// CROSS-MIDNIGHT SHIFTS
// =============================================================================

func TestNightShift_ExactHours_AttributedToStartDay(t *testing.T) {
	// GIVEN: IN Monday 22:00, OUT Tuesday 06:00 against an 8h night shift
	// WHEN: Resolving Monday as the shift-start day
	// THEN: One payable record dated Monday even though the exit fell on
	//       Tuesday

	monday := payroll.NewWorkDate(2025, time.March, 3)
	in := monday.At(22, 0, 0)
	out := monday.Next().At(6, 0, 0)

	outcomes := resolveNight(t, monday,
		punchAt("e1", in, payroll.EventIn),
		punchAt("e2", out, payroll.EventOut),
	)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptFullDay, outcomes[0].Concept)

	rec := outcomes[0].Record
	assert.True(t, rec.WorkDate.Equal(monday), "record should attach to the shift-start day")
	assert.Equal(t, payroll.RegisterPresence, rec.RegisterType)
	assert.Equal(t, 2, rec.CheckCount)
	require.NotNil(t, rec.FirstCheckIn)
	require.NotNil(t, rec.LastCheckOut)
	assert.True(t, rec.FirstCheckIn.Equal(in))
	assert.True(t, rec.LastCheckOut.Equal(out))
	require.NotNil(t, rec.SummaryTime)
	assert.Equal(t, 8*time.Hour, *rec.SummaryTime)
	assert.True(t, rec.Pay)
	assert.Equal(t, payroll.StatusPayable, rec.Status)
}

func TestNightShift_Overtime_TwoRecords(t *testing.T) {
	// GIVEN: IN Monday 22:00, OUT Tuesday 07:30 (9h30m)
	// WHEN: Resolving Monday
	// THEN: Baseline complete night plus a pending 1h30m overtime record,
	//       both dated Monday

	monday := payroll.NewWorkDate(2025, time.March, 3)
	outcomes := resolveNight(t, monday,
		punchAt("e1", monday.At(22, 0, 0), payroll.EventIn),
		punchAt("e2", monday.Next().At(7, 30, 0), payroll.EventOut),
	)

	require.Len(t, outcomes, 2)
	assert.Equal(t, payroll.ConceptFullDay, outcomes[0].Concept)
	assert.Equal(t, payroll.ConceptOvertime, outcomes[1].Concept)
	for _, o := range outcomes {
		assert.True(t, o.Record.WorkDate.Equal(monday))
	}
	require.NotNil(t, outcomes[1].Record.ExtraHours)
	assert.Equal(t, time.Hour+30*time.Minute, *outcomes[1].Record.ExtraHours)
	assert.Equal(t, payroll.StatusPendingValidation, outcomes[1].Record.Status)
}

func TestNightShift_Shortfall(t *testing.T) {
	// GIVEN: IN Monday 23:30, OUT Tuesday 05:30 (6h)
	// WHEN: Resolving Monday
	// THEN: Not-payable shortfall with a 1h30m deficit

	monday := payroll.NewWorkDate(2025, time.March, 3)
	outcomes := resolveNight(t, monday,
		punchAt("e1", monday.At(23, 30, 0), payroll.EventIn),
		punchAt("e2", monday.Next().At(5, 30, 0), payroll.EventOut),
	)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptShortfall, outcomes[0].Concept)
	require.NotNil(t, outcomes[0].Record.ExtraHours)
	assert.Equal(t, time.Hour+30*time.Minute, *outcomes[0].Record.ExtraHours)
	assert.False(t, outcomes[0].Record.Pay)
}

// =============================================================================
// MISSING EXIT VARIANTS
// =============================================================================

func TestNightShift_MissingExit_EstimatedFullShift(t *testing.T) {
	// GIVEN: IN Monday 22:00 and nothing on Tuesday
	// WHEN: Resolving Monday
	// THEN: Payable presence with the summary estimated at the expected
	//       hours. Night crews forget the morning punch routinely; docking
	//       the whole shift for it is the wrong default.

	monday := payroll.NewWorkDate(2025, time.March, 3)
	in := monday.At(22, 0, 0)
	outcomes := resolveNight(t, monday, punchAt("e1", in, payroll.EventIn))

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptMissingExit, outcomes[0].Concept)

	rec := outcomes[0].Record
	assert.Equal(t, payroll.RegisterPresence, rec.RegisterType)
	assert.Equal(t, 1, rec.CheckCount)
	require.NotNil(t, rec.FirstCheckIn)
	assert.True(t, rec.FirstCheckIn.Equal(in))
	assert.Nil(t, rec.LastCheckOut)
	require.NotNil(t, rec.SummaryTime)
	assert.Equal(t, 8*time.Hour, *rec.SummaryTime)
	assert.True(t, rec.Pay)
	assert.Equal(t, payroll.StatusPayable, rec.Status)
}

func TestNightShift_ForgotExitThenReentered(t *testing.T) {
	// GIVEN: IN Monday 22:00, then the next punch is Tuesday 22:00 IN
	//        (the morning exit was never registered)
	// WHEN: Resolving Monday
	// THEN: Payable presence with estimated summary and check count 2

	monday := payroll.NewWorkDate(2025, time.March, 3)
	in := monday.At(22, 0, 0)
	outcomes := resolveNight(t, monday,
		punchAt("e1", in, payroll.EventIn),
		punchAt("e2", monday.Next().At(22, 0, 0), payroll.EventIn),
	)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptMissingExit, outcomes[0].Concept)

	rec := outcomes[0].Record
	assert.Equal(t, 2, rec.CheckCount)
	require.NotNil(t, rec.FirstCheckIn)
	assert.True(t, rec.FirstCheckIn.Equal(in))
	assert.Nil(t, rec.LastCheckOut)
	require.NotNil(t, rec.SummaryTime)
	assert.Equal(t, 8*time.Hour, *rec.SummaryTime)
	assert.True(t, rec.Pay)
}

// =============================================================================
// ABSENCE AND MALFORMED SEQUENCES
// =============================================================================

func TestNightShift_NoEvents_Absence(t *testing.T) {
	monday := payroll.NewWorkDate(2025, time.March, 3)
	outcomes := resolveNight(t, monday)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptAbsence, outcomes[0].Concept)
	assert.Equal(t, payroll.RegisterAbsence, outcomes[0].Record.RegisterType)
	assert.False(t, outcomes[0].Record.Pay)
}

func TestNightShift_IsolatedMorningEntry_InvalidRecord(t *testing.T) {
	// GIVEN: No punch Monday evening, a lone IN Tuesday 06:00 with no OUT
	//        after it
	// WHEN: Resolving Monday
	// THEN: Invalid-record outcome instead of a plain absence

	monday := payroll.NewWorkDate(2025, time.March, 3)
	outcomes := resolveNight(t, monday,
		punchAt("e1", monday.Next().At(6, 0, 0), payroll.EventIn),
	)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptInvalidRecord, outcomes[0].Concept)
	assert.Equal(t, payroll.RegisterAbsence, outcomes[0].Record.RegisterType)
	assert.Equal(t, 1, outcomes[0].Record.CheckCount)
}

func TestNightShift_StartDayClosesWithOut_Absence(t *testing.T) {
	// GIVEN: Monday's last event is an OUT (no anchoring entry)
	// WHEN: Resolving Monday
	// THEN: Plain absence; a shift cannot be anchored to an exit punch

	monday := payroll.NewWorkDate(2025, time.March, 3)
	outcomes := resolveNight(t, monday,
		punchAt("e1", monday.At(6, 0, 0), payroll.EventOut),
	)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptAbsence, outcomes[0].Concept)
}

// =============================================================================
// NON-BUSINESS DAYS
// =============================================================================

func TestNightShift_SundayStart_NonBusiness(t *testing.T) {
	// GIVEN: Sunday as the shift-start day
	// WHEN: Resolving
	// THEN: DIA_NO_HABIL archived, even if punches exist

	sunday := payroll.NewWorkDate(2025, time.March, 9)
	outcomes := resolveNight(t, sunday,
		punchAt("e1", sunday.At(22, 0, 0), payroll.EventIn),
	)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptNonBusiness, outcomes[0].Concept)
	assert.Equal(t, payroll.RegisterNonBusiness, outcomes[0].Record.RegisterType)
	assert.Equal(t, payroll.StatusArchived, outcomes[0].Record.Status)
	assert.Equal(t, 1, outcomes[0].Record.CheckCount)
}

func TestNightShift_SaturdayStart_IsWorked(t *testing.T) {
	// GIVEN: Saturday 22:00 to Sunday 06:00, a six-day night roster
	// WHEN: Resolving Saturday
	// THEN: Classified normally; only Sunday starts are non-business

	saturday := payroll.NewWorkDate(2025, time.March, 8)
	outcomes := resolveNight(t, saturday,
		punchAt("e1", saturday.At(22, 0, 0), payroll.EventIn),
		punchAt("e2", saturday.Next().At(6, 0, 0), payroll.EventOut),
	)

	require.Len(t, outcomes, 1)
	assert.Equal(t, payroll.ConceptFullDay, outcomes[0].Concept)
	assert.True(t, outcomes[0].Record.Pay)
}
