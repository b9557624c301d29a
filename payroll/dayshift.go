/*
dayshift.go - State machine for employees whose shift fits one calendar day

CLASSIFICATION ORDER (first match wins):
  1. Saturday/Sunday        -> DIA_NO_HABIL, archived
  2. no IN punches          -> AUSENCIA (invalid if stray OUTs exist)
  3. more INs than OUTs     -> PRESENCIA without exit, not payable
  4. exit precedes entry    -> invalid record, not payable
  5. both present           -> worked = max(OUT) - min(IN), classified
                               against the tolerance window as exact,
                               shortfall, or overtime

Overtime produces TWO records for the day: the baseline complete-day record
(summary capped at the shift's expected hours) and a pending-validation
record carrying the surplus. Check-out lands on the overtime record so every
record with both punches satisfies summary == check-out - check-in.
*/
package payroll

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DayShiftResolver classifies one calendar day of a day-shift employee.
type DayShiftResolver struct {
	Shift  Shift
	Policy TolerancePolicy
	Log    zerolog.Logger
}

// Resolve implements ShiftResolver.
func (r *DayShiftResolver) Resolve(day WorkDate, events DayEvents) []DayOutcome {
	evs := events.On(day)

	if day.IsWeekend() {
		return []DayOutcome{nonBusiness(day, len(evs))}
	}

	ins := eventsOfType(evs, EventIn)
	outs := eventsOfType(evs, EventOut)

	if len(ins) == 0 {
		if len(outs) > 0 {
			// OUT with no IN anywhere in the day: best-effort invalid
			// outcome rather than aborting the batch.
			r.Log.Warn().
				Str("day", day.String()).
				Int("stray_outs", len(outs)).
				Msg("malformed event sequence: exit without entry")
			rec := absence(day, "Registro inválido: salida sin entrada registrada.")
			rec.CheckCount = len(evs)
			return []DayOutcome{{Concept: ConceptInvalidRecord, Record: rec}}
		}
		return []DayOutcome{{
			Concept: ConceptAbsence,
			Record:  absence(day, "El empleado no registró entrada en el día."),
		}}
	}

	if len(ins) > len(outs) {
		rec := presence(day, len(evs))
		rec.FirstCheckIn = timePtr(ins[0].At)
		rec.Pay = false
		rec.Status = StatusNotPayable
		rec.Notes = "El empleado registró entrada pero no salida."
		return []DayOutcome{{Concept: ConceptMissingExit, Record: rec}}
	}

	firstIn := ins[0].At
	lastOut := outs[len(outs)-1].At
	worked := spanBetween(firstIn, lastOut)

	if worked < 0 {
		// The only exit precedes the only entry. Same treatment as the
		// stray-OUT case above: invalid, not payable.
		r.Log.Warn().
			Str("day", day.String()).
			Time("first_in", firstIn).
			Time("last_out", lastOut).
			Msg("malformed event sequence: exit before entry")
		rec := absence(day, "Registro inválido: salida anterior a la entrada.")
		rec.CheckCount = len(evs)
		return []DayOutcome{{Concept: ConceptInvalidRecord, Record: rec}}
	}

	return classifyWorkedSpan(r.Shift, r.Policy, day, len(evs), firstIn, lastOut, worked)
}

// classifyWorkedSpan turns a measured worked duration into outcome records.
// Shared by both resolvers; for night shifts the span crosses midnight and
// the day argument is the shift-start day.
func classifyWorkedSpan(shift Shift, policy TolerancePolicy, day WorkDate, checkCount int, firstIn, lastOut time.Time, worked time.Duration) []DayOutcome {
	outcome, delta := policy.Classify(hoursOf(worked), shift.ExpectedHours())

	switch outcome {
	case OutcomeShortfall:
		rec := presence(day, checkCount)
		rec.FirstCheckIn = timePtr(firstIn)
		rec.LastCheckOut = timePtr(lastOut)
		rec.SummaryTime = durationPtr(worked)
		rec.ExtraHours = durationPtr(durationOfHours(delta))
		rec.Pay = false
		rec.Status = StatusNotPayable
		rec.Notes = fmt.Sprintf("Al empleado le faltaron %s para completar su jornada.",
			formatHoursMinutes(delta))
		return []DayOutcome{{Concept: ConceptShortfall, Record: rec}}

	case OutcomeOvertime:
		base := presence(day, checkCount)
		base.FirstCheckIn = timePtr(firstIn)
		base.SummaryTime = durationPtr(shift.ExpectedDuration())
		base.Pay = true
		base.Status = StatusPayable
		base.Notes = "El empleado completó su jornada laboral."

		extra := presence(day, checkCount)
		extra.FirstCheckIn = timePtr(firstIn)
		extra.LastCheckOut = timePtr(lastOut)
		extra.SummaryTime = durationPtr(worked)
		extra.ExtraHours = durationPtr(durationOfHours(delta))
		extra.Pay = false
		extra.Status = StatusPendingValidation
		extra.Notes = fmt.Sprintf("El empleado registró %s de horas extra.",
			formatHoursMinutes(delta))

		return []DayOutcome{
			{Concept: ConceptFullDay, Record: base},
			{Concept: ConceptOvertime, Record: extra},
		}

	default: // OutcomeExact
		rec := presence(day, checkCount)
		rec.FirstCheckIn = timePtr(firstIn)
		rec.LastCheckOut = timePtr(lastOut)
		rec.SummaryTime = durationPtr(worked)
		rec.Pay = true
		rec.Status = StatusPayable
		rec.Notes = "El empleado completó su jornada laboral."
		return []DayOutcome{{Concept: ConceptFullDay, Record: rec}}
	}
}
