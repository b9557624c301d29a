/*
nightshift.go - State machine for shifts that cross midnight

ATTRIBUTION MODEL:
  Night-shift records attach to the SHIFT-START day. For a start day s the
  resolver pairs the evening punches of s with the morning punches of s+1:
  the relevant signals are the last event of s and the first event of s+1.
  The orchestrator therefore fetches events one day past the requested end
  date so the final shift of the range can close.

CLASSIFICATION (first match wins):
  1. s is Sunday                              -> DIA_NO_HABIL (no night
                                                 shift expected)
  2. no closing IN on s, stray morning IN
     with no later OUT                        -> AUSENCIA (isolated entry)
  3. no closing IN on s                       -> AUSENCIA (total absence)
  4. IN on s, nothing usable on s+1           -> PRESENCIA missing exit,
                                                 estimated summary, payable
  5. IN on s, morning opens with another IN   -> forgot exit then re-entered,
                                                 estimated summary, payable
  6. IN on s, morning opens with OUT          -> valid cross-midnight shift,
                                                 duration classified exact /
                                                 shortfall / overtime
*/
package payroll

import (
	"github.com/rs/zerolog"
)

// NightShiftResolver classifies one shift-start day of a night-shift
// employee using the adjacent-day event pair.
type NightShiftResolver struct {
	Shift  Shift
	Policy TolerancePolicy
	Log    zerolog.Logger
}

// Resolve implements ShiftResolver. The day argument is the shift-start day.
func (r *NightShiftResolver) Resolve(day WorkDate, events DayEvents) []DayOutcome {
	if day.IsSunday() {
		evening, _ := events.Pair(day)
		return []DayOutcome{nonBusiness(day, len(evening))}
	}

	evening, morning := events.Pair(day)
	closing := lastEvent(evening)
	opening := firstEvent(morning)

	if closing == nil || closing.Type != EventIn {
		return r.resolveWithoutEntry(day, closing, morning)
	}

	if opening == nil {
		return r.missingExit(day, *closing)
	}

	switch opening.Type {
	case EventIn:
		// Forgot the exit punch, came back the next evening.
		rec := presence(day, 2)
		rec.FirstCheckIn = timePtr(closing.At)
		rec.SummaryTime = durationPtr(r.Shift.ExpectedDuration())
		rec.Pay = true
		rec.Status = StatusPayable
		rec.Notes = "El empleado olvidó registrar la salida y volvió a ingresar."
		return []DayOutcome{{Concept: ConceptMissingExit, Record: rec}}

	default: // EventOut: valid cross-midnight shift
		worked := spanBetween(closing.At, opening.At)
		return classifyWorkedSpan(r.Shift, r.Policy, day, 2, closing.At, opening.At, worked)
	}
}

// resolveWithoutEntry handles start days with no usable IN punch.
func (r *NightShiftResolver) resolveWithoutEntry(day WorkDate, closing *ClockEvent, morning []ClockEvent) []DayOutcome {
	opening := firstEvent(morning)

	if opening != nil && opening.Type == EventIn && !hasOutAfter(morning, *opening) {
		r.Log.Warn().
			Str("day", day.String()).
			Time("entry", opening.At).
			Msg("isolated entry with no exit in night window")
		rec := absence(day, "Registro de entrada aislado sin salida posterior.")
		rec.CheckCount = 1
		return []DayOutcome{{Concept: ConceptInvalidRecord, Record: rec}}
	}

	if closing != nil {
		// Stray OUT at end of the start day: cannot anchor a shift to it.
		r.Log.Warn().
			Str("day", day.String()).
			Str("event_type", string(closing.Type)).
			Msg("night shift start day closes without an entry punch")
	}

	return []DayOutcome{{
		Concept: ConceptAbsence,
		Record:  absence(day, "El empleado no registró entrada en el día."),
	}}
}

// missingExit records a shift that opened but never closed: presence with an
// estimated summary at the shift's expected hours.
func (r *NightShiftResolver) missingExit(day WorkDate, in ClockEvent) []DayOutcome {
	rec := presence(day, 1)
	rec.FirstCheckIn = timePtr(in.At)
	rec.SummaryTime = durationPtr(r.Shift.ExpectedDuration())
	rec.Pay = true
	rec.Status = StatusPayable
	rec.Notes = "El empleado registró entrada pero no salida; se estima la jornada completa."
	return []DayOutcome{{Concept: ConceptMissingExit, Record: rec}}
}

// hasOutAfter reports whether any OUT punch follows the given event within
// the same day bucket.
func hasOutAfter(events []ClockEvent, after ClockEvent) bool {
	for _, ev := range events {
		if ev.Type == EventOut && ev.At.After(after.At) {
			return true
		}
	}
	return false
}
