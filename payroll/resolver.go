package payroll

import (
	"github.com/rs/zerolog"
)

// =============================================================================
// SHIFT RESOLVER - Strategy interface over the two state machines
// =============================================================================

// DayOutcome is one classified result for one work date: the concept label
// to register under plus the partially-filled record. The orchestrator fills
// in employee, shift and concept identifiers before persistence.
type DayOutcome struct {
	Concept string
	Record  HoursRecord
}

// ShiftResolver classifies one day of a derivation run. Exactly one outcome
// per day, except overtime which yields a baseline record plus an overtime
// record. Resolvers never touch storage.
type ShiftResolver interface {
	Resolve(day WorkDate, events DayEvents) []DayOutcome
}

// ResolverFor selects the state machine matching the shift type. Night
// shifts get the cross-midnight resolver, everything else resolves within
// a single calendar day.
func ResolverFor(shift Shift, policy TolerancePolicy, log zerolog.Logger) ShiftResolver {
	if shift.Type == ShiftNight {
		return &NightShiftResolver{Shift: shift, Policy: policy, Log: log}
	}
	return &DayShiftResolver{Shift: shift, Policy: policy, Log: log}
}

// presence builds the common skeleton of a presence record.
func presence(day WorkDate, checkCount int) HoursRecord {
	return HoursRecord{
		WorkDate:     day,
		RegisterType: RegisterPresence,
		CheckCount:   checkCount,
	}
}

// absence builds a non-payable absence record.
func absence(day WorkDate, notes string) HoursRecord {
	return HoursRecord{
		WorkDate:     day,
		RegisterType: RegisterAbsence,
		Pay:          false,
		Status:       StatusNotPayable,
		Notes:        notes,
	}
}

// nonBusiness builds the archived weekend/no-shift record.
func nonBusiness(day WorkDate, checkCount int) DayOutcome {
	return DayOutcome{
		Concept: ConceptNonBusiness,
		Record: HoursRecord{
			WorkDate:     day,
			RegisterType: RegisterNonBusiness,
			CheckCount:   checkCount,
			Pay:          false,
			Status:       StatusArchived,
			Notes:        "Día no hábil",
		},
	}
}
