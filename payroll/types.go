/*
Package payroll implements the attendance-to-payroll hours derivation engine.

PURPOSE:
  This package converts a time-ordered stream of employee clock-in/clock-out
  events into per-day payroll records: worked hours, shortfall, overtime and
  absence, for both day-shift and night-shift employees. Everything else in
  the system (employee CRUD, shift configuration, event capture) is an input
  or an output of this engine.

KEY CONCEPTS IN THIS FILE (types.go):
  - ClockEvent: A single timestamped IN/OUT punch (immutable input)
  - Shift: Expected working window configuration (read-only input)
  - Concept: Deduplicated human-readable outcome label
  - HoursRecord: The engine's per-day output (EmployeeHours in the domain)
  - PayrollRow: Composite (record, concept, shift) row for presentation

DESIGN PRINCIPLES:
  1. Immutability: ClockEvents are never mutated, records are append-only
  2. Precision: decimal.Decimal for worked-hours math, no float drift
  3. Exhaustiveness: RegisterType and outcomes are closed enumerations
  4. Idempotency: one record set per (employee, work date), re-runs are no-ops

SEE ALSO:
  - dayshift.go / nightshift.go: The two per-day state machines
  - engine.go: Orchestration of a derivation run
  - writer.go: Idempotent persistence of computed records
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLOCK EVENTS - Immutable input stream
// =============================================================================

// EventType distinguishes entry punches from exit punches.
type EventType string

const (
	EventIn  EventType = "IN"
	EventOut EventType = "OUT"
)

// EventSource records how a punch was captured.
type EventSource string

const (
	SourceTotem  EventSource = "totem"  // facial-recognition device
	SourceManual EventSource = "manual" // back-office entry
)

// ClockEvent is a single punch from the attendance-capture subsystem.
// The engine never creates or mutates clock events.
type ClockEvent struct {
	ID         string
	EmployeeID string
	At         time.Time
	Type       EventType
	Source     EventSource
	DeviceID   string
}

// Day returns the local calendar day the event occurred on.
func (e ClockEvent) Day() WorkDate { return DateOf(e.At) }

// =============================================================================
// SHIFTS - Read-only configuration
// =============================================================================

// ShiftType selects which resolver classifies an employee's days.
type ShiftType string

const (
	ShiftDay   ShiftType = "DAY"
	ShiftNight ShiftType = "NIGHT"
)

// Shift describes the expected working window for a group of employees.
// Owned by configuration management; read-only here.
type Shift struct {
	ID           string
	Description  string
	Type         ShiftType
	WorkingHours float64 // expected hours per working day
	WorkingDays  int     // working days per week
}

// ExpectedHours returns the shift's expected daily hours as a decimal.
func (s Shift) ExpectedHours() decimal.Decimal {
	return decimal.NewFromFloat(s.WorkingHours)
}

// ExpectedDuration returns the expected daily hours as a duration,
// truncated to whole seconds.
func (s Shift) ExpectedDuration() time.Duration {
	secs := s.ExpectedHours().Mul(decimal.NewFromInt(3600)).IntPart()
	return time.Duration(secs) * time.Second
}

// Employee is the minimal projection of an employee this engine needs.
type Employee struct {
	ID      string
	Name    string
	ShiftID string
}

// =============================================================================
// CONCEPTS - Deduplicated outcome labels
// =============================================================================

// Concept is a catalog entry categorizing a day's payroll outcome.
// Created lazily by the ConceptRegistry, never duplicated per description.
type Concept struct {
	ID          string
	Description string
	Deletable   bool
}

// Concept descriptions produced by the resolvers. The registry guarantees a
// single Concept row per description regardless of how many runs emit it.
const (
	ConceptFullDay       = "Jornada laboral completa"
	ConceptOvertime      = "Horas extra"
	ConceptShortfall     = "Jornada incompleta"
	ConceptAbsence       = "Ausencia injustificada"
	ConceptMissingExit   = "Presencia sin salida registrada"
	ConceptNonBusiness   = "Día no hábil"
	ConceptInvalidRecord = "Registro inválido"
)

// =============================================================================
// HOURS RECORDS - The engine's output
// =============================================================================

// RegisterType is the coarse classification of a derived day.
type RegisterType string

const (
	RegisterPresence     RegisterType = "PRESENCIA"
	RegisterAbsence      RegisterType = "AUSENCIA"
	RegisterIntermediate RegisterType = "TIEMPO_INTERMEDIO"
	RegisterNonBusiness  RegisterType = "DIA_NO_HABIL"
)

// PayrollStatus tracks what payroll should do with a record.
type PayrollStatus string

const (
	StatusPayable           PayrollStatus = "payable"
	StatusNotPayable        PayrollStatus = "not_payable"
	StatusPendingValidation PayrollStatus = "pending_validation"
	StatusArchived          PayrollStatus = "archived"
)

// HoursRecord is one derived payroll row for one employee and one work date.
// Known as EmployeeHours in the wider domain. Records are append-only
// outputs of a batch run; a day may carry a second record only in the
// overtime case.
type HoursRecord struct {
	ID           string
	EmployeeID   string
	WorkDate     WorkDate
	ShiftID      string
	ConceptID    string
	RegisterType RegisterType
	CheckCount   int
	FirstCheckIn *time.Time
	LastCheckOut *time.Time
	SummaryTime  *time.Duration // whole seconds
	ExtraHours   *time.Duration // overtime surplus or shortfall deficit
	Pay          bool
	Status       PayrollStatus
	Notes        string
}

// PayrollRow is the composite presentation row returned by the engine.
type PayrollRow struct {
	Hours   HoursRecord
	Concept Concept
	Shift   Shift
}

// =============================================================================
// DURATION HELPERS
// =============================================================================

// Seconds-truncated difference between two instants. Both resolvers use this
// so that SummaryTime always equals the check-out/check-in delta to the second.
func spanBetween(in, out time.Time) time.Duration {
	return out.Sub(in).Truncate(time.Second)
}

// hoursOf converts a duration to decimal hours for tolerance comparisons.
func hoursOf(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Second)).Div(decimal.NewFromInt(3600))
}

// durationOfHours converts decimal hours back to a seconds-truncated duration.
func durationOfHours(h decimal.Decimal) time.Duration {
	secs := h.Mul(decimal.NewFromInt(3600)).IntPart()
	return time.Duration(secs) * time.Second
}

func durationPtr(d time.Duration) *time.Duration { return &d }
func timePtr(t time.Time) *time.Time             { return &t }
