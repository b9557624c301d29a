/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the internal
  domain model from the external contract. Dates travel as YYYY-MM-DD,
  times of day as HH:MM:SS, durations as HH:MM:SS.

VALIDATION:
  Request types carry validator struct tags; handlers run them through a
  shared validator.Validate instance before touching domain logic.
*/
package api

import (
	"fmt"
	"time"

	"github.com/sigrh/hours-engine/payroll"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// DeriveHoursRequest asks the engine to derive records for a range.
type DeriveHoursRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// CreateEmployeeRequest creates or updates an employee.
type CreateEmployeeRequest struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	ShiftID string `json:"shift_id" validate:"required"`
}

// CreateShiftRequest creates or updates a shift.
type CreateShiftRequest struct {
	ID           string  `json:"id" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=DAY NIGHT"`
	WorkingHours float64 `json:"working_hours" validate:"required,gt=0,lte=24"`
	WorkingDays  int     `json:"working_days" validate:"required,gte=1,lte=7"`
}

// CreateClockEventRequest records a manual punch.
type CreateClockEventRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	At         string `json:"at" validate:"required"` // RFC3339
	Type       string `json:"type" validate:"required,oneof=IN OUT"`
	DeviceID   string `json:"device_id"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ShiftID string `json:"shift_id"`
}

// ShiftDTO represents a shift in API responses.
type ShiftDTO struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	WorkingHours float64 `json:"working_hours"`
	WorkingDays  int     `json:"working_days"`
}

// ConceptDTO represents an outcome label.
type ConceptDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Deletable   bool   `json:"is_deletable"`
}

// ClockEventDTO represents a punch.
type ClockEventDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	At         string `json:"at"`
	Type       string `json:"type"`
	Source     string `json:"source"`
	DeviceID   string `json:"device_id,omitempty"`
}

// HoursRecordDTO is one derived payroll record.
type HoursRecordDTO struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	WorkDate      string  `json:"work_date"`
	RegisterType  string  `json:"register_type"`
	CheckCount    int     `json:"check_count"`
	FirstCheckIn  *string `json:"first_check_in"`
	LastCheckOut  *string `json:"last_check_out"`
	SummaryTime   *string `json:"summary_time"`
	ExtraHours    *string `json:"extra_hours"`
	Pay           bool    `json:"pay"`
	PayrollStatus string  `json:"payroll_status"`
	Notes         string  `json:"notes"`
}

// PayrollRowDTO is the composite row the derive endpoint returns.
type PayrollRowDTO struct {
	EmployeeHours HoursRecordDTO `json:"employee_hours"`
	Concept       ConceptDTO     `json:"concept"`
	Shift         ShiftDTO       `json:"shift"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toEmployeeDTO(emp payroll.Employee) EmployeeDTO {
	return EmployeeDTO{ID: emp.ID, Name: emp.Name, ShiftID: emp.ShiftID}
}

func toShiftDTO(s payroll.Shift) ShiftDTO {
	return ShiftDTO{
		ID:           s.ID,
		Description:  s.Description,
		Type:         string(s.Type),
		WorkingHours: s.WorkingHours,
		WorkingDays:  s.WorkingDays,
	}
}

func toConceptDTO(c payroll.Concept) ConceptDTO {
	return ConceptDTO{ID: c.ID, Description: c.Description, Deletable: c.Deletable}
}

func toClockEventDTO(ev payroll.ClockEvent) ClockEventDTO {
	return ClockEventDTO{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		At:         ev.At.UTC().Format(time.RFC3339),
		Type:       string(ev.Type),
		Source:     string(ev.Source),
		DeviceID:   ev.DeviceID,
	}
}

func toHoursRecordDTO(rec payroll.HoursRecord) HoursRecordDTO {
	return HoursRecordDTO{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		WorkDate:      rec.WorkDate.String(),
		RegisterType:  string(rec.RegisterType),
		CheckCount:    rec.CheckCount,
		FirstCheckIn:  formatClock(rec.FirstCheckIn),
		LastCheckOut:  formatClock(rec.LastCheckOut),
		SummaryTime:   formatDuration(rec.SummaryTime),
		ExtraHours:    formatDuration(rec.ExtraHours),
		Pay:           rec.Pay,
		PayrollStatus: string(rec.Status),
		Notes:         rec.Notes,
	}
}

func toPayrollRowDTO(row payroll.PayrollRow) PayrollRowDTO {
	return PayrollRowDTO{
		EmployeeHours: toHoursRecordDTO(row.Hours),
		Concept:       toConceptDTO(row.Concept),
		Shift:         toShiftDTO(row.Shift),
	}
}

func toPayrollRowDTOs(rows []payroll.PayrollRow) []PayrollRowDTO {
	out := make([]PayrollRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPayrollRowDTO(row))
	}
	return out
}

// formatClock renders a punch instant as HH:MM:SS (UTC).
func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("15:04:05")
	return &s
}

// formatDuration renders a seconds-truncated duration as HH:MM:SS.
func formatDuration(d *time.Duration) *string {
	if d == nil {
		return nil
	}
	secs := int64(*d / time.Second)
	s := fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	return &s
}
