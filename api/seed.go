/*
seed.go - Demo fixtures for local development

PURPOSE:
  Loads a small, deterministic data set exercising the interesting paths of
  the derivation engine: a day-shift employee with a normal week (complete
  days, one overtime day, one short day, one missing exit, an absence) and a
  night-shift employee with cross-midnight shifts. POST /api/seed resets the
  database first, so repeated seeding is deterministic.
*/
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sigrh/hours-engine/payroll"
)

// SeedDemo resets the database and loads the demo week.
func (h *Handler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	if err := h.seed(r.Context()); err != nil {
		h.domainError(w, err)
		return
	}
	h.json(w, http.StatusOK, map[string]string{
		"status": "seeded",
		"hint":   "POST /api/payroll/derive with employee_id=emp-day or emp-night, 2025-03-03..2025-03-09",
	})
}

func (h *Handler) seed(ctx context.Context) error {
	if err := h.Store.Reset(ctx); err != nil {
		return err
	}

	dayShift := payroll.Shift{
		ID: "shift-day", Description: "Turno diurno", Type: payroll.ShiftDay,
		WorkingHours: 8, WorkingDays: 5,
	}
	nightShift := payroll.Shift{
		ID: "shift-night", Description: "Turno nocturno", Type: payroll.ShiftNight,
		WorkingHours: 8, WorkingDays: 6,
	}
	for _, s := range []payroll.Shift{dayShift, nightShift} {
		if err := h.Store.SaveShift(ctx, s); err != nil {
			return err
		}
	}

	employees := []payroll.Employee{
		{ID: "emp-day", Name: "Lucía Fernández", ShiftID: dayShift.ID},
		{ID: "emp-night", Name: "Marcos Ibáñez", ShiftID: nightShift.ID},
	}
	for _, emp := range employees {
		if err := h.Store.SaveEmployee(ctx, emp); err != nil {
			return err
		}
	}

	// Week of Monday 2025-03-03.
	day := func(d, hour, min int) time.Time {
		return time.Date(2025, time.March, d, hour, min, 0, 0, time.UTC)
	}
	punch := func(employeeID string, at time.Time, t payroll.EventType) payroll.ClockEvent {
		return payroll.ClockEvent{
			ID: uuid.NewString(), EmployeeID: employeeID, At: at,
			Type: t, Source: payroll.SourceTotem, DeviceID: "totem-1",
		}
	}

	events := []payroll.ClockEvent{
		// Monday: exact 8h day.
		punch("emp-day", day(3, 8, 0), payroll.EventIn),
		punch("emp-day", day(3, 16, 0), payroll.EventOut),
		// Tuesday: overtime, 10h30m.
		punch("emp-day", day(4, 8, 0), payroll.EventIn),
		punch("emp-day", day(4, 18, 30), payroll.EventOut),
		// Wednesday: shortfall, 6h.
		punch("emp-day", day(5, 9, 0), payroll.EventIn),
		punch("emp-day", day(5, 15, 0), payroll.EventOut),
		// Thursday: missing exit.
		punch("emp-day", day(6, 8, 5), payroll.EventIn),
		// Friday: absence (no punches).

		// Night shift: Monday and Tuesday evenings crossing midnight.
		punch("emp-night", day(3, 22, 0), payroll.EventIn),
		punch("emp-night", day(4, 6, 0), payroll.EventOut),
		punch("emp-night", day(4, 22, 0), payroll.EventIn),
		punch("emp-night", day(5, 7, 30), payroll.EventOut), // overtime night
		// Wednesday evening: entry with no morning exit.
		punch("emp-night", day(5, 22, 15), payroll.EventIn),
	}
	for _, ev := range events {
		if err := h.Store.SaveClockEvent(ctx, ev); err != nil {
			return err
		}
	}

	h.Log.Info().Int("events", len(events)).Msg("demo data seeded")
	return nil
}
