/*
handlers.go - HTTP handlers over the derivation engine

PURPOSE:
  Exposes the payroll engine and its supporting catalogs via REST. Handlers
  parse and validate input, delegate to the engine or store, and serialize
  responses. No business logic lives here.

ENDPOINTS:
  Payroll:
    POST   /api/payroll/derive             Run a derivation batch
    GET    /api/employees/{id}/hours       Read already-derived records

  Catalogs:
    GET/POST /api/employees                Employee CRUD
    GET      /api/employees/{id}
    GET/POST /api/shifts                   Shift configuration
    GET/POST /api/clock-events             Manual punch entry
    GET      /api/employees/{id}/clock-events
    GET      /api/concepts                 Outcome-label catalog
    DELETE   /api/concepts/{id}            Refused for system concepts

  Dev:
    POST   /api/seed                       Load demo data (see seed.go)
    GET    /api/health

ERROR HANDLING:
  Errors map to JSON with appropriate HTTP status:
  - 400: validation errors, invalid date range
  - 404: employee / shift / concept not found
  - 409: conflicting concurrent derivation
  - 500: everything else
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sigrh/hours-engine/payroll"
	"github.com/sigrh/hours-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Engine   *payroll.Engine
	Log      zerolog.Logger
	validate *validator.Validate
}

// NewHandler creates a handler around a store and an engine.
func NewHandler(store *sqlite.Store, engine *payroll.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		Store:    store,
		Engine:   engine,
		Log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// =============================================================================
// PAYROLL DERIVATION
// =============================================================================

// DeriveHours runs a derivation batch for one employee and range.
func (h *Handler) DeriveHours(w http.ResponseWriter, r *http.Request) {
	var req DeriveHoursRequest
	if !h.decode(w, r, &req) {
		return
	}

	start, err := payroll.ParseWorkDate(req.StartDate)
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := payroll.ParseWorkDate(req.EndDate)
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	rows, err := h.Engine.DeriveHours(r.Context(), req.EmployeeID, start, end)
	if err != nil {
		h.domainError(w, err)
		return
	}
	h.json(w, http.StatusOK, toPayrollRowDTOs(rows))
}

// GetHours reads already-persisted records, no computation.
func (h *Handler) GetHours(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	start, err := payroll.ParseWorkDate(r.URL.Query().Get("start_date"))
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := payroll.ParseWorkDate(r.URL.Query().Get("end_date"))
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	rows, err := h.Engine.HoursInRange(r.Context(), employeeID, start, end)
	if err != nil {
		h.domainError(w, err)
		return
	}
	h.json(w, http.StatusOK, toPayrollRowDTOs(rows))
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		h.domainError(w, err)
		return
	}
	out := make([]EmployeeDTO, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toEmployeeDTO(emp))
	}
	h.json(w, http.StatusOK, out)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	// Shift must resolve before the employee can reference it.
	if _, err := h.Store.GetShift(r.Context(), req.ShiftID); err != nil {
		h.domainError(w, err)
		return
	}

	emp := payroll.Employee{ID: req.ID, Name: req.Name, ShiftID: req.ShiftID}
	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		h.domainError(w, err)
		return
	}
	h.json(w, http.StatusCreated, toEmployeeDTO(emp))
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.domainError(w, err)
		return
	}
	h.json(w, http.StatusOK, toEmployeeDTO(emp))
}

// =============================================================================
// SHIFTS
// =============================================================================

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Store.ListShifts(r.Context())
	if err != nil {
		h.domainError(w, err)
		return
	}
	out := make([]ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftDTO(s))
	}
	h.json(w, http.StatusOK, out)
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if !h.decode(w, r, &req) {
		return
	}

	shift := payroll.Shift{
		ID:           req.ID,
		Description:  req.Description,
		Type:         payroll.ShiftType(req.Type),
		WorkingHours: req.WorkingHours,
		WorkingDays:  req.WorkingDays,
	}
	if err := h.Store.SaveShift(r.Context(), shift); err != nil {
		h.domainError(w, err)
		return
	}
	h.json(w, http.StatusCreated, toShiftDTO(shift))
}

// =============================================================================
// CLOCK EVENTS
// =============================================================================

// CreateClockEvent records a manual punch. Totem punches arrive through the
// capture subsystem, not this API.
func (h *Handler) CreateClockEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateClockEventRequest
	if !h.decode(w, r, &req) {
		return
	}

	at, err := time.Parse(time.RFC3339, req.At)
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid at: expected RFC3339 timestamp")
		return
	}
	if _, err := h.Store.GetEmployee(r.Context(), req.EmployeeID); err != nil {
		h.domainError(w, err)
		return
	}

	ev := payroll.ClockEvent{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		At:         at,
		Type:       payroll.EventType(req.Type),
		Source:     payroll.SourceManual,
		DeviceID:   req.DeviceID,
	}
	if err := h.Store.SaveClockEvent(r.Context(), ev); err != nil {
		h.domainError(w, err)
		return
	}
	h.json(w, http.StatusCreated, toClockEventDTO(ev))
}

func (h *Handler) ListClockEvents(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	start, err := payroll.ParseWorkDate(r.URL.Query().Get("start_date"))
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := payroll.ParseWorkDate(r.URL.Query().Get("end_date"))
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	events, err := h.Store.ClockEventsInRange(r.Context(), employeeID, start.StartOfDay(), end.EndOfDay())
	if err != nil {
		h.domainError(w, err)
		return
	}
	out := make([]ClockEventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, toClockEventDTO(ev))
	}
	h.json(w, http.StatusOK, out)
}

// =============================================================================
// CONCEPTS
// =============================================================================

func (h *Handler) ListConcepts(w http.ResponseWriter, r *http.Request) {
	concepts, err := h.Store.ListConcepts(r.Context())
	if err != nil {
		h.domainError(w, err)
		return
	}
	out := make([]ConceptDTO, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, toConceptDTO(c))
	}
	h.json(w, http.StatusOK, out)
}

func (h *Handler) DeleteConcept(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteConcept(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HEALTH
// =============================================================================

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.error(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.error(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (h *Handler) json(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Log.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) error(w http.ResponseWriter, status int, message string) {
	h.json(w, status, map[string]string{"error": message})
}

// domainError maps engine/store errors onto HTTP status codes.
func (h *Handler) domainError(w http.ResponseWriter, err error) {
	switch {
	case payroll.IsNotFound(err):
		h.error(w, http.StatusNotFound, err.Error())
	case payroll.IsClientError(err):
		h.error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, payroll.ErrRecordConflict):
		h.error(w, http.StatusConflict, err.Error())
	default:
		h.Log.Error().Err(err).Msg("internal error")
		h.error(w, http.StatusInternalServerError, "internal error")
	}
}
