// Package store provides in-memory implementations of the payroll
// persistence interfaces, for tests and development.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sigrh/hours-engine/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory implements payroll.Directory, payroll.ClockEventSource and
// payroll.TxHoursStore entirely in memory. WithTx stages writes and applies
// them on success, discarding them on error, so rollback semantics match
// the SQLite store.
type Memory struct {
	mu        sync.RWMutex
	employees map[string]payroll.Employee
	shifts    map[string]payroll.Shift
	events    map[string][]payroll.ClockEvent // by employee
	concepts  map[string]payroll.Concept      // by description
	records   map[string][]payroll.HoursRecord // by employee
	seq       int
}

func NewMemory() *Memory {
	return &Memory{
		employees: make(map[string]payroll.Employee),
		shifts:    make(map[string]payroll.Shift),
		events:    make(map[string][]payroll.ClockEvent),
		concepts:  make(map[string]payroll.Concept),
		records:   make(map[string][]payroll.HoursRecord),
	}
}

// =============================================================================
// FIXTURE SETUP
// =============================================================================

func (m *Memory) PutEmployee(emp payroll.Employee) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[emp.ID] = emp
}

func (m *Memory) PutShift(s payroll.Shift) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shifts[s.ID] = s
}

func (m *Memory) PutEvents(events ...payroll.ClockEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ev := range events {
		m.events[ev.EmployeeID] = append(m.events[ev.EmployeeID], ev)
	}
}

// =============================================================================
// DIRECTORY
// =============================================================================

func (m *Memory) GetEmployee(_ context.Context, id string) (payroll.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	emp, ok := m.employees[id]
	if !ok {
		return payroll.Employee{}, &payroll.NotFoundError{Kind: "employee", ID: id}
	}
	return emp, nil
}

func (m *Memory) GetShift(_ context.Context, id string) (payroll.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.shifts[id]
	if !ok {
		return payroll.Shift{}, &payroll.NotFoundError{Kind: "shift", ID: id}
	}
	return s, nil
}

// =============================================================================
// EVENT SOURCE
// =============================================================================

func (m *Memory) ClockEventsInRange(_ context.Context, employeeID string, from, to time.Time) ([]payroll.ClockEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []payroll.ClockEvent
	for _, ev := range m.events[employeeID] {
		if !ev.At.Before(from) && !ev.At.After(to) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out, nil
}

// =============================================================================
// CONCEPT REGISTRY
// =============================================================================

func (m *Memory) GetOrCreateConcept(_ context.Context, description string) (payroll.Concept, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getOrCreateConceptLocked(description), nil
}

func (m *Memory) getOrCreateConceptLocked(description string) payroll.Concept {
	if c, ok := m.concepts[description]; ok {
		return c
	}
	m.seq++
	c := payroll.Concept{ID: fmt.Sprintf("concept-%d", m.seq), Description: description}
	m.concepts[description] = c
	return c
}

func (m *Memory) GetConcept(_ context.Context, id string) (payroll.Concept, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.concepts {
		if c.ID == id {
			return c, nil
		}
	}
	return payroll.Concept{}, payroll.ErrConceptNotFound
}

// =============================================================================
// HOURS STORE
// =============================================================================

func (m *Memory) InsertHours(_ context.Context, rec payroll.HoursRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertHoursLocked(rec)
}

func (m *Memory) insertHoursLocked(rec payroll.HoursRecord) error {
	for _, existing := range m.records[rec.EmployeeID] {
		if existing.WorkDate.Equal(rec.WorkDate) && existing.ConceptID == rec.ConceptID {
			return &payroll.RecordConflictError{EmployeeID: rec.EmployeeID, WorkDate: rec.WorkDate}
		}
	}
	m.records[rec.EmployeeID] = append(m.records[rec.EmployeeID], rec)
	return nil
}

func (m *Memory) HoursExistForDay(_ context.Context, employeeID string, day payroll.WorkDate) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.records[employeeID] {
		if rec.WorkDate.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) HoursForDay(_ context.Context, employeeID string, day payroll.WorkDate) ([]payroll.HoursRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []payroll.HoursRecord
	for _, rec := range m.records[employeeID] {
		if rec.WorkDate.Equal(day) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *Memory) HoursInRange(_ context.Context, employeeID string, from, to payroll.WorkDate) ([]payroll.HoursRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []payroll.HoursRecord
	for _, rec := range m.records[employeeID] {
		if !rec.WorkDate.Before(from) && !rec.WorkDate.After(to) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WorkDate.Before(out[j].WorkDate) })
	return out, nil
}

// =============================================================================
// TRANSACTIONS
// =============================================================================

// WithTx stages inserted records and created concepts in an overlay and
// applies them only when fn succeeds. Reads inside the transaction see the
// staged writes.
func (m *Memory) WithTx(ctx context.Context, fn func(payroll.HoursTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	overlay := &memoryTx{
		parent:         m,
		staged:         make(map[string][]payroll.HoursRecord),
		stagedConcepts: make(map[string]payroll.Concept),
	}
	if err := fn(overlay); err != nil {
		return err
	}
	for employeeID, recs := range overlay.staged {
		m.records[employeeID] = append(m.records[employeeID], recs...)
	}
	for description, c := range overlay.stagedConcepts {
		m.concepts[description] = c
	}
	m.seq += len(overlay.stagedConcepts)
	return nil
}

type memoryTx struct {
	parent         *Memory
	staged         map[string][]payroll.HoursRecord
	stagedConcepts map[string]payroll.Concept
}

func (t *memoryTx) visible(employeeID string) []payroll.HoursRecord {
	all := append([]payroll.HoursRecord{}, t.parent.records[employeeID]...)
	return append(all, t.staged[employeeID]...)
}

func (t *memoryTx) InsertHours(_ context.Context, rec payroll.HoursRecord) error {
	for _, existing := range t.visible(rec.EmployeeID) {
		if existing.WorkDate.Equal(rec.WorkDate) && existing.ConceptID == rec.ConceptID {
			return &payroll.RecordConflictError{EmployeeID: rec.EmployeeID, WorkDate: rec.WorkDate}
		}
	}
	t.staged[rec.EmployeeID] = append(t.staged[rec.EmployeeID], rec)
	return nil
}

func (t *memoryTx) HoursExistForDay(_ context.Context, employeeID string, day payroll.WorkDate) (bool, error) {
	for _, rec := range t.visible(employeeID) {
		if rec.WorkDate.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryTx) HoursForDay(_ context.Context, employeeID string, day payroll.WorkDate) ([]payroll.HoursRecord, error) {
	var out []payroll.HoursRecord
	for _, rec := range t.visible(employeeID) {
		if rec.WorkDate.Equal(day) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (t *memoryTx) HoursInRange(_ context.Context, employeeID string, from, to payroll.WorkDate) ([]payroll.HoursRecord, error) {
	var out []payroll.HoursRecord
	for _, rec := range t.visible(employeeID) {
		if !rec.WorkDate.Before(from) && !rec.WorkDate.After(to) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WorkDate.Before(out[j].WorkDate) })
	return out, nil
}

// GetOrCreateConcept stages new concepts in the overlay so a rolled-back
// batch leaves the registry untouched.
func (t *memoryTx) GetOrCreateConcept(_ context.Context, description string) (payroll.Concept, error) {
	if c, ok := t.parent.concepts[description]; ok {
		return c, nil
	}
	if c, ok := t.stagedConcepts[description]; ok {
		return c, nil
	}
	c := payroll.Concept{
		ID:          fmt.Sprintf("concept-%d", t.parent.seq+len(t.stagedConcepts)+1),
		Description: description,
	}
	t.stagedConcepts[description] = c
	return c, nil
}

func (t *memoryTx) GetConcept(_ context.Context, id string) (payroll.Concept, error) {
	for _, c := range t.parent.concepts {
		if c.ID == id {
			return c, nil
		}
	}
	for _, c := range t.stagedConcepts {
		if c.ID == id {
			return c, nil
		}
	}
	return payroll.Concept{}, payroll.ErrConceptNotFound
}

// Compile-time interface checks
var (
	_ payroll.Directory        = (*Memory)(nil)
	_ payroll.ClockEventSource = (*Memory)(nil)
	_ payroll.TxHoursStore     = (*Memory)(nil)
	_ payroll.HoursTx          = (*memoryTx)(nil)
)
