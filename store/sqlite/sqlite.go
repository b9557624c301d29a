/*
Package sqlite provides the SQLite-backed implementation of the payroll
storage interfaces.

PURPOSE:
  Implements payroll.Directory, payroll.ClockEventSource,
  payroll.ConceptRegistry and payroll.TxHoursStore using SQLite. In production the same patterns
  apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  shifts:          Shift configuration (read-only to the engine)
  employees:       Employee records with their shift reference
  clock_events:    Immutable punches from capture devices or manual entry
  concepts:        Deduplicated outcome labels, UNIQUE(description)
  employee_hours:  Derived payroll records, append-only

INVARIANT-BACKING INDEXES:
  idx_unique_day_record: UNIQUE(employee_id, work_date, concept_id) - one
  record set per employee-day; the overtime day carries two rows under
  distinct concepts. A concurrent derivation race degrades into a
  constraint violation surfaced as payroll.RecordConflictError.

CONCEPT GET-OR-CREATE:
  A single INSERT ... ON CONFLICT(description) DO UPDATE ... RETURNING
  statement, so repeated or concurrent registrations of the same label
  converge to one row without a read-then-write race.

WAL MODE:
  SQLite is opened with WAL for better concurrency: multiple readers do not
  block, single writer at a time, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  engine := payroll.NewEngine(store, store, store)

SEE ALSO:
  - payroll/store.go: Interface definitions
  - payroll/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sigrh/hours-engine/payroll"
)

const timeFormat = time.RFC3339

// Store implements all payroll storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Shift configuration (owned by configuration management)
	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('DAY', 'NIGHT')),
		working_hours REAL NOT NULL,
		working_days INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Employees
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		shift_id TEXT NOT NULL REFERENCES shifts(id),
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_shift
		ON employees(shift_id);

	-- Clock events (immutable punches, never mutated by the engine)
	CREATE TABLE IF NOT EXISTS clock_events (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		event_at TEXT NOT NULL,
		event_type TEXT NOT NULL CHECK (event_type IN ('IN', 'OUT')),
		source TEXT NOT NULL,
		device_id TEXT,
		created_at TEXT NOT NULL
	);

	-- Hot path: per-employee range scans
	CREATE INDEX IF NOT EXISTS idx_clock_events_employee_at
		ON clock_events(employee_id, event_at);

	-- Concepts (deduplicated outcome labels)
	CREATE TABLE IF NOT EXISTS concepts (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL UNIQUE,
		deletable INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	-- Derived payroll records (append-only)
	CREATE TABLE IF NOT EXISTS employee_hours (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		work_date TEXT NOT NULL,
		shift_id TEXT NOT NULL REFERENCES shifts(id),
		concept_id TEXT NOT NULL REFERENCES concepts(id),
		register_type TEXT NOT NULL,
		check_count INTEGER NOT NULL DEFAULT 0,
		first_check_in TEXT,
		last_check_out TEXT,
		summary_seconds INTEGER,
		extra_seconds INTEGER,
		pay INTEGER NOT NULL DEFAULT 0,
		payroll_status TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	-- CRITICAL: one record set per (employee, work date). The overtime day
	-- carries two rows under distinct concepts; anything else is a conflict.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_unique_day_record
		ON employee_hours(employee_id, work_date, concept_id);

	CREATE INDEX IF NOT EXISTS idx_hours_employee_date
		ON employee_hours(employee_id, work_date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SHIFTS
// =============================================================================

// SaveShift inserts or updates a shift.
func (s *Store) SaveShift(ctx context.Context, shift payroll.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO shifts (id, description, type, working_hours, working_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			description = excluded.description,
			type = excluded.type,
			working_hours = excluded.working_hours,
			working_days = excluded.working_days
	`

	_, err := s.db.ExecContext(ctx, query,
		shift.ID, shift.Description, shift.Type,
		shift.WorkingHours, shift.WorkingDays,
		time.Now().UTC().Format(timeFormat),
	)
	return err
}

// GetShift retrieves a shift by ID.
func (s *Store) GetShift(ctx context.Context, id string) (payroll.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var shift payroll.Shift
	err := s.db.QueryRowContext(ctx,
		"SELECT id, description, type, working_hours, working_days FROM shifts WHERE id = ?",
		id,
	).Scan(&shift.ID, &shift.Description, &shift.Type, &shift.WorkingHours, &shift.WorkingDays)

	if err == sql.ErrNoRows {
		return payroll.Shift{}, &payroll.NotFoundError{Kind: "shift", ID: id}
	}
	if err != nil {
		return payroll.Shift{}, err
	}
	return shift, nil
}

// ListShifts returns all shifts.
func (s *Store) ListShifts(ctx context.Context) ([]payroll.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description, type, working_hours, working_days FROM shifts ORDER BY description",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []payroll.Shift
	for rows.Next() {
		var shift payroll.Shift
		if err := rows.Scan(&shift.ID, &shift.Description, &shift.Type, &shift.WorkingHours, &shift.WorkingDays); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts or updates an employee.
func (s *Store) SaveEmployee(ctx context.Context, emp payroll.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO employees (id, name, shift_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			shift_id = excluded.shift_id
	`

	_, err := s.db.ExecContext(ctx, query,
		emp.ID, emp.Name, emp.ShiftID,
		time.Now().UTC().Format(timeFormat),
	)
	return err
}

// GetEmployee retrieves an employee by ID.
func (s *Store) GetEmployee(ctx context.Context, id string) (payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var emp payroll.Employee
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, shift_id FROM employees WHERE id = ?",
		id,
	).Scan(&emp.ID, &emp.Name, &emp.ShiftID)

	if err == sql.ErrNoRows {
		return payroll.Employee{}, &payroll.NotFoundError{Kind: "employee", ID: id}
	}
	if err != nil {
		return payroll.Employee{}, err
	}
	return emp, nil
}

// ListEmployees returns all employees.
func (s *Store) ListEmployees(ctx context.Context) ([]payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, shift_id FROM employees ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []payroll.Employee
	for rows.Next() {
		var emp payroll.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.ShiftID); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// =============================================================================
// CLOCK EVENTS
// =============================================================================

// SaveClockEvent persists a punch. Events are immutable: no update path.
func (s *Store) SaveClockEvent(ctx context.Context, ev payroll.ClockEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO clock_events (id, employee_id, event_at, event_type, source, device_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		ev.ID, ev.EmployeeID,
		ev.At.UTC().Format(timeFormat),
		ev.Type, ev.Source, nullString(ev.DeviceID),
		time.Now().UTC().Format(timeFormat),
	)
	return err
}

// ClockEventsInRange returns an employee's punches within inclusive bounds,
// ordered ascending by timestamp.
func (s *Store) ClockEventsInRange(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.ClockEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, employee_id, event_at, event_type, source, device_id
		FROM clock_events
		WHERE employee_id = ? AND event_at >= ? AND event_at <= ?
		ORDER BY event_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, employeeID,
		from.UTC().Format(timeFormat), to.UTC().Format(timeFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to query clock events: %w", err)
	}
	defer rows.Close()

	var events []payroll.ClockEvent
	for rows.Next() {
		var (
			ev       payroll.ClockEvent
			eventAt  string
			deviceID sql.NullString
		)
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &eventAt, &ev.Type, &ev.Source, &deviceID); err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		ev.At, _ = time.Parse(timeFormat, eventAt)
		ev.DeviceID = deviceID.String
		events = append(events, ev)
	}
	return events, rows.Err()
}

// =============================================================================
// CONCEPT REGISTRY (payroll.ConceptRegistry interface)
// =============================================================================

// GetOrCreateConcept resolves a concept by description, creating it when
// absent. One atomic statement: the UNIQUE(description) constraint plus
// ON CONFLICT ... RETURNING means concurrent callers converge on one row.
func (s *Store) GetOrCreateConcept(ctx context.Context, description string) (payroll.Concept, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return getOrCreateConcept(ctx, s.db, description)
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func getOrCreateConcept(ctx context.Context, db querier, description string) (payroll.Concept, error) {
	query := `
		INSERT INTO concepts (id, description, deletable, created_at)
		VALUES (?, ?, 0, ?)
		ON CONFLICT(description) DO UPDATE SET description = excluded.description
		RETURNING id, description, deletable
	`

	var (
		c         payroll.Concept
		deletable int
	)
	err := db.QueryRowContext(ctx, query,
		newConceptID(), description, time.Now().UTC().Format(timeFormat),
	).Scan(&c.ID, &c.Description, &deletable)
	if err != nil {
		return payroll.Concept{}, fmt.Errorf("failed to get or create concept: %w", err)
	}
	c.Deletable = deletable != 0
	return c, nil
}

// GetConcept retrieves a concept by ID.
func (s *Store) GetConcept(ctx context.Context, id string) (payroll.Concept, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return getConcept(ctx, s.db, id)
}

func getConcept(ctx context.Context, db querier, id string) (payroll.Concept, error) {
	var (
		c         payroll.Concept
		deletable int
	)
	err := db.QueryRowContext(ctx,
		"SELECT id, description, deletable FROM concepts WHERE id = ?",
		id,
	).Scan(&c.ID, &c.Description, &deletable)

	if err == sql.ErrNoRows {
		return payroll.Concept{}, payroll.ErrConceptNotFound
	}
	if err != nil {
		return payroll.Concept{}, err
	}
	c.Deletable = deletable != 0
	return c, nil
}

// ListConcepts returns the full concept catalog.
func (s *Store) ListConcepts(ctx context.Context) ([]payroll.Concept, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description, deletable FROM concepts ORDER BY description",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var concepts []payroll.Concept
	for rows.Next() {
		var (
			c         payroll.Concept
			deletable int
		)
		if err := rows.Scan(&c.ID, &c.Description, &deletable); err != nil {
			return nil, err
		}
		c.Deletable = deletable != 0
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}

// DeleteConcept removes a concept, refusing for system concepts.
func (s *Store) DeleteConcept(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := getConcept(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !c.Deletable {
		return payroll.ErrConceptNotDeletable
	}

	_, err = s.db.ExecContext(ctx, "DELETE FROM concepts WHERE id = ?", id)
	return err
}

// =============================================================================
// HOURS RECORDS (payroll.HoursStore interface)
// =============================================================================

const hoursColumns = `id, employee_id, work_date, shift_id, concept_id, register_type, check_count,
	       first_check_in, last_check_out, summary_seconds, extra_seconds, pay,
	       payroll_status, notes`

// InsertHours appends one derived record. Append-only: no update path.
func (s *Store) InsertHours(ctx context.Context, rec payroll.HoursRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return insertHours(ctx, s.db, rec)
}

func insertHours(ctx context.Context, db querier, rec payroll.HoursRecord) error {
	query := `
		INSERT INTO employee_hours
		(id, employee_id, work_date, shift_id, concept_id, register_type, check_count,
		 first_check_in, last_check_out, summary_seconds, extra_seconds, pay,
		 payroll_status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.WorkDate.String(),
		rec.ShiftID,
		rec.ConceptID,
		rec.RegisterType,
		rec.CheckCount,
		nullTime(rec.FirstCheckIn),
		nullTime(rec.LastCheckOut),
		nullSeconds(rec.SummaryTime),
		nullSeconds(rec.ExtraHours),
		boolToInt(rec.Pay),
		rec.Status,
		rec.Notes,
		time.Now().UTC().Format(timeFormat),
	)

	if err != nil {
		if isUniqueConstraintError(err) {
			return &payroll.RecordConflictError{EmployeeID: rec.EmployeeID, WorkDate: rec.WorkDate}
		}
		return fmt.Errorf("failed to insert hours record: %w", err)
	}
	return nil
}

// HoursExistForDay reports whether any record exists for the employee-day.
func (s *Store) HoursExistForDay(ctx context.Context, employeeID string, day payroll.WorkDate) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return hoursExistForDay(ctx, s.db, employeeID, day)
}

func hoursExistForDay(ctx context.Context, db querier, employeeID string, day payroll.WorkDate) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employee_hours WHERE employee_id = ? AND work_date = ?",
		employeeID, day.String(),
	).Scan(&count)
	return count > 0, err
}

// HoursForDay returns the records of one employee-day in insertion order.
func (s *Store) HoursForDay(ctx context.Context, employeeID string, day payroll.WorkDate) ([]payroll.HoursRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return hoursForDay(ctx, s.db, employeeID, day)
}

func hoursForDay(ctx context.Context, db querier, employeeID string, day payroll.WorkDate) ([]payroll.HoursRecord, error) {
	return queryHours(ctx, db, `
		SELECT `+hoursColumns+`
		FROM employee_hours
		WHERE employee_id = ? AND work_date = ?
		ORDER BY created_at ASC, rowid ASC
	`, employeeID, day.String())
}

// HoursInRange returns all records with work dates in [from, to].
func (s *Store) HoursInRange(ctx context.Context, employeeID string, from, to payroll.WorkDate) ([]payroll.HoursRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return hoursInRange(ctx, s.db, employeeID, from, to)
}

func hoursInRange(ctx context.Context, db querier, employeeID string, from, to payroll.WorkDate) ([]payroll.HoursRecord, error) {
	return queryHours(ctx, db, `
		SELECT `+hoursColumns+`
		FROM employee_hours
		WHERE employee_id = ? AND work_date >= ? AND work_date <= ?
		ORDER BY work_date ASC, created_at ASC, rowid ASC
	`, employeeID, from.String(), to.String())
}

func queryHours(ctx context.Context, db querier, query string, args ...any) ([]payroll.HoursRecord, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hours records: %w", err)
	}
	defer rows.Close()

	var records []payroll.HoursRecord
	for rows.Next() {
		rec, err := scanHours(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanHours(rows *sql.Rows) (payroll.HoursRecord, error) {
	var (
		rec            payroll.HoursRecord
		workDate       string
		firstCheckIn   sql.NullString
		lastCheckOut   sql.NullString
		summarySeconds sql.NullInt64
		extraSeconds   sql.NullInt64
		pay            int
		notes          sql.NullString
	)

	err := rows.Scan(
		&rec.ID, &rec.EmployeeID, &workDate, &rec.ShiftID, &rec.ConceptID,
		&rec.RegisterType, &rec.CheckCount, &firstCheckIn, &lastCheckOut,
		&summarySeconds, &extraSeconds, &pay, &rec.Status, &notes,
	)
	if err != nil {
		return rec, fmt.Errorf("failed to scan hours record: %w", err)
	}

	rec.WorkDate, _ = payroll.ParseWorkDate(workDate)
	rec.Pay = pay != 0
	rec.Notes = notes.String
	if firstCheckIn.Valid {
		t, _ := time.Parse(timeFormat, firstCheckIn.String)
		rec.FirstCheckIn = &t
	}
	if lastCheckOut.Valid {
		t, _ := time.Parse(timeFormat, lastCheckOut.String)
		rec.LastCheckOut = &t
	}
	if summarySeconds.Valid {
		d := time.Duration(summarySeconds.Int64) * time.Second
		rec.SummaryTime = &d
	}
	if extraSeconds.Valid {
		d := time.Duration(extraSeconds.Int64) * time.Second
		rec.ExtraHours = &d
	}
	return rec, nil
}

// =============================================================================
// TRANSACTIONS (payroll.TxHoursStore interface)
// =============================================================================

// WithTx executes fn within a database transaction. The whole derivation
// batch commits or rolls back together.
func (s *Store) WithTx(ctx context.Context, fn func(payroll.HoursTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := fn(&txStore{tx: sqlTx}); err != nil {
		return err
	}
	return sqlTx.Commit()
}

type txStore struct {
	tx *sql.Tx
}

func (ts *txStore) InsertHours(ctx context.Context, rec payroll.HoursRecord) error {
	return insertHours(ctx, ts.tx, rec)
}

func (ts *txStore) HoursExistForDay(ctx context.Context, employeeID string, day payroll.WorkDate) (bool, error) {
	return hoursExistForDay(ctx, ts.tx, employeeID, day)
}

func (ts *txStore) HoursForDay(ctx context.Context, employeeID string, day payroll.WorkDate) ([]payroll.HoursRecord, error) {
	return hoursForDay(ctx, ts.tx, employeeID, day)
}

func (ts *txStore) HoursInRange(ctx context.Context, employeeID string, from, to payroll.WorkDate) ([]payroll.HoursRecord, error) {
	return hoursInRange(ctx, ts.tx, employeeID, from, to)
}

func (ts *txStore) GetOrCreateConcept(ctx context.Context, description string) (payroll.Concept, error) {
	return getOrCreateConcept(ctx, ts.tx, description)
}

func (ts *txStore) GetConcept(ctx context.Context, id string) (payroll.Concept, error) {
	return getConcept(ctx, ts.tx, id)
}

// =============================================================================
// RESET - Development helper used by the seed endpoint
// =============================================================================

// Reset clears all tables. Dev/demo only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"employee_hours", "clock_events", "concepts", "employees", "shifts"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

var conceptSeq struct {
	mu sync.Mutex
	n  int64
}

// newConceptID produces a process-unique concept id. Kept separate from
// record ids (uuid) so concept rows stay short and stable in fixtures.
func newConceptID() string {
	conceptSeq.mu.Lock()
	defer conceptSeq.mu.Unlock()
	conceptSeq.n++
	return fmt.Sprintf("concept-%d-%d", time.Now().Unix(), conceptSeq.n)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeFormat)
}

func nullSeconds(d *time.Duration) any {
	if d == nil {
		return nil
	}
	return int64(*d / time.Second)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueConstraintError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key"))
}

// Compile-time interface checks
var (
	_ payroll.Directory        = (*Store)(nil)
	_ payroll.ClockEventSource = (*Store)(nil)
	_ payroll.TxHoursStore     = (*Store)(nil)
	_ payroll.HoursTx          = (*txStore)(nil)
)
