package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rbandrews2/crewclock/internal/db"
	"github.com/rbandrews2/crewclock/internal/domain"
)

const entryColumns = `id, user_id, job_id, task_id, clock_in, clock_out,
	duration_seconds, pay_rate_at_time, job_label_at_time, task_label_at_time,
	note, gross_pay, created_at`

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.JobID,
		e.TaskID,
		e.ClockIn.UTC().Format(time.RFC3339),
		nullableTimeToString(e.ClockOut),
		nullableIntToValue(e.DurationSeconds),
		e.PayRateAtTime,
		e.JobLabelAtTime,
		e.TaskLabelAtTime,
		e.Note,
		nullableFloatToValue(e.GrossPay),
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("inserting time entry for user %s: %w", e.UserID, ErrDuplicateOpenEntry)
		}
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteEntryRepo) GetOpen(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE user_id = ? AND clock_out IS NULL`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, userID))
}

func (r *SQLiteEntryRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE user_id = ? ORDER BY clock_in DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent time entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

// Close writes the clock-out fields of an entry that is still open. The
// clock_out IS NULL guard makes the update a no-op when another session
// already closed the entry, which surfaces as ErrNotFound.
func (r *SQLiteEntryRepo) Close(ctx context.Context, e *domain.TimeEntry) error {
	if e.ClockOut == nil || e.DurationSeconds == nil || e.GrossPay == nil {
		return fmt.Errorf("time entry %s is missing clock-out fields: %w", e.ID, domain.ErrValidation)
	}
	query := `UPDATE time_entries
		SET clock_out = ?, duration_seconds = ?, gross_pay = ?
		WHERE id = ? AND clock_out IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		e.ClockOut.UTC().Format(time.RFC3339),
		*e.DurationSeconds,
		*e.GrossPay,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("closing time entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("closing time entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("open time entry %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var clockInStr, createdAtStr string
	var clockOut sql.NullString
	var duration sql.NullInt64
	var gross sql.NullFloat64

	err := row.Scan(
		&e.ID, &e.UserID, &e.JobID, &e.TaskID, &clockInStr, &clockOut,
		&duration, &e.PayRateAtTime, &e.JobLabelAtTime, &e.TaskLabelAtTime,
		&e.Note, &gross, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}
	return populateEntry(&e, clockInStr, createdAtStr, clockOut, duration, gross)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var clockInStr, createdAtStr string
		var clockOut sql.NullString
		var duration sql.NullInt64
		var gross sql.NullFloat64

		err := rows.Scan(
			&e.ID, &e.UserID, &e.JobID, &e.TaskID, &clockInStr, &clockOut,
			&duration, &e.PayRateAtTime, &e.JobLabelAtTime, &e.TaskLabelAtTime,
			&e.Note, &gross, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}

		entry, parseErr := populateEntry(&e, clockInStr, createdAtStr, clockOut, duration, gross)
		if parseErr != nil {
			return nil, parseErr
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

// populateEntry fills in parsed fields on a TimeEntry after scanning raw values.
func populateEntry(e *domain.TimeEntry, clockInStr, createdAtStr string, clockOut sql.NullString, duration sql.NullInt64, gross sql.NullFloat64) (*domain.TimeEntry, error) {
	var err error
	e.ClockIn, err = time.Parse(time.RFC3339, clockInStr)
	if err != nil {
		return nil, fmt.Errorf("parsing clock_in: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	e.ClockOut = parseNullableTime(clockOut)
	e.DurationSeconds = nullableIntValue(duration)
	e.GrossPay = nullableFloatValue(gross)
	return e, nil
}
