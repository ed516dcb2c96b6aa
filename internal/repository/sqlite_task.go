package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rbandrews2/crewclock/internal/db"
	"github.com/rbandrews2/crewclock/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, job_id, name, pay_rate, pay_unit, sort_order, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.JobID,
		t.Name,
		t.PayRate,
		string(t.PayUnit),
		t.SortOrder,
		boolToInt(t.Active),
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT id, job_id, name, pay_rate, pay_unit, sort_order, active, created_at
		FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var t domain.Task
	var unit string
	var active int
	var createdAtStr string

	err := row.Scan(&t.ID, &t.JobID, &t.Name, &t.PayRate, &unit, &t.SortOrder, &active, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return populateTask(&t, unit, active, createdAtStr)
}

func (r *SQLiteTaskRepo) ListActiveByJob(ctx context.Context, jobID string) ([]*domain.Task, error) {
	query := `SELECT id, job_id, name, pay_rate, pay_unit, sort_order, active, created_at
		FROM tasks WHERE job_id = ? AND active = 1 ORDER BY sort_order, created_at`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by job: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var unit string
		var active int
		var createdAtStr string

		if err := rows.Scan(&t.ID, &t.JobID, &t.Name, &t.PayRate, &unit, &t.SortOrder, &active, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		task, err := populateTask(&t, unit, active, createdAtStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivating task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func populateTask(t *domain.Task, unit string, active int, createdAtStr string) (*domain.Task, error) {
	t.PayUnit = domain.PayUnit(unit)
	t.Active = intToBool(active)
	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	return t, nil
}
