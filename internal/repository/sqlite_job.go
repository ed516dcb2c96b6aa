package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rbandrews2/crewclock/internal/db"
	"github.com/rbandrews2/crewclock/internal/domain"
)

// SQLiteJobRepo implements JobRepo using a SQLite database.
type SQLiteJobRepo struct {
	db db.DBTX
}

// NewSQLiteJobRepo creates a new SQLiteJobRepo.
func NewSQLiteJobRepo(db db.DBTX) *SQLiteJobRepo {
	return &SQLiteJobRepo{db: db}
}

func (r *SQLiteJobRepo) Create(ctx context.Context, j *domain.Job) error {
	query := `INSERT INTO jobs (id, name, code, active, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID,
		j.Name,
		j.Code,
		boolToInt(j.Active),
		j.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}
	return nil
}

func (r *SQLiteJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT id, name, code, active, created_at FROM jobs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanJob(row)
}

func (r *SQLiteJobRepo) ListActive(ctx context.Context) ([]*domain.Job, error) {
	query := `SELECT id, name, code, active, created_at FROM jobs WHERE active = 1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing active jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJobRow(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	return jobs, nil
}

func (r *SQLiteJobRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE jobs SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivating job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivating job: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanJob(row *sql.Row) (*domain.Job, error) {
	var j domain.Job
	var active int
	var createdAtStr string

	err := row.Scan(&j.ID, &j.Name, &j.Code, &active, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("job: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning job: %w", err)
	}
	return populateJob(&j, active, createdAtStr)
}

func scanJobRow(rows *sql.Rows) (*domain.Job, error) {
	var j domain.Job
	var active int
	var createdAtStr string

	if err := rows.Scan(&j.ID, &j.Name, &j.Code, &active, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning job row: %w", err)
	}
	return populateJob(&j, active, createdAtStr)
}

func populateJob(j *domain.Job, active int, createdAtStr string) (*domain.Job, error) {
	j.Active = intToBool(active)
	var err error
	j.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing job created_at: %w", err)
	}
	return j, nil
}
