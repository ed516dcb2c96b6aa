package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"jobs", "tasks", "time_entries"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration set must be a no-op.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_OpenEntryUniqueIndex(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO jobs (id, name, created_at) VALUES ('j1', 'Paving', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(
		`INSERT INTO tasks (id, job_id, name, created_at) VALUES ('t1', 'j1', 'Travel', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	insertOpen := `INSERT INTO time_entries
		(id, user_id, job_id, task_id, clock_in, pay_rate_at_time, job_label_at_time, task_label_at_time, created_at)
		VALUES (?, 'u1', 'j1', 't1', '2025-01-01T08:00:00Z', 18.0, 'Paving', 'Travel', '2025-01-01T08:00:00Z')`

	_, err = database.Exec(insertOpen, "e1")
	require.NoError(t, err)

	// A second open entry for the same user must violate the partial index.
	_, err = database.Exec(insertOpen, "e2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")

	// Closing the first entry frees the slot.
	_, err = database.Exec(
		`UPDATE time_entries SET clock_out = '2025-01-01T12:00:00Z', duration_seconds = 14400, gross_pay = 72.0 WHERE id = 'e1'`)
	require.NoError(t, err)

	_, err = database.Exec(insertOpen, "e3")
	assert.NoError(t, err)
}

func TestMigrate_ClockOutOrderingCheck(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO jobs (id, name, created_at) VALUES ('j1', 'Paving', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(
		`INSERT INTO tasks (id, job_id, name, created_at) VALUES ('t1', 'j1', 'Travel', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO time_entries
		(id, user_id, job_id, task_id, clock_in, clock_out, pay_rate_at_time, job_label_at_time, task_label_at_time, created_at)
		VALUES ('e1', 'u1', 'j1', 't1', '2025-01-01T08:00:00Z', '2025-01-01T07:00:00Z', 18.0, 'Paving', 'Travel', '2025-01-01T08:00:00Z')`)
	require.Error(t, err, "clock_out before clock_in should violate the table check")
}
