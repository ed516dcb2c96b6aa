package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rbandrews2/crewclock/internal/domain"
	"github.com/rbandrews2/crewclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryTestSetup(t *testing.T) (*SQLiteEntryRepo, *domain.Job, *domain.Task) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	job := testutil.NewTestJob("Day Shift – Route 220")
	require.NoError(t, NewSQLiteJobRepo(database).Create(ctx, job))
	task := testutil.NewTestTask(job.ID, "Travel time", testutil.WithPayRate(18.00))
	require.NoError(t, NewSQLiteTaskRepo(database).Create(ctx, task))

	return NewSQLiteEntryRepo(database), job, task
}

func TestEntryRepo_CreateAndGetByID(t *testing.T) {
	repo, job, task := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("u1", job, task, testutil.WithNote("Lane closure near MM 135"))
	require.NoError(t, repo.Create(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", fetched.UserID)
	assert.Equal(t, job.ID, fetched.JobID)
	assert.Equal(t, task.ID, fetched.TaskID)
	assert.InDelta(t, 18.00, fetched.PayRateAtTime, 1e-9)
	assert.Equal(t, job.Name, fetched.JobLabelAtTime)
	assert.Equal(t, task.Name, fetched.TaskLabelAtTime)
	assert.Equal(t, "Lane closure near MM 135", fetched.Note)
	assert.True(t, fetched.Open())
	assert.Nil(t, fetched.DurationSeconds)
	assert.Nil(t, fetched.GrossPay)
}

func TestEntryRepo_GetOpen(t *testing.T) {
	repo, job, task := entryTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetOpen(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	closed := testutil.NewTestEntry("u1", job, task,
		testutil.WithClockIn(time.Now().UTC().Add(-2*time.Hour)),
		testutil.Closed(time.Now().UTC().Add(-time.Hour)))
	require.NoError(t, repo.Create(ctx, closed))

	open := testutil.NewTestEntry("u1", job, task)
	require.NoError(t, repo.Create(ctx, open))

	fetched, err := repo.GetOpen(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, open.ID, fetched.ID)

	// Other users see no open entry.
	_, err = repo.GetOpen(ctx, "u2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_SecondOpenEntryRejected(t *testing.T) {
	repo, job, task := entryTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("u1", job, task)))

	err := repo.Create(ctx, testutil.NewTestEntry("u1", job, task))
	assert.ErrorIs(t, err, ErrDuplicateOpenEntry)

	// A different user is unaffected.
	assert.NoError(t, repo.Create(ctx, testutil.NewTestEntry("u2", job, task)))
}

func TestEntryRepo_ListRecent_OrderAndLimit(t *testing.T) {
	repo, job, task := entryTestSetup(t)
	ctx := context.Background()

	base := time.Date(2025, 11, 17, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		in := base.AddDate(0, 0, i)
		e := testutil.NewTestEntry("u1", job, task,
			testutil.WithClockIn(in), testutil.Closed(in.Add(4*time.Hour)))
		require.NoError(t, repo.Create(ctx, e))
	}

	entries, err := repo.ListRecent(ctx, "u1", 50)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].ClockIn.After(entries[1].ClockIn))
	assert.True(t, entries[1].ClockIn.After(entries[2].ClockIn))

	limited, err := repo.ListRecent(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestEntryRepo_Close(t *testing.T) {
	repo, job, task := entryTestSetup(t)
	ctx := context.Background()

	in := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	entry := testutil.NewTestEntry("u1", job, task, testutil.WithClockIn(in))
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, entry.Close(in.Add(4*time.Hour+30*time.Minute)))
	require.NoError(t, repo.Close(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Open())
	require.NotNil(t, fetched.DurationSeconds)
	assert.Equal(t, 16200, *fetched.DurationSeconds)
	require.NotNil(t, fetched.GrossPay)
	assert.InDelta(t, 81.00, *fetched.GrossPay, 1e-9)
}

func TestEntryRepo_Close_AlreadyClosedElsewhere(t *testing.T) {
	repo, job, task := entryTestSetup(t)
	ctx := context.Background()

	in := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	entry := testutil.NewTestEntry("u1", job, task, testutil.WithClockIn(in))
	require.NoError(t, repo.Create(ctx, entry))

	first := *entry
	require.NoError(t, first.Close(in.Add(time.Hour)))
	require.NoError(t, repo.Close(ctx, &first))

	// A stale session holding the same open entry loses the race.
	stale := *entry
	require.NoError(t, stale.Close(in.Add(2*time.Hour)))
	assert.ErrorIs(t, repo.Close(ctx, &stale), ErrNotFound)

	// The first close's values stand.
	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 3600, *fetched.DurationSeconds)
}

func TestEntryRepo_Close_RequiresDerivedFields(t *testing.T) {
	repo, job, task := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("u1", job, task)
	require.NoError(t, repo.Create(ctx, entry))

	err := repo.Close(ctx, entry)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
