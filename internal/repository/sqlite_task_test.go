package repository

import (
	"context"
	"testing"

	"github.com/rbandrews2/crewclock/internal/domain"
	"github.com/rbandrews2/crewclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskTestSetup(t *testing.T) (*SQLiteTaskRepo, *domain.Job) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	jobRepo := NewSQLiteJobRepo(database)
	job := testutil.NewTestJob("Night Flagger – I-81")
	require.NoError(t, jobRepo.Create(ctx, job))

	return NewSQLiteTaskRepo(database), job
}

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo, job := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(job.ID, "Travel time", testutil.WithPayRate(22.50))
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, fetched.JobID)
	assert.Equal(t, "Travel time", fetched.Name)
	assert.InDelta(t, 22.50, fetched.PayRate, 1e-9)
	assert.Equal(t, domain.PayUnitHour, fetched.PayUnit)
}

func TestTaskRepo_ListActiveByJob_SortOrder(t *testing.T) {
	repo, job := taskTestSetup(t)
	ctx := context.Background()

	second := testutil.NewTestTask(job.ID, "Job site", testutil.WithSortOrder(2))
	first := testutil.NewTestTask(job.ID, "Travel time", testutil.WithSortOrder(1))
	inactive := testutil.NewTestTask(job.ID, "Retired", testutil.WithTaskInactive())
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, inactive))

	tasks, err := repo.ListActiveByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Travel time", tasks[0].Name)
	assert.Equal(t, "Job site", tasks[1].Name)
}

func TestTaskRepo_ListActiveByJob_ScopedToJob(t *testing.T) {
	repo, job := taskTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(job.ID, "Travel time")))

	tasks, err := repo.ListActiveByJob(ctx, "other-job")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepo_Deactivate(t *testing.T) {
	repo, job := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(job.ID, "Travel time")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Deactivate(ctx, task.ID))

	tasks, err := repo.ListActiveByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.ErrorIs(t, repo.Deactivate(ctx, "nonexistent"), ErrNotFound)
}
