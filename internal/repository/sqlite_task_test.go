package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Window cleaning",
		testutil.WithCustomer("Bäckerei Kraus"),
		testutil.WithCompensation(42.5),
	)
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Window cleaning", fetched.Title)
	assert.Equal(t, "Bäckerei Kraus", fetched.CustomerName)
	assert.Equal(t, domain.TaskPending, fetched.Status)
	require.NotNil(t, fetched.SpecialCompensation)
	assert.Equal(t, 42.5, *fetched.SpecialCompensation)
}

func TestTaskRepo_NullCompensation(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("No bonus")
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.SpecialCompensation)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListByIDs(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	older := testutil.NewTestTask("Older", testutil.WithCreatedAt(testutil.At(1)))
	newer := testutil.NewTestTask("Newer", testutil.WithCreatedAt(testutil.At(2)))
	skipped := testutil.NewTestTask("Skipped")
	for _, task := range []*domain.Task{older, newer, skipped} {
		require.NoError(t, repo.Create(ctx, task))
	}

	tasks, err := repo.ListByIDs(ctx, []string{older.ID, newer.ID, "unknown"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Newer", tasks[0].Title)
	assert.Equal(t, "Older", tasks[1].Title)

	none, err := repo.ListByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTaskRepo_Update(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Move furniture", testutil.WithTaskStatus(domain.TaskAssigned))
	require.NoError(t, repo.Create(ctx, task))

	later := time.Now().UTC().Add(time.Hour)
	require.NoError(t, task.SetStatus(domain.TaskCompleted, later))
	task.SpecialCompensation = nil
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, fetched.Status)
	assert.True(t, later.Equal(fetched.UpdatedAt))

	missing := testutil.NewTestTask("ghost")
	assert.ErrorIs(t, repo.Update(ctx, missing), ErrNotFound)
}
