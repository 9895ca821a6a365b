package store

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedPtr(v bool) *bool { return &v }

func TestMemoryListNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	owner := uuid.New()

	for _, title := range []string{"first", "second", "third"} {
		_, err := m.CreateTask(ctx, owner, title, false)
		require.NoError(t, err)
	}

	tasks, err := m.ListTasks(ctx, owner, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestMemoryListFilters(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	owner := uuid.New()

	_, err := m.CreateTask(ctx, owner, "Buy groceries", false)
	require.NoError(t, err)
	_, err = m.CreateTask(ctx, owner, "Write GROCERY list", true)
	require.NoError(t, err)
	_, err = m.CreateTask(ctx, owner, "Walk the dog", true)
	require.NoError(t, err)

	// Title match is a case-insensitive substring.
	tasks, err := m.ListTasks(ctx, owner, TaskFilter{Title: "grocer"})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = m.ListTasks(ctx, owner, TaskFilter{Completed: completedPtr(true)})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = m.ListTasks(ctx, owner, TaskFilter{Title: "grocer", Completed: completedPtr(false)})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy groceries", tasks[0].Title)
}

func TestMemoryTitleFilterIsLiteral(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	owner := uuid.New()

	_, err := m.CreateTask(ctx, owner, "100% done", false)
	require.NoError(t, err)
	_, err = m.CreateTask(ctx, owner, "100x done", false)
	require.NoError(t, err)

	// "%" and "_" are ordinary characters in a title filter.
	tasks, err := m.ListTasks(ctx, owner, TaskFilter{Title: "100%"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "100% done", tasks[0].Title)

	tasks, err = m.ListTasks(ctx, owner, TaskFilter{Title: "0_d"})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestMemoryListScopedToOwner(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := m.CreateTask(ctx, alice, "alice task", false)
	require.NoError(t, err)
	_, err = m.CreateTask(ctx, bob, "bob task", false)
	require.NoError(t, err)

	tasks, err := m.ListTasks(ctx, alice, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "alice task", tasks[0].Title)

	// uuid.Nil sees everything (ownerless mode).
	tasks, err = m.ListTasks(ctx, uuid.Nil, TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestMemoryUpdateAppliesOnlyProvidedFields(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	task, err := m.CreateTask(ctx, uuid.New(), "original", false)
	require.NoError(t, err)

	updated, err := m.UpdateTask(ctx, task.ID, nil, completedPtr(true))
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Title)
	assert.True(t, updated.Completed)
	assert.False(t, updated.UpdatedAt.Before(task.UpdatedAt))

	_, err = m.UpdateTask(ctx, uuid.New(), nil, completedPtr(true))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	owner := uuid.New()

	task, err := m.CreateTask(ctx, owner, "doomed", false)
	require.NoError(t, err)

	require.NoError(t, m.DeleteTask(ctx, task.ID))
	assert.ErrorIs(t, m.DeleteTask(ctx, task.ID), ErrNotFound)

	_, err = m.GetTaskByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStats(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	owner := uuid.New()

	for _, completed := range []bool{true, true, false} {
		_, err := m.CreateTask(ctx, owner, "t", completed)
		require.NoError(t, err)
	}

	total, completed, err := m.TaskStats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, completed)
}

func TestMemoryConcurrentCreates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	owner := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.CreateTask(ctx, owner, "concurrent", false)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	total, _, err := m.TaskStats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 50, total)
}
