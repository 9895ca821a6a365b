package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/backend/internal/store"
)

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func newTestTaskService() *TaskService {
	return NewTaskService(store.NewMemory())
}

func TestCreateValidatesTitle(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.Create(ctx, owner, "   ", false)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.Create(ctx, owner, strings.Repeat("x", 201), false)
	assert.ErrorIs(t, err, ErrTitleLength)

	task, err := svc.Create(ctx, owner, "  Write spec  ", false)
	require.NoError(t, err)
	assert.Equal(t, "Write spec", task.Title)
	assert.False(t, task.Completed)
}

func TestTitleLengthCountsCharacters(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	owner := uuid.New()

	// 150 characters but 300 bytes; must be accepted.
	task, err := svc.Create(ctx, owner, strings.Repeat("é", 150), false)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 150), task.Title)

	_, err = svc.Create(ctx, owner, strings.Repeat("é", 200), false)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, owner, strings.Repeat("é", 201), false)
	assert.ErrorIs(t, err, ErrTitleLength)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, "X", false)
	require.NoError(t, err)

	got, err := svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Title)
	assert.False(t, got.Completed)
	assert.Equal(t, owner, got.UserID)
}

func TestOwnershipIsolation(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	task, err := svc.Create(ctx, alice, "Alice's task", false)
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, bob, task.ID, strPtr("stolen"), nil)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Delete(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	tasks, err := svc.List(ctx, bob, store.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// The owner still sees the task untouched.
	got, err := svc.Get(ctx, alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice's task", got.Title)
}

func TestNotFoundBeatsForbidden(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	_, err := svc.Get(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdatePartialFields(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	owner := uuid.New()

	task, err := svc.Create(ctx, owner, "Original", false)
	require.NoError(t, err)

	// Only completed changes.
	updated, err := svc.Update(ctx, owner, task.ID, nil, boolPtr(true))
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.True(t, updated.Completed)

	// Only title changes.
	updated, err = svc.Update(ctx, owner, task.ID, strPtr("Renamed"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.Completed)
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	owner := uuid.New()

	task, err := svc.Create(ctx, owner, "Original", false)
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, task.ID, nil, nil)
	assert.ErrorIs(t, err, ErrNoFields)

	_, err = svc.Update(ctx, owner, task.ID, strPtr("   "), nil)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.Update(ctx, owner, task.ID, strPtr(strings.Repeat("x", 201)), nil)
	assert.ErrorIs(t, err, ErrTitleLength)
}

func TestDeleteReturnsPriorStateAndIsNotIdempotent(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	owner := uuid.New()

	task, err := svc.Create(ctx, owner, "Doomed", true)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", deleted.Title)
	assert.True(t, deleted.Completed)

	_, err = svc.Delete(ctx, owner, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestStatsInvariant(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	for i, completed := range []bool{true, false, false, true, false} {
		_, err := svc.Create(ctx, owner, "task "+strings.Repeat("i", i+1), completed)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, other, "not mine", true)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 3, stats.PendingTasks)
	assert.GreaterOrEqual(t, stats.PendingTasks, 0)
	assert.LessOrEqual(t, stats.CompletedTasks, stats.TotalTasks)
}

func TestOwnerlessModeSkipsChecks(t *testing.T) {
	svc := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, uuid.Nil, "shared", false)
	require.NoError(t, err)

	// uuid.Nil owner reads and mutates anything.
	_, err = svc.Get(ctx, uuid.Nil, task.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.Nil, task.ID, nil, boolPtr(true))
	require.NoError(t, err)

	tasks, err := svc.List(ctx, uuid.Nil, store.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	_, err = svc.Delete(ctx, uuid.Nil, task.ID)
	require.NoError(t, err)
}
