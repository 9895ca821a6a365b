package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/model"
	"github.com/taskhub/backend/internal/store"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	// ErrForbidden means the task exists but belongs to someone else.
	ErrForbidden   = errors.New("not task owner")
	ErrEmptyTitle  = errors.New("title cannot be empty")
	ErrTitleLength = errors.New("title too long")
	ErrNoFields    = errors.New("no fields provided")
)

// TaskService enforces the ownership contract over whichever TaskStore the
// process was started with. An owner of uuid.Nil disables the checks; that
// is the ownerless in-memory deployment, never a per-request choice.
type TaskService struct {
	store store.TaskStore
}

func NewTaskService(taskStore store.TaskStore) *TaskService {
	return &TaskService{store: taskStore}
}

// List returns the owner's tasks, newest first, optionally narrowed by a
// case-insensitive title substring and completion state. Other owners' tasks
// are never included.
func (s *TaskService) List(ctx context.Context, owner uuid.UUID, filter store.TaskFilter) ([]model.Task, error) {
	return s.store.ListTasks(ctx, owner, filter)
}

func (s *TaskService) Get(ctx context.Context, owner, taskID uuid.UUID) (*model.Task, error) {
	return s.ownedTask(ctx, owner, taskID)
}

func (s *TaskService) Create(ctx context.Context, owner uuid.UUID, title string, completed bool) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return s.store.CreateTask(ctx, owner, title, completed)
}

// Update applies only the provided fields and returns the updated record.
func (s *TaskService) Update(ctx context.Context, owner, taskID uuid.UUID, title *string, completed *bool) (*model.Task, error) {
	if title == nil && completed == nil {
		return nil, ErrNoFields
	}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if err := validateTitle(trimmed); err != nil {
			return nil, err
		}
		title = &trimmed
	}

	if _, err := s.ownedTask(ctx, owner, taskID); err != nil {
		return nil, err
	}

	task, err := s.store.UpdateTask(ctx, taskID, title, completed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// Delete removes the task and returns its prior state.
func (s *TaskService) Delete(ctx context.Context, owner, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.ownedTask(ctx, owner, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// Stats derives the pending count from a single store read so interleaved
// writes cannot produce a negative number.
func (s *TaskService) Stats(ctx context.Context, owner uuid.UUID) (*model.TaskStats, error) {
	total, completed, err := s.store.TaskStats(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &model.TaskStats{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
	}, nil
}

// ownedTask fetches the task and verifies ownership. Not-found wins over
// forbidden: a missing task is 404 even though that ordering lets an owner
// probe distinguish "gone" from "not yours".
func (s *TaskService) ownedTask(ctx context.Context, owner, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.store.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if owner != uuid.Nil && task.UserID != owner {
		return nil, ErrForbidden
	}
	return task, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLength {
		return ErrTitleLength
	}
	return nil
}
