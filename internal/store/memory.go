package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/model"
)

// Memory keeps tasks in an ordered slice, newest first. A single mutex
// serializes mutations; this mode is not meant for high concurrency.
type Memory struct {
	mu    sync.Mutex
	tasks []model.Task
}

var _ TaskStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) CreateTask(ctx context.Context, userID uuid.UUID, title string, completed bool) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	task := model.Task{
		ID:        uuid.New(),
		Title:     title,
		Completed: completed,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.tasks = append([]model.Task{task}, m.tasks...)
	return &task, nil
}

func (m *Memory) GetTaskByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			task := m.tasks[i]
			return &task, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListTasks(ctx context.Context, owner uuid.UUID, filter TaskFilter) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Task, 0, len(m.tasks))
	needle := strings.ToLower(filter.Title)
	for _, task := range m.tasks {
		if owner != uuid.Nil && task.UserID != owner {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(task.Title), needle) {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (m *Memory) UpdateTask(ctx context.Context, id uuid.UUID, title *string, completed *bool) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}
		if title != nil {
			m.tasks[i].Title = *title
		}
		if completed != nil {
			m.tasks[i].Completed = *completed
		}
		m.tasks[i].UpdatedAt = time.Now()
		task := m.tasks[i]
		return &task, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteTask(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) TaskStats(ctx context.Context, owner uuid.UUID) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total, completed := 0, 0
	for _, task := range m.tasks {
		if owner != uuid.Nil && task.UserID != owner {
			continue
		}
		total++
		if task.Completed {
			completed++
		}
	}
	return total, completed, nil
}
