// Package store defines the persistence contracts the services depend on.
// Two task-store implementations exist: the Postgres store in internal/db
// and the ownerless in-memory store in this package. A process runs exactly
// one of them, selected by STORE_DRIVER at startup.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/model"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailExists is returned when a user insert hits the email unique constraint.
	ErrEmailExists = errors.New("email already registered")
)

// TaskFilter narrows List results. Title is a case-insensitive substring
// match; nil Completed means "either".
type TaskFilter struct {
	Title     string
	Completed *bool
}

// TaskStore is the task persistence capability. Owner uuid.Nil means the
// ownerless deployment mode: List and Stats then cover every task.
type TaskStore interface {
	CreateTask(ctx context.Context, userID uuid.UUID, title string, completed bool) (*model.Task, error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListTasks(ctx context.Context, owner uuid.UUID, filter TaskFilter) ([]model.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, title *string, completed *bool) (*model.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	TaskStats(ctx context.Context, owner uuid.UUID) (total int, completed int, err error)
}

// UserStore is the credential persistence capability.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
