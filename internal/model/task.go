package model

import (
	"time"

	"github.com/google/uuid"
)

const MaxTitleLength = 200

// Task belongs to the user that created it. UserID is uuid.Nil when the
// server runs with the ownerless in-memory store.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Completed *bool  `json:"completed"`
}

// UpdateTaskRequest carries a partial update. Nil means "leave unchanged";
// at least one field must be set.
type UpdateTaskRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=200"`
	Completed *bool   `json:"completed"`
}

type TaskStats struct {
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
}
