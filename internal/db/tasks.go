package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/model"
	"github.com/taskhub/backend/internal/store"
)

var _ store.TaskStore = (*Postgres)(nil)

const taskColumns = "id, user_id, title, completed, created_at, updated_at"

func (db *Postgres) CreateTask(ctx context.Context, userID uuid.UUID, title string, completed bool) (*model.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + taskColumns
	return db.scanTask(db.Pool.QueryRow(ctx, query, uuid.New(), userID, title, completed))
}

func (db *Postgres) GetTaskByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return db.scanTask(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListTasks(ctx context.Context, owner uuid.UUID, filter store.TaskFilter) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []any{owner}

	if filter.Title != "" {
		args = append(args, escapeLike(filter.Title))
		query += fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%' ESCAPE '\\'", len(args))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		query += fmt.Sprintf(" AND completed = $%d", len(args))
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// UpdateTask applies only the non-nil fields.
func (db *Postgres) UpdateTask(ctx context.Context, id uuid.UUID, title *string, completed *bool) (*model.Task, error) {
	query := `
		UPDATE tasks
		SET title = COALESCE($2, title),
		    completed = COALESCE($3, completed),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns
	return db.scanTask(db.Pool.QueryRow(ctx, query, id, title, completed))
}

func (db *Postgres) DeleteTask(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// TaskStats counts total and completed tasks in one query so the pending
// count derived from them can never go negative.
func (db *Postgres) TaskStats(ctx context.Context, owner uuid.UUID) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)
		FROM tasks
		WHERE user_id = $1
	`
	var total, completed int
	if err := db.Pool.QueryRow(ctx, query, owner).Scan(&total, &completed); err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

// escapeLike neutralizes LIKE metacharacters so a title filter matches
// the user's input as a literal substring.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (db *Postgres) scanTask(row rowScanner) (*model.Task, error) {
	var task model.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}
