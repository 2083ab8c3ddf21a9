package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/eventure/server/internal/domain/tasks"
)

var _ tasks.Repository = (*TaskRepository)(nil)

const taskColumns = `id, title, description, status, priority, due_date, event_id, assigned_to_id, created_at, updated_at`

func (r *TaskRepository) Create(ctx context.Context, params tasks.CreateParams) (*tasks.Task, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO tasks (id, title, description, status, priority, due_date, event_id, assigned_to_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+taskColumns,
		params.ID,
		params.Title,
		nullIfEmpty(params.Description),
		string(params.Status),
		string(params.Priority),
		params.DueDate,
		params.EventID,
		params.AssignedToID,
	)

	task, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*tasks.Task, error) {
	row := r.queryer().QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tasks.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) ListByEvent(ctx context.Context, eventID string) ([]tasks.Task, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT `+taskColumns+`
  FROM tasks
 WHERE event_id = $1
 ORDER BY id`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by event: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows, 0)
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]tasks.Task, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT `+taskColumns+`
  FROM tasks
 WHERE assigned_to_id = $1
 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by assignee: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows, 0)
}

func (r *TaskRepository) Update(ctx context.Context, id string, params tasks.UpdateParams) (*tasks.Task, error) {
	row := r.queryer().QueryRow(ctx, `
UPDATE tasks
   SET title          = COALESCE($2, title),
       description    = COALESCE($3, description),
       status         = COALESCE($4, status),
       priority       = COALESCE($5, priority),
       due_date       = COALESCE($6, due_date),
       assigned_to_id = COALESCE($7, assigned_to_id),
       updated_at     = now()
 WHERE id = $1
RETURNING `+taskColumns,
		id,
		params.Title,
		params.Description,
		(*string)(params.Status),
		(*string)(params.Priority),
		params.DueDate,
		params.AssignedToID,
	)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tasks.ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.queryer().Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tasks.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func collectTasks(rows pgx.Rows, sizeHint int) ([]tasks.Task, error) {
	items := make([]tasks.Task, 0, sizeHint)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		items = append(items, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return items, nil
}

func scanTask(row pgx.Row) (*tasks.Task, error) {
	var (
		task        tasks.Task
		description *string
		status      string
		priority    string
		dueDate     pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&status,
		&priority,
		&dueDate,
		&task.EventID,
		&task.AssignedToID,
		&task.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	task.Description = derefString(description)
	task.Status = tasks.Status(status)
	task.Priority = tasks.Priority(priority)
	if dueDate.Valid {
		value := dueDate.Time
		task.DueDate = &value
	}
	if updatedAt.Valid {
		value := updatedAt.Time
		task.UpdatedAt = &value
	}
	return &task, nil
}
