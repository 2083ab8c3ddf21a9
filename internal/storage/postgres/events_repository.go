package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/eventure/server/internal/domain/events"
)

var _ events.Repository = (*EventRepository)(nil)

const eventColumns = `id, title, description, location, start_time, end_time, status, organizer_id, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, params events.CreateParams) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO events (id, title, description, location, start_time, end_time, status, organizer_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+eventColumns,
		params.ID,
		params.Title,
		nullIfEmpty(params.Description),
		nullIfEmpty(params.Location),
		params.StartTime,
		params.EndTime,
		string(params.Status),
		params.OrganizerID,
	)

	event, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]events.Event, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT `+eventColumns+`
  FROM events
 ORDER BY id
 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items := make([]events.Event, 0, limit)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, params events.UpdateParams) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
UPDATE events
   SET title       = COALESCE($2, title),
       description = COALESCE($3, description),
       location    = COALESCE($4, location),
       start_time  = COALESCE($5, start_time),
       end_time    = COALESCE($6, end_time),
       status      = COALESCE($7, status),
       updated_at  = now()
 WHERE id = $1
RETURNING `+eventColumns,
		id,
		params.Title,
		params.Description,
		params.Location,
		params.StartTime,
		params.EndTime,
		(*string)(params.Status),
	)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Delete removes the event; the ON DELETE CASCADE constraint removes its
// tasks in the same statement.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.queryer().Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func scanEvent(row pgx.Row) (*events.Event, error) {
	var (
		event       events.Event
		description *string
		location    *string
		status      string
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&description,
		&location,
		&event.StartTime,
		&event.EndTime,
		&status,
		&event.OrganizerID,
		&event.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	event.Description = derefString(description)
	event.Location = derefString(location)
	event.Status = events.Status(status)
	if updatedAt.Valid {
		value := updatedAt.Time
		event.UpdatedAt = &value
	}
	return &event, nil
}
