package postgres

import (
	"context"

	"formsight/internal/events/core/domain"
	"formsight/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// Append-only: no conflict clause. The capture side may replay a batch after
// a partially observed send, and the aggregation side tolerates duplicates.
const insertEventSQL = `
INSERT INTO form_events (
    project_id,
    session_id,
    event_type,
    field_name,
    duration_ms,
    occurred_at
) VALUES (
    $1, $2, $3, $4, $5, $6
);
`

func (r *EventRepository) InsertEvents(ctx context.Context, events []domain.Event) (int, error) {
	written := 0

	for _, e := range events {
		var fieldName any
		if e.FieldName != "" {
			fieldName = e.FieldName
		}

		var duration any
		if e.DurationMs != nil {
			duration = *e.DurationMs
		}

		res, err := r.db.ExecContext(ctx, insertEventSQL,
			e.ProjectID,
			e.SessionID,
			string(e.Type),
			fieldName,
			duration,
			e.OccurredAt,
		)
		if err != nil {
			return written, err
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return written, err
		}
		written += int(rows)
	}

	return written, nil
}
