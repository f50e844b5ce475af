package postgres

import (
	"context"
	"database/sql"
	"time"

	"formsight/internal/insights/core/domain"
	"formsight/internal/insights/core/ports"
)

type EventReader struct {
	db DB
}

func NewEventReader(db DB) *EventReader {
	return &EventReader{db: db}
}

var _ ports.EventReaderPort = (*EventReader)(nil)

const selectEventsSQL = `
SELECT
    session_id,
    event_type,
    field_name,
    duration_ms
FROM form_events
WHERE project_id = $1 AND occurred_at >= $2
ORDER BY occurred_at`

func (r *EventReader) SelectEvents(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, selectEventsSQL, projectID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e         domain.Event
			fieldName sql.NullString
			duration  sql.NullInt64
		)
		if err := rows.Scan(&e.SessionID, &e.Type, &fieldName, &duration); err != nil {
			return nil, err
		}
		if fieldName.Valid {
			e.FieldName = fieldName.String
		}
		if duration.Valid {
			d := duration.Int64
			e.DurationMs = &d
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
