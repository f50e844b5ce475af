package ports

import (
	"context"
	"time"

	"formsight/internal/insights/core/domain"
)

type EventReaderPort interface {
	// SelectEvents returns every event for the project observed at or after
	// since. Read-only; the write path owns the table.
	SelectEvents(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error)
}
