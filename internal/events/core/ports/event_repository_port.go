package ports

import (
	"context"

	"formsight/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvents appends the batch to the event store. The store is
	// append-only with no conflict handling; a redelivered batch lands as
	// extra rows. Returns the number of rows written.
	InsertEvents(ctx context.Context, events []domain.Event) (int, error)
}
