package usecase

import (
	"context"
	"errors"
	"time"

	"formsight/internal/events/core/domain"
	"formsight/internal/events/core/ports"
)

var (
	ErrMissingProject = errors.New("project id is required")
	ErrMissingSession = errors.New("session id is required")
	ErrEmptyBatch     = errors.New("batch contains no events")
)

type IngestEventsUseCase struct {
	repo ports.EventRepositoryPort
}

func NewIngestEventsUseCase(repo ports.EventRepositoryPort) *IngestEventsUseCase {
	return &IngestEventsUseCase{repo: repo}
}

// RecordInput is one wire event before validation.
type RecordInput struct {
	Type       string
	FieldName  string
	DurationMs *int64
	OccurredAt int64 // unix millis as observed by the client
}

type IngestEventsInput struct {
	ProjectID string
	SessionID string
	Events    []RecordInput
}

type IngestEventsResult struct {
	Accepted int
	Dropped  int
}

// Execute validates each record individually and appends the survivors.
// A malformed record is dropped without failing the rest of the batch;
// only batch-level problems (no tenant, no session, storage failure)
// surface as errors.
func (uc *IngestEventsUseCase) Execute(ctx context.Context, in IngestEventsInput) (IngestEventsResult, error) {
	var res IngestEventsResult

	if in.ProjectID == "" {
		return res, ErrMissingProject
	}
	if in.SessionID == "" {
		return res, ErrMissingSession
	}
	if len(in.Events) == 0 {
		return res, ErrEmptyBatch
	}

	valid := make([]domain.Event, 0, len(in.Events))
	for _, rec := range in.Events {
		e, ok := uc.normalize(in, rec)
		if !ok {
			res.Dropped++
			continue
		}
		valid = append(valid, e)
	}

	if len(valid) == 0 {
		return res, nil
	}

	written, err := uc.repo.InsertEvents(ctx, valid)
	if err != nil {
		return res, err
	}

	res.Accepted = written
	return res, nil
}

func (uc *IngestEventsUseCase) normalize(in IngestEventsInput, rec RecordInput) (domain.Event, bool) {
	t := domain.EventType(rec.Type)
	if !t.Valid() {
		return domain.Event{}, false
	}
	if rec.OccurredAt <= 0 {
		return domain.Event{}, false
	}
	if rec.DurationMs != nil && *rec.DurationMs < 0 {
		return domain.Event{}, false
	}

	return domain.Event{
		ProjectID:  in.ProjectID,
		SessionID:  in.SessionID,
		Type:       t,
		FieldName:  rec.FieldName,
		DurationMs: rec.DurationMs,
		OccurredAt: time.UnixMilli(rec.OccurredAt).UTC(),
	}, true
}
