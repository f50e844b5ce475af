package usecase

import (
	"context"
	"errors"
	"time"

	"formsight/internal/insights/core/domain"
	"formsight/internal/insights/core/ports"
)

var (
	ErrMissingProject = errors.New("project id is required")
	ErrInvalidWindow  = errors.New("window must be a positive number of days")
)

const defaultWindowDays = 7

type GetInsightsInput struct {
	ProjectID  string
	WindowDays int // 0 means the default trailing window
}

type GetInsightsUseCase struct {
	reader ports.EventReaderPort
	now    func() time.Time
}

func NewGetInsightsUseCase(reader ports.EventReaderPort) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		reader: reader,
		now:    time.Now,
	}
}

// Execute computes the field report for a trailing window. The report is a
// pure function of the stored events: recomputed on every call, identical for
// identical input. A store failure propagates to the caller; a zeroed report
// in that case would mislead whoever is reading the dashboard.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, in GetInsightsInput) (*domain.Report, error) {
	if in.ProjectID == "" {
		return nil, ErrMissingProject
	}

	windowDays := in.WindowDays
	if windowDays == 0 {
		windowDays = defaultWindowDays
	}
	if windowDays < 0 {
		return nil, ErrInvalidWindow
	}

	since := uc.now().UTC().AddDate(0, 0, -windowDays)

	events, err := uc.reader.SelectEvents(ctx, in.ProjectID, since)
	if err != nil {
		return nil, err
	}

	fields, stats := aggregate(events)
	killer := pickKillerField(fields)

	return &domain.Report{
		ProjectID:   in.ProjectID,
		WindowDays:  windowDays,
		KillerField: killer,
		Fields:      fields,
		Tips:        diagnose(fields, killer, stats),
		Stats:       stats,
	}, nil
}
