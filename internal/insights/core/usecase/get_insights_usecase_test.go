package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"formsight/internal/insights/core/domain"
	"formsight/internal/insights/core/usecase"
)

type fakeEventReader struct {
	SelectFn  func(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error)
	lastSince time.Time
	lastProj  string
}

func (f *fakeEventReader) SelectEvents(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error) {
	f.lastProj = projectID
	f.lastSince = since
	if f.SelectFn != nil {
		return f.SelectFn(ctx, projectID, since)
	}
	return nil, nil
}

func dur(v int64) *int64 { return &v }

// ------------------------------------------------------------
// HAPPY SESSION: focus, blur, submit (not enough traffic to rank)
// ------------------------------------------------------------
func TestGetInsights_SingleCompletedSession(t *testing.T) {
	reader := &fakeEventReader{
		SelectFn: func(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error) {
			return []domain.Event{
				{SessionID: "s1", Type: "focus", FieldName: "email"},
				{SessionID: "s1", Type: "blur", FieldName: "email", DurationMs: dur(2000)},
				{SessionID: "s1", Type: "submit"},
			}, nil
		},
	}

	uc := usecase.NewGetInsightsUseCase(reader)

	report, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "proj_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Stats.Submits != 1 || report.Stats.TotalEvents != 3 {
		t.Fatalf("unexpected stats: %+v", report.Stats)
	}
	if len(report.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(report.Fields))
	}
	email := report.Fields[0]
	if email.Visits != 1 || email.Abandons != 0 {
		t.Fatalf("unexpected email metric: %+v", email)
	}
	if report.KillerField != nil {
		t.Fatalf("one visit is not enough traffic to name a killer field: %+v", report.KillerField)
	}
}

// ------------------------------------------------------------
// EVERY SESSION ABANDONS THE SAME FIELD
// ------------------------------------------------------------
func TestGetInsights_KillerField(t *testing.T) {
	reader := &fakeEventReader{
		SelectFn: func(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error) {
			var events []domain.Event
			for i := 0; i < 10; i++ {
				sid := string(rune('a' + i))
				events = append(events,
					domain.Event{SessionID: sid, Type: "focus", FieldName: "phone"},
					domain.Event{SessionID: sid, Type: "abandon", FieldName: "phone", DurationMs: dur(3000)},
				)
			}
			return events, nil
		},
	}

	uc := usecase.NewGetInsightsUseCase(reader)

	report, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "proj_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.KillerField == nil || report.KillerField.FieldName != "phone" {
		t.Fatalf("expected phone as killer field, got %+v", report.KillerField)
	}
	if report.KillerField.AbandonmentRate != 1.0 {
		t.Fatalf("expected rate 1.0, got %v", report.KillerField.AbandonmentRate)
	}
	if report.Stats.UniqueSessions != 10 {
		t.Fatalf("expected 10 sessions, got %d", report.Stats.UniqueSessions)
	}
	if len(report.Tips) == 0 {
		t.Fatalf("expected at least the killer-field tip")
	}
}

// ------------------------------------------------------------
// EMPTY WINDOW IS A REPORT, NOT AN ERROR
// ------------------------------------------------------------
func TestGetInsights_EmptyWindow(t *testing.T) {
	reader := &fakeEventReader{}
	uc := usecase.NewGetInsightsUseCase(reader)

	report, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "proj_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Stats.TotalEvents != 0 {
		t.Fatalf("expected zero stats, got %+v", report.Stats)
	}
	if report.KillerField != nil {
		t.Fatalf("expected nil killer field")
	}
	if len(report.Tips) != 1 {
		t.Fatalf("expected the fallback tip, got %v", report.Tips)
	}
}

// ------------------------------------------------------------
// INPUT VALIDATION AND WINDOW DEFAULT
// ------------------------------------------------------------
func TestGetInsights_MissingProject(t *testing.T) {
	uc := usecase.NewGetInsightsUseCase(&fakeEventReader{})

	_, err := uc.Execute(context.Background(), usecase.GetInsightsInput{})
	if !errors.Is(err, usecase.ErrMissingProject) {
		t.Fatalf("expected ErrMissingProject, got %v", err)
	}
}

func TestGetInsights_NegativeWindow(t *testing.T) {
	uc := usecase.NewGetInsightsUseCase(&fakeEventReader{})

	_, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "p", WindowDays: -3})
	if !errors.Is(err, usecase.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestGetInsights_DefaultWindow(t *testing.T) {
	reader := &fakeEventReader{}
	uc := usecase.NewGetInsightsUseCase(reader)

	report, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "proj_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.WindowDays != 7 {
		t.Fatalf("expected default 7-day window, got %d", report.WindowDays)
	}

	expected := time.Now().UTC().AddDate(0, 0, -7)
	if diff := reader.lastSince.Sub(expected); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("since not ~7 days back: %v", reader.lastSince)
	}
}

// ------------------------------------------------------------
// STORE FAILURE SURFACES
// ------------------------------------------------------------
func TestGetInsights_StoreErrorPropagates(t *testing.T) {
	reader := &fakeEventReader{
		SelectFn: func(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error) {
			return nil, errors.New("store unreachable")
		},
	}
	uc := usecase.NewGetInsightsUseCase(reader)

	report, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "proj_1"})
	if err == nil {
		t.Fatalf("a store failure must surface, not produce a zeroed report")
	}
	if report != nil {
		t.Fatalf("expected nil report on error, got %+v", report)
	}
}

// ------------------------------------------------------------
// PURE FUNCTION OF INPUT
// ------------------------------------------------------------
func TestGetInsights_Idempotent(t *testing.T) {
	events := []domain.Event{
		{SessionID: "s1", Type: "focus", FieldName: "alpha"},
		{SessionID: "s1", Type: "abandon", FieldName: "alpha", DurationMs: dur(1500)},
		{SessionID: "s2", Type: "focus", FieldName: "beta"},
		{SessionID: "s2", Type: "input", FieldName: "beta"},
	}
	reader := &fakeEventReader{
		SelectFn: func(ctx context.Context, projectID string, since time.Time) ([]domain.Event, error) {
			return events, nil
		},
	}
	uc := usecase.NewGetInsightsUseCase(reader)

	first, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "proj_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), usecase.GetInsightsInput{ProjectID: "proj_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Fields, second.Fields) {
		t.Fatalf("field metrics differ across runs:\n%+v\n%+v", first.Fields, second.Fields)
	}
	if !reflect.DeepEqual(first.Tips, second.Tips) {
		t.Fatalf("tips differ across runs")
	}
	if !reflect.DeepEqual(first.Stats, second.Stats) {
		t.Fatalf("stats differ across runs")
	}
}
