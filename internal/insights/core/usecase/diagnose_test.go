package usecase

import (
	"strings"
	"testing"

	"formsight/internal/insights/core/domain"
)

// ------------------------------------------------------------
// RULE 1: KILLER FIELD
// ------------------------------------------------------------

func TestDiagnose_KillerFieldTip(t *testing.T) {
	killer := &domain.FieldMetric{FieldName: "phone", Visits: 10, AbandonmentRate: 0.847}

	tips := diagnose([]domain.FieldMetric{*killer}, killer, domain.GlobalStats{Submits: 3})

	if len(tips) != 1 {
		t.Fatalf("expected 1 tip, got %d: %v", len(tips), tips)
	}
	if !strings.Contains(tips[0], `"phone"`) {
		t.Errorf("tip should name the field: %s", tips[0])
	}
	if !strings.Contains(tips[0], "85%") {
		t.Errorf("rate should round to nearest whole percent: %s", tips[0])
	}
}

func TestDiagnose_KillerWithZeroRateStaysQuiet(t *testing.T) {
	// A field can clear the traffic floor with zero abandons; naming it as a
	// killer would be nonsense.
	killer := &domain.FieldMetric{FieldName: "email", Visits: 20, AbandonmentRate: 0}

	tips := diagnose([]domain.FieldMetric{*killer}, killer, domain.GlobalStats{Submits: 5})

	if len(tips) != 1 || tips[0] != tipAllClear {
		t.Fatalf("expected only the fallback tip, got %v", tips)
	}
}

// ------------------------------------------------------------
// RULE 2: HIGH HESITATION
// ------------------------------------------------------------

func TestDiagnose_HesitationTip(t *testing.T) {
	fields := []domain.FieldMetric{
		{FieldName: "iban", Visits: 3, AvgDurationMs: 12_400},
		{FieldName: "name", Visits: 3, AvgDurationMs: 900},
	}

	tips := diagnose(fields, nil, domain.GlobalStats{Submits: 1})

	if len(tips) != 1 {
		t.Fatalf("expected 1 tip, got %v", tips)
	}
	if !strings.Contains(tips[0], "12 seconds") || !strings.Contains(tips[0], `"iban"`) {
		t.Errorf("unexpected hesitation tip: %s", tips[0])
	}
}

// ------------------------------------------------------------
// RULE 3: SILENTLY SKIPPED
// ------------------------------------------------------------

func TestDiagnose_SkippedFieldTip(t *testing.T) {
	fields := []domain.FieldMetric{
		{FieldName: "company", Visits: 5, Blurs: 5, Inputs: 0},
	}

	tips := diagnose(fields, nil, domain.GlobalStats{Submits: 2})

	if len(tips) != 1 || !strings.Contains(tips[0], `"company"`) {
		t.Fatalf("expected skipped-field tip for company, got %v", tips)
	}
}

func TestDiagnose_SkippedNeedsTrafficAndBlur(t *testing.T) {
	fields := []domain.FieldMetric{
		{FieldName: "lowtraffic", Visits: 2, Blurs: 2, Inputs: 0},
		{FieldName: "noblur", Visits: 9, Blurs: 0, Inputs: 0},
		{FieldName: "typed", Visits: 9, Blurs: 9, Inputs: 4},
	}

	tips := diagnose(fields, nil, domain.GlobalStats{Submits: 2})

	if len(tips) != 1 || tips[0] != tipAllClear {
		t.Fatalf("expected no skipped tips, got %v", tips)
	}
}

// ------------------------------------------------------------
// RULE 4: NO CONVERSIONS / RULE 5: FALLBACK
// ------------------------------------------------------------

func TestDiagnose_NoConversionsTip(t *testing.T) {
	tips := diagnose(nil, nil, domain.GlobalStats{Submits: 0, Abandons: 7})

	if len(tips) != 1 || !strings.Contains(tips[0], "submit flow") {
		t.Fatalf("expected submit-flow tip, got %v", tips)
	}
}

func TestDiagnose_Fallback(t *testing.T) {
	tips := diagnose(nil, nil, domain.GlobalStats{})

	if len(tips) != 1 || tips[0] != tipAllClear {
		t.Fatalf("expected fallback tip, got %v", tips)
	}
}

// ------------------------------------------------------------
// PRIORITY ORDER AND DETERMINISM
// ------------------------------------------------------------

func TestDiagnose_AllRulesFireInOrder(t *testing.T) {
	killer := &domain.FieldMetric{FieldName: "phone", Visits: 10, AbandonmentRate: 1.0}
	fields := []domain.FieldMetric{
		{FieldName: "company", Visits: 6, Blurs: 6, Inputs: 0},
		{FieldName: "iban", Visits: 6, AvgDurationMs: 11_000, Inputs: 6, Blurs: 6},
		*killer,
	}
	stats := domain.GlobalStats{Submits: 0, Abandons: 10}

	first := diagnose(fields, killer, stats)
	second := diagnose(fields, killer, stats)

	if len(first) != 4 {
		t.Fatalf("expected 4 tips, got %d: %v", len(first), first)
	}
	if !strings.Contains(first[0], `"phone"`) {
		t.Errorf("killer tip must come first: %v", first)
	}
	if !strings.Contains(first[1], `"iban"`) {
		t.Errorf("hesitation tip must come second: %v", first)
	}
	if !strings.Contains(first[2], `"company"`) {
		t.Errorf("skipped tip must come third: %v", first)
	}
	if !strings.Contains(first[3], "submit flow") {
		t.Errorf("no-conversions tip must come last: %v", first)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tips must be deterministic: %q vs %q", first[i], second[i])
		}
	}
}
