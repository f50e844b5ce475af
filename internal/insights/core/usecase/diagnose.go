package usecase

import (
	"fmt"
	"math"

	"formsight/internal/insights/core/domain"
)

// Recommendation templates. All output is fixed text with computed numbers
// substituted in, so the same metrics always produce the same tips.
const (
	tipKillerField = "Field %q loses you the most visitors: %d%% of the people who reach it give up there. Consider making it optional or moving it to the end of the form."
	tipHesitation  = "Visitors spend an average of %d seconds on %q. Simplify the field or add inline guidance."
	tipSkipped     = "Visitors look at %q but never fill it in. Explain why it is needed, or remove it."
	tipNoSubmits   = "No completed submissions in this window, but %d abandons. Check that your submit flow actually works."
	tipAllClear    = "No blockers detected. Your form fields are performing within normal ranges."
)

// diagnose applies every rule independently; all qualifying rules fire, in
// presentation priority order.
func diagnose(fields []domain.FieldMetric, killer *domain.FieldMetric, stats domain.GlobalStats) []string {
	tips := make([]string, 0, 4)

	if killer != nil && killer.AbandonmentRate > 0 {
		pct := int(math.Round(killer.AbandonmentRate * 100))
		tips = append(tips, fmt.Sprintf(tipKillerField, killer.FieldName, pct))
	}

	for _, m := range fields {
		if m.AvgDurationMs > hesitationThresholdMs {
			secs := int(math.Round(m.AvgDurationMs / 1000))
			tips = append(tips, fmt.Sprintf(tipHesitation, secs, m.FieldName))
		}
	}

	for _, m := range fields {
		if m.Visits >= minKillerVisits && m.Inputs == 0 && m.Blurs >= 1 {
			tips = append(tips, fmt.Sprintf(tipSkipped, m.FieldName))
		}
	}

	if stats.Submits == 0 && stats.Abandons > 0 {
		tips = append(tips, fmt.Sprintf(tipNoSubmits, stats.Abandons))
	}

	if len(tips) == 0 {
		tips = append(tips, tipAllClear)
	}

	return tips
}
