package usecase

import (
	"sort"

	"formsight/internal/insights/core/domain"
)

// Tuning thresholds. These are product calibration choices, not values
// derived from traffic data; treat them as provisional.
const (
	// minKillerVisits is the traffic floor below which a field's
	// abandonment rate is too noisy to rank.
	minKillerVisits = 5

	// hesitationThresholdMs is the dwell time past which a field counts as
	// fully hesitation-inducing.
	hesitationThresholdMs = 10_000

	hesitationDwellWeight     = 0.6
	hesitationUntouchedWeight = 0.4
)

// unknownField is the bucket for events whose field label could not be
// resolved on the client.
const unknownField = "unknown"

type fieldTally struct {
	visits   int64
	abandons int64
	inputs   int64
	blurs    int64

	// Duration-bearing events are counted separately from visits: the
	// average must divide by the events that actually carried a duration.
	durationSum   int64
	durationCount int64
}

// aggregate folds a raw event slice into per-field metrics plus window-wide
// stats. Pure: no clock, no store, deterministic output order (field name).
func aggregate(events []domain.Event) ([]domain.FieldMetric, domain.GlobalStats) {
	var stats domain.GlobalStats

	tallies := make(map[string]*fieldTally)
	sessions := make(map[string]struct{})

	for _, e := range events {
		stats.TotalEvents++
		if e.SessionID != "" {
			sessions[e.SessionID] = struct{}{}
		}

		switch e.Type {
		case "submit":
			stats.Submits++
			continue // page-level, not attributed to a field
		case "abandon":
			stats.Abandons++
		}

		name := e.FieldName
		if name == "" {
			name = unknownField
		}

		t := tallies[name]
		if t == nil {
			t = &fieldTally{}
			tallies[name] = t
		}

		switch e.Type {
		case "focus":
			t.visits++
		case "blur":
			t.blurs++
		case "input":
			t.inputs++
		case "abandon":
			t.abandons++
		}

		if e.DurationMs != nil && *e.DurationMs >= 0 {
			t.durationSum += *e.DurationMs
			t.durationCount++
		}
	}

	stats.UniqueSessions = int64(len(sessions))

	metrics := make([]domain.FieldMetric, 0, len(tallies))
	for name, t := range tallies {
		m := domain.FieldMetric{
			FieldName: name,
			Visits:    t.visits,
			Abandons:  t.abandons,
			Inputs:    t.inputs,
			Blurs:     t.blurs,
		}

		// Bounded to [0,1]: a field with no visits reports 0 even when
		// abandons landed in its bucket (the page-level abandon has no
		// matching focus), and redelivered batches cannot push the rate
		// past 1.
		if t.visits > 0 {
			m.AbandonmentRate = float64(t.abandons) / float64(t.visits)
			if m.AbandonmentRate > 1 {
				m.AbandonmentRate = 1
			}
		}
		if t.durationCount > 0 {
			m.AvgDurationMs = float64(t.durationSum) / float64(t.durationCount)
		}
		m.HesitationScore = hesitationScore(m.AvgDurationMs, t.visits, t.inputs)

		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].FieldName < metrics[j].FieldName
	})

	return metrics, stats
}

// hesitationScore blends normalized dwell time with the share of visits that
// never produced input. Clamped to [0,1] for any non-negative input.
func hesitationScore(avgDurationMs float64, visits, inputs int64) float64 {
	dwell := avgDurationMs / hesitationThresholdMs
	if dwell > 1 {
		dwell = 1
	}
	if dwell < 0 {
		dwell = 0
	}

	engaged := inputs
	if engaged > visits {
		engaged = visits
	}
	untouched := float64(visits-engaged) / float64(maxInt64(visits, 1))

	score := hesitationDwellWeight*dwell + hesitationUntouchedWeight*untouched
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// pickKillerField returns the field with the highest abandonment rate among
// fields with enough traffic. Input is sorted by field name, so keeping the
// first strict maximum makes ties resolve to the earliest name on every run.
func pickKillerField(metrics []domain.FieldMetric) *domain.FieldMetric {
	var killer *domain.FieldMetric
	for i := range metrics {
		m := &metrics[i]
		if m.Visits < minKillerVisits {
			continue
		}
		if killer == nil || m.AbandonmentRate > killer.AbandonmentRate {
			killer = m
		}
	}
	if killer == nil {
		return nil
	}
	out := *killer
	return &out
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
