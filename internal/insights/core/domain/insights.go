package domain

// Event is the read-model view of one stored interaction. The read path only
// needs the dimensions it aggregates over; tenant and exact timestamps are
// already fixed by the query window.
type Event struct {
	SessionID  string
	Type       string
	FieldName  string
	DurationMs *int64
}

// FieldMetric is the per-field aggregate for one project and window. It is
// derived on every read and never persisted.
type FieldMetric struct {
	FieldName       string
	Visits          int64 // focus events
	Abandons        int64
	Inputs          int64
	Blurs           int64
	AbandonmentRate float64 // abandons / visits in [0,1], 0 when no visits
	AvgDurationMs   float64 // mean over duration-bearing events only
	HesitationScore float64 // bounded [0,1] heuristic
}

type GlobalStats struct {
	TotalEvents    int64
	UniqueSessions int64
	Submits        int64
	Abandons       int64
}

// Report is what the dashboard consumes: the worst field (nil when no field
// has enough traffic), templated recommendations, and window-wide stats.
type Report struct {
	ProjectID   string
	WindowDays  int
	KillerField *FieldMetric
	Fields      []FieldMetric
	Tips        []string
	Stats       GlobalStats
}
