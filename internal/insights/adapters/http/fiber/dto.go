package fiber

type FieldMetricResponse struct {
	FieldName       string  `json:"fieldName"`
	Visits          int64   `json:"visits"`
	Abandons        int64   `json:"abandons"`
	AbandonmentRate float64 `json:"abandonmentRate"`
	AvgDurationMs   float64 `json:"avgDurationMs"`
	HesitationScore float64 `json:"hesitationScore"`
}

type StatsResponse struct {
	TotalEvents    int64 `json:"totalEvents"`
	UniqueSessions int64 `json:"uniqueSessions"`
	Submits        int64 `json:"submits"`
	Abandons       int64 `json:"abandons"`
}

type InsightsResponse struct {
	ProjectID   string                `json:"projectId"`
	WindowDays  int                   `json:"windowDays"`
	KillerField *FieldMetricResponse  `json:"killerField"` // null when no field has enough traffic
	Fields      []FieldMetricResponse `json:"fields"`
	Tips        []string              `json:"tips"`
	Stats       StatsResponse         `json:"stats"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"project_id is required"`
}
