package fiber

// CollectRequest is the wire batch shape posted by the capture agent.
// It doubles as the legacy flattened single-event shape: older embeds post
// one event with the record fields at the top level, so those fields are
// declared here too and folded into a one-event batch during normalization.
// @Description Telemetry batch DTO
type CollectRequest struct {
	ProjectID string      `json:"projectId" form:"projectId"`
	SessionID string      `json:"sessionId" form:"sessionId"`
	Events    []eventItem `json:"events" form:"-"`

	// Legacy single-event fields.
	Type       string `json:"type" form:"type"`
	FieldName  string `json:"fieldName" form:"fieldName"`
	Duration   *int64 `json:"duration" form:"duration"`
	OccurredAt int64  `json:"occurredAt" form:"occurredAt"`
}

type eventItem struct {
	Type       string `json:"type"`
	FieldName  string `json:"fieldName"`
	Duration   *int64 `json:"duration"`
	OccurredAt int64  `json:"occurredAt"`
}

// normalized returns the batch view of the request, folding the legacy
// flattened shape into a single-element batch when no events array is set.
func (r CollectRequest) normalized() CollectRequest {
	if len(r.Events) == 0 && r.Type != "" {
		r.Events = []eventItem{{
			Type:       r.Type,
			FieldName:  r.FieldName,
			Duration:   r.Duration,
			OccurredAt: r.OccurredAt,
		}}
	}
	return r
}
