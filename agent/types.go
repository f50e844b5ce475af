package agent

import (
	"time"

	"go.uber.org/zap"
)

// Event is one observed interaction in wire form. Field values are never
// captured, only the fact that a field was touched and for how long.
type Event struct {
	Type       string `json:"type"`
	FieldName  string `json:"fieldName,omitempty"`
	Duration   *int64 `json:"duration,omitempty"` // ms of focus, blur/abandon only
	OccurredAt int64  `json:"occurredAt"`         // unix millis
}

// Batch is the request body posted to a collect endpoint.
type Batch struct {
	ProjectID string  `json:"projectId"`
	SessionID string  `json:"sessionId"`
	Events    []Event `json:"events"`
}

// Config parameterizes a Tracker. ProjectID and at least one endpoint (or
// transport) are required; everything else has defaults.
type Config struct {
	// ProjectID is the opaque tenant identifier supplied by the embedding
	// site. Without it no instrumentation happens.
	ProjectID string

	// FormSelector restricts which forms are instrumented.
	// Defaults to every form element.
	FormSelector string

	// Endpoints is the ordered candidate list for delivery. The buffer tries
	// them in order and stops at the first that accepts a batch.
	Endpoints []string

	// Transports overrides the HTTP transports built from Endpoints.
	Transports []Transport

	// Debounce is the idle window that coalesces bursts of events into one
	// batch. Defaults to 300ms.
	Debounce time.Duration

	Logger *zap.Logger

	// Now is swapped for a fixed clock in tests.
	Now func() time.Time
}
