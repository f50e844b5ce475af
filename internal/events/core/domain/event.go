package domain

import "time"

// EventType is the closed set of interaction kinds the pipeline understands.
type EventType string

const (
	EventFocus   EventType = "focus"
	EventBlur    EventType = "blur"
	EventInput   EventType = "input"
	EventSubmit  EventType = "submit"
	EventAbandon EventType = "abandon"
)

// Valid reports whether t is a known interaction kind. Unknown types are
// rejected at ingestion, never stored.
func (t EventType) Valid() bool {
	switch t {
	case EventFocus, EventBlur, EventInput, EventSubmit, EventAbandon:
		return true
	}
	return false
}

type Event struct {
	ProjectID  string
	SessionID  string
	Type       EventType
	FieldName  string // best-effort label; empty when the client could not resolve one
	DurationMs *int64 // focus dwell time, present on blur/abandon only
	OccurredAt time.Time
}
