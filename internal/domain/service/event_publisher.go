package service

import (
	"context"
	"time"
)

// NoteEventType discriminates note change events.
type NoteEventType string

const (
	NoteEventCreated NoteEventType = "created"
	NoteEventUpdated NoteEventType = "updated"
	NoteEventDeleted NoteEventType = "deleted"
)

// NoteEvent describes a completed mutation against the note store.
type NoteEvent struct {
	EventID    string        `json:"event_id"`
	Type       NoteEventType `json:"type"`
	NoteID     string        `json:"note_id"`
	OwnerID    string        `json:"owner_id"`
	RequestID  string        `json:"request_id,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher publishes note change events to an external consumer.
// Publishing is best-effort relative to the mutation itself: the store's own
// change notification remains the source of truth for visibility.
type EventPublisher interface {
	PublishNoteEvent(ctx context.Context, event *NoteEvent) error
	Close() error
}
