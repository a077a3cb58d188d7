// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"geonote/internal/domain/entity"
	"geonote/internal/errors"
)

// Domain-specific errors for note persistence.
var (
	// ErrNoteNotFound is returned when a note is not found in the store.
	ErrNoteNotFound = errors.New("note not found")
)

// NoteDelivery is one full-set notification from the live subscription.
// Every delivery carries the complete current set of matching notes in the
// store's native document order, never a diff. A delivery with Err set is
// advisory: the subscription stays open and the consumer keeps its last-good
// set until the next successful delivery.
type NoteDelivery struct {
	Notes []*entity.Note
	Err   error
}

// NoteWatcher is the handle for one live subscription. Close stops the
// listener and releases the handle; calling Close more than once is a no-op.
type NoteWatcher interface {
	// Deliveries returns the channel on which full-set notifications arrive.
	// The channel is closed after Close or when the subscription terminates.
	Deliveries() <-chan NoteDelivery

	// Close cancels the subscription. Safe to call multiple times.
	Close()
}

// NoteRepository defines the interface for note-related document store operations.
type NoteRepository interface {
	// CreateNote persists a new note and returns the store-assigned id.
	// The note's ID field is ignored on input.
	CreateNote(ctx context.Context, note *entity.Note) (string, error)

	// FindNoteByID retrieves a note by its store id.
	// Returns ErrNoteNotFound if no document exists at that id.
	FindNoteByID(ctx context.Context, id string) (*entity.Note, error)

	// ReplaceNote overwrites the entire document at id with the given note.
	// Full replace semantics: fields absent from the note are absent from the
	// stored document afterwards.
	ReplaceNote(ctx context.Context, id string, note *entity.Note) error

	// DeleteNote removes the document permanently. Deleting an absent id is
	// not an error.
	DeleteNote(ctx context.Context, id string) error

	// WatchNotesByOwner opens a live query filtered by owner. The watcher
	// delivers the current matching set immediately and again on every
	// subsequent change affecting the filter.
	WatchNotesByOwner(ctx context.Context, ownerID string) (NoteWatcher, error)
}
