package usecase

import (
	"context"
)

// NoteDraft is the subset of note fields supplied by the caller when creating
// or updating, excluding store-assigned identifiers and stamps.
type NoteDraft struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NoteMutationUsecase issues create/update/delete requests against the note
// store. Mutations are fire-and-observe: visibility of a completed mutation
// arrives through the synchronization channel's next delivery, never through
// a local apply.
type NoteMutationUsecase interface {
	// Create persists a new note. Owner and creation time are stamped here;
	// the location is captured once from the location provider, with denial
	// or an unavailable fix absorbed into an unlocated note. Returns the
	// store-assigned id.
	Create(ctx context.Context, draft NoteDraft) (string, error)

	// Update overwrites the entire document at id with the draft's fields.
	// Full replace semantics; the original creation time is preserved.
	Update(ctx context.Context, id string, draft NoteDraft) error

	// Delete removes the note permanently. Idempotent: deleting an absent id
	// succeeds. Confirmation is a UI-level gate; this entry point assumes it
	// has already been obtained.
	Delete(ctx context.Context, id string) error
}
