// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"geonote/internal/domain/entity"
)

// Projection is the local in-memory set of notes reflecting the most recent
// delivery from the remote store. Notes preserves the store's native document
// order; ByID indexes the same notes for direct lookup. Revision increments
// once per delivery. Err, when non-nil, is the advisory error state of the
// subscription: Notes then still holds the last-good set (or is empty if no
// delivery ever succeeded).
type Projection struct {
	Notes    []*entity.Note
	ByID     map[string]*entity.Note
	Revision uint64
	Err      error
}

// NoteSyncUsecase owns the single live subscription against the note store
// for the signed-in user and exposes the resulting projections.
type NoteSyncUsecase interface {
	// Open starts the live subscription for the current session. Fails with
	// ErrUnauthenticated when no session is active, without issuing a store
	// query. Opening while already open is a no-op.
	Open(ctx context.Context) error

	// Close stops the subscription and releases it. Safe to call when not
	// open or more than once.
	Close()

	// Current returns the latest projection. Consumers never observe a
	// partially applied delivery.
	Current() Projection

	// Updates registers a projection consumer. Each consumer observes only
	// the latest projection: a slow consumer skips intermediate deliveries
	// rather than accumulating a backlog. The cancel func releases the
	// consumer.
	Updates() (<-chan Projection, func())

	// FollowGate blocks consuming session gate transitions until ctx is
	// done, opening the channel on sign-in and closing it on sign-out.
	FollowGate(ctx context.Context)
}
