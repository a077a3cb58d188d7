package service

import (
	"context"

	"geonote/internal/domain/entity"
	"geonote/internal/errors"
)

// ErrSignedOut is returned by Current when no session is active.
var ErrSignedOut = errors.New("no active session")

// SessionState is one transition of the signed-in/signed-out gate.
type SessionState struct {
	SignedIn bool
	Session  *entity.Session // nil when signed out
}

// SessionGate exposes the signed-in/signed-out state of the single local
// session. The synchronization channel starts and stops its subscription
// strictly in response to transitions of this gate.
type SessionGate interface {
	// Current returns the active session, or ErrSignedOut.
	Current() (*entity.Session, error)

	// SignIn validates the given identity token and installs the session.
	SignIn(ctx context.Context, idToken string) (*entity.Session, error)

	// SignOut clears the active session. A no-op when already signed out.
	SignOut()

	// Subscribe registers a watcher for gate transitions. The returned
	// cancel func releases the watcher; the channel receives the current
	// state immediately on subscription.
	Subscribe() (<-chan SessionState, func())
}
