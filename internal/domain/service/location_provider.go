// Package service defines domain service contracts implemented by the infra layer.
package service

import (
	"context"

	"geonote/internal/domain/entity"
	"geonote/internal/errors"
)

// ErrFixUnavailable is returned when the provider cannot produce a fix.
var ErrFixUnavailable = errors.New("location fix unavailable")

// LocationProvider supplies a one-shot current coordinate, gated by a
// permission decision. Both calls are made once per note-editing session,
// in order; denial or an unavailable fix results in an unlocated note
// rather than a failed save.
type LocationProvider interface {
	// RequestPermission asks for location access. It may block until the
	// user responds. A false result without error means access was refused.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentFix returns the current coordinate, or ErrFixUnavailable when
	// no fix can be obtained.
	CurrentFix(ctx context.Context) (*entity.Location, error)
}
