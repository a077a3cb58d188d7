// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Note is the central entity: a personal note with an optional geolocation.
type Note struct {
	ID        string    // Store-assigned opaque identifier; empty before first persistence.
	Title     string    // Free-text title, may be empty.
	Body      string    // Free-text body, may be empty and multi-line.
	OwnerID   string    // Identifier of the authenticated user who created the note. Set once, never mutated.
	CreatedAt time.Time // Creation timestamp. Immutable after creation.
	Location  *Location // Optional coordinate pair captured at save time; nil when unlocated.
}

// Located reports whether the note carries a location.
func (n *Note) Located() bool {
	return n.Location != nil
}
