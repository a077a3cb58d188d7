package usecase

import (
	"geonote/internal/domain/entity"
)

// ViewportUsecase derives the map viewport from the located notes of a
// projection. Fit is a pure function: same inputs, same region.
type ViewportUsecase interface {
	// Fit computes a region containing every located note with the
	// configured edge padding. A projection with no located notes leaves
	// the current viewport unchanged.
	Fit(notes []*entity.Note, current entity.Viewport) entity.Viewport

	// Default returns the configured initial region.
	Default() entity.Viewport
}
