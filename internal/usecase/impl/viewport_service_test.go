package impl

import (
	"testing"

	"geonote/config"
	"geonote/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestViewportService_Fit_NoLocatedNotes_Unchanged(t *testing.T) {
	svc := NewViewportService(newTestViewportConfig())

	current := entity.Viewport{
		Latitude:       10.0,
		Longitude:      20.0,
		LatitudeDelta:  1.5,
		LongitudeDelta: 1.5,
	}

	notes := []*entity.Note{
		{ID: "a", Title: "unlocated"},
		{ID: "b", Title: "also unlocated"},
	}

	assert.Equal(t, current, svc.Fit(notes, current))
	assert.Equal(t, current, svc.Fit(nil, current))
}

func TestViewportService_Fit_SingleNote_CenteredWithMinSpan(t *testing.T) {
	svc := NewViewportService(newTestViewportConfig())

	notes := []*entity.Note{locatedNote("a", 37.0, -122.0)}
	fitted := svc.Fit(notes, entity.Viewport{})

	assert.InDelta(t, 37.0, fitted.Latitude, 1e-9)
	assert.InDelta(t, -122.0, fitted.Longitude, 1e-9)

	// A single point has zero raw span; the guard keeps the region visible.
	assert.InDelta(t, 0.01, fitted.LatitudeDelta, 1e-9)
	assert.InDelta(t, 0.01, fitted.LongitudeDelta, 1e-9)
}

func TestViewportService_Fit_ContainsEveryNoteWithPadding(t *testing.T) {
	svc := NewViewportService(newTestViewportConfig())

	notes := []*entity.Note{
		locatedNote("a", 37.0, -122.0),
		locatedNote("b", 38.0, -121.0),
		{ID: "c", Title: "unlocated, must be ignored"},
	}

	fitted := svc.Fit(notes, entity.Viewport{})

	assert.InDelta(t, 37.5, fitted.Latitude, 1e-9)
	assert.InDelta(t, -121.5, fitted.Longitude, 1e-9)

	// The padded span exceeds the raw extent, so every located note sits
	// strictly inside the region.
	assert.Greater(t, fitted.LatitudeDelta, 1.0)
	assert.Greater(t, fitted.LongitudeDelta, 1.0)

	for _, note := range notes {
		if !note.Located() {
			continue
		}
		assert.Less(t, note.Location.Latitude, fitted.Latitude+fitted.LatitudeDelta/2)
		assert.Greater(t, note.Location.Latitude, fitted.Latitude-fitted.LatitudeDelta/2)
		assert.Less(t, note.Location.Longitude, fitted.Longitude+fitted.LongitudeDelta/2)
		assert.Greater(t, note.Location.Longitude, fitted.Longitude-fitted.LongitudeDelta/2)
	}
}

func TestViewportService_Fit_PaddingScalesWithSpan(t *testing.T) {
	svc := NewViewportService(newTestViewportConfig())

	narrow := svc.Fit([]*entity.Note{
		locatedNote("a", 37.0, -122.0),
		locatedNote("b", 37.1, -121.9),
	}, entity.Viewport{})

	wide := svc.Fit([]*entity.Note{
		locatedNote("a", 30.0, -125.0),
		locatedNote("b", 40.0, -115.0),
	}, entity.Viewport{})

	// Screen-space padding adds more degrees to the wide set.
	assert.Greater(t, wide.LatitudeDelta-10.0, narrow.LatitudeDelta-0.1)
}

func TestViewportService_Default(t *testing.T) {
	svc := NewViewportService(newTestViewportConfig())

	def := svc.Default()
	assert.InDelta(t, 37.33, def.Latitude, 1e-9)
	assert.InDelta(t, -122.0, def.Longitude, 1e-9)
	assert.InDelta(t, 2.0, def.LatitudeDelta, 1e-9)
	assert.InDelta(t, 2.0, def.LongitudeDelta, 1e-9)
}

func TestViewportService_UnconfiguredFallsBackToDefaults(t *testing.T) {
	svc := NewViewportService(&config.Config{})

	def := svc.Default()
	assert.InDelta(t, 37.33, def.Latitude, 1e-9)
	assert.InDelta(t, -122.0, def.Longitude, 1e-9)
}
