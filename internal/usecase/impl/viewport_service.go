package impl

import (
	"geonote/config"
	"geonote/internal/domain/entity"
	"geonote/internal/usecase"

	"github.com/paulmach/orb"
)

type viewportService struct {
	cfg *config.ViewportConfig
}

// NewViewportService creates the viewport fitter.
func NewViewportService(cfg *config.Config) usecase.ViewportUsecase {
	// If Viewport is not configured, provide a default configuration
	if cfg.Viewport == nil {
		cfg.Viewport = &config.ViewportConfig{
			MapWidthPx:    1024,
			MapHeightPx:   768,
			EdgePaddingPx: 50,
			MinSpanDeg:    0.01,
		}
		cfg.Viewport.Default.Latitude = 37.33
		cfg.Viewport.Default.Longitude = -122.0
		cfg.Viewport.Default.LatitudeDelta = 2
		cfg.Viewport.Default.LongitudeDelta = 2
	}

	return &viewportService{cfg: cfg.Viewport}
}

// Default returns the configured initial region.
func (s *viewportService) Default() entity.Viewport {
	d := s.cfg.Default

	return entity.Viewport{
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		LatitudeDelta:  d.LatitudeDelta,
		LongitudeDelta: d.LongitudeDelta,
	}
}

// Fit computes the region containing every located note with the configured
// screen-space edge padding. With no located notes the current viewport is
// returned unchanged.
func (s *viewportService) Fit(notes []*entity.Note, current entity.Viewport) entity.Viewport {
	var points orb.MultiPoint
	for _, note := range notes {
		if note.Located() {
			points = append(points, orb.Point{note.Location.Longitude, note.Location.Latitude})
		}
	}

	if len(points) == 0 {
		return current
	}

	bound := points.Bound()
	center := bound.Center()

	return entity.Viewport{
		Latitude:       center[1],
		Longitude:      center[0],
		LatitudeDelta:  s.paddedSpan(bound.Max[1]-bound.Min[1], s.cfg.MapHeightPx),
		LongitudeDelta: s.paddedSpan(bound.Max[0]-bound.Min[0], s.cfg.MapWidthPx),
	}
}

// paddedSpan widens a degree span so that the content occupies the map edge
// minus the configured pixel padding on each side. The padding is screen
// space: the degrees it adds scale with the content's degrees-per-pixel.
func (s *viewportService) paddedSpan(span float64, mapSizePx int) float64 {
	inner := float64(mapSizePx - 2*s.cfg.EdgePaddingPx)
	if inner < 1 {
		inner = 1
	}

	padded := span + 2*float64(s.cfg.EdgePaddingPx)*(span/inner)
	if padded < s.cfg.MinSpanDeg {
		padded = s.cfg.MinSpanDeg
	}

	return padded
}
