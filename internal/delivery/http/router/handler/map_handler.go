package handler

import (
	"net/http"
	"strconv"

	"geonote/internal/delivery/http/response"
	"geonote/internal/domain/entity"
	"geonote/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// MapHandler serves the map-facing read models: marker GeoJSON and the
// fitted viewport.
type MapHandler struct {
	sync     usecase.NoteSyncUsecase
	viewport usecase.ViewportUsecase
}

// NewMapHandler is the constructor for MapHandler, injected by Fx.
func NewMapHandler(sync usecase.NoteSyncUsecase, viewport usecase.ViewportUsecase) *MapHandler {
	return &MapHandler{sync: sync, viewport: viewport}
}

// Markers returns the located notes of the current projection as a GeoJSON
// FeatureCollection. Unlocated notes carry no coordinate and are skipped.
func (h *MapHandler) Markers(c echo.Context) error {
	projection := h.sync.Current()

	collection := geojson.NewFeatureCollection()
	for _, note := range projection.Notes {
		if !note.Located() {
			continue
		}

		feature := geojson.NewFeature(orb.Point{note.Location.Longitude, note.Location.Latitude})
		feature.ID = note.ID
		feature.Properties["id"] = note.ID
		feature.Properties["title"] = note.Title
		feature.Properties["createdAt"] = note.CreatedAt
		collection.Append(feature)
	}

	return c.JSON(http.StatusOK, collection)
}

// Viewport fits the map region to the located notes of the current
// projection. The caller may pass its present region as query parameters;
// when absent the configured default region is used as the fallback.
func (h *MapHandler) Viewport(c echo.Context) error {
	current := h.viewport.Default()
	if region, ok := parseViewportQuery(c); ok {
		current = region
	}

	fitted := h.viewport.Fit(h.sync.Current().Notes, current)

	return response.Success(c, http.StatusOK, fitted, "Viewport computed successfully")
}

func parseViewportQuery(c echo.Context) (entity.Viewport, bool) {
	params := []string{"latitude", "longitude", "latitudeDelta", "longitudeDelta"}
	values := make([]float64, len(params))
	for i, name := range params {
		raw := c.QueryParam(name)
		if raw == "" {
			return entity.Viewport{}, false
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entity.Viewport{}, false
		}
		values[i] = parsed
	}

	return entity.Viewport{
		Latitude:       values[0],
		Longitude:      values[1],
		LatitudeDelta:  values[2],
		LongitudeDelta: values[3],
	}, true
}
