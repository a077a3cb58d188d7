package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geonote/config"
	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/infra/qrcode"
	"geonote/internal/usecase"
	"geonote/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSync serves a fixed projection, standing in for the live channel.
type stubSync struct {
	projection usecase.Projection
}

func (s *stubSync) Open(ctx context.Context) error { return nil }

func (s *stubSync) Close() {}

func (s *stubSync) Current() usecase.Projection { return s.projection }

func (s *stubSync) Updates() (<-chan usecase.Projection, func()) {
	ch := make(chan usecase.Projection)

	return ch, func() {}
}

func (s *stubSync) FollowGate(ctx context.Context) {}

func fixedProjection() usecase.Projection {
	located := &entity.Note{
		ID:        "note-1",
		Title:     "Trailhead",
		Body:      "Start of the loop",
		CreatedAt: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		OwnerID:   "user-1",
		Location:  &entity.Location{Latitude: 37.33, Longitude: -122.0},
	}
	unlocated := &entity.Note{
		ID:        "note-2",
		Title:     "Groceries",
		CreatedAt: time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC),
		OwnerID:   "user-1",
	}

	return usecase.Projection{
		Notes:    []*entity.Note{located, unlocated},
		ByID:     map[string]*entity.Note{"note-1": located, "note-2": unlocated},
		Revision: 3,
	}
}

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNoteHandler_GetNote(t *testing.T) {
	handler := &NoteHandler{
		sync:   &stubSync{projection: fixedProjection()},
		logger: slog.Default(),
	}

	c, rec := newTestContext(t, "/notes/note-1")
	c.SetParamNames("id")
	c.SetParamValues("note-1")

	require.NoError(t, handler.GetNote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Trailhead")
	assert.Contains(t, rec.Body.String(), "37.33")
}

func TestNoteHandler_GetNote_Missing(t *testing.T) {
	handler := &NoteHandler{
		sync:   &stubSync{projection: fixedProjection()},
		logger: slog.Default(),
	}

	c, _ := newTestContext(t, "/notes/ghost")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.GetNote(c)
	require.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestNoteHandler_ListNotes(t *testing.T) {
	handler := &NoteHandler{
		sync:   &stubSync{projection: fixedProjection()},
		logger: slog.Default(),
	}

	c, rec := newTestContext(t, "/notes")

	require.NoError(t, handler.ListNotes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"revision":3`)
	assert.Contains(t, rec.Body.String(), "Groceries")
}

func TestNoteHandler_LocationQR(t *testing.T) {
	handler := &NoteHandler{
		sync:   &stubSync{projection: fixedProjection()},
		qr:     qrcode.NewQRCodeService(128, "M"),
		logger: slog.Default(),
	}

	c, rec := newTestContext(t, "/notes/note-1/qr")
	c.SetParamNames("id")
	c.SetParamValues("note-1")

	require.NoError(t, handler.LocationQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	// PNG signature
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes()[:4])
}

func TestNoteHandler_LocationQR_Unlocated(t *testing.T) {
	handler := &NoteHandler{
		sync:   &stubSync{projection: fixedProjection()},
		qr:     qrcode.NewQRCodeService(128, "M"),
		logger: slog.Default(),
	}

	c, _ := newTestContext(t, "/notes/note-2/qr")
	c.SetParamNames("id")
	c.SetParamValues("note-2")

	err := handler.LocationQR(c)
	require.ErrorIs(t, err, domainerrors.ErrNoteUnlocated)
}

func TestMapHandler_Markers_SkipsUnlocatedNotes(t *testing.T) {
	handler := &MapHandler{
		sync:     &stubSync{projection: fixedProjection()},
		viewport: impl.NewViewportService(&config.Config{}),
	}

	c, rec := newTestContext(t, "/map/markers")

	require.NoError(t, handler.Markers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FeatureCollection")
	assert.Contains(t, rec.Body.String(), "note-1")
	assert.NotContains(t, rec.Body.String(), "note-2")
}

func TestMapHandler_Viewport_DefaultsWithoutQuery(t *testing.T) {
	handler := &MapHandler{
		sync:     &stubSync{projection: usecase.Projection{ByID: map[string]*entity.Note{}}},
		viewport: impl.NewViewportService(&config.Config{}),
	}

	c, rec := newTestContext(t, "/map/viewport")

	require.NoError(t, handler.Viewport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "latitudeDelta")
}
