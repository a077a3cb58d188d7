package impl

import (
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"geonote/config"
	"geonote/internal/domain/entity"
	"geonote/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestViewportConfig() *config.Config {
	cfg := &config.Config{
		Viewport: &config.ViewportConfig{
			MapWidthPx:    1024,
			MapHeightPx:   768,
			EdgePaddingPx: 50,
			MinSpanDeg:    0.01,
		},
	}
	cfg.Viewport.Default.Latitude = 37.33
	cfg.Viewport.Default.Longitude = -122.0
	cfg.Viewport.Default.LatitudeDelta = 2
	cfg.Viewport.Default.LongitudeDelta = 2

	return cfg
}

func testSession(userID string) *entity.Session {
	return &entity.Session{UserID: userID, DisplayName: "Test User"}
}

func locatedNote(id string, lat, lng float64) *entity.Note {
	return &entity.Note{
		ID:        id,
		Title:     "note " + id,
		OwnerID:   "owner-1",
		CreatedAt: time.Now(),
		Location:  entity.NewLocation(lat, lng),
	}
}

// fakeNoteWatcher feeds deliveries from the test. Close only marks the
// watcher closed so the test can still push in-flight deliveries after it.
type fakeNoteWatcher struct {
	deliveries chan repository.NoteDelivery
	closed     atomic.Bool
}

func newFakeNoteWatcher() *fakeNoteWatcher {
	return &fakeNoteWatcher{
		deliveries: make(chan repository.NoteDelivery, 8),
	}
}

func (w *fakeNoteWatcher) Deliveries() <-chan repository.NoteDelivery {
	return w.deliveries
}

func (w *fakeNoteWatcher) Close() {
	w.closed.Store(true)
}

func (w *fakeNoteWatcher) push(notes ...*entity.Note) {
	w.deliveries <- repository.NoteDelivery{Notes: notes}
}

func (w *fakeNoteWatcher) pushErr(err error) {
	w.deliveries <- repository.NoteDelivery{Err: err}
}
