package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"geonote/internal/domain/service"
	"geonote/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StreamHandler pushes projection snapshots and navigation signals to the
// client as server-sent events. Each subscriber gets its own latest-only
// projection queue, so a slow reader only ever misses intermediate states.
type StreamHandler struct {
	sync      usecase.NoteSyncUsecase
	navigator service.Navigator
	logger    *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler, injected by Fx.
func NewStreamHandler(sync usecase.NoteSyncUsecase, navigator service.Navigator, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{sync: sync, navigator: navigator, logger: logger}
}

// Stream serves the event stream until the client disconnects.
func (h *StreamHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	updates, cancelUpdates := h.sync.Updates()
	defer cancelUpdates()

	signals, cancelSignals := h.navigator.Subscribe()
	defer cancelSignals()

	// Seed the stream with the snapshot the client would otherwise have to
	// fetch separately.
	if err := h.writeProjection(c, h.sync.Current()); err != nil {
		return nil
	}

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case projection := <-updates:
			if err := h.writeProjection(c, projection); err != nil {
				return nil
			}
		case signal := <-signals:
			if err := h.writeSignal(c, signal); err != nil {
				return nil
			}
		}
	}
}

func (h *StreamHandler) writeProjection(c echo.Context, projection usecase.Projection) error {
	payload, err := json.Marshal(toProjectionResponse(projection))
	if err != nil {
		h.logger.Error("failed to encode projection event", slog.String("error", err.Error()))

		return err
	}

	return h.writeEvent(c, "projection", payload)
}

func (h *StreamHandler) writeSignal(c echo.Context, signal service.NavigationSignal) error {
	payload, err := json.Marshal(map[string]string{"signal": string(signal)})
	if err != nil {
		return err
	}

	return h.writeEvent(c, "navigation", payload)
}

func (h *StreamHandler) writeEvent(c echo.Context, event string, payload []byte) error {
	if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	c.Response().Flush()

	return nil
}
