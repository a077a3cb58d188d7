// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geonote/internal/delivery/http/response"
	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/service"
	"geonote/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NoteHandler holds dependencies for note-related handlers.
type NoteHandler struct {
	mutation usecase.NoteMutationUsecase
	sync     usecase.NoteSyncUsecase
	qr       service.QRCodeService
	logger   *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(
	mutation usecase.NoteMutationUsecase,
	sync usecase.NoteSyncUsecase,
	qr service.QRCodeService,
	logger *slog.Logger,
) *NoteHandler {
	return &NoteHandler{
		mutation: mutation,
		sync:     sync,
		qr:       qr,
		logger:   logger,
	}
}

type noteRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"max=10000"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type noteResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	CreatedAt time.Time         `json:"createdAt"`
	Location  *locationResponse `json:"location"`
}

type projectionResponse struct {
	Notes    []noteResponse `json:"notes"`
	Revision uint64         `json:"revision"`
	Error    string         `json:"error,omitempty"`
}

func toNoteResponse(note *entity.Note) noteResponse {
	resp := noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}
	if note.Located() {
		resp.Location = &locationResponse{
			Latitude:  note.Location.Latitude,
			Longitude: note.Location.Longitude,
		}
	}

	return resp
}

func toProjectionResponse(p usecase.Projection) projectionResponse {
	resp := projectionResponse{
		Notes:    make([]noteResponse, 0, len(p.Notes)),
		Revision: p.Revision,
	}
	for _, note := range p.Notes {
		resp.Notes = append(resp.Notes, toNoteResponse(note))
	}
	if p.Err != nil {
		resp.Error = p.Err.Error()
	}

	return resp
}

// ListNotes returns the current projection of the signed-in user's notes.
func (h *NoteHandler) ListNotes(c echo.Context) error {
	projection := h.sync.Current()

	return response.Success(c, http.StatusOK, toProjectionResponse(projection), "Notes retrieved successfully")
}

// GetNote returns one note from the current projection.
func (h *NoteHandler) GetNote(c echo.Context) error {
	note, ok := h.sync.Current().ByID[c.Param("id")]
	if !ok {
		return domainerrors.ErrNoteNotFound
	}

	return response.Success(c, http.StatusOK, toNoteResponse(note), "Note retrieved successfully")
}

// CreateNote handles the note creation request.
func (h *NoteHandler) CreateNote(c echo.Context) error {
	var input noteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	id, err := h.mutation.Create(c.Request().Context(), usecase.NoteDraft{
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Note created successfully")
}

// UpdateNote handles the full-replace note update request.
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	var input noteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.mutation.Update(c.Request().Context(), c.Param("id"), usecase.NoteDraft{
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Note updated successfully")
}

// DeleteNote handles the note deletion request.
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	if err := h.mutation.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Note deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// LocationQR renders the note's coordinate as a QR-encoded geo URI.
func (h *NoteHandler) LocationQR(c echo.Context) error {
	note, ok := h.sync.Current().ByID[c.Param("id")]
	if !ok {
		return domainerrors.ErrNoteNotFound
	}

	png, err := h.qr.GenerateLocationQR(note)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
