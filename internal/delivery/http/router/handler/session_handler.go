package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "geonote/internal/delivery/context"
	"geonote/internal/delivery/http/response"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exchanges an upstream identity token for the gateway's own
// token pair and exposes the signed-in/signed-out gate over HTTP.
type SessionHandler struct {
	gate   service.SessionGate
	tokens service.TokenService
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(gate service.SessionGate, tokens service.TokenService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{gate: gate, tokens: tokens, logger: logger}
}

type signInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type sessionResponse struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName,omitempty"`
}

type tokenResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         sessionResponse `json:"user"`
}

// SignIn verifies the submitted identity token, installs the session and
// mints an access/refresh token pair for subsequent requests.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var input signInRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.gate.SignIn(c.Request().Context(), input.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	accessToken, refreshToken, err := h.tokens.GenerateTokens(session)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Info("session established", slog.String("user_id", session.UserID))

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: sessionResponse{
			UserID:      session.UserID,
			DisplayName: session.DisplayName,
		},
	}, "Signed in successfully")
}

// Current reports the active session.
func (h *SessionHandler) Current(c echo.Context) error {
	session, err := h.gate.Current()
	if err != nil {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		UserID:      session.UserID,
		DisplayName: session.DisplayName,
	}, "Session retrieved successfully")
}

// SignOut clears the active session. Signing out twice is not an error.
func (h *SessionHandler) SignOut(c echo.Context) error {
	h.gate.SignOut()

	return response.Success(c, http.StatusOK, nil, "Signed out successfully")
}
