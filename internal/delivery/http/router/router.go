// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geonote/internal/delivery/http/middleware"
	"geonote/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NoteHandler    *handler.NoteHandler
	MapHandler     *handler.MapHandler
	SessionHandler *handler.SessionHandler
	StreamHandler  *handler.StreamHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	noteHandler    *handler.NoteHandler
	mapHandler     *handler.MapHandler
	sessionHandler *handler.SessionHandler
	streamHandler  *handler.StreamHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		noteHandler:    params.NoteHandler,
		mapHandler:     params.MapHandler,
		sessionHandler: params.SessionHandler,
		streamHandler:  params.StreamHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Establishing a session is the only unauthenticated operation
	e.POST("/session", r.sessionHandler.SignIn)

	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.DELETE("", r.sessionHandler.SignOut)
	}

	noteGroup := e.Group("/notes")
	noteGroup.Use(r.authMiddleware.Authenticate)
	{
		noteGroup.GET("", r.noteHandler.ListNotes)
		noteGroup.POST("", r.noteHandler.CreateNote)
		noteGroup.GET("/:id", r.noteHandler.GetNote)
		noteGroup.PUT("/:id", r.noteHandler.UpdateNote)
		noteGroup.DELETE("/:id", r.noteHandler.DeleteNote)
		noteGroup.GET("/:id/qr", r.noteHandler.LocationQR)
	}

	mapGroup := e.Group("/map")
	mapGroup.Use(r.authMiddleware.Authenticate)
	{
		mapGroup.GET("/markers", r.mapHandler.Markers)
		mapGroup.GET("/viewport", r.mapHandler.Viewport)
	}

	streamGroup := e.Group("/stream")
	streamGroup.Use(r.authMiddleware.Authenticate)
	{
		streamGroup.GET("", r.streamHandler.Stream)
	}
}
