package auth

import (
	"context"
	"log/slog"

	"geonote/config"
	"geonote/internal/domain/constants"
	"geonote/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// GateParams holds dependencies for the SessionGate, injected by Fx
type GateParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionGate creates a SessionGate based on configuration
func NewSessionGate(params GateParams) (service.SessionGate, error) {
	cfg := params.Config.Session
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("session provider is required")
	}

	switch cfg.Provider {
	case constants.SessionProviderStatic:
		if cfg.UserID == "" {
			return nil, errors.New("user ID is required for static provider")
		}
		logger.Info("Using static session gate",
			slog.String("user_id", cfg.UserID),
		)

		return NewStaticGate(cfg.UserID, cfg.DisplayName), nil

	case constants.SessionProviderFirebase:
		firebaseCfg := params.Config.Firebase
		if firebaseCfg == nil || firebaseCfg.ProjectID == "" {
			return nil, errors.New("firebase configuration is required for firebase provider")
		}

		var opts []option.ClientOption
		if firebaseCfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(firebaseCfg.CredentialsPath))
		}

		app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: firebaseCfg.ProjectID}, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize Firebase app")
		}

		client, err := app.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firebase Auth client")
		}

		logger.Info("Using Firebase session gate",
			slog.String("project_id", firebaseCfg.ProjectID),
		)

		return NewFirebaseGate(client), nil

	default:
		return nil, errors.Errorf("unknown session provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionGate),
	fx.Provide(NewJWTService),
)
