// Package location provides one-shot location fix providers.
package location

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"geonote/config"
	"geonote/internal/domain/constants"
	"geonote/internal/domain/entity"
	"geonote/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHTTPTimeout = 5 * time.Second

// staticProvider returns a fixed coordinate, standing in for a device GPS
// during development and tests.
type staticProvider struct {
	granted bool
	fix     *entity.Location
}

// NewStaticProvider creates a provider pinned to one coordinate.
func NewStaticProvider(granted bool, latitude, longitude float64) service.LocationProvider {
	return &staticProvider{
		granted: granted,
		fix:     entity.NewLocation(latitude, longitude),
	}
}

func (p *staticProvider) RequestPermission(_ context.Context) (bool, error) {
	return p.granted, nil
}

func (p *staticProvider) CurrentFix(_ context.Context) (*entity.Location, error) {
	if !p.granted {
		return nil, service.ErrFixUnavailable
	}

	return p.fix, nil
}

// httpProvider asks a geolocation endpoint for a one-shot fix.
type httpProvider struct {
	endpoint   string
	granted    bool
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPProvider creates a provider that fetches the current coordinate from
// an HTTP endpoint returning {"latitude": ..., "longitude": ...}.
func NewHTTPProvider(endpoint string, granted bool, timeout time.Duration, logger *slog.Logger) service.LocationProvider {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &httpProvider{
		endpoint: endpoint,
		granted:  granted,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (p *httpProvider) RequestPermission(_ context.Context) (bool, error) {
	return p.granted, nil
}

func (p *httpProvider) CurrentFix(ctx context.Context) (*entity.Location, error) {
	if !p.granted {
		return nil, service.ErrFixUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Debug("Location endpoint unreachable", slog.Any("error", err))

		return nil, service.ErrFixUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Debug("Location endpoint returned non-success status",
			slog.Int("status", resp.StatusCode),
		)

		return nil, service.ErrFixUnavailable
	}

	var payload struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode location payload")
	}

	return entity.NewLocation(payload.Latitude, payload.Longitude), nil
}

// ProviderParams holds dependencies for the LocationProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewLocationProvider creates a LocationProvider based on configuration
func NewLocationProvider(params ProviderParams) (service.LocationProvider, error) {
	cfg := params.Config.Location
	logger := params.Logger

	// An unconfigured provider behaves like a denied permission prompt:
	// notes save unlocated rather than failing.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Location not configured, notes will save unlocated")

		return NewStaticProvider(false, 0, 0), nil
	}

	switch cfg.Provider {
	case constants.LocationProviderStatic:
		logger.Info("Using static location provider",
			slog.Float64("latitude", cfg.Latitude),
			slog.Float64("longitude", cfg.Longitude),
		)

		return NewStaticProvider(cfg.PermissionGranted, cfg.Latitude, cfg.Longitude), nil

	case constants.LocationProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http provider")
		}
		logger.Info("Using HTTP location provider",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewHTTPProvider(cfg.Endpoint, cfg.PermissionGranted, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown location provider: %s", cfg.Provider)
	}
}

// Module provides the location FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocationProvider),
)
