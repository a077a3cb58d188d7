// Package navigation fans navigation signals out to subscribed shells.
package navigation

import (
	"log/slog"
	"sync"

	"geonote/internal/domain/service"

	"go.uber.org/fx"
)

const subscriberBuffer = 16

type hub struct {
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[uint64]chan service.NavigationSignal
	nextID      uint64
}

// NewHub creates the navigation signal hub.
func NewHub(logger *slog.Logger) service.Navigator {
	return &hub{
		logger:      logger,
		subscribers: make(map[uint64]chan service.NavigationSignal),
	}
}

func (h *hub) ReturnToList() {
	h.emit(service.NavigateReturnToList)
}

func (h *hub) GoToSignIn() {
	h.emit(service.NavigateGoToSignIn)
}

// Subscribe registers a signal consumer. Unlike projection updates, signals
// are discrete events, so each subscriber gets a buffered queue instead of a
// latest-only slot.
func (h *hub) Subscribe() (<-chan service.NavigationSignal, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan service.NavigationSignal, subscriberBuffer)

	id := h.nextID
	h.nextID++
	h.subscribers[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if existing, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(existing)
		}
	}

	return ch, cancel
}

// emit delivers the signal to every subscriber, dropping it for subscribers
// whose queue is full rather than blocking the emitting operation.
func (h *hub) emit(signal service.NavigationSignal) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- signal:
		default:
			h.logger.Warn("Navigation subscriber queue full, dropping signal",
				slog.String("signal", string(signal)),
			)
		}
	}
}

// Module provides the navigation FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHub),
)
