package navigation

import (
	"io"
	"log/slog"
	"testing"

	"geonote/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHub_SignalsReachSubscriber(t *testing.T) {
	hub := NewHub(newDiscardLogger())

	signals, cancel := hub.Subscribe()
	defer cancel()

	hub.ReturnToList()
	hub.GoToSignIn()

	assert.Equal(t, service.NavigateReturnToList, <-signals)
	assert.Equal(t, service.NavigateGoToSignIn, <-signals)
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub(newDiscardLogger())

	first, cancelFirst := hub.Subscribe()
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe()
	defer cancelSecond()

	hub.ReturnToList()

	assert.Equal(t, service.NavigateReturnToList, <-first)
	assert.Equal(t, service.NavigateReturnToList, <-second)
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := NewHub(newDiscardLogger())

	signals, cancel := hub.Subscribe()
	cancel()

	// Emitting after cancel must not panic or deliver.
	hub.GoToSignIn()

	_, open := <-signals
	assert.False(t, open)
}

func TestHub_EmitWithoutSubscribers(t *testing.T) {
	hub := NewHub(newDiscardLogger())

	// No subscribers registered; signals are dropped silently.
	hub.ReturnToList()
	hub.GoToSignIn()
}
