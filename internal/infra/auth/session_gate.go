package auth

import (
	"context"
	"sync"

	"geonote/internal/domain/entity"
	"geonote/internal/domain/service"
)

// gateCore holds the single local session and fans state transitions out to
// subscribers. Concrete gates differ only in how SignIn establishes identity.
type gateCore struct {
	mu          sync.Mutex
	session     *entity.Session
	subscribers map[uint64]chan service.SessionState
	nextID      uint64
}

func newGateCore() *gateCore {
	return &gateCore{
		subscribers: make(map[uint64]chan service.SessionState),
	}
}

func (g *gateCore) Current() (*entity.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session == nil {
		return nil, service.ErrSignedOut
	}

	return g.session, nil
}

func (g *gateCore) SignOut() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session == nil {
		return
	}

	g.session = nil
	g.broadcastLocked()
}

// Subscribe registers a latest-only state watcher seeded with the current state.
func (g *gateCore) Subscribe() (<-chan service.SessionState, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch := make(chan service.SessionState, 1)
	ch <- g.stateLocked()

	id := g.nextID
	g.nextID++
	g.subscribers[id] = ch

	cancel := func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		if existing, ok := g.subscribers[id]; ok {
			delete(g.subscribers, id)
			close(existing)
		}
	}

	return ch, cancel
}

// install replaces the active session and notifies subscribers.
func (g *gateCore) install(sess *entity.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.session = sess
	g.broadcastLocked()
}

func (g *gateCore) stateLocked() service.SessionState {
	return service.SessionState{
		SignedIn: g.session != nil,
		Session:  g.session,
	}
}

func (g *gateCore) broadcastLocked() {
	state := g.stateLocked()
	for _, ch := range g.subscribers {
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- state
		}
	}
}

// staticGate is a development gate with a fixed identity. It starts signed in;
// SignIn reinstalls the configured session regardless of the token.
type staticGate struct {
	*gateCore
	fixed *entity.Session
}

// NewStaticGate creates a gate that is permanently bound to one identity.
func NewStaticGate(userID, displayName string) service.SessionGate {
	gate := &staticGate{
		gateCore: newGateCore(),
		fixed: &entity.Session{
			UserID:      userID,
			DisplayName: displayName,
		},
	}
	gate.install(gate.fixed)

	return gate
}

func (g *staticGate) SignIn(_ context.Context, _ string) (*entity.Session, error) {
	g.install(g.fixed)

	return g.fixed, nil
}
