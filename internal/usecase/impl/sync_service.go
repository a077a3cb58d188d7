// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/repository"
	"geonote/internal/domain/service"
	"geonote/internal/errors"
	"geonote/internal/usecase"
)

type syncService struct {
	repo   repository.NoteRepository
	gate   service.SessionGate
	logger *slog.Logger

	mu         sync.Mutex
	watcher    repository.NoteWatcher
	cancel     context.CancelFunc
	generation uint64
	projection usecase.Projection
	consumers  map[uint64]chan usecase.Projection
	nextID     uint64
}

// NewSyncService creates the note synchronization channel. It owns at most
// one live subscription at a time for the signed-in user.
func NewSyncService(
	repo repository.NoteRepository,
	gate service.SessionGate,
	logger *slog.Logger,
) usecase.NoteSyncUsecase {
	return &syncService{
		repo:       repo,
		gate:       gate,
		logger:     logger,
		projection: emptyProjection(0),
		consumers:  make(map[uint64]chan usecase.Projection),
	}
}

func emptyProjection(revision uint64) usecase.Projection {
	return usecase.Projection{
		Notes:    nil,
		ByID:     map[string]*entity.Note{},
		Revision: revision,
	}
}

// Open starts the live subscription for the current session.
func (s *syncService) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		// Already live; a second open must not produce a second listener.
		return nil
	}

	sess, err := s.gate.Current()
	if err != nil {
		if errors.Is(err, service.ErrSignedOut) {
			return domainerrors.ErrUnauthenticated
		}

		return errors.Wrap(err, "failed to read session gate")
	}

	// The subscription outlives the opening request but keeps its values
	// (request-scoped logger, request id).
	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	watcher, err := s.repo.WatchNotesByOwner(watchCtx, sess.UserID)
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to open note watch")
	}

	s.watcher = watcher
	s.cancel = cancel
	s.generation++

	s.logger.Info("Note subscription opened", slog.String("owner_id", sess.UserID))

	go s.consume(s.generation, watcher)

	return nil
}

// Close stops the listener and releases the subscription handle. Calling
// Close twice, or without a successful Open, is a no-op.
func (s *syncService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return
	}

	s.watcher.Close()
	s.cancel()
	s.watcher = nil
	s.cancel = nil

	// Bump the generation so deliveries still in flight from the closed
	// watcher are dropped instead of resurrecting stale state.
	s.generation++

	// A closed channel means no authenticated owner; clear the projection
	// rather than keep another user's notes in memory.
	s.projection = emptyProjection(s.projection.Revision)
	s.fanOutLocked(s.projection)

	s.logger.Info("Note subscription closed")
}

// Current returns the latest projection.
func (s *syncService) Current() usecase.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.projection
}

// Updates registers a latest-only projection consumer.
func (s *syncService) Updates() (<-chan usecase.Projection, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan usecase.Projection, 1)
	ch <- s.projection

	id := s.nextID
	s.nextID++
	s.consumers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if existing, ok := s.consumers[id]; ok {
			delete(s.consumers, id)
			close(existing)
		}
	}

	return ch, cancel
}

// FollowGate consumes session gate transitions until ctx is done, opening
// the channel on sign-in and closing it on sign-out.
func (s *syncService) FollowGate(ctx context.Context) {
	states, cancel := s.gate.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			s.Close()

			return
		case state, ok := <-states:
			if !ok {
				return
			}
			if state.SignedIn {
				if err := s.Open(ctx); err != nil {
					s.logger.Error("Failed to open note subscription on sign-in",
						slog.Any("error", err),
					)
				}
			} else {
				s.Close()
			}
		}
	}
}

// consume drains one watcher's deliveries and applies them to the projection.
func (s *syncService) consume(generation uint64, watcher repository.NoteWatcher) {
	for delivery := range watcher.Deliveries() {
		s.apply(generation, delivery)
	}
}

// apply replaces the projection wholesale with one delivery's note set.
func (s *syncService) apply(generation uint64, delivery repository.NoteDelivery) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		// Delivery from a watcher that has since been closed.
		return
	}

	if delivery.Err != nil {
		// Advisory error state: keep the last-good set, surface the error.
		s.logger.Warn("Note delivery failed; keeping last-good projection",
			slog.Any("error", delivery.Err),
		)
		errored := s.projection
		errored.Err = delivery.Err
		s.projection = errored
		s.fanOutLocked(errored)

		return
	}

	byID := make(map[string]*entity.Note, len(delivery.Notes))
	for _, note := range delivery.Notes {
		byID[note.ID] = note
	}

	s.projection = usecase.Projection{
		Notes:    delivery.Notes,
		ByID:     byID,
		Revision: s.projection.Revision + 1,
	}

	s.logger.Debug("Projection replaced",
		slog.Uint64("revision", s.projection.Revision),
		slog.Int("notes", len(delivery.Notes)),
	)

	s.fanOutLocked(s.projection)
}

// fanOutLocked pushes the projection to every consumer, replacing any
// undelivered previous value so consumers only ever see the latest.
func (s *syncService) fanOutLocked(p usecase.Projection) {
	for _, ch := range s.consumers {
		select {
		case ch <- p:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- p
		}
	}
}
