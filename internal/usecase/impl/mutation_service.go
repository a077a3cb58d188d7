package impl

import (
	"context"
	"log/slog"
	"time"

	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/repository"
	"geonote/internal/domain/service"
	deliverycontext "geonote/internal/delivery/context"
	"geonote/internal/errors"
	"geonote/internal/usecase"

	"github.com/google/uuid"
)

type mutationService struct {
	repo      repository.NoteRepository
	gate      service.SessionGate
	location  service.LocationProvider
	navigator service.Navigator
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewMutationService creates the note mutation service. Mutations go straight
// to the store; their visibility arrives through the synchronization channel.
func NewMutationService(
	repo repository.NoteRepository,
	gate service.SessionGate,
	location service.LocationProvider,
	navigator service.Navigator,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.NoteMutationUsecase {
	return &mutationService{
		repo:      repo,
		gate:      gate,
		location:  location,
		navigator: navigator,
		publisher: publisher,
		logger:    logger,
	}
}

// Create persists a new note stamped with the session owner and wall-clock
// creation time. The store assigns the id.
func (s *mutationService) Create(ctx context.Context, draft usecase.NoteDraft) (string, error) {
	sess, err := s.currentSession()
	if err != nil {
		return "", err
	}

	note := &entity.Note{
		Title:     draft.Title,
		Body:      draft.Body,
		OwnerID:   sess.UserID,
		CreatedAt: time.Now(),
		Location:  s.captureLocation(ctx),
	}

	id, err := s.repo.CreateNote(ctx, note)
	if err != nil {
		return "", errors.Wrap(err, "failed to create note")
	}

	s.logger.Info("Note created", slog.String("note_id", id))

	s.publishEvent(ctx, service.NoteEventCreated, id, sess.UserID)
	s.navigator.ReturnToList()

	return id, nil
}

// Update overwrites the whole document at id with the draft's fields. The
// original creation time is preserved; everything else is replaced.
func (s *mutationService) Update(ctx context.Context, id string, draft usecase.NoteDraft) error {
	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	existing, err := s.repo.FindNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrNoteNotFound
		}

		return errors.Wrap(err, "failed to find note")
	}

	if existing.OwnerID != sess.UserID {
		return domainerrors.ErrNoteOwnershipViolation
	}

	note := &entity.Note{
		ID:        id,
		Title:     draft.Title,
		Body:      draft.Body,
		OwnerID:   sess.UserID,
		CreatedAt: existing.CreatedAt,
		Location:  s.captureLocation(ctx),
	}

	if err := s.repo.ReplaceNote(ctx, id, note); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrNoteNotFound
		}

		return errors.Wrap(err, "failed to replace note")
	}

	s.logger.Info("Note updated", slog.String("note_id", id))

	s.publishEvent(ctx, service.NoteEventUpdated, id, sess.UserID)
	s.navigator.ReturnToList()

	return nil
}

// Delete removes the note permanently. Confirmation is the caller's concern;
// deleting an already-absent id succeeds.
func (s *mutationService) Delete(ctx context.Context, id string) error {
	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete note")
	}

	s.logger.Info("Note deleted", slog.String("note_id", id))

	s.publishEvent(ctx, service.NoteEventDeleted, id, sess.UserID)

	return nil
}

// currentSession resolves the active session, signaling the sign-in flow on
// unauthenticated access.
func (s *mutationService) currentSession() (*entity.Session, error) {
	sess, err := s.gate.Current()
	if err != nil {
		if errors.Is(err, service.ErrSignedOut) {
			s.navigator.GoToSignIn()

			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to read session gate")
	}

	return sess, nil
}

// captureLocation obtains the save-time coordinate. Permission denial and an
// unavailable fix both degrade to an unlocated note, never a failed save.
func (s *mutationService) captureLocation(ctx context.Context) *entity.Location {
	granted, err := s.location.RequestPermission(ctx)
	if err != nil {
		s.logger.Debug("Location permission request failed", slog.Any("error", err))

		return nil
	}
	if !granted {
		s.logger.Debug("Location permission denied; saving unlocated note")

		return nil
	}

	fix, err := s.location.CurrentFix(ctx)
	if err != nil {
		s.logger.Debug("Location fix unavailable; saving unlocated note", slog.Any("error", err))

		return nil
	}

	return fix
}

// publishEvent emits a note change event. Publishing failures are logged and
// never fail the mutation: the store's change stream is the source of truth.
func (s *mutationService) publishEvent(ctx context.Context, eventType service.NoteEventType, noteID, ownerID string) {
	event := &service.NoteEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		NoteID:     noteID,
		OwnerID:    ownerID,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishNoteEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish note event",
			slog.String("note_id", noteID),
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
