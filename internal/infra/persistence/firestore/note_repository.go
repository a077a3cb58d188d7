package firestore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"geonote/config"
	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/repository"
	"geonote/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// noteDocument is the Firestore wire shape of a note. Field names are part of
// the stored data contract and must not change.
type noteDocument struct {
	Title     string            `firestore:"title"`
	Body      string            `firestore:"body"`
	CreatedAt time.Time         `firestore:"date"`
	Location  *locationDocument `firestore:"location"`
	OwnerID   string            `firestore:"userId"`
}

type locationDocument struct {
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

type noteRepository struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewNoteRepository creates the Firestore-backed note repository.
func NewNoteRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.NoteRepository {
	return &noteRepository{
		client:     client,
		collection: cfg.Firebase.Collection,
		logger:     logger,
	}
}

func toDocument(note *entity.Note) *noteDocument {
	doc := &noteDocument{
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
		OwnerID:   note.OwnerID,
	}
	if note.Location != nil {
		doc.Location = &locationDocument{
			Latitude:  note.Location.Latitude,
			Longitude: note.Location.Longitude,
		}
	}

	return doc
}

func (d *noteDocument) toEntity(id string) *entity.Note {
	note := &entity.Note{
		ID:        id,
		Title:     d.Title,
		Body:      d.Body,
		OwnerID:   d.OwnerID,
		CreatedAt: d.CreatedAt,
	}
	if d.Location != nil {
		note.Location = entity.NewLocation(d.Location.Latitude, d.Location.Longitude)
	}

	return note
}

// CreateNote appends a new document; Firestore assigns the id.
func (r *noteRepository) CreateNote(ctx context.Context, note *entity.Note) (string, error) {
	ref, _, err := r.client.Collection(r.collection).Add(ctx, toDocument(note))
	if err != nil {
		return "", classifyError(err, "failed to create note document")
	}

	return ref.ID, nil
}

func (r *noteRepository) FindNoteByID(ctx context.Context, id string) (*entity.Note, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNoteNotFound
		}

		return nil, classifyError(err, "failed to get note document")
	}

	var doc noteDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode note document")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

// ReplaceNote overwrites the whole document. Set without merge options is a
// full replace, matching the edit semantics of the note editor.
func (r *noteRepository) ReplaceNote(ctx context.Context, id string, note *entity.Note) error {
	_, err := r.client.Collection(r.collection).Doc(id).Set(ctx, toDocument(note))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNoteNotFound
		}

		return classifyError(err, "failed to replace note document")
	}

	return nil
}

// DeleteNote removes the document. Deleting an absent id is not an error.
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	_, err := r.client.Collection(r.collection).Doc(id).Delete(ctx)
	if err != nil {
		return classifyError(err, "failed to delete note document")
	}

	return nil
}

// WatchNotesByOwner opens a live query on the owner's notes. Every store
// change delivers the full current set, not a diff.
func (r *noteRepository) WatchNotesByOwner(ctx context.Context, ownerID string) (repository.NoteWatcher, error) {
	query := r.client.Collection(r.collection).Where("userId", "==", ownerID)
	snapshots := query.Snapshots(ctx)

	watcher := &noteWatcher{
		deliveries: make(chan repository.NoteDelivery, 1),
		snapshots:  snapshots,
	}

	go watcher.run(r.logger)

	return watcher, nil
}

type noteWatcher struct {
	deliveries chan repository.NoteDelivery
	snapshots  *firestore.QuerySnapshotIterator
	closeOnce  sync.Once
}

func (w *noteWatcher) Deliveries() <-chan repository.NoteDelivery {
	return w.deliveries
}

func (w *noteWatcher) Close() {
	w.closeOnce.Do(func() {
		w.snapshots.Stop()
	})
}

// run pumps query snapshots into the delivery channel until the iterator
// terminates. The channel is closed exactly once, on exit.
func (w *noteWatcher) run(logger *slog.Logger) {
	defer close(w.deliveries)

	for {
		snap, err := w.snapshots.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return
			}

			logger.Warn("Note snapshot stream failed", slog.Any("error", err))
			w.deliveries <- repository.NoteDelivery{Err: classifyError(err, "note snapshot stream failed")}

			return
		}

		notes, err := collectNotes(snap)
		if err != nil {
			w.deliveries <- repository.NoteDelivery{Err: err}

			continue
		}

		w.deliveries <- repository.NoteDelivery{Notes: notes}
	}
}

func collectNotes(snap *firestore.QuerySnapshot) ([]*entity.Note, error) {
	var notes []*entity.Note

	for {
		docSnap, err := snap.Documents.Next()
		if errors.Is(err, iterator.Done) {
			return notes, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate note documents")
		}

		var doc noteDocument
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode note document")
		}

		notes = append(notes, doc.toEntity(docSnap.Ref.ID))
	}
}

// classifyError maps store failures onto the domain error taxonomy where the
// caller can act on them, wrapping everything else.
func classifyError(err error, msg string) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return domainerrors.ErrUnavailable
	case codes.PermissionDenied:
		return domainerrors.ErrPermissionDenied
	case codes.Unauthenticated:
		return domainerrors.ErrUnauthenticated
	default:
		return errors.Wrap(err, msg)
	}
}
