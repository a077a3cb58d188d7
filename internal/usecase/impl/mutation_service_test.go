package impl

import (
	"context"
	"testing"
	"time"

	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/repository"
	"geonote/internal/domain/service"
	mockRepo "geonote/internal/mocks/repository"
	mockService "geonote/internal/mocks/service"
	"geonote/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mutationMocks struct {
	repo      *mockRepo.MockNoteRepository
	gate      *mockService.MockSessionGate
	location  *mockService.MockLocationProvider
	navigator *mockService.MockNavigator
	publisher *mockService.MockEventPublisher
}

func newMutationService(t *testing.T) (usecase.NoteMutationUsecase, *mutationMocks) {
	m := &mutationMocks{
		repo:      mockRepo.NewMockNoteRepository(t),
		gate:      mockService.NewMockSessionGate(t),
		location:  mockService.NewMockLocationProvider(t),
		navigator: mockService.NewMockNavigator(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	svc := NewMutationService(m.repo, m.gate, m.location, m.navigator, m.publisher, newDiscardLogger())

	return svc, m
}

func TestMutationService_Create_Success(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()
	fix := entity.NewLocation(25.03, 121.56)

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.location.EXPECT().RequestPermission(ctx).Return(true, nil)
	m.location.EXPECT().CurrentFix(ctx).Return(fix, nil)

	var saved *entity.Note
	m.repo.EXPECT().
		CreateNote(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, note *entity.Note) {
			saved = note
		}).
		Return("note-1", nil)

	m.publisher.EXPECT().
		PublishNoteEvent(ctx, mock.AnythingOfType("*service.NoteEvent")).
		Return(nil)
	m.navigator.EXPECT().ReturnToList().Return()

	id, err := svc.Create(ctx, usecase.NoteDraft{Title: "Lunch spot", Body: "Great noodles"})
	require.NoError(t, err)
	assert.Equal(t, "note-1", id)

	require.NotNil(t, saved)
	assert.Equal(t, "user-1", saved.OwnerID)
	assert.Equal(t, "Lunch spot", saved.Title)
	assert.Equal(t, fix, saved.Location)
	assert.WithinDuration(t, time.Now(), saved.CreatedAt, time.Minute)
}

func TestMutationService_Create_PermissionDenied_Unlocated(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.location.EXPECT().RequestPermission(ctx).Return(false, nil)

	var saved *entity.Note
	m.repo.EXPECT().
		CreateNote(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, note *entity.Note) {
			saved = note
		}).
		Return("note-1", nil)

	m.publisher.EXPECT().
		PublishNoteEvent(ctx, mock.AnythingOfType("*service.NoteEvent")).
		Return(nil)
	m.navigator.EXPECT().ReturnToList().Return()

	_, err := svc.Create(ctx, usecase.NoteDraft{Title: "No location"})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Nil(t, saved.Location)
	assert.False(t, saved.Located())
}

func TestMutationService_Create_FixUnavailable_Unlocated(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.location.EXPECT().RequestPermission(ctx).Return(true, nil)
	m.location.EXPECT().CurrentFix(ctx).Return(nil, service.ErrFixUnavailable)

	var saved *entity.Note
	m.repo.EXPECT().
		CreateNote(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, note *entity.Note) {
			saved = note
		}).
		Return("note-1", nil)

	m.publisher.EXPECT().
		PublishNoteEvent(ctx, mock.AnythingOfType("*service.NoteEvent")).
		Return(nil)
	m.navigator.EXPECT().ReturnToList().Return()

	_, err := svc.Create(ctx, usecase.NoteDraft{Title: "No fix"})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Nil(t, saved.Location)
}

func TestMutationService_Create_Unauthenticated(t *testing.T) {
	svc, m := newMutationService(t)

	m.gate.EXPECT().Current().Return(nil, service.ErrSignedOut)
	m.navigator.EXPECT().GoToSignIn().Return()

	id, err := svc.Create(context.Background(), usecase.NoteDraft{Title: "Nope"})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestMutationService_Create_PublishFailure_DoesNotFail(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.location.EXPECT().RequestPermission(ctx).Return(false, nil)
	m.repo.EXPECT().
		CreateNote(ctx, mock.AnythingOfType("*entity.Note")).
		Return("note-1", nil)
	m.publisher.EXPECT().
		PublishNoteEvent(ctx, mock.AnythingOfType("*service.NoteEvent")).
		Return(assert.AnError)
	m.navigator.EXPECT().ReturnToList().Return()

	id, err := svc.Create(ctx, usecase.NoteDraft{Title: "Still saved"})
	require.NoError(t, err)
	assert.Equal(t, "note-1", id)
}

func TestMutationService_Update_PreservesCreatedAt(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

	existing := &entity.Note{
		ID:        "note-1",
		Title:     "Old title",
		Body:      "Old body",
		OwnerID:   "user-1",
		CreatedAt: createdAt,
		Location:  entity.NewLocation(37.0, -122.0),
	}

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.repo.EXPECT().FindNoteByID(ctx, "note-1").Return(existing, nil)
	m.location.EXPECT().RequestPermission(ctx).Return(true, nil)
	m.location.EXPECT().CurrentFix(ctx).Return(entity.NewLocation(25.03, 121.56), nil)

	var replaced *entity.Note
	m.repo.EXPECT().
		ReplaceNote(ctx, "note-1", mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, _ string, note *entity.Note) {
			replaced = note
		}).
		Return(nil)

	m.publisher.EXPECT().
		PublishNoteEvent(ctx, mock.AnythingOfType("*service.NoteEvent")).
		Return(nil)
	m.navigator.EXPECT().ReturnToList().Return()

	err := svc.Update(ctx, "note-1", usecase.NoteDraft{Title: "New title", Body: "New body"})
	require.NoError(t, err)

	require.NotNil(t, replaced)
	assert.Equal(t, createdAt, replaced.CreatedAt)
	assert.Equal(t, "New title", replaced.Title)
	assert.Equal(t, "user-1", replaced.OwnerID)
	// The save-time coordinate is captured anew, not carried over.
	assert.Equal(t, entity.NewLocation(25.03, 121.56), replaced.Location)
}

func TestMutationService_Update_NotFound(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.repo.EXPECT().FindNoteByID(ctx, "missing").Return(nil, repository.ErrNoteNotFound)

	err := svc.Update(ctx, "missing", usecase.NoteDraft{Title: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrNoteNotFound)
}

func TestMutationService_Update_OwnershipViolation(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()

	existing := &entity.Note{
		ID:        "note-1",
		OwnerID:   "someone-else",
		CreatedAt: time.Now(),
	}

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.repo.EXPECT().FindNoteByID(ctx, "note-1").Return(existing, nil)

	err := svc.Update(ctx, "note-1", usecase.NoteDraft{Title: "hijack"})
	assert.ErrorIs(t, err, domainerrors.ErrNoteOwnershipViolation)
}

func TestMutationService_Delete_Success(t *testing.T) {
	svc, m := newMutationService(t)
	ctx := context.Background()

	m.gate.EXPECT().Current().Return(testSession("user-1"), nil)
	m.repo.EXPECT().DeleteNote(ctx, "note-1").Return(nil)
	m.publisher.EXPECT().
		PublishNoteEvent(ctx, mock.AnythingOfType("*service.NoteEvent")).
		Return(nil)

	require.NoError(t, svc.Delete(ctx, "note-1"))
}

func TestMutationService_Delete_Unauthenticated(t *testing.T) {
	svc, m := newMutationService(t)

	m.gate.EXPECT().Current().Return(nil, service.ErrSignedOut)
	m.navigator.EXPECT().GoToSignIn().Return()

	err := svc.Delete(context.Background(), "note-1")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
