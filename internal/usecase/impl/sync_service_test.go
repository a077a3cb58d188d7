package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/service"
	mockRepo "geonote/internal/mocks/repository"
	mockService "geonote/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncService_Open_Unauthenticated(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	mockGate.EXPECT().Current().Return(nil, service.ErrSignedOut)

	err := svc.Open(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	// No watch must have been opened; the repository mock would flag any
	// unexpected WatchNotesByOwner call on cleanup.
	assert.Empty(t, svc.Current().Notes)
}

func TestSyncService_Open_Twice_SingleListener(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	watcher := newFakeNoteWatcher()
	sess := testSession("user-1")

	mockGate.EXPECT().Current().Return(sess, nil).Once()
	mockNoteRepo.EXPECT().WatchNotesByOwner(mock.Anything, "user-1").Return(watcher, nil).Once()

	ctx := context.Background()
	require.NoError(t, svc.Open(ctx))
	require.NoError(t, svc.Open(ctx))

	svc.Close()
	assert.True(t, watcher.closed.Load())
}

func TestSyncService_DeliveryReplacesProjection(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	watcher := newFakeNoteWatcher()
	mockGate.EXPECT().Current().Return(testSession("user-1"), nil)
	mockNoteRepo.EXPECT().WatchNotesByOwner(mock.Anything, "user-1").Return(watcher, nil)

	require.NoError(t, svc.Open(context.Background()))

	first := locatedNote("a", 37.0, -122.0)
	watcher.push(first)

	require.Eventually(t, func() bool {
		return svc.Current().Revision == 1
	}, time.Second, 5*time.Millisecond)

	current := svc.Current()
	require.Len(t, current.Notes, 1)
	assert.Equal(t, first, current.ByID["a"])

	// A shrunk delivery replaces the set wholesale; nothing lingers.
	watcher.push()

	require.Eventually(t, func() bool {
		return svc.Current().Revision == 2
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, svc.Current().Notes)

	svc.Close()
}

func TestSyncService_Updates_LatestOnly(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	watcher := newFakeNoteWatcher()
	mockGate.EXPECT().Current().Return(testSession("user-1"), nil)
	mockNoteRepo.EXPECT().WatchNotesByOwner(mock.Anything, "user-1").Return(watcher, nil)

	require.NoError(t, svc.Open(context.Background()))

	updates, cancel := svc.Updates()
	defer cancel()

	// The subscription is seeded with the current projection.
	seed := <-updates
	assert.Equal(t, uint64(0), seed.Revision)

	// Two deliveries land while the consumer is not reading. Only the
	// second must be observable.
	watcher.push(locatedNote("a", 37.0, -122.0))
	require.Eventually(t, func() bool {
		return svc.Current().Revision == 1
	}, time.Second, 5*time.Millisecond)

	watcher.push(locatedNote("a", 37.0, -122.0), locatedNote("b", 38.0, -121.0))
	require.Eventually(t, func() bool {
		return svc.Current().Revision == 2
	}, time.Second, 5*time.Millisecond)

	latest := <-updates
	assert.Equal(t, uint64(2), latest.Revision)
	assert.Len(t, latest.Notes, 2)

	svc.Close()
}

func TestSyncService_ErrorDelivery_KeepsLastGood(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	watcher := newFakeNoteWatcher()
	mockGate.EXPECT().Current().Return(testSession("user-1"), nil)
	mockNoteRepo.EXPECT().WatchNotesByOwner(mock.Anything, "user-1").Return(watcher, nil)

	require.NoError(t, svc.Open(context.Background()))

	watcher.push(locatedNote("a", 37.0, -122.0))
	require.Eventually(t, func() bool {
		return svc.Current().Revision == 1
	}, time.Second, 5*time.Millisecond)

	watcher.pushErr(assert.AnError)

	require.Eventually(t, func() bool {
		return svc.Current().Err != nil
	}, time.Second, 5*time.Millisecond)

	current := svc.Current()
	assert.Len(t, current.Notes, 1)
	assert.Equal(t, uint64(1), current.Revision)

	svc.Close()
}

func TestSyncService_Close_DropsStaleDeliveries(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	watcher := newFakeNoteWatcher()
	mockGate.EXPECT().Current().Return(testSession("user-1"), nil)
	mockNoteRepo.EXPECT().WatchNotesByOwner(mock.Anything, "user-1").Return(watcher, nil)

	require.NoError(t, svc.Open(context.Background()))

	watcher.push(locatedNote("a", 37.0, -122.0))
	require.Eventually(t, func() bool {
		return svc.Current().Revision == 1
	}, time.Second, 5*time.Millisecond)

	svc.Close()
	assert.Empty(t, svc.Current().Notes)

	// A delivery still in flight from the closed watcher must not
	// resurrect the projection.
	watcher.push(locatedNote("b", 38.0, -121.0))
	assert.Never(t, func() bool {
		return len(svc.Current().Notes) > 0
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestSyncService_Close_WithoutOpen_NoOp(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	svc.Close()
	svc.Close()

	assert.Empty(t, svc.Current().Notes)
}

func TestSyncService_FollowGate(t *testing.T) {
	mockNoteRepo := mockRepo.NewMockNoteRepository(t)
	mockGate := mockService.NewMockSessionGate(t)
	svc := NewSyncService(mockNoteRepo, mockGate, newDiscardLogger())

	states := make(chan service.SessionState, 4)
	mockGate.EXPECT().Subscribe().Return(states, func() {})

	watcher := newFakeNoteWatcher()
	mockGate.EXPECT().Current().Return(testSession("user-1"), nil)
	mockNoteRepo.EXPECT().WatchNotesByOwner(mock.Anything, "user-1").Return(watcher, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.FollowGate(ctx)
	}()

	states <- service.SessionState{SignedIn: true, Session: testSession("user-1")}

	watcher.push(locatedNote("a", 37.0, -122.0))
	require.Eventually(t, func() bool {
		return svc.Current().Revision == 1
	}, time.Second, 5*time.Millisecond)

	states <- service.SessionState{SignedIn: false}
	require.Eventually(t, func() bool {
		return len(svc.Current().Notes) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
