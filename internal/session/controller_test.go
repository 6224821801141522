package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLoader struct {
	mu    sync.Mutex
	notes []*domain.Note
	calls int
	// gate, when set, blocks List until released.
	gate    chan struct{}
	entered chan struct{}
}

func (l *fakeLoader) List(ctx context.Context, uid int64) ([]*domain.Note, error) {
	l.mu.Lock()
	l.calls++
	gate := l.gate
	entered := l.entered
	notes := l.notes
	l.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return notes, nil
}

func (l *fakeLoader) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func testUser() *domain.SessionUser {
	return &domain.SessionUser{UID: 1, Email: "mario@example.com"}
}

func newTestController(loader *fakeLoader, ttl time.Duration) *Controller {
	hub := NewHub(8, zap.NewNop())
	return NewController(loader, hub, &Config{BannerTTL: ttl}, zap.NewNop())
}

func TestEnsureLoadsSnapshot(t *testing.T) {
	loader := &fakeLoader{notes: []*domain.Note{
		{ID: 2, UID: 1, Title: "b", Text: "y"},
		{ID: 1, UID: 1, Title: "a", Text: "x"},
	}}
	c := newTestController(loader, time.Second)

	require.NoError(t, c.Ensure(context.Background(), testUser()))

	snapshot, ok := c.Snapshot(1)
	require.True(t, ok)
	assert.Len(t, snapshot, 2)
	assert.Equal(t, 1, loader.callCount())

	// A second Ensure for a live session does not hit the loader again.
	require.NoError(t, c.Ensure(context.Background(), testUser()))
	assert.Equal(t, 1, loader.callCount())
}

func TestLogoutClearsSession(t *testing.T) {
	loader := &fakeLoader{notes: []*domain.Note{{ID: 1, UID: 1, Title: "a", Text: "x"}}}
	c := newTestController(loader, time.Second)

	require.NoError(t, c.Ensure(context.Background(), testUser()))
	require.True(t, c.Has(1))

	c.Logout(1)

	assert.False(t, c.Has(1))
	_, ok := c.Snapshot(1)
	assert.False(t, ok)
}

// A logout that races an in-flight reload must win: the stale result
// is discarded instead of resurrecting the snapshot.
func TestLogoutDuringInflightReload(t *testing.T) {
	loader := &fakeLoader{notes: []*domain.Note{{ID: 1, UID: 1, Title: "a", Text: "x"}}}
	c := newTestController(loader, time.Second)
	require.NoError(t, c.Ensure(context.Background(), testUser()))

	gate := make(chan struct{})
	entered := make(chan struct{}, 1)
	loader.mu.Lock()
	loader.gate = gate
	loader.entered = entered
	loader.mu.Unlock()

	reloadDone := make(chan struct{})
	go func() {
		defer close(reloadDone)
		_, _ = c.Reload(context.Background(), 1)
	}()

	<-entered
	c.Logout(1)
	close(gate)
	<-reloadDone

	assert.False(t, c.Has(1))
	_, ok := c.Snapshot(1)
	assert.False(t, ok)

	// Once the stale reload has landed nothing tracks the uid anymore.
	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Empty(t, c.gens)
	assert.Empty(t, c.inflight)
}

func TestLogoutPrunesGenerationState(t *testing.T) {
	loader := &fakeLoader{notes: []*domain.Note{{ID: 1, UID: 1, Title: "a", Text: "x"}}}
	c := newTestController(loader, time.Second)

	require.NoError(t, c.Ensure(context.Background(), testUser()))
	c.Logout(1)
	require.NoError(t, c.Ensure(context.Background(), testUser()))
	c.Logout(1)

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Empty(t, c.gens)
	assert.Empty(t, c.inflight)
}

func TestReloadReplacesSnapshot(t *testing.T) {
	loader := &fakeLoader{notes: []*domain.Note{{ID: 1, UID: 1, Title: "a", Text: "x"}}}
	c := newTestController(loader, time.Second)
	require.NoError(t, c.Ensure(context.Background(), testUser()))

	loader.mu.Lock()
	loader.notes = []*domain.Note{
		{ID: 3, UID: 1, Title: "c", Text: "z"},
		{ID: 1, UID: 1, Title: "a", Text: "x"},
	}
	loader.mu.Unlock()

	n, err := c.Reload(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	snapshot, ok := c.Snapshot(1)
	require.True(t, ok)
	require.Len(t, snapshot, 2)
	assert.Equal(t, int64(3), snapshot[0].ID)
}

func TestSnapshotNote(t *testing.T) {
	loader := &fakeLoader{notes: []*domain.Note{
		{ID: 5, UID: 1, Title: "a", Text: "x"},
	}}
	c := newTestController(loader, time.Second)
	require.NoError(t, c.Ensure(context.Background(), testUser()))

	note, ok := c.SnapshotNote(1, 5)
	require.True(t, ok)
	assert.Equal(t, "a", note.Title)

	_, ok = c.SnapshotNote(1, 99)
	assert.False(t, ok)
}

func TestBannerExpires(t *testing.T) {
	loader := &fakeLoader{}
	c := newTestController(loader, 50*time.Millisecond)
	require.NoError(t, c.Ensure(context.Background(), testUser()))

	c.SetBanner(1, "Errore salvataggio: boom")
	assert.Equal(t, "Errore salvataggio: boom", c.Banner(1))

	time.Sleep(120 * time.Millisecond)
	assert.Empty(t, c.Banner(1))
}

func TestBannerIgnoredWithoutSession(t *testing.T) {
	loader := &fakeLoader{}
	c := newTestController(loader, time.Second)

	c.SetBanner(7, "msg")
	assert.Empty(t, c.Banner(7))
}

func TestRunHandlesHubEvents(t *testing.T) {
	loader := &fakeLoader{notes: []*domain.Note{{ID: 1, UID: 1, Title: "a", Text: "x"}}}
	hub := NewHub(8, zap.NewNop())
	c := NewController(loader, hub, &Config{BannerTTL: time.Second}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	hub.Publish(StateEvent{UID: 1, User: testUser()})

	assert.Eventually(t, func() bool {
		return c.Has(1)
	}, time.Second, 10*time.Millisecond)

	snapshot, ok := c.Snapshot(1)
	require.True(t, ok)
	assert.Len(t, snapshot, 1)

	hub.Publish(StateEvent{UID: 1, User: nil})

	assert.Eventually(t, func() bool {
		return !c.Has(1)
	}, time.Second, 10*time.Millisecond)
}

func TestCleanIdle(t *testing.T) {
	loader := &fakeLoader{}
	c := newTestController(loader, time.Second)
	require.NoError(t, c.Ensure(context.Background(), testUser()))
	require.NoError(t, c.Ensure(context.Background(), &domain.SessionUser{UID: 2, Email: "luigi@example.com"}))

	assert.Equal(t, 2, c.Count())

	// Nothing is older than an hour yet.
	assert.Equal(t, 0, c.CleanIdle(time.Hour))
	assert.Equal(t, 2, c.Count())

	// With a zero cutoff everything is idle.
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, c.CleanIdle(time.Nanosecond))
	assert.Equal(t, 0, c.Count())

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Empty(t, c.gens)
	assert.Empty(t, c.inflight)
}
