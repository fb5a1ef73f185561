package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evento/pkg/event"
)

// fakeRepo is an in-memory Repository for tests
type fakeRepo struct {
	mu      sync.Mutex
	events  []event.Event
	nextID  int
	listErr error
	opErr   error
	calls   []string
	listing chan struct{} // when set, List blocks until it is closed
}

func newFakeRepo(events ...event.Event) *fakeRepo {
	return &fakeRepo{events: events, nextID: 1}
}

func (f *fakeRepo) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeRepo) List(ctx context.Context) ([]event.Event, error) {
	f.record("list")
	if f.listing != nil {
		<-f.listing
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]event.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, e event.Event) (event.Event, error) {
	f.record("create")
	if f.opErr != nil {
		return event.Event{}, f.opErr
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeRepo) Update(ctx context.Context, e event.Event) (event.Event, error) {
	f.record("update")
	if f.opErr != nil {
		return event.Event{}, f.opErr
	}
	for i := range f.events {
		if f.events[i].ID == e.ID {
			f.events[i] = e
			return e, nil
		}
	}
	return event.Event{}, errors.New("not found")
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.record("delete")
	if f.opErr != nil {
		return f.opErr
	}
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

// fakeResolver records resolutions and rewrites local paths
type fakeResolver struct {
	resolved []string
	err      error
}

func (f *fakeResolver) Resolve(ctx context.Context, imageRef, eventID string) (string, error) {
	f.resolved = append(f.resolved, imageRef)
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/" + imageRef, nil
}

func TestLoadReplacesEvents(t *testing.T) {
	repo := newFakeRepo(
		event.Event{ID: "1", Title: "One"},
		event.Event{ID: "2", Title: "Two"},
	)
	s := New(repo, nil)

	s.Load(context.Background())
	require.NoError(t, s.Err)
	assert.Len(t, s.Events, 2)
}

func TestApplyLoadFailureKeepsStaleEvents(t *testing.T) {
	repo := newFakeRepo(event.Event{ID: "1", Title: "One"})
	s := New(repo, nil)
	s.Load(context.Background())
	require.Len(t, s.Events, 1)

	s.ApplyLoad(nil, errors.New("network down"))

	assert.Error(t, s.Err)
	assert.Len(t, s.Events, 1, "stale list must survive a failed refresh")

	// A later successful load clears the error
	s.Load(context.Background())
	assert.NoError(t, s.Err)
}

func TestFetchDoesNotTouchCache(t *testing.T) {
	repo := newFakeRepo(event.Event{ID: "1"}, event.Event{ID: "2"})
	s := New(repo, nil)
	s.Events = []event.Event{{ID: "stale"}}

	events, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Only ApplyLoad installs results; Fetch leaves the cache alone
	require.Len(t, s.Events, 1)
	assert.Equal(t, "stale", s.Events[0].ID)
}

func TestCacheStableWhileFetchRunsInBackground(t *testing.T) {
	repo := newFakeRepo(event.Event{ID: "1"}, event.Event{ID: "2"})
	repo.listing = make(chan struct{})
	s := New(repo, nil)
	s.Events = []event.Event{{ID: "stale"}}

	done := make(chan []event.Event)
	go func() {
		events, err := s.Fetch(context.Background())
		assert.NoError(t, err)
		done <- events
	}()

	// The cache stays readable and untouched while the fetch is in flight;
	// this is what lets the update loop keep deriving from it
	for i := 0; i < 100; i++ {
		require.Len(t, s.Events, 1)
		assert.Equal(t, "stale", s.Events[0].ID)
	}

	close(repo.listing)
	s.ApplyLoad(<-done, nil)
	assert.Len(t, s.Events, 2)
	assert.NoError(t, s.Err)
}

func TestSubmitReturnsServerVersion(t *testing.T) {
	repo := newFakeRepo()
	s := New(repo, nil)

	created, err := s.Submit(context.Background(), event.Event{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", created.ID, "caller must get the server-assigned id")

	// Submit neither reloads nor touches the cache
	assert.Equal(t, []string{"create"}, repo.calls)
	assert.Empty(t, s.Events)

	s.ApplyCreated(created)
	require.Len(t, s.Events, 1)
	assert.Equal(t, "ev-1", s.Events[0].ID)
}

func TestSubmitResolvesImageFirst(t *testing.T) {
	repo := newFakeRepo()
	resolver := &fakeResolver{}
	s := New(repo, resolver)

	created, err := s.Submit(context.Background(), event.Event{Title: "New", ImageURL: "poster.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"poster.jpg"}, resolver.resolved)
	assert.Equal(t, "https://cdn.example.com/poster.jpg", created.ImageURL)
}

func TestSubmitImageFailureAbortsSubmit(t *testing.T) {
	repo := newFakeRepo()
	resolver := &fakeResolver{err: errors.New("upload failed")}
	s := New(repo, resolver)

	_, err := s.Submit(context.Background(), event.Event{Title: "New", ImageURL: "poster.jpg"})
	assert.Error(t, err)
	assert.Empty(t, repo.calls, "event must not be submitted when the upload fails")
}

func TestSubmitUpdateRefetches(t *testing.T) {
	repo := newFakeRepo(event.Event{ID: "1", Title: "Old"})
	s := New(repo, nil)
	s.Load(context.Background())

	events, err := s.SubmitUpdate(context.Background(), event.Event{ID: "1", Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, []string{"list", "update", "list"}, repo.calls)

	s.ApplyLoad(events, nil)
	assert.Equal(t, "Renamed", s.Events[0].Title)
}

func TestSubmitDeleteRefetches(t *testing.T) {
	repo := newFakeRepo(event.Event{ID: "1"}, event.Event{ID: "2"})
	s := New(repo, nil)
	s.Load(context.Background())

	events, err := s.SubmitDelete(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"list", "delete", "list"}, repo.calls)

	s.ApplyLoad(events, nil)
	require.Len(t, s.Events, 1)
	assert.Equal(t, "2", s.Events[0].ID)
}

func TestSubmitDeleteFailureDoesNotRefetch(t *testing.T) {
	repo := newFakeRepo(event.Event{ID: "1"})
	s := New(repo, nil)
	s.Load(context.Background())

	repo.opErr = errors.New("server error")
	_, err := s.SubmitDelete(context.Background(), "1")
	assert.Error(t, err)
	assert.Equal(t, []string{"list", "delete"}, repo.calls)

	// The failed operation leaves the stale list and records the error
	s.ApplyLoad(nil, err)
	assert.Error(t, s.Err)
	assert.Len(t, s.Events, 1)
}
