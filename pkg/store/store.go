// Package store holds the client-side cache of the event list and mediates
// mutations against the remote repository. It is deliberately thin: no
// retries, no persistence, no derivation logic.
//
// The methods split into two groups. Fetch/Submit/SubmitUpdate/SubmitDelete
// perform remote I/O only and never touch the cache, so they are safe to run
// from a background goroutine. ApplyLoad/ApplyCreated install results into
// the cache and must run on the goroutine that owns the Store; in the TUI
// that is the Bubble Tea update loop.
package store

import (
	"context"

	"evento/pkg/event"
	"evento/pkg/utils"
)

// Repository is the remote source of truth for events
type Repository interface {
	List(ctx context.Context) ([]event.Event, error)
	Create(ctx context.Context, e event.Event) (event.Event, error)
	Update(ctx context.Context, e event.Event) (event.Event, error)
	Delete(ctx context.Context, id string) error
}

// ImageResolver turns a local image reference into a durable URL before an
// event is submitted. storage.Uploader implements it.
type ImageResolver interface {
	Resolve(ctx context.Context, imageRef, eventID string) (string, error)
}

// Store caches the last fetched event list along with the last load error.
// Events and Err must only be read and written from the owning goroutine.
type Store struct {
	repo   Repository
	images ImageResolver

	Events []event.Event
	Err    error
}

// New returns a Store backed by the given repository and image resolver
func New(repo Repository, images ImageResolver) *Store {
	return &Store{repo: repo, images: images}
}

// Fetch lists the events from the repository without touching the cache
func (s *Store) Fetch(ctx context.Context) ([]event.Event, error) {
	return s.repo.List(ctx)
}

// Submit resolves the event's image to a durable URL and creates the event
// remotely, returning the server's version. The cache is not touched; pass
// the result to ApplyCreated.
func (s *Store) Submit(ctx context.Context, e event.Event) (event.Event, error) {
	if e.ImageURL != "" && s.images != nil {
		url, err := s.images.Resolve(ctx, e.ImageURL, e.ID)
		if err != nil {
			return event.Event{}, err
		}
		e.ImageURL = url
	}
	return s.repo.Create(ctx, e)
}

// SubmitUpdate replaces the stored event remotely, then fetches the full
// list. Pass the result to ApplyLoad.
func (s *Store) SubmitUpdate(ctx context.Context, e event.Event) ([]event.Event, error) {
	if _, err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// SubmitDelete removes the event remotely, then fetches the full list. Pass
// the result to ApplyLoad.
func (s *Store) SubmitDelete(ctx context.Context, id string) ([]event.Event, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// ApplyLoad installs a fetch result. On failure the previous list is kept so
// the UI can keep rendering stale data alongside the error.
func (s *Store) ApplyLoad(events []event.Event, err error) {
	if err != nil {
		utils.Error("loading events", err)
		s.Err = err
		return
	}
	s.Events = events
	s.Err = nil
}

// ApplyCreated appends the server's version of a created event to the cached
// list without a full reload
func (s *Store) ApplyCreated(e event.Event) {
	s.Events = append(s.Events, e)
	s.Err = nil
}

// Load fetches and installs the event list in one step, for callers that own
// the Store and have no update loop to defer to
func (s *Store) Load(ctx context.Context) {
	s.ApplyLoad(s.Fetch(ctx))
}
