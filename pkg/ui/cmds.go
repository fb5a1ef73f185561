package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"evento/pkg/event"
)

// Messages delivered back into the update loop when an async operation
// finishes. The goroutine behind a command only performs remote I/O and
// reports the result here; the cache is mutated exclusively inside Update,
// so the derivation always reads a stable snapshot.
type (
	eventsLoadedMsg struct {
		events []event.Event
		err    error
	}
	eventCreatedMsg struct {
		created event.Event
		err     error
	}
	reviewsLoadedMsg struct {
		reviews []event.Review
		err     error
	}
)

func (m *Model) loadEventsCmd() tea.Cmd {
	s := m.store
	m.busy = true
	return func() tea.Msg {
		events, err := s.Fetch(context.Background())
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m *Model) createEventCmd(e event.Event) tea.Cmd {
	s := m.store
	m.busy = true
	return func() tea.Msg {
		created, err := s.Submit(context.Background(), e)
		return eventCreatedMsg{created: created, err: err}
	}
}

func (m *Model) updateEventCmd(e event.Event) tea.Cmd {
	s := m.store
	m.busy = true
	return func() tea.Msg {
		events, err := s.SubmitUpdate(context.Background(), e)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m *Model) deleteEventCmd(id string) tea.Cmd {
	s := m.store
	m.busy = true
	return func() tea.Msg {
		events, err := s.SubmitDelete(context.Background(), id)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m *Model) fetchReviewsCmd(eventID string) tea.Cmd {
	src := m.reviewSource
	m.loadingReviews = true
	return func() tea.Msg {
		reviews, err := src.Reviews(context.Background(), eventID)
		return reviewsLoadedMsg{reviews: reviews, err: err}
	}
}
