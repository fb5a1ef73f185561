package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evento/pkg/event"
)

func TestEventsLoadedMessageInstallsList(t *testing.T) {
	m := newTestModel(t, nil)
	m.busy = true

	updated, _ := m.Update(eventsLoadedMsg{events: []event.Event{
		{ID: "a", Title: "Launch", Date: "2025-01-10", EndTime: "18:00"},
	}})
	got := updated.(Model)

	assert.False(t, got.busy)
	assert.NoError(t, got.err)
	require.Len(t, got.store.Events, 1)
	assert.Equal(t, "a", got.store.Events[0].ID)
	assert.NotEmpty(t, got.rows, "rows must be rebuilt from the installed list")
}

func TestEventsLoadedFailureKeepsStaleList(t *testing.T) {
	m := newTestModel(t, []event.Event{
		{ID: "a", Title: "Launch", Date: "2025-01-10", EndTime: "18:00"},
	})
	m.refreshRows()
	m.busy = true

	updated, _ := m.Update(eventsLoadedMsg{err: errors.New("network down")})
	got := updated.(Model)

	assert.Error(t, got.err)
	require.Len(t, got.store.Events, 1, "stale list must survive a failed refresh")
	assert.NotEmpty(t, got.rows)
}

func TestEventCreatedMessageAppends(t *testing.T) {
	m := newTestModel(t, []event.Event{
		{ID: "a", Title: "Launch", Date: "2025-01-10", EndTime: "18:00"},
	})
	m.busy = true

	updated, _ := m.Update(eventCreatedMsg{created: event.Event{
		ID: "b", Title: "Party", Date: "2025-01-10", EndTime: "20:00",
	}})
	got := updated.(Model)

	assert.False(t, got.busy)
	require.Len(t, got.store.Events, 2)
	assert.Equal(t, "b", got.store.Events[1].ID)
}

func TestEventCreatedFailureLeavesListUntouched(t *testing.T) {
	m := newTestModel(t, nil)
	m.busy = true

	updated, _ := m.Update(eventCreatedMsg{err: errors.New("server error")})
	got := updated.(Model)

	assert.Error(t, got.err)
	assert.Empty(t, got.store.Events)
}
