// Package view derives what the event list screen shows from the raw event
// collection and transient UI inputs. Everything here is a pure function over
// values passed in; the only state that survives between derivations is the
// per-date open/closed mapping owned by ViewState.
package view

import (
	"strings"
	"time"

	"evento/pkg/event"
)

// StatusFilter selects which activity statuses the list shows
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterActive
	FilterEnded
)

// String returns a short label used in the status line
func (f StatusFilter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterEnded:
		return "ended"
	}
	return "all"
}

// EventGroup holds the filtered events sharing one calendar date plus the
// visibility flag for that date's section
type EventGroup struct {
	Date   string
	Events []event.Event
	IsOpen bool
}

// ViewState carries the transient UI inputs that parameterize a derivation.
// It must only be touched from a single goroutine; the Bubble Tea update
// loop satisfies that for free.
type ViewState struct {
	SearchText string
	Filter     StatusFilter

	openByDate map[string]bool
	dateKey    string // joined date keys of the previous derivation
}

// FilterEvents applies the status predicate, then a case-insensitive
// substring match of search against each title. Original order is preserved
// and an empty search matches everything. The function is total: malformed
// events classify as Ended and are simply kept or dropped accordingly.
func FilterEvents(events []event.Event, search string, filter StatusFilter, now time.Time) []event.Event {
	needle := strings.ToLower(search)
	var out []event.Event
	for _, e := range events {
		if filter != FilterAll {
			status := e.Status(now)
			if filter == FilterActive && status != event.Active {
				continue
			}
			if filter == FilterEnded && status != event.Ended {
				continue
			}
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// GroupByDate partitions events by exact date string. Groups appear in
// first-occurrence order of each date, not chronologically, and events keep
// their relative order within a group.
func GroupByDate(events []event.Event) []EventGroup {
	byDate := make(map[string]int)
	var groups []EventGroup
	for _, e := range events {
		idx, ok := byDate[e.Date]
		if !ok {
			idx = len(groups)
			byDate[e.Date] = idx
			groups = append(groups, EventGroup{Date: e.Date})
		}
		groups[idx].Events = append(groups[idx].Events, e)
	}
	return groups
}

// reconcileOpenSections updates the open/closed bookkeeping for the given
// ordered date keys. When the key sequence differs from the previous
// derivation every section resets to open, discarding manual collapses; when
// it is unchanged the mapping is left exactly as it was. Dates no longer
// present are pruned either way.
func (vs *ViewState) reconcileOpenSections(dates []string) {
	key := strings.Join(dates, "\x00")
	if vs.openByDate == nil || key != vs.dateKey {
		vs.openByDate = make(map[string]bool, len(dates))
		for _, d := range dates {
			vs.openByDate[d] = true
		}
		vs.dateKey = key
	}
}

// IsOpen reports whether the section for date is open; sections default to
// open until toggled.
func (vs *ViewState) IsOpen(date string) bool {
	open, ok := vs.openByDate[date]
	if !ok {
		return true
	}
	return open
}

// ToggleSection flips the open flag for date. A section never toggled before
// counts as open, so the first toggle closes it.
func (vs *ViewState) ToggleSection(date string) {
	if vs.openByDate == nil {
		vs.openByDate = make(map[string]bool)
	}
	vs.openByDate[date] = !vs.IsOpen(date)
}

// Derive produces the section structure for the given events at the given
// instant: filter, group, reconcile section state, and pair each group with
// its open flag. An empty result is a valid empty slice, never an error.
func (vs *ViewState) Derive(events []event.Event, now time.Time) []EventGroup {
	filtered := FilterEvents(events, vs.SearchText, vs.Filter, now)
	groups := GroupByDate(filtered)

	dates := make([]string, len(groups))
	for i, g := range groups {
		dates[i] = g.Date
	}
	vs.reconcileOpenSections(dates)

	for i := range groups {
		groups[i].IsOpen = vs.IsOpen(groups[i].Date)
	}
	return groups
}
