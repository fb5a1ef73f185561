package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"evento/pkg/event"
)

// rowKind says what a table row stands for
type rowKind int

const (
	headerRow rowKind = iota
	eventRow
	blankRow
)

// rowRef maps a table row back to the derived section structure
type rowRef struct {
	kind  rowKind
	date  string
	event event.Event
}

// refreshRows re-derives the section structure from the store and rebuilds
// the table. Called after every load, mutation, filter or toggle.
func (m *Model) refreshRows() {
	now := m.now()
	m.groups = m.viewState.Derive(m.store.Events, now)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.GroupHeaderColor))
	endedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.EndedColor))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ActiveColor))

	m.rows = m.rows[:0]
	tableRows := []table.Row{}

	for gi, group := range m.groups {
		marker := "▾"
		if !group.IsOpen {
			marker = "▸"
		}
		header := fmt.Sprintf("%s %s (%d)", marker, group.Date, len(group.Events))
		m.rows = append(m.rows, rowRef{kind: headerRow, date: group.Date})
		tableRows = append(tableRows, table.Row{headerStyle.Render(header)})

		if group.IsOpen {
			for _, e := range group.Events {
				line := fmt.Sprintf("  %s-%s  %s  @ %s  %d/%d", e.StartTime, e.EndTime, e.Title, e.Location, e.SpotsLeft, e.Capacity)
				if len(e.Categories) > 0 {
					line += "  [" + strings.Join(e.Categories, ", ") + "]"
				}
				if e.Status(now) == event.Ended {
					line = endedStyle.Render(line + "  (ended)")
				} else {
					line = activeStyle.Render(line)
				}
				m.rows = append(m.rows, rowRef{kind: eventRow, date: group.Date, event: e})
				tableRows = append(tableRows, table.Row{line})
			}
		}

		if gi < len(m.groups)-1 {
			m.rows = append(m.rows, rowRef{kind: blankRow})
			tableRows = append(tableRows, table.Row{""})
		}
	}

	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

// selectedRow returns the rowRef under the cursor, if any
func (m *Model) selectedRow() (rowRef, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return rowRef{}, false
	}
	return m.rows[idx], true
}

// selectedEvent returns the event under the cursor, if the cursor is on an
// event row
func (m *Model) selectedEvent() (event.Event, bool) {
	ref, ok := m.selectedRow()
	if !ok || ref.kind != eventRow {
		return event.Event{}, false
	}
	return ref.event, true
}
