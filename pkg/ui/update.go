package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"evento/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case eventsLoadedMsg:
		m.busy = false
		m.store.ApplyLoad(msg.events, msg.err)
		m.err = msg.err
		m.refreshRows()

	case eventCreatedMsg:
		m.busy = false
		m.err = msg.err
		if msg.err == nil {
			m.store.ApplyCreated(msg.created)
		}
		m.refreshRows()

	case reviewsLoadedMsg:
		m.loadingReviews = false
		if msg.err != nil {
			utils.Error("loading reviews", msg.err)
			m.err = msg.err
		} else {
			m.reviews = msg.reviews
		}

	case spinner.TickMsg:
		if m.busy || m.loadingReviews {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ReloadEvents):
				if !m.busy {
					cmds = append(cmds, m.loadEventsCmd(), m.spinner.Tick)
				}

			case key.Matches(msg, m.keyMap.AddEvent):
				m.mode = AddMode
				m.err = nil
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditEvent):
				if e, ok := m.selectedEvent(); ok {
					m.mode = EditMode
					m.err = nil
					m.editingEvent = &e
					m.resetInputs()
					m.populateInputs(e)
				}

			case key.Matches(msg, m.keyMap.DeleteEvent):
				if e, ok := m.selectedEvent(); ok {
					m.mode = DeleteConfirmMode
					m.editingEvent = &e
				}

			case key.Matches(msg, m.keyMap.CycleStatusFilter):
				m.viewState.Filter = (m.viewState.Filter + 1) % 3
				m.refreshRows()

			case key.Matches(msg, m.keyMap.ToggleSection):
				if ref, ok := m.selectedRow(); ok && ref.kind != blankRow {
					m.viewState.ToggleSection(ref.date)
					m.refreshRows()
				}

			case key.Matches(msg, m.keyMap.ShowDetail):
				// Enter opens the selected event, or toggles a header row
				if ref, ok := m.selectedRow(); ok && ref.kind == headerRow {
					m.viewState.ToggleSection(ref.date)
					m.refreshRows()
				} else if e, ok := m.selectedEvent(); ok {
					m.mode = DetailViewMode
					m.detailEvent = &e
					m.reviews = nil
					cmds = append(cmds, m.fetchReviewsCmd(e.ID), m.spinner.Tick)
				}

			case key.Matches(msg, m.keyMap.ShowReviews):
				if e, ok := m.selectedEvent(); ok {
					m.mode = ReviewsViewMode
					m.detailEvent = &e
					m.reviews = nil
					cmds = append(cmds, m.fetchReviewsCmd(e.ID), m.spinner.Tick)
				}

			case key.Matches(msg, m.keyMap.ShowStats):
				m.mode = StatsViewMode

			case key.Matches(msg, m.keyMap.SearchEvents), msg.String() == "/":
				m.mode = SearchMode
				m.searchInput.Focus()
				m.searchInput.SetValue("")
				return m, nil
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.err = nil
				m.resetInputs()
				m.editingEvent = nil

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "enter":
				if m.activeInput == fieldCount-1 { // Submit on enter from the last field
					if c := m.submitForm(); c != nil {
						cmds = append(cmds, c, m.spinner.Tick)
					}
				} else {
					m.focusNextInput()
				}
			}

			m.inputs[m.activeInput], cmd = m.inputs[m.activeInput].Update(msg)
			cmds = append(cmds, cmd)

		case SearchMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.viewState.SearchText = ""
				m.refreshRows()

			case "enter":
				m.viewState.SearchText = m.searchInput.Value()
				utils.Log("searching for: %s", m.viewState.SearchText)
				m.mode = NormalMode
				m.refreshRows()
			}

			m.searchInput, cmd = m.searchInput.Update(msg)
			cmds = append(cmds, cmd)

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingEvent != nil && !m.busy {
					utils.Log("deleting event %s", m.editingEvent.ID)
					cmds = append(cmds, m.deleteEventCmd(m.editingEvent.ID), m.spinner.Tick)
				}
				m.mode = NormalMode
				m.editingEvent = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingEvent = nil
			}

		case DetailViewMode:
			switch {
			case msg.String() == "esc":
				m.mode = NormalMode
				m.detailEvent = nil
			case key.Matches(msg, m.keyMap.ShowReviews):
				m.mode = ReviewsViewMode
			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit
			}

		case ReviewsViewMode:
			switch msg.String() {
			case "esc":
				if m.detailEvent != nil {
					m.mode = DetailViewMode
				} else {
					m.mode = NormalMode
				}
			}

		case StatsViewMode:
			switch msg.String() {
			case "esc", "s":
				m.mode = NormalMode
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 6)
		m.occupancyBar.Width = min(msg.Width-8, 50)
	}

	// Only update the table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
