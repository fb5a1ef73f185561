package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"evento/pkg/event"
	"evento/pkg/utils"
)

// buildInputs initializes the form inputs
func (m *Model) buildInputs() {
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = formLabels[i]
		in.Width = 44
		m.inputs[i] = in
	}
	m.inputs[fieldTitle].Focus()
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.inputs[fieldDate].SetValue(m.now().Format("2006-01-02"))
	m.activeInput = fieldTitle
	m.inputs[fieldTitle].Focus()
}

// populateInputs fills the form with an existing event's values
func (m *Model) populateInputs(e event.Event) {
	m.inputs[fieldTitle].SetValue(e.Title)
	m.inputs[fieldDescription].SetValue(e.Description)
	m.inputs[fieldDate].SetValue(e.Date)
	m.inputs[fieldStart].SetValue(e.StartTime)
	m.inputs[fieldEnd].SetValue(e.EndTime)
	m.inputs[fieldLocation].SetValue(e.Location)
	m.inputs[fieldCapacity].SetValue(strconv.Itoa(e.Capacity))
	m.inputs[fieldCategories].SetValue(strings.Join(e.Categories, ", "))
	m.inputs[fieldImage].SetValue(e.ImageURL)
}

// focusNextInput cycles forward through the form inputs
func (m *Model) focusNextInput() {
	m.inputs[m.activeInput].Blur()
	m.activeInput = (m.activeInput + 1) % fieldCount
	m.inputs[m.activeInput].Focus()
}

// focusPreviousInput cycles backward through the form inputs
func (m *Model) focusPreviousInput() {
	m.inputs[m.activeInput].Blur()
	m.activeInput = (m.activeInput - 1 + fieldCount) % fieldCount
	m.inputs[m.activeInput].Focus()
}

// formEvent assembles an Event from the form fields
func (m *Model) formEvent() (event.Event, error) {
	capacity := 0
	if s := strings.TrimSpace(m.inputs[fieldCapacity].Value()); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return event.Event{}, event.ErrBadNumber
		}
		capacity = n
	}

	categories := []string{}
	for _, c := range strings.Split(m.inputs[fieldCategories].Value(), ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}

	return event.Event{
		Title:       strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Date:        strings.TrimSpace(m.inputs[fieldDate].Value()),
		StartTime:   strings.TrimSpace(m.inputs[fieldStart].Value()),
		EndTime:     strings.TrimSpace(m.inputs[fieldEnd].Value()),
		Location:    strings.TrimSpace(m.inputs[fieldLocation].Value()),
		Capacity:    capacity,
		Categories:  categories,
		ImageURL:    strings.TrimSpace(m.inputs[fieldImage].Value()),
	}, nil
}

// submitForm validates the form and dispatches the create or update
// operation. Validation failures stay on the form with an error message.
// While another store operation is in flight the submit is ignored, the same
// gating reload and delete get.
func (m *Model) submitForm() tea.Cmd {
	if m.busy {
		return nil
	}

	e, err := m.formEvent()
	if err != nil {
		m.err = err
		return nil
	}

	switch m.mode {
	case AddMode:
		e.SpotsLeft = e.Capacity // new events start with every spot free
		if err := e.ValidateNew(m.now()); err != nil {
			m.err = err
			return nil
		}
		utils.Log("creating event %q on %s", e.Title, e.Date)
		m.mode = NormalMode
		m.resetInputs()
		return m.createEventCmd(e)

	case EditMode:
		if m.editingEvent == nil {
			m.mode = NormalMode
			return nil
		}
		e.ID = m.editingEvent.ID
		e.SpotsLeft = m.editingEvent.SpotsLeft
		if err := e.Validate(); err != nil {
			m.err = err
			return nil
		}
		utils.Log("updating event %s", e.ID)
		m.mode = NormalMode
		m.editingEvent = nil
		m.resetInputs()
		return m.updateEventCmd(e)
	}
	return nil
}
