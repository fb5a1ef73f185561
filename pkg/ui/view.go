package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"evento/pkg/stats"
	"evento/pkg/view"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.titleBar(" EVENTO - Events "))
		sb.WriteString("\n\n")

		if m.busy {
			sb.WriteString(fmt.Sprintf("%s loading events...\n\n", m.spinner.View()))
		}

		sb.WriteString(m.table.View())
		sb.WriteString("\n")

		if len(m.rows) == 0 && !m.busy {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.NormalTextColor)).
				Render("No events to show"))
			sb.WriteString("\n")
		}

		// Status line: filter and search state
		filterPart := ""
		if m.viewState.Filter != view.FilterAll {
			filterPart = fmt.Sprintf(" (%s only)", m.viewState.Filter)
		}
		searchPart := ""
		if m.viewState.SearchText != "" {
			searchPart = fmt.Sprintf(" (search: %s)", m.viewState.SearchText)
		}
		info := fmt.Sprintf("Showing %d section(s)%s%s", len(m.groups), filterPart, searchPart)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(info))
		sb.WriteString("\n")

	case AddMode:
		sb.WriteString(m.titleBar(" Add New Event "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.titleBar(" Edit Event "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Delete Event "))
		sb.WriteString("\n\n")

		if m.editingEvent != nil {
			sb.WriteString("Are you sure you want to delete this event?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.editingEvent.Title))
			sb.WriteString(fmt.Sprintf("Date: %s %s-%s\n", m.editingEvent.Date, m.editingEvent.StartTime, m.editingEvent.EndTime))
			sb.WriteString(fmt.Sprintf("Location: %s\n", m.editingEvent.Location))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case SearchMode:
		sb.WriteString(m.titleBar(" Search Events "))
		sb.WriteString("\n\n")
		sb.WriteString("Enter search term to match event titles:")
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())

	case DetailViewMode:
		sb.WriteString(m.renderDetail())

	case ReviewsViewMode:
		sb.WriteString(m.renderReviews())

	case StatsViewMode:
		sb.WriteString(m.renderStats())

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return sb.String()
}

// titleBar renders the standard highlighted title bar
func (m Model) titleBar(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(title)
}

// renderForm renders the input form for adding/editing events
func (m Model) renderForm() string {
	var sb strings.Builder

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		Padding(1, 2)

	for i, in := range m.inputs {
		sb.WriteString(formLabels[i] + ":\n")
		sb.WriteString(in.View())
		if i < len(m.inputs)-1 {
			sb.WriteString("\n\n")
		}
	}

	out := formStyle.Render(sb.String())
	out += "\n\n"
	out += lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render("Tab: next field | Enter on last field: submit | Esc: cancel")
	return out
}

// renderDetail renders the selected event with occupancy and rating
func (m Model) renderDetail() string {
	if m.detailEvent == nil {
		return "No event selected"
	}
	e := *m.detailEvent

	var sb strings.Builder
	sb.WriteString(m.titleBar(" " + e.Title + " "))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Date:       %s\n", e.Date))
	sb.WriteString(fmt.Sprintf("Time:       %s - %s\n", e.StartTime, e.EndTime))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", e.Location))
	if len(e.Categories) > 0 {
		sb.WriteString(fmt.Sprintf("Categories: %s\n", strings.Join(e.Categories, ", ")))
	}
	if e.ImageURL != "" {
		sb.WriteString(fmt.Sprintf("Image:      %s\n", e.ImageURL))
	}
	if e.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Description)
		sb.WriteString("\n")
	}

	// Occupancy
	percent := stats.Occupancy(e)
	occupied := e.Capacity - e.SpotsLeft
	sb.WriteString("\nOccupancy\n")
	sb.WriteString(m.occupancyBar.ViewAs(float64(percent) / 100))
	sb.WriteString(fmt.Sprintf("\n%d occupied / %d total (%d available)\n", occupied, e.Capacity, e.SpotsLeft))

	// Rating
	sb.WriteString("\nRating\n")
	if m.loadingReviews {
		sb.WriteString(fmt.Sprintf("%s loading reviews...\n", m.spinner.View()))
	} else {
		summary := stats.SummarizeRatings(m.reviews)
		if summary.Count == 0 {
			sb.WriteString("No reviews for this event yet.\n")
		} else {
			starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.StarColor))
			sb.WriteString(fmt.Sprintf("%s %.1f based on %d review(s)\n",
				starStyle.Render(renderStars(summary)), summary.Average, summary.Count))
			sb.WriteString(fmt.Sprintf("\nPress %s to read all reviews\n", m.keyMap.ShowReviews.Help().Key))
		}
	}

	sb.WriteString("\nEsc: back to list")
	return sb.String()
}

// renderReviews renders the full review list for the selected event
func (m Model) renderReviews() string {
	var sb strings.Builder
	title := " Reviews "
	if m.detailEvent != nil {
		title = " Reviews - " + m.detailEvent.Title + " "
	}
	sb.WriteString(m.titleBar(title))
	sb.WriteString("\n\n")

	if m.loadingReviews {
		sb.WriteString(fmt.Sprintf("%s loading reviews...\n", m.spinner.View()))
		return sb.String()
	}
	if len(m.reviews) == 0 {
		sb.WriteString("No reviews for this event yet.\n")
		sb.WriteString("\nEsc: back")
		return sb.String()
	}

	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.StarColor))
	for _, r := range m.reviews {
		sb.WriteString(fmt.Sprintf("%s  %s\n", starStyle.Render(starRow(r.Rating)), r.CreatedAt))
		sb.WriteString(r.Comment)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Esc: back")
	return sb.String()
}

// renderStats renders the aggregate statistics view
func (m Model) renderStats() string {
	var sb strings.Builder
	sb.WriteString(m.titleBar(" Statistics "))
	sb.WriteString("\n\n")

	s := stats.Summarize(m.store.Events, m.now())
	sb.WriteString(fmt.Sprintf("Events:          %d (%d active, %d ended)\n", s.TotalEvents, s.ActiveEvents, s.EndedEvents))
	sb.WriteString(fmt.Sprintf("Total capacity:  %d\n", s.TotalCapacity))
	sb.WriteString(fmt.Sprintf("Spots occupied:  %d\n", s.TotalOccupied))
	sb.WriteString(fmt.Sprintf("Spots available: %d\n", s.TotalSpotsLeft))
	sb.WriteString("\nOverall occupancy\n")
	sb.WriteString(m.occupancyBar.ViewAs(float64(s.OccupancyPercent) / 100))
	sb.WriteString(fmt.Sprintf("\n%d%%\n", s.OccupancyPercent))

	sb.WriteString("\nEsc: back")
	return sb.String()
}

// renderHelp renders the fullscreen command list
func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		help := binding.Help()
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", help.Key)),
			descStyle.Render(help.Desc)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ReloadEvents)
	addCommand(m.keyMap.AddEvent)
	addCommand(m.keyMap.EditEvent)
	addCommand(m.keyMap.DeleteEvent)
	addCommand(m.keyMap.SearchEvents)
	addCommand(m.keyMap.CycleStatusFilter)
	addCommand(m.keyMap.ToggleSection)
	addCommand(m.keyMap.ShowDetail)
	addCommand(m.keyMap.ShowReviews)
	addCommand(m.keyMap.ShowStats)
	addCommand(m.keyMap.ShowHelp)

	sb.WriteString("\nEsc: back")
	return sb.String()
}

// renderStars draws a five star row for a rating summary
func renderStars(s stats.RatingSummary) string {
	out := strings.Repeat("★", s.FullStars)
	if s.HalfStar {
		out += "⭒"
	}
	out += strings.Repeat("☆", s.EmptyStars)
	return out
}

// starRow draws a single review's rating; ratings outside 1..5 are clamped
// so a bad server value cannot panic the renderer
func starRow(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
