package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"evento/pkg/config"
	"evento/pkg/event"
	"evento/pkg/keymaps"
	"evento/pkg/store"
	"evento/pkg/view"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	SearchMode
	DetailViewMode
	ReviewsViewMode
	StatsViewMode
	HelpViewMode
)

// Form field indexes, in focus order
const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldStart
	fieldEnd
	fieldLocation
	fieldCapacity
	fieldCategories
	fieldImage
	fieldCount
)

var formLabels = [fieldCount]string{
	"Title", "Description", "Date (YYYY-MM-DD)", "Start (HH:MM)", "End (HH:MM)",
	"Location", "Capacity", "Categories (comma separated)", "Image (path or URL)",
}

// ReviewSource fetches the reviews of one event; api.Client implements it
type ReviewSource interface {
	Reviews(ctx context.Context, eventID string) ([]event.Review, error)
}

// Model represents the application state
type Model struct {
	table         table.Model
	store         *store.Store
	reviewSource  ReviewSource
	width, height int
	err           error

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// View state
	viewState view.ViewState
	groups    []view.EventGroup
	rows      []rowRef
	now       func() time.Time

	// Async operation state: at most one store operation runs at a time
	busy    bool
	spinner spinner.Model

	// Form state
	mode        InputMode
	inputs      [fieldCount]textinput.Model
	searchInput textinput.Model
	activeInput int

	// Edit/delete state
	editingEvent *event.Event

	// Detail/reviews state
	detailEvent    *event.Event
	reviews        []event.Review
	loadingReviews bool
	occupancyBar   progress.Model
}

// NewModel creates a new UI model with the provided configuration
func NewModel(s *store.Store, reviews ReviewSource, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "", Width: 70},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(ts)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.AccentColor))

	searchInput := textinput.New()
	searchInput.Placeholder = "Search events by title"
	searchInput.Width = 40

	m := Model{
		table:        t,
		store:        s,
		reviewSource: reviews,
		config:       cfg,
		styles:       styles,
		keyMap:       keymaps.BuildKeyMap(cfg.KeyMap),
		mode:         NormalMode,
		busy:         true, // Init dispatches the first load
		searchInput:  searchInput,
		spinner:      sp,
		occupancyBar: progress.New(progress.WithDefaultGradient()),
		now:          time.Now,
	}
	m.buildInputs()

	return m
}

// Init kicks off the first load (required by the Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadEventsCmd())
}
