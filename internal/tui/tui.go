// Package tui provides a Bubble Tea terminal user interface for metroart.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/metroart/internal/browse"
	"github.com/handiism/metroart/internal/config"
	"github.com/handiism/metroart/internal/model"
	"github.com/rs/zerolog"
)

// State represents the current UI state.
type State int

const (
	StateMainMenu State = iota
	StateSearchMenu
	StateDepartments
	StateNationalities
	StateAuthorInput
	StateDetailInput
	StateLoading
	StateResults
	StateDetail
)

// Menu options, keyed by the number the user types.
var (
	mainOptions = []menuOption{
		{"1", "Búsqueda de obras"},
		{"2", "Mostrar detalles de una obra"},
		{"0", "Salir"},
	}
	searchOptions = []menuOption{
		{"1", "Ver lista de obras por Departamento"},
		{"2", "Ver lista de obras por Nacionalidad del autor"},
		{"3", "Ver lista de obras por nombre del autor"},
		{"0", "Volver al menú principal"},
	}
)

const invalidOption = "Opción no válida. Intente de nuevo."

type menuOption struct {
	Key   string
	Label string
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	input     textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	api       browse.Collection
	logger    zerolog.Logger
	message   string
	loading   string
	returnTo  State

	// Request context, cancelled on quit
	ctx    context.Context
	cancel context.CancelFunc

	departments []model.Department

	nationalities []string
	natPager      browse.Pager

	// Current result list and its page cursor
	title   string
	result  browse.Result
	notices []browse.ProgressEvent
	pager   browse.Pager

	detail   model.ArtworkDetail
	detailID int
	found    bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, api browse.Collection, logger zerolog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C8102E"))

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		input:    ti,
		spinner:  sp,
		settings: settings,
		api:      api,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	return m.enter(StateMainMenu)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// DepartmentsMsg is sent when the department list has been fetched.
	DepartmentsMsg struct {
		Departments []model.Department
	}

	// ResultsMsg is sent when a search mode has finished.
	ResultsMsg struct {
		Title   string
		Result  browse.Result
		Notices []browse.ProgressEvent
	}

	// DetailMsg is sent when an object detail has been fetched.
	DetailMsg struct {
		ID     int
		Detail model.ArtworkDetail
		Found  bool
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.cancel()
			return m, tea.Quit

		case tea.KeyEsc:
			return m.back()

		case tea.KeyEnter:
			if m.state == StateLoading {
				return m, nil
			}
			value := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			m.message = ""
			return m.submit(value)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case DepartmentsMsg:
		if m.state != StateLoading {
			return m, nil
		}
		if len(msg.Departments) == 0 {
			m = m.enter(StateSearchMenu)
			m.message = "No se pudieron cargar los departamentos."
			return m, nil
		}
		m.departments = msg.Departments
		return m.enter(StateDepartments), nil

	case ResultsMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.title = msg.Title
		m.result = msg.Result
		m.notices = msg.Notices
		m.pager = browse.NewPager(len(msg.Result.Artworks), m.settings.ResultsPageSize)
		return m.enter(StateResults), nil

	case DetailMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.detailID = msg.ID
		m.detail = msg.Detail
		m.found = msg.Found
		return m.enter(StateDetail), nil
	}

	if m.state != StateLoading {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit handles a line of input for the current state.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateMainMenu:
		switch value {
		case "1":
			return m.enter(StateSearchMenu), nil
		case "2":
			m.returnTo = StateMainMenu
			return m.enter(StateDetailInput), nil
		case "0":
			m.cancel()
			return m, tea.Quit
		}
		m.message = invalidOption

	case StateSearchMenu:
		switch value {
		case "1":
			return m.startLoading("Cargando departamentos...", m.fetchDepartments())
		case "2":
			browser := browse.NewBrowser(m.settings, m.api, nil)
			m.nationalities = browser.NationalityCatalog(m.result.Artworks)
			m.natPager = browse.NewPager(len(m.nationalities), m.settings.NationalityPageSize)
			return m.enter(StateNationalities), nil
		case "3":
			return m.enter(StateAuthorInput), nil
		case "0":
			return m.enter(StateMainMenu), nil
		}
		m.message = invalidOption

	case StateDepartments:
		if value == "0" {
			return m.enter(StateSearchMenu), nil
		}
		idx, err := parseSelection(value, len(m.departments))
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		dep := m.departments[idx]
		return m.startLoading(
			fmt.Sprintf("Buscando obras en el departamento: %s...", dep.Name),
			m.fetchResults(fmt.Sprintf("Departamento: %s", dep.Name), func(ctx context.Context, b *browse.Browser) browse.Result {
				return b.FetchArtworksByDepartment(ctx, dep.ID)
			}),
		)

	case StateNationalities:
		switch strings.ToLower(value) {
		case "0":
			return m.enter(StateSearchMenu), nil
		case "n":
			m.natPager = m.natPager.Next()
			return m, nil
		case "p":
			m.natPager = m.natPager.Prev()
			return m, nil
		case "":
			m.message = ErrInvalidInput.Error()
			return m, nil
		}
		nationality := value
		if isNumeric(value) {
			idx, err := parseSelection(value, len(m.nationalities))
			if err != nil {
				m.message = err.Error()
				return m, nil
			}
			nationality = m.nationalities[idx]
		}
		return m.startLoading(
			fmt.Sprintf("Buscando obras de nacionalidad: %s...", nationality),
			m.fetchResults(fmt.Sprintf("Nacionalidad: %s", nationality), func(ctx context.Context, b *browse.Browser) browse.Result {
				return b.FetchArtworksByNationality(ctx, nationality)
			}),
		)

	case StateAuthorInput:
		if value == "" {
			m.message = "Ingrese el nombre del autor."
			return m, nil
		}
		return m.startLoading(
			fmt.Sprintf("Buscando obras del autor: %s...", value),
			m.fetchResults(fmt.Sprintf("Autor: %s", value), func(ctx context.Context, b *browse.Browser) browse.Result {
				return b.FetchArtworksByAuthor(ctx, value)
			}),
		)

	case StateDetailInput:
		if value == "0" {
			return m.enter(m.returnTo), nil
		}
		id, err := parseObjectID(value)
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		return m.startLoading(fmt.Sprintf("Cargando obra %d...", id), m.fetchDetail(id))

	case StateResults:
		switch strings.ToLower(value) {
		case "n":
			m.pager = m.pager.Next()
			return m, nil
		case "p":
			m.pager = m.pager.Prev()
			return m, nil
		case "0":
			return m.enter(StateSearchMenu), nil
		}
		idx, err := parseSelection(value, len(m.result.Artworks))
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.returnTo = StateResults
		art := m.result.Artworks[idx]
		if art.ID == 0 {
			m.message = "La obra no tiene ID."
			return m, nil
		}
		return m.startLoading(fmt.Sprintf("Cargando obra %d...", art.ID), m.fetchDetail(art.ID))

	case StateDetail:
		return m.enter(m.returnTo), nil
	}

	return m, nil
}

// back handles esc: return to the parent view, or quit from the main menu.
func (m Model) back() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateMainMenu:
		m.cancel()
		return m, tea.Quit
	case StateSearchMenu:
		return m.enter(StateMainMenu), nil
	case StateDepartments, StateNationalities, StateAuthorInput, StateResults:
		return m.enter(StateSearchMenu), nil
	case StateDetailInput, StateDetail:
		return m.enter(m.returnTo), nil
	}
	return m, nil
}

// enter switches to state and prepares the input line for it.
func (m Model) enter(state State) Model {
	m.state = state
	m.input.Reset()

	switch state {
	case StateMainMenu, StateSearchMenu:
		m.input.Placeholder = "Seleccione una opción"
	case StateDepartments:
		m.input.Placeholder = "Número del departamento o 0 para volver"
	case StateNationalities:
		m.input.Placeholder = "Número, nacionalidad, n/p para paginar o 0 para volver"
	case StateAuthorInput:
		m.input.Placeholder = "Nombre del autor"
	case StateDetailInput:
		m.input.Placeholder = "ID de la obra o 0 para volver"
	case StateResults:
		m.input.Placeholder = "n: siguiente, p: anterior, número: detalles, 0: volver"
	case StateDetail:
		m.input.Placeholder = "Presione Enter para continuar"
	}
	return m
}

func (m Model) startLoading(text string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.state = StateLoading
	m.loading = text
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// newBrowser builds a Browser whose notices are collected into notices.
// Verbose events go to the log.
func (m Model) newBrowser(notices *[]browse.ProgressEvent) *browse.Browser {
	logger := m.logger
	return browse.NewBrowser(m.settings, m.api, func(event browse.ProgressEvent) {
		if event.Level == browse.LevelVerbose {
			logger.Debug().Msg(event.Message)
			return
		}
		*notices = append(*notices, event)
	})
}

// fetchDepartments loads the department list.
func (m Model) fetchDepartments() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		var notices []browse.ProgressEvent
		return DepartmentsMsg{Departments: m.newBrowser(&notices).ListDepartments(ctx)}
	}
}

// fetchResults runs a search mode in the background.
func (m Model) fetchResults(title string, run func(context.Context, *browse.Browser) browse.Result) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		var notices []browse.ProgressEvent
		result := run(ctx, m.newBrowser(&notices))
		return ResultsMsg{Title: title, Result: result, Notices: notices}
	}
}

// fetchDetail loads one object.
func (m Model) fetchDetail(id int) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		var notices []browse.ProgressEvent
		detail, ok := m.newBrowser(&notices).FetchArtworkDetail(ctx, id)
		return DetailMsg{ID: id, Detail: detail, Found: ok}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, api browse.Collection, logger zerolog.Logger) error {
	p := tea.NewProgram(NewModel(settings, api, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
