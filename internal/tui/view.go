package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/metroart/internal/browse"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C8102E")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	artworkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("MetroArt"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Colección del Museo Metropolitano de Arte"))
	b.WriteString("\n\n")

	switch m.state {
	case StateMainMenu:
		b.WriteString(viewMenu("Menú principal", mainOptions))
	case StateSearchMenu:
		b.WriteString(viewMenu("Búsqueda de obras", searchOptions))
	case StateDepartments:
		b.WriteString(m.viewDepartments())
	case StateNationalities:
		b.WriteString(m.viewNationalities())
	case StateAuthorInput:
		b.WriteString(subtitleStyle.Render("Ingrese el nombre del autor:"))
		b.WriteString("\n")
	case StateDetailInput:
		b.WriteString(subtitleStyle.Render("Ingrese el ID de la obra:"))
		b.WriteString("\n")
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render(m.loading))
		b.WriteString("\n")
	case StateResults:
		b.WriteString(m.viewResults())
	case StateDetail:
		b.WriteString(m.viewDetail())
	}

	if m.state != StateLoading {
		b.WriteString("\n")
		if m.message != "" {
			b.WriteString(errorStyle.Render(m.message))
			b.WriteString("\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func viewMenu(title string, options []menuOption) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(title))
	b.WriteString("\n")
	for _, opt := range options {
		b.WriteString(fmt.Sprintf("  %s. %s\n", opt.Key, opt.Label))
	}

	return b.String()
}

func (m Model) viewDepartments() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Departamentos disponibles:"))
	b.WriteString("\n")
	for i, dep := range m.departments {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, dep.Name))
	}
	b.WriteString(dimStyle.Render("  0. Volver"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewNationalities() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Nacionalidades disponibles:"))
	b.WriteString("\n")
	start, _ := m.natPager.Bounds()
	for i, name := range browse.PageOf(m.nationalities, m.natPager) {
		b.WriteString(fmt.Sprintf("  %d. %s\n", start+i+1, name))
	}
	b.WriteString(m.pageFooter(m.natPager))

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.result.Artworks) == 0 {
		b.WriteString(warningStyle.Render("No se encontraron obras."))
		b.WriteString("\n")
		b.WriteString(m.renderNotices())
		return b.String()
	}

	start, _ := m.pager.Bounds()
	for i, art := range browse.PageOf(m.result.Artworks, m.pager) {
		b.WriteString(artworkStyle.Render(fmt.Sprintf("  %d. %s", start+i+1, art.Title)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("     ID: %s | Autor: %s", art.DisplayID(), art.Artist)))
		b.WriteString("\n")
	}
	b.WriteString(m.pageFooter(m.pager))

	if remaining := m.result.Total - m.result.Attempted; remaining > 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf("Se omitieron %d obras restantes", remaining)))
		b.WriteString("\n")
	}
	b.WriteString(m.renderNotices())

	return b.String()
}

func (m Model) pageFooter(p browse.Pager) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Página %d de %d", p.Index+1, max(1, p.Count()))))
	b.WriteString("\n")

	var nav []string
	if p.HasNext() {
		nav = append(nav, "n: siguiente")
	}
	if p.HasPrev() {
		nav = append(nav, "p: anterior")
	}
	nav = append(nav, "0: volver")
	b.WriteString(dimStyle.Render(strings.Join(nav, " • ")))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDetail() string {
	if !m.found {
		return errorStyle.Render(fmt.Sprintf("No se pudo obtener la obra %d.", m.detailID)) + "\n"
	}

	d := m.detail
	image := d.ImageURL
	if !d.HasImage() {
		image = "Sin imagen disponible"
	}

	return boxStyle.Render(fmt.Sprintf(
		"%s\n\n"+
			"ID: %s\n"+
			"Autor: %s\n"+
			"Nacionalidad: %s\n"+
			"Nacimiento: %s\n"+
			"Muerte: %s\n"+
			"Tipo: %s\n"+
			"Año de creación: %s\n"+
			"Imagen: %s",
		d.Title,
		d.DisplayID(),
		d.Artist,
		d.Nationality,
		d.BirthYear,
		d.DeathYear,
		d.Classification,
		d.CreationDate,
		image,
	)) + "\n"
}

func (m Model) renderNotices() string {
	var b strings.Builder

	for _, notice := range m.notices {
		var style lipgloss.Style
		prefix := "•"
		switch notice.Level {
		case browse.LevelError:
			style = errorStyle
			prefix = "✗"
		case browse.LevelWarning:
			style = warningStyle
			prefix = "!"
		case browse.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case browse.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + notice.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateLoading:
		return "ctrl+c: salir"
	case StateMainMenu:
		return "enter: confirmar • esc: salir"
	}
	return "enter: confirmar • esc: volver • ctrl+c: salir"
}
