package program

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/exhale-app/exhale/internal/models"
	"github.com/exhale-app/exhale/internal/stats"
)

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))

	premiumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Italic(true)
)

// Model renders one program day inside a scrollable viewport.
type Model struct {
	viewport viewport.Model
	Day      models.ProgramDay
	Today    int
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetDay switches the viewport to the given program day. today marks the
// day the elapsed time currently selects, used for the header badge.
func (m *Model) SetDay(day models.ProgramDay, today int) {
	m.Day = day
	m.Today = today
	m.render()
}

func (m *Model) render() {
	var b strings.Builder

	header := fmt.Sprintf("Day %d of %d", m.Day.Day, stats.ProgramLength)
	switch {
	case m.Day.Day == m.Today:
		header += " (today)"
	case m.Day.Day < m.Today:
		header += " (completed)"
	}
	b.WriteString(dayStyle.Render(header))
	b.WriteString("\n")
	if m.Day.IsPremium {
		b.WriteString(premiumStyle.Render("★ premium"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	section(&b, "Challenge", m.Day.Challenge)
	section(&b, "Health", m.Day.HealthTip)
	section(&b, "Mind", m.Day.MentalExercise)
	section(&b, "Motivation", m.Day.MotivationalMessage)

	m.viewport.SetContent(b.String())
}

func section(b *strings.Builder, heading, body string) {
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(body))
	b.WriteString("\n\n")
}
