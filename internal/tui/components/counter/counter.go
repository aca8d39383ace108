package counter

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/exhale-app/exhale/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

// Model renders the live smoke-free counter and headline stats.
type Model struct {
	Snapshot stats.Snapshot
	Currency string
	Time     time.Time
	benefit  string
	tip      string
	width    int
	height   int
}

func New() Model {
	return Model{Time: time.Now()}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetSnapshot(s stats.Snapshot, currency string) {
	m.Snapshot = s
	m.Currency = currency
}

// SetFooter sets the next-benefit progress line and the tip teaser shown
// under the stat rows. Either may be empty.
func (m *Model) SetFooter(benefit, tip string) {
	m.benefit = benefit
	m.tip = tip
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	e := m.Snapshot.Elapsed
	clock := fmt.Sprintf("%dd %02dh %02dm %02ds",
		e.DaysPart(), e.HoursPart(), e.MinutesPart(), e.SecondsPart())

	rows := lipgloss.JoinVertical(lipgloss.Left,
		statRow("Units avoided", fmt.Sprintf("%d", m.Snapshot.Projection.UnitsAvoided)),
		statRow("Money saved", fmt.Sprintf("%.2f%s", m.Snapshot.Projection.MoneySaved, m.Currency)),
		statRow("Life regained", fmt.Sprintf("%dh", m.Snapshot.LifeGainedHours)),
		statRow("Cravings beaten", fmt.Sprintf("%d/%d", m.Snapshot.CravingsAvoided, m.Snapshot.TotalCravings)),
		statRow("Program day", fmt.Sprintf("%d/%d", m.Snapshot.ProgramDay, stats.ProgramLength)),
	)

	parts := []string{
		titleStyle.Render("Smoke-free for"),
		clockStyle.Render(clock),
		"",
		rows,
	}
	if m.benefit != "" {
		parts = append(parts, "", labelStyle.Width(0).Render("Next: ")+valueStyle.Render(m.benefit))
	}
	if m.tip != "" {
		parts = append(parts, labelStyle.Width(0).Render("Tip: ")+valueStyle.Render(m.tip))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func statRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		valueStyle.Render(value),
	)
}
