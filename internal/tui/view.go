package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/exhale-app/exhale/internal/content"
	"github.com/exhale-app/exhale/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string

	switch m.state {
	case StateHome:
		body = m.viewHome()
	case StateProgram:
		body = docStyle.Render(m.programModel.View())
	case StateAchievements:
		body = docStyle.Render(m.viewAchievements())
	case StateJournal:
		body = docStyle.Render(m.journalModel.View())
	case StateCraving, StateMood, StateLog:
		body = docStyle.Render(m.form.View())
	case StateBreathe:
		body = m.viewBreathe()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		body,
		m.statusMsg,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Home", "Program", "Milestones", "Journal"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	return m.counter.View()
}

func (m Model) viewAchievements() string {
	elapsed := m.session.Stats(m.counter.Time).Elapsed.Days

	var b strings.Builder
	for _, st := range stats.Evaluate(content.Achievements, elapsed) {
		if st.Unlocked {
			b.WriteString(unlockedStyle.Render(fmt.Sprintf("✓ %s %s", st.Entry.Icon, st.Entry.Title)))
		} else {
			b.WriteString(lockedStyle.Render(fmt.Sprintf("  %s %s", st.Entry.Icon, st.Entry.Title)))
		}
		b.WriteString("\n")
		b.WriteString(lockedStyle.Render("    " + st.Entry.Description))
		b.WriteString("\n")
	}

	if next, ok := stats.NextLocked(content.Achievements, elapsed); ok {
		progress := stats.ProgressToNext(elapsed, next.ThresholdDays())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Next: %s · %s · %d day(s) to go",
			next.Title,
			progressBar(progress),
			stats.DaysRemaining(elapsed, next.ThresholdDays())))
		b.WriteString("\n")
	}

	if benefit, ok := stats.LatestUnlocked(content.HealthBenefits, elapsed); ok {
		b.WriteString("\n")
		b.WriteString(unlockedStyle.Render("Your body: " + benefit.Title))
		b.WriteString("\n")
		b.WriteString(lockedStyle.Render(benefit.Description))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewBreathe() string {
	phase, remaining := content.PhaseAt(m.counter.Time.Sub(m.breatheStart))
	secs := int(remaining/time.Second) + 1

	card := lipgloss.JoinVertical(lipgloss.Center,
		breatheStyle.Render(fmt.Sprintf("%s · %ds", phase.Label, secs)),
		"",
		phase.Instruction,
		mantraStyle.Render(phase.Mantra),
		"",
		lockedStyle.Render("[q] back"),
	)

	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		card,
	)
}

func progressBar(progress float64) string {
	const width = 20
	filled := int(progress * width)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
