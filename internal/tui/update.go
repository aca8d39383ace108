package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/exhale-app/exhale/internal/content"
	"github.com/exhale-app/exhale/internal/models"
	"github.com/exhale-app/exhale/internal/stats"
	"github.com/exhale-app/exhale/internal/tui/components/counter"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The tick drives the live counter regardless of state.
	if tick, ok := msg.(counter.TickMsg); ok {
		var cmd tea.Cmd
		m.counter, cmd = m.counter.Update(msg)
		m.syncCounter(time.Time(tick))
		cmds = append(cmds, cmd)
	}

	switch m.state {
	case StateCraving, StateMood, StateLog:
		return m.updateForm(msg, cmds)
	case StateBreathe:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "q", "esc", "b", "enter":
				m.state = m.previousState
			}
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.counter.SetSize(msg.Width, msg.Height-4)
		m.programModel.SetSize(msg.Width-4, msg.Height-6)
		m.journalModel.SetSize(msg.Width-4, msg.Height-6)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Craving):
			m.previousState = m.state
			m.state = StateCraving
			m.newCravingForm()
			return m, tea.Batch(append(cmds, m.form.Init())...)
		case key.Matches(msg, m.keys.Mood):
			m.previousState = m.state
			m.state = StateMood
			m.newMoodForm()
			return m, tea.Batch(append(cmds, m.form.Init())...)
		case key.Matches(msg, m.keys.Log):
			m.previousState = m.state
			m.state = StateLog
			m.newLogForm()
			return m, tea.Batch(append(cmds, m.form.Init())...)
		case key.Matches(msg, m.keys.Breathe):
			m.previousState = m.state
			m.state = StateBreathe
			m.breatheStart = time.Now()
		case key.Matches(msg, m.keys.Left) && m.state == StateProgram:
			m.programDay = stats.StepDay(m.programDay, -1)
			m.programModel.SetDay(content.ProgramDayAt(m.programDay), m.session.Stats(time.Now()).ProgramDay)
		case key.Matches(msg, m.keys.Right) && m.state == StateProgram:
			m.programDay = stats.StepDay(m.programDay, 1)
			m.programModel.SetDay(content.ProgramDayAt(m.programDay), m.session.Stats(time.Now()).ProgramDay)
		default:
			cmds = append(cmds, m.updateActiveComponent(msg))
		}

	default:
		cmds = append(cmds, m.updateActiveComponent(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveComponent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state {
	case StateProgram:
		m.programModel, cmd = m.programModel.Update(msg)
	case StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
	}
	return cmd
}

func (m Model) updateForm(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, tea.Batch(cmds...)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			// Stay in the form so the user can retry or cancel with esc.
			m.form.State = huh.StateNormal
			m.statusMsg = warningStyle.Render("save failed: " + err.Error())
			return m, tea.Batch(cmds...)
		}
		m.refresh(time.Now())
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) submitForm() error {
	switch m.state {
	case StateCraving:
		_, err := m.session.AddCraving(!m.cravingForm.Smoked, m.cravingForm.Intensity)
		if err != nil {
			return err
		}
		if m.cravingForm.Smoked {
			m.statusMsg = warningStyle.Render("Logged. A slip is not a fall, keep going.")
		} else {
			m.statusMsg = statusStyle.Render("Craving resisted, well done.")
		}
	case StateMood:
		_, err := m.session.AddMood(models.Mood(m.moodForm.Mood), m.moodForm.Note)
		if err != nil {
			return err
		}
		m.statusMsg = statusStyle.Render("Mood recorded.")
	case StateLog:
		count, err := strconv.Atoi(m.logForm.Count)
		if err != nil {
			count = 0
		}
		entry, err := m.session.LogToday(count, m.logForm.Notes)
		if err != nil {
			return err
		}
		m.statusMsg = statusStyle.Render(fmt.Sprintf("Logged %s.", entry.Date))
	}
	return nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 0 {
		return fmt.Errorf("count cannot be negative")
	}
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
