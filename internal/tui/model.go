package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/content"
	"github.com/exhale-app/exhale/internal/journal"
	"github.com/exhale-app/exhale/internal/models"
	"github.com/exhale-app/exhale/internal/stats"
	"github.com/exhale-app/exhale/internal/tui/components/counter"
	journallist "github.com/exhale-app/exhale/internal/tui/components/journal"
	"github.com/exhale-app/exhale/internal/tui/components/program"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateProgram
	StateAchievements
	StateJournal
	StateCraving
	StateMood
	StateLog
	StateBreathe
)

// The first tabCount states are the cyclable tabs.
const tabCount = 4

const journalWindow = 14

type CravingFormModel struct {
	Smoked    bool
	Intensity int
}

type MoodFormModel struct {
	Mood string
	Note string
}

type LogFormModel struct {
	Count string
	Notes string
}

type Model struct {
	session       *app.Session
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	counter       counter.Model
	programModel  program.Model
	journalModel  journallist.Model
	form          *huh.Form
	cravingForm   *CravingFormModel
	moodForm      *MoodFormModel
	logForm       *LogFormModel
	programDay    int
	breatheStart  time.Time
	statusMsg     string
	quitting      bool
	width         int
	height        int
}

func NewModel(session *app.Session) Model {
	now := time.Now()
	snap := session.Stats(now)

	pm := program.New(0, 0)
	pm.SetDay(content.ProgramDayAt(snap.ProgramDay), snap.ProgramDay)

	jm := journallist.New(journal.RecentWindow(session.DailyLogs, journalWindow), 0, 0)

	m := Model{
		session:      session,
		state:        StateHome,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		counter:      counter.New(),
		programModel: pm,
		journalModel: jm,
		programDay:   snap.ProgramDay,
	}
	m.syncCounter(now)
	return m
}

// syncCounter refreshes everything the Home card derives from the clock.
func (m *Model) syncCounter(now time.Time) {
	snap := m.session.Stats(now)
	m.counter.SetSnapshot(snap, m.session.Profile.Currency)

	var benefit string
	if next, ok := stats.NextLocked(content.HealthBenefits, snap.Elapsed.Days); ok {
		benefit = fmt.Sprintf("%s, %d day(s) to go", next.Title,
			stats.DaysRemaining(snap.Elapsed.Days, next.Days))
	}
	m.counter.SetFooter(benefit, content.TipFor(snap.Elapsed.Days).Title)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHome:
		keys = append(keys, m.keys.Craving, m.keys.Mood, m.keys.Log, m.keys.Breathe)
	case StateProgram:
		keys = append(keys, m.keys.Left, m.keys.Right)
	case StateJournal:
		keys = append(keys, m.keys.Log, m.keys.Craving, m.keys.Mood)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}
	actions := []key.Binding{m.keys.Craving, m.keys.Mood, m.keys.Log, m.keys.Breathe}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return m.counter.Init()
}

// refresh recomputes the snapshot-driven widgets after a journal write.
func (m *Model) refresh(now time.Time) {
	snap := m.session.Stats(now)
	m.syncCounter(now)
	m.journalModel.SetEntries(journal.RecentWindow(m.session.DailyLogs, journalWindow))
	if m.programDay < snap.ProgramDay {
		m.programDay = snap.ProgramDay
	}
	m.programModel.SetDay(content.ProgramDayAt(m.programDay), snap.ProgramDay)
}

func (m *Model) newCravingForm() {
	m.cravingForm = &CravingFormModel{Intensity: 3}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Did you smoke?").
				Affirmative("Yes").
				Negative("No, resisted").
				Value(&m.cravingForm.Smoked),
			huh.NewSelect[int]().
				Title("How strong was the craving?").
				Options(
					huh.NewOption("1 · barely there", 1),
					huh.NewOption("2 · mild", 2),
					huh.NewOption("3 · moderate", 3),
					huh.NewOption("4 · strong", 4),
					huh.NewOption("5 · overwhelming", 5),
				).
				Value(&m.cravingForm.Intensity),
		),
	)
}

func (m *Model) newMoodForm() {
	m.moodForm = &MoodFormModel{Mood: string(models.MoodOkay)}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(
					huh.NewOption("Excellent", string(models.MoodExcellent)),
					huh.NewOption("Good", string(models.MoodGood)),
					huh.NewOption("Okay", string(models.MoodOkay)),
					huh.NewOption("Difficult", string(models.MoodDifficult)),
					huh.NewOption("Struggling", string(models.MoodStruggling)),
				).
				Value(&m.moodForm.Mood),
			huh.NewInput().
				Title("Note (optional)").
				Value(&m.moodForm.Note),
		),
	)
}

func (m *Model) newLogForm() {
	m.logForm = &LogFormModel{Count: "0"}
	if entry, ok := m.session.TodayLog(); ok {
		m.logForm.Count = itoa(entry.Count)
		m.logForm.Notes = entry.Notes
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Units smoked today").
				Value(&m.logForm.Count).
				Validate(validateCount),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&m.logForm.Notes),
		),
	)
}
