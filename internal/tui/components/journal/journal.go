package journal

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/exhale-app/exhale/internal/models"
)

type Item struct {
	Entry models.DailyLogEntry
}

func (i Item) Title() string {
	if i.Entry.Count == 0 {
		return "🌿 " + i.Entry.Date + " · smoke-free"
	}
	return fmt.Sprintf("💨 %s · %d smoked", i.Entry.Date, i.Entry.Count)
}

func (i Item) Description() string {
	if i.Entry.Notes == "" {
		return "no notes"
	}
	return i.Entry.Notes
}

func (i Item) FilterValue() string { return i.Entry.Date + " " + i.Entry.Notes }

type KeyMap struct {
	Log     key.Binding
	Craving key.Binding
	Mood    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Log: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "log today"),
		),
		Craving: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "craving"),
		),
		Mood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mood"),
		),
	}
}

// Model lists recent daily log entries, newest first.
type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.DailyLogEntry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally by the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Log, keys.Craving, keys.Mood}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Log, keys.Craving, keys.Mood}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.DailyLogEntry) {
	m.list.SetItems(toItems(entries))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func toItems(entries []models.DailyLogEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}
