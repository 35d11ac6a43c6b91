package sessions

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

type DeleteSessionMsg struct {
	ID string
}

type Item struct {
	Entry models.LogEntry
}

func (i Item) Title() string {
	return models.SubjectLabel(i.Entry.SubjectID)
}

func (i Item) Description() string {
	when := i.Entry.Date
	if t := i.Entry.Time(); !t.IsZero() {
		when = t.Local().Format(constants.DateTimeFormat)
	}
	return fmt.Sprintf("%gh | %s", i.Entry.Hours, when)
}

func (i Item) FilterValue() string { return models.SubjectLabel(i.Entry.SubjectID) }

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

// New builds the session list. entries are expected newest first.
func New(entries []models.LogEntry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Recent Sessions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(entries []models.LogEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []models.LogEntry) {
	m.list.SetItems(toItems(entries))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Delete) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteSessionMsg{ID: i.Entry.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No study sessions yet.\n  Log one from the Log tab."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
