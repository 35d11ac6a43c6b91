package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/tracker"
	"github.com/julianstephens/studylit/internal/tui/components/badges"
	"github.com/julianstephens/studylit/internal/tui/components/sessions"
)

// tabs are the states reachable with tab/shift+tab, in display order
var tabs = []struct {
	state constants.SessionState
	title string
}{
	{constants.StateLog, "Log"},
	{constants.StateHistory, "History"},
	{constants.StateBadges, "Badges"},
}

type Model struct {
	tracker       *tracker.Tracker
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	goal          progress.Model
	sessions      sessions.Model
	badges        badges.Model

	// hours is the selector value for the next session
	hours float64

	form          *huh.Form
	subjectChoice string

	// banner holds newly earned badges until the user dismisses them
	banner   []models.Badge
	deleteID string
	errMsg   string

	quitting bool
	width    int
	height   int
}

// NewModel loads the tracker from store and awards any badges the stored log already
// qualifies for; those show up in the banner immediately.
func NewModel(store storage.Provider, opts ...tracker.Option) Model {
	t := tracker.New(store, opts...)

	m := Model{
		tracker:  t,
		state:    constants.StateLog,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		goal:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		sessions: sessions.New(t.Recent(0), 0, 0),
		badges:   badges.New(t.Badges(), t.TotalHours()),
		hours:    constants.DefaultSessionHours,
	}

	earned, err := t.Evaluate()
	if err != nil {
		logger.Warn("Failed to evaluate badges on startup", "error", err)
	}
	m.showBanner(earned)
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch {
	case len(m.banner) > 0:
		keys = append(keys, m.keys.Dismiss)
	case m.state == constants.StateLog:
		keys = append(keys, m.keys.More, m.keys.Less, m.keys.Log)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// refresh pushes tracker state into the child components
func (m *Model) refresh() {
	m.sessions.SetEntries(m.tracker.Recent(0))
	m.badges.SetBadges(m.tracker.Badges(), m.tracker.TotalHours())
}

func (m *Model) showBanner(earned []models.Badge) {
	m.banner = append(m.banner, earned...)
}

// commitSession records a session for subjectID with the current selector value and
// resets the selector
func (m *Model) commitSession(subjectID string) {
	entry, earned, err := m.tracker.RecordSession(subjectID, m.hours)
	switch {
	case err != nil && entry.ID == "":
		logger.Error("Failed to record session", "error", err)
		m.errMsg = "Could not save session: " + err.Error()
		return
	case err != nil:
		logger.Error("Session recorded but badges not saved", "id", entry.ID, "error", err)
		m.errMsg = "Session logged, but badge progress was not saved. It is retried on the next start."
	default:
		m.errMsg = ""
	}
	m.hours = constants.DefaultSessionHours
	m.showBanner(earned)
	m.refresh()
}

func (m *Model) deleteSession(id string) {
	earned, err := m.tracker.DeleteSession(id)
	if err != nil {
		logger.Error("Failed to delete session", "id", id, "error", err)
		m.errMsg = "Could not delete session: " + err.Error()
		return
	}
	m.errMsg = ""
	m.showBanner(earned)
	m.refresh()
}

func newSubjectForm(choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(models.Subjects()))
	for _, s := range models.Subjects() {
		options = append(options, huh.NewOption(s.Emoji+" "+s.Name, s.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What did you study?").
				Options(options...).
				Value(choice),
		),
	).WithTheme(huh.ThemeDracula())
}
