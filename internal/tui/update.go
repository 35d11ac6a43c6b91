package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/tui/components/sessions"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sessions.SetSize(msg.Width-4, msg.Height-8)
		m.badges.SetWidth(msg.Width - 4)
		m.goal.Width = min(60, max(10, msg.Width-20))
		return m, nil
	}

	switch m.state {
	case constants.StateAddSession:
		return m.updateAddSession(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(sessions.DeleteSessionMsg); ok {
		m.deleteID = msg.ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateActiveTab(msg)
	}

	// the banner swallows keys until dismissed
	if len(m.banner) > 0 {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Dismiss):
			m.banner = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = nextTab(m.state, 1)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = nextTab(m.state, -1)
		return m, nil
	}

	if m.state == constants.StateLog {
		switch {
		case key.Matches(keyMsg, m.keys.More):
			m.hours = models.IncrementHours(m.hours)
			return m, nil
		case key.Matches(keyMsg, m.keys.Less):
			m.hours = models.DecrementHours(m.hours)
			return m, nil
		case key.Matches(keyMsg, m.keys.Log):
			m.subjectChoice = ""
			m.form = newSubjectForm(&m.subjectChoice)
			m.previousState = m.state
			m.state = constants.StateAddSession
			return m, m.form.Init()
		}
		return m, nil
	}

	return m.updateActiveTab(msg)
}

func (m Model) updateActiveTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.state == constants.StateHistory {
		m.sessions, cmd = m.sessions.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.commitSession(m.subjectChoice)
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.deleteSession(m.deleteID)
		m.deleteID = ""
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.deleteID = ""
		m.state = m.previousState
	}
	return m, nil
}

func nextTab(current constants.SessionState, step int) constants.SessionState {
	idx := 0
	for i, t := range tabs {
		if t.state == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(tabs)) % len(tabs)
	return tabs[idx].state
}
