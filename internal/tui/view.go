package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case len(m.banner) > 0:
		content = m.viewBanner()
	case m.state == constants.StateLog:
		content = m.viewLog()
	case m.state == constants.StateHistory:
		content = docStyle.Render(m.sessions.View())
	case m.state == constants.StateBadges:
		content = docStyle.Render(m.badges.View())
	case m.state == constants.StateAddSession:
		content = docStyle.Render(fmt.Sprintf("Logging %gh\n\n%s", m.hours, m.form.View()))
	case m.state == constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		parts = append(parts, warningStyle.Render(m.errMsg))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == constants.StateAddSession || active == constants.StateConfirmDelete {
		active = m.previousState
	}

	out := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.state == active {
			out = append(out, activeTabStyle.Render(t.title))
		} else {
			out = append(out, inactiveTabStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m Model) viewLog() string {
	today := m.tracker.HoursToday()
	ratio := min(today/constants.DailyGoalHours, 1)

	var b strings.Builder
	fmt.Fprintf(&b, "Today: %gh of %gh\n", today, constants.DailyGoalHours)
	b.WriteString(m.goal.ViewAs(ratio))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Session length  [-]%s[+]\n", hoursStyle.Render(fmt.Sprintf("%gh", m.hours)))
	b.WriteString(mutedStyle.Render("press enter to pick a subject and log it"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Total: %gh\n", m.tracker.TotalHours())
	for _, st := range m.tracker.Breakdown() {
		line := fmt.Sprintf("  %s %-18s %6gh", st.Subject.Emoji, st.Subject.Name, st.Hours)
		if st.Hours == 0 {
			line = mutedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if next, remaining, ok := m.tracker.NextBadge(); ok {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%gh until %s %s", remaining, next.Emoji, next.Name)))
	}
	return docStyle.Render(b.String())
}

func (m Model) viewBanner() string {
	lines := []string{"🎉 New Badge Earned!", ""}
	for _, b := range m.banner {
		lines = append(lines, fmt.Sprintf("%s %s  (%gh)", b.Emoji, b.Name, b.HoursRequired))
	}
	lines = append(lines, "", mutedStyle.Render("press x to dismiss"))
	banner := bannerStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, max(m.height-4, lipgloss.Height(banner)), lipgloss.Center, lipgloss.Center, banner)
}

func (m Model) viewConfirmDelete() string {
	label := "this session"
	if e, ok := m.tracker.Find(m.deleteID); ok {
		label = fmt.Sprintf("%gh of %s", e.Hours, models.SubjectLabel(e.SubjectID))
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render("Delete "+label+"?"),
		mutedStyle.Render("Earned badges are kept."),
		"",
		"[y] Yes",
		"[n] No",
	)
	return lipgloss.Place(m.width, max(m.height-4, lipgloss.Height(body)), lipgloss.Center, lipgloss.Center, body)
}
