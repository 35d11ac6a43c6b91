// Package badges renders the badge gallery tab.
package badges

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(22).
			Align(lipgloss.Center)

	earnedCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("220"))

	lockedCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("244"))
)

type Model struct {
	badges []models.Badge
	total  float64
	width  int
}

func New(badges []models.Badge, total float64) Model {
	return Model{badges: badges, total: total}
}

func (m *Model) SetBadges(badges []models.Badge, total float64) {
	m.badges = badges
	m.total = total
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m Model) View() string {
	cards := make([]string, 0, len(m.badges))
	for _, b := range m.badges {
		cards = append(cards, card(b, m.total))
	}
	if len(cards) == 0 {
		return ""
	}

	perRow := 3
	if m.width > 0 {
		perRow = max(1, m.width/(lipgloss.Width(cards[0])+1))
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func card(b models.Badge, total float64) string {
	lines := []string{b.Emoji, b.Name}
	if t, ok := b.EarnedAt(); ok {
		lines = append(lines, "Earned "+t.Local().Format(constants.DateFormat))
		return earnedCardStyle.Render(strings.Join(lines, "\n"))
	}
	remaining := max(b.HoursRequired-total, 0)
	lines = append(lines, fmt.Sprintf("%gh required", b.HoursRequired), fmt.Sprintf("%gh to go", remaining))
	return lockedCardStyle.Render(strings.Join(lines, "\n"))
}
