package progress

import (
	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/studylit/internal/badges"
	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	total := t.TotalHours()
	today := t.HoursToday()

	ctx.Println(cli.HeaderStyle.Render("Study stats"))
	ctx.Printf("Total hours:  %s\n", cli.FormatHours(total))
	ctx.Printf("Today:        %s / %s %s\n", cli.FormatHours(today), cli.FormatHours(constants.DailyGoalHours), GoalBar(today, constants.DailyGoalHours, 20))
	ctx.Printf("Badges:       %d / %d\n", badges.EarnedCount(t.Badges()), len(t.Badges()))
	if next, remaining, ok := t.NextBadge(); ok {
		ctx.Printf("Next badge:   %s %s in %s\n", next.Emoji, next.Name, cli.FormatHours(remaining))
	} else {
		ctx.Println("Next badge:   every badge earned 🎉")
	}
	ctx.Println()

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(cli.MutedStyle).
		Headers("SUBJECT", "HOURS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cli.HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, st := range t.Breakdown() {
		tbl.Row(st.Subject.Emoji+" "+st.Subject.Name, cli.FormatHours(st.Hours))
	}
	ctx.Println(tbl.Render())
	return nil
}

// GoalBar renders the daily goal bar, full once value reaches goal
func GoalBar(value, goal float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio := 0.0
	if goal > 0 {
		ratio = min(max(value/goal, 0), 1)
	}
	bar := progressbar.New(progressbar.WithWidth(width), progressbar.WithDefaultGradient())
	return bar.ViewAs(ratio)
}
