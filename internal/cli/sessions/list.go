package sessions

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

type ListCmd struct {
	Limit int  `short:"n" help:"Number of sessions to show." default:"10"`
	All   bool `help:"Show every session."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	limit := c.Limit
	if c.All {
		limit = 0
	}
	entries := t.Recent(limit)
	if len(entries) == 0 {
		ctx.Println("No study sessions yet. Log one with 'studylit log <subject>'.")
		return nil
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(cli.MutedStyle).
		Headers("DATE", "SUBJECT", "HOURS", "ID").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cli.HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, e := range entries {
		tbl.Row(
			cli.FormatDate(e.Date, constants.DateTimeFormat),
			models.SubjectLabel(e.SubjectID),
			cli.FormatHours(e.Hours),
			e.ID,
		)
	}

	ctx.Println(tbl.Render())
	if total := len(t.Entries()); total > len(entries) {
		ctx.Println(cli.MutedStyle.Render("Showing the most recent sessions. Use --all to see all of them."))
	}
	return nil
}
