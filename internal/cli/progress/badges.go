package progress

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
)

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(cli.MutedStyle).
		Headers("", "BADGE", "REQUIRED", "EARNED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cli.HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, b := range t.Badges() {
		earned := cli.MutedStyle.Render("locked")
		if b.Earned() {
			earned = cli.SuccessStyle.Render(cli.FormatDate(b.DateEarned, constants.DateFormat))
		}
		tbl.Row(b.Emoji, b.Name, cli.FormatHours(b.HoursRequired), earned)
	}
	ctx.Println(tbl.Render())
	return nil
}
