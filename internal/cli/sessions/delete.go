package sessions

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

type DeleteCmd struct {
	ID  string `arg:"" help:"Session id (see 'studylit list')."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	entry, ok := t.Find(c.ID)
	if !ok {
		return fmt.Errorf("session not found: %s", c.ID)
	}

	if !c.Yes {
		confirmed := false
		prompt := fmt.Sprintf("Delete %s of %s from %s?",
			cli.FormatHours(entry.Hours), models.SubjectLabel(entry.SubjectID), cli.FormatDate(entry.Date, constants.DateTimeFormat))
		err := huh.NewConfirm().
			Title(prompt).
			Description("Earned badges are kept.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			WithTheme(huh.ThemeDracula()).
			Run()
		if err != nil || !confirmed {
			ctx.Println("Cancelled.")
			return nil
		}
	}

	if _, err := t.DeleteSession(c.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	ctx.Printf("%s Deleted session %s\n", cli.SuccessStyle.Render("✓"), c.ID)
	ctx.Printf("Total: %s\n", cli.FormatHours(t.TotalHours()))
	return nil
}
