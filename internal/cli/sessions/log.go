package sessions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/notifier"
	"github.com/julianstephens/studylit/internal/tracker"
)

type LogCmd struct {
	Subject     string  `arg:"" optional:"" help:"Subject id or name (see 'studylit subjects')."`
	Hours       float64 `help:"Hours studied, in 0.5 steps." default:"2.5"`
	Notify      bool    `help:"Also announce new badges through the tray app."`
	Interactive bool    `short:"i" help:"Pick the subject and hours interactively."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	subjectID, hours := c.Subject, c.Hours

	if c.Interactive || subjectID == "" {
		var err error
		subjectID, hours, err = promptSession(subjectID, hours)
		if errors.Is(err, huh.ErrUserAborted) {
			ctx.Println("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	subject, err := cli.ResolveSubject(subjectID)
	if err != nil {
		return err
	}
	if hours, err = cli.ParseHours(hours); err != nil {
		return err
	}

	var extra []tracker.Notifier
	if c.Notify {
		extra = append(extra, notifier.NewTray())
	}
	t, err := ctx.Tracker(extra...)
	if err != nil {
		return err
	}

	entry, earned, err := t.RecordSession(subject.ID, hours)
	if err != nil && entry.ID == "" {
		return fmt.Errorf("failed to record session: %w", err)
	}

	ctx.Printf("%s Logged %s of %s (%s)\n",
		cli.SuccessStyle.Render("✓"), cli.FormatHours(entry.Hours), models.SubjectLabel(entry.SubjectID), entry.ID)
	ctx.Printf("Total: %s\n", cli.FormatHours(t.TotalHours()))
	if err != nil {
		// the session is saved; logging it again would count it twice
		return fmt.Errorf("session logged, but badge progress was not saved (it is retried on the next run): %w", err)
	}
	if len(earned) == 0 {
		if next, remaining, ok := t.NextBadge(); ok {
			ctx.Println(cli.MutedStyle.Render(fmt.Sprintf("%s more to %s %s", cli.FormatHours(remaining), next.Emoji, next.Name)))
		}
	}
	return nil
}

func promptSession(subjectID string, hours float64) (string, float64, error) {
	options := make([]huh.Option[string], 0, len(models.Subjects()))
	for _, s := range models.Subjects() {
		options = append(options, huh.NewOption(s.Emoji+" "+s.Name, s.ID))
	}
	if subjectID == "" {
		subjectID = options[0].Value
	}
	hoursStr := strconv.FormatFloat(hours, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Subject").
				Options(options...).
				Value(&subjectID),
			huh.NewInput().
				Title("Hours").
				Description(fmt.Sprintf("In steps of %g", constants.HoursStep)).
				Value(&hoursStr).
				Validate(func(s string) error {
					h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("enter a number")
					}
					_, err = cli.ParseHours(h)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return "", 0, err
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(hoursStr), 64)
	if err != nil {
		return "", 0, err
	}
	return subjectID, h, nil
}
