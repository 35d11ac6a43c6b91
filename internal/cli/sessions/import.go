package sessions

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/models"
)

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON array of sessions ({subjectId, hours[, id, date]})."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	var entries []models.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.File, err)
	}
	if len(entries) == 0 {
		ctx.Println("Nothing to import.")
		return nil
	}

	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	if _, err := t.Import(entries); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	ctx.Printf("%s Imported %d session(s)\n", cli.SuccessStyle.Render("✓"), len(entries))
	ctx.Printf("Total: %s\n", cli.FormatHours(t.TotalHours()))
	return nil
}
