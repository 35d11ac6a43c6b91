package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	// The TUI shows its own banner, so no console notifier here.
	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.TrackerOptions...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
