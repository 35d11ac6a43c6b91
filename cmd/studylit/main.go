package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/cli/backups"
	"github.com/julianstephens/studylit/internal/cli/progress"
	"github.com/julianstephens/studylit/internal/cli/sessions"
	"github.com/julianstephens/studylit/internal/cli/system"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/errors"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage/postgres"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path, .json file, or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the OS keyring or $STUDYLIT_DB_CONNECTION." type:"string" default:"${default_config}" env:"STUDYLIT_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"STUDYLIT_DEBUG"`

	Init     system.InitCmd       `cmd:"" help:"Initialize studylit storage."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log      sessions.LogCmd      `cmd:"" help:"Record a study session."`
	Delete   sessions.DeleteCmd   `cmd:"" help:"Delete a study session."`
	List     sessions.ListCmd     `cmd:"" help:"List recent study sessions."`
	Import   sessions.ImportCmd   `cmd:"" help:"Import study sessions from a JSON file."`
	Stats    progress.StatsCmd    `cmd:"" help:"Show total and per-subject hours."`
	Badges   progress.BadgesCmd   `cmd:"" help:"Show the badge gallery."`
	Subjects progress.SubjectsCmd `cmd:"" help:"List the subject catalog."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Study session tracker with achievement badges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	config := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, Dir: configDir(config)}); err != nil {
		errors.Fatal(fmt.Errorf("failed to initialize logger: %w", err))
	}
	logger.Debug("Starting studylit", "command", ctx.Command(), "config", config)

	store, err := cli.OpenStore(config)
	if err != nil {
		// keyring commands exist to fix exactly this
		if !strings.HasPrefix(ctx.Command(), "keyring") {
			errors.Fatal(err)
		}
		logger.Debug("Storage unavailable for keyring command", "error", err)
	}

	appCtx := &cli.Context{Store: store}
	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// configDir is where logs live: next to the database file, or the user config
// directory for PostgreSQL and in-memory stores
func configDir(config string) string {
	if !postgres.IsConnString(config) && config != ":memory:" {
		return filepath.Dir(config)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, constants.AppName)
	}
	return "."
}
