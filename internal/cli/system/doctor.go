package system

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/studylit/internal/aggregator"
	"github.com/julianstephens/studylit/internal/backup"
	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/migration"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/storage/sqlite"
)

// sqlStore is implemented by the SQLite and Postgres stores
type sqlStore interface {
	GetDB() *sql.DB
	Runner() (*migration.Runner, error)
}

type check struct {
	name     string
	run      func(ctx *cli.Context) error
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Study log", run: checkStudyLog, needsDB: true},
	{name: "Badges", run: checkBadges, needsDB: true},
	{name: "Pending awards", run: checkPendingAwards, needsDB: true, warnOnly: true},
	{name: "Clock/timezone", run: checkClock},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := false
	reachable := false
	for _, c := range checks {
		if c.needsDB && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
			if c.name == "Database reachable" {
				reachable = true
			}
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			failed = true
		}
	}

	ctx.Println()
	if failed {
		ctx.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	s, ok := ctx.Store.(sqlStore)
	if !ok {
		return nil
	}
	db := s.GetDB()
	if db == nil {
		return errors.New("database connection is nil")
	}
	var one int
	if err := db.QueryRow("SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	s, ok := ctx.Store.(sqlStore)
	if !ok {
		return nil
	}
	runner, err := s.Runner()
	if err != nil {
		return err
	}

	current, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	switch {
	case current > latest:
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	case current < latest:
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found, consider creating one with 'studylit backup create'")
	}
	return nil
}

// The loaders fall back silently; doctor reports what they would discard.
func checkStudyLog(ctx *cli.Context) error {
	data, err := ctx.Store.Get(constants.KeyStudyLog)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	entries, err := state.DecodeLog(data)
	if err != nil {
		return fmt.Errorf("study log would be discarded on load: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			return fmt.Errorf("duplicate session id found: %s", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

func checkBadges(ctx *cli.Context) error {
	data, err := ctx.Store.Get(constants.KeyBadges)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := state.DecodeBadges(data); err != nil {
		return fmt.Errorf("badges would be reset on load: %w", err)
	}
	return nil
}

func checkPendingAwards(ctx *cli.Context) error {
	total := aggregator.TotalHours(state.LoadLog(ctx.Store))
	for _, b := range state.LoadBadges(ctx.Store) {
		if !b.Earned() && total >= b.HoursRequired {
			return fmt.Errorf("%s %s is due but not awarded yet, it will be awarded on the next run", b.Emoji, b.Name)
		}
	}
	return nil
}

func checkClock(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		ctx.Println("   Note: timezone is UTC, daily totals use UTC days")
	}
	return nil
}
