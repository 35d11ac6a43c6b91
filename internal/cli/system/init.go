package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing database file before initializing."`
	Source string `help:"Database path or connection string to copy existing records from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	dest := ctx.Store.GetConfigPath()

	if c.Force && !postgres.IsConnString(dest) {
		if c.Source != "" && samePath(c.Source, dest) {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dest)
		}
		if _, err := os.Stat(dest); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dest); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dest)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized studylit storage at: %s\n", dest)

	if c.Source == "" {
		return nil
	}

	src, err := cli.OpenStore(c.Source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	n, err := cli.CopyRecords(ctx.Store, src)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	ctx.Printf("Copied %d record(s) from %s\n", n, src.GetConfigPath())
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
