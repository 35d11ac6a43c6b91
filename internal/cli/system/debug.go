package system

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" name:"path" help:"Show the storage location."`
	Keys   *DebugKeysCmd   `cmd:"" help:"List stored record keys."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump a stored record as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{
		"path": ctx.Store.GetConfigPath(),
		"log":  logger.Path(),
	})
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	keys, err := ctx.Store.Keys()
	if err != nil {
		return err
	}
	if keys == nil {
		keys = []string{}
	}
	return printJSON(ctx, map[string][]string{"keys": keys})
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Record key, e.g. studyLog or badges."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	data, err := ctx.Store.Get(cmd.Key)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no record stored under %q", cmd.Key)
	}
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		// not JSON; show the raw value
		ctx.Println(string(data))
		return nil
	}
	ctx.Println(out.String())
	return nil
}

func printJSON(ctx *cli.Context, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(data))
	return nil
}
