// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/version"
)

// InitApp builds the root command. Every subcommand receives meta through
// its Metadata.
func InitApp(ctx context.Context, meta meta.Meta) (*cli.Command, error) {
	if meta.Stdout == nil || meta.Stderr == nil {
		return nil, fmt.Errorf("meta is missing output streams")
	}

	app := &cli.Command{
		Name:      version.Name,
		Usage:     "tailspin configuration manager",
		UsageText: version.Name + " [--config FILE] command [command options]",
		Writer:    meta.Stdout,
		ErrWriter: meta.Stderr,
		Metadata:  map[string]any{"meta": meta},
		Flags:     NewGlobalFlags(meta),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				fmt.Fprintln(meta.Stdout, version.String())
				return nil
			}
			return cli.ShowAppHelp(cmd)
		},
	}

	app.Commands = append(app.Commands,
		configCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sortFlags(app)

	return app, nil
}

func sortFlags(cmd *cli.Command) {
	sort.Slice(cmd.Flags, func(i, j int) bool {
		return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
	})
	for _, sub := range cmd.Commands {
		sortFlags(sub)
	}
}
