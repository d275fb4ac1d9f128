// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/meta"
)

// configCommandBuilder constructs the "config" command and its subcommands.
func configCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "config",
		Usage:    "inspect and bootstrap the highlighter configuration",
		Metadata: map[string]any{"meta": meta},
		Commands: []*cli.Command{
			generateCommandBuilder(meta),
			showCommandBuilder(meta),
			getCommandBuilder(meta),
			checkCommandBuilder(meta),
			pathCommandBuilder(meta),
			diffCommandBuilder(meta),
			schemaCommandBuilder(meta),
		},
	}
}
