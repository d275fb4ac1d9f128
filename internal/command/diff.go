// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/config"
	"github.com/tspin/tspin/internal/differ"
	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/output"
)

// diffCommandAction compares the embedded default with FILE, or with the
// resolved configuration.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	if cmd.Args().Len() > 1 {
		return usageError(cmd)
	}

	explicit := cmd.String("config")
	if cmd.Args().Len() == 1 {
		explicit = cmd.Args().First()
	}

	resolved, err := meta.Resolver().Resolve(explicit)
	if err != nil {
		return err
	}

	defaults, err := config.Default()
	if err != nil {
		return err
	}

	left, err := output.MarshalJSON(defaults)
	if err != nil {
		return err
	}
	right, err := output.MarshalJSON(resolved.Config)
	if err != nil {
		return err
	}

	log.Debugf("diffing %s against %s", config.EmbeddedSource, resolved.Source.Name())

	_, err = differ.Diff(left, right, meta.Stdout, differ.Options{
		Coloring: cmd.Bool("color"),
		Ignore:   cmd.StringSlice("ignore"),
	})
	return err
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare a configuration with the built-in default",
		UsageText: "tspin config diff [FILE] [--ignore group,...]",
		Metadata:  map[string]any{"meta": meta},
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "groups to leave out of the comparison",
			},
		},
		Action: diffCommandAction,
	}
}
