// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/config"
	"github.com/tspin/tspin/internal/meta"
)

// checkCommandAction decodes FILE, or the resolved source, and reports
// whether it is valid. With --strict, keys outside the schema are errors.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	if cmd.Args().Len() > 1 {
		return usageError(cmd)
	}

	explicit := cmd.String("config")
	if cmd.Args().Len() == 1 {
		explicit = cmd.Args().First()
	}

	resolver := meta.Resolver()
	src, err := resolver.Locate(explicit)
	if err != nil {
		return err
	}
	data, err := resolver.Read(src)
	if err != nil {
		return err
	}

	cfg, err := config.Parse(src.Name(), data)
	if err != nil {
		return err
	}

	unknown, err := config.UnknownKeys(src.Name(), data)
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		if cmd.Bool("strict") {
			return fmt.Errorf("%s has unknown keys: %s", src.Name(), strings.Join(unknown, ", "))
		}
		fmt.Fprintf(meta.Stderr, "warning: ignoring unknown keys: %s\n", strings.Join(unknown, ", "))
	}

	enabled := cfg.Groups.Enabled()
	fmt.Fprintf(meta.Stdout, "OK %s (%d of %d groups enabled)\n", src.Name(), len(enabled), len(config.GroupNames()))
	return nil
}

func checkCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate a configuration file",
		UsageText: "tspin config check [FILE] [--strict]",
		Metadata:  map[string]any{"meta": meta},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail on keys the schema does not know",
				Value: false,
			},
		},
		Action: checkCommandAction,
	}
}
