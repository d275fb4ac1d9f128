// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/output"
)

// showCommandAction resolves the configuration and prints it.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	resolved, err := resolve(cmd)
	if err != nil {
		return err
	}

	format := cmd.String("output")
	opts := output.DefaultOptions()
	opts.Color = cmd.Bool("color")
	opts.Titles = cmd.Bool("titles")
	opts.Padding = int(cmd.Int("padding"))
	if sample := cmd.String("sample"); sample != "" {
		opts.Sample = sample
	}

	if format == output.FormatText {
		fmt.Fprintf(meta.Stdout, "Source: %s\n\n", resolved.Source.Name())
	}

	return output.Spit(meta.Stdout, format, resolved.Config, opts)
}

func showCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print the effective configuration",
		UsageText: "tspin config show [--output text|toml|json|yaml]",
		Metadata:  map[string]any{"meta": meta},
		Flags: []cli.Flag{
			NewOutputFlag(),
			&cli.IntFlag{
				Name:  "padding",
				Usage: "column padding for text output",
				Value: 2,
			},
			&cli.StringFlag{
				Name:  "sample",
				Usage: "text rendered in the sample column",
				Value: "sample",
			},
			&cli.BoolFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show titles with text output",
				Value:   true,
			},
		},
		Action: showCommandAction,
	}
}
