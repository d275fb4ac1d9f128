// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/meta"
)

// generateCommandAction writes the default template to the conventional
// path, refusing to overwrite.
func generateCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	gen, err := meta.Generator().Generate()
	if err != nil {
		return err
	}

	fmt.Fprintf(meta.Stdout, "Config file generated successfully at %s\n", gen.DisplayPath)
	return nil
}

func generateCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "write the default configuration to ~/.config/tailspin/config.toml",
		UsageText: "tspin config generate",
		Metadata:  map[string]any{"meta": meta},
		Action:    generateCommandAction,
	}
}
