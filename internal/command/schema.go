// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/config"
	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/output"
)

func schemaCommandAction(ctx context.Context, cmd *cli.Command) error {
	output.DumpSchema(reflect.TypeOf(config.Config{}), GetMeta(cmd).Stdout)
	return nil
}

func schemaCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "schema",
		Usage:     "list every configurable key",
		UsageText: "tspin config schema",
		Metadata:  map[string]any{"meta": meta},
		Action:    schemaCommandAction,
	}
}
