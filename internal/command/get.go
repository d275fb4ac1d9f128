// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/output"
)

// getCommandAction prints the value at a gjson path of the effective
// configuration, e.g. groups.url.host.fg or groups.keywords.#.words.
func getCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	if cmd.Args().Len() != 1 {
		return usageError(cmd)
	}
	key := cmd.Args().First()

	resolved, err := resolve(cmd)
	if err != nil {
		return err
	}

	doc, err := output.MarshalJSON(resolved.Config)
	if err != nil {
		return err
	}

	result := gjson.GetBytes(doc, key)
	if !result.Exists() {
		return fmt.Errorf("key %q not found in %s", key, resolved.Source.Name())
	}

	if result.IsObject() || result.IsArray() {
		fmt.Fprintln(meta.Stdout, gjson.Get(result.Raw, "@pretty").String())
		return nil
	}
	fmt.Fprintln(meta.Stdout, result.String())
	return nil
}

func getCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print one value of the effective configuration",
		UsageText: "tspin config get KEY",
		Metadata:  map[string]any{"meta": meta},
		Action:    getCommandAction,
	}
}
