// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/util"
)

// pathCommandAction reports where the configuration lives and which source
// the resolver would pick.
func pathCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args)

	resolver := meta.Resolver()
	home, err := resolver.Home()
	if err != nil {
		return err
	}
	path, err := resolver.ConventionalPath()
	if err != nil {
		return err
	}

	status := "missing"
	info, err := meta.Filesystem().Stat(path)
	switch {
	case err == nil:
		status = fmt.Sprintf("%s, modified %s", humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
	case !os.IsNotExist(err):
		status = fmt.Sprintf("unreadable (%v)", err)
	}

	src, err := resolver.Locate(cmd.String("config"))
	if err != nil {
		return err
	}
	source := src.Kind.String()
	if src.Path != "" {
		source += " " + util.Abbreviate(src.Path, home)
	}

	fmt.Fprintf(meta.Stdout, "Path:   %s\n", util.Abbreviate(path, home))
	fmt.Fprintf(meta.Stdout, "Status: %s\n", status)
	fmt.Fprintf(meta.Stdout, "Source: %s\n", source)
	return nil
}

func pathCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "path",
		Usage:     "show the configuration path and the source in use",
		UsageText: "tspin config path",
		Metadata:  map[string]any{"meta": meta},
		Action:    pathCommandAction,
	}
}
