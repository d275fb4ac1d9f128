// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tspin/tspin/internal/command"
	"github.com/tspin/tspin/internal/log"
	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args[min(1, len(args)):] {
		if a == "--" {
			return false
		}
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(m meta.Meta) int {
	app, err := command.InitApp(m.Context, m)
	if err != nil {
		fmt.Fprintln(m.Stderr, command.ErrorMessage(err))
		log.WithError(err).Debug("app init failed")
		return 1
	}

	if err := app.Run(m.Context, m.Args); err != nil {
		fmt.Fprintln(m.Stderr, command.ErrorMessage(err))
		log.WithError(err).Debug("app run failed")
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Tracef("args captured: args=%v", args)

	if handleVersion(args, os.Stdout) {
		return 0
	}

	args = handleNakedCommand(args)

	return initAndRunApp(meta.New(ctx, args))
}
