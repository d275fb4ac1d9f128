// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/output"
)

// Environment variables read by the CLI.
const (
	ConfigEnv  = "TSPIN_CONFIG"
	NoColorEnv = "NO_COLOR"
)

// metaEnv is a cli.ValueSource backed by Meta's environment lookup so tests
// can supply variables without touching the process environment.
type metaEnv struct {
	key    string
	lookup func(string) (string, bool)
}

func (e metaEnv) Lookup() (string, bool) {
	if e.lookup == nil {
		return os.LookupEnv(e.key)
	}
	return e.lookup(e.key)
}

func (e metaEnv) String() string   { return "environment variable " + `"` + e.key + `"` }
func (e metaEnv) GoString() string { return "metaEnv{key:" + `"` + e.key + `"}` }

// NewGlobalFlags returns the flags every command accepts. A fresh set is
// built per app so parsed values never leak between runs.
func NewGlobalFlags(meta meta.Meta) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "configuration file to use instead of ~/.config/tailspin/config.toml",
			Sources: cli.NewValueSourceChain(metaEnv{key: ConfigEnv, lookup: meta.LookupEnv}),
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "enable colored text output",
			Value: colorDefault(meta),
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "tspin version info",
			HideDefault: true,
		},
	}
}

// NewOutputFlag constructs the --output flag for commands that render a
// configuration.
func NewOutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   output.FormatText,
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}

// colorDefault enables color when stdout is a terminal and NO_COLOR is not
// set.
func colorDefault(meta meta.Meta) bool {
	if meta.Getenv(NoColorEnv) != "" {
		return false
	}
	f, ok := meta.Stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
