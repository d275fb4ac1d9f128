// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/config"
	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/version"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ErrorMessage renders err for the terminal. Schema errors include the
// decoder's excerpt of the offending document.
func ErrorMessage(err error) string {
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		if cfgErr.Kind == config.KindConflict {
			return fmt.Sprintf("%s: config file already exists at %s", version.Name, cfgErr.Path)
		}
		return fmt.Sprintf("%s: %s", version.Name, cfgErr.Detail())
	}
	return fmt.Sprintf("%s: %v", version.Name, err)
}

// resolve runs the resolver with the --config flag as the explicit path.
func resolve(cmd *cli.Command) (*config.Resolved, error) {
	return GetMeta(cmd).Resolver().Resolve(cmd.String("config"))
}

// usageError is returned when positional arguments are wrong.
func usageError(cmd *cli.Command) error {
	return fmt.Errorf("usage: %s", cmd.UsageText)
}
