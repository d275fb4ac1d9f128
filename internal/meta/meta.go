// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/tspin/tspin/internal/config"
)

// Meta contains runtime collaborators shared by commands: the CLI arguments,
// context, filesystem, environment lookup and output streams. Tests swap
// these for in-memory versions.
type Meta struct {
	Args      []string
	Context   context.Context
	Fs        afero.Fs
	LookupEnv func(string) (string, bool)
	Stdout    io.Writer
	Stderr    io.Writer
}

// New returns a Meta wired to the real process.
func New(ctx context.Context, args []string) Meta {
	return Meta{
		Args:      args,
		Context:   ctx,
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// Resolver returns a config.Resolver bound to m's filesystem and
// environment.
func (m Meta) Resolver() *config.Resolver {
	return &config.Resolver{Fs: m.Fs, LookupEnv: m.LookupEnv}
}

// Generator returns a config.Generator bound to m's filesystem and
// environment.
func (m Meta) Generator() *config.Generator {
	return &config.Generator{Fs: m.Fs, LookupEnv: m.LookupEnv}
}

// Filesystem returns m.Fs, or the OS filesystem when unset.
func (m Meta) Filesystem() afero.Fs {
	if m.Fs == nil {
		return afero.NewOsFs()
	}
	return m.Fs
}

// Getenv returns the value of key, or "" when unset.
func (m Meta) Getenv(key string) string {
	if m.LookupEnv == nil {
		return os.Getenv(key)
	}
	v, _ := m.LookupEnv(key)
	return v
}
