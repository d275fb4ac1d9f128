// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spf13/afero"

	"github.com/tspin/tspin/internal/util"
)

// Generated describes a configuration file written by Generate.
type Generated struct {
	// Path is the absolute location of the new file.
	Path string
	// DisplayPath is Path with the home directory shown as "~".
	DisplayPath string
}

// Generator writes the embedded template to the conventional path. It never
// overwrites an existing file and never retries.
type Generator struct {
	Fs        afero.Fs
	LookupEnv func(string) (string, bool)
}

// NewGenerator returns a Generator backed by the OS filesystem and process
// environment.
func NewGenerator() *Generator {
	return &Generator{
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// GenerateDefault writes the template using the OS filesystem and
// environment.
func GenerateDefault() (Generated, error) {
	return NewGenerator().Generate()
}

// Generate creates ~/.config/tailspin/config.toml from the embedded template.
// Directories created before a later failure are left in place.
func (g *Generator) Generate() (Generated, error) {
	fs := g.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	home, err := homeDir(g.LookupEnv)
	if err != nil {
		return Generated{}, err
	}
	path := filepath.Join(home, RelativePath)
	display := util.Abbreviate(path, home)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Generated{}, &Error{Kind: KindIO, Op: "check if file exists", Path: display, Err: err}
	}
	if exists {
		return Generated{}, &Error{Kind: KindConflict, Op: "config file", Path: display, Err: ErrExists}
	}

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return Generated{}, &Error{Kind: KindIO, Op: "create the directory for", Path: display, Err: err}
	}
	log.Debugf("config dir ready: path=%s", dir)

	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:mnd
	if err != nil {
		if os.IsExist(err) {
			return Generated{}, &Error{Kind: KindConflict, Op: "config file", Path: display, Err: ErrExists}
		}
		return Generated{}, &Error{Kind: KindIO, Op: "create the config file at", Path: display, Err: err}
	}

	n, err := file.Write(defaultTemplate)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil && n != len(defaultTemplate) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(defaultTemplate))
	}
	if err != nil {
		return Generated{}, &Error{Kind: KindIO, Op: "write to the config file at", Path: display, Err: err}
	}

	log.Debugf("config generated: path=%s bytes=%d", path, n)
	return Generated{Path: path, DisplayPath: display}, nil
}
