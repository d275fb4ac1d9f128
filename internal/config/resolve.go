// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spf13/afero"

	"github.com/tspin/tspin/internal/util"
)

const (
	// AppName is the directory under ~/.config holding the configuration.
	AppName = "tailspin"

	// FileName is the configuration file name.
	FileName = "config.toml"

	// HomeEnv is the environment variable naming the home directory.
	HomeEnv = "HOME"
)

// RelativePath is the conventional configuration location relative to the
// home directory.
var RelativePath = filepath.Join(".config", AppName, FileName)

// SourceKind tells where a resolved configuration came from.
type SourceKind int

const (
	SourceEmbedded SourceKind = iota
	SourceExplicit
	SourceUser
)

func (k SourceKind) String() string {
	switch k {
	case SourceExplicit:
		return "explicit"
	case SourceUser:
		return "user"
	default:
		return "embedded"
	}
}

// Source identifies the document a Config was decoded from. Path is empty
// for the embedded template.
type Source struct {
	Kind SourceKind
	Path string
}

// Name returns Path, or EmbeddedSource for the embedded template.
func (s Source) Name() string {
	if s.Kind == SourceEmbedded {
		return EmbeddedSource
	}
	return s.Path
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	Config Config
	Source Source
}

// Resolver decides which document to load and decodes it.
//
// Precedence:
//  1. an explicit path, when given
//  2. $HOME/.config/tailspin/config.toml, when it exists
//  3. the embedded template
type Resolver struct {
	Fs        afero.Fs
	LookupEnv func(string) (string, bool)
}

// NewResolver returns a Resolver backed by the OS filesystem and process
// environment.
func NewResolver() *Resolver {
	return &Resolver{
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// Load resolves and decodes the configuration using the OS filesystem and
// environment.
func Load(explicitPath string) (Config, error) {
	resolved, err := NewResolver().Resolve(explicitPath)
	if err != nil {
		return Config{}, err
	}
	return resolved.Config, nil
}

// Home returns the home directory from the environment. A missing or empty
// HOME is an environment error; there is no fallback.
func (r *Resolver) Home() (string, error) {
	return homeDir(r.LookupEnv)
}

// ConventionalPath returns the absolute conventional configuration path.
func (r *Resolver) ConventionalPath() (string, error) {
	home, err := r.Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, RelativePath), nil
}

// Locate picks the source without reading it. HOME is required before any
// path logic runs, even when an explicit path is given.
func (r *Resolver) Locate(explicitPath string) (Source, error) {
	home, err := r.Home()
	if err != nil {
		return Source{}, err
	}

	if explicitPath != "" {
		path, _ := util.Expand(explicitPath, home)
		log.Debugf("using explicit config: path=%s", path)
		return Source{Kind: SourceExplicit, Path: path}, nil
	}

	path := filepath.Join(home, RelativePath)
	exists, err := afero.Exists(r.fs(), path)
	if err != nil {
		return Source{}, &Error{Kind: KindIO, Op: "check config", Path: util.Abbreviate(path, home), Err: err}
	}
	if exists {
		log.Debugf("using user config: path=%s", path)
		return Source{Kind: SourceUser, Path: path}, nil
	}

	log.Debugf("no config at %s, using embedded default", path)
	return Source{Kind: SourceEmbedded}, nil
}

// Read returns the raw bytes of src.
func (r *Resolver) Read(src Source) ([]byte, error) {
	if src.Kind == SourceEmbedded {
		return DefaultTemplate(), nil
	}
	data, err := afero.ReadFile(r.fs(), src.Path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Op: "read config", Path: src.Path, Err: err}
	}
	return data, nil
}

// Resolve locates, reads and decodes the configuration. Any failure is
// returned as an *Error; nothing is partially loaded.
func (r *Resolver) Resolve(explicitPath string) (*Resolved, error) {
	src, err := r.Locate(explicitPath)
	if err != nil {
		return nil, err
	}

	data, err := r.Read(src)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(src.Name(), data)
	if err != nil {
		return nil, err
	}

	log.Debugf("config loaded: source=%s groups=%v", src.Kind, cfg.Groups.Enabled())
	return &Resolved{Config: cfg, Source: src}, nil
}

func (r *Resolver) fs() afero.Fs {
	if r.Fs == nil {
		return afero.NewOsFs()
	}
	return r.Fs
}

func homeDir(lookupEnv func(string) (string, bool)) (string, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	home, ok := lookupEnv(HomeEnv)
	if !ok || home == "" {
		return "", &Error{Kind: KindEnvironment, Op: "locate home directory", Err: ErrHomeNotSet}
	}
	return home, nil
}
