// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/tspin/tspin/internal/config"
	"github.com/tspin/tspin/internal/meta"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"empty", []string{}, false},
		{"binary only", []string{"tspin"}, false},
		{"long", []string{"tspin", "--version"}, true},
		{"short", []string{"tspin", "config", "-v"}, true},
		{"after terminator", []string{"tspin", "config", "get", "--", "-v"}, false},
		{"other flag", []string{"tspin", "--verbose"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, handleVersion(tt.args, &buf))
			if tt.want {
				assert.True(t, strings.HasPrefix(buf.String(), "tspin "))
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"tspin", "--help"}, handleNakedCommand([]string{"tspin"}))
	assert.Equal(t, []string{"tspin", "config"}, handleNakedCommand([]string{"tspin", "config"}))
}

func TestInitAndRunApp_ExitCodes(t *testing.T) {
	const home = "/home/tester"

	newMeta := func(fs afero.Fs, args ...string) (meta.Meta, *bytes.Buffer, *bytes.Buffer) {
		var stdout, stderr bytes.Buffer
		return meta.Meta{
			Args:    append([]string{"tspin"}, args...),
			Context: context.Background(),
			Fs:      fs,
			LookupEnv: func(k string) (string, bool) {
				if k == "HOME" {
					return home, true
				}
				return "", false
			},
			Stdout: &stdout,
			Stderr: &stderr,
		}, &stdout, &stderr
	}

	t.Run("success", func(t *testing.T) {
		m, stdout, _ := newMeta(afero.NewMemMapFs(), "config", "generate")
		assert.Equal(t, 0, initAndRunApp(m))
		assert.Contains(t, stdout.String(), "generated successfully")
	})

	t.Run("init failure", func(t *testing.T) {
		m, _, _ := newMeta(afero.NewMemMapFs(), "config", "show")
		var stderr bytes.Buffer
		m.Stdout = nil
		m.Stderr = &stderr
		assert.Equal(t, 1, initAndRunApp(m))
		assert.NotEmpty(t, stderr.String())
	})

	t.Run("conflict", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		path := filepath.Join(home, config.RelativePath)
		assert.NoError(t, afero.WriteFile(fs, path, []byte("keep"), 0o644))

		m, _, stderr := newMeta(fs, "config", "generate")
		assert.Equal(t, 2, initAndRunApp(m))
		assert.Equal(t, "tspin: config file already exists at ~/.config/tailspin/config.toml\n", stderr.String())

		data, _ := afero.ReadFile(fs, path)
		assert.Equal(t, "keep", string(data))
	})

	t.Run("schema error shows context", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		assert.NoError(t, afero.WriteFile(fs, "/bad.toml", []byte("[groups.date]\nstyle = { fg = \"purple\" }\n"), 0o644))

		m, _, stderr := newMeta(fs, "--config", "/bad.toml", "config", "show")
		assert.Equal(t, 2, initAndRunApp(m))
		assert.Contains(t, stderr.String(), "unknown color \"purple\"")
		assert.Contains(t, stderr.String(), "at line 2")
	})
}
