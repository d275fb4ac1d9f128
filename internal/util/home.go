// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Abbreviate replaces a leading home directory in path with "~" for display.
// Paths outside home, and an empty home, leave path unchanged.
func Abbreviate(path string, home string) string {
	if home == "" || home == "/" {
		return path
	}
	home = filepath.Clean(home)

	switch {
	case path == home:
		return "~"
	case strings.HasPrefix(path, home+string(filepath.Separator)):
		return "~" + path[len(home):]
	default:
		return path
	}
}

// NeedsHome reports whether path starts with a "~" that Expand would
// replace.
func NeedsHome(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/")
}

// Expand replaces a leading "~" or "~/" in path with home. "~user" forms are
// left alone. It returns os.ErrInvalid if expansion is needed but home is
// empty.
func Expand(path string, home string) (string, error) {
	if !NeedsHome(path) {
		return path, nil
	}
	if home == "" {
		return "", os.ErrInvalid
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
