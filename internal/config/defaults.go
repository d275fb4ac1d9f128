// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import _ "embed"

// EmbeddedSource names the built-in template in errors and logs.
const EmbeddedSource = "<embedded default>"

//go:embed data/config.toml
var defaultTemplate []byte

// DefaultTemplate returns a copy of the configuration template compiled into
// the binary.
func DefaultTemplate() []byte {
	return append([]byte(nil), defaultTemplate...)
}

// Default parses the embedded template.
func Default() (Config, error) {
	return Parse(EmbeddedSource, defaultTemplate)
}
