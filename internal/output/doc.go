// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders a resolved configuration as TOML, JSON, YAML or a
// human-readable table, and lists the configurable keys.
package output
