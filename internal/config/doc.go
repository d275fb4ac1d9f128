// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config defines the highlight style schema and how it is loaded.
//
// The configuration is a TOML document whose only top-level table is
// "groups". The Resolver picks the document in this order:
//   - an explicit path (the --config flag or TSPIN_CONFIG)
//   - $HOME/.config/tailspin/config.toml, if it exists
//   - the template compiled into the binary
//
// The Generator writes that same template to the conventional path so users
// have a starting point to edit. Neither exits the process; every failure is
// an *Error carrying one of the Kind values, and the CLI decides how to
// report it.
package config
