// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other tspin packages to avoid import cycles.

package version

import "runtime/debug"

// Name is the binary name shown in help and version output.
const Name = "tspin"

// Version is the module version from build info, or "dev" for local builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// String returns "tspin <version>".
func String() string {
	return Name + " " + Version
}
