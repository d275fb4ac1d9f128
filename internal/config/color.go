// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
)

// Color is a named terminal color. The zero value, ColorNone, leaves the
// terminal's current color untouched.
type Color uint8

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{
	ColorNone:    "none",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// ColorNames returns the accepted color names in declaration order.
func ColorNames() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames[:])
	return names
}

// ParseColor maps a case-insensitive color name to a Color.
func ParseColor(name string) (Color, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == want {
			return Color(i), nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q, expected one of %s", name, strings.Join(colorNames[:], ", "))
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ANSIIndex returns the 0-7 palette index of c, or -1 for ColorNone.
func (c Color) ANSIIndex() int {
	if c == ColorNone || int(c) >= len(colorNames) {
		return -1
	}
	return int(c - ColorBlack)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if int(c) >= len(colorNames) {
		return nil, fmt.Errorf("invalid color value %d", uint8(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
