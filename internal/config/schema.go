// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"unicode/utf8"
)

// Style is a single rendering directive. Every field is optional in the
// configuration file and defaults to "no effect".
type Style struct {
	Fg        Color `toml:"fg,omitempty" json:"fg" yaml:"fg"`
	Bg        Color `toml:"bg,omitempty" json:"bg" yaml:"bg"`
	Bold      bool  `toml:"bold,omitempty" json:"bold" yaml:"bold"`
	Faint     bool  `toml:"faint,omitempty" json:"faint" yaml:"faint"`
	Italic    bool  `toml:"italic,omitempty" json:"italic" yaml:"italic"`
	Underline bool  `toml:"underline,omitempty" json:"underline" yaml:"underline"`
}

// IsPlain reports whether s renders as unstyled text.
func (s Style) IsPlain() bool {
	return s == Style{}
}

// Keyword highlights every verbatim occurrence of Words with Style.
type Keyword struct {
	Style Style    `toml:"style,inline" json:"style" yaml:"style"`
	Words []string `toml:"words" json:"words" yaml:"words"`
}

// Uuid styles the hex segments and hyphens of a UUID.
type Uuid struct {
	Segment   Style `toml:"segment,inline" json:"segment" yaml:"segment"`
	Separator Style `toml:"separator,inline" json:"separator" yaml:"separator"`
}

// Ip styles the octets and dots of an IP address.
type Ip struct {
	Segment   Style `toml:"segment,inline" json:"segment" yaml:"segment"`
	Separator Style `toml:"separator,inline" json:"separator" yaml:"separator"`
}

// FilePath styles the components and slashes of a filesystem path.
type FilePath struct {
	Segment   Style `toml:"segment,inline" json:"segment" yaml:"segment"`
	Separator Style `toml:"separator,inline" json:"separator" yaml:"separator"`
}

type Date struct {
	Style Style `toml:"style,inline" json:"style" yaml:"style"`
}

type Number struct {
	Style Style `toml:"style,inline" json:"style" yaml:"style"`
}

// DefaultQuoteToken is used when a quotes group omits its token.
const DefaultQuoteToken QuoteToken = '"'

// QuoteToken is the single character delimiting a quoted string. It is
// written as a one-character string in the configuration file.
type QuoteToken rune

// MarshalText implements encoding.TextMarshaler.
func (t QuoteToken) MarshalText() ([]byte, error) {
	return []byte(string(rune(t))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *QuoteToken) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if len(text) == 0 || size != len(text) || r == utf8.RuneError {
		return fmt.Errorf("quote token must be a single character, got %q", string(text))
	}
	*t = QuoteToken(r)
	return nil
}

// Quotes styles text enclosed by Token.
type Quotes struct {
	Style Style      `toml:"style,inline" json:"style" yaml:"style"`
	Token QuoteToken `toml:"token" json:"token" yaml:"token"`
}

// Url decomposes a URL into independently styled parts. Symbols covers the
// "://", "?", "&" and "=" delimiters.
type Url struct {
	Http             Style `toml:"http,inline" json:"http" yaml:"http"`
	Https            Style `toml:"https,inline" json:"https" yaml:"https"`
	Host             Style `toml:"host,inline" json:"host" yaml:"host"`
	Path             Style `toml:"path,inline" json:"path" yaml:"path"`
	QueryParamsKey   Style `toml:"query_params_key,inline" json:"query_params_key" yaml:"query_params_key"`
	QueryParamsValue Style `toml:"query_params_value,inline" json:"query_params_value" yaml:"query_params_value"`
	Symbols          Style `toml:"symbols,inline" json:"symbols" yaml:"symbols"`
}

// Groups holds every highlight group. A nil group is not highlighted at
// all, which is different from a present group whose styles are all plain.
type Groups struct {
	Date     *Date     `toml:"date,omitempty" json:"date,omitempty" yaml:"date,omitempty"`
	Number   *Number   `toml:"number,omitempty" json:"number,omitempty" yaml:"number,omitempty"`
	Quotes   *Quotes   `toml:"quotes,omitempty" json:"quotes,omitempty" yaml:"quotes,omitempty"`
	Uuid     *Uuid     `toml:"uuid,omitempty" json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Url      *Url      `toml:"url,omitempty" json:"url,omitempty" yaml:"url,omitempty"`
	Ip       *Ip       `toml:"ip,omitempty" json:"ip,omitempty" yaml:"ip,omitempty"`
	Path     *FilePath `toml:"path,omitempty" json:"path,omitempty" yaml:"path,omitempty"`
	// Keywords treats an empty list the same as no keywords group.
	Keywords []Keyword `toml:"keywords,omitempty" json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Group names in schema order.
const (
	GroupDate     = "date"
	GroupNumber   = "number"
	GroupQuotes   = "quotes"
	GroupUuid     = "uuid"
	GroupUrl      = "url"
	GroupIp       = "ip"
	GroupPath     = "path"
	GroupKeywords = "keywords"
)

// GroupNames returns every group name in schema order.
func GroupNames() []string {
	return []string{GroupDate, GroupNumber, GroupQuotes, GroupUuid, GroupUrl, GroupIp, GroupPath, GroupKeywords}
}

// Enabled returns the names of the groups present in g, in schema order.
// Keywords count as present when at least one keyword entry exists.
func (g Groups) Enabled() []string {
	present := map[string]bool{
		GroupDate:     g.Date != nil,
		GroupNumber:   g.Number != nil,
		GroupQuotes:   g.Quotes != nil,
		GroupUuid:     g.Uuid != nil,
		GroupUrl:      g.Url != nil,
		GroupIp:       g.Ip != nil,
		GroupPath:     g.Path != nil,
		GroupKeywords: len(g.Keywords) > 0,
	}
	var names []string
	for _, name := range GroupNames() {
		if present[name] {
			names = append(names, name)
		}
	}
	return names
}

// Config is the root of the configuration file. It is built once at startup
// and never mutated afterwards.
type Config struct {
	Groups Groups `toml:"groups" json:"groups" yaml:"groups"`
}

// applyDefaults fills fields whose default is not the Go zero value.
func (c *Config) applyDefaults() {
	if q := c.Groups.Quotes; q != nil && q.Token == 0 {
		q.Token = DefaultQuoteToken
	}
}
