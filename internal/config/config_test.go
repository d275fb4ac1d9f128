// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readTestdata returns the contents of a file under testdata/.
func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err, "failed to read testdata/%s", name)
	return data
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, GroupNames(), cfg.Groups.Enabled())
	assert.Equal(t, DefaultQuoteToken, cfg.Groups.Quotes.Token)
	assert.Equal(t, ColorMagenta, cfg.Groups.Date.Style.Fg)
	assert.True(t, cfg.Groups.Uuid.Segment.Italic)
	assert.Equal(t, ColorRed, cfg.Groups.Url.Symbols.Fg)
	require.NotEmpty(t, cfg.Groups.Keywords)
	assert.Equal(t, []string{"null", "true", "false"}, cfg.Groups.Keywords[0].Words)
}

func TestDefaultTemplate_ReturnsCopy(t *testing.T) {
	first := DefaultTemplate()
	require.NotEmpty(t, first)
	first[0] = 'X'
	assert.NotEqual(t, first[0], DefaultTemplate()[0])
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		checkFunc func(*testing.T, Config)
	}{
		{
			name: "empty document has no groups",
			doc:  "",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Equal(t, Config{}, cfg)
				assert.Empty(t, cfg.Groups.Enabled())
			},
		},
		{
			name: "empty keyword list is not enabled",
			doc:  "[groups]\nkeywords = []\n",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Empty(t, cfg.Groups.Keywords)
				assert.NotContains(t, cfg.Groups.Enabled(), GroupKeywords)
			},
		},
		{
			name: "empty groups table",
			doc:  "[groups]\n",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Empty(t, cfg.Groups.Enabled())
			},
		},
		{
			name: "style with no fields is plain",
			doc:  "[groups.date]\nstyle = {}\n",
			checkFunc: func(t *testing.T, cfg Config) {
				require.NotNil(t, cfg.Groups.Date)
				assert.Equal(t, Style{}, cfg.Groups.Date.Style)
				assert.True(t, cfg.Groups.Date.Style.IsPlain())
				assert.Equal(t, ColorNone, cfg.Groups.Date.Style.Bg)
			},
		},
		{
			name: "every style field",
			doc: `[groups.number]
style = { fg = "red", bg = "white", bold = true, faint = true, italic = true, underline = true }
`,
			checkFunc: func(t *testing.T, cfg Config) {
				require.NotNil(t, cfg.Groups.Number)
				assert.Equal(t, Style{
					Fg: ColorRed, Bg: ColorWhite,
					Bold: true, Faint: true, Italic: true, Underline: true,
				}, cfg.Groups.Number.Style)
			},
		},
		{
			name: "color names are case insensitive",
			doc:  "[groups.number]\nstyle = { fg = \"Cyan\", bg = \"BLACK\" }\n",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Equal(t, ColorCyan, cfg.Groups.Number.Style.Fg)
				assert.Equal(t, ColorBlack, cfg.Groups.Number.Style.Bg)
			},
		},
		{
			name: "quote token defaults to double quote",
			doc:  "[groups.quotes]\nstyle = { fg = \"yellow\" }\n",
			checkFunc: func(t *testing.T, cfg Config) {
				require.NotNil(t, cfg.Groups.Quotes)
				assert.Equal(t, QuoteToken('"'), cfg.Groups.Quotes.Token)
				assert.Equal(t, ColorYellow, cfg.Groups.Quotes.Style.Fg)
			},
		},
		{
			name: "explicit quote token",
			doc:  "[groups.quotes]\nstyle = {}\ntoken = \"'\"\n",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Equal(t, QuoteToken('\''), cfg.Groups.Quotes.Token)
			},
		},
		{
			name: "multibyte quote token",
			doc:  "[groups.quotes]\nstyle = {}\ntoken = \"«\"\n",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.Equal(t, QuoteToken('«'), cfg.Groups.Quotes.Token)
			},
		},
		{
			name: "absent groups stay nil",
			doc:  "[groups.number]\nstyle = {}\n",
			checkFunc: func(t *testing.T, cfg Config) {
				assert.NotNil(t, cfg.Groups.Number)
				assert.Nil(t, cfg.Groups.Date)
				assert.Nil(t, cfg.Groups.Url)
				assert.Nil(t, cfg.Groups.Keywords)
				assert.Equal(t, []string{GroupNumber}, cfg.Groups.Enabled())
			},
		},
		{
			name: "keywords keep their order",
			doc: `[[groups.keywords]]
words = ["b", "a"]
style = { fg = "red" }

[[groups.keywords]]
words = ["c"]
style = { bg = "blue" }
`,
			checkFunc: func(t *testing.T, cfg Config) {
				require.Len(t, cfg.Groups.Keywords, 2)
				assert.Equal(t, []string{"b", "a"}, cfg.Groups.Keywords[0].Words)
				assert.Equal(t, ColorRed, cfg.Groups.Keywords[0].Style.Fg)
				assert.Equal(t, []string{"c"}, cfg.Groups.Keywords[1].Words)
				assert.Equal(t, ColorBlue, cfg.Groups.Keywords[1].Style.Bg)
			},
		},
		{
			name: "unknown keys are ignored",
			doc: `version = 3

[groups.date]
style = { fg = "red", blink = true }

[groups.sparkles]
style = { fg = "red" }
`,
			checkFunc: func(t *testing.T, cfg Config) {
				require.NotNil(t, cfg.Groups.Date)
				assert.Equal(t, Style{Fg: ColorRed}, cfg.Groups.Date.Style)
				assert.Equal(t, []string{GroupDate}, cfg.Groups.Enabled())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse("test.toml", []byte(tt.doc))
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantKey string
		wantMsg string
	}{
		{
			name:    "unknown color",
			doc:     "[groups.date]\nstyle = { fg = \"purple\" }\n",
			wantMsg: `unknown color "purple"`,
		},
		{
			name:    "style is not a table",
			doc:     "[groups.date]\nstyle = \"red\"\n",
			wantMsg: "toml",
		},
		{
			name:    "quote token too long",
			doc:     "[groups.quotes]\nstyle = {}\ntoken = \"ab\"\n",
			wantMsg: "single character",
		},
		{
			name:    "quote token empty",
			doc:     "[groups.quotes]\nstyle = {}\ntoken = \"\"\n",
			wantMsg: "single character",
		},
		{
			name:    "syntax error",
			doc:     "[groups.date\nstyle = {}\n",
			wantMsg: "toml",
		},
		{
			name:    "group without its style",
			doc:     "[groups.date]\n",
			wantKey: "groups.date.style",
			wantMsg: `missing field "style"`,
		},
		{
			name:    "uuid without separator",
			doc:     "[groups.uuid]\nsegment = {}\n",
			wantKey: "groups.uuid.separator",
			wantMsg: `missing field "separator"`,
		},
		{
			name: "url missing a part",
			doc: `[groups.url]
http = {}
https = {}
host = {}
path = {}
query_params_key = {}
query_params_value = {}
`,
			wantKey: "groups.url.symbols",
			wantMsg: `missing field "symbols"`,
		},
		{
			name:    "keyword without words",
			doc:     "[[groups.keywords]]\nwords = [\"a\"]\nstyle = {}\n\n[[groups.keywords]]\nstyle = {}\n",
			wantKey: "groups.keywords[1].words",
			wantMsg: `missing field "words"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse("test.toml", []byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, Config{}, cfg, "no partial config on failure")

			assert.True(t, IsKind(err, KindSchema), "want schema error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), "test.toml")

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			if tt.wantKey != "" {
				assert.Equal(t, tt.wantKey, cfgErr.Key)
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse("bad-color.toml", readTestdata(t, "bad-color.toml"))
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, KindSchema, cfgErr.Kind)
	assert.Equal(t, 2, cfgErr.Line)
	assert.NotEmpty(t, cfgErr.Context)
	assert.Contains(t, cfgErr.Detail(), cfgErr.Context)
}

func TestParse_Testdata(t *testing.T) {
	tests := []struct {
		file        string
		wantErr     bool
		wantEnabled []string
	}{
		{file: "empty.toml", wantEnabled: nil},
		{file: "minimal.toml", wantEnabled: []string{GroupDate}},
		{file: "plain-groups.toml", wantEnabled: []string{GroupNumber, GroupQuotes}},
		{file: "unknown-keys.toml", wantEnabled: []string{GroupNumber}},
		{file: "missing-field.toml", wantErr: true},
		{file: "bad-color.toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg, err := Parse(tt.file, readTestdata(t, tt.file))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnabled, cfg.Groups.Enabled())
		})
	}
}

func TestUnknownKeys(t *testing.T) {
	keys, err := UnknownKeys("unknown-keys.toml", readTestdata(t, "unknown-keys.toml"))
	require.NoError(t, err)
	assert.Contains(t, keys, "theme")
	assert.IsIncreasing(t, keys)

	keys, err = UnknownKeys("minimal.toml", readTestdata(t, "minimal.toml"))
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = UnknownKeys(EmbeddedSource, DefaultTemplate())
	require.NoError(t, err)
	assert.Empty(t, keys, "the template must only use known keys")

	_, err = UnknownKeys("bad-color.toml", readTestdata(t, "bad-color.toml"))
	assert.True(t, IsKind(err, KindSchema))
}

func TestColor(t *testing.T) {
	for i, name := range ColorNames() {
		c, err := ParseColor(name)
		require.NoError(t, err)
		assert.Equal(t, Color(i), c)
		assert.Equal(t, name, c.String())

		text, err := c.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))
	}

	_, err := ParseColor("purple")
	assert.ErrorContains(t, err, "expected one of none, black")

	assert.Equal(t, -1, ColorNone.ANSIIndex())
	assert.Equal(t, 0, ColorBlack.ANSIIndex())
	assert.Equal(t, 7, ColorWhite.ANSIIndex())

	_, err = Color(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Color(42)", Color(42).String())
}

func TestQuoteToken_MarshalText(t *testing.T) {
	text, err := QuoteToken('`').MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "`", string(text))
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Kind: KindIO, Op: "read config", Path: "/x/config.toml", Err: os.ErrNotExist}
	assert.Equal(t, "read config /x/config.toml: file does not exist", err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, err.Error(), err.Detail())

	schema := &Error{Kind: KindSchema, Op: "parse config", Path: "c.toml", Line: 3, Column: 7, Key: "groups.date", Err: os.ErrInvalid}
	assert.Equal(t, "parse config c.toml at line 3, column 7 (groups.date): invalid argument", schema.Error())

	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "unknown", Kind(0).String())
	assert.False(t, IsKind(os.ErrInvalid, KindIO))
}
