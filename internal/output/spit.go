// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tspin/tspin/internal/config"
)

// Output formats accepted by Spit.
const (
	FormatText = "text"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats returns every supported output format, default first.
func Formats() []string {
	return []string{FormatText, FormatTOML, FormatJSON, FormatYAML}
}

// Options tune the text rendering.
type Options struct {
	// Color enables ANSI styling of the header and sample swatches.
	Color bool
	// Titles prints the column header row.
	Titles bool
	// Padding is the left padding applied to every column but the first.
	Padding int
	// Sample is the text rendered in the swatch column.
	Sample string
}

// DefaultOptions are used by the CLI unless flags say otherwise.
func DefaultOptions() Options {
	return Options{Titles: true, Padding: 2, Sample: "sample"}
}

// Spit writes cfg to w in the requested format. If w is nil, os.Stdout is
// used.
func Spit(w io.Writer, format string, cfg config.Config, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case FormatTOML:
		out, err := MarshalTOML(cfg)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case FormatJSON:
		out, err := MarshalJSON(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatText, "":
		TableWriter(Rows(cfg), opts, w)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, expected one of %s",
			format, strings.Join(Formats(), ", "))
	}
}

// MarshalTOML renders cfg in the configuration file format.
func MarshalTOML(cfg config.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf).SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal toml: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON renders cfg as indented JSON. Colors and quote tokens appear
// as strings.
func MarshalJSON(cfg config.Config) ([]byte, error) {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json: %w", err)
	}
	return out, nil
}

// Row is one styled element of a group.
type Row struct {
	Group   string
	Element string
	Style   config.Style
	// Present is false for groups missing from the configuration.
	Present bool
}

// element is a named style inside a group.
type element struct {
	name  string
	style config.Style
}

// Rows flattens cfg into one row per styled element, in schema order.
// Absent groups yield a single row with Present unset.
func Rows(cfg config.Config) []Row {
	g := cfg.Groups
	var rows []Row

	add := func(group string, present bool, elements ...element) {
		if !present {
			rows = append(rows, Row{Group: group})
			return
		}
		for _, e := range elements {
			rows = append(rows, Row{Group: group, Element: e.name, Style: e.style, Present: true})
		}
	}

	var date, number, quotes config.Style
	if g.Date != nil {
		date = g.Date.Style
	}
	add(config.GroupDate, g.Date != nil, element{"style", date})

	if g.Number != nil {
		number = g.Number.Style
	}
	add(config.GroupNumber, g.Number != nil, element{"style", number})

	quoteName := "style"
	if g.Quotes != nil {
		quotes = g.Quotes.Style
		quoteName = fmt.Sprintf("style (token %c)", rune(g.Quotes.Token))
	}
	add(config.GroupQuotes, g.Quotes != nil, element{quoteName, quotes})

	if u := g.Uuid; u != nil {
		add(config.GroupUuid, true, element{"segment", u.Segment}, element{"separator", u.Separator})
	} else {
		add(config.GroupUuid, false)
	}

	if u := g.Url; u != nil {
		add(config.GroupUrl, true,
			element{"http", u.Http},
			element{"https", u.Https},
			element{"host", u.Host},
			element{"path", u.Path},
			element{"query_params_key", u.QueryParamsKey},
			element{"query_params_value", u.QueryParamsValue},
			element{"symbols", u.Symbols})
	} else {
		add(config.GroupUrl, false)
	}

	if ip := g.Ip; ip != nil {
		add(config.GroupIp, true, element{"segment", ip.Segment}, element{"separator", ip.Separator})
	} else {
		add(config.GroupIp, false)
	}

	if p := g.Path; p != nil {
		add(config.GroupPath, true, element{"segment", p.Segment}, element{"separator", p.Separator})
	} else {
		add(config.GroupPath, false)
	}

	if len(g.Keywords) == 0 {
		add(config.GroupKeywords, false)
	}
	for _, kw := range g.Keywords {
		add(config.GroupKeywords, true, element{strings.Join(kw.Words, " "), kw.Style})
	}

	return rows
}

// TableWriter renders rows as an aligned table. Output is written to w. If w
// is nil, os.Stdout is used.
func TableWriter(rows []Row, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)
	// Render always emits escapes, so plain output gets no header styling.
	if opts.Color {
		headerStyle = headerStyle.Bold(true).Foreground(lipgloss.Color("3"))
	}

	sample := opts.Sample
	if sample == "" {
		sample = "sample"
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		if !r.Present {
			cells = append(cells, []string{r.Group, "-", "not highlighted", "-"})
			continue
		}
		cells = append(cells, []string{
			r.Group,
			r.Element,
			Describe(r.Style),
			Swatch(r.Style, sample, opts.Color),
		})
	}

	log.Debugf("rendering %d rows", len(cells))

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}
			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("GROUP", "ELEMENT", "STYLE", "SAMPLE").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}
