// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes a markdown reference page for every tspin command.
package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tspin/tspin/internal/command"
	"github.com/tspin/tspin/internal/meta"
	"github.com/tspin/tspin/internal/version"
)

//go:embed templates
var templates embed.FS

// Examples maps a command path such as "config show" to usage examples.
type Examples map[string][]Example

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax  string
	Usage   string
	Default string
}

type TemplateData struct {
	ID        string
	Path      string
	Usage     string
	UsageText string
	Flags     []Flag
	Examples  []Example
	Date      string
	Version   string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen OUTPUT_DIR")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dir string) error {
	raw, err := templates.ReadFile("templates/examples.yaml")
	if err != nil {
		return err
	}
	var examples Examples
	if err := yaml.Unmarshal(raw, &examples); err != nil {
		return fmt.Errorf("failed to read examples: %w", err)
	}

	tmpl, err := template.ParseFS(templates, "templates/command.md.tmpl")
	if err != nil {
		return err
	}

	app, err := command.InitApp(context.Background(), meta.New(context.Background(), []string{version.Name}))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, data := range collect(app, nil, examples) {
		path := filepath.Join(dir, version.Name+"-"+data.ID+".md")
		fmt.Println("Generating", path)

		file, err := os.Create(path)
		if err != nil {
			return err
		}
		err = tmpl.Execute(file, data)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", path, err)
		}
	}
	return nil
}

// collect walks the command tree and returns one page per runnable command.
func collect(cmd *cli.Command, parents []string, examples Examples) []TemplateData {
	var pages []TemplateData
	for _, sub := range cmd.Commands {
		names := append(append([]string{}, parents...), sub.Name)
		if sub.Action != nil {
			key := strings.Join(names, " ")
			pages = append(pages, TemplateData{
				ID:        strings.Join(names, "-"),
				Path:      version.Name + " " + key,
				Usage:     sub.Usage,
				UsageText: sub.UsageText,
				Flags:     flags(sub),
				Examples:  examples[key],
				Date:      time.Now().Format("January 2, 2006"),
				Version:   version.Version,
			})
		}
		pages = append(pages, collect(sub, names, examples)...)
	}
	return pages
}

func flags(cmd *cli.Command) []Flag {
	var out []Flag
	for _, f := range cmd.Flags {
		names := make([]string, 0, len(f.Names()))
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}
		flag := Flag{Syntax: strings.Join(names, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Usage = df.GetUsage()
			flag.Default = df.GetValue()
		}
		out = append(out, flag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Syntax < out[j].Syntax })
	return out
}
