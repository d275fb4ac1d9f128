// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tspin/tspin/internal/meta"
)

const bashCompletionScript = `# bash completion for tspin
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tspin()
{
    local cur prev sub
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local global="--config -c --color --help --version"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "config completion $global" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--config" || "$prev" == "-c" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text toml json yaml" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        config)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "generate show get check path diff schema" -- "$cur") )
                return 0
            fi
            sub=${COMP_WORDS[2]}
            ;;
    esac

    local opts="$global"
    case "$sub" in
        show)
            opts="$opts --output -o --padding --sample --titles -t"
            ;;
        check)
            opts="$opts --strict"
            ;;
        diff)
            opts="$opts --ignore"
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    case "$sub" in
        check|diff)
            COMPREPLY=( $(compgen -f -- "$cur") )
            ;;
    esac
    return 0
}

complete -F _tspin tspin
`

const zshCompletionScript = `#compdef tspin

_tspin() {
  local -a cmds subcmds global
  cmds=(
    'config:inspect and bootstrap the highlighter configuration'
    'completion:generate shell completion script'
  )
  subcmds=(
    'generate:write the default configuration'
    'show:print the effective configuration'
    'get:print one value of the effective configuration'
    'check:validate a configuration file'
    'path:show the configuration path and the source in use'
    'diff:compare a configuration with the built-in default'
    'schema:list every configurable key'
  )
  global=(
    '(-c --config)'{-c,--config}'[configuration file]:file:_files'
    '--color[enable colored text]'
    '(-v --version)'{-v,--version}'[version info]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tspin commands' cmds
    return
  fi

  case $words[2] in
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    config)
      if (( CURRENT == 3 )); then
        _describe -t commands 'config commands' subcmds
        return
      fi
      case $words[3] in
        show)
          _arguments -C $global \
            '(-o --output)'{-o,--output}'[output format]:format:(text toml json yaml)' \
            '--padding[column padding]:padding' \
            '--sample[sample text]:sample' \
            '(-t --titles)'{-t,--titles}'[show titles]'
          ;;
        check)
          _arguments -C $global '--strict[fail on unknown keys]' '::file:_files'
          ;;
        diff)
          _arguments -C $global '--ignore[groups to ignore]:groups' '::file:_files'
          ;;
        get)
          _arguments -C $global '1:key'
          ;;
        *)
          _arguments -C $global
          ;;
      esac
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tspin tspin
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := meta.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(meta.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(meta.Stdout, zshCompletionScript)
	default:
		return usageError(cmd)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tspin completion [bash|zsh]",
		Metadata:  map[string]any{"meta": meta},
		Action:    completionCommandAction,
	}
}
