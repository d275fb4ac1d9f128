// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies configuration failures.
type Kind int

const (
	// KindEnvironment means a required environment variable is missing.
	KindEnvironment Kind = iota + 1
	// KindIO covers unreadable files, failed existence checks, directory
	// creation and write failures.
	KindIO
	// KindSchema means the document could not be decoded into a Config.
	KindSchema
	// KindConflict means the generator refused to overwrite a file.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindIO:
		return "io"
	case KindSchema:
		return "schema"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

var (
	// ErrHomeNotSet is wrapped by environment errors.
	ErrHomeNotSet = errors.New("HOME is not set")

	// ErrExists is wrapped by conflict errors.
	ErrExists = errors.New("already exists")
)

// Error is returned by every operation in this package.
type Error struct {
	Kind Kind
	// Op names the failed step, e.g. "read config" or "create directory".
	Op string
	// Path is the file involved, in display form where one was computed.
	Path string

	// Key, Line and Column locate schema errors when the decoder knows them.
	Key    string
	Line   int
	Column int
	// Context is the decoder's human-readable excerpt of the offending
	// document, if any.
	Context string

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, " (%s)", e.Key)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail returns Error() followed by the decoder context when present. This
// is the form shown to users on schema failures.
func (e *Error) Detail() string {
	if e.Context == "" {
		return e.Error()
	}
	return e.Error() + "\n\n" + e.Context
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr) && cfgErr.Kind == k
}
