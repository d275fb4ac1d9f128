// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Identical is printed when the two documents have no differences.
const Identical = "The configurations are identical."

// Options control how a diff is rendered.
type Options struct {
	// Coloring emits ANSI colors for added and deleted lines.
	Coloring bool
	// Ignore lists group names dropped from both sides before comparing.
	Ignore []string
}

// Diff compares two JSON documents and writes an ASCII rendering of the
// differences to w, or Identical when there are none. It reports whether
// the documents differ. If w is nil, os.Stdout is used.
func Diff(left, right []byte, w io.Writer, opts Options) (bool, error) {
	log.Debugf(">> differ()")

	if w == nil {
		w = os.Stdout
	}

	left, err := prune(left, opts.Ignore)
	if err != nil {
		return false, fmt.Errorf("failed to read left document: %w", err)
	}
	right, err = prune(right, opts.Ignore)
	if err != nil {
		return false, fmt.Errorf("failed to read right document: %w", err)
	}

	log.Debugf("len(docs): %d %d", len(left), len(right))

	delta, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return false, fmt.Errorf("failed to compare configurations: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, Identical)
		return false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return false, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Coloring,
	}

	diffString, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return false, err
	}

	fmt.Fprint(w, diffString)
	return true, nil
}

// prune removes the ignored groups from doc's "groups" object.
func prune(doc []byte, ignore []string) ([]byte, error) {
	if len(ignore) == 0 {
		return doc, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(doc, &jdoc); err != nil {
		return nil, err
	}

	groups, ok := jdoc["groups"].(map[string]interface{})
	if !ok {
		return doc, nil
	}
	for _, key := range ignore {
		delete(groups, key)
	}

	return json.Marshal(jdoc)
}
