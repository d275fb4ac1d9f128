// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// requiredKeys lists, per group, the keys that must be present whenever the
// group table itself is present. Style fields and the quote token are never
// required.
var requiredKeys = map[string][]string{
	GroupDate:     {"style"},
	GroupNumber:   {"style"},
	GroupQuotes:   {"style"},
	GroupUuid:     {"segment", "separator"},
	GroupIp:       {"segment", "separator"},
	GroupPath:     {"segment", "separator"},
	GroupUrl:      {"http", "https", "host", "path", "query_params_key", "query_params_value", "symbols"},
	GroupKeywords: {"style", "words"},
}

// Parse decodes a TOML document into a Config. source names the document
// in errors. Keys the schema does not know are ignored.
func Parse(source string, data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, schemaError(source, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, schemaError(source, err)
	}
	if err := checkRequired(source, raw); err != nil {
		return Config{}, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// UnknownKeys returns the sorted dotted paths of every key in data that the
// schema does not define. A document that fails to decode returns the same
// error Parse would.
func UnknownKeys(source string, data []byte) ([]string, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	err := dec.Decode(&cfg)
	if err == nil {
		return nil, nil
	}

	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		return nil, schemaError(source, err)
	}

	keys := make([]string, 0, len(strict.Errors))
	for _, e := range strict.Errors {
		keys = append(keys, strings.Join(e.Key(), "."))
	}
	sort.Strings(keys)
	return keys, nil
}

func schemaError(source string, err error) *Error {
	e := &Error{Kind: KindSchema, Op: "parse config", Path: source, Err: err}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		e.Line, e.Column = decodeErr.Position()
		e.Key = strings.Join(decodeErr.Key(), ".")
		e.Context = decodeErr.String()
	}
	return e
}

func missingField(source, key string) *Error {
	field := key[strings.LastIndex(key, ".")+1:]
	return &Error{
		Kind: KindSchema,
		Op:   "parse config",
		Path: source,
		Key:  key,
		Err:  fmt.Errorf("missing field %q", field),
	}
}

// checkRequired walks the undecoded document. Type errors were already
// reported by the typed decode, so anything unexpected here is skipped.
func checkRequired(source string, raw map[string]any) error {
	groups, ok := raw["groups"].(map[string]any)
	if !ok {
		return nil
	}

	for _, name := range GroupNames() {
		value, present := groups[name]
		if !present {
			continue
		}

		if name == GroupKeywords {
			entries, _ := value.([]any)
			for i, entry := range entries {
				table, _ := entry.(map[string]any)
				prefix := fmt.Sprintf("groups.%s[%d]", name, i)
				if err := requireKeys(source, prefix, table, requiredKeys[name]); err != nil {
					return err
				}
			}
			continue
		}

		table, _ := value.(map[string]any)
		if err := requireKeys(source, "groups."+name, table, requiredKeys[name]); err != nil {
			return err
		}
	}
	return nil
}

func requireKeys(source, prefix string, table map[string]any, keys []string) error {
	for _, key := range keys {
		if _, ok := table[key]; !ok {
			return missingField(source, prefix+"."+key)
		}
	}
	return nil
}
