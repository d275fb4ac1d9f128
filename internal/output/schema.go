// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// schemaTag is a discovered configuration key.
type schemaTag struct {
	Name string
	Type string
}

// maxSchemaDepth limits the depth of schema walking to prevent infinite
// recursion.
const maxSchemaDepth = 5

var textMarshaler = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// SchemaKeys returns the sorted key paths of every leaf in typ, derived from
// its toml tags. Slice elements are written as "name[]".
func SchemaKeys(typ reflect.Type) []string {
	tags := dumpSchemaWalker("", typ, 0)
	keys := make([]string, 0, len(tags))
	for _, tag := range tags {
		keys = append(keys, tag.Name)
	}
	sort.Strings(keys)
	return keys
}

// DumpSchema writes a sorted list of key paths and their value types for the
// provided type to w. If w is nil, os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	tags := dumpSchemaWalker("", typ, 0)
	if len(tags) == 0 {
		log.Debugf("No tags found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	width := 0
	for _, tag := range tags {
		width = max(width, len(tag.Name))
	}
	for _, tag := range tags {
		fmt.Fprintf(w, "%-*s  %s\n", width, tag.Name, tag.Type)
	}
}

// dumpSchemaWalker recursively walks a struct type discovering toml tags.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)

	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		tagValue, ok := field.Tag.Lookup("toml")
		if !ok || tagValue == "-" {
			continue
		}
		name, _, _ := strings.Cut(tagValue, ",")
		if holder != "" {
			name = holder + "." + name
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		switch {
		case ft.Implements(textMarshaler):
			tags = append(tags, schemaTag{Name: name, Type: typeName(ft)})
		case ft.Kind() == reflect.Struct && depth < maxSchemaDepth:
			tags = append(tags, dumpSchemaWalker(name, ft, depth+1)...)
		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Struct && depth < maxSchemaDepth:
			tags = append(tags, dumpSchemaWalker(name+"[]", ft.Elem(), depth+1)...)
		default:
			log.Debugf("Presumed primitive field type: %s for %s", ft.Kind(), name)
			tags = append(tags, schemaTag{Name: name, Type: typeName(ft)})
		}
	}

	return tags
}

// typeName describes a leaf type the way it is written in the file.
func typeName(typ reflect.Type) string {
	switch typ.Name() {
	case "Color":
		return "color"
	case "QuoteToken":
		return "char"
	}
	switch typ.Kind() {
	case reflect.Slice:
		return "[]" + typeName(typ.Elem())
	case reflect.Bool:
		return "bool"
	default:
		return typ.Kind().String()
	}
}
