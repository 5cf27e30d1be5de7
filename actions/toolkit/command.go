/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"fmt"
	"sort"
	"strings"
)

// Command is a workflow command, the `::name key=value::message` lines the
// runner parses out of a step's standard output.
type Command struct {
	Name       string
	Properties map[string]string
	Message    string
}

// String renders the command in its wire form with properties sorted by key.
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString("::")
	sb.WriteString(c.Name)

	if len(c.Properties) > 0 {
		keys := make([]string, 0, len(c.Properties))
		for k := range c.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" ")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, "%s=%s", k, escapeProperty(c.Properties[k]))
		}
	}

	sb.WriteString("::")
	sb.WriteString(escapeData(c.Message))
	return sb.String()
}

var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

func escapeData(s string) string {
	return dataEscaper.Replace(s)
}

func escapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}
