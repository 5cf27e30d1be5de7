/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSummaryWithoutPath(t *testing.T) {
	if s := NewSummary(""); s != nil {
		t.Errorf("NewSummary(\"\") = %v, want nil", s)
	}
}

func TestSummaryAppendTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o600))

	s := NewSummary(path)
	require.NoError(t, s.AppendTable("Steps", []string{"Command", "Status"}, [][]string{
		{"node --version", "success"},
		{"npm install -g @sourcegraph/amp", "skipped"},
	}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	got := string(b)

	if !strings.HasPrefix(got, "existing\n### Steps\n\n") {
		t.Errorf("summary was not appended after a heading:\n%s", got)
	}
	for _, want := range []string{"Command", "Status", "node --version", "npm install -g @sourcegraph/amp", "skipped", "|"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryAppendTableAlignment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.NoError(t, NewSummary(path).AppendTable("", []string{"Command", "Status"}, [][]string{
		{"node --version", "failure"},
	}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	// Left aligned command column, centered status column.
	sep := regexp.MustCompile(`(?m)^\|\s*:-+\s*\|\s*:-+:\s*\|$`)
	if !sep.Match(b) {
		t.Errorf("summary has no aligned header separator:\n%s", b)
	}
	if strings.HasPrefix(string(b), "###") {
		t.Errorf("empty heading rendered:\n%s", b)
	}
}
