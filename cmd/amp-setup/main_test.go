/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// With an empty PATH neither node nor npm resolve, so the run fails at the
// first step and the summary records the install as skipped.
func TestRunWithoutNode(t *testing.T) {
	dir := t.TempDir()
	summary := filepath.Join(dir, "summary.md")
	require.NoError(t, os.WriteFile(summary, nil, 0o600))

	t.Setenv("PATH", "")
	t.Setenv("GITHUB_STEP_SUMMARY", summary)
	t.Setenv("GITHUB_EVENT_PATH", "")
	t.Setenv("GITHUB_EVENT_NAME", "issue_comment")
	t.Setenv("RUNNER_DEBUG", "0")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	if code := run(context.Background()); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	b, err := os.ReadFile(summary)
	require.NoError(t, err)
	for _, want := range []string{"node --version", "failure", "skipped"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("summary missing %q:\n%s", want, b)
		}
	}
}

func TestRunInstallsTracerProvider(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	})

	t.Setenv("PATH", "")
	t.Setenv("GITHUB_STEP_SUMMARY", "")
	t.Setenv("GITHUB_EVENT_PATH", "")
	t.Setenv("RUNNER_DEBUG", "0")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	run(context.Background())

	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	if !ok {
		t.Fatalf("global tracer provider = %T, want *sdktrace.TracerProvider", otel.GetTracerProvider())
	}
	// run shuts the provider down on return, so new spans no longer record.
	_, span := tp.Tracer("test").Start(context.Background(), "after")
	defer span.End()
	if span.IsRecording() {
		t.Error("span recording after shutdown; telemetry was not flushed")
	}
}
