/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Context describes the workflow run an action executes in, as exported by
// the runner.
type Context struct {
	EventName   string `env:"GITHUB_EVENT_NAME"`
	EventPath   string `env:"GITHUB_EVENT_PATH"`
	OutputPath  string `env:"GITHUB_OUTPUT"`
	SummaryPath string `env:"GITHUB_STEP_SUMMARY"`
	Repository  string `env:"GITHUB_REPOSITORY"`
	Actor       string `env:"GITHUB_ACTOR"`
	Workflow    string `env:"GITHUB_WORKFLOW"`
	RunID       string `env:"GITHUB_RUN_ID"`
	ActionPath  string `env:"GITHUB_ACTION_PATH"`
	Debug       bool   `env:"RUNNER_DEBUG,default=false"`
}

// LoadContext decodes the runner context from the given lookuper.
func LoadContext(ctx context.Context, lookuper envconfig.Lookuper) (*Context, error) {
	var rc Context
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &rc,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("processing runner context: %w", err)
	}
	return &rc, nil
}

// EnrichAttributes appends bounded run attributes to the provided base
// attributes. The run ID and actor are left out since they are unbounded.
func (c Context) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+2)
	copy(attrs, baseAttrs)

	if c.EventName != "" {
		attrs = append(attrs, attribute.String("event", c.EventName))
	}
	if c.Repository != "" {
		attrs = append(attrs, attribute.String("repository", c.Repository))
	}
	return attrs
}

type contextKey string

const runContextKey contextKey = "run_context"

// WithContext stores the runner context in the Go context.
func WithContext(ctx context.Context, rc Context) context.Context {
	return context.WithValue(ctx, runContextKey, rc)
}

// FromContext returns the runner context stored by WithContext, or the zero
// value when none is present.
func FromContext(ctx context.Context) Context {
	if val := ctx.Value(runContextKey); val != nil {
		if rc, ok := val.(Context); ok {
			return rc
		}
	}
	return Context{}
}
