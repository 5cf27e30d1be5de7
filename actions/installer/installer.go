/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package installer implements the amp-setup action, which prepares a
// runner for comment-triggered agent workflows by checking the Node.js
// runtime and installing the amp CLI globally.
package installer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"chainguard.dev/dongyo/actions/metrics"
	"chainguard.dev/dongyo/actions/toolkit"
	"chainguard.dev/dongyo/actions/toolkit/exec"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ActionName labels the metrics and spans of this action.
const ActionName = "amp-setup"

// Step statuses shown in the job summary.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusSkipped = "skipped"
)

// Config fixes what gets installed.
type Config struct {
	// NodeVersion is the Node.js major version the runner must provide.
	NodeVersion string
	// Package is the npm package installed globally.
	Package string
	// Registry is the npm registry packages are installed from.
	Registry string
}

// DefaultConfig returns the Node.js 22 / @sourcegraph/amp setup.
func DefaultConfig() Config {
	return Config{
		NodeVersion: "22",
		Package:     "@sourcegraph/amp",
		Registry:    "https://registry.npmjs.org/",
	}
}

// Installer is a single run of the amp-setup action.
type Installer struct {
	Core   toolkit.Core
	Runner exec.Runner
	Config Config

	// Environ returns the base environment of every invocation. Nil means
	// os.Environ.
	Environ func() []string
	// Summary, when set, receives a table of step outcomes after the run.
	Summary *toolkit.Summary
	// Metrics, when set, records every executed step.
	Metrics *metrics.Steps
}

type step struct {
	name    string
	message string
	command string
	args    []string
}

func (in *Installer) steps() []step {
	return []step{{
		name:    "node",
		message: fmt.Sprintf("Installing Node.js v%s...", in.Config.NodeVersion),
		command: "node",
		args:    []string{"--version"},
	}, {
		name:    "package",
		message: fmt.Sprintf("Installing %s...", in.Config.Package),
		command: "npm",
		args:    []string{"install", "-g", in.Config.Package},
	}}
}

// Env returns the environment shared by all invocations: the base
// environment with the Node.js version and npm registry overrides applied.
func (in *Installer) Env() map[string]string {
	environ := in.Environ
	if environ == nil {
		environ = os.Environ
	}
	return exec.MergeEnv(environ(), map[string]string{
		"NODE_VERSION":        in.Config.NodeVersion,
		"npm_config_registry": in.Config.Registry,
	})
}

// Run executes the steps in order and stops at the first failure, which is
// reported through Core.SetFailed with the underlying error text.
func (in *Installer) Run(ctx context.Context) toolkit.Result {
	steps := in.steps()
	statuses := make([]string, len(steps))
	for i := range statuses {
		statuses[i] = StatusSkipped
	}

	err := in.run(ctx, steps, statuses)
	in.writeSummary(ctx, steps, statuses)

	if err != nil {
		msg := "Action failed with error: " + err.Error()
		in.Core.SetFailed(ctx, msg)
		return toolkit.Failed(msg)
	}
	return toolkit.Succeeded(nil)
}

func (in *Installer) run(ctx context.Context, steps []step, statuses []string) error {
	env := in.Env()
	for i, s := range steps {
		clog.InfoContext(ctx, s.message)
		if err := in.exec(ctx, s, env); err != nil {
			statuses[i] = StatusFailure
			return err
		}
		statuses[i] = StatusSuccess
	}
	clog.InfoContext(ctx, "Setup completed successfully")
	return nil
}

func (in *Installer) exec(ctx context.Context, s step, env map[string]string) error {
	tr := otel.Tracer("chainguard.dev/dongyo/actions/installer",
		trace.WithInstrumentationVersion("1.0.0"))
	ctx, span := tr.Start(ctx, ActionName+"."+s.name, trace.WithAttributes(
		attribute.String("command", s.command),
		attribute.StringSlice("args", s.args),
	))
	defer span.End()

	start := time.Now()
	_, err := in.Runner.Exec(ctx, s.command, s.args, exec.Options{Env: env})
	in.Metrics.RecordStep(ctx, ActionName, s.name, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (in *Installer) writeSummary(ctx context.Context, steps []step, statuses []string) {
	if in.Summary == nil {
		return
	}

	rows := make([][]string, 0, len(steps))
	for i, s := range steps {
		rows = append(rows, []string{
			strings.Join(append([]string{s.command}, s.args...), " "),
			statuses[i],
		})
	}
	if err := in.Summary.AppendTable("amp setup", []string{"Command", "Status"}, rows); err != nil {
		clog.WarnContextf(ctx, "Unable to write job summary: %v", err)
	}
}
