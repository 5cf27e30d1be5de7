/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Command amp-setup is the entry point of the amp-setup action. It checks the
// Node.js runtime and installs the amp CLI for comment-triggered workflows.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chainguard.dev/dongyo/actions/event"
	"chainguard.dev/dongyo/actions/installer"
	"chainguard.dev/dongyo/actions/metrics"
	"chainguard.dev/dongyo/actions/telemetry"
	"chainguard.dev/dongyo/actions/toolkit"
	"chainguard.dev/dongyo/actions/toolkit/exec"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"go.opentelemetry.io/otel/attribute"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	lookuper := envconfig.OsLookuper()

	rc, err := toolkit.LoadContext(ctx, lookuper)
	if err != nil {
		clog.FatalContextf(ctx, "loading runner context: %v", err)
	}
	ctx = clog.WithLogger(ctx, clog.New(toolkit.NewHandler(os.Stdout, rc.Debug)))
	ctx = toolkit.WithContext(ctx, *rc)

	// The trigger is filtered by the workflow's `on:` block; this is only
	// reported for debugging.
	if payload, err := event.Load(ctx, rc.EventPath); err != nil {
		clog.WarnContextf(ctx, "Unable to read event payload: %v", err)
	} else if tr, err := event.Classify(rc.EventName, payload); err == nil {
		clog.DebugContextf(ctx, "Triggered by %s", tr)
	}

	tcfg, err := telemetry.LoadConfig(ctx, lookuper)
	if err != nil {
		clog.FatalContextf(ctx, "loading telemetry config: %v", err)
	}
	providers, err := telemetry.Setup(ctx, *tcfg, "amp-setup")
	if err != nil {
		clog.WarnContextf(ctx, "Telemetry disabled: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(sctx); err != nil {
			clog.WarnContextf(ctx, "Flushing telemetry: %v", err)
		}
	}()

	steps := metrics.NewSteps("chainguard.dev/dongyo")
	steps.SetAttributeEnricher(func(ctx context.Context, base []attribute.KeyValue) []attribute.KeyValue {
		return toolkit.FromContext(ctx).EnrichAttributes(base)
	})

	res := (&installer.Installer{
		Core:    toolkit.NewEnv(lookuper, rc, os.Stdout),
		Runner:  exec.Process{},
		Config:  installer.DefaultConfig(),
		Summary: toolkit.NewSummary(rc.SummaryPath),
		Metrics: steps,
	}).Run(ctx)
	return res.ExitCode()
}
