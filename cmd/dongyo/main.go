/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Command dongyo is the entry point of the dongyo action. It logs the agent
// configuration and the triggering event, then sets the "result" output.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"chainguard.dev/dongyo/actions/event"
	"chainguard.dev/dongyo/actions/reporter"
	"chainguard.dev/dongyo/actions/toolkit"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
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

	if err := checkMetadata(rc.ActionPath); err != nil {
		clog.WarnContextf(ctx, "Action metadata is out of date: %v", err)
	}

	core := toolkit.NewEnv(lookuper, rc, os.Stdout)

	payload, err := event.Load(ctx, rc.EventPath)
	if err != nil {
		core.SetFailed(ctx, "Action failed with error: "+toolkit.Describe(err))
		return 1
	}

	res := (&reporter.Reporter{
		Core:      core,
		Payload:   payload,
		EventName: rc.EventName,
	}).Run(ctx)
	return res.ExitCode()
}

// checkMetadata verifies that the action.yml shipped next to the action
// declares every input and output the reporter uses. Outside of a runner
// there is no action path and nothing to check.
func checkMetadata(actionPath string) error {
	if actionPath == "" {
		return nil
	}
	md, err := toolkit.LoadMetadata(filepath.Join(actionPath, "action.yml"))
	if err != nil {
		return err
	}
	return md.CheckDeclared(reporter.Inputs(), reporter.Outputs())
}
