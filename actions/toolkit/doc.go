/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package toolkit implements the slice of the GitHub Actions runner surface that
the dongyo actions consume: reading inputs, writing outputs, reporting
failure, logging through workflow commands and appending to the job's step
summary.

# Runner Context

The runner describes the current job through environment variables. LoadContext
decodes the ones the actions care about:

	rc, err := toolkit.LoadContext(ctx, envconfig.OsLookuper())
	if err != nil {
		return err
	}
	ctx = toolkit.WithContext(ctx, *rc)

# Logging

Log lines are written with clog. NewHandler renders each record as the
workflow command GitHub expects for its level, so a logger built on it can be
placed into the context and used everywhere:

	logger := clog.New(toolkit.NewHandler(os.Stdout, rc.Debug))
	ctx = clog.WithLogger(ctx, logger)
	clog.InfoContext(ctx, "Installing...")

# Procedures

Actions are written against the Core interface and report their terminal
state as a Result:

	env := toolkit.NewEnv(envconfig.OsLookuper(), rc, os.Stdout)
	res := proc.Run(ctx)
	os.Exit(res.ExitCode())
*/
package toolkit
