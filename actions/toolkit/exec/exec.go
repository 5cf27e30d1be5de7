/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package exec runs the external tools an action shells out to.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"sort"
	"strings"

	"github.com/chainguard-dev/clog"
)

// Options configures a single invocation.
type Options struct {
	// Env is the complete environment of the process. A nil map inherits the
	// environment of the current process.
	Env map[string]string
	// Stdout and Stderr receive the process output. Nil means os.Stdout and
	// os.Stderr, which the runner captures into the step log.
	Stdout io.Writer
	Stderr io.Writer
	// IgnoreReturnCode reports a non-zero exit through the returned code only.
	IgnoreReturnCode bool
}

// Runner invokes external commands and waits for them to exit.
type Runner interface {
	// Exec runs command with args and returns its exit code. A non-zero exit
	// is an error unless opts.IgnoreReturnCode is set.
	Exec(ctx context.Context, command string, args []string, opts Options) (int, error)
}

// Process is a Runner that spawns real processes.
type Process struct{}

var _ Runner = Process{}

// Exec implements Runner.
func (Process) Exec(ctx context.Context, command string, args []string, opts Options) (int, error) {
	path, err := osexec.LookPath(command)
	if err != nil {
		return -1, fmt.Errorf("Unable to locate executable file: %s: %w", command, err)
	}
	clog.FromContext(ctx).Info("[command]" + strings.Join(append([]string{path}, args...), " "))

	cmd := osexec.CommandContext(ctx, path, args...)
	if opts.Env != nil {
		cmd.Env = EnvList(opts.Env)
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err = cmd.Run()
	var exitErr *osexec.ExitError
	switch {
	case err == nil:
		return 0, nil

	case errors.As(err, &exitErr):
		code := exitErr.ExitCode()
		if opts.IgnoreReturnCode {
			return code, nil
		}
		return code, fmt.Errorf("The process '%s' failed with exit code %d", path, code)

	default:
		return -1, fmt.Errorf("unable to run '%s': %w", path, err)
	}
}

// MergeEnv overlays overrides on a base environment in KEY=VALUE form, as
// returned by os.Environ. Entries without '=' are ignored.
func MergeEnv(base []string, overrides map[string]string) map[string]string {
	env := make(map[string]string, len(base)+len(overrides))
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

// EnvList converts an environment map to a KEY=VALUE list sorted by key.
func EnvList(env map[string]string) []string {
	list := make([]string, 0, len(env))
	for k, v := range env {
		list = append(list, k+"="+v)
	}
	sort.Strings(list)
	return list
}
