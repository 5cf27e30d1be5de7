/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"github.com/sethvargo/go-envconfig"
)

// Core is the runner surface a procedure needs besides logging, which goes
// through the clog logger in the context.
type Core interface {
	InputReader

	// SetOutput sets the named step output.
	SetOutput(name, value string) error

	// SetFailed reports message as the failure of the run. It never fails.
	SetFailed(ctx context.Context, message string)
}

// Env implements Core against a live runner.
type Env struct {
	inputs     EnvInputs
	outputPath string
	stdout     io.Writer

	mu     sync.Mutex
	failed bool
}

var _ Core = (*Env)(nil)

// NewEnv returns an Env reading inputs from lookuper and writing outputs to
// the file named by the runner context. Without an output file, outputs are
// issued as workflow commands on stdout.
func NewEnv(lookuper envconfig.Lookuper, rc *Context, stdout io.Writer) *Env {
	return &Env{
		inputs:     NewEnvInputs(lookuper),
		outputPath: rc.OutputPath,
		stdout:     stdout,
	}
}

// Input implements InputReader.
func (e *Env) Input(name string) (string, error) {
	return e.inputs.Input(name)
}

// SetOutput implements Core.
func (e *Env) SetOutput(name, value string) error {
	if e.outputPath == "" {
		_, err := fmt.Fprintln(e.stdout, Command{
			Name:       "set-output",
			Properties: map[string]string{"name": name},
			Message:    value,
		})
		return err
	}

	msg, err := keyValueMessage(name, value)
	if err != nil {
		return err
	}
	return appendFileCommand(e.outputPath, msg)
}

// SetFailed implements Core.
func (e *Env) SetFailed(ctx context.Context, message string) {
	e.mu.Lock()
	e.failed = true
	e.mu.Unlock()

	clog.ErrorContext(ctx, message)
}

// Failed reports whether SetFailed was called.
func (e *Env) Failed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.failed
}

// keyValueMessage frames a multiline-safe name/value pair for a file command.
func keyValueMessage(name, value string) (string, error) {
	delimiter := "ghadelimiter_" + uuid.NewString()
	if strings.Contains(name, delimiter) {
		return "", fmt.Errorf("unexpected input: name should not contain the delimiter %q", delimiter)
	}
	if strings.Contains(value, delimiter) {
		return "", fmt.Errorf("unexpected input: value should not contain the delimiter %q", delimiter)
	}
	return name + "<<" + delimiter + "\n" + value + "\n" + delimiter, nil
}

func appendFileCommand(path, msg string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("missing file at path: %s", path)
	} else if err != nil {
		return fmt.Errorf("open file command: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, msg+"\n"); err != nil {
		return fmt.Errorf("write file command: %w", err)
	}
	return nil
}
