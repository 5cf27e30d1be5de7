/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package toolkittest provides in-memory implementations of the toolkit
// runner surface for tests.
package toolkittest

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"chainguard.dev/dongyo/actions/toolkit"
	"github.com/chainguard-dev/clog"
)

// Fake is a toolkit.Core that records every interaction.
type Fake struct {
	// Inputs holds the supplied inputs. Missing names read as "".
	Inputs map[string]string
	// InputErr, when set, is returned by every Input call.
	InputErr error
	// OutputErr, when set, is returned by every SetOutput call.
	OutputErr error

	mu         sync.Mutex
	inputCalls []string
	outputs    map[string]string
	failures   []string
}

var _ toolkit.Core = (*Fake)(nil)

// Input implements toolkit.InputReader.
func (f *Fake) Input(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputCalls = append(f.inputCalls, name)
	if f.InputErr != nil {
		return "", f.InputErr
	}
	return f.Inputs[name], nil
}

// SetOutput implements toolkit.Core.
func (f *Fake) SetOutput(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.OutputErr != nil {
		return f.OutputErr
	}
	if f.outputs == nil {
		f.outputs = make(map[string]string)
	}
	f.outputs[name] = value
	return nil
}

// SetFailed implements toolkit.Core.
func (f *Fake) SetFailed(_ context.Context, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, message)
}

// InputCalls returns the input names read, in order.
func (f *Fake) InputCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.inputCalls...)
}

// Outputs returns a copy of the outputs set so far.
func (f *Fake) Outputs() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.outputs)
}

// Failures returns every failure message reported.
func (f *Fake) Failures() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.failures...)
}

// Record is one captured log record.
type Record struct {
	Level   slog.Level
	Message string
}

// Recorder is a slog.Handler that keeps every record in memory.
type Recorder struct {
	mu      *sync.Mutex
	records *[]Record
}

var _ slog.Handler = Recorder{}

// NewRecorder returns an empty Recorder.
func NewRecorder() Recorder {
	return Recorder{mu: &sync.Mutex{}, records: &[]Record{}}
}

// WithRecorder installs a clog logger backed by a new Recorder in ctx.
func WithRecorder(ctx context.Context) (context.Context, Recorder) {
	rec := NewRecorder()
	return clog.WithLogger(ctx, clog.New(rec)), rec
}

// Enabled implements slog.Handler.
func (Recorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (r Recorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = append(*r.records, Record{Level: rec.Level, Message: rec.Message})
	return nil
}

// WithAttrs implements slog.Handler. Attributes are not recorded.
func (r Recorder) WithAttrs([]slog.Attr) slog.Handler { return r }

// WithGroup implements slog.Handler.
func (r Recorder) WithGroup(string) slog.Handler { return r }

// Records returns all captured records in order.
func (r Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), *r.records...)
}

// Messages returns the messages captured at exactly level, in order.
func (r Recorder) Messages(level slog.Level) []string {
	var msgs []string
	for _, rec := range r.Records() {
		if rec.Level == level {
			msgs = append(msgs, rec.Message)
		}
	}
	return msgs
}
