/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler that writes records as GitHub workflow log lines.
// Info records are written verbatim, other levels become the matching
// workflow command (debug, warning, error).
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	debug  bool
	attrs  []slog.Attr
	prefix string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a Handler writing to w. Debug records are dropped unless
// debug is set, mirroring the runner's step debug logging switch.
func NewHandler(w io.Writer, debug bool) *Handler {
	return &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		debug: debug,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo || h.debug
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix, a)
		return true
	})

	line := sb.String()
	switch {
	case r.Level < slog.LevelInfo:
		line = Command{Name: "debug", Message: line}.String()
	case r.Level >= slog.LevelError:
		line = Command{Name: "error", Message: line}.String()
	case r.Level >= slog.LevelWarn:
		line = Command{Name: "warning", Message: line}.String()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, line)
	return err
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix = prefix + a.Key + "."
		}
		for _, ga := range group {
			writeAttr(sb, prefix, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%s", prefix, a.Key, a.Value.String())
}
