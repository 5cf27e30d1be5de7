/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package event holds the webhook payload that triggered a workflow run.
//
// The payload shape is defined by GitHub and differs per event, so it is
// kept as an opaque JSON value (object, array or scalar) and only decoded
// where a caller asks for a specific field or event type.
package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/tidwall/gjson"
)

var emptyObject = []byte("{}")

// Payload is an opaque JSON webhook payload. The zero value is the empty
// object.
type Payload struct {
	raw []byte
}

// Parse validates b as JSON and wraps it as a Payload.
func Parse(b []byte) (Payload, error) {
	b = bytes.TrimSpace(b)
	if !json.Valid(b) {
		return Payload{}, errors.New("event payload is not valid JSON")
	}
	return Payload{raw: b}, nil
}

// Load reads the payload file the runner points GITHUB_EVENT_PATH at. An
// unset path or a missing file yields the empty payload.
func Load(ctx context.Context, path string) (Payload, error) {
	if path == "" {
		return Payload{}, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		clog.WarnContextf(ctx, "GITHUB_EVENT_PATH %s does not exist", path)
		return Payload{}, nil
	} else if err != nil {
		return Payload{}, fmt.Errorf("read event payload: %w", err)
	}

	p, err := Parse(b)
	if err != nil {
		return Payload{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Raw returns the payload bytes.
func (p Payload) Raw() []byte {
	if len(p.raw) == 0 {
		return emptyObject
	}
	return p.raw
}

// Indent renders the payload with two-space indentation. Object keys keep
// the order they had in the webhook.
func (p Payload) Indent() (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, p.Raw(), "", "  "); err != nil {
		return "", fmt.Errorf("indent event payload: %w", err)
	}
	return buf.String(), nil
}

// Get looks up a dotted path such as "comment.body" or "issue.number".
// Absent fields yield a result whose Exists method reports false.
func (p Payload) Get(path string) gjson.Result {
	return gjson.GetBytes(p.Raw(), path)
}
