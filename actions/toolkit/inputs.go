/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"errors"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// InputReader reads the declared inputs of an action.
type InputReader interface {
	// Input returns the value of the named input. An input that was not
	// supplied reads as the empty string, not as an error.
	Input(name string) (string, error)
}

// EnvInputs reads inputs the way the runner passes them: as INPUT_<NAME>
// environment variables.
type EnvInputs struct {
	lookuper envconfig.Lookuper
}

var _ InputReader = EnvInputs{}

// NewEnvInputs returns an InputReader backed by the given lookuper.
func NewEnvInputs(lookuper envconfig.Lookuper) EnvInputs {
	return EnvInputs{lookuper: envconfig.PrefixLookuper("INPUT_", lookuper)}
}

// Input implements InputReader.
func (e EnvInputs) Input(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("input name must not be empty")
	}
	v, ok := e.lookuper.Lookup(inputKey(name))
	if !ok {
		return "", nil
	}
	return strings.TrimSpace(v), nil
}

// inputKey maps an input name to its variable suffix. Hyphens are kept,
// so "trigger-word" is read from INPUT_TRIGGER-WORD.
func inputKey(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}
