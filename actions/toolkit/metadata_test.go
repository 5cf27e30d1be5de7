/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMetadata(t *testing.T) {
	md, err := ParseMetadata([]byte(`
name: Example
description: An example action
inputs:
  agent:
    description: Agent to activate
    required: true
    default: amp
outputs:
  result:
    description: The activation message
runs:
  using: composite
  steps:
    - run: echo hi
      shell: bash
`))
	if err != nil {
		t.Fatalf("ParseMetadata() = %v", err)
	}

	if diff := cmp.Diff(map[string]InputSpec{
		"agent": {Description: "Agent to activate", Required: true, Default: "amp"},
	}, md.Inputs); diff != "" {
		t.Errorf("inputs (-want +got):\n%s", diff)
	}
	if md.Outputs["result"].Description != "The activation message" {
		t.Errorf("outputs = %+v", md.Outputs)
	}
	if md.Runs.Using != "composite" || len(md.Runs.Steps) != 1 {
		t.Errorf("runs = %+v", md.Runs)
	}
}

func TestParseMetadataErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"invalid yaml": "name: [",
		"missing name": "runs:\n  using: composite\n",
		"missing runs": "name: x\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseMetadata([]byte(doc)); err == nil {
				t.Error("ParseMetadata() succeeded")
			}
		})
	}
}

func TestMetadataCheckDeclared(t *testing.T) {
	md := &Metadata{
		Name:    "Dongyo",
		Inputs:  map[string]InputSpec{"agent": {}, "model": {}},
		Outputs: map[string]OutputSpec{"result": {}},
	}

	if err := md.CheckDeclared([]string{"agent", "model"}, []string{"result"}); err != nil {
		t.Errorf("CheckDeclared() = %v", err)
	}

	err := md.CheckDeclared([]string{"agent", "trigger-word"}, []string{"result", "summary"})
	if err == nil {
		t.Fatal("CheckDeclared() succeeded, want error")
	}
	for _, want := range []string{`input "trigger-word"`, `output "summary"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	if strings.Contains(err.Error(), `"agent"`) {
		t.Errorf("error %q reports a declared input", err)
	}
}
