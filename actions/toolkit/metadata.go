/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata is the content of an action.yml file.
type Metadata struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Author      string                `yaml:"author,omitempty"`
	Inputs      map[string]InputSpec  `yaml:"inputs,omitempty"`
	Outputs     map[string]OutputSpec `yaml:"outputs,omitempty"`
	Runs        Runs                  `yaml:"runs"`
}

// InputSpec declares one action input.
type InputSpec struct {
	Description string `yaml:"description"`
	Required    bool   `yaml:"required,omitempty"`
	Default     string `yaml:"default,omitempty"`
}

// OutputSpec declares one action output.
type OutputSpec struct {
	Description string `yaml:"description"`
	Value       string `yaml:"value,omitempty"`
}

// Runs declares how the runner starts the action.
type Runs struct {
	Using string           `yaml:"using"`
	Main  string           `yaml:"main,omitempty"`
	Image string           `yaml:"image,omitempty"`
	Steps []map[string]any `yaml:"steps,omitempty"`
}

// ParseMetadata decodes an action.yml document.
func ParseMetadata(b []byte) (*Metadata, error) {
	var md Metadata
	if err := yaml.Unmarshal(b, &md); err != nil {
		return nil, fmt.Errorf("parse action metadata: %w", err)
	}
	if md.Name == "" {
		return nil, fmt.Errorf("parse action metadata: missing name")
	}
	if md.Runs.Using == "" {
		return nil, fmt.Errorf("parse action metadata: missing runs.using")
	}
	return &md, nil
}

// LoadMetadata reads and decodes the action.yml at path.
func LoadMetadata(path string) (*Metadata, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read action metadata: %w", err)
	}
	return ParseMetadata(b)
}

// CheckDeclared reports every input or output name that the metadata does
// not declare.
func (md *Metadata) CheckDeclared(inputs, outputs []string) error {
	var errs []error
	for _, name := range inputs {
		if _, ok := md.Inputs[name]; !ok {
			errs = append(errs, fmt.Errorf("%s: input %q is not declared", md.Name, name))
		}
	}
	for _, name := range outputs {
		if _, ok := md.Outputs[name]; !ok {
			errs = append(errs, fmt.Errorf("%s: output %q is not declared", md.Name, name))
		}
	}
	return errors.Join(errs...)
}
