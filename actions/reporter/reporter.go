/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package reporter implements the dongyo action: it echoes its inputs and the
// triggering webhook payload into the step log and publishes an activation
// message as the "result" output.
package reporter

import (
	"context"
	"fmt"

	"chainguard.dev/dongyo/actions/event"
	"chainguard.dev/dongyo/actions/toolkit"
	"github.com/chainguard-dev/clog"
)

// Input and output names declared in action.yml.
const (
	InputAgent       = "agent"
	InputModel       = "model"
	InputTriggerWord = "trigger-word"

	OutputResult = "result"
)

// Inputs lists the inputs a run reads.
func Inputs() []string { return []string{InputAgent, InputModel, InputTriggerWord} }

// Outputs lists the outputs a successful run sets.
func Outputs() []string { return []string{OutputResult} }

// Reporter is a single run of the dongyo action.
type Reporter struct {
	Core      toolkit.Core
	Payload   event.Payload
	EventName string
}

// Run executes the action. Every failure is reported through Core.SetFailed
// and reflected in the returned Result; nothing is returned as an error.
func (r *Reporter) Run(ctx context.Context) toolkit.Result {
	result, err := r.run(ctx)
	if err != nil {
		msg := "Action failed with error: " + toolkit.Describe(err)
		r.Core.SetFailed(ctx, msg)
		return toolkit.Failed(msg)
	}
	return toolkit.Succeeded(map[string]string{OutputResult: result})
}

func (r *Reporter) run(ctx context.Context) (string, error) {
	log := clog.FromContext(ctx)

	agent, err := r.Core.Input(InputAgent)
	if err != nil {
		return "", err
	}
	model, err := r.Core.Input(InputModel)
	if err != nil {
		return "", err
	}
	triggerWord, err := r.Core.Input(InputTriggerWord)
	if err != nil {
		return "", err
	}

	log.Infof("Dongyo: Activating %s agent with model %s", agent, model)
	log.Infof("Trigger word: %s", triggerWord)

	if tr, err := event.Classify(r.EventName, r.Payload); err != nil {
		log.With("error", err).Debug("Unable to classify triggering event")
	} else {
		log.Debugf("Triggered by %s, mentions trigger word: %t", tr, tr.Mentions(triggerWord))
	}

	payload, err := r.Payload.Indent()
	if err != nil {
		return "", err
	}
	log.Info("The event payload: " + payload)

	result := fmt.Sprintf("Dongyo activated %s agent with model %s and trigger word %s", agent, model, triggerWord)
	if err := r.Core.SetOutput(OutputResult, result); err != nil {
		return "", fmt.Errorf("set output %s: %w", OutputResult, err)
	}
	log.Info(result)

	return result, nil
}
