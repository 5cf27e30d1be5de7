/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

// Result is the terminal state of one action run: either success with its
// named outputs, or failure with the message that was reported.
type Result struct {
	Outputs map[string]string
	Failure string
}

// Succeeded returns a successful Result carrying outputs.
func Succeeded(outputs map[string]string) Result {
	return Result{Outputs: outputs}
}

// Failed returns a failed Result carrying message.
func Failed(message string) Result {
	return Result{Failure: message}
}

// Failed reports whether the run failed.
func (r Result) Failed() bool {
	return r.Failure != ""
}

// ExitCode is the process exit status the runner should observe.
func (r Result) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Describe renders err the way the runner shows a raised error: its kind
// followed by its message.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}
