/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v84/github"
)

// IssueComment is the event fired for comments on issues and pull requests.
const IssueComment = "issue_comment"

// Trigger summarizes what caused a run.
type Trigger struct {
	Event  string
	Action string

	// The fields below are only populated for issue_comment events.
	Comment     string
	Number      int
	PullRequest bool
}

// Classify inspects the payload of the named event. Events other than
// issue_comment only get their action recorded.
func Classify(eventName string, p Payload) (Trigger, error) {
	t := Trigger{
		Event:  eventName,
		Action: p.Get("action").String(),
	}
	if eventName != IssueComment {
		return t, nil
	}

	ev, err := github.ParseWebHook(eventName, p.Raw())
	if err != nil {
		return t, fmt.Errorf("parse %s payload: %w", eventName, err)
	}
	ice, ok := ev.(*github.IssueCommentEvent)
	if !ok {
		return t, fmt.Errorf("parse %s payload: unexpected type %T", eventName, ev)
	}

	t.Comment = ice.GetComment().GetBody()
	if issue := ice.GetIssue(); issue != nil {
		t.Number = issue.GetNumber()
		t.PullRequest = issue.IsPullRequest()
	}
	return t, nil
}

// IsCommentCreated reports whether the run was triggered by a new comment,
// on either an issue or a pull request.
func (t Trigger) IsCommentCreated() bool {
	return t.Event == IssueComment && t.Action == "created"
}

// Mentions reports whether the comment contains word.
func (t Trigger) Mentions(word string) bool {
	return word != "" && strings.Contains(t.Comment, word)
}

// String implements fmt.Stringer.
func (t Trigger) String() string {
	switch {
	case t.Event == IssueComment && t.PullRequest:
		return fmt.Sprintf("%s.%s on pull request #%d", t.Event, t.Action, t.Number)
	case t.Event == IssueComment && t.Number != 0:
		return fmt.Sprintf("%s.%s on issue #%d", t.Event, t.Action, t.Number)
	case t.Action != "":
		return t.Event + "." + t.Action
	default:
		return t.Event
	}
}
