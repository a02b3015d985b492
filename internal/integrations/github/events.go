// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-13
// Last Modified: 2026-10-15

package github

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// Event names handled by ParseEvent.
const (
	EventIssues            = "issues"
	EventPullRequest       = "pull_request"
	EventPullRequestTarget = "pull_request_target"
)

// envelope holds the fields every webhook payload carries.
type envelope struct {
	Action string             `json:"action"`
	Repo   *github.Repository `json:"repository"`
	Sender *github.User       `json:"sender"`
}

// ParseEvent decodes a webhook payload into a pipeline issue.
// Events other than issues and pull requests only fill in the event,
// repository and sender fields.
func ParseEvent(eventName string, payload []byte) (*pipeline.Issue, error) {
	switch eventName {
	case EventIssues, EventPullRequest, EventPullRequestTarget:
	default:
		var env envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			return nil, fmt.Errorf("failed to parse %s payload: %w", eventName, err)
		}
		issue := &pipeline.Issue{EventType: eventName, EventAction: env.Action}
		setRepo(issue, env.Repo, env.Sender)
		return issue, nil
	}

	event, err := github.ParseWebHook(eventName, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s payload: %w", eventName, err)
	}

	switch e := event.(type) {
	case *github.IssuesEvent:
		return fromIssue(eventName, e.GetAction(), e.GetIssue(), e.GetRepo(), e.GetSender()), nil
	case *github.PullRequestEvent:
		return fromPullRequest(eventName, e.GetAction(), e.GetPullRequest(), e.GetRepo(), e.GetSender()), nil
	case *github.PullRequestTargetEvent:
		return fromPullRequest(eventName, e.GetAction(), e.GetPullRequest(), e.GetRepo(), e.GetSender()), nil
	default:
		return nil, fmt.Errorf("unexpected payload type %T for %s", event, eventName)
	}
}

func fromIssue(eventName, action string, gi *github.Issue, repo *github.Repository, sender *github.User) *pipeline.Issue {
	issue := &pipeline.Issue{
		Number:      gi.GetNumber(),
		Title:       gi.GetTitle(),
		Body:        gi.GetBody(),
		State:       gi.GetState(),
		Author:      gi.GetUser().GetLogin(),
		URL:         gi.GetHTMLURL(),
		Labels:      labelNames(gi.Labels),
		PullRequest: gi.IsPullRequest(),
		EventType:   eventName,
		EventAction: action,
	}
	setRepo(issue, repo, sender)
	return issue
}

func fromPullRequest(eventName, action string, pr *github.PullRequest, repo *github.Repository, sender *github.User) *pipeline.Issue {
	issue := &pipeline.Issue{
		Number:      pr.GetNumber(),
		Title:       pr.GetTitle(),
		Body:        pr.GetBody(),
		State:       pr.GetState(),
		Author:      pr.GetUser().GetLogin(),
		URL:         pr.GetHTMLURL(),
		Labels:      labelNames(pr.Labels),
		PullRequest: true,
		Draft:       pr.GetDraft(),
		EventType:   eventName,
		EventAction: action,
	}
	setRepo(issue, repo, sender)
	return issue
}

func setRepo(issue *pipeline.Issue, repo *github.Repository, sender *github.User) {
	issue.Org = repo.GetOwner().GetLogin()
	issue.Repo = repo.GetName()
	issue.Sender = sender.GetLogin()
}

func labelNames(labels []*github.Label) []string {
	if len(labels) == 0 {
		return nil
	}
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if name := l.GetName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}
