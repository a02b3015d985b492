// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package steps contains the modular "Lego block" pipeline steps.
// Each step implements the pipeline.Step interface.
package steps

import (
	"log"
	"strings"

	"github.com/similigh/triage-bot/internal/core/config"
	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// Gatekeeper checks if the issue's repository is enabled and ignores bot activity.
// Issues from app accounts still pass unless listed in bot_users.
type Gatekeeper struct{}

// NewGatekeeper creates a new gatekeeper step.
func NewGatekeeper(deps *pipeline.Dependencies) *Gatekeeper {
	return &Gatekeeper{}
}

// Name returns the step name.
func (s *Gatekeeper) Name() string {
	return "gatekeeper"
}

// Run checks repository configuration and the event author.
func (s *Gatekeeper) Run(ctx *pipeline.Context) error {
	log.Printf("[gatekeeper] #%d, EventType=%q, EventAction=%q, Repo=%s/%s",
		ctx.Issue.Number, ctx.Issue.EventType, ctx.Issue.EventAction, ctx.Issue.Org, ctx.Issue.Repo)

	author := ctx.Issue.Sender
	if author == "" {
		author = ctx.Issue.Author
	}
	if author != "" && isBotAuthor(author, ctx.Issue.PullRequest, ctx.Config.BotUsers) {
		log.Printf("[gatekeeper] Skipping event from bot author %q", author)
		return skip(ctx, "event triggered by bot")
	}

	// If repositories list is empty, allow all (single-repo mode)
	if len(ctx.Config.Repositories) == 0 {
		log.Printf("[gatekeeper] No repositories configured, allowing all (single-repo mode)")
		return nil
	}

	repoConfig := findRepoConfig(ctx)
	if repoConfig == nil {
		return skip(ctx, "repository not configured")
	}

	if !repoConfig.Enabled {
		return skip(ctx, "repository processing disabled")
	}

	log.Printf("[gatekeeper] Repository %s/%s is enabled, proceeding", ctx.Issue.Org, ctx.Issue.Repo)
	return nil
}

func skip(ctx *pipeline.Context, reason string) error {
	ctx.Result.Skipped = true
	ctx.Result.SkipReason = reason
	return pipeline.ErrSkipPipeline
}

// isBotAuthor returns true if the given username is in the user-configured
// bot_users list. App accounts ("[bot]" suffix) only count for pull requests:
// issues they open are triaged like any other.
func isBotAuthor(author string, pullRequest bool, configBotUsers []string) bool {
	if pullRequest && strings.HasSuffix(author, "[bot]") {
		return true
	}
	for _, u := range configBotUsers {
		if strings.EqualFold(author, u) {
			return true
		}
	}
	return false
}

// findRepoConfig looks up the repository configuration.
func findRepoConfig(ctx *pipeline.Context) *config.RepositoryConfig {
	for i := range ctx.Config.Repositories {
		repo := &ctx.Config.Repositories[i]
		if strings.EqualFold(repo.Org, ctx.Issue.Org) && strings.EqualFold(repo.Repo, ctx.Issue.Repo) {
			return repo
		}
	}
	return nil
}
