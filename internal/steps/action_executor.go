// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

// Package steps provides the action executor step.
package steps

import (
	"errors"
	"log"

	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// ErrNoTracker is returned when labels must be written but no client was configured.
var ErrNoTracker = errors.New("issue tracker client not configured")

// ActionExecutor applies the decided labels.
type ActionExecutor struct {
	tracker pipeline.IssueTracker
	dryRun  bool
}

// NewActionExecutor creates a new action executor step.
func NewActionExecutor(deps *pipeline.Dependencies) *ActionExecutor {
	return &ActionExecutor{
		tracker: deps.Tracker,
		dryRun:  deps.DryRun,
	}
}

// Name returns the step name.
func (s *ActionExecutor) Name() string {
	return "action_executor"
}

// Run adds the suggested labels to the issue. API failures are returned as-is.
func (s *ActionExecutor) Run(ctx *pipeline.Context) error {
	labels := ctx.Result.SuggestedLabels
	if len(labels) == 0 {
		log.Printf("[action_executor] No labels to apply on #%d", ctx.Issue.Number)
		return nil
	}

	if s.dryRun || ctx.Config.DryRun {
		log.Printf("[action_executor] DRY RUN: Would add labels %v to #%d", labels, ctx.Issue.Number)
		ctx.Result.DryRun = true
		return nil
	}

	if s.tracker == nil {
		return ErrNoTracker
	}

	if err := s.tracker.AddLabels(ctx.Ctx, ctx.Issue.Org, ctx.Issue.Repo, ctx.Issue.Number, labels); err != nil {
		return err
	}

	ctx.Result.LabelsApplied = labels
	log.Printf("[action_executor] Added labels %v to #%d", labels, ctx.Issue.Number)

	return nil
}
