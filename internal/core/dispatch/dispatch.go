// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-16

// Package dispatch picks the workflow for a webhook event and runs it.
package dispatch

import (
	"context"
	"fmt"
	"log"

	"github.com/similigh/triage-bot/internal/core/config"
	"github.com/similigh/triage-bot/internal/core/pipeline"
	"github.com/similigh/triage-bot/internal/steps"
)

// Route is the outcome of matching an event against the dispatch table.
// Exactly one of Workflow and SkipReason is set.
type Route struct {
	Workflow   string
	SkipReason string
}

// Skipped reports whether no workflow handles the event.
func (r Route) Skipped() bool {
	return r.Workflow == ""
}

// RouteFor maps an event kind and action to a workflow.
func RouteFor(issue *pipeline.Issue) Route {
	switch issue.EventType {
	case "issues":
		if issue.EventAction == "opened" {
			return Route{Workflow: pipeline.WorkflowIssueTriage}
		}
		return Route{SkipReason: fmt.Sprintf("issue action %q is not triaged", issue.EventAction)}
	case "pull_request", "pull_request_target":
		if issue.EventAction == "closed" {
			return Route{SkipReason: "pull request closed; board placement is handled outside this action"}
		}
		return Route{Workflow: pipeline.WorkflowPRBoard}
	default:
		return Route{SkipReason: fmt.Sprintf("event %q is not handled", issue.EventType)}
	}
}

// StepWrapper decorates every step of a dispatched pipeline.
type StepWrapper func(pipeline.Step) pipeline.Step

// Dispatcher runs the workflow selected for an event.
type Dispatcher struct {
	cfg      *config.Config
	deps     *pipeline.Dependencies
	registry *pipeline.Registry
	wrap     StepWrapper
}

// New creates a dispatcher with the built-in steps registered.
func New(cfg *config.Config, deps *pipeline.Dependencies) *Dispatcher {
	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	return &Dispatcher{
		cfg:      cfg,
		deps:     deps,
		registry: registry,
	}
}

// WithStepWrapper sets a decorator applied to each step before running.
func (d *Dispatcher) WithStepWrapper(wrap StepWrapper) *Dispatcher {
	d.wrap = wrap
	return d
}

// Plan returns the route and step names that Dispatch would run for issue.
func (d *Dispatcher) Plan(issue *pipeline.Issue) (Route, []string) {
	route := RouteFor(issue)
	if route.Skipped() {
		return route, nil
	}
	return route, pipeline.ResolveSteps(d.cfg.Workflows[route.Workflow], route.Workflow)
}

// Dispatch routes the event and runs the selected workflow once.
// Errors from the issue tracker are returned unchanged apart from step wrapping.
func (d *Dispatcher) Dispatch(ctx context.Context, issue *pipeline.Issue) (*pipeline.Result, error) {
	pCtx := pipeline.NewContext(ctx, issue, d.cfg)
	route, stepNames := d.Plan(issue)

	if route.Skipped() {
		log.Printf("[dispatch] Skipping %s/%s #%d: %s", issue.EventType, issue.EventAction, issue.Number, route.SkipReason)
		pCtx.Result.Skipped = true
		pCtx.Result.SkipReason = route.SkipReason
		d.writeSummary(pCtx.Result)
		return pCtx.Result, nil
	}

	pCtx.Result.Workflow = route.Workflow
	log.Printf("[dispatch] Run %s: %s/%s #%d -> %s %v",
		pCtx.RunID, issue.EventType, issue.EventAction, issue.Number, route.Workflow, stepNames)

	built, err := d.registry.BuildFromNames(stepNames, d.deps)
	if err != nil {
		return pCtx.Result, err
	}

	p := built
	if d.wrap != nil {
		p = pipeline.New()
		for _, step := range built.Steps() {
			p.AddStep(d.wrap(step))
		}
	}

	if err := p.Run(pCtx); err != nil {
		return pCtx.Result, err
	}

	// Steps that stop early never reach the summary step.
	if pCtx.Result.Skipped {
		d.writeSummary(pCtx.Result)
	}

	return pCtx.Result, nil
}

func (d *Dispatcher) writeSummary(result *pipeline.Result) {
	result.Summary = steps.RenderSummary(result)
	if d.deps.Summary != nil {
		d.deps.Summary.AddStepSummary(result.Summary)
	}
}
