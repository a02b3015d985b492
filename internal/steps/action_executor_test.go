// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-15

package steps

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/similigh/triage-bot/internal/core/pipeline"
)

func newLabelledContext(labels []string) *pipeline.Context {
	ctx := newIssueContext(&pipeline.Issue{Org: "similigh", Repo: "triage-bot", Number: 11}, nil)
	ctx.Result.SuggestedLabels = labels
	return ctx
}

func TestActionExecutorAddsLabels(t *testing.T) {
	tracker := &fakeTracker{}
	labels := []string{"Issue triaged", "🏕 Medium"}
	ctx := newLabelledContext(labels)

	if err := NewActionExecutor(&pipeline.Dependencies{Tracker: tracker}).Run(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if tracker.calls != 1 {
		t.Fatalf("Expected 1 AddLabels call, got %d", tracker.calls)
	}
	if tracker.org != "similigh" || tracker.repo != "triage-bot" || tracker.number != 11 {
		t.Errorf("Unexpected target %s/%s#%d", tracker.org, tracker.repo, tracker.number)
	}
	if diff := cmp.Diff(labels, tracker.labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(labels, ctx.Result.LabelsApplied); diff != "" {
		t.Errorf("applied labels mismatch (-want +got):\n%s", diff)
	}
}

func TestActionExecutorDryRun(t *testing.T) {
	tracker := &fakeTracker{}
	ctx := newLabelledContext([]string{"Issue triaged"})

	if err := NewActionExecutor(&pipeline.Dependencies{Tracker: tracker, DryRun: true}).Run(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tracker.calls != 0 {
		t.Errorf("Expected no AddLabels call in dry run, got %d", tracker.calls)
	}
	if !ctx.Result.DryRun || len(ctx.Result.LabelsApplied) != 0 {
		t.Errorf("Unexpected result: %+v", ctx.Result)
	}
}

func TestActionExecutorConfigDryRun(t *testing.T) {
	tracker := &fakeTracker{}
	ctx := newLabelledContext([]string{"Issue triaged"})
	ctx.Config.DryRun = true

	if err := NewActionExecutor(&pipeline.Dependencies{Tracker: tracker}).Run(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tracker.calls != 0 {
		t.Errorf("Expected no AddLabels call in dry run, got %d", tracker.calls)
	}
}

func TestActionExecutorPropagatesAPIError(t *testing.T) {
	apiErr := errors.New("failed to add labels: 403")
	tracker := &fakeTracker{err: apiErr}
	ctx := newLabelledContext([]string{"Issue triaged"})

	err := NewActionExecutor(&pipeline.Dependencies{Tracker: tracker}).Run(ctx)
	if !errors.Is(err, apiErr) {
		t.Fatalf("Expected API error, got %v", err)
	}
	if len(ctx.Result.LabelsApplied) != 0 {
		t.Errorf("Expected no applied labels, got %v", ctx.Result.LabelsApplied)
	}
}

func TestActionExecutorNoTracker(t *testing.T) {
	ctx := newLabelledContext([]string{"Issue triaged"})
	if err := NewActionExecutor(&pipeline.Dependencies{}).Run(ctx); !errors.Is(err, ErrNoTracker) {
		t.Errorf("Expected ErrNoTracker, got %v", err)
	}
}

func TestActionExecutorNoLabels(t *testing.T) {
	tracker := &fakeTracker{}
	ctx := newLabelledContext(nil)
	if err := NewActionExecutor(&pipeline.Dependencies{Tracker: tracker}).Run(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tracker.calls != 0 {
		t.Errorf("Expected no AddLabels call, got %d", tracker.calls)
	}
}
