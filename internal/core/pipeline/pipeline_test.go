// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-13
// Last Modified: 2026-10-13

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/similigh/triage-bot/internal/core/config"
)

type recordingStep struct {
	name string
	err  error
	runs *[]string
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Run(ctx *Context) error {
	*s.runs = append(*s.runs, s.name)
	return s.err
}

func newTestContext() *Context {
	return NewContext(context.Background(), &Issue{Number: 7, EventType: "issues", EventAction: "opened"}, config.Default())
}

func TestNewContext(t *testing.T) {
	ctx := newTestContext()

	if ctx.RunID == "" || ctx.Result.RunID != ctx.RunID {
		t.Errorf("Expected matching run IDs, got %q and %q", ctx.RunID, ctx.Result.RunID)
	}
	if ctx.Result.IssueNumber != 7 {
		t.Errorf("Expected issue number 7, got %d", ctx.Result.IssueNumber)
	}
	if ctx.Result.EventType != "issues" || ctx.Result.EventAction != "opened" {
		t.Errorf("Expected event to be copied into result, got %+v", ctx.Result)
	}
	if other := newTestContext(); other.RunID == ctx.RunID {
		t.Error("Expected distinct run IDs per context")
	}
}

func TestPipelineRun(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		errs     []error
		wantRuns []string
		wantErr  error
	}{
		{
			name:     "all steps succeed",
			errs:     []error{nil, nil, nil},
			wantRuns: []string{"a", "b", "c"},
		},
		{
			name:     "skip stops gracefully",
			errs:     []error{nil, ErrSkipPipeline, nil},
			wantRuns: []string{"a", "b"},
		},
		{
			name:     "failure stops with error",
			errs:     []error{boom, nil, nil},
			wantRuns: []string{"a"},
			wantErr:  boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var runs []string
			p := New()
			for i, name := range []string{"a", "b", "c"} {
				p.AddStep(&recordingStep{name: name, err: tt.errs[i], runs: &runs})
			}

			err := p.Run(newTestContext())
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if diff := cmp.Diff(tt.wantRuns, runs); diff != "" {
				t.Errorf("step runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistryBuildFromNames(t *testing.T) {
	var runs []string
	r := NewRegistry()
	r.Register("a", func(deps *Dependencies) (Step, error) {
		return &recordingStep{name: "a", runs: &runs}, nil
	})
	r.Register("broken", func(deps *Dependencies) (Step, error) {
		return nil, errors.New("no deps")
	})

	p, err := r.BuildFromNames([]string{"a"}, &Dependencies{})
	if err != nil {
		t.Fatalf("BuildFromNames failed: %v", err)
	}
	if len(p.Steps()) != 1 {
		t.Errorf("Expected 1 step, got %d", len(p.Steps()))
	}

	if _, err := r.BuildFromNames([]string{"missing"}, &Dependencies{}); err == nil {
		t.Error("Expected error for unknown step")
	}
	if _, err := r.BuildFromNames([]string{"broken"}, &Dependencies{}); err == nil {
		t.Error("Expected error from failing factory")
	}
}

func TestResolveSteps(t *testing.T) {
	if diff := cmp.Diff([]string{"x"}, ResolveSteps([]string{"x"}, WorkflowPRBoard)); diff != "" {
		t.Errorf("explicit steps should win (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Presets[WorkflowPRBoard], ResolveSteps(nil, WorkflowPRBoard)); diff != "" {
		t.Errorf("preset mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Presets[WorkflowIssueTriage], ResolveSteps(nil, "unknown")); diff != "" {
		t.Errorf("default mismatch (-want +got):\n%s", diff)
	}
}
