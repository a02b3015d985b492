// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-10-16
// Last Modified: 2026-10-18

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/similigh/triage-bot/internal/core/pipeline"
)

func TestModelTracksSteps(t *testing.T) {
	m := NewModel("Triage", []string{"gatekeeper", "triage", "action_executor"}, nil)

	next, _ := m.Update(StepMsg{Step: "gatekeeper", Status: StatusSuccess})
	m = next.(Model)
	next, _ = m.Update(StepMsg{Step: "triage", Status: StatusError, Message: "boom"})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"✓ gatekeeper", "✗ triage", "boom", "action_executor", "q to quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestModelOutcome(t *testing.T) {
	tests := []struct {
		name   string
		result *pipeline.Result
		err    error
		want   []string
	}{
		{
			name:   "labels added",
			result: &pipeline.Result{IssueNumber: 12, LabelsApplied: []string{"Issue triaged", "🏔 High"}},
			want:   []string{"Labels added to #12", "Issue triaged", "🏔 High"},
		},
		{
			name:   "dry run",
			result: &pipeline.Result{IssueNumber: 12, DryRun: true, SuggestedLabels: []string{"Issue triaged"}},
			want:   []string{"dry run", "Issue triaged"},
		},
		{
			name:   "board column",
			result: &pipeline.Result{IssueNumber: 5, BoardColumn: pipeline.ColumnNeedsReview},
			want:   []string{"#5 belongs in", "needs review"},
		},
		{
			name:   "skipped",
			result: &pipeline.Result{IssueNumber: 5, Skipped: true, SkipReason: "repository processing disabled"},
			want:   []string{"Skipped #5", "repository processing disabled"},
		},
		{
			name:   "failed",
			result: &pipeline.Result{IssueNumber: 12},
			err:    errors.New("failed to add labels: 403"),
			want:   []string{"Triage failed", "403"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel("Triage", []string{"summary"}, nil)

			next, cmd := m.Update(DoneMsg{Result: tt.result, Err: tt.err})
			m = next.(Model)

			if cmd == nil {
				t.Error("Expected quit command")
			}
			if m.Result() != tt.result || !errors.Is(m.Err(), tt.err) {
				t.Errorf("Expected result and error to be kept, got %+v, %v", m.Result(), m.Err())
			}
			view := m.View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("Expected view to contain %q, got:\n%s", want, view)
				}
			}
			if strings.Contains(view, "q to quit") {
				t.Errorf("Expected no quit hint after the run, got:\n%s", view)
			}
		})
	}
}

func TestModelReadsUpdates(t *testing.T) {
	updates := make(chan StepMsg, 1)
	updates <- StepMsg{Step: "board", Status: StatusStarted}
	close(updates)

	m := NewModel("Triage", []string{"board"}, updates)
	if msg := m.nextUpdate()(); msg != (StepMsg{Step: "board", Status: StatusStarted}) {
		t.Errorf("Expected queued step update, got %#v", msg)
	}
	if msg := m.nextUpdate()(); msg != nil {
		t.Errorf("Expected nil after close, got %#v", msg)
	}
}
