// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package steps

import (
	"context"

	"github.com/similigh/triage-bot/internal/core/config"
	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// fakeTracker records AddLabels calls.
type fakeTracker struct {
	calls  int
	org    string
	repo   string
	number int
	labels []string
	err    error
}

func (f *fakeTracker) AddLabels(ctx context.Context, org, repo string, number int, labels []string) error {
	f.calls++
	f.org, f.repo, f.number, f.labels = org, repo, number, labels
	return f.err
}

// fakeSummary records the summary markdown.
type fakeSummary struct {
	markdown []string
}

func (f *fakeSummary) AddStepSummary(markdown string) {
	f.markdown = append(f.markdown, markdown)
}

func newIssueContext(issue *pipeline.Issue, cfg *config.Config) *pipeline.Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return pipeline.NewContext(context.Background(), issue, cfg)
}
