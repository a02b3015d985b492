// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-16

// Package steps provides the summary step.
package steps

import (
	"fmt"
	"log"
	"strings"

	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// Summary renders the run report and hands it to the summary writer.
type Summary struct {
	writer pipeline.SummaryWriter
}

// NewSummary creates a new summary step.
func NewSummary(deps *pipeline.Dependencies) *Summary {
	return &Summary{
		writer: deps.Summary,
	}
}

// Name returns the step name.
func (s *Summary) Name() string {
	return "summary"
}

// Run builds the summary and writes it.
func (s *Summary) Run(ctx *pipeline.Context) error {
	ctx.Result.Summary = RenderSummary(ctx.Result)

	if s.writer != nil {
		s.writer.AddStepSummary(ctx.Result.Summary)
	}

	log.Printf("[summary] Built summary for #%d", ctx.Issue.Number)
	return nil
}

// RenderSummary renders a result as the markdown shown in the job summary.
func RenderSummary(result *pipeline.Result) string {
	var parts []string

	parts = append(parts, "## Triage summary\n")
	parts = append(parts, fmt.Sprintf("Event: `%s` / `%s`, item #%d, run `%s`\n",
		result.EventType, result.EventAction, result.IssueNumber, result.RunID))

	if result.Skipped {
		parts = append(parts, fmt.Sprintf("Skipped: %s\n", result.SkipReason))
		return strings.Join(parts, "\n")
	}

	switch {
	case len(result.LabelsApplied) > 0:
		parts = append(parts, "### Labels added\n")
		parts = append(parts, bulletList(result.LabelsApplied)...)
		parts = append(parts, "")
	case result.DryRun && len(result.SuggestedLabels) > 0:
		parts = append(parts, "### Labels to add (dry run)\n")
		parts = append(parts, bulletList(result.SuggestedLabels)...)
		parts = append(parts, "")
	}

	if result.BoardColumn != "" {
		parts = append(parts, "### Project board\n")
		parts = append(parts, fmt.Sprintf("Belongs in **%s** (not moved automatically).\n", result.BoardColumn))
	}

	return strings.Join(parts, "\n")
}

func bulletList(items []string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return lines
}
