// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-18

package steps

import (
	"log"

	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// Board decides which project board column a pull request belongs in.
// The move itself is not performed; the decision is logged and reported.
type Board struct {
	enabled bool
}

// NewBoard creates a new board step.
func NewBoard(deps *pipeline.Dependencies) *Board {
	return &Board{
		enabled: deps.BoardEnabled,
	}
}

// Name returns the step name.
func (s *Board) Name() string {
	return "board"
}

// Run records the board column for the pull request.
func (s *Board) Run(ctx *pipeline.Context) error {
	column, ok := BoardColumnFor(ctx.Issue)
	if !ok {
		log.Printf("[board] #%d needs no board change", ctx.Issue.Number)
		return nil
	}

	ctx.Result.BoardColumn = column

	if !s.enabled {
		log.Printf("[board] No projects token, #%d stays where it is (wanted %q)", ctx.Issue.Number, column)
		return nil
	}

	// Cards are not moved; the column is only reported.
	log.Printf("[board] #%d belongs in %q", ctx.Issue.Number, column)
	return nil
}

// BoardColumnFor returns the column a pull request should move to.
// Closed pull requests are left alone; reopened and draft ones go to
// in progress; anything else open is ready for review.
func BoardColumnFor(issue *pipeline.Issue) (pipeline.BoardColumn, bool) {
	switch {
	case issue.EventAction == "closed" || issue.State == "closed":
		return "", false
	case issue.EventAction == "reopened":
		return pipeline.ColumnInProgress, true
	case issue.Draft:
		return pipeline.ColumnInProgress, true
	default:
		return pipeline.ColumnNeedsReview, true
	}
}
