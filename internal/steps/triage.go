// Package steps provides the triage step.
package steps

import (
	"log"

	"github.com/similigh/triage-bot/internal/core/pipeline"
	"github.com/similigh/triage-bot/internal/triage"
)

// Triage reads the issue form answers and decides which labels to add.
type Triage struct{}

// NewTriage creates a new triage step.
func NewTriage(deps *pipeline.Dependencies) *Triage {
	return &Triage{}
}

// Name returns the step name.
func (s *Triage) Name() string {
	return "triage"
}

// Run classifies every severity/workaround pair in the issue body.
func (s *Triage) Run(ctx *pipeline.Context) error {
	log.Printf("[triage] Analyzing issue #%d", ctx.Issue.Number)

	pairs := func(yield func(triage.Answers, triage.Priority) bool) {
		for answers, p := range triage.Classified(ctx.Issue.Body) {
			log.Printf("[triage] severity=%q workaround=%q priority=%s", answers.Severity, answers.Workaround, p)
			if !yield(answers, p) {
				return
			}
		}
	}

	ctx.Result.SuggestedLabels = ctx.Config.Labels.LabelOptions().LabelSet(pairs)
	log.Printf("[triage] Issue #%d labels: %v", ctx.Issue.Number, ctx.Result.SuggestedLabels)

	return nil
}
