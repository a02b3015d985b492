// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/similigh/triage-bot/internal/core/dispatch"
	"github.com/similigh/triage-bot/internal/core/pipeline"
	"github.com/similigh/triage-bot/internal/tui"
)

// Wrapper step to send status updates
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tui.StepMsg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.StepMsg{Step: s.Name(), Status: tui.StatusStarted}

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.statusChan <- tui.StepMsg{Step: s.Name(), Status: tui.StatusSkipped, Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.StepMsg{Step: s.Name(), Status: tui.StatusError, Message: err.Error()}
		return err
	}

	s.statusChan <- tui.StepMsg{Step: s.Name(), Status: tui.StatusSuccess}
	return nil
}

// runWithTUI dispatches the event while a bubbletea view shows step progress.
func runWithTUI(ctx context.Context, d *dispatch.Dispatcher, issue *pipeline.Issue) (*pipeline.Result, error) {
	route, stepNames := d.Plan(issue)
	if route.Skipped() {
		return d.Dispatch(ctx, issue)
	}

	// Two messages per step at most, so the runner never blocks on a closed view.
	statusChan := make(chan tui.StepMsg, 2*len(stepNames))
	title := fmt.Sprintf("Triage: %s #%d (%s)", issue.EventType, issue.Number, route.Workflow)
	p := tea.NewProgram(tui.NewModel(title, stepNames, statusChan))

	// Step logs would tear the view.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	var (
		result *pipeline.Result
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(statusChan)

		d.WithStepWrapper(func(step pipeline.Step) pipeline.Step {
			return &statusReportingStep{inner: step, statusChan: statusChan}
		})
		result, runErr = d.Dispatch(ctx, issue)
		p.Send(tui.DoneMsg{Result: result, Err: runErr})
	}()

	if _, err := p.Run(); err != nil {
		<-done
		return result, fmt.Errorf("failed to run TUI: %w", err)
	}
	<-done
	return result, runErr
}
