// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

package steps

import (
	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("gatekeeper", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewGatekeeper(deps), nil
	})

	r.Register("triage", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewTriage(deps), nil
	})

	r.Register("board", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewBoard(deps), nil
	})

	r.Register("action_executor", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewActionExecutor(deps), nil
	})

	r.Register("summary", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewSummary(deps), nil
	})
}
