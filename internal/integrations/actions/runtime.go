// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-13
// Last Modified: 2026-10-18

// Package actions adapts the GitHub Actions runtime: workflow inputs,
// the triggering event, log commands and the job step summary.
package actions

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sethvargo/go-githubactions"

	"github.com/similigh/triage-bot/internal/core/config"
)

// Workflow inputs declared in action.yml.
const (
	InputGitHubToken   = "github_token"
	InputProjectsToken = "triage_projects_token"
	InputConfig        = "config"
	InputDryRun        = "dry_run"
)

// Runtime reads from and reports to the GitHub Actions runner.
type Runtime struct {
	action *githubactions.Action
	getenv func(string) string
	out    io.Writer
}

// New creates a runtime. Nil arguments fall back to the process environment and stdout.
func New(getenv func(string) string, out io.Writer) *Runtime {
	if getenv == nil {
		getenv = os.Getenv
	}
	if out == nil {
		out = os.Stdout
	}
	return &Runtime{
		action: githubactions.New(
			githubactions.WithGetenv(getenv),
			githubactions.WithWriter(out),
		),
		getenv: getenv,
		out:    out,
	}
}

// InActions reports whether the process runs on an Actions runner.
func (r *Runtime) InActions() bool {
	return r.getenv("GITHUB_ACTIONS") == "true"
}

// Credentials returns the tokens supplied as inputs. Outside Actions the
// GITHUB_TOKEN and TRIAGE_PROJECTS_TOKEN environment variables are used.
func (r *Runtime) Credentials() config.Credentials {
	creds := config.Credentials{
		Token:         r.action.GetInput(InputGitHubToken),
		ProjectsToken: r.action.GetInput(InputProjectsToken),
	}
	if creds.Token == "" {
		creds.Token = r.getenv("GITHUB_TOKEN")
	}
	if creds.ProjectsToken == "" {
		creds.ProjectsToken = r.getenv("TRIAGE_PROJECTS_TOKEN")
	}
	return creds
}

// APIURL returns the runner's REST endpoint, or "" when unset.
func (r *Runtime) APIURL() string {
	return r.getenv("GITHUB_API_URL")
}

// ConfigPath returns the config input, if any.
func (r *Runtime) ConfigPath() string {
	return r.action.GetInput(InputConfig)
}

// DryRun returns the dry_run input. Unparseable values count as false.
func (r *Runtime) DryRun() bool {
	v, err := strconv.ParseBool(r.action.GetInput(InputDryRun))
	return err == nil && v
}

// Event returns the triggering event name and its raw payload.
func (r *Runtime) Event() (string, []byte, error) {
	ghctx, err := r.action.Context()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read actions context: %w", err)
	}
	if ghctx.EventName == "" {
		return "", nil, fmt.Errorf("GITHUB_EVENT_NAME is not set")
	}
	if ghctx.EventPath == "" {
		return "", nil, fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}

	payload, err := os.ReadFile(ghctx.EventPath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read event payload: %w", err)
	}
	return ghctx.EventName, payload, nil
}

// Debugf emits a debug message, visible when step debugging is enabled.
func (r *Runtime) Debugf(format string, args ...any) {
	r.action.Debugf(format, args...)
}

// Noticef emits a notice annotation.
func (r *Runtime) Noticef(format string, args ...any) {
	r.action.Noticef(format, args...)
}

// Errorf emits an error annotation without exiting.
func (r *Runtime) Errorf(format string, args ...any) {
	r.action.Errorf(format, args...)
}

// AddStepSummary appends markdown to the job summary. Without a summary
// file (local runs) the markdown is printed instead.
func (r *Runtime) AddStepSummary(markdown string) {
	if r.getenv("GITHUB_STEP_SUMMARY") == "" {
		fmt.Fprintln(r.out, markdown)
		return
	}
	r.action.AddStepSummary(markdown)
}
