// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package tui shows the progress and outcome of one triage run.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/similigh/triage-bot/internal/core/pipeline"
)

// StepStatus is the state of a single pipeline step.
type StepStatus string

const (
	StatusPending StepStatus = ""
	StatusStarted StepStatus = "started"
	StatusSuccess StepStatus = "success"
	StatusError   StepStatus = "error"
	StatusSkipped StepStatus = "skipped"
)

var (
	accent  = lipgloss.Color("#ff7300")
	subtle  = lipgloss.Color("#626262")
	success = lipgloss.Color("#04B575")
	failure = lipgloss.Color("#FF0000")

	titleStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true).MarginBottom(1)
	pendingStyle = lipgloss.NewStyle().Foreground(subtle)
	activeStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(success)
	errorStyle   = lipgloss.NewStyle().Foreground(failure)
	noteStyle    = lipgloss.NewStyle().Foreground(subtle).Italic(true)
	labelStyle   = lipgloss.NewStyle().Foreground(success).Bold(true)
)

// StepMsg reports a step status change.
type StepMsg struct {
	Step    string
	Status  StepStatus
	Message string
}

// DoneMsg ends the run.
type DoneMsg struct {
	Result *pipeline.Result
	Err    error
}

// Model renders the steps of a dispatched workflow and, once done, what the
// run decided for the issue or pull request.
type Model struct {
	spinner spinner.Model
	title   string
	steps   []string
	status  map[string]StepStatus
	notes   map[string]string
	updates <-chan StepMsg

	result *pipeline.Result
	err    error
	done   bool
}

// NewModel creates a model for the given step names. Step updates are read
// from updates until it is closed.
func NewModel(title string, steps []string, updates <-chan StepMsg) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = activeStyle

	return Model{
		spinner: s,
		title:   title,
		steps:   steps,
		status:  make(map[string]StepStatus, len(steps)),
		notes:   make(map[string]string, len(steps)),
		updates: updates,
	}
}

// Init starts the spinner and the first read of step updates.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.nextUpdate())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StepMsg:
		m.status[msg.Step] = msg.Status
		if msg.Message != "" {
			m.notes[msg.Step] = msg.Message
		}
		return m, m.nextUpdate()

	case DoneMsg:
		m.result = msg.Result
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// Err returns the run error, if any.
func (m Model) Err() error {
	return m.err
}

// Result returns the run result once done.
func (m Model) Result() *pipeline.Result {
	return m.result
}

func (m Model) nextUpdate() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return nil
		}
		return msg
	}
}

// View renders the step list, followed by the outcome once the run is done.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	for _, step := range m.steps {
		b.WriteString(m.stepLine(step))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString("\n")
		b.WriteString(m.Outcome())
		return b.String()
	}

	b.WriteString(pendingStyle.Render("\nq to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) stepLine(step string) string {
	var line string
	switch m.status[step] {
	case StatusStarted:
		line = activeStyle.Render(m.spinner.View() + " " + step)
	case StatusSuccess:
		line = doneStyle.Render("✓ " + step)
	case StatusError:
		line = errorStyle.Render("✗ " + step)
	case StatusSkipped:
		line = pendingStyle.Render("○ " + step)
	default:
		line = pendingStyle.Render("  " + step)
	}

	if note := m.notes[step]; note != "" && m.status[step] != StatusSuccess {
		line += " " + noteStyle.Render(note)
	}
	return line
}

// Outcome describes what the run did: labels added or proposed, the board
// column for a pull request, or why nothing happened.
func (m Model) Outcome() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Triage failed: %v", m.err)) + "\n"
	}
	r := m.result
	if r == nil {
		return ""
	}

	var b strings.Builder
	switch {
	case r.Skipped:
		fmt.Fprintf(&b, "Skipped #%d: %s\n", r.IssueNumber, r.SkipReason)
	case len(r.LabelsApplied) > 0:
		fmt.Fprintf(&b, "Labels added to #%d:\n", r.IssueNumber)
		writeLabels(&b, r.LabelsApplied)
	case r.DryRun && len(r.SuggestedLabels) > 0:
		fmt.Fprintf(&b, "Labels for #%d (dry run, not applied):\n", r.IssueNumber)
		writeLabels(&b, r.SuggestedLabels)
	case r.BoardColumn != "":
		fmt.Fprintf(&b, "#%d belongs in %s\n", r.IssueNumber, labelStyle.Render(string(r.BoardColumn)))
	default:
		fmt.Fprintf(&b, "No changes for #%d\n", r.IssueNumber)
	}
	return b.String()
}

func writeLabels(b *strings.Builder, labels []string) {
	for _, l := range labels {
		b.WriteString("  " + labelStyle.Render(l) + "\n")
	}
}
