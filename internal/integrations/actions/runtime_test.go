// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-13
// Last Modified: 2026-10-18

package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantToken   string
		wantProject string
	}{
		{
			name:        "inputs",
			env:         map[string]string{"INPUT_GITHUB_TOKEN": "tok", "INPUT_TRIAGE_PROJECTS_TOKEN": "proj"},
			wantToken:   "tok",
			wantProject: "proj",
		},
		{
			name:      "env fallback",
			env:       map[string]string{"GITHUB_TOKEN": "env-tok"},
			wantToken: "env-tok",
		},
		{
			name:      "input wins over env",
			env:       map[string]string{"INPUT_GITHUB_TOKEN": "tok", "GITHUB_TOKEN": "env-tok"},
			wantToken: "tok",
		},
		{
			name: "missing",
			env:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := New(envFrom(tt.env), &bytes.Buffer{}).Credentials()
			if creds.Token != tt.wantToken {
				t.Errorf("Expected token %q, got %q", tt.wantToken, creds.Token)
			}
			if creds.ProjectsToken != tt.wantProject {
				t.Errorf("Expected projects token %q, got %q", tt.wantProject, creds.ProjectsToken)
			}
		})
	}
}

func TestDryRun(t *testing.T) {
	tests := map[string]bool{"true": true, "TRUE": true, "1": true, "false": false, "": false, "maybe": false}
	for value, want := range tests {
		r := New(envFrom(map[string]string{"INPUT_DRY_RUN": value}), &bytes.Buffer{})
		if got := r.DryRun(); got != want {
			t.Errorf("DryRun() with %q = %v, want %v", value, got, want)
		}
	}
}

func TestEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	payload := `{"action":"opened","issue":{"number":1}}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New(envFrom(map[string]string{
		"GITHUB_EVENT_NAME": "issues",
		"GITHUB_EVENT_PATH": path,
	}), &bytes.Buffer{})

	name, data, err := r.Event()
	if err != nil {
		t.Fatalf("Event failed: %v", err)
	}
	if name != "issues" {
		t.Errorf("Expected event name 'issues', got %q", name)
	}
	if string(data) != payload {
		t.Errorf("Expected payload %q, got %q", payload, string(data))
	}
}

func TestEventMissingName(t *testing.T) {
	r := New(envFrom(map[string]string{}), &bytes.Buffer{})
	if _, _, err := r.Event(); err == nil {
		t.Error("Expected error without GITHUB_EVENT_NAME")
	}
}

func TestDebugf(t *testing.T) {
	var out bytes.Buffer
	New(envFrom(map[string]string{}), &out).Debugf("Our action is running")
	if !strings.Contains(out.String(), "::debug::Our action is running") {
		t.Errorf("Expected debug command, got %q", out.String())
	}
}

func TestAddStepSummaryLocal(t *testing.T) {
	var out bytes.Buffer
	New(envFrom(map[string]string{}), &out).AddStepSummary("## Labels added")
	if !strings.Contains(out.String(), "## Labels added") {
		t.Errorf("Expected summary on stdout, got %q", out.String())
	}
}

func TestAddStepSummaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	New(envFrom(map[string]string{"GITHUB_STEP_SUMMARY": path}), &out).AddStepSummary("## Labels added")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "## Labels added") {
		t.Errorf("Expected summary file to contain markdown, got %q", string(data))
	}
}

func TestAPIURL(t *testing.T) {
	rt := New(envFrom(map[string]string{"GITHUB_API_URL": "https://ghe.example.com/api/v3"}), &bytes.Buffer{})
	if got := rt.APIURL(); got != "https://ghe.example.com/api/v3" {
		t.Errorf("Expected enterprise API URL, got %q", got)
	}

	if got := New(envFrom(nil), &bytes.Buffer{}).APIURL(); got != "" {
		t.Errorf("Expected empty API URL, got %q", got)
	}
}
