// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

// Package config handles loading and merging triage-bot configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/similigh/triage-bot/internal/triage"
)

// DefaultConfigPath is the path used when an extends reference names no file.
const DefaultConfigPath = ".github/triage.yaml"

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// Labels names the labels applied by triage.
	Labels LabelsConfig `yaml:"labels"`

	// Workflows replaces the step list of a workflow preset
	// (e.g., "issue-triage": [gatekeeper, triage, summary]).
	Workflows map[string][]string `yaml:"workflows,omitempty"`

	// BotUsers lists extra authors whose events are ignored.
	BotUsers []string `yaml:"bot_users,omitempty"`

	// DryRun computes labels without applying them.
	DryRun bool `yaml:"dry_run"`

	// Repositories lists the repositories this config applies to.
	Repositories []RepositoryConfig `yaml:"repositories,omitempty"`
}

// LabelsConfig holds label names.
type LabelsConfig struct {
	Base   string `yaml:"base"`
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`
}

// RepositoryConfig defines a repository and its settings.
type RepositoryConfig struct {
	Org     string `yaml:"org"`
	Repo    string `yaml:"repo"`
	Enabled bool   `yaml:"enabled"`
}

// LabelOptions converts the label names for the triage package.
func (l LabelsConfig) LabelOptions() triage.LabelOptions {
	return triage.LabelOptions{
		Base:   l.Base,
		High:   l.High,
		Medium: l.Medium,
		Low:    l.Low,
	}
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// LoadWithInheritance loads a config and resolves the 'extends' chain.
// The fetcher function is used to retrieve remote configs.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		cfg.applyDefaults()
		return cfg, nil
	}

	// Fetch and parse the parent config
	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	parentCfg, err := parseRaw(parentData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	// Search in common locations
	candidates := []string{
		".github/triage.yaml",
		".github/triage.yml",
		".triage.yaml",
		".triage.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseRaw(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// parseRaw expands environment variables and decodes YAML without applying defaults.
func parseRaw(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.Labels.Base == "" {
		c.Labels.Base = triage.DefaultBaseLabel
	}
	if c.Labels.High == "" {
		c.Labels.High = triage.DefaultHighLabel
	}
	if c.Labels.Medium == "" {
		c.Labels.Medium = triage.DefaultMediumLabel
	}
	if c.Labels.Low == "" {
		c.Labels.Low = triage.DefaultLowLabel
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent
	result.Extends = ""

	// Workflows: merged per preset name, child wins
	if len(child.Workflows) > 0 {
		result.Workflows = make(map[string][]string, len(parent.Workflows)+len(child.Workflows))
		for name, steps := range parent.Workflows {
			result.Workflows[name] = steps
		}
		for name, steps := range child.Workflows {
			result.Workflows[name] = steps
		}
	}

	if child.Labels.Base != "" {
		result.Labels.Base = child.Labels.Base
	}
	if child.Labels.High != "" {
		result.Labels.High = child.Labels.High
	}
	if child.Labels.Medium != "" {
		result.Labels.Medium = child.Labels.Medium
	}
	if child.Labels.Low != "" {
		result.Labels.Low = child.Labels.Low
	}

	if len(child.BotUsers) > 0 {
		result.BotUsers = child.BotUsers
	}

	// DryRun can only be switched on by the child
	result.DryRun = parent.DryRun || child.DryRun

	// Repositories: child completely overrides if non-empty
	if len(child.Repositories) > 0 {
		result.Repositories = child.Repositories
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 || orgRepo[0] == "" || orgRepo[1] == "" {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	// Check for path
	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if branch == "" {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (empty branch)", ref)
	}
	if len(branchPath) == 2 {
		path = branchPath[1]
	} else {
		path = DefaultConfigPath
	}

	return org, repo, branch, path, nil
}
