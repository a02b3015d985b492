// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/similigh/triage-bot/internal/core/config"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

// Option configures the underlying GitHub client.
type Option func(*github.Client) error

// WithBaseURL points the client at another REST endpoint, such as the
// GITHUB_API_URL of a GitHub Enterprise Server runner.
func WithBaseURL(raw string) Option {
	return func(c *github.Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid API URL %q: %w", raw, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid API URL %q: scheme and host required", raw)
		}
		c.BaseURL = u
		return nil
	}
}

// NewClient creates a GitHub client authenticated with the action's token.
// Label writes need a token, so an empty one is rejected with config.ErrMissingToken.
func NewClient(ctx context.Context, creds config.Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, fmt.Errorf("failed to configure GitHub client: %w", err)
		}
	}

	return &Client{
		client: client,
	}, nil
}
