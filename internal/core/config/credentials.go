// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-13
// Last Modified: 2026-10-13

package config

import "errors"

// ErrMissingToken is returned when no GitHub token was supplied.
var ErrMissingToken = errors.New("input `github_token` is required")

// Credentials holds the tokens supplied by the workflow.
type Credentials struct {
	// Token is the default token used for labelling.
	Token string

	// ProjectsToken has the elevated permissions needed for project boards.
	ProjectsToken string
}

// Validate reports ErrMissingToken when the default token is absent.
func (c Credentials) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// HasProjectsToken reports whether board operations are authorised.
func (c Credentials) HasProjectsToken() bool {
	return c.ProjectsToken != ""
}
