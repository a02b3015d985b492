// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-12
// Last Modified: 2026-10-14

// Package triage holds the issue-template triage rules: extracting the
// severity and workaround answers from an issue body and mapping them to a
// priority label.
package triage

import "strings"

// Priority is the urgency derived from a severity/workaround answer pair.
type Priority int

const (
	// PriorityNone means the answers carry no priority opinion.
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// Answer phrases emitted by the bug report issue form.
const (
	WorkaroundNoneUnusable = "No and the platform is unusable"
	WorkaroundNoneUsable   = "No but the platform is still usable"
	NoResponse             = "_No response_"

	SeverityOne  = "One"
	SeverityAll  = "All"
	SeverityMost = "Most (> 50%)"
)

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "none"
	}
}

// ClassifyPriority maps a severity and a workaround answer to a priority.
// The first matching rule wins:
//
//  1. no workaround, platform unusable: High, or Medium when only one instance is affected
//  2. no workaround, platform still usable: Medium
//  3. any other answered workaround: Medium for All / Most severity, Low otherwise
//  4. unanswered workaround: None
func ClassifyPriority(severity, workaround string) Priority {
	severity = strings.TrimSpace(severity)
	workaround = strings.TrimSpace(workaround)

	switch {
	case workaround == WorkaroundNoneUnusable:
		if severity == SeverityOne {
			return PriorityMedium
		}
		return PriorityHigh
	case workaround == WorkaroundNoneUsable:
		return PriorityMedium
	case workaround != "" && workaround != NoResponse:
		if severity == SeverityAll || severity == SeverityMost {
			return PriorityMedium
		}
		return PriorityLow
	default:
		return PriorityNone
	}
}
