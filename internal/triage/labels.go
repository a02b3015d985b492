// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-12
// Last Modified: 2026-10-18

package triage

import "iter"

// Default label names.
const (
	DefaultBaseLabel   = "Issue triaged"
	DefaultHighLabel   = "🏔 High"
	DefaultMediumLabel = "🏕 Medium"
	DefaultLowLabel    = "🏝 Low"
)

// LabelOptions names the labels applied by triage.
type LabelOptions struct {
	Base   string
	High   string
	Medium string
	Low    string
}

// DefaultLabelOptions returns the stock label names.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{
		Base:   DefaultBaseLabel,
		High:   DefaultHighLabel,
		Medium: DefaultMediumLabel,
		Low:    DefaultLowLabel,
	}
}

// LabelFor returns the label for p, or "" for PriorityNone.
func (o LabelOptions) LabelFor(p Priority) string {
	switch p {
	case PriorityHigh:
		return o.High
	case PriorityMedium:
		return o.Medium
	case PriorityLow:
		return o.Low
	default:
		return ""
	}
}

// Classified pairs every answer pair in body with its priority, in order.
func Classified(body string) iter.Seq2[Answers, Priority] {
	return func(yield func(Answers, Priority) bool) {
		for answers := range Scan(body) {
			if !yield(answers, ClassifyPriority(answers.Severity, answers.Workaround)) {
				return
			}
		}
	}
}

// LabelSet builds a label set in a single pass over pairs: the base label
// followed by one priority label per pair that carries an opinion.
func (o LabelOptions) LabelSet(pairs iter.Seq2[Answers, Priority]) []string {
	labels := []string{o.Base}
	for _, p := range pairs {
		if label := o.LabelFor(p); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// Labels builds the label set for an issue body.
func Labels(body string, opts LabelOptions) []string {
	return opts.LabelSet(Classified(body))
}
