// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-12
// Last Modified: 2026-10-14

package triage

import (
	"iter"
	"strings"
)

// Section headings of the bug report issue form.
const (
	SeverityHeading   = "Severity"
	WorkaroundHeading = "Available workarounds?"
)

const headingPrefix = "### "

// Answers is one severity/workaround pair read from an issue body.
type Answers struct {
	Severity   string
	Workaround string
}

// section is a discovered "### <title>" heading and the text under it.
type section struct {
	title  string
	answer string
}

// Scan returns the severity/workaround pairs found in body, in order.
// A pair is a Severity section immediately followed by an Available
// workarounds? section. Every iteration rescans body from the start.
func Scan(body string) iter.Seq[Answers] {
	return func(yield func(Answers) bool) {
		sections := splitSections(body)
		for i := 0; i < len(sections); i++ {
			if sections[i].title != SeverityHeading {
				continue
			}
			if i+1 >= len(sections) || sections[i+1].title != WorkaroundHeading {
				continue
			}
			if !yield(Answers{Severity: sections[i].answer, Workaround: sections[i+1].answer}) {
				return
			}
			i++
		}
	}
}

// splitSections walks body line by line and returns every "### " section.
// Text before the first heading is ignored.
func splitSections(body string) []section {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	lines := strings.Split(body, "\n")

	var sections []section
	var answer []string
	open := false

	flush := func() {
		if open {
			sections[len(sections)-1].answer = strings.TrimSpace(strings.Join(answer, "\n"))
		}
		answer = answer[:0]
	}

	for _, line := range lines {
		if strings.HasPrefix(line, headingPrefix) {
			flush()
			sections = append(sections, section{title: strings.TrimSpace(line[len(headingPrefix):])})
			open = true
			continue
		}
		if open {
			answer = append(answer, line)
		}
	}
	flush()

	return sections
}
