// Package report formats matching outcomes into deterministic line-oriented
// text and a downloadable Markdown gap report. It consumes plain data
// structures and performs no matching logic of its own.
package report

import (
	"fmt"
	"strings"

	"github.com/careertools/skillscan/internal/matching"
	"github.com/careertools/skillscan/internal/skills"
)

// Text renders the full matching outcome as a human-readable report.
func Text(outcome *matching.Outcome, table *skills.SynonymTable) string {
	lines := []string{"=== Job Matching Results ==="}

	if outcome.Failed() || outcome.Matches.Len() == 0 {
		lines = append(lines, "No jobs matched or an error occurred.")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, fmt.Sprintf("Matched Jobs (%d):", outcome.Matches.Len()))
	for _, match := range outcome.Matches {
		posting := match.Posting
		lines = append(lines,
			fmt.Sprintf("- %s at %s (Matched Skills: %s)",
				posting.Title, posting.Employer, strings.Join(match.Skills, ", ")),
			fmt.Sprintf("  Location: %s", posting.Location()),
			fmt.Sprintf("  Description: %s", posting.ShortDescription()),
			fmt.Sprintf("  Apply: %s", posting.ApplyLink),
		)
	}

	lines = append(lines, "", "Skill Gaps:")
	if len(outcome.Summary) == 0 {
		lines = append(lines, "No skill gaps identified.")
	} else {
		for _, entry := range outcome.Summary {
			lines = append(lines, fmt.Sprintf("- %s: %s", gapLabel(entry), strings.Join(entry.Missing, ", ")))
		}
	}

	lines = append(lines, "", "Missing Skills Frequency (Prioritized):")
	ranked := outcome.Frequency.Ranked(table)
	if len(ranked) == 0 {
		lines = append(lines, "No missing skills.")
	} else {
		for _, entry := range ranked {
			lines = append(lines, fmt.Sprintf("- %s: Required by %d job(s)", entry.Skill, entry.Count))
		}
	}

	return strings.Join(lines, "\n")
}

// GapMarkdown renders the downloadable skill gap report.
func GapMarkdown(outcome *matching.Outcome, table *skills.SynonymTable) string {
	lines := []string{
		"# Skill Gap Analysis Report",
		"",
		"## Overview",
		fmt.Sprintf("This report identifies skill gaps for %d job posting(s).", len(outcome.Summary)),
		"",
		"## Skill Gaps by Job",
	}

	if len(outcome.Summary) == 0 {
		lines = append(lines, "No skill gaps identified.")
	} else {
		for _, entry := range outcome.Summary {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", gapLabel(entry), strings.Join(entry.Missing, ", ")))
		}
	}

	lines = append(lines, "", "## Prioritized Missing Skills")
	ranked := outcome.Frequency.Ranked(table)
	if len(ranked) == 0 {
		lines = append(lines, "No missing skills.")
	} else {
		for _, entry := range ranked {
			lines = append(lines, fmt.Sprintf("- **%s**: Required by %d job(s)", entry.Skill, entry.Count))
		}
	}

	return strings.Join(lines, "\n")
}

// gapLabel identifies a posting in gap listings. The employer disambiguates
// postings sharing a title.
func gapLabel(entry matching.JobGap) string {
	if entry.Employer == "" {
		return entry.Title
	}
	return fmt.Sprintf("%s (%s)", entry.Title, entry.Employer)
}
