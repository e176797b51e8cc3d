package skills

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	// TitleThreshold is the fixed similarity threshold for job titles. Titles
	// are short, so precision matters more than recall there.
	TitleThreshold = 90

	// DefaultThreshold is used for description matching when the caller does
	// not supply one.
	DefaultThreshold = 85

	// MinThreshold and MaxThreshold bound caller-supplied thresholds.
	MinThreshold = 70
	MaxThreshold = 100
)

// Matches reports whether the skill appears in the text using partial-ratio
// similarity: the best-aligned substring of the longer string is compared
// against the shorter one, so "python3" still matches inside "experience with
// python3 and django". The effective threshold is TitleThreshold when isTitle
// is set, otherwise the caller-supplied one.
func Matches(skill, text string, threshold int, isTitle bool) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	text = strings.ToLower(text)
	if skill == "" || text == "" {
		return false
	}

	if isTitle {
		threshold = TitleThreshold
	}

	return fuzzy.PartialRatio(skill, text) >= threshold
}

// NormalizeThreshold maps an unset threshold to the default and clamps the
// rest into the supported range.
func NormalizeThreshold(threshold int) int {
	switch {
	case threshold == 0:
		return DefaultThreshold
	case threshold < MinThreshold:
		return MinThreshold
	case threshold > MaxThreshold:
		return MaxThreshold
	}
	return threshold
}
