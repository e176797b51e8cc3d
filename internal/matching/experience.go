package matching

import (
	"strings"

	"github.com/careertools/skillscan/internal/jsearch"
)

// experienceKeywords maps an experience-level tag to the keywords a posting
// must mention to pass the level check.
var experienceKeywords = map[string][]string{
	"entry_level":  {"entry", "junior", "associate"},
	"mid_level":    {"mid", "intermediate", "developer"},
	"senior_level": {"senior", "lead", "principal"},
}

// ExperienceLevels lists the supported experience-level tags.
func ExperienceLevels() []string {
	return []string{"entry_level", "mid_level", "senior_level"}
}

// experienceCompatible reports whether the posting mentions at least one
// keyword of the requested level. An empty or unknown level always passes.
func experienceCompatible(level string, posting *jsearch.Posting) bool {
	keywords, ok := experienceKeywords[level]
	if level == "" || !ok {
		return true
	}

	title := strings.ToLower(posting.Title)
	description := strings.ToLower(posting.Description)

	for _, keyword := range keywords {
		if strings.Contains(title, keyword) || strings.Contains(description, keyword) {
			return true
		}
	}
	return false
}
