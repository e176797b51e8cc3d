package matching

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/careertools/skillscan/internal/jsearch"
	"github.com/careertools/skillscan/internal/skills"
)

// Options control a matching run.
type Options struct {
	// Experience is an optional experience-level tag (entry_level, mid_level,
	// senior_level). Empty disables the experience check.
	Experience string
	// Threshold is the description-matching threshold. Zero selects the
	// default; out-of-range values are clamped.
	Threshold int
}

func (o Options) normalized() Options {
	o.Threshold = skills.NormalizeThreshold(o.Threshold)
	return o
}

// Match pairs a posting with the subset of candidate skills found in it.
// Score is the number of matched skills.
type Match struct {
	Posting *jsearch.Posting `json:"posting"`
	Skills  []string         `json:"matched_skills"`
	Score   int              `json:"score"`
}

type Matches []*Match

func (m Matches) Len() int {
	return len(m)
}

func (m Matches) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Engine scores postings against an expanded skill set. It is pure: no
// network access, safe to run over any injected posting list.
type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger}
}

// Match returns postings that matched at least one skill and passed the
// experience check, sorted descending by score. The sort is stable, so equal
// scores keep fetch order.
func (e *Engine) Match(set skills.Set, postings []*jsearch.Posting, opts Options) Matches {
	opts = opts.normalized()

	matches := make(Matches, 0, len(postings))
	for _, posting := range postings {
		matched := matchedSkills(set, posting, opts.Threshold)
		if len(matched) == 0 {
			e.logger.Debug("posting not matched",
				zap.String("title", posting.Title),
				zap.Int("skills_checked", set.Len()),
			)
			continue
		}

		if !experienceCompatible(opts.Experience, posting) {
			e.logger.Debug("posting skipped due to experience mismatch",
				zap.String("title", posting.Title),
				zap.String("experience", opts.Experience),
			)
			continue
		}

		e.logger.Debug("posting matched",
			zap.String("title", posting.Title),
			zap.Strings("matched_skills", matched),
		)

		matches = append(matches, &Match{
			Posting: posting,
			Skills:  matched,
			Score:   len(matched),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// matchedSkills collects the candidate skills found in the posting title or
// description. Titles use the strict threshold, descriptions the caller one.
func matchedSkills(set skills.Set, posting *jsearch.Posting, threshold int) []string {
	title := strings.ToLower(posting.Title)
	description := strings.ToLower(posting.Description)

	var matched []string
	for _, skill := range set.Sorted() {
		if skills.Matches(skill, title, threshold, true) ||
			skills.Matches(skill, description, threshold, false) {
			matched = append(matched, skill)
		}
	}
	return matched
}
