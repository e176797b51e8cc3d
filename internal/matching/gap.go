package matching

import (
	"sort"
	"strings"

	"github.com/careertools/skillscan/internal/jsearch"
	"github.com/careertools/skillscan/internal/skills"
)

// JobGap lists the canonical skills a posting likely requires that the
// candidate lacks. Postings are identified by the (title, employer, url)
// composite instead of the bare title, so two postings sharing a title never
// collapse into one entry.
type JobGap struct {
	Title    string   `json:"title"`
	Employer string   `json:"employer"`
	URL      string   `json:"url"`
	Missing  []string `json:"missing"`
}

// GapSummary holds one entry per posting with at least one missing skill, in
// fetch order.
type GapSummary []JobGap

// GapFrequency counts, per canonical skill, the postings requiring it while
// it is absent from the candidate's expanded set.
type GapFrequency map[string]int

// SkillCount is one row of a ranked frequency listing.
type SkillCount struct {
	Skill string
	Count int
}

// Ranked sorts the frequencies descending by count. Ties keep the synonym
// table insertion order.
func (f GapFrequency) Ranked(table *skills.SynonymTable) []SkillCount {
	ranked := make([]SkillCount, 0, len(f))
	for _, canonical := range table.Canonical() {
		if count, ok := f[canonical]; ok {
			ranked = append(ranked, SkillCount{Skill: canonical, Count: count})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}

// GapAnalyzer derives missing-skill reports from posting descriptions. It
// shares the synonym table with the normalizer, so a skill present in the
// expanded set in any alias form is never reported as missing.
type GapAnalyzer struct {
	table *skills.SynonymTable
}

func NewGapAnalyzer(table *skills.SynonymTable) *GapAnalyzer {
	return &GapAnalyzer{table: table}
}

// Analyze runs once per posting, regardless of whether the posting was
// matched or kept. A posting excluded for the wrong seniority still
// contributes to the missing-skill signal.
func (g *GapAnalyzer) Analyze(set skills.Set, postings []*jsearch.Posting, opts Options) (GapSummary, GapFrequency) {
	opts = opts.normalized()

	summary := make(GapSummary, 0)
	frequency := make(GapFrequency)

	for _, posting := range postings {
		description := strings.ToLower(posting.Description)

		var missing []string
		for _, canonical := range g.table.Canonical() {
			forms := g.table.Forms(canonical)
			if set.ContainsAny(forms...) {
				continue
			}
			if anyFormMatches(forms, description, opts.Threshold) {
				missing = append(missing, canonical)
				frequency[canonical]++
			}
		}

		if len(missing) > 0 {
			summary = append(summary, JobGap{
				Title:    posting.Title,
				Employer: posting.Employer,
				URL:      posting.ApplyLink,
				Missing:  missing,
			})
		}
	}

	return summary, frequency
}

func anyFormMatches(forms []string, description string, threshold int) bool {
	for _, form := range forms {
		if skills.Matches(form, description, threshold, false) {
			return true
		}
	}
	return false
}
