package matching

import (
	"testing"

	"go.uber.org/zap"

	"github.com/careertools/skillscan/internal/jsearch"
	"github.com/careertools/skillscan/internal/skills"
)

func TestEngineMatch(t *testing.T) {
	t.Parallel()

	set := skills.NewSet("python", "sql")
	postings := []*jsearch.Posting{
		{Title: "Python Developer", Description: "need python and sql"},
		{Title: "Java Engineer", Description: "need java only"},
	}

	matches := NewEngine(zap.NewNop()).Match(set, postings, Options{})

	if matches.Len() != 1 {
		t.Fatalf("expected 1 match, got %d", matches.Len())
	}

	match := matches[0]
	if match.Posting.Title != "Python Developer" {
		t.Errorf("unexpected matched posting: %s", match.Posting.Title)
	}
	if match.Score != 2 {
		t.Errorf("expected score 2, got %d", match.Score)
	}
	if len(match.Skills) != 2 || match.Skills[0] != "python" || match.Skills[1] != "sql" {
		t.Errorf("unexpected matched skills: %v", match.Skills)
	}
}

func TestEngineMatchSortsDescendingByScore(t *testing.T) {
	t.Parallel()

	set := skills.NewSet("python", "sql")
	postings := []*jsearch.Posting{
		{Title: "Data Analyst", Description: "python reporting"},
		{Title: "Backend Engineer", Description: "python and sql services"},
	}

	matches := NewEngine(zap.NewNop()).Match(set, postings, Options{})

	if matches.Len() != 2 {
		t.Fatalf("expected 2 matches, got %d", matches.Len())
	}
	if matches[0].Posting.Title != "Backend Engineer" || matches[0].Score != 2 {
		t.Fatalf("expected the two-skill posting first, got %s (score %d)",
			matches[0].Posting.Title, matches[0].Score)
	}
	if matches[1].Score != 1 {
		t.Fatalf("expected score 1 second, got %d", matches[1].Score)
	}
}

func TestEngineMatchStableOnTies(t *testing.T) {
	t.Parallel()

	set := skills.NewSet("python")
	postings := []*jsearch.Posting{
		{Title: "Python Developer", Description: "first"},
		{Title: "Python Engineer", Description: "second"},
	}

	matches := NewEngine(zap.NewNop()).Match(set, postings, Options{})

	if matches.Len() != 2 {
		t.Fatalf("expected 2 matches, got %d", matches.Len())
	}
	if matches[0].Posting.Description != "first" || matches[1].Posting.Description != "second" {
		t.Fatalf("tie did not preserve fetch order: %s then %s",
			matches[0].Posting.Description, matches[1].Posting.Description)
	}
}

func TestEngineMatchExperienceFilter(t *testing.T) {
	t.Parallel()

	set := skills.NewSet("python")

	tests := []struct {
		name       string
		experience string
		posting    *jsearch.Posting
		kept       bool
	}{
		{
			name:       "senior keyword required but absent",
			experience: "senior_level",
			posting:    &jsearch.Posting{Title: "Python Developer", Description: "need python"},
			kept:       false,
		},
		{
			name:       "senior keyword in title",
			experience: "senior_level",
			posting:    &jsearch.Posting{Title: "Senior Python Developer", Description: "need python"},
			kept:       true,
		},
		{
			name:       "mid level keyword in description",
			experience: "mid_level",
			posting:    &jsearch.Posting{Title: "Python Role", Description: "python for an intermediate engineer"},
			kept:       true,
		},
		{
			name:       "no experience requested keeps everything",
			experience: "",
			posting:    &jsearch.Posting{Title: "Python Developer", Description: "need python"},
			kept:       true,
		},
		{
			name:       "unknown level keeps everything",
			experience: "staff_level",
			posting:    &jsearch.Posting{Title: "Python Developer", Description: "need python"},
			kept:       true,
		},
	}

	engine := NewEngine(zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches := engine.Match(set, []*jsearch.Posting{tt.posting}, Options{Experience: tt.experience})
			if got := matches.Len() == 1; got != tt.kept {
				t.Errorf("kept = %v, want %v", got, tt.kept)
			}
		})
	}
}

func TestEngineMatchNoSkillsNoMatch(t *testing.T) {
	t.Parallel()

	matches := NewEngine(zap.NewNop()).Match(skills.NewSet(), []*jsearch.Posting{
		{Title: "Python Developer", Description: "need python"},
	}, Options{})

	if matches.Len() != 0 {
		t.Fatalf("expected no matches with an empty skill set, got %d", matches.Len())
	}
}
