package extract

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/careertools/skillscan/internal/skills"
)

func TestLexicalExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		similarity float64
		want       []string
		notWant    []string
	}{
		{
			name: "direct token matches",
			text: "Built dashboards with Python and SQL, deployed on AWS.",
			want: []string{"python", "sql", "aws"},
		},
		{
			name: "alias maps to canonical label",
			text: "Shipped data analytics pipelines and k8s clusters",
			want: []string{"data analysis", "kubernetes"},
		},
		{
			name: "punctuated skill names",
			text: "years of c++ and node.js work",
			want: []string{"c++", "nodejs"},
		},
		{
			name:       "typo tolerated at default similarity",
			text:       "solid pyhton background",
			similarity: 0.75,
			want:       []string{"python"},
		},
		{
			name:       "strict similarity rejects the typo",
			text:       "solid pyhton background",
			similarity: 0.99,
			notWant:    []string{"python"},
		},
		{
			name:    "unrelated text yields nothing",
			text:    "managed a bakery for three years",
			notWant: []string{"python", "java", "git"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			extractor := NewLexical(skills.Default(), tt.similarity, zap.NewNop())

			got, err := extractor.Extract(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			found := make(map[string]bool, len(got))
			for _, skill := range got {
				found[skill] = true
			}

			for _, want := range tt.want {
				if !found[want] {
					t.Errorf("expected %q in %v", want, got)
				}
			}
			for _, notWant := range tt.notWant {
				if found[notWant] {
					t.Errorf("did not expect %q in %v", notWant, got)
				}
			}
		})
	}
}

func TestLexicalReturnsCanonicalLabelsOnly(t *testing.T) {
	t.Parallel()

	table := skills.Default()
	extractor := NewLexical(table, 0, zap.NewNop())

	got, err := extractor.Extract(context.Background(), "js and reactjs on the front-end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	canonical := make(map[string]bool)
	for _, skill := range table.Canonical() {
		canonical[skill] = true
	}

	for _, skill := range got {
		if !canonical[skill] {
			t.Errorf("extractor returned non-canonical label %q", skill)
		}
	}
}
