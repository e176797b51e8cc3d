package skills

import "testing"

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     []string
		want    []string
		notWant []string
	}{
		{
			name: "alias pulls in canonical form",
			raw:  []string{"js"},
			want: []string{"js", "javascript"},
		},
		{
			name: "canonical form pulls in aliases",
			raw:  []string{"Python"},
			want: []string{"python", "py", "python3"},
		},
		{
			name:    "unknown skill passes through",
			raw:     []string{"cobol"},
			want:    []string{"cobol"},
			notWant: []string{"javascript"},
		},
		{
			name: "inputs are case folded",
			raw:  []string{"SQL", "  Docker "},
			want: []string{"sql", "structured query language", "docker", "containerization"},
		},
		{
			name:    "unrelated synonyms stay out",
			raw:     []string{"react"},
			want:    []string{"react", "reactjs", "react.js"},
			notWant: []string{"nodejs", "node"},
		},
	}

	normalizer := NewNormalizer(Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := normalizer.Expand(tt.raw)

			for _, label := range tt.want {
				if !got.Has(label) {
					t.Errorf("expected %q in expanded set %v", label, got.Sorted())
				}
			}
			for _, label := range tt.notWant {
				if got.Has(label) {
					t.Errorf("did not expect %q in expanded set %v", label, got.Sorted())
				}
			}
		})
	}
}

func TestExpandDoesNotMutateTable(t *testing.T) {
	t.Parallel()

	table := Default()
	before := table.Len()

	NewNormalizer(table).Expand([]string{"js", "unknown", "k8s"})

	if table.Len() != before {
		t.Fatalf("synonym table size changed: %d -> %d", before, table.Len())
	}
}

func TestSetSorted(t *testing.T) {
	t.Parallel()

	set := NewSet("sql", "python", "aws")
	got := set.Sorted()
	want := []string{"aws", "python", "sql"}

	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sorted labels %v, got %v", want, got)
		}
	}
}
