package jsearch

import (
	"strings"
	"testing"
)

func TestPostingLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		city    string
		country string
		want    string
	}{
		{name: "city and country", city: "Berlin", country: "Germany", want: "Berlin, Germany"},
		{name: "city only", city: "Berlin", want: "Berlin"},
		{name: "country only", country: "Germany", want: "Germany"},
		{name: "neither", want: NotSpecified},
		{name: "whitespace counts as absent", city: "  ", country: " ", want: NotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &Posting{City: tt.city, Country: tt.country}
			if got := p.Location(); got != tt.want {
				t.Errorf("Location() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPostingShortDescription(t *testing.T) {
	t.Parallel()

	short := &Posting{Description: "need python and sql"}
	if got := short.ShortDescription(); got != "need python and sql" {
		t.Errorf("expected short description unchanged, got %q", got)
	}

	long := &Posting{Description: strings.Repeat("a", 300)}
	got := long.ShortDescription()
	if len(got) != 203 || !strings.HasSuffix(got, "...") {
		t.Errorf("expected 200 runes plus ellipsis, got %d chars", len(got))
	}

	empty := &Posting{}
	if got := empty.ShortDescription(); got != "" {
		t.Errorf("expected empty description to stay empty, got %q", got)
	}
}

func TestReportByEmployer(t *testing.T) {
	t.Parallel()

	postings := &Postings{
		Items: []*Posting{
			{Title: "Go Developer", Employer: "Acme", City: "Berlin", ApplyLink: "https://example.com/1"},
			{Title: "Python Developer", Employer: "Acme"},
			{Title: "Mystery Role"},
		},
	}

	report := postings.ReportByEmployer()

	if len(report["Acme"]) != 2 {
		t.Fatalf("expected 2 Acme entries, got %d", len(report["Acme"]))
	}
	if len(report[NotSpecified]) != 1 {
		t.Fatalf("expected unnamed employer under %q", NotSpecified)
	}
	if report["Acme"][0]["location"] != "Berlin" {
		t.Errorf("unexpected location: %q", report["Acme"][0]["location"])
	}
}
