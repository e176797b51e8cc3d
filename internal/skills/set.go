package skills

import (
	"sort"
	"strings"
)

// Set is a case-folded, deduplicated collection of skill labels.
type Set map[string]struct{}

func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, label := range labels {
		s.Add(label)
	}
	return s
}

func (s Set) Add(label string) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label != "" {
		s[label] = struct{}{}
	}
}

func (s Set) Has(label string) bool {
	_, ok := s[strings.ToLower(label)]
	return ok
}

// ContainsAny reports whether any of the provided forms is present in the set.
func (s Set) ContainsAny(forms ...string) bool {
	for _, form := range forms {
		if s.Has(form) {
			return true
		}
	}
	return false
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the labels in lexical order for deterministic output.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for label := range s {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
