package skills

import "strings"

// SynonymTable maps a canonical skill label to its known alias forms. The table
// is built once at startup and never mutated afterwards; insertion order is
// preserved so that frequency tie-breaks stay deterministic.
type SynonymTable struct {
	order   []string
	aliases map[string][]string
}

func NewSynonymTable() *SynonymTable {
	return &SynonymTable{
		aliases: make(map[string][]string),
	}
}

// Add registers a canonical skill with its aliases. All forms are case-folded.
// Re-adding a canonical skill appends aliases without changing its position.
func (t *SynonymTable) Add(canonical string, aliases ...string) *SynonymTable {
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if canonical == "" {
		return t
	}

	if _, ok := t.aliases[canonical]; !ok {
		t.order = append(t.order, canonical)
		t.aliases[canonical] = nil
	}

	for _, alias := range aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias != "" {
			t.aliases[canonical] = append(t.aliases[canonical], alias)
		}
	}

	return t
}

// Canonical returns all canonical skills in insertion order.
func (t *SynonymTable) Canonical() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Aliases returns the alias forms of a canonical skill, excluding the skill itself.
func (t *SynonymTable) Aliases(canonical string) []string {
	aliases := t.aliases[strings.ToLower(canonical)]
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}

// Forms returns the canonical skill followed by all of its aliases.
func (t *SynonymTable) Forms(canonical string) []string {
	canonical = strings.ToLower(canonical)
	return append([]string{canonical}, t.aliases[canonical]...)
}

func (t *SynonymTable) Len() int {
	return len(t.order)
}

// Default returns the built-in skill vocabulary with its synonym expansion.
func Default() *SynonymTable {
	return NewSynonymTable().
		Add("html", "html5").
		Add("css", "css3").
		Add("javascript", "js").
		Add("python", "py", "python3").
		Add("machine learning", "ml").
		Add("data analysis", "data analytics", "analytics").
		Add("react", "reactjs", "react.js").
		Add("nodejs", "node", "node.js").
		Add("sql", "structured query language").
		Add("java", "java se", "java ee").
		Add("pandas", "pd").
		Add("numpy", "np").
		Add("django", "django framework").
		Add("flask", "flask framework").
		Add("c++", "cpp").
		Add("git", "version control").
		Add("api", "rest api", "graphql").
		Add("linux", "unix").
		Add("cloud", "cloud computing").
		Add("aws", "amazon web services").
		Add("azure", "microsoft azure").
		Add("docker", "containerization").
		Add("kubernetes", "k8s").
		Add("web development", "web dev").
		Add("backend", "back-end").
		Add("frontend", "front-end").
		Add("full stack", "full-stack").
		Add("devops", "dev ops")
}
