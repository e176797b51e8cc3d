package skills

// Normalizer expands raw skill labels through a synonym table.
type Normalizer struct {
	table *SynonymTable
}

func NewNormalizer(table *SynonymTable) *Normalizer {
	return &Normalizer{table: table}
}

func (n *Normalizer) Table() *SynonymTable {
	return n.table
}

// Expand lowercases the raw labels and closes them over the synonym table:
// an input equal to a canonical form or to any of its aliases pulls in the
// canonical form together with all of its aliases. Unknown labels pass
// through unchanged.
func (n *Normalizer) Expand(raw []string) Set {
	expanded := NewSet(raw...)

	for _, canonical := range n.table.Canonical() {
		forms := n.table.Forms(canonical)
		if !expanded.ContainsAny(forms...) {
			continue
		}
		for _, form := range forms {
			expanded.Add(form)
		}
	}

	return expanded
}
