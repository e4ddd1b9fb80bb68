package domain

// TermTable maps a normalized term key (the lowercased spelling) to the
// canonical spelling, which is always the first spelling observed for
// that key. For any key the table holds exactly one canonical spelling.
type TermTable map[string]string

// Clone returns an independent copy of the table.
func (t TermTable) Clone() TermTable {
	if t == nil {
		return nil
	}
	out := make(TermTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// HasValue reports whether spelling is already one of the canonical
// values in the table.
func (t TermTable) HasValue(spelling string) bool {
	for _, v := range t {
		if v == spelling {
			return true
		}
	}
	return false
}

// Inconsistency records a later spelling that differs from the canonical
// one recorded for the same normalized key.
type Inconsistency struct {
	// Original is the canonical (first-seen) spelling.
	Original string `json:"original"`

	// Variant is the differing spelling encountered later.
	Variant string `json:"variant"`

	// Suggestion is a human-readable fix hint.
	Suggestion string `json:"suggestion"`
}

// TermReport is the result of a term consistency check.
type TermReport struct {
	Terms           TermTable       `json:"terms"`
	Inconsistencies []Inconsistency `json:"inconsistencies"`
}
