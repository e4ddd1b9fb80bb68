package domain

// CitationReport is the two-way cross-reference between citation keys
// used in the text and bibliography entry keys declared in it.
// All counts and lists are derived from deduplicated sets; the lists
// are sorted so identical input always yields an identical report.
type CitationReport struct {
	// CitationCount is the number of distinct citation keys.
	CitationCount int `json:"citation_count"`

	// Citations lists the distinct citation keys.
	Citations []string `json:"citations"`

	// BibliographyCount is the number of distinct bibliography keys.
	BibliographyCount int `json:"bibliography_count"`

	// UnusedReferences are bibliography entries never cited.
	UnusedReferences []string `json:"unused_references"`

	// MissingReferences are cited keys with no bibliography entry.
	MissingReferences []string `json:"missing_references"`
}
