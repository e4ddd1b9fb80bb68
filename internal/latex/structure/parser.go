// Package structure builds the section/subsection tree of a LaTeX
// document from its sectioning markers.
package structure

import (
	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/latex/span"
)

// Parse builds the hierarchical structure of text. Each section's
// content runs to the next \section marker or end of document; each
// subsection's content is scoped to its parent section's body and runs
// to the next \subsection or \section marker. Text before the first
// section marker is retained only in Document.Content. A document with
// no section markers parses to an empty section list, not an error.
func Parse(text string) domain.Document {
	doc := domain.Document{
		Sections: []domain.Section{},
		Content:  text,
	}

	for _, sec := range span.Blocks(text, "section") {
		section := domain.Section{
			Title:       sec.Label,
			Content:     sec.Body,
			Subsections: []domain.Subsection{},
		}

		// Subsection markers are detected per section body, so equal
		// subsection titles in different sections never collide.
		for _, sub := range span.Blocks(sec.Body, "subsection", "section") {
			section.Subsections = append(section.Subsections, domain.Subsection{
				Title:   sub.Label,
				Content: sub.Body,
			})
		}

		doc.Sections = append(doc.Sections, section)
	}

	return doc
}
