// Package terms checks a document for terminology drift: the same term
// spelled or cased differently in different places. The first spelling
// observed for a case-folded key is treated as canonical and later
// variants are reported against it.
package terms

import (
	"fmt"
	"strings"

	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/latex/span"
)

// markupFamilies are the commands whose arguments are treated as
// candidate terms. \cite is included even though citation keys are not
// prose terminology, so key casing drift gets flagged too; see
// DESIGN.md for the open question around it.
var markupFamilies = []string{"textit", "textbf", "term", "cite"}

// Check extracts candidate terms from text and reports spellings that
// drift from the first-seen canonical form. The returned table maps
// lowercased keys to their canonical spelling for this call only;
// persisting it across calls is the caller's decision.
func Check(text string) domain.TermReport {
	found := domain.TermTable{}
	inconsistencies := []domain.Inconsistency{}

	for _, family := range markupFamilies {
		for _, term := range span.Commands(text, family) {
			key := strings.ToLower(term)
			canonical, seen := found[key]
			if !seen {
				found[key] = term
				continue
			}
			if canonical != term && !found.HasValue(term) {
				inconsistencies = append(inconsistencies, domain.Inconsistency{
					Original:   canonical,
					Variant:    term,
					Suggestion: fmt.Sprintf("Consider using '%s' consistently", canonical),
				})
			}
		}
	}

	return domain.TermReport{
		Terms:           found,
		Inconsistencies: inconsistencies,
	}
}
