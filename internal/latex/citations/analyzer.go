// Package citations cross-references the citation keys used in a LaTeX
// document against its bibliography entries.
package citations

import (
	"sort"
	"strings"

	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/latex/span"
)

// Analyze extracts every \cite key (comma-separated lists are flattened
// and trimmed) and every \bibitem key, then computes the two-way set
// difference. All counts and lists come from the deduplicated sets and
// the lists are sorted, so identical input always yields an identical
// report.
func Analyze(text string) domain.CitationReport {
	cited := make(map[string]struct{})
	for _, label := range span.Commands(text, "cite") {
		for _, key := range strings.Split(label, ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				cited[key] = struct{}{}
			}
		}
	}

	declared := make(map[string]struct{})
	for _, key := range span.Commands(text, "bibitem") {
		declared[key] = struct{}{}
	}

	return domain.CitationReport{
		CitationCount:     len(cited),
		Citations:         sortedKeys(cited),
		BibliographyCount: len(declared),
		UnusedReferences:  difference(declared, cited),
		MissingReferences: difference(cited, declared),
	}
}

// difference returns the sorted members of a not present in b.
func difference(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
