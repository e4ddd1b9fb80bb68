// Package formulas extracts the four formula families of a LaTeX
// document and applies lexical lint heuristics to each. This is
// delimiter-level linting, not math grammar validation; false positives
// on legitimately nested notation are expected.
package formulas

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/latex/span"
)

var (
	inlineRe  = regexp.MustCompile(`\$([^$]+)\$`)
	displayRe = regexp.MustCompile(`\$\$([^$]+)\$\$`)
)

// specialChars are syntactically significant in math mode and usually
// need an escaping command somewhere in the formula.
const specialChars = "_^&%"

// Validate extracts every formula and lints each one in category order
// (inline, display, equation, align) then index order. Diagnostics
// reference formulas by category and 1-based index.
func Validate(text string) domain.FormulaReport {
	set := extract(text)

	errs := []string{}
	suggestions := []string{}

	for _, category := range domain.AllFormulaCategories() {
		for idx, formula := range set.ByCategory(category) {
			if strings.Count(formula, "(") != strings.Count(formula, ")") {
				errs = append(errs, fmt.Sprintf(
					"%s formula #%d has mismatched parentheses", category, idx+1))
			}
			if !strings.Contains(formula, `\`) && strings.ContainsAny(formula, specialChars) {
				errs = append(errs, fmt.Sprintf(
					"%s formula #%d may have unescaped special characters", category, idx+1))
			}
		}
	}

	if len(set.Align) > 0 {
		suggestions = append(suggestions,
			`Consider using \label{} for important equations to reference them later`)
	}

	return domain.FormulaReport{
		Formulas:    set,
		Errors:      errs,
		Suggestions: suggestions,
	}
}

// extract pulls the four disjoint categories out of text. Display spans
// are masked before the inline scan so a $$...$$ body is never also
// reported as inline math.
func extract(text string) domain.FormulaSet {
	display := captures(displayRe, text)

	masked := displayRe.ReplaceAllString(text, "")

	return domain.FormulaSet{
		Inline:   captures(inlineRe, masked),
		Display:  display,
		Equation: span.Environments(text, "equation"),
		Align:    span.Environments(text, "align"),
	}
}

func captures(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
