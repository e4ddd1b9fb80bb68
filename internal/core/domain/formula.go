package domain

// FormulaCategory identifies one of the four formula extraction families.
type FormulaCategory string

const (
	// FormulaInline is single-dollar inline math: $...$.
	FormulaInline FormulaCategory = "inline"

	// FormulaDisplay is double-dollar display math: $$...$$.
	FormulaDisplay FormulaCategory = "display"

	// FormulaEquation is the equation environment.
	FormulaEquation FormulaCategory = "equation"

	// FormulaAlign is the align environment.
	FormulaAlign FormulaCategory = "align"
)

// AllFormulaCategories returns the categories in reporting order.
func AllFormulaCategories() []FormulaCategory {
	return []FormulaCategory{FormulaInline, FormulaDisplay, FormulaEquation, FormulaAlign}
}

// FormulaSet holds the extracted formula bodies per category,
// each in document order.
type FormulaSet struct {
	Inline   []string `json:"inline"`
	Display  []string `json:"display"`
	Equation []string `json:"equation"`
	Align    []string `json:"align"`
}

// ByCategory returns the formulas for a category.
func (f FormulaSet) ByCategory(c FormulaCategory) []string {
	switch c {
	case FormulaInline:
		return f.Inline
	case FormulaDisplay:
		return f.Display
	case FormulaEquation:
		return f.Equation
	case FormulaAlign:
		return f.Align
	default:
		return nil
	}
}

// FormulaReport is the result of formula validation. Errors are
// free-text diagnostics tied to a (category, 1-based index) pair.
// This is heuristic linting, not grammar validation.
type FormulaReport struct {
	Formulas    FormulaSet `json:"formulas"`
	Errors      []string   `json:"errors"`
	Suggestions []string   `json:"suggestions"`
}
