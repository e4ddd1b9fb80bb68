// Package domain defines the core business entities for TexPilot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The hierarchical parse of a LaTeX source file
//   - TermTable: Canonical spellings keyed by case-folded term
//   - FormulaReport: Extracted formulas with lint findings
//   - CitationReport: Citation / bibliography cross-reference result
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
