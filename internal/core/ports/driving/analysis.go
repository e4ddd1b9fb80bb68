package driving

import (
	"context"

	"github.com/texpilot/texpilot/internal/core/domain"
)

// AnalysisService exposes the LaTeX analysis engines to external actors.
// Every operation is a bounded pure computation over the supplied text;
// only CheckTerms with updateCache=true touches shared state.
type AnalysisService interface {
	// ParseStructure builds the section/subsection tree of text.
	ParseStructure(ctx context.Context, text string) (domain.Document, error)

	// CheckTerms checks terminology consistency. When updateCache is
	// true the shared term table is replaced with this call's table.
	CheckTerms(ctx context.Context, text string, updateCache bool) (domain.TermReport, error)

	// CheckFormulas extracts and lints every formula in text.
	CheckFormulas(ctx context.Context, text string) (domain.FormulaReport, error)

	// AnalyzeCitations cross-references citations and bibliography.
	AnalyzeCitations(ctx context.Context, text string) (domain.CitationReport, error)

	// RewriteParagraph returns the paragraph with a fixed rewriting
	// instruction for the host model.
	RewriteParagraph(ctx context.Context, paragraph, contextText, style string) (domain.RewriteResult, error)

	// AnalyzeFigure returns the caption and surrounding text with a
	// fixed analysis instruction for the host model.
	AnalyzeFigure(ctx context.Context, caption, surrounding string) (domain.FigureAnalysis, error)

	// Terms returns a copy of the shared canonical term table.
	Terms(ctx context.Context) (domain.TermTable, error)

	// ResetTerms clears the shared canonical term table.
	ResetTerms(ctx context.Context) error
}
