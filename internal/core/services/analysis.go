package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/core/ports/driven"
	"github.com/texpilot/texpilot/internal/core/ports/driving"
	"github.com/texpilot/texpilot/internal/latex/citations"
	"github.com/texpilot/texpilot/internal/latex/formulas"
	"github.com/texpilot/texpilot/internal/latex/rewrite"
	"github.com/texpilot/texpilot/internal/latex/structure"
	"github.com/texpilot/texpilot/internal/latex/terms"
	"github.com/texpilot/texpilot/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the analysis engines and owns access to the
// shared term table. The engines are pure; cacheMu makes the
// check-then-overwrite sequence of CheckTerms a critical section so
// concurrent cache updates cannot interleave.
type AnalysisService struct {
	cacheMu   sync.Mutex
	termStore driven.TermStore
}

// NewAnalysisService creates a new analysis service backed by the given
// term store.
func NewAnalysisService(termStore driven.TermStore) *AnalysisService {
	return &AnalysisService{termStore: termStore}
}

// ParseStructure builds the section/subsection tree of text.
func (s *AnalysisService) ParseStructure(_ context.Context, text string) (domain.Document, error) {
	doc := structure.Parse(text)
	logger.Debug("parsed structure: %d sections", len(doc.Sections))
	return doc, nil
}

// CheckTerms checks terminology consistency. With updateCache the
// shared table is replaced wholesale by this call's local table; it is
// never merged.
func (s *AnalysisService) CheckTerms(_ context.Context, text string, updateCache bool) (domain.TermReport, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	report := terms.Check(text)
	logger.Debug("term check: %d terms, %d inconsistencies",
		len(report.Terms), len(report.Inconsistencies))

	if updateCache {
		if err := s.termStore.Replace(report.Terms.Clone()); err != nil {
			return domain.TermReport{}, fmt.Errorf("updating term cache: %w", err)
		}
		logger.Debug("term cache replaced with %d entries", len(report.Terms))
	}

	return report, nil
}

// CheckFormulas extracts and lints every formula in text.
func (s *AnalysisService) CheckFormulas(_ context.Context, text string) (domain.FormulaReport, error) {
	report := formulas.Validate(text)
	logger.Debug("formula check: %d errors, %d suggestions",
		len(report.Errors), len(report.Suggestions))
	return report, nil
}

// AnalyzeCitations cross-references citations and bibliography.
func (s *AnalysisService) AnalyzeCitations(_ context.Context, text string) (domain.CitationReport, error) {
	report := citations.Analyze(text)
	logger.Debug("citation check: %d cited, %d declared",
		report.CitationCount, report.BibliographyCount)
	return report, nil
}

// RewriteParagraph returns the paragraph with the fixed rewriting
// instruction attached; no rewriting happens here.
func (s *AnalysisService) RewriteParagraph(_ context.Context, paragraph, contextText, style string) (domain.RewriteResult, error) {
	return rewrite.Paragraph(paragraph, contextText, style), nil
}

// AnalyzeFigure returns the caption and surrounding text with the fixed
// analysis instruction attached.
func (s *AnalysisService) AnalyzeFigure(_ context.Context, caption, surrounding string) (domain.FigureAnalysis, error) {
	return rewrite.Figure(caption, surrounding), nil
}

// Terms returns a copy of the shared canonical term table.
func (s *AnalysisService) Terms(_ context.Context) (domain.TermTable, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	table, err := s.termStore.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("reading term cache: %w", err)
	}
	return table, nil
}

// ResetTerms clears the shared canonical term table.
func (s *AnalysisService) ResetTerms(_ context.Context) error {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if err := s.termStore.Reset(); err != nil {
		return fmt.Errorf("resetting term cache: %w", err)
	}
	return nil
}
